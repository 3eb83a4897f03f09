// Command goutil-demo exercises the logging pipeline from the command
// line: one-off console and file records, plus a sweep that emits
// every level through both sinks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkovralev/goutil/log"
	"github.com/dkovralev/goutil/log/driver"
	"github.com/dkovralev/goutil/log/format"
	"github.com/dkovralev/goutil/log/quick"
)

func main() {
	var (
		levelName string
		minLevel  string
		filePath  string
	)

	rootCmd := &cobra.Command{
		Use:   "goutil-demo",
		Short: "Demo for the goutil logging pipeline",
		Long:  "goutil-demo writes log records through the channel/driver pipeline so the output of each sink can be inspected.",
	}
	rootCmd.PersistentFlags().StringVar(&levelName, "level", "INFO", "severity of the emitted record (TRACE..FATAL)")
	rootCmd.PersistentFlags().StringVar(&minLevel, "min-level", "TRACE", "severity threshold applied by the channel policy")

	consoleCmd := &cobra.Command{
		Use:   "console [message]",
		Short: "Write one record to stdout",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ch := log.NewGroup(driver.NewConsole(driver.ConsoleConfig{}))
			ch.RegisterPolicies(log.NewSeverityPolicy(log.ParseLevel(minLevel)))
			log.New().Level(log.ParseLevel(levelName)).Text(args[0]).Channel(ch).Submit()
		},
	}
	rootCmd.AddCommand(consoleCmd)

	fileCmd := &cobra.Command{
		Use:   "file [message]",
		Short: "Append one record to a log file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := driver.NewFile(driver.FileConfig{Path: filePath})
			if err != nil {
				return err
			}
			defer d.Close()

			ch := log.NewGroup(d)
			ch.RegisterPolicies(log.NewSeverityPolicy(log.ParseLevel(minLevel)))
			log.New().Level(log.ParseLevel(levelName)).Text(args[0]).Channel(ch).Submit()
			return nil
		},
	}
	fileCmd.Flags().StringVar(&filePath, "path", "log/log.txt", "log file path")
	rootCmd.AddCommand(fileCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Emit one record per level to stdout and a log file",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := driver.NewFile(driver.FileConfig{
				Path:      filePath,
				Formatter: format.NewText(),
			})
			if err != nil {
				return err
			}
			defer d.Close()

			ch := log.NewGroup(driver.NewConsole(driver.ConsoleConfig{}), d)
			ch.RegisterPolicies(log.NewSeverityPolicy(log.ParseLevel(minLevel)))

			for lvl := log.TraceLevel; lvl <= log.FatalLevel; lvl++ {
				log.New().Level(lvl).Text(fmt.Sprintf("sweep record at %s", lvl)).Channel(ch).Submit()
			}
			quick.ConsoleInfo("sweep done")
			return nil
		},
	}
	sweepCmd.Flags().StringVar(&filePath, "path", "log/log.txt", "log file path")
	rootCmd.AddCommand(sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
