package driver

import (
	"io"
	"os"

	"github.com/dkovralev/goutil/log"
	"github.com/dkovralev/goutil/log/format"
)

// ConsoleConfig configures a console driver. The zero value writes
// plain or colored text to stdout with the default text formatter.
type ConsoleConfig struct {
	// Writer receives the formatted records. Defaults to os.Stdout.
	Writer io.Writer

	// Formatter renders entries. Defaults to format.NewText().
	Formatter format.Formatter

	// ForceColor enables ANSI coloring even when Writer is not a
	// terminal. Useful for writers that feed a terminal indirectly.
	ForceColor bool

	// DisableColor suppresses ANSI coloring unconditionally and takes
	// precedence over ForceColor.
	DisableColor bool
}

// Console writes formatted entries to a writer. When the writer is a
// terminal the record is wrapped in a per-level ANSI color.
type Console struct {
	fmtDriver
	w     io.Writer
	color bool
}

// NewConsole creates a console driver.
func NewConsole(cfg ConsoleConfig) *Console {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	f := cfg.Formatter
	if f == nil {
		f = format.NewText()
	}
	color := !cfg.DisableColor && (cfg.ForceColor || isTerminal(w))
	return &Console{fmtDriver: fmtDriver{formatter: f}, w: w, color: color}
}

// per-level SGR sequences; indexed by log.Level
var levelColors = [...]string{
	log.TraceLevel: "\x1b[90m",
	log.DebugLevel: "\x1b[36m",
	log.InfoLevel:  "\x1b[32m",
	log.WarnLevel:  "\x1b[33m",
	log.ErrorLevel: "\x1b[31m",
	log.FatalLevel: "\x1b[35m",
}

const colorReset = "\x1b[0m"

// Submit formats and writes the entry. With a nil formatter the entry
// is dropped.
func (c *Console) Submit(e *log.Entry) error {
	if c.formatter == nil {
		return nil
	}
	s := c.formatter.Format(e)
	if c.color && int(e.Level) >= 0 && int(e.Level) < len(levelColors) {
		s = levelColors[e.Level] + s + colorReset
	}
	_, err := io.WriteString(c.w, s)
	return err
}

// Colored reports whether the driver emits ANSI colors.
func (c *Console) Colored() bool {
	return c.color
}

// Close is a no-op; the driver does not own its writer.
func (c *Console) Close() error {
	return nil
}
