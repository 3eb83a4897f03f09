package quick

import (
	"github.com/dkovralev/goutil/log"
	"github.com/dkovralev/goutil/log/driver"
)

// console is shared by all ConsoleLog calls; stdout needs no cleanup.
var console = driver.NewConsole(driver.ConsoleConfig{})

// ConsoleLog writes one record at the given level to stdout.
func ConsoleLog(lvl log.Level, text string) {
	consoleLog(1, lvl, text)
}

func consoleLog(extra int, lvl log.Level, text string) {
	ch := log.NewGroup(console)
	ch.RegisterPolicies(log.NewSeverityPolicy(lvl))
	log.NewSkip(extra + 1).Level(lvl).Text(text).Channel(ch).Submit()
}

// ConsoleTrace writes one TRACE record to stdout.
func ConsoleTrace(text string) { consoleLog(1, log.TraceLevel, text) }

// ConsoleDebug writes one DEBUG record to stdout.
func ConsoleDebug(text string) { consoleLog(1, log.DebugLevel, text) }

// ConsoleInfo writes one INFO record to stdout.
func ConsoleInfo(text string) { consoleLog(1, log.InfoLevel, text) }

// ConsoleWarn writes one WARN record to stdout.
func ConsoleWarn(text string) { consoleLog(1, log.WarnLevel, text) }

// ConsoleError writes one ERROR record to stdout.
func ConsoleError(text string) { consoleLog(1, log.ErrorLevel, text) }

// ConsoleFatal writes one FATAL record to stdout.
func ConsoleFatal(text string) { consoleLog(1, log.FatalLevel, text) }

// FileLog opens the file at path, appends one record at the given
// level, and closes it. The parent directory is created when missing.
func FileLog(path string, lvl log.Level, text string) error {
	return fileLog(1, path, lvl, text)
}

func fileLog(extra int, path string, lvl log.Level, text string) error {
	d, err := driver.NewFile(driver.FileConfig{Path: path})
	if err != nil {
		return err
	}
	defer d.Close()

	ch := log.NewGroup(d)
	ch.RegisterPolicies(log.NewSeverityPolicy(lvl))
	log.NewSkip(extra + 1).Level(lvl).Text(text).Channel(ch).Submit()
	return nil
}

// FileTrace appends one TRACE record to the file at path.
func FileTrace(path, text string) error { return fileLog(1, path, log.TraceLevel, text) }

// FileDebug appends one DEBUG record to the file at path.
func FileDebug(path, text string) error { return fileLog(1, path, log.DebugLevel, text) }

// FileInfo appends one INFO record to the file at path.
func FileInfo(path, text string) error { return fileLog(1, path, log.InfoLevel, text) }

// FileWarn appends one WARN record to the file at path.
func FileWarn(path, text string) error { return fileLog(1, path, log.WarnLevel, text) }

// FileError appends one ERROR record to the file at path.
func FileError(path, text string) error { return fileLog(1, path, log.ErrorLevel, text) }

// FileFatal appends one FATAL record to the file at path.
func FileFatal(path, text string) error { return fileLog(1, path, log.FatalLevel, text) }
