package format

import "github.com/dkovralev/goutil/log"

// Formatter renders a log entry as text. Format must not modify the
// entry and must not retain it.
type Formatter interface {
	Format(e *log.Entry) string
}
