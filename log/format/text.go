package format

import (
	"bytes"
	"strconv"

	"github.com/dkovralev/goutil/log"
)

// DefaultTimestampFormat renders the entry time in the process-local
// zone with the zone abbreviation attached.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000 MST"

// TextFormatter renders entries as human-readable text:
//
//	[INFO] (2025-03-01 09:15:04.221 CET) : "server ready" in function: main.run
//	   /home/dk/app/main.go(42)
type TextFormatter struct {
	// TimestampFormat overrides DefaultTimestampFormat when non-empty.
	TimestampFormat string
}

// NewText creates a text formatter with the default timestamp format.
func NewText() *TextFormatter {
	return &TextFormatter{}
}

// pre-formatted level brackets to avoid a String() call per entry
var levelBrackets = [...]string{
	log.TraceLevel: "[TRACE] ",
	log.DebugLevel: "[DEBUG] ",
	log.InfoLevel:  "[INFO] ",
	log.WarnLevel:  "[WARN] ",
	log.ErrorLevel: "[ERROR] ",
	log.FatalLevel: "[FATAL] ",
}

// Format renders the entry.
func (f *TextFormatter) Format(e *log.Entry) string {
	layout := f.TimestampFormat
	if layout == "" {
		layout = DefaultTimestampFormat
	}

	var buf bytes.Buffer
	buf.Grow(128)

	if int(e.Level) >= 0 && int(e.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[e.Level])
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	buf.WriteByte('(')
	buf.Write(e.Time.Local().AppendFormat(buf.AvailableBuffer(), layout))
	buf.WriteString(") : ")

	buf.WriteString(strconv.Quote(e.Text))

	buf.WriteString(" in function: ")
	if e.Source.Function != "" {
		buf.WriteString(e.Source.Function)
	} else {
		buf.WriteString("unknown")
	}
	buf.WriteString("\n   ")
	buf.WriteString(e.Source.File)
	buf.WriteByte('(')
	buf.WriteString(strconv.Itoa(e.Source.Line))
	buf.WriteString(")\n")

	return buf.String()
}
