package log

import (
	"path/filepath"
	"runtime"
	"time"
)

// Entry represents one log occurrence. An entry is assembled by an
// EntryBuilder and must not be modified once it has been submitted;
// policies and drivers receive it read-only.
type Entry struct {
	Level  Level
	Text   string
	Source Source
	Time   time.Time
}

// Source identifies the call site that produced an entry.
type Source struct {
	File      string
	ShortFile string
	Function  string
	Line      int
	Defined   bool
}

// Caller captures the source location skip frames above Caller itself,
// mirroring the skip semantics of runtime.Caller.
func Caller(skip int) Source {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Source{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return Source{
		File:      file,
		ShortFile: filepath.Base(file),
		Function:  funcName,
		Line:      line,
		Defined:   true,
	}
}
