package log

import "time"

// EntryBuilder accumulates the fields of a single entry and delivers
// it to a bound channel. Each builder produces at most one submission:
// the first Submit call sends the entry, later calls are no-ops.
//
// The source location and timestamp are fixed at construction time,
// not at Submit time, so the entry describes the moment the log call
// was made.
type EntryBuilder struct {
	entry     Entry
	dest      Channel
	submitted bool
}

// New starts an entry at InfoLevel, capturing the caller's source
// location and the current time.
func New() *EntryBuilder {
	return NewSkip(1)
}

// NewSkip is New for wrapper functions: extra counts the additional
// stack frames between the real log call site and the wrapper calling
// NewSkip. NewSkip(0) attributes the entry to its direct caller.
func NewSkip(extra int) *EntryBuilder {
	return &EntryBuilder{
		entry: Entry{
			Level:  InfoLevel,
			Source: Caller(2 + extra),
			Time:   time.Now(),
		},
	}
}

// Text sets the message text.
func (b *EntryBuilder) Text(txt string) *EntryBuilder {
	b.entry.Text = txt
	return b
}

// Level sets the severity level.
func (b *EntryBuilder) Level(lvl Level) *EntryBuilder {
	b.entry.Level = lvl
	return b
}

// Channel binds the destination channel. The entry goes to whichever
// channel is bound when Submit runs.
func (b *EntryBuilder) Channel(ch Channel) *EntryBuilder {
	b.dest = ch
	return b
}

// Trace sets TraceLevel together with the message text.
func (b *EntryBuilder) Trace(txt string) *EntryBuilder {
	return b.Level(TraceLevel).Text(txt)
}

// Debug sets DebugLevel together with the message text.
func (b *EntryBuilder) Debug(txt string) *EntryBuilder {
	return b.Level(DebugLevel).Text(txt)
}

// Info sets InfoLevel together with the message text.
func (b *EntryBuilder) Info(txt string) *EntryBuilder {
	return b.Level(InfoLevel).Text(txt)
}

// Warn sets WarnLevel together with the message text.
func (b *EntryBuilder) Warn(txt string) *EntryBuilder {
	return b.Level(WarnLevel).Text(txt)
}

// Error sets ErrorLevel together with the message text.
func (b *EntryBuilder) Error(txt string) *EntryBuilder {
	return b.Level(ErrorLevel).Text(txt)
}

// Fatal sets FatalLevel together with the message text.
func (b *EntryBuilder) Fatal(txt string) *EntryBuilder {
	return b.Level(FatalLevel).Text(txt)
}

// Submit sends the accumulated entry through the bound channel. With
// no channel bound the entry is silently discarded. Driver errors are
// swallowed here: logging is best-effort and the call site has no use
// for them.
func (b *EntryBuilder) Submit() {
	if b.submitted || b.dest == nil {
		b.submitted = true
		return
	}
	b.submitted = true
	_ = b.dest.Submit(&b.entry)
}
