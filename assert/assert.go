// Package assert provides a small assertion helper with attached
// context. A failed check captures its call site, carries an optional
// message and watched values, and applies one of three effects: return
// the failure as an error, panic with it, or log it at FATAL and exit
// the process.
package assert

import (
	"fmt"
	"os"
	"strings"

	"github.com/dkovralev/goutil/log"
	"github.com/dkovralev/goutil/log/quick"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Effect selects what Check does with a failed assertion.
type Effect int

const (
	// Return reports the failure as an error from Check (default).
	Return Effect = iota
	// Panic panics with the failure.
	Panic
	// Exit logs the failure at FATAL to the console and exits with
	// status 1.
	Exit
)

// Failure describes a failed assertion. It implements error.
type Failure struct {
	Expr    string
	Msg     string
	Watches []Watch
	Source  log.Source
}

// Watch is one named value captured alongside a failure.
type Watch struct {
	Name  string
	Value any
}

// Error renders the failure with its expression, message, watches, and
// call site.
func (f *Failure) Error() string {
	var sb strings.Builder
	sb.WriteString("[AssertFailed]: ")
	sb.WriteString(f.Expr)
	if f.Msg != "" {
		sb.WriteString(": ")
		sb.WriteString(f.Msg)
	}
	for _, w := range f.Watches {
		fmt.Fprintf(&sb, "\n   watch %s = %v", w.Name, w.Value)
	}
	if f.Source.Defined {
		fmt.Fprintf(&sb, "\n   at %s %s(%d)", f.Source.Function, f.Source.File, f.Source.Line)
	}
	return sb.String()
}

// Assertion accumulates context for a failed check. A nil *Assertion
// means the check passed; all methods tolerate a nil receiver, so a
// full chain costs nothing on the passing path.
type Assertion struct {
	failure Failure
	effect  Effect
}

// That returns nil when cond holds. Otherwise it returns an Assertion
// recording expr and the caller's source location.
func That(cond bool, expr string) *Assertion {
	if cond {
		return nil
	}
	return &Assertion{failure: Failure{Expr: expr, Source: log.Caller(2)}}
}

// Msg attaches a human-readable message to the failure.
func (a *Assertion) Msg(msg string) *Assertion {
	if a == nil {
		return nil
	}
	a.failure.Msg = msg
	return a
}

// Watch records a named value to include in the failure output.
func (a *Assertion) Watch(name string, val any) *Assertion {
	if a == nil {
		return nil
	}
	a.failure.Watches = append(a.failure.Watches, Watch{Name: name, Value: val})
	return a
}

// Effect selects what Check does on failure.
func (a *Assertion) Effect(e Effect) *Assertion {
	if a == nil {
		return nil
	}
	a.effect = e
	return a
}

// Check applies the configured effect. On a passing assertion (nil
// receiver) it returns nil.
func (a *Assertion) Check() error {
	if a == nil {
		return nil
	}
	switch a.effect {
	case Panic:
		panic(&a.failure)
	case Exit:
		quick.ConsoleFatal(a.failure.Error())
		osExit(1)
		return &a.failure // unreachable outside tests that stub osExit
	default:
		return &a.failure
	}
}
