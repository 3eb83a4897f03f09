// Package timer implements a named-checkpoint step timer. A Timer
// records a sequence of (name, time) steps; durations between any two
// named steps can be read back, and Overview renders the whole run for
// logging. The timer is not safe for concurrent use.
package timer

import (
	"fmt"
	"strings"
	"time"
)

// Reserved step names used by Start and Finish.
const (
	StartStep  = "TimerStart"
	FinishStep = "TimerFinish"
)

// Step is one named checkpoint.
type Step struct {
	Name string
	Time time.Time
}

// Timer records named checkpoints in the order they are taken. Several
// independent timers can run at once; give them distinct names to tell
// their output apart.
type Timer struct {
	name  string
	steps []Step
	now   func() time.Time
}

// New creates a timer with the given display name.
func New(name string) *Timer {
	if name == "" {
		name = "Utility Timer"
	}
	return &Timer{name: name, now: time.Now}
}

// Start records the starting checkpoint.
func (t *Timer) Start() *Timer {
	return t.Step(StartStep)
}

// Step records a checkpoint under the given name.
func (t *Timer) Step(name string) *Timer {
	t.steps = append(t.steps, Step{Name: name, Time: t.now()})
	return t
}

// Finish records the final checkpoint.
func (t *Timer) Finish() *Timer {
	return t.Step(FinishStep)
}

// Steps returns the recorded checkpoints in order.
func (t *Timer) Steps() []Step {
	return t.steps
}

// At returns the time of the first checkpoint recorded under name.
func (t *Timer) At(name string) (time.Time, bool) {
	for _, s := range t.steps {
		if s.Name == name {
			return s.Time, true
		}
	}
	return time.Time{}, false
}

// Last returns the most recent checkpoint.
func (t *Timer) Last() (Step, bool) {
	if len(t.steps) == 0 {
		return Step{}, false
	}
	return t.steps[len(t.steps)-1], true
}

// Duration returns the elapsed time from the first to the last
// checkpoint, zero when fewer than two exist.
func (t *Timer) Duration() time.Duration {
	if len(t.steps) < 2 {
		return 0
	}
	return t.steps[len(t.steps)-1].Time.Sub(t.steps[0].Time)
}

// Diff returns the elapsed time from checkpoint first to checkpoint
// second. It is negative when second was recorded before first.
func (t *Timer) Diff(first, second string) (time.Duration, bool) {
	a, okA := t.At(first)
	b, okB := t.At(second)
	if !okA || !okB {
		return 0, false
	}
	return b.Sub(a), true
}

// OutputStep renders one named checkpoint for logging.
func (t *Timer) OutputStep(name string) string {
	at, ok := t.At(name)
	if !ok {
		return fmt.Sprintf("(%s) %s: <not recorded>", t.name, name)
	}
	return fmt.Sprintf("(%s) %s: %s", t.name, name, at.Format(time.RFC3339Nano))
}

// OutputDuration renders the total elapsed time for logging.
func (t *Timer) OutputDuration() string {
	return fmt.Sprintf("(%s) Timer Duration: %s", t.name, t.Duration())
}

// OutputDiff renders the elapsed time between two checkpoints.
func (t *Timer) OutputDiff(first, second string) string {
	d, ok := t.Diff(first, second)
	if !ok {
		return fmt.Sprintf("(%s) From [%s] to [%s]: <not recorded>", t.name, first, second)
	}
	return fmt.Sprintf("(%s) From [%s] to [%s]: %s", t.name, first, second, d)
}

// Overview renders every checkpoint with its delta from the previous
// one, one line per step.
func (t *Timer) Overview() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s]\n", t.name)

	var prev time.Time
	for i, s := range t.steps {
		fmt.Fprintf(&sb, "%15s: %s", s.Name, s.Time.Format(time.RFC3339Nano))
		if i > 0 {
			fmt.Fprintf(&sb, " | %s from previous step", s.Time.Sub(prev))
		}
		sb.WriteByte('\n')
		prev = s.Time
	}
	return sb.String()
}
