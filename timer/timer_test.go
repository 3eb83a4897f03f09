package timer

import (
	"strings"
	"testing"
	"time"
)

// fakeClock hands out strictly increasing instants one second apart.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newFakeTimer(name string) (*Timer, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	tm := New(name)
	tm.now = clock.now
	return tm, clock
}

func TestTimer_StepsInOrder(t *testing.T) {
	tm, _ := newFakeTimer("build")
	tm.Start().Step("compile").Step("link").Finish()

	steps := tm.Steps()
	want := []string{StartStep, "compile", "link", FinishStep}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}
	for i, name := range want {
		if steps[i].Name != name {
			t.Errorf("step %d = %q, want %q", i, steps[i].Name, name)
		}
	}
}

func TestTimer_Duration(t *testing.T) {
	tm, _ := newFakeTimer("build")
	tm.Start().Step("a").Finish()

	if got := tm.Duration(); got != 2*time.Second {
		t.Errorf("Duration() = %s, want 2s", got)
	}
}

func TestTimer_DurationWithoutSteps(t *testing.T) {
	tm := New("idle")
	if got := tm.Duration(); got != 0 {
		t.Errorf("Duration() = %s, want 0", got)
	}
}

func TestTimer_Diff(t *testing.T) {
	tm, _ := newFakeTimer("build")
	tm.Start().Step("a").Step("b")

	d, ok := tm.Diff("a", "b")
	if !ok || d != time.Second {
		t.Errorf("Diff(a, b) = %s, %v, want 1s, true", d, ok)
	}

	d, ok = tm.Diff("b", "a")
	if !ok || d != -time.Second {
		t.Errorf("Diff(b, a) = %s, %v, want -1s, true", d, ok)
	}

	if _, ok := tm.Diff("a", "missing"); ok {
		t.Error("Diff with unknown step should report false")
	}
}

func TestTimer_AtAndLast(t *testing.T) {
	tm, _ := newFakeTimer("build")
	tm.Start().Step("a")

	if _, ok := tm.At("a"); !ok {
		t.Error("At(a) not found")
	}
	if _, ok := tm.At("nope"); ok {
		t.Error("At(nope) should report false")
	}

	last, ok := tm.Last()
	if !ok || last.Name != "a" {
		t.Errorf("Last() = %q, %v, want a, true", last.Name, ok)
	}

	if _, ok := New("empty").Last(); ok {
		t.Error("Last() on empty timer should report false")
	}
}

func TestTimer_Overview(t *testing.T) {
	tm, _ := newFakeTimer("pipeline")
	tm.Start().Step("fetch").Finish()

	out := tm.Overview()
	if !strings.Contains(out, "[pipeline]") {
		t.Errorf("missing timer name in overview:\n%s", out)
	}
	for _, step := range []string{StartStep, "fetch", FinishStep} {
		if !strings.Contains(out, step) {
			t.Errorf("missing step %q in overview:\n%s", step, out)
		}
	}
	if !strings.Contains(out, "1s from previous step") {
		t.Errorf("missing delta in overview:\n%s", out)
	}
}

func TestTimer_OutputHelpers(t *testing.T) {
	tm, _ := newFakeTimer("job")
	tm.Start().Step("a").Finish()

	if out := tm.OutputDuration(); !strings.Contains(out, "(job) Timer Duration: 2s") {
		t.Errorf("OutputDuration() = %q", out)
	}
	if out := tm.OutputDiff(StartStep, "a"); !strings.Contains(out, "1s") {
		t.Errorf("OutputDiff() = %q", out)
	}
	if out := tm.OutputStep("missing"); !strings.Contains(out, "<not recorded>") {
		t.Errorf("OutputStep(missing) = %q", out)
	}
}

func TestTimer_DefaultName(t *testing.T) {
	tm := New("")
	if !strings.Contains(tm.Overview(), "[Utility Timer]") {
		t.Error("expected fallback timer name")
	}
}
