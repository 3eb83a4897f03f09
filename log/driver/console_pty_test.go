//go:build linux || darwin || freebsd || netbsd || openbsd

package driver

import (
	"testing"

	"github.com/creack/pty"
)

func TestConsole_ColorsOnPTY(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("pty open: %v", err)
	}
	t.Cleanup(func() {
		_ = ptmx.Close()
		_ = tty.Close()
	})

	c := NewConsole(ConsoleConfig{Writer: tty})
	if !c.Colored() {
		t.Error("expected color enabled for a pty slave writer")
	}
}
