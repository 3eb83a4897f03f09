//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package driver

import "io"

func isTerminal(io.Writer) bool {
	return false
}
