//go:build stldebug

// File: internal/assert/assert.go
// Author: momentics <momentics@gmail.com>
//
// Debug-build assertions. Compiled in only with -tags stldebug.

package assert

import "fmt"

// Enabled reports whether assertions are compiled in.
const Enabled = true

// That panics with the formatted message when cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
