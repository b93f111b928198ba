//go:build !stldebug

// File: internal/assert/assert_off.go
// Author: momentics <momentics@gmail.com>
//
// Release-build assertions compile to nothing.

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = false

// That is a no-op in release builds.
func That(bool, string, ...any) {}
