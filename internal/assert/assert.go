// Package assert implements precondition traps for the accessor layers.
//
// Violating an accessor precondition is a programmer error, not a
// runtime condition: checks panic in normal builds and compile to
// no-ops when the gridrelease build tag is set.
package assert

import "fmt"

// That panics with the formatted message if cond is false.
func That(cond bool, format string, args ...any) {
	if enabled && !cond {
		panic("precondition failed: " + fmt.Sprintf(format, args...))
	}
}
