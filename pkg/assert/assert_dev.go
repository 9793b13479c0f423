//go:build !release

// Package assert provides invariant checks that panic on violation. Under the release build tag
// the checks compile to no-ops.
package assert

import "fmt"

func That(cond bool, format string, args ...any) { //nolint:goprintffuncname // it's ok
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
