package field

import "errors"

// ErrNoInverse is returned by TryInverse when asked to invert zero.
var ErrNoInverse = errors.New("field: zero has no multiplicative inverse")

// assertInverse is the debug-only structural check from spec.md §7
// (InvariantViolation): result * inverse == 1. It is compiled out unless
// the fricore_debug build tag is set, so it carries no runtime cost in
// release builds.
func assertInverse(x, inv Element) {
	assertInverseDebug(x, inv)
}
