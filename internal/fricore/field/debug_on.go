//go:build fricore_debug

package field

func assertInverseDebug(x, inv Element) {
	if !x.Mul(inv).Equal(One) {
		panic("field: inverse invariant violated: x * inverse(x) != 1")
	}
}
