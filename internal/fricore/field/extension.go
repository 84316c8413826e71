package field

// Degree2 is a quadratic extension F[x]/(x^2 - nonResidue) over the
// Goldilocks base field, used wherever spec.md calls for F_D evaluations
// that need the larger field for soundness (D=2 in this module).
//
// nonResidue must be a quadratic non-residue in F so that x^2-nonResidue
// is irreducible; 7 is one such value for the Goldilocks prime.
const nonResidue = Element(7)

// Degree2 represents an ordered pair (a0, a1) standing for a0 + a1*x.
type Degree2 [2]Element

// ZeroExt and OneExt are the extension-field identities.
var (
	ZeroExt = Degree2{Zero, Zero}
	OneExt  = Degree2{One, Zero}
)

// FromBase embeds a base-field element into the extension.
func FromBase(e Element) Degree2 {
	return Degree2{e, Zero}
}

// IsZero reports whether both coordinates are zero.
func (d Degree2) IsZero() bool {
	return d[0].IsZero() && d[1].IsZero()
}

// Equal compares two extension elements coordinate-wise.
func (d Degree2) Equal(other Degree2) bool {
	return d[0].Equal(other[0]) && d[1].Equal(other[1])
}

// Add computes (a0+b0, a1+b1).
func (d Degree2) Add(other Degree2) Degree2 {
	return Degree2{d[0].Add(other[0]), d[1].Add(other[1])}
}

// Sub computes (a0-b0, a1-b1).
func (d Degree2) Sub(other Degree2) Degree2 {
	return Degree2{d[0].Sub(other[0]), d[1].Sub(other[1])}
}

// Neg negates both coordinates.
func (d Degree2) Neg() Degree2 {
	return Degree2{d[0].Neg(), d[1].Neg()}
}

// Mul computes (a0+a1*x)*(b0+b1*x) mod (x^2 - nonResidue):
//
//	= a0*b0 + nonResidue*a1*b1 + (a0*b1 + a1*b0)*x
func (d Degree2) Mul(other Degree2) Degree2 {
	a0, a1 := d[0], d[1]
	b0, b1 := other[0], other[1]
	c0 := a0.Mul(b0).Add(nonResidue.Mul(a1.Mul(b1)))
	c1 := a0.Mul(b1).Add(a1.Mul(b0))
	return Degree2{c0, c1}
}

// MulBase scales an extension element by a base-field scalar.
func (d Degree2) MulBase(s Element) Degree2 {
	return Degree2{d[0].Mul(s), d[1].Mul(s)}
}

// Square computes d*d.
func (d Degree2) Square() Degree2 {
	return d.Mul(d)
}

// ToBaseSlice flattens an extension element into its base-field
// coordinates, in the order used by flatten/unflatten at proof boundaries.
func (d Degree2) ToBaseSlice() []Element {
	return []Element{d[0], d[1]}
}

// Flatten concatenates the base-field coordinates of a slice of extension
// elements, mirroring plonky2's `flatten`. Used when packing step evals
// into a single base-field leaf-compatible sequence.
func Flatten(xs []Degree2) []Element {
	out := make([]Element, 0, len(xs)*2)
	for _, x := range xs {
		out = append(out, x[0], x[1])
	}
	return out
}

// Unflatten is the inverse of Flatten; len(xs) must be even.
func Unflatten(xs []Element) []Degree2 {
	out := make([]Degree2, 0, len(xs)/2)
	for i := 0; i+1 < len(xs); i += 2 {
		out = append(out, Degree2{xs[i], xs[i+1]})
	}
	return out
}
