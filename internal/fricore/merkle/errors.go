package merkle

import "errors"

// ErrMissingSibling is returned by DecompressMerkleProofs when an omitted
// sibling cannot be recovered from any digest computed so far in the
// batch — the input is corrupt or was compressed against a different
// index ordering.
var ErrMissingSibling = errors.New("merkle: omitted sibling has no earlier occurrence to recover it from")
