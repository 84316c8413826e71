package fri

import "errors"

// ErrMalformedCompressedProof is returned by Decompress when a
// compressed proof's internal bookkeeping doesn't add up: an index
// with no entry in a map, a reduction depth with the wrong number of
// steps, or an oracle count that doesn't match across query rounds.
var ErrMalformedCompressedProof = errors.New("fri: malformed compressed proof")
