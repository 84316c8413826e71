// Package merkle is the out-of-scope collaborator spec.md §4.C and §6 call
// out: Merkle cap/proof types, the Hasher capability, and a minimal but
// real compress/decompress implementation for Merkle authentication
// paths. The FRI proof compression logic in the fri package treats this
// package as a black box, consuming only the signatures below.
package merkle

import (
	"fmt"

	"github.com/argonaut-zk/fri-core/internal/fricore/field"
)

// Hash is a single digest. HashSize matches plonky2's Poseidon digest
// width (4 field elements of 8 bytes); concrete Hashers in this package
// use a cryptographic hash of the same width so the rest of the module
// never has to special-case digest size.
type Hash [32]byte

// HashSize is the size of Hash in bytes.
const HashSize = 32

// String renders a short hex prefix, useful in log lines.
func (h Hash) String() string {
	return fmt.Sprintf("%x", h[:8])
}

// Hasher is the capability spec.md §6 requires of a leaf/compression
// hash: a sponge-like absorbing hash over field elements, plus a
// fixed-arity compression function for internal tree nodes.
type Hasher interface {
	// HashSize is the digest size in bytes.
	HashSize() int
	// Hash absorbs a sequence of base-field elements into one digest.
	// pad signals whether the input should be domain-separated by its
	// own length before absorption (true for leaf hashing, typically
	// false for re-hashing already-fixed-width internal values).
	Hash(elements []field.Element, pad bool) Hash
	// TwoToOne compresses two child digests into their parent digest.
	TwoToOne(left, right Hash) Hash
}

// MerkleCap is the top cap_height levels of a Merkle tree, published in
// lieu of a single root (spec.md §3). It encodes as a bare CBOR array, so
// it carries no struct tag of its own; the entries are Hash values.
type MerkleCap []Hash

// MerkleProof is an ordered sequence of sibling digests authenticating a
// leaf against a cap, given a known leaf index and tree height.
type MerkleProof struct {
	Siblings []Hash `cbor:"siblings"`
}

// CompressedMerkleProof is a MerkleProof with siblings already seen
// elsewhere in the same compression batch elided (nil entries).
type CompressedMerkleProof struct {
	Siblings []*Hash `cbor:"siblings"`
}
