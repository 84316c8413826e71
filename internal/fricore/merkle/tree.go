package merkle

import (
	"fmt"

	"github.com/argonaut-zk/fri-core/internal/fricore/field"
)

// isPowerOfTwoLeafCount reports whether n is a valid Merkle leaf count:
// a positive power of two, so the tree can be climbed by halving down to
// its cap with no ragged level.
func isPowerOfTwoLeafCount(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// Tree is a full binary Merkle tree over a power-of-two number of
// leaves, collapsed down to a cap of height capHeight. It is a concrete
// implementation of the tree-construction side of the black-box
// collaborator in spec.md §4.C, used by this module's own tests and
// demo CLI to produce real FriProof fixtures.
type Tree struct {
	hasher    Hasher
	levels    [][]Hash
	capHeight int
}

// NewTree hashes each leaf's field elements and builds the tree up to
// its cap. len(leaves) must be a power of two no smaller than 1<<capHeight.
func NewTree(hasher Hasher, leaves [][]field.Element, capHeight int) (*Tree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("merkle: cannot build a tree with no leaves")
	}
	if !isPowerOfTwoLeafCount(len(leaves)) {
		return nil, fmt.Errorf("merkle: leaf count %d is not a power of two", len(leaves))
	}
	if len(leaves) < 1<<capHeight {
		return nil, fmt.Errorf("merkle: leaf count %d smaller than cap size %d", len(leaves), 1<<capHeight)
	}

	level0 := make([]Hash, len(leaves))
	for i, l := range leaves {
		level0[i] = hasher.Hash(l, true)
	}

	levels := [][]Hash{level0}
	current := level0
	for len(current) > 1<<capHeight {
		next := make([]Hash, len(current)/2)
		for i := range next {
			next[i] = hasher.TwoToOne(current[2*i], current[2*i+1])
		}
		levels = append(levels, next)
		current = next
	}

	return &Tree{hasher: hasher, levels: levels, capHeight: capHeight}, nil
}

// Height returns the number of leaf levels (log2 of the leaf count).
func (t *Tree) Height() int {
	return len(t.levels) - 1 + t.capHeight
}

// Cap returns the top capHeight levels of the tree.
func (t *Tree) Cap() MerkleCap {
	top := t.levels[len(t.levels)-1]
	cap := make(MerkleCap, len(top))
	copy(cap, top)
	return cap
}

// Prove returns the authentication path for the leaf at index.
func (t *Tree) Prove(index int) (MerkleProof, error) {
	numSiblings := len(t.levels) - 1
	if index < 0 || index >= len(t.levels[0]) {
		return MerkleProof{}, fmt.Errorf("merkle: index %d out of range [0, %d)", index, len(t.levels[0]))
	}
	siblings := make([]Hash, numSiblings)
	idx := index
	for level := 0; level < numSiblings; level++ {
		siblings[level] = t.levels[level][idx^1]
		idx >>= 1
	}
	return MerkleProof{Siblings: siblings}, nil
}
