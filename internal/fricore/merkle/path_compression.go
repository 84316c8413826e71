package merkle

import (
	"fmt"

	"github.com/argonaut-zk/fri-core/internal/fricore/field"
)

type coord struct {
	level int
	index int
}

// CompressMerkleProofs deduplicates sibling digests across proofs that
// share subtrees. Order of indices matches order of proofs; the result
// is index-aligned with both. Signature matches spec.md §4.C exactly:
// no hasher or leaf data is needed because a sibling at (level, index)
// is identified purely by its tree coordinate, derivable from the query
// index alone, and any two proofs referencing the same coordinate must
// carry an identical digest if they were honestly generated.
func CompressMerkleProofs(capHeight int, indices []int, proofs []MerkleProof) []CompressedMerkleProof {
	seen := make(map[coord]Hash)
	out := make([]CompressedMerkleProof, len(indices))

	for i, index := range indices {
		proof := proofs[i]
		n := len(proof.Siblings)
		siblings := make([]*Hash, n)
		idx := index

		for level := 0; level < n; level++ {
			siblingCoord := coord{level, idx ^ 1}
			sibling := proof.Siblings[level]

			if existing, ok := seen[siblingCoord]; ok && existing == sibling {
				siblings[level] = nil
			} else {
				h := sibling
				siblings[level] = &h
				seen[siblingCoord] = sibling
			}
			idx >>= 1
		}

		out[i] = CompressedMerkleProof{Siblings: siblings}
	}

	return out
}

// DecompressMerkleProofs is the inverse of CompressMerkleProofs. It needs
// leaves to re-derive the digests an earlier proof's own authentication
// path computed (as opposed to digests it merely carried as a sibling),
// since an omitted sibling may have first appeared either as another
// proof's sibling entry or as a node on another proof's own path.
func DecompressMerkleProofs(
	leaves [][]field.Element,
	indices []int,
	compressed []CompressedMerkleProof,
	treeHeight, capHeight int,
	hasher Hasher,
) ([]MerkleProof, error) {
	if len(leaves) != len(indices) || len(compressed) != len(indices) {
		return nil, fmt.Errorf("merkle: leaves/indices/compressed length mismatch (%d/%d/%d)",
			len(leaves), len(indices), len(compressed))
	}

	numSiblings := treeHeight - capHeight
	seen := make(map[coord]Hash)
	out := make([]MerkleProof, len(indices))

	for i, index := range indices {
		cp := compressed[i]
		if len(cp.Siblings) != numSiblings {
			return nil, fmt.Errorf("merkle: query %d: expected %d siblings, got %d",
				index, numSiblings, len(cp.Siblings))
		}

		idx := index
		current := hasher.Hash(leaves[i], true)
		seen[coord{0, idx}] = current

		siblings := make([]Hash, numSiblings)
		for level := 0; level < numSiblings; level++ {
			siblingCoord := coord{level, idx ^ 1}

			var sibling Hash
			if cp.Siblings[level] != nil {
				sibling = *cp.Siblings[level]
				seen[siblingCoord] = sibling
			} else {
				existing, ok := seen[siblingCoord]
				if !ok {
					return nil, fmt.Errorf("merkle: query %d level %d: %w", index, level, ErrMissingSibling)
				}
				sibling = existing
			}
			siblings[level] = sibling

			var parent Hash
			if idx%2 == 0 {
				parent = hasher.TwoToOne(current, sibling)
			} else {
				parent = hasher.TwoToOne(sibling, current)
			}
			idx >>= 1
			current = parent
			seen[coord{level + 1, idx}] = current
		}

		out[i] = MerkleProof{Siblings: siblings}
	}

	return out, nil
}
