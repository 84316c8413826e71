package fri

import (
	"fmt"

	"github.com/argonaut-zk/fri-core/internal/fricore/field"
	"github.com/argonaut-zk/fri-core/internal/fricore/merkle"
)

// Compress removes the redundancy in proof's query rounds: Merkle
// siblings shared across rounds that land on the same subtree, and,
// within each reduction step, the single evaluation that a verifier
// can always re-derive from the step's own folding challenge (spec.md
// §4.D). indices holds the initial query index of each round, in the
// same order as proof.QueryRoundProofs.
func Compress(proof FriProof, indices []int, params *FriParams) (*CompressedFriProof, error) {
	rounds := proof.QueryRoundProofs
	if len(indices) != len(rounds) {
		return nil, fmt.Errorf("fri: indices length %d != query round count %d", len(indices), len(rounds))
	}
	if len(rounds) == 0 {
		return nil, fmt.Errorf("fri: proof has no query rounds to compress")
	}

	numOracles := len(rounds[0].InitialTreesProof.EvalsProofs)
	numReductions := len(params.ReductionArityBits)

	// Transpose: one (index, leaves, proof) triple per oracle, and one
	// per reduction depth, gathered across all query rounds.
	initialIndices := make([][]int, numOracles)
	initialEntries := make([][]InitialTreeProofEntry, numOracles)
	stepIndices := make([][]int, numReductions)
	stepEvals := make([][][]field.Degree2, numReductions)
	stepProofs := make([][]merkle.MerkleProof, numReductions)

	for qi, round := range rounds {
		if len(round.InitialTreesProof.EvalsProofs) != numOracles {
			return nil, fmt.Errorf("fri: query %d has %d oracles, want %d", qi, len(round.InitialTreesProof.EvalsProofs), numOracles)
		}
		for t, entry := range round.InitialTreesProof.EvalsProofs {
			initialIndices[t] = append(initialIndices[t], indices[qi])
			initialEntries[t] = append(initialEntries[t], entry)
		}

		if len(round.Steps) != numReductions {
			return nil, fmt.Errorf("fri: query %d has %d steps, want %d", qi, len(round.Steps), numReductions)
		}

		idx := indices[qi]
		for d := 0; d < numReductions; d++ {
			arity := params.ReductionArityBits[d]
			indexWithinCoset := idx & ((1 << arity) - 1)
			idx >>= arity

			evals := round.Steps[d].Evals
			expected := 1 << arity
			if len(evals) != expected {
				return nil, fmt.Errorf("fri: query %d step %d has %d evals, want %d", qi, d, len(evals), expected)
			}

			reduced := make([]field.Degree2, 0, expected-1)
			reduced = append(reduced, evals[:indexWithinCoset]...)
			reduced = append(reduced, evals[indexWithinCoset+1:]...)

			stepIndices[d] = append(stepIndices[d], idx)
			stepEvals[d] = append(stepEvals[d], reduced)
			stepProofs[d] = append(stepProofs[d], round.Steps[d].MerkleProof)
		}
	}

	capHeight := params.Config.CapHeight
	compressedInitialProofs := make([][]merkle.CompressedMerkleProof, numOracles)
	for t := 0; t < numOracles; t++ {
		initialProofs := make([]merkle.MerkleProof, len(initialEntries[t]))
		for i, e := range initialEntries[t] {
			initialProofs[i] = e.Proof
		}
		compressedInitialProofs[t] = merkle.CompressMerkleProofs(capHeight, initialIndices[t], initialProofs)
	}

	compressedStepProofs := make([][]merkle.CompressedMerkleProof, numReductions)
	for d := 0; d < numReductions; d++ {
		compressedStepProofs[d] = merkle.CompressMerkleProofs(capHeight, stepIndices[d], stepProofs[d])
	}

	result := CompressedFriQueryRounds{
		Indices:            append([]int(nil), indices...),
		InitialTreesProofs: make(map[int]CompressedInitialTreeProof),
		Steps:              make([]map[int]CompressedQueryStep, numReductions),
	}
	for d := range result.Steps {
		result.Steps[d] = make(map[int]CompressedQueryStep)
	}

	// Pack per-oracle entries back into per-index InitialTreeProofs,
	// first occurrence of each index wins.
	for i, index := range initialIndices[0] {
		if _, ok := result.InitialTreesProofs[index]; ok {
			continue
		}
		entries := make([]CompressedInitialTreeProofEntry, numOracles)
		for t := 0; t < numOracles; t++ {
			entries[t] = CompressedInitialTreeProofEntry{
				Leaves: initialEntries[t][i].Leaves,
				Proof:  compressedInitialProofs[t][i],
			}
		}
		result.InitialTreesProofs[index] = CompressedInitialTreeProof{EvalsProofs: entries}
	}

	for d := 0; d < numReductions; d++ {
		for i, index := range stepIndices[d] {
			if _, ok := result.Steps[d][index]; ok {
				continue
			}
			result.Steps[d][index] = CompressedQueryStep{
				Evals:       stepEvals[d][i],
				MerkleProof: compressedStepProofs[d][i],
			}
		}
	}

	return &CompressedFriProof{
		CommitPhaseMerkleCaps: proof.CommitPhaseMerkleCaps,
		QueryRoundProofs:      result,
		FinalPoly:             proof.FinalPoly,
		PowWitness:            proof.PowWitness,
	}, nil
}
