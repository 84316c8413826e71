package fri

import (
	"fmt"

	"github.com/argonaut-zk/fri-core/internal/fricore/field"
	"github.com/argonaut-zk/fri-core/internal/fricore/merkle"
)

// Decompress is the inverse of Compress. It reconstructs the original,
// per-round query proofs from a CompressedFriProof (spec.md §4.E). The
// single evaluation elided from each reduction step's coset cannot be
// recovered from the compressed proof alone — the caller supplies it
// via inferredEvals, one value per (query, reduction-depth) pair where
// that depth's evals is first observed for its post-shift index, in
// the order Decompress visits them (indices order, depth-ascending).
func Decompress(cp *CompressedFriProof, indices []int, params *FriParams, hasher merkle.Hasher, inferredEvals []field.Degree2) (*FriProof, error) {
	rounds := cp.QueryRoundProofs
	numReductions := len(params.ReductionArityBits)
	if len(rounds.Steps) != numReductions {
		return nil, fmt.Errorf("%w: %d step maps, want %d", ErrMalformedCompressedProof, len(rounds.Steps), numReductions)
	}

	var numOracles int
	for _, itp := range rounds.InitialTreesProofs {
		numOracles = len(itp.EvalsProofs)
		break
	}

	capHeight := params.Config.CapHeight
	heights := make([]int, numReductions+1)
	heights[0] = params.DegreeBits + params.Config.RateBits
	for i := 0; i < numReductions; i++ {
		heights[i+1] = heights[i] - params.ReductionArityBits[i]
	}

	initialIndices := make([]int, len(indices))
	initialLeaves := make([][][]field.Element, numOracles)
	initialProofs := make([][]merkle.CompressedMerkleProof, numOracles)
	for t := range initialLeaves {
		initialLeaves[t] = make([][]field.Element, len(indices))
		initialProofs[t] = make([]merkle.CompressedMerkleProof, len(indices))
	}

	stepIndices := make([][]int, numReductions)
	stepEvals := make([][][]field.Element, numReductions)
	stepProofs := make([][]merkle.CompressedMerkleProof, numReductions)
	for i := range stepIndices {
		stepIndices[i] = make([]int, len(indices))
		stepEvals[i] = make([][]field.Element, len(indices))
		stepProofs[i] = make([]merkle.CompressedMerkleProof, len(indices))
	}

	evalsByDepth := make([]map[int][]field.Degree2, numReductions)
	for i := range evalsByDepth {
		evalsByDepth[i] = make(map[int][]field.Degree2)
	}

	inferredPos := 0

	for qi, index := range indices {
		itp, ok := rounds.InitialTreesProofs[index]
		if !ok {
			return nil, fmt.Errorf("%w: no initial tree proof for index %d", ErrMalformedCompressedProof, index)
		}
		if len(itp.EvalsProofs) != numOracles {
			return nil, fmt.Errorf("%w: initial tree proof for index %d has %d oracles, want %d",
				ErrMalformedCompressedProof, index, len(itp.EvalsProofs), numOracles)
		}
		initialIndices[qi] = index
		for t := 0; t < numOracles; t++ {
			initialLeaves[t][qi] = itp.EvalsProofs[t].Leaves
			initialProofs[t][qi] = itp.EvalsProofs[t].Proof
		}

		idx := index
		for d := 0; d < numReductions; d++ {
			arity := params.ReductionArityBits[d]
			cw := idx & ((1 << arity) - 1)
			idx >>= arity

			step, ok := rounds.Steps[d][idx]
			if !ok {
				return nil, fmt.Errorf("%w: no step for depth %d index %d", ErrMalformedCompressedProof, d, idx)
			}
			stepIndices[d][qi] = idx
			stepProofs[d][qi] = step.MerkleProof

			var evals []field.Degree2
			if stored, ok := evalsByDepth[d][idx]; ok {
				evals = stored
			} else {
				if inferredPos >= len(inferredEvals) {
					return nil, fmt.Errorf("%w: inferred evaluation stream exhausted", ErrMalformedCompressedProof)
				}
				inferred := inferredEvals[inferredPos]
				inferredPos++

				full := make([]field.Degree2, len(step.Evals)+1)
				copy(full[:cw], step.Evals[:cw])
				full[cw] = inferred
				copy(full[cw+1:], step.Evals[cw:])
				evalsByDepth[d][idx] = full
				evals = full
			}
			stepEvals[d][qi] = field.Flatten(evals)
		}
	}

	decompressedInitialProofs := make([][]merkle.MerkleProof, numOracles)
	for t := 0; t < numOracles; t++ {
		proofs, err := merkle.DecompressMerkleProofs(initialLeaves[t], initialIndices, initialProofs[t], heights[0], capHeight, hasher)
		if err != nil {
			return nil, fmt.Errorf("fri: decompressing initial tree oracle %d: %w", t, err)
		}
		decompressedInitialProofs[t] = proofs
	}

	decompressedStepProofs := make([][]merkle.MerkleProof, numReductions)
	for d := 0; d < numReductions; d++ {
		proofs, err := merkle.DecompressMerkleProofs(stepEvals[d], stepIndices[d], stepProofs[d], heights[d+1], capHeight, hasher)
		if err != nil {
			return nil, fmt.Errorf("fri: decompressing reduction step %d: %w", d, err)
		}
		decompressedStepProofs[d] = proofs
	}

	queryRounds := make([]QueryRound, len(indices))
	for qi, index := range indices {
		entries := make([]InitialTreeProofEntry, numOracles)
		for t := 0; t < numOracles; t++ {
			entries[t] = InitialTreeProofEntry{Leaves: initialLeaves[t][qi], Proof: decompressedInitialProofs[t][qi]}
		}

		steps := make([]QueryStep, numReductions)
		idx := index
		for d := 0; d < numReductions; d++ {
			arity := params.ReductionArityBits[d]
			idx >>= arity
			steps[d] = QueryStep{
				Evals:       field.Unflatten(stepEvals[d][qi]),
				MerkleProof: decompressedStepProofs[d][qi],
			}
		}

		queryRounds[qi] = QueryRound{
			InitialTreesProof: InitialTreeProof{EvalsProofs: entries},
			Steps:             steps,
		}
	}

	return &FriProof{
		CommitPhaseMerkleCaps: cp.CommitPhaseMerkleCaps,
		QueryRoundProofs:      queryRounds,
		FinalPoly:             cp.FinalPoly,
		PowWitness:            cp.PowWitness,
	}, nil
}
