// Package fri implements the FRI proof data model and the
// compression/decompression transform described in spec.md: the
// structured artifact a prover emits to attest that a committed
// polynomial has low degree, plus the lossless transform that removes
// redundant Merkle siblings and inferable evaluations from it.
package fri

import (
	"github.com/argonaut-zk/fri-core/internal/fricore/field"
	"github.com/argonaut-zk/fri-core/internal/fricore/merkle"
)

// InitialTreeProofEntry pairs one oracle's leaf values with the Merkle
// proof authenticating them against that oracle's cap.
type InitialTreeProofEntry struct {
	Leaves []field.Element     `cbor:"leaves"`
	Proof  merkle.MerkleProof  `cbor:"proof"`
}

// InitialTreeProof is an ordered list of (leaf_values, merkle_proof)
// pairs, one entry per committed oracle (spec.md §3). A typical PLONK
// deployment has four oracles in fixed order: constants+sigmas, wires,
// Zs+partial-products, quotient.
type InitialTreeProof struct {
	EvalsProofs []InitialTreeProofEntry `cbor:"evals_proofs"`
}

// UnsaltedEval returns leaves[oracleIndex][polyIndex], asserting that
// polyIndex lies before the salting tail (spec.md §4.B).
func (p InitialTreeProof) UnsaltedEval(oracleIndex, polyIndex int, salted bool) field.Element {
	evals := p.unsaltedEvals(oracleIndex, salted)
	if polyIndex >= len(evals) {
		panic("fri: poly_index out of range of unsalted evals")
	}
	return evals[polyIndex]
}

func (p InitialTreeProof) unsaltedEvals(oracleIndex int, salted bool) []field.Element {
	evals := p.EvalsProofs[oracleIndex].Leaves
	return evals[:len(evals)-SaltSize(salted)]
}

// CompressedInitialTreeProofEntry is InitialTreeProofEntry with its
// Merkle proof's already-seen siblings elided.
type CompressedInitialTreeProofEntry struct {
	Leaves []field.Element               `cbor:"leaves"`
	Proof  merkle.CompressedMerkleProof  `cbor:"proof"`
}

// CompressedInitialTreeProof is the compressed counterpart of InitialTreeProof.
type CompressedInitialTreeProof struct {
	EvalsProofs []CompressedInitialTreeProofEntry `cbor:"evals_proofs"`
}

// QueryStep holds, for one FRI reduction step, the evaluations of the
// reduced polynomial at a coset (in the extension field) together with
// the Merkle proof authenticating them.
type QueryStep struct {
	Evals       []field.Degree2    `cbor:"evals"`
	MerkleProof merkle.MerkleProof `cbor:"merkle_proof"`
}

// CompressedQueryStep is QueryStep with the inferable evaluation already
// removed from Evals and the Merkle proof's duplicate siblings elided.
type CompressedQueryStep struct {
	Evals       []field.Degree2               `cbor:"evals"`
	MerkleProof merkle.CompressedMerkleProof  `cbor:"merkle_proof"`
}

// QueryRound is one InitialTreeProof followed by an ordered sequence of
// QuerySteps, one per reduction.
type QueryRound struct {
	InitialTreesProof InitialTreeProof `cbor:"initial_trees_proof"`
	Steps             []QueryStep      `cbor:"steps"`
}

// FriProof is the uncompressed proof artifact: commit-phase Merkle
// caps, the ordered query rounds, the final low-degree polynomial, and
// a proof-of-work witness.
type FriProof struct {
	CommitPhaseMerkleCaps []merkle.MerkleCap `cbor:"commit_phase_merkle_caps"`
	QueryRoundProofs      []QueryRound       `cbor:"query_round_proofs"`
	FinalPoly             []field.Degree2    `cbor:"final_poly"`
	PowWitness            field.Element      `cbor:"pow_witness"`
}

// CompressedFriQueryRounds is the compressed representation of a
// FriProof's query rounds (spec.md §3): the original ordered indices,
// a map from unique initial index to its InitialTreeProof, and one map
// per reduction depth from post-shift index to its QueryStep.
type CompressedFriQueryRounds struct {
	Indices             []int                                 `cbor:"indices"`
	InitialTreesProofs  map[int]CompressedInitialTreeProof     `cbor:"initial_trees_proofs"`
	Steps               []map[int]CompressedQueryStep          `cbor:"steps"`
}

// CompressedFriProof is a FriProof with its query rounds replaced by a
// CompressedFriQueryRounds record. Everything else is unchanged.
type CompressedFriProof struct {
	CommitPhaseMerkleCaps []merkle.MerkleCap       `cbor:"commit_phase_merkle_caps"`
	QueryRoundProofs      CompressedFriQueryRounds `cbor:"query_round_proofs"`
	FinalPoly             []field.Degree2          `cbor:"final_poly"`
	PowWitness            field.Element            `cbor:"pow_witness"`
}
