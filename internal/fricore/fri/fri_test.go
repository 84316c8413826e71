package fri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argonaut-zk/fri-core/internal/fricore/field"
	"github.com/argonaut-zk/fri-core/internal/fricore/merkle"
)

// buildFixture constructs a small, internally-consistent FriProof: real
// Merkle trees over synthetic leaves, one oracle, R reduction steps with
// geometrically shrinking cosets, and a final polynomial. It returns the
// proof, the indices used to query it, and the removed coset elements
// that Decompress will draw — the first one seen for each (depth,
// post-shift index), round-major, depth-ascending — so tests can feed
// them back as Decompress's inferred-elements stream.
func buildFixture(t *testing.T, hasher merkle.Hasher, degreeBits, rateBits int, arityBits []int, queryIndices []int) (FriProof, []int, []field.Degree2) {
	t.Helper()

	h0 := degreeBits + rateBits
	numOracleLeaves := 1 << h0
	oracleLeaves := make([][]field.Element, numOracleLeaves)
	for i := range oracleLeaves {
		oracleLeaves[i] = []field.Element{field.New(uint64(1000 + i))}
	}
	capHeight := 1
	oracleTree, err := merkle.NewTree(hasher, oracleLeaves, capHeight)
	require.NoError(t, err)

	// One synthetic "reduced polynomial" tree per reduction depth, each
	// storing cosets of size 2^arityBits[d] as flattened extension
	// elements.
	height := h0
	type stepTree struct {
		tree  *merkle.Tree
		evals [][]field.Degree2 // evals[leafIdx] = one coset
	}
	steps := make([]stepTree, len(arityBits))
	for d, ab := range arityBits {
		height -= ab
		numLeaves := 1 << height
		coset := 1 << ab
		leaves := make([][]field.Element, numLeaves)
		evals := make([][]field.Degree2, numLeaves)
		for i := 0; i < numLeaves; i++ {
			cosetEvals := make([]field.Degree2, coset)
			for c := 0; c < coset; c++ {
				cosetEvals[c] = field.Degree2{field.New(uint64(d*1000 + i*10 + c)), field.New(uint64(c + 1))}
			}
			evals[i] = cosetEvals
			leaves[i] = field.Flatten(cosetEvals)
		}
		tr, err := merkle.NewTree(hasher, leaves, capHeight)
		require.NoError(t, err)
		steps[d] = stepTree{tree: tr, evals: evals}
	}

	var inferred []field.Degree2
	rounds := make([]QueryRound, len(queryIndices))
	for qi, index := range queryIndices {
		proof, err := oracleTree.Prove(index)
		require.NoError(t, err)
		itp := InitialTreeProof{EvalsProofs: []InitialTreeProofEntry{{Leaves: oracleLeaves[index], Proof: proof}}}

		qsteps := make([]QueryStep, len(arityBits))
		idx := index
		for d, ab := range arityBits {
			cw := idx & ((1 << ab) - 1)
			idx >>= ab
			coset := steps[d].evals[idx]
			mp, err := steps[d].tree.Prove(idx)
			require.NoError(t, err)
			qsteps[d] = QueryStep{Evals: append([]field.Degree2(nil), coset...), MerkleProof: mp}
			inferred = append(inferred, coset[cw])
		}
		rounds[qi] = QueryRound{InitialTreesProof: itp, Steps: qsteps}
	}

	caps := make([]merkle.MerkleCap, len(arityBits))
	for d := range steps {
		caps[d] = steps[d].tree.Cap()
	}

	proof := FriProof{
		CommitPhaseMerkleCaps: caps,
		QueryRoundProofs:      rounds,
		FinalPoly:             []field.Degree2{{field.New(7), field.New(11)}},
		PowWitness:            field.New(42),
	}
	return proof, queryIndices, dedupeInferred(queryIndices, arityBits, inferred)
}

// dedupeInferred keeps only the inferred elements Decompress will
// actually draw from the stream: the first time each (depth, post-shift
// index) is observed, scanning queries in order.
func dedupeInferred(indices []int, arityBits []int, all []field.Degree2) []field.Degree2 {
	seen := make(map[[2]int]bool)
	out := make([]field.Degree2, 0, len(all))
	pos := 0
	for _, index := range indices {
		idx := index
		for d, ab := range arityBits {
			idx >>= ab
			key := [2]int{d, idx}
			if !seen[key] {
				seen[key] = true
				out = append(out, all[pos])
			}
			pos++
		}
	}
	return out
}

func testParams(t *testing.T, degreeBits, rateBits, capHeight int, arityBits []int) *FriParams {
	t.Helper()
	p, err := NewFriParams(FriConfig{CapHeight: capHeight, RateBits: rateBits, NumQueryRounds: 1}, arityBits, degreeBits, false)
	require.NoError(t, err)
	return p
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	hasher := merkle.Blake3Hasher{}
	arityBits := []int{2, 1}
	indices := []int{0b1011, 0b0111, 0b1011} // duplicate index 0b1011 exercises first-writer-wins

	proof, idxs, inferred := buildFixture(t, hasher, 4, 2, arityBits, indices)
	params := testParams(t, 4, 2, 1, arityBits)

	compressed, err := Compress(proof, idxs, params)
	require.NoError(t, err)

	decompressed, err := Decompress(compressed, idxs, params, hasher, inferred)
	require.NoError(t, err)

	assert.Equal(t, len(proof.QueryRoundProofs), len(decompressed.QueryRoundProofs))
	for i := range proof.QueryRoundProofs {
		want := proof.QueryRoundProofs[i]
		got := decompressed.QueryRoundProofs[i]
		assert.Equal(t, want.InitialTreesProof, got.InitialTreesProof, "round %d initial tree proof", i)
		require.Equal(t, len(want.Steps), len(got.Steps), "round %d step count", i)
		for d := range want.Steps {
			assert.Equal(t, want.Steps[d].Evals, got.Steps[d].Evals, "round %d step %d evals", i, d)
			assert.Equal(t, want.Steps[d].MerkleProof, got.Steps[d].MerkleProof, "round %d step %d proof", i, d)
		}
	}
	assert.Equal(t, proof.FinalPoly, decompressed.FinalPoly)
	assert.Equal(t, proof.PowWitness, decompressed.PowWitness)
}

// TestSingleQueryCompression mirrors the single-query scenario: a
// 4-eval step becomes a 3-eval step, and decompression with exactly one
// inferred element reproduces the original 4-evaluation step.
func TestSingleQueryCompression(t *testing.T) {
	hasher := merkle.Blake3Hasher{}
	arityBits := []int{2}
	indices := []int{0b1011}

	proof, idxs, inferred := buildFixture(t, hasher, 4, 2, arityBits, indices)
	params := testParams(t, 4, 2, 1, arityBits)
	require.Len(t, inferred, 1)

	compressed, err := Compress(proof, idxs, params)
	require.NoError(t, err)

	step, ok := compressed.QueryRoundProofs.Steps[0][0b10]
	require.True(t, ok, "expected post-shift key 0b10")
	assert.Len(t, step.Evals, 3)

	decompressed, err := Decompress(compressed, idxs, params, hasher, inferred)
	require.NoError(t, err)
	assert.Len(t, decompressed.QueryRoundProofs[0].Steps[0].Evals, 4)
	assert.Equal(t, proof.QueryRoundProofs[0].Steps[0].Evals, decompressed.QueryRoundProofs[0].Steps[0].Evals)
}

// TestRecompressMatchesOriginalCompressedProof covers spec.md's invariant
// that re-compressing a decompressed proof against the same indices
// reproduces the original compressed artifact exactly (invariant 7).
func TestRecompressMatchesOriginalCompressedProof(t *testing.T) {
	hasher := merkle.Blake3Hasher{}
	arityBits := []int{2, 1}
	indices := []int{0b1011, 0b0111, 0b1011}

	proof, idxs, inferred := buildFixture(t, hasher, 4, 2, arityBits, indices)
	params := testParams(t, 4, 2, 1, arityBits)

	compressed, err := Compress(proof, idxs, params)
	require.NoError(t, err)

	decompressed, err := Decompress(compressed, idxs, params, hasher, inferred)
	require.NoError(t, err)

	recompressed, err := Compress(*decompressed, idxs, params)
	require.NoError(t, err)

	assert.Equal(t, compressed, recompressed)
}

func TestDecompressExhaustedInferredStream(t *testing.T) {
	hasher := merkle.Blake3Hasher{}
	arityBits := []int{2}
	indices := []int{0b1011}

	proof, idxs, _ := buildFixture(t, hasher, 4, 2, arityBits, indices)
	params := testParams(t, 4, 2, 1, arityBits)

	compressed, err := Compress(proof, idxs, params)
	require.NoError(t, err)

	_, err = Decompress(compressed, idxs, params, hasher, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedCompressedProof)
}

func TestDecompressMissingInitialTreeProof(t *testing.T) {
	hasher := merkle.Blake3Hasher{}
	arityBits := []int{2}
	indices := []int{0b1011}

	proof, idxs, inferred := buildFixture(t, hasher, 4, 2, arityBits, indices)
	params := testParams(t, 4, 2, 1, arityBits)

	compressed, err := Compress(proof, idxs, params)
	require.NoError(t, err)
	delete(compressed.QueryRoundProofs.InitialTreesProofs, idxs[0])

	_, err = Decompress(compressed, idxs, params, hasher, inferred)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedCompressedProof)
}

func TestMarshalUnmarshalCompressedProof(t *testing.T) {
	hasher := merkle.Blake3Hasher{}
	arityBits := []int{2, 1}
	indices := []int{0b1011, 0b0111}

	proof, idxs, _ := buildFixture(t, hasher, 4, 2, arityBits, indices)
	params := testParams(t, 4, 2, 1, arityBits)

	compressed, err := Compress(proof, idxs, params)
	require.NoError(t, err)

	data, err := compressed.MarshalBinary()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	var round CompressedFriProof
	require.NoError(t, round.UnmarshalBinary(data))
	assert.Equal(t, compressed.QueryRoundProofs.Indices, round.QueryRoundProofs.Indices)
	assert.Equal(t, compressed.FinalPoly, round.FinalPoly)
	assert.Equal(t, compressed.PowWitness, round.PowWitness)
	assert.Equal(t, len(compressed.QueryRoundProofs.InitialTreesProofs), len(round.QueryRoundProofs.InitialTreesProofs))
}

func TestFriParamsValidation(t *testing.T) {
	_, err := NewFriParams(FriConfig{CapHeight: 0, RateBits: 2, NumQueryRounds: 1}, nil, 4, false)
	assert.Error(t, err)

	_, err = NewFriParams(FriConfig{CapHeight: 0, RateBits: 2, NumQueryRounds: 1}, []int{2}, 0, false)
	assert.Error(t, err)

	p, err := NewFriParams(FriConfig{CapHeight: 1, RateBits: 2, NumQueryRounds: 4}, []int{2, 1}, 4, true)
	require.NoError(t, err)
	assert.Equal(t, 1<<(4+2-3), p.FinalPolyLen())
	assert.Equal(t, 4, SaltSize(p.Hiding))
}
