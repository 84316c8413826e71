// Command fricore-demo builds a small synthetic FRI proof, compresses
// it, round-trips it through CBOR, decompresses it, and reports whether
// the result's query-step evaluations, final polynomial and proof-of-work
// witness match the original (Merkle proofs are not compared) — a smoke
// test for wiring this module into a larger prover.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/argonaut-zk/fri-core/internal/fricore/field"
	"github.com/argonaut-zk/fri-core/internal/fricore/fri"
	"github.com/argonaut-zk/fri-core/internal/fricore/merkle"
	"github.com/argonaut-zk/fri-core/internal/fricore/obslog"
	"github.com/argonaut-zk/fri-core/pkg/fricore"
)

func main() {
	degreeBits := flag.Int("degree-bits", 4, "log2 of the committed polynomial's degree")
	rateBits := flag.Int("rate-bits", 2, "log2 of the blow-up factor")
	capHeight := flag.Int("cap-height", 1, "log2 of the Merkle cap size")
	hasherName := flag.String("hasher", "blake3", "merkle hasher: blake3 or sha3")
	verbose := flag.Bool("v", false, "debug-level logging")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := obslog.New(os.Stderr, level)

	var hasher merkle.Hasher
	switch *hasherName {
	case "blake3":
		hasher = merkle.Blake3Hasher{}
	case "sha3":
		hasher = merkle.SHA3Hasher{}
	default:
		fmt.Fprintf(os.Stderr, "unknown hasher %q\n", *hasherName)
		os.Exit(2)
	}

	if err := run(*degreeBits, *rateBits, *capHeight, hasher, logger); err != nil {
		fmt.Fprintln(os.Stderr, "fricore-demo:", err)
		os.Exit(1)
	}
}

func run(degreeBits, rateBits, capHeight int, hasher merkle.Hasher, logger obslog.Logger) error {
	arityBits := []int{2}
	params, err := fricore.NewFriParams(fricore.FriConfig{
		CapHeight:      capHeight,
		RateBits:       rateBits,
		NumQueryRounds: 1,
	}, arityBits, degreeBits, false)
	if err != nil {
		return fmt.Errorf("building params: %w", err)
	}

	proof, index, inferred, err := syntheticProof(hasher, degreeBits, rateBits, capHeight, arityBits)
	if err != nil {
		return fmt.Errorf("building fixture: %w", err)
	}

	client := fricore.NewClient(hasher).WithLogger(logger)

	compressed, err := client.Compress(proof, []int{index}, params)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	wire, err := compressed.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	var decoded fricore.CompressedFriProof
	if err := decoded.UnmarshalBinary(wire); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	restored, err := client.Decompress(&decoded, []int{index}, params, inferred)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}

	if !proofsEqual(proof, *restored) {
		return fmt.Errorf("round-trip mismatch: decompressed proof differs from the original")
	}

	fmt.Printf("ok: round-tripped a %d-byte wire proof through compress -> cbor -> decompress\n", len(wire))
	return nil
}

// syntheticProof builds one query round's worth of real Merkle trees
// over synthetic leaves, matching the shape fri.Compress/Decompress
// expect: an initial oracle tree at full rate and one reduced-poly tree
// per reduction step.
func syntheticProof(hasher merkle.Hasher, degreeBits, rateBits, capHeight int, arityBits []int) (fricore.FriProof, int, []fricore.ExtensionElement, error) {
	h0 := degreeBits + rateBits
	oracleLeaves := make([][]field.Element, 1<<h0)
	for i := range oracleLeaves {
		oracleLeaves[i] = []field.Element{field.New(uint64(i + 1))}
	}
	oracleTree, err := merkle.NewTree(hasher, oracleLeaves, capHeight)
	if err != nil {
		return fricore.FriProof{}, 0, nil, err
	}

	index := (1 << h0) / 3
	initialProof, err := oracleTree.Prove(index)
	if err != nil {
		return fricore.FriProof{}, 0, nil, err
	}

	caps := make([]merkle.MerkleCap, len(arityBits))
	steps := make([]fri.QueryStep, len(arityBits))
	var inferred []fricore.ExtensionElement

	height := h0
	idx := index
	for d, ab := range arityBits {
		cw := idx & ((1 << ab) - 1)
		idx >>= ab
		height -= ab

		numLeaves := 1 << height
		coset := 1 << ab
		leaves := make([][]field.Element, numLeaves)
		var myCoset []field.Degree2
		for i := 0; i < numLeaves; i++ {
			c := make([]field.Degree2, coset)
			for j := 0; j < coset; j++ {
				c[j] = field.Degree2{field.New(uint64(d*10000 + i*100 + j)), field.New(uint64(j + 1))}
			}
			if i == idx {
				myCoset = c
			}
			leaves[i] = field.Flatten(c)
		}
		tree, err := merkle.NewTree(hasher, leaves, capHeight)
		if err != nil {
			return fricore.FriProof{}, 0, nil, err
		}
		proof, err := tree.Prove(idx)
		if err != nil {
			return fricore.FriProof{}, 0, nil, err
		}
		caps[d] = tree.Cap()
		steps[d] = fri.QueryStep{Evals: myCoset, MerkleProof: proof}
		inferred = append(inferred, myCoset[cw])
	}

	proof := fricore.FriProof{
		CommitPhaseMerkleCaps: caps,
		QueryRoundProofs: []fri.QueryRound{
			{
				InitialTreesProof: fri.InitialTreeProof{
					EvalsProofs: []fri.InitialTreeProofEntry{{Leaves: oracleLeaves[index], Proof: initialProof}},
				},
				Steps: steps,
			},
		},
		FinalPoly:  []field.Degree2{{field.New(1), field.New(2)}},
		PowWitness: field.New(7),
	}
	return proof, index, inferred, nil
}

func proofsEqual(a, b fricore.FriProof) bool {
	if len(a.QueryRoundProofs) != len(b.QueryRoundProofs) {
		return false
	}
	if a.PowWitness != b.PowWitness {
		return false
	}
	if len(a.FinalPoly) != len(b.FinalPoly) {
		return false
	}
	for i := range a.FinalPoly {
		if a.FinalPoly[i] != b.FinalPoly[i] {
			return false
		}
	}
	for qi := range a.QueryRoundProofs {
		qa, qb := a.QueryRoundProofs[qi], b.QueryRoundProofs[qi]
		if len(qa.Steps) != len(qb.Steps) {
			return false
		}
		for d := range qa.Steps {
			if len(qa.Steps[d].Evals) != len(qb.Steps[d].Evals) {
				return false
			}
			for i := range qa.Steps[d].Evals {
				if qa.Steps[d].Evals[i] != qb.Steps[d].Evals[i] {
					return false
				}
			}
		}
	}
	return true
}
