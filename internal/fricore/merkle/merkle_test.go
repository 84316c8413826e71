package merkle

import (
	"testing"

	"github.com/argonaut-zk/fri-core/internal/fricore/field"
)

func leavesFor(n int) [][]field.Element {
	leaves := make([][]field.Element, n)
	for i := range leaves {
		leaves[i] = []field.Element{field.New(uint64(i + 1)), field.New(uint64(2*i + 7))}
	}
	return leaves
}

func TestTreeProofVerifiesByRecomputation(t *testing.T) {
	hasher := Blake3Hasher{}
	leaves := leavesFor(8)
	tree, err := NewTree(hasher, leaves, 1)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}

	for idx := 0; idx < 8; idx++ {
		proof, err := tree.Prove(idx)
		if err != nil {
			t.Fatalf("Prove(%d): %v", idx, err)
		}

		current := hasher.Hash(leaves[idx], true)
		cur := idx
		for _, sib := range proof.Siblings {
			if cur%2 == 0 {
				current = hasher.TwoToOne(current, sib)
			} else {
				current = hasher.TwoToOne(sib, current)
			}
			cur >>= 1
		}

		cap := tree.Cap()
		if current != cap[cur] {
			t.Fatalf("index %d: recomputed root %v != cap entry %v", idx, current, cap[cur])
		}
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	hasher := Blake3Hasher{}
	leaves := leavesFor(16)
	tree, err := NewTree(hasher, leaves, 2)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}

	indices := []int{3, 3, 5, 11, 12}
	proofs := make([]MerkleProof, len(indices))
	queryLeaves := make([][]field.Element, len(indices))
	for i, idx := range indices {
		p, err := tree.Prove(idx)
		if err != nil {
			t.Fatalf("Prove(%d): %v", idx, err)
		}
		proofs[i] = p
		queryLeaves[i] = leaves[idx]
	}

	compressed := CompressMerkleProofs(2, indices, proofs)

	omitted := 0
	for _, cp := range compressed {
		for _, s := range cp.Siblings {
			if s == nil {
				omitted++
			}
		}
	}
	if omitted == 0 {
		t.Fatal("expected at least one omitted sibling given overlapping/duplicate indices")
	}

	decompressed, err := DecompressMerkleProofs(queryLeaves, indices, compressed, tree.Height(), 2, hasher)
	if err != nil {
		t.Fatalf("DecompressMerkleProofs: %v", err)
	}

	for i := range indices {
		if len(decompressed[i].Siblings) != len(proofs[i].Siblings) {
			t.Fatalf("query %d: sibling count mismatch: got %d want %d",
				i, len(decompressed[i].Siblings), len(proofs[i].Siblings))
		}
		for l := range proofs[i].Siblings {
			if decompressed[i].Siblings[l] != proofs[i].Siblings[l] {
				t.Fatalf("query %d level %d: decompressed sibling mismatch", i, l)
			}
		}
	}
}

func TestDecompressMalformedMissingSibling(t *testing.T) {
	hasher := Blake3Hasher{}
	cp := []CompressedMerkleProof{{Siblings: []*Hash{nil, nil}}}
	_, err := DecompressMerkleProofs([][]field.Element{{field.New(1)}}, []int{0}, cp, 2, 0, hasher)
	if err == nil {
		t.Fatal("expected error for unresolvable omitted sibling")
	}
}
