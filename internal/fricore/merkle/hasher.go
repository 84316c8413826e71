package merkle

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"

	"github.com/argonaut-zk/fri-core/internal/fricore/field"
)

// Blake3Hasher is the primary concrete Hasher: a real, fast, testable
// substitute for the Poseidon/GMiMC permutations spec.md keeps out of
// scope. It never claims to be an algebraic (in-circuit-friendly) hash.
type Blake3Hasher struct{}

// HashSize returns HashSize (32 bytes).
func (Blake3Hasher) HashSize() int { return HashSize }

// Hash absorbs elements in their canonical big-endian encoding.
func (Blake3Hasher) Hash(elements []field.Element, pad bool) Hash {
	h := blake3.New()
	absorb(h, elements, pad)
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// TwoToOne compresses two children into their parent digest.
func (Blake3Hasher) TwoToOne(left, right Hash) Hash {
	h := blake3.New()
	h.Write(left[:])
	h.Write(right[:])
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// SHA3Hasher is a secondary concrete Hasher, useful for cross-checking
// that nothing in the compression pipeline is accidentally hard-coded to
// one digest algorithm's byte layout.
type SHA3Hasher struct{}

// HashSize returns HashSize (32 bytes).
func (SHA3Hasher) HashSize() int { return HashSize }

// Hash absorbs elements in their canonical big-endian encoding.
func (SHA3Hasher) Hash(elements []field.Element, pad bool) Hash {
	h := sha3.New256()
	absorb(h, elements, pad)
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// TwoToOne compresses two children into their parent digest.
func (SHA3Hasher) TwoToOne(left, right Hash) Hash {
	h := sha3.New256()
	h.Write(left[:])
	h.Write(right[:])
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

type writer interface {
	Write(p []byte) (int, error)
}

func absorb(w writer, elements []field.Element, pad bool) {
	if pad {
		var lenBuf [8]byte
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(elements)))
		w.Write(lenBuf[:])
	}
	var buf [8]byte
	for _, e := range elements {
		binary.BigEndian.PutUint64(buf[:], e.ToCanonicalUint64())
		w.Write(buf[:])
	}
}
