package fricore

import (
	"github.com/argonaut-zk/fri-core/internal/fricore/field"
	"github.com/argonaut-zk/fri-core/internal/fricore/fri"
	"github.com/argonaut-zk/fri-core/internal/fricore/merkle"
)

// Element is a Goldilocks prime field element.
type Element = field.Element

// ExtensionElement is an element of the quadratic extension field used
// by FRI's commit-phase evaluations.
type ExtensionElement = field.Degree2

// Hash is a Merkle tree digest.
type Hash = merkle.Hash

// Hasher abstracts the digest function a Merkle tree is built with.
type Hasher = merkle.Hasher

// Blake3Hasher hashes with BLAKE3.
type Blake3Hasher = merkle.Blake3Hasher

// SHA3Hasher hashes with SHA3-256.
type SHA3Hasher = merkle.SHA3Hasher

// FriConfig holds batch-wide FRI settings.
type FriConfig = fri.FriConfig

// FriParams holds FriConfig plus the reduction schedule for one proof.
type FriParams = fri.FriParams

// FriProof is the uncompressed FRI proof artifact.
type FriProof = fri.FriProof

// CompressedFriProof is the compressed FRI proof artifact.
type CompressedFriProof = fri.CompressedFriProof

// NewFriParams validates and constructs a FriParams.
func NewFriParams(config FriConfig, reductionArityBits []int, degreeBits int, hiding bool) (*FriParams, error) {
	return fri.NewFriParams(config, reductionArityBits, degreeBits, hiding)
}
