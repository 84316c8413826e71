package fricore

import (
	"github.com/argonaut-zk/fri-core/internal/fricore/fri"
	"github.com/argonaut-zk/fri-core/internal/fricore/obslog"
)

// Client performs FRI proof compression and decompression against a
// fixed hasher, logging structured progress through obslog.
type Client struct {
	hasher Hasher
	log    obslog.Logger
}

// NewClient builds a Client using hasher for Merkle recomputation during
// decompression, logging to obslog.Default().
func NewClient(hasher Hasher) *Client {
	return &Client{hasher: hasher, log: obslog.Default()}
}

// WithLogger returns a copy of c logging through l instead of the default.
func (c *Client) WithLogger(l obslog.Logger) *Client {
	return &Client{hasher: c.hasher, log: l}
}

// Compress removes Merkle-proof redundancy and inferable evaluations
// from proof, returning the compact artifact.
func (c *Client) Compress(proof FriProof, indices []int, params *FriParams) (*CompressedFriProof, error) {
	c.log.CompressStart(len(indices), len(params.ReductionArityBits))

	compressed, err := fri.Compress(proof, indices, params)
	if err != nil {
		c.log.Error(err, "fricore: compress failed")
		return nil, wrapErr(ErrCompression, "compress", err)
	}

	rawBytes, rawErr := proof.MarshalBinary()
	compactBytes, compactErr := compressed.MarshalBinary()
	if rawErr == nil && compactErr == nil {
		c.log.CompressDone(len(rawBytes), len(compactBytes))
	}
	return compressed, nil
}

// Decompress reconstructs the original FriProof from a compressed one,
// given the inferred evaluations the verifier already knows.
func (c *Client) Decompress(compressed *CompressedFriProof, indices []int, params *FriParams, inferredEvals []ExtensionElement) (*FriProof, error) {
	c.log.DecompressStart(len(indices), len(params.ReductionArityBits))

	proof, err := fri.Decompress(compressed, indices, params, c.hasher, inferredEvals)
	if err != nil {
		c.log.Error(err, "fricore: decompress failed")
		return nil, wrapErr(ErrDecompression, "decompress", err)
	}

	if data, mErr := proof.MarshalBinary(); mErr == nil {
		c.log.DecompressDone(len(data))
	}
	return proof, nil
}
