// Package fricore provides a compact public surface over the FRI proof
// compression core: Goldilocks field arithmetic, Merkle authentication,
// and the FRI proof compress/decompress transform.
//
// # Features
//
// - Goldilocks prime field and its quadratic extension
// - Merkle tree construction, proof generation, and path compression
// - FRI proof compression and decompression, byte-identical round-trip
// - CBOR serialization of both compressed and uncompressed proofs
//
// # Quick Start
//
// Compressing a proof and decompressing it back:
//
//	client := fricore.NewClient(merkle.Blake3Hasher{})
//	compressed, err := client.Compress(proof, indices, params)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	restored, err := client.Decompress(compressed, indices, params, inferredEvals)
//	if err != nil {
//		log.Fatal(err)
//	}
package fricore
