package fri

import "github.com/fxamacker/cbor/v2"

// cborMode is shared by every proof record's MarshalBinary/UnmarshalBinary
// pair. Canonical encoding keeps map key ordering deterministic, which
// matters for CompressedFriProof's integer-keyed maps (spec.md §3.1).
var cborMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

// MarshalBinary implements encoding.BinaryMarshaler with self-describing
// CBOR, per spec.md §6.
func (p *FriProof) MarshalBinary() ([]byte, error) {
	return cborMode.Marshal(p)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *FriProof) UnmarshalBinary(data []byte) error {
	return cbor.Unmarshal(data, p)
}

// MarshalBinary implements encoding.BinaryMarshaler with self-describing
// CBOR. Integer map keys (initial_trees_proofs, steps[i]) round-trip
// exactly since CBOR natively supports integer keys.
func (p *CompressedFriProof) MarshalBinary() ([]byte, error) {
	return cborMode.Marshal(p)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *CompressedFriProof) UnmarshalBinary(data []byte) error {
	return cbor.Unmarshal(data, p)
}
