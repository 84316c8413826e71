package field

import "github.com/fxamacker/cbor/v2"

// MarshalCBOR encodes e through its canonical uint64 form. An Element may
// be weakly reduced in memory; anything that crosses a serialization
// boundary must not leak that representation, so this is the one place
// ToCanonicalUint64 is mandatory rather than incidental.
func (e Element) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(e.ToCanonicalUint64())
}

// UnmarshalCBOR decodes a canonical uint64 back into an Element.
func (e *Element) UnmarshalCBOR(data []byte) error {
	var n uint64
	if err := cbor.Unmarshal(data, &n); err != nil {
		return err
	}
	*e = FromCanonicalUint64(n)
	return nil
}
