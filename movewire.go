// Package movewire implements the binary wire schema of a Move-language
// blockchain's transaction stream: blocks, transactions, write-set state
// changes, Move type and ABI descriptors, and the multi-generation
// signature families.
//
// The schema rides on a standard tag-length-value wire format (see the
// wire package). Decoding preserves unknown fields and unrecognized enum
// values, so older readers of newer streams degrade gracefully and
// re-encode losslessly. Structural invariants that go beyond framing,
// such as tagged-union exclusivity and signature thresholds, are
// enforced by the validate package after decode.
//
// All decoded records are immutable value records: constructed whole from
// bytes, never mutated in place, holding no back-reference to their
// container.
package movewire

import (
	"bytes"
	"fmt"
)

// Message is implemented by every wire message in the types package.
type Message interface {
	// MarshalBinary encodes the message in its canonical binary form:
	// known fields in ascending field order, preserved unknown fields
	// appended verbatim.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary decodes a complete, length-framed message.
	// Structural decode errors abort the whole message; the receiver
	// is never left partially populated on error by callers that
	// discard it, which they must.
	UnmarshalBinary(data []byte) error
}

// Roundtrip encodes m, decodes the result into fresh (an empty value of
// m's concrete type), and re-encodes, verifying both encodings are
// byte-for-byte identical. It is the self-test hook regression harnesses
// are expected to call on representative corpus messages.
func Roundtrip(m, fresh Message) error {
	first, err := m.MarshalBinary()
	if err != nil {
		return fmt.Errorf("roundtrip: encode: %w", err)
	}
	if err := fresh.UnmarshalBinary(first); err != nil {
		return fmt.Errorf("roundtrip: decode: %w", err)
	}
	second, err := fresh.MarshalBinary()
	if err != nil {
		return fmt.Errorf("roundtrip: re-encode: %w", err)
	}
	if !bytes.Equal(first, second) {
		return fmt.Errorf("roundtrip: encodings differ (%d bytes vs %d bytes)", len(first), len(second))
	}
	return nil
}
