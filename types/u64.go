package types

import (
	"github.com/movestream/movewire/wire"
)

// U64 is an unsigned 64-bit counter or amount: versions, heights,
// epochs, gas, sequence numbers. On the binary wire it is a native
// varint. On JSON surfaces it renders as its decimal string, because
// consumers reading JSON numbers into 64-bit floats lose precision
// above 2^53. The convention applies uniformly to every 64-bit
// counter/amount field in this package.
type U64 uint64

// String returns the canonical decimal form.
func (v U64) String() string { return wire.FormatUint64(uint64(v)) }

// MarshalJSON renders the value as a quoted decimal string.
func (v U64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + wire.FormatUint64(uint64(v)) + `"`), nil
}

// UnmarshalJSON accepts either a quoted decimal string (the canonical
// form) or a bare JSON number emitted by lenient producers. The
// conversion is exact over the full unsigned 64-bit range.
func (v *U64) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	u, err := wire.ParseUint64(string(data))
	if err != nil {
		return err
	}
	*v = U64(u)
	return nil
}
