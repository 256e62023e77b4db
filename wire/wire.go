// Package wire is the primitive field codec shared by every movewire
// message: tag-length-value framing over the protowire format, capture
// of unknown fields for lossless re-encoding, and the exact
// uint64 ⇄ decimal-string conversion used on JSON-facing surfaces.
//
// Byte-string fields decode to fresh copies; no hex or base64
// transformation happens at this layer.
package wire

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/movestream/movewire"

	"google.golang.org/protobuf/encoding/protowire"
)

// Tag reads the next field tag.
func Tag(b []byte) (protowire.Number, protowire.Type, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, 0, 0, fmt.Errorf("wire: reading tag: %w", protowire.ParseError(n))
	}
	return num, typ, n, nil
}

// Skip consumes the value of a field of the given wire type without
// interpreting it. Callers keep the skipped bytes to preserve unknown
// fields across re-encoding.
func Skip(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, fmt.Errorf("wire: skipping field %d: %w", num, protowire.ParseError(n))
	}
	return n, nil
}

// Uint64Field reads a varint field as uint64.
func Uint64Field(b []byte) (uint64, int, error) {
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, fmt.Errorf("wire: reading varint: %w", protowire.ParseError(n))
	}
	return v, n, nil
}

// Uint32Field reads a varint field as uint32, rejecting values wider
// than 32 bits.
func Uint32Field(b []byte) (uint32, int, error) {
	v, n, err := Uint64Field(b)
	if err != nil {
		return 0, 0, err
	}
	if v > 1<<32-1 {
		return 0, 0, &movewire.ValueOutOfRangeError{Field: "uint32", Value: strconv.FormatUint(v, 10)}
	}
	return uint32(v), n, nil
}

// Int64Field reads a varint field as int64 (two's complement, no zigzag).
func Int64Field(b []byte) (int64, int, error) {
	v, n, err := Uint64Field(b)
	return int64(v), n, err
}

// Int32Field reads a varint field as int32.
func Int32Field(b []byte) (int32, int, error) {
	v, n, err := Uint64Field(b)
	if err != nil {
		return 0, 0, err
	}
	if v64 := int64(v); v64 > 1<<31-1 || v64 < -(1<<31) {
		return 0, 0, &movewire.ValueOutOfRangeError{Field: "int32", Value: strconv.FormatInt(int64(v), 10)}
	}
	return int32(v), n, nil
}

// BoolField reads a varint field as bool.
func BoolField(b []byte) (bool, int, error) {
	v, n, err := Uint64Field(b)
	return v != 0, n, err
}

// BytesField reads a length-delimited field into a fresh copy.
func BytesField(b []byte) ([]byte, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, fmt.Errorf("wire: reading bytes: %w", protowire.ParseError(n))
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, n, nil
}

// StringField reads a length-delimited field as a string.
func StringField(b []byte) (string, int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return "", 0, fmt.Errorf("wire: reading string: %w", protowire.ParseError(n))
	}
	return string(v), n, nil
}

// Packed reads one length-delimited field holding packed varints.
func Packed[T ~uint32](b []byte) ([]T, int, error) {
	body, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, fmt.Errorf("wire: reading packed field: %w", protowire.ParseError(n))
	}
	var out []T
	for len(body) > 0 {
		v, m, err := Uint32Field(body)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, T(v))
		body = body[m:]
	}
	return out, n, nil
}

// AppendUint64 appends a varint field, omitting the zero value.
func AppendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// AppendUint32 appends a varint field, omitting the zero value.
func AppendUint32(b []byte, num protowire.Number, v uint32) []byte {
	return AppendUint64(b, num, uint64(v))
}

// AppendInt64 appends a varint field, omitting the zero value.
func AppendInt64(b []byte, num protowire.Number, v int64) []byte {
	return AppendUint64(b, num, uint64(v))
}

// AppendInt32 appends a varint field, omitting the zero value.
// Negative values are sign-extended to 64 bits, matching the wire
// convention for non-zigzag int32.
func AppendInt32(b []byte, num protowire.Number, v int32) []byte {
	return AppendUint64(b, num, uint64(int64(v)))
}

// AppendBool appends a varint field, omitting false.
func AppendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

// AppendString appends a length-delimited field, omitting the empty
// string.
func AppendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

// AppendBytes appends a length-delimited field. A nil slice is absent;
// a non-nil empty slice is emitted, preserving the empty-vs-absent
// distinction for optional byte fields.
func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if v == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// AppendPacked appends one length-delimited field holding the values as
// packed varints, omitting the empty slice.
func AppendPacked[T ~uint32](b []byte, num protowire.Number, vals []T) []byte {
	if len(vals) == 0 {
		return b
	}
	var body []byte
	for _, v := range vals {
		body = protowire.AppendVarint(body, uint64(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

// AppendMessage appends a length-delimited submessage produced by enc.
func AppendMessage(b []byte, num protowire.Number, enc func([]byte) ([]byte, error)) ([]byte, error) {
	sub, err := enc(nil)
	if err != nil {
		return nil, err
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, sub), nil
}

// FormatUint64 renders v as its decimal string. The string form is used
// on JSON surfaces for all 64-bit counters and amounts, since consumers
// reading JSON numbers into 64-bit floats lose precision above 2^53.
func FormatUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// ParseUint64 converts a canonical decimal string back to uint64. The
// conversion is exact over the full unsigned 64-bit range and fails with
// ValueOutOfRangeError beyond it.
func ParseUint64(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, &movewire.ValueOutOfRangeError{Field: "uint64", Value: s}
		}
		return 0, fmt.Errorf("wire: invalid uint64 %q", s)
	}
	return v, nil
}
