package wire_test

import (
	"errors"
	"math"
	"testing"

	"github.com/movestream/movewire"
	"github.com/movestream/movewire/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestParseUint64_FullRange(t *testing.T) {
	for _, v := range []uint64{0, 1, 1<<53 + 1, math.MaxUint64} {
		s := wire.FormatUint64(v)
		got, err := wire.ParseUint64(s)
		if err != nil {
			t.Fatalf("ParseUint64(%q) failed: %v", s, err)
		}
		if got != v {
			t.Fatalf("ParseUint64(%q) = %d, want %d", s, got, v)
		}
	}
}

func TestParseUint64_Overflow(t *testing.T) {
	_, err := wire.ParseUint64("18446744073709551616") // MaxUint64 + 1
	var oor *movewire.ValueOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected ValueOutOfRangeError, got %v", err)
	}
}

func TestParseUint64_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "-1", "1.5"} {
		if _, err := wire.ParseUint64(s); err == nil {
			t.Fatalf("ParseUint64(%q) unexpectedly succeeded", s)
		}
	}
}

func TestUint32Field_Overflow(t *testing.T) {
	b := protowire.AppendVarint(nil, 1<<32)
	_, _, err := wire.Uint32Field(b)
	var oor *movewire.ValueOutOfRangeError
	if !errors.As(err, &oor) {
		t.Fatalf("expected ValueOutOfRangeError, got %v", err)
	}
}

func TestPacked_RoundTrip(t *testing.T) {
	vals := []uint32{0, 1, 127, 128, 1 << 31}
	b := wire.AppendPacked(nil, 4, vals)

	num, typ, n, err := wire.Tag(b)
	if err != nil {
		t.Fatal(err)
	}
	if num != 4 || typ != protowire.BytesType {
		t.Fatalf("unexpected tag: num=%d typ=%d", num, typ)
	}
	got, _, err := wire.Packed[uint32](b[n:])
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(vals) {
		t.Fatalf("got %d values, want %d", len(got), len(vals))
	}
	for i := range vals {
		if got[i] != vals[i] {
			t.Fatalf("value %d: got %d, want %d", i, got[i], vals[i])
		}
	}
}

func TestAppendBytes_NilVsEmpty(t *testing.T) {
	if b := wire.AppendBytes(nil, 1, nil); len(b) != 0 {
		t.Fatal("nil slice must be absent from the encoding")
	}
	b := wire.AppendBytes(nil, 1, []byte{})
	if len(b) == 0 {
		t.Fatal("non-nil empty slice must be present in the encoding")
	}
	_, _, n, err := wire.Tag(b)
	if err != nil {
		t.Fatal(err)
	}
	v, _, err := wire.BytesField(b[n:])
	if err != nil {
		t.Fatal(err)
	}
	if v == nil || len(v) != 0 {
		t.Fatalf("expected present empty value, got %v", v)
	}
}

func TestBytesField_Copies(t *testing.T) {
	src := wire.AppendBytes(nil, 1, []byte{0xAA, 0xBB})
	_, _, n, err := wire.Tag(src)
	if err != nil {
		t.Fatal(err)
	}
	v, _, err := wire.BytesField(src[n:])
	if err != nil {
		t.Fatal(err)
	}
	src[n+1] = 0xFF // clobber the backing buffer
	if v[0] != 0xAA {
		t.Fatal("decoded bytes must not alias the input buffer")
	}
}

func TestSkip_Truncated(t *testing.T) {
	b := protowire.AppendTag(nil, 9, protowire.BytesType)
	b = append(b, 0x05, 0x01) // claims 5 bytes, provides 1
	num, typ, n, err := wire.Tag(b)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := wire.Skip(num, typ, b[n:]); err == nil {
		t.Fatal("expected error skipping truncated field")
	}
}
