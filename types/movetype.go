package types

import (
	"github.com/movestream/movewire"
	"github.com/movestream/movewire/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// MaxTypeDepth caps the nesting of MoveType trees. Vector, struct and
// reference content recurses; a hostile stream could otherwise drive
// the decoder to stack exhaustion. The cap is enforced on both decode
// and encode so a tree this package refuses to read can never be
// produced either.
const MaxTypeDepth = 256

// MoveTypeKind discriminates the shape of a MoveType.
type MoveTypeKind uint32

const (
	MoveTypeKindUnspecified      MoveTypeKind = 0
	MoveTypeKindBool             MoveTypeKind = 1
	MoveTypeKindU8               MoveTypeKind = 2
	MoveTypeKindU64              MoveTypeKind = 3
	MoveTypeKindU128             MoveTypeKind = 4
	MoveTypeKindAddress          MoveTypeKind = 5
	MoveTypeKindSigner           MoveTypeKind = 6
	MoveTypeKindVector           MoveTypeKind = 7
	MoveTypeKindStruct           MoveTypeKind = 8
	MoveTypeKindGenericTypeParam MoveTypeKind = 9
	MoveTypeKindReference        MoveTypeKind = 10
	MoveTypeKindUnparsable       MoveTypeKind = 11
	MoveTypeKindU16              MoveTypeKind = 12
	MoveTypeKindU32              MoveTypeKind = 13
	MoveTypeKindU256             MoveTypeKind = 14
)

func (k MoveTypeKind) String() string {
	switch k {
	case MoveTypeKindUnspecified:
		return "unspecified"
	case MoveTypeKindBool:
		return "bool"
	case MoveTypeKindU8:
		return "u8"
	case MoveTypeKindU16:
		return "u16"
	case MoveTypeKindU32:
		return "u32"
	case MoveTypeKindU64:
		return "u64"
	case MoveTypeKindU128:
		return "u128"
	case MoveTypeKindU256:
		return "u256"
	case MoveTypeKindAddress:
		return "address"
	case MoveTypeKindSigner:
		return "signer"
	case MoveTypeKindVector:
		return "vector"
	case MoveTypeKindStruct:
		return "struct"
	case MoveTypeKindGenericTypeParam:
		return "generic_type_param"
	case MoveTypeKindReference:
		return "reference"
	case MoveTypeKindUnparsable:
		return "unparsable"
	}
	return "raw(" + wire.FormatUint64(uint64(k)) + ")"
}

// MoveTypeContent is the kind-specific content of a MoveType. Primitive
// kinds carry no content.
type MoveTypeContent interface {
	isMoveTypeContent()
}

// VectorContent is the element type of a vector.
type VectorContent struct{ Element *MoveType }

// StructContent names a struct type.
type StructContent struct{ Tag *MoveStructTag }

// GenericTypeParamContent indexes into the enclosing declaration's
// type parameters.
type GenericTypeParamContent struct{ Index uint32 }

// ReferenceContent is a (possibly mutable) reference type.
type ReferenceContent struct{ Reference *ReferenceType }

// UnparsableContent carries the textual form of a type the producer
// could not parse.
type UnparsableContent struct{ Raw string }

func (*VectorContent) isMoveTypeContent()           {}
func (*StructContent) isMoveTypeContent()           {}
func (*GenericTypeParamContent) isMoveTypeContent() {}
func (*ReferenceContent) isMoveTypeContent()        {}
func (*UnparsableContent) isMoveTypeContent()       {}

// MoveType describes a Move-language type. Vector, struct and reference
// kinds nest further MoveTypes; nesting beyond MaxTypeDepth is rejected
// with a RecursionLimitError.
type MoveType struct {
	Kind    MoveTypeKind    // field 1
	Content MoveTypeContent // oneof content, fields 3-7

	unknown []byte
}

func (t *MoveType) MarshalBinary() ([]byte, error) { return t.appendTo(nil, 0) }

func (t *MoveType) appendTo(b []byte, depth int) ([]byte, error) {
	if depth >= MaxTypeDepth {
		return nil, &movewire.RecursionLimitError{Limit: MaxTypeDepth}
	}
	var err error
	b = wire.AppendUint32(b, 1, uint32(t.Kind))
	switch c := t.Content.(type) {
	case nil:
	case *VectorContent:
		if c.Element != nil {
			b, err = wire.AppendMessage(b, 3, func(sub []byte) ([]byte, error) {
				return c.Element.appendTo(sub, depth+1)
			})
		}
	case *StructContent:
		if c.Tag != nil {
			b, err = wire.AppendMessage(b, 4, func(sub []byte) ([]byte, error) {
				return c.Tag.appendTo(sub, depth+1)
			})
		}
	case *GenericTypeParamContent:
		// Oneof membership forces presence even at zero.
		b = protowire.AppendTag(b, 5, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(c.Index))
	case *ReferenceContent:
		if c.Reference != nil {
			b, err = wire.AppendMessage(b, 6, func(sub []byte) ([]byte, error) {
				return c.Reference.appendTo(sub, depth+1)
			})
		}
	case *UnparsableContent:
		b = protowire.AppendTag(b, 7, protowire.BytesType)
		b = protowire.AppendString(b, c.Raw)
	}
	if err != nil {
		return nil, err
	}
	return append(b, t.unknown...), nil
}

func (t *MoveType) UnmarshalBinary(data []byte) error { return t.unmarshal(data, 0) }

func (t *MoveType) unmarshal(data []byte, depth int) error {
	if depth >= MaxTypeDepth {
		return &movewire.RecursionLimitError{Limit: MaxTypeDepth}
	}
	*t = MoveType{}
	setContent := func(c MoveTypeContent) error {
		if t.Content != nil {
			return &movewire.MalformedUnionError{Union: "MoveType.content", Reason: "multiple variants populated"}
		}
		t.Content = c
		return nil
	}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			t.Kind = MoveTypeKind(v)
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			elem := new(MoveType)
			if err := elem.unmarshal(v, depth+1); err != nil {
				return err
			}
			if err := setContent(&VectorContent{Element: elem}); err != nil {
				return err
			}
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			tag := new(MoveStructTag)
			if err := tag.unmarshal(v, depth+1); err != nil {
				return err
			}
			if err := setContent(&StructContent{Tag: tag}); err != nil {
				return err
			}
			data = body[vn:]
		case num == 5 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			if err := setContent(&GenericTypeParamContent{Index: v}); err != nil {
				return err
			}
			data = body[vn:]
		case num == 6 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ref := new(ReferenceType)
			if err := ref.unmarshal(v, depth+1); err != nil {
				return err
			}
			if err := setContent(&ReferenceContent{Reference: ref}); err != nil {
				return err
			}
			data = body[vn:]
		case num == 7 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			if err := setContent(&UnparsableContent{Raw: v}); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			t.unknown = append(t.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// MoveStructTag fully qualifies a struct type, including its type
// arguments.
type MoveStructTag struct {
	Address           string      // field 1
	Module            string      // field 2
	Name              string      // field 3
	GenericTypeParams []*MoveType // field 4

	unknown []byte
}

func (s *MoveStructTag) MarshalBinary() ([]byte, error) { return s.appendTo(nil, 0) }

func (s *MoveStructTag) appendTo(b []byte, depth int) ([]byte, error) {
	if depth >= MaxTypeDepth {
		return nil, &movewire.RecursionLimitError{Limit: MaxTypeDepth}
	}
	var err error
	b = wire.AppendString(b, 1, s.Address)
	b = wire.AppendString(b, 2, s.Module)
	b = wire.AppendString(b, 3, s.Name)
	for _, p := range s.GenericTypeParams {
		p := p
		if b, err = wire.AppendMessage(b, 4, func(sub []byte) ([]byte, error) {
			return p.appendTo(sub, depth+1)
		}); err != nil {
			return nil, err
		}
	}
	return append(b, s.unknown...), nil
}

func (s *MoveStructTag) UnmarshalBinary(data []byte) error { return s.unmarshal(data, 0) }

func (s *MoveStructTag) unmarshal(data []byte, depth int) error {
	if depth >= MaxTypeDepth {
		return &movewire.RecursionLimitError{Limit: MaxTypeDepth}
	}
	*s = MoveStructTag{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			s.Address = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			s.Module = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			s.Name = v
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			p := new(MoveType)
			if err := p.unmarshal(v, depth+1); err != nil {
				return err
			}
			s.GenericTypeParams = append(s.GenericTypeParams, p)
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			s.unknown = append(s.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// ReferenceType is a reference to another type.
type ReferenceType struct {
	Mutable bool      // field 1
	To      *MoveType // field 2

	unknown []byte
}

func (r *ReferenceType) MarshalBinary() ([]byte, error) { return r.appendTo(nil, 0) }

func (r *ReferenceType) appendTo(b []byte, depth int) ([]byte, error) {
	if depth >= MaxTypeDepth {
		return nil, &movewire.RecursionLimitError{Limit: MaxTypeDepth}
	}
	var err error
	b = wire.AppendBool(b, 1, r.Mutable)
	if r.To != nil {
		if b, err = wire.AppendMessage(b, 2, func(sub []byte) ([]byte, error) {
			return r.To.appendTo(sub, depth+1)
		}); err != nil {
			return nil, err
		}
	}
	return append(b, r.unknown...), nil
}

func (r *ReferenceType) UnmarshalBinary(data []byte) error { return r.unmarshal(data, 0) }

func (r *ReferenceType) unmarshal(data []byte, depth int) error {
	if depth >= MaxTypeDepth {
		return &movewire.RecursionLimitError{Limit: MaxTypeDepth}
	}
	*r = ReferenceType{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.BoolField(body)
			if err != nil {
				return err
			}
			r.Mutable = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			r.To = new(MoveType)
			if err := r.To.unmarshal(v, depth+1); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			r.unknown = append(r.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}
