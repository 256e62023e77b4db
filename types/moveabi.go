package types

import (
	"github.com/movestream/movewire/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// MoveAbility is a type ability constraint.
type MoveAbility uint32

const (
	MoveAbilityUnspecified MoveAbility = 0
	MoveAbilityCopy        MoveAbility = 1
	MoveAbilityDrop        MoveAbility = 2
	MoveAbilityStore       MoveAbility = 3
	MoveAbilityKey         MoveAbility = 4
)

func (a MoveAbility) String() string {
	switch a {
	case MoveAbilityUnspecified:
		return "unspecified"
	case MoveAbilityCopy:
		return "copy"
	case MoveAbilityDrop:
		return "drop"
	case MoveAbilityStore:
		return "store"
	case MoveAbilityKey:
		return "key"
	}
	return "raw(" + wire.FormatUint64(uint64(a)) + ")"
}

// Visibility is a function's access level.
type Visibility uint32

const (
	VisibilityUnspecified Visibility = 0
	VisibilityPrivate     Visibility = 1
	VisibilityPublic      Visibility = 2
	VisibilityFriend      Visibility = 3
)

func (v Visibility) String() string {
	switch v {
	case VisibilityUnspecified:
		return "unspecified"
	case VisibilityPrivate:
		return "private"
	case VisibilityPublic:
		return "public"
	case VisibilityFriend:
		return "friend"
	}
	return "raw(" + wire.FormatUint64(uint64(v)) + ")"
}

// MoveModuleId names a published module.
type MoveModuleId struct {
	Address string // field 1
	Name    string // field 2

	unknown []byte
}

func (m *MoveModuleId) MarshalBinary() ([]byte, error) { return m.appendTo(nil) }

func (m *MoveModuleId) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendString(b, 1, m.Address)
	b = wire.AppendString(b, 2, m.Name)
	return append(b, m.unknown...), nil
}

func (m *MoveModuleId) UnmarshalBinary(data []byte) error {
	*m = MoveModuleId{}
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
			m.Address = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			m.Name = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			m.unknown = append(m.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// MoveModuleBytecode is a compiled module together with its decompiled
// ABI when available.
type MoveModuleBytecode struct {
	Bytecode []byte      // field 1
	ABI      *MoveModule // field 2

	unknown []byte
}

func (m *MoveModuleBytecode) MarshalBinary() ([]byte, error) { return m.appendTo(nil) }

func (m *MoveModuleBytecode) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendBytes(b, 1, m.Bytecode)
	if m.ABI != nil {
		if b, err = wire.AppendMessage(b, 2, m.ABI.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, m.unknown...), nil
}

func (m *MoveModuleBytecode) UnmarshalBinary(data []byte) error {
	*m = MoveModuleBytecode{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			m.Bytecode = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			m.ABI = new(MoveModule)
			if err := m.ABI.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			m.unknown = append(m.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// MoveModule is the ABI of a published module.
type MoveModule struct {
	Address          string          // field 1
	Name             string          // field 2
	Friends          []*MoveModuleId // field 3
	ExposedFunctions []*MoveFunction // field 4
	Structs          []*MoveStruct   // field 5

	unknown []byte
}

func (m *MoveModule) MarshalBinary() ([]byte, error) { return m.appendTo(nil) }

func (m *MoveModule) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, m.Address)
	b = wire.AppendString(b, 2, m.Name)
	for _, f := range m.Friends {
		if b, err = wire.AppendMessage(b, 3, f.appendTo); err != nil {
			return nil, err
		}
	}
	for _, f := range m.ExposedFunctions {
		if b, err = wire.AppendMessage(b, 4, f.appendTo); err != nil {
			return nil, err
		}
	}
	for _, s := range m.Structs {
		if b, err = wire.AppendMessage(b, 5, s.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, m.unknown...), nil
}

func (m *MoveModule) UnmarshalBinary(data []byte) error {
	*m = MoveModule{}
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
			m.Address = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			m.Name = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			f := new(MoveModuleId)
			if err := f.UnmarshalBinary(v); err != nil {
				return err
			}
			m.Friends = append(m.Friends, f)
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			f := new(MoveFunction)
			if err := f.UnmarshalBinary(v); err != nil {
				return err
			}
			m.ExposedFunctions = append(m.ExposedFunctions, f)
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			s := new(MoveStruct)
			if err := s.UnmarshalBinary(v); err != nil {
				return err
			}
			m.Structs = append(m.Structs, s)
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			m.unknown = append(m.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// MoveFunction describes one exposed function.
type MoveFunction struct {
	Name              string                          // field 1
	Visibility        Visibility                      // field 2
	IsEntry           bool                            // field 3
	GenericTypeParams []*MoveFunctionGenericTypeParam // field 4
	Params            []*MoveType                     // field 5
	Return            []*MoveType                     // field 6

	unknown []byte
}

func (f *MoveFunction) MarshalBinary() ([]byte, error) { return f.appendTo(nil) }

func (f *MoveFunction) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, f.Name)
	b = wire.AppendUint32(b, 2, uint32(f.Visibility))
	b = wire.AppendBool(b, 3, f.IsEntry)
	for _, p := range f.GenericTypeParams {
		if b, err = wire.AppendMessage(b, 4, p.appendTo); err != nil {
			return nil, err
		}
	}
	for _, t := range f.Params {
		t := t
		if b, err = wire.AppendMessage(b, 5, func(sub []byte) ([]byte, error) {
			return t.appendTo(sub, 0)
		}); err != nil {
			return nil, err
		}
	}
	for _, t := range f.Return {
		t := t
		if b, err = wire.AppendMessage(b, 6, func(sub []byte) ([]byte, error) {
			return t.appendTo(sub, 0)
		}); err != nil {
			return nil, err
		}
	}
	return append(b, f.unknown...), nil
}

func (f *MoveFunction) UnmarshalBinary(data []byte) error {
	*f = MoveFunction{}
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
			f.Name = v
			data = body[vn:]
		case num == 2 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			f.Visibility = Visibility(v)
			data = body[vn:]
		case num == 3 && typ == protowire.VarintType:
			v, vn, err := wire.BoolField(body)
			if err != nil {
				return err
			}
			f.IsEntry = v
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			p := new(MoveFunctionGenericTypeParam)
			if err := p.UnmarshalBinary(v); err != nil {
				return err
			}
			f.GenericTypeParams = append(f.GenericTypeParams, p)
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			t := new(MoveType)
			if err := t.unmarshal(v, 0); err != nil {
				return err
			}
			f.Params = append(f.Params, t)
			data = body[vn:]
		case num == 6 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			t := new(MoveType)
			if err := t.unmarshal(v, 0); err != nil {
				return err
			}
			f.Return = append(f.Return, t)
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			f.unknown = append(f.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// MoveFunctionGenericTypeParam is one type parameter of a function.
type MoveFunctionGenericTypeParam struct {
	Constraints []MoveAbility // field 1, packed

	unknown []byte
}

func (p *MoveFunctionGenericTypeParam) MarshalBinary() ([]byte, error) { return p.appendTo(nil) }

func (p *MoveFunctionGenericTypeParam) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendPacked(b, 1, p.Constraints)
	return append(b, p.unknown...), nil
}

func (p *MoveFunctionGenericTypeParam) UnmarshalBinary(data []byte) error {
	*p = MoveFunctionGenericTypeParam{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.Packed[MoveAbility](body)
			if err != nil {
				return err
			}
			p.Constraints = append(p.Constraints, v...)
			data = body[vn:]
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			p.Constraints = append(p.Constraints, MoveAbility(v))
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			p.unknown = append(p.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// MoveStruct describes one declared struct.
type MoveStruct struct {
	Name              string                        // field 1
	IsNative          bool                          // field 2
	Abilities         []MoveAbility                 // field 3, packed
	GenericTypeParams []*MoveStructGenericTypeParam // field 4
	Fields            []*MoveStructField            // field 5

	unknown []byte
}

func (s *MoveStruct) MarshalBinary() ([]byte, error) { return s.appendTo(nil) }

func (s *MoveStruct) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, s.Name)
	b = wire.AppendBool(b, 2, s.IsNative)
	b = wire.AppendPacked(b, 3, s.Abilities)
	for _, p := range s.GenericTypeParams {
		if b, err = wire.AppendMessage(b, 4, p.appendTo); err != nil {
			return nil, err
		}
	}
	for _, f := range s.Fields {
		if b, err = wire.AppendMessage(b, 5, f.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, s.unknown...), nil
}

func (s *MoveStruct) UnmarshalBinary(data []byte) error {
	*s = MoveStruct{}
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
			s.Name = v
			data = body[vn:]
		case num == 2 && typ == protowire.VarintType:
			v, vn, err := wire.BoolField(body)
			if err != nil {
				return err
			}
			s.IsNative = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.Packed[MoveAbility](body)
			if err != nil {
				return err
			}
			s.Abilities = append(s.Abilities, v...)
			data = body[vn:]
		case num == 3 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			s.Abilities = append(s.Abilities, MoveAbility(v))
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			p := new(MoveStructGenericTypeParam)
			if err := p.UnmarshalBinary(v); err != nil {
				return err
			}
			s.GenericTypeParams = append(s.GenericTypeParams, p)
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			f := new(MoveStructField)
			if err := f.UnmarshalBinary(v); err != nil {
				return err
			}
			s.Fields = append(s.Fields, f)
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

// MoveStructGenericTypeParam is one type parameter of a struct.
type MoveStructGenericTypeParam struct {
	Constraints []MoveAbility // field 1, packed
	IsPhantom   bool          // field 2

	unknown []byte
}

func (p *MoveStructGenericTypeParam) MarshalBinary() ([]byte, error) { return p.appendTo(nil) }

func (p *MoveStructGenericTypeParam) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendPacked(b, 1, p.Constraints)
	b = wire.AppendBool(b, 2, p.IsPhantom)
	return append(b, p.unknown...), nil
}

func (p *MoveStructGenericTypeParam) UnmarshalBinary(data []byte) error {
	*p = MoveStructGenericTypeParam{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, vn, err := wire.Packed[MoveAbility](body)
			if err != nil {
				return err
			}
			p.Constraints = append(p.Constraints, v...)
			data = body[vn:]
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			p.Constraints = append(p.Constraints, MoveAbility(v))
			data = body[vn:]
		case num == 2 && typ == protowire.VarintType:
			v, vn, err := wire.BoolField(body)
			if err != nil {
				return err
			}
			p.IsPhantom = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			p.unknown = append(p.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// MoveStructField is one field of a struct.
type MoveStructField struct {
	Name string    // field 1
	Type *MoveType // field 2

	unknown []byte
}

func (f *MoveStructField) MarshalBinary() ([]byte, error) { return f.appendTo(nil) }

func (f *MoveStructField) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, f.Name)
	if f.Type != nil {
		if b, err = wire.AppendMessage(b, 2, func(sub []byte) ([]byte, error) {
			return f.Type.appendTo(sub, 0)
		}); err != nil {
			return nil, err
		}
	}
	return append(b, f.unknown...), nil
}

func (f *MoveStructField) UnmarshalBinary(data []byte) error {
	*f = MoveStructField{}
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
			f.Name = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			f.Type = new(MoveType)
			if err := f.Type.unmarshal(v, 0); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			f.unknown = append(f.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}
