package types

import (
	"github.com/movestream/movewire"
	"github.com/movestream/movewire/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// WriteSetType discriminates the write-set variant.
type WriteSetType uint32

const (
	WriteSetTypeUnspecified WriteSetType = 0
	WriteSetTypeScript      WriteSetType = 1
	WriteSetTypeDirect      WriteSetType = 2
)

func (t WriteSetType) String() string {
	switch t {
	case WriteSetTypeUnspecified:
		return "unspecified"
	case WriteSetTypeScript:
		return "script_write_set"
	case WriteSetTypeDirect:
		return "direct_write_set"
	}
	return "raw(" + wire.FormatUint64(uint64(t)) + ")"
}

// WriteSetVariant is the payload of a WriteSet.
type WriteSetVariant interface {
	isWriteSetVariant()
}

func (*ScriptWriteSet) isWriteSetVariant() {}
func (*DirectWriteSet) isWriteSetVariant() {}

// WriteSet is a batch of state mutations, either expressed directly or
// produced by executing a script.
type WriteSet struct {
	Type    WriteSetType    // field 1
	Variant WriteSetVariant // oneof write_set, fields 2-3

	unknown []byte
}

func (w *WriteSet) MarshalBinary() ([]byte, error) { return w.appendTo(nil) }

func (w *WriteSet) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendUint32(b, 1, uint32(w.Type))
	switch v := w.Variant.(type) {
	case nil:
	case *ScriptWriteSet:
		b, err = wire.AppendMessage(b, 2, v.appendTo)
	case *DirectWriteSet:
		b, err = wire.AppendMessage(b, 3, v.appendTo)
	}
	if err != nil {
		return nil, err
	}
	return append(b, w.unknown...), nil
}

func (w *WriteSet) UnmarshalBinary(data []byte) error {
	*w = WriteSet{}
	setVariant := func(v WriteSetVariant) error {
		if w.Variant != nil {
			return &movewire.MalformedUnionError{Union: "WriteSet.write_set", Reason: "multiple variants populated"}
		}
		w.Variant = v
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
			w.Type = WriteSetType(v)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			s := new(ScriptWriteSet)
			if err := s.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(s); err != nil {
				return err
			}
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d := new(DirectWriteSet)
			if err := d.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setVariant(d); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			w.unknown = append(w.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// ScriptWriteSet expresses mutations as a script executed on behalf of
// ExecuteAs.
type ScriptWriteSet struct {
	ExecuteAs string         // field 1
	Script    *ScriptPayload // field 2

	unknown []byte
}

func (s *ScriptWriteSet) MarshalBinary() ([]byte, error) { return s.appendTo(nil) }

func (s *ScriptWriteSet) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, s.ExecuteAs)
	if s.Script != nil {
		if b, err = wire.AppendMessage(b, 2, s.Script.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, s.unknown...), nil
}

func (s *ScriptWriteSet) UnmarshalBinary(data []byte) error {
	*s = ScriptWriteSet{}
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
			s.ExecuteAs = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			s.Script = new(ScriptPayload)
			if err := s.Script.UnmarshalBinary(v); err != nil {
				return err
			}
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

// DirectWriteSet lists the mutations and emitted events explicitly.
type DirectWriteSet struct {
	WriteSetChange []*WriteSetChange // field 1
	Events         []*Event          // field 2

	unknown []byte
}

func (d *DirectWriteSet) MarshalBinary() ([]byte, error) { return d.appendTo(nil) }

func (d *DirectWriteSet) appendTo(b []byte) ([]byte, error) {
	var err error
	for _, c := range d.WriteSetChange {
		if b, err = wire.AppendMessage(b, 1, c.appendTo); err != nil {
			return nil, err
		}
	}
	for _, e := range d.Events {
		if b, err = wire.AppendMessage(b, 2, e.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, d.unknown...), nil
}

func (d *DirectWriteSet) UnmarshalBinary(data []byte) error {
	*d = DirectWriteSet{}
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
			c := new(WriteSetChange)
			if err := c.UnmarshalBinary(v); err != nil {
				return err
			}
			d.WriteSetChange = append(d.WriteSetChange, c)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			e := new(Event)
			if err := e.UnmarshalBinary(v); err != nil {
				return err
			}
			d.Events = append(d.Events, e)
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			d.unknown = append(d.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// WriteSetChangeType discriminates the change variant.
type WriteSetChangeType uint32

const (
	WriteSetChangeTypeUnspecified     WriteSetChangeType = 0
	WriteSetChangeTypeDeleteModule    WriteSetChangeType = 1
	WriteSetChangeTypeDeleteResource  WriteSetChangeType = 2
	WriteSetChangeTypeDeleteTableItem WriteSetChangeType = 3
	WriteSetChangeTypeWriteModule     WriteSetChangeType = 4
	WriteSetChangeTypeWriteResource   WriteSetChangeType = 5
	WriteSetChangeTypeWriteTableItem  WriteSetChangeType = 6
)

func (t WriteSetChangeType) String() string {
	switch t {
	case WriteSetChangeTypeUnspecified:
		return "unspecified"
	case WriteSetChangeTypeDeleteModule:
		return "delete_module"
	case WriteSetChangeTypeDeleteResource:
		return "delete_resource"
	case WriteSetChangeTypeDeleteTableItem:
		return "delete_table_item"
	case WriteSetChangeTypeWriteModule:
		return "write_module"
	case WriteSetChangeTypeWriteResource:
		return "write_resource"
	case WriteSetChangeTypeWriteTableItem:
		return "write_table_item"
	}
	return "raw(" + wire.FormatUint64(uint64(t)) + ")"
}

// ChangeKind classifies a change as a write or a delete, independent of
// the target kind (module, resource, table item).
type ChangeKind int

const (
	ChangeKindUnknown ChangeKind = iota
	ChangeKindWrite
	ChangeKindDelete
)

// Kind classifies the change by its discriminant.
func (t WriteSetChangeType) Kind() ChangeKind {
	switch t {
	case WriteSetChangeTypeWriteModule, WriteSetChangeTypeWriteResource, WriteSetChangeTypeWriteTableItem:
		return ChangeKindWrite
	case WriteSetChangeTypeDeleteModule, WriteSetChangeTypeDeleteResource, WriteSetChangeTypeDeleteTableItem:
		return ChangeKindDelete
	}
	return ChangeKindUnknown
}

// ChangeVariant is the payload of a WriteSetChange.
type ChangeVariant interface {
	isChangeVariant()
}

func (*DeleteModule) isChangeVariant()    {}
func (*DeleteResource) isChangeVariant()  {}
func (*DeleteTableItem) isChangeVariant() {}
func (*WriteModule) isChangeVariant()     {}
func (*WriteResource) isChangeVariant()   {}
func (*WriteTableItem) isChangeVariant()  {}

// WriteSetChange is one state mutation.
type WriteSetChange struct {
	Type   WriteSetChangeType // field 1
	Change ChangeVariant      // oneof change, fields 2-7

	unknown []byte
}

func (c *WriteSetChange) MarshalBinary() ([]byte, error) { return c.appendTo(nil) }

func (c *WriteSetChange) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendUint32(b, 1, uint32(c.Type))
	switch v := c.Change.(type) {
	case nil:
	case *DeleteModule:
		b, err = wire.AppendMessage(b, 2, v.appendTo)
	case *DeleteResource:
		b, err = wire.AppendMessage(b, 3, v.appendTo)
	case *DeleteTableItem:
		b, err = wire.AppendMessage(b, 4, v.appendTo)
	case *WriteModule:
		b, err = wire.AppendMessage(b, 5, v.appendTo)
	case *WriteResource:
		b, err = wire.AppendMessage(b, 6, v.appendTo)
	case *WriteTableItem:
		b, err = wire.AppendMessage(b, 7, v.appendTo)
	}
	if err != nil {
		return nil, err
	}
	return append(b, c.unknown...), nil
}

func (c *WriteSetChange) UnmarshalBinary(data []byte) error {
	*c = WriteSetChange{}
	setChange := func(v ChangeVariant) error {
		if c.Change != nil {
			return &movewire.MalformedUnionError{Union: "WriteSetChange.change", Reason: "multiple variants populated"}
		}
		c.Change = v
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
			c.Type = WriteSetChangeType(v)
			data = body[vn:]
		case num >= 2 && num <= 7 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			var variant ChangeVariant
			switch num {
			case 2:
				variant = new(DeleteModule)
			case 3:
				variant = new(DeleteResource)
			case 4:
				variant = new(DeleteTableItem)
			case 5:
				variant = new(WriteModule)
			case 6:
				variant = new(WriteResource)
			case 7:
				variant = new(WriteTableItem)
			}
			if err := variant.(movewire.Message).UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setChange(variant); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			c.unknown = append(c.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// DeleteModule removes a published module.
type DeleteModule struct {
	Address      string        // field 1
	StateKeyHash []byte        // field 2
	Module       *MoveModuleId // field 3

	unknown []byte
}

func (d *DeleteModule) MarshalBinary() ([]byte, error) { return d.appendTo(nil) }

func (d *DeleteModule) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, d.Address)
	b = wire.AppendBytes(b, 2, d.StateKeyHash)
	if d.Module != nil {
		if b, err = wire.AppendMessage(b, 3, d.Module.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, d.unknown...), nil
}

func (d *DeleteModule) UnmarshalBinary(data []byte) error {
	*d = DeleteModule{}
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
			d.Address = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d.StateKeyHash = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d.Module = new(MoveModuleId)
			if err := d.Module.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			d.unknown = append(d.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// DeleteResource removes a resource from an account.
type DeleteResource struct {
	Address      string         // field 1
	StateKeyHash []byte         // field 2
	Type         *MoveStructTag // field 3
	TypeStr      string         // field 4

	unknown []byte
}

func (d *DeleteResource) MarshalBinary() ([]byte, error) { return d.appendTo(nil) }

func (d *DeleteResource) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, d.Address)
	b = wire.AppendBytes(b, 2, d.StateKeyHash)
	if d.Type != nil {
		if b, err = wire.AppendMessage(b, 3, func(sub []byte) ([]byte, error) {
			return d.Type.appendTo(sub, 0)
		}); err != nil {
			return nil, err
		}
	}
	b = wire.AppendString(b, 4, d.TypeStr)
	return append(b, d.unknown...), nil
}

func (d *DeleteResource) UnmarshalBinary(data []byte) error {
	*d = DeleteResource{}
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
			d.Address = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d.StateKeyHash = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d.Type = new(MoveStructTag)
			if err := d.Type.unmarshal(v, 0); err != nil {
				return err
			}
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			d.TypeStr = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			d.unknown = append(d.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// DeleteTableItem removes one entry from a table.
type DeleteTableItem struct {
	StateKeyHash []byte           // field 1
	Handle       string           // field 2
	Key          string           // field 3
	Data         *DeleteTableData // field 4

	unknown []byte
}

func (d *DeleteTableItem) MarshalBinary() ([]byte, error) { return d.appendTo(nil) }

func (d *DeleteTableItem) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendBytes(b, 1, d.StateKeyHash)
	b = wire.AppendString(b, 2, d.Handle)
	b = wire.AppendString(b, 3, d.Key)
	if d.Data != nil {
		if b, err = wire.AppendMessage(b, 4, d.Data.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, d.unknown...), nil
}

func (d *DeleteTableItem) UnmarshalBinary(data []byte) error {
	*d = DeleteTableItem{}
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
			d.StateKeyHash = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			d.Handle = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			d.Key = v
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d.Data = new(DeleteTableData)
			if err := d.Data.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			d.unknown = append(d.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// DeleteTableData describes the deleted table key.
type DeleteTableData struct {
	Key     string // field 1
	KeyType string // field 2

	unknown []byte
}

func (d *DeleteTableData) MarshalBinary() ([]byte, error) { return d.appendTo(nil) }

func (d *DeleteTableData) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendString(b, 1, d.Key)
	b = wire.AppendString(b, 2, d.KeyType)
	return append(b, d.unknown...), nil
}

func (d *DeleteTableData) UnmarshalBinary(data []byte) error {
	*d = DeleteTableData{}
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
			d.Key = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			d.KeyType = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			d.unknown = append(d.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// WriteModule publishes or replaces a module.
type WriteModule struct {
	Address      string              // field 1
	StateKeyHash []byte              // field 2
	Data         *MoveModuleBytecode // field 3

	unknown []byte
}

func (w *WriteModule) MarshalBinary() ([]byte, error) { return w.appendTo(nil) }

func (w *WriteModule) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, w.Address)
	b = wire.AppendBytes(b, 2, w.StateKeyHash)
	if w.Data != nil {
		if b, err = wire.AppendMessage(b, 3, w.Data.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, w.unknown...), nil
}

func (w *WriteModule) UnmarshalBinary(data []byte) error {
	*w = WriteModule{}
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
			w.Address = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			w.StateKeyHash = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			w.Data = new(MoveModuleBytecode)
			if err := w.Data.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			w.unknown = append(w.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// WriteResource writes a resource under an account. Data is the
// resource value as opaque JSON.
type WriteResource struct {
	Address      string         // field 1
	StateKeyHash []byte         // field 2
	Type         *MoveStructTag // field 3
	TypeStr      string         // field 4
	Data         string         // field 5

	unknown []byte
}

func (w *WriteResource) MarshalBinary() ([]byte, error) { return w.appendTo(nil) }

func (w *WriteResource) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, w.Address)
	b = wire.AppendBytes(b, 2, w.StateKeyHash)
	if w.Type != nil {
		if b, err = wire.AppendMessage(b, 3, func(sub []byte) ([]byte, error) {
			return w.Type.appendTo(sub, 0)
		}); err != nil {
			return nil, err
		}
	}
	b = wire.AppendString(b, 4, w.TypeStr)
	b = wire.AppendString(b, 5, w.Data)
	return append(b, w.unknown...), nil
}

func (w *WriteResource) UnmarshalBinary(data []byte) error {
	*w = WriteResource{}
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
			w.Address = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			w.StateKeyHash = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			w.Type = new(MoveStructTag)
			if err := w.Type.unmarshal(v, 0); err != nil {
				return err
			}
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			w.TypeStr = v
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			w.Data = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			w.unknown = append(w.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// WriteTableItem writes one entry of a table.
type WriteTableItem struct {
	StateKeyHash []byte          // field 1
	Handle       string          // field 2
	Key          string          // field 3
	Data         *WriteTableData // field 4

	unknown []byte
}

func (w *WriteTableItem) MarshalBinary() ([]byte, error) { return w.appendTo(nil) }

func (w *WriteTableItem) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendBytes(b, 1, w.StateKeyHash)
	b = wire.AppendString(b, 2, w.Handle)
	b = wire.AppendString(b, 3, w.Key)
	if w.Data != nil {
		if b, err = wire.AppendMessage(b, 4, w.Data.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, w.unknown...), nil
}

func (w *WriteTableItem) UnmarshalBinary(data []byte) error {
	*w = WriteTableItem{}
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
			w.StateKeyHash = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			w.Handle = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			w.Key = v
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			w.Data = new(WriteTableData)
			if err := w.Data.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			w.unknown = append(w.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// WriteTableData describes the written table entry.
type WriteTableData struct {
	Key       string // field 1
	KeyType   string // field 2
	Value     string // field 3
	ValueType string // field 4

	unknown []byte
}

func (w *WriteTableData) MarshalBinary() ([]byte, error) { return w.appendTo(nil) }

func (w *WriteTableData) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendString(b, 1, w.Key)
	b = wire.AppendString(b, 2, w.KeyType)
	b = wire.AppendString(b, 3, w.Value)
	b = wire.AppendString(b, 4, w.ValueType)
	return append(b, w.unknown...), nil
}

func (w *WriteTableData) UnmarshalBinary(data []byte) error {
	*w = WriteTableData{}
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
			w.Key = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			w.KeyType = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			w.Value = v
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			w.ValueType = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			w.unknown = append(w.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}
