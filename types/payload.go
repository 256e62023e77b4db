package types

import (
	"github.com/movestream/movewire"
	"github.com/movestream/movewire/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// TransactionPayloadType discriminates the payload variant. Value 3 was
// retired along with its field and is never produced.
type TransactionPayloadType uint32

const (
	TransactionPayloadTypeUnspecified   TransactionPayloadType = 0
	TransactionPayloadTypeEntryFunction TransactionPayloadType = 1
	TransactionPayloadTypeScript        TransactionPayloadType = 2
	TransactionPayloadTypeWriteSet      TransactionPayloadType = 4
	TransactionPayloadTypeMultisig      TransactionPayloadType = 5
)

func (t TransactionPayloadType) String() string {
	switch t {
	case TransactionPayloadTypeUnspecified:
		return "unspecified"
	case TransactionPayloadTypeEntryFunction:
		return "entry_function_payload"
	case TransactionPayloadTypeScript:
		return "script_payload"
	case TransactionPayloadTypeWriteSet:
		return "write_set_payload"
	case TransactionPayloadTypeMultisig:
		return "multisig_payload"
	}
	return "raw(" + wire.FormatUint64(uint64(t)) + ")"
}

// PayloadVariant is the payload of a TransactionPayload.
type PayloadVariant interface {
	isPayloadVariant()
}

func (*EntryFunctionPayload) isPayloadVariant() {}
func (*ScriptPayload) isPayloadVariant()        {}
func (*WriteSetPayload) isPayloadVariant()      {}
func (*MultisigPayload) isPayloadVariant()      {}

// TransactionPayload is what a user transaction asks the VM to execute.
type TransactionPayload struct {
	Type    TransactionPayloadType // field 1
	Payload PayloadVariant         // oneof payload, fields 2, 3, 5, 6

	unknown []byte
}

func (p *TransactionPayload) MarshalBinary() ([]byte, error) { return p.appendTo(nil) }

func (p *TransactionPayload) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendUint32(b, 1, uint32(p.Type))
	switch v := p.Payload.(type) {
	case nil:
	case *EntryFunctionPayload:
		b, err = wire.AppendMessage(b, 2, v.appendTo)
	case *ScriptPayload:
		b, err = wire.AppendMessage(b, 3, v.appendTo)
	case *WriteSetPayload:
		b, err = wire.AppendMessage(b, 5, v.appendTo)
	case *MultisigPayload:
		b, err = wire.AppendMessage(b, 6, v.appendTo)
	}
	if err != nil {
		return nil, err
	}
	return append(b, p.unknown...), nil
}

func (p *TransactionPayload) UnmarshalBinary(data []byte) error {
	*p = TransactionPayload{}
	setPayload := func(v PayloadVariant) error {
		if p.Payload != nil {
			return &movewire.MalformedUnionError{Union: "TransactionPayload.payload", Reason: "multiple variants populated"}
		}
		p.Payload = v
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
			p.Type = TransactionPayloadType(v)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ef := new(EntryFunctionPayload)
			if err := ef.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setPayload(ef); err != nil {
				return err
			}
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			sp := new(ScriptPayload)
			if err := sp.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setPayload(sp); err != nil {
				return err
			}
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ws := new(WriteSetPayload)
			if err := ws.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setPayload(ws); err != nil {
				return err
			}
			data = body[vn:]
		case num == 6 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ms := new(MultisigPayload)
			if err := ms.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setPayload(ms); err != nil {
				return err
			}
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

// EntryFunctionId names a published entry function.
type EntryFunctionId struct {
	Module *MoveModuleId // field 1
	Name   string        // field 2

	unknown []byte
}

func (id *EntryFunctionId) MarshalBinary() ([]byte, error) { return id.appendTo(nil) }

func (id *EntryFunctionId) appendTo(b []byte) ([]byte, error) {
	var err error
	if id.Module != nil {
		if b, err = wire.AppendMessage(b, 1, id.Module.appendTo); err != nil {
			return nil, err
		}
	}
	b = wire.AppendString(b, 2, id.Name)
	return append(b, id.unknown...), nil
}

func (id *EntryFunctionId) UnmarshalBinary(data []byte) error {
	*id = EntryFunctionId{}
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
			id.Module = new(MoveModuleId)
			if err := id.Module.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			id.Name = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			id.unknown = append(id.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// EntryFunctionPayload calls a published entry function. Arguments are
// JSON-encoded values, opaque to this layer.
type EntryFunctionPayload struct {
	Function           *EntryFunctionId // field 1
	TypeArguments      []*MoveType      // field 2
	Arguments          []string         // field 3
	EntryFunctionIDStr string           // field 4

	unknown []byte
}

func (p *EntryFunctionPayload) MarshalBinary() ([]byte, error) { return p.appendTo(nil) }

func (p *EntryFunctionPayload) appendTo(b []byte) ([]byte, error) {
	var err error
	if p.Function != nil {
		if b, err = wire.AppendMessage(b, 1, p.Function.appendTo); err != nil {
			return nil, err
		}
	}
	for _, t := range p.TypeArguments {
		t := t
		if b, err = wire.AppendMessage(b, 2, func(sub []byte) ([]byte, error) {
			return t.appendTo(sub, 0)
		}); err != nil {
			return nil, err
		}
	}
	for _, a := range p.Arguments {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, a)
	}
	b = wire.AppendString(b, 4, p.EntryFunctionIDStr)
	return append(b, p.unknown...), nil
}

func (p *EntryFunctionPayload) UnmarshalBinary(data []byte) error {
	*p = EntryFunctionPayload{}
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
			p.Function = new(EntryFunctionId)
			if err := p.Function.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			t := new(MoveType)
			if err := t.unmarshal(v, 0); err != nil {
				return err
			}
			p.TypeArguments = append(p.TypeArguments, t)
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			p.Arguments = append(p.Arguments, v)
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			p.EntryFunctionIDStr = v
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

// MoveScriptBytecode is compiled script code with its optional ABI.
type MoveScriptBytecode struct {
	Bytecode []byte        // field 1
	ABI      *MoveFunction // field 2

	unknown []byte
}

func (m *MoveScriptBytecode) MarshalBinary() ([]byte, error) { return m.appendTo(nil) }

func (m *MoveScriptBytecode) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendBytes(b, 1, m.Bytecode)
	if m.ABI != nil {
		if b, err = wire.AppendMessage(b, 2, m.ABI.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, m.unknown...), nil
}

func (m *MoveScriptBytecode) UnmarshalBinary(data []byte) error {
	*m = MoveScriptBytecode{}
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
			m.ABI = new(MoveFunction)
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

// ScriptPayload submits ad-hoc compiled code.
type ScriptPayload struct {
	Code          *MoveScriptBytecode // field 1
	TypeArguments []*MoveType         // field 2
	Arguments     []string            // field 3

	unknown []byte
}

func (p *ScriptPayload) MarshalBinary() ([]byte, error) { return p.appendTo(nil) }

func (p *ScriptPayload) appendTo(b []byte) ([]byte, error) {
	var err error
	if p.Code != nil {
		if b, err = wire.AppendMessage(b, 1, p.Code.appendTo); err != nil {
			return nil, err
		}
	}
	for _, t := range p.TypeArguments {
		t := t
		if b, err = wire.AppendMessage(b, 2, func(sub []byte) ([]byte, error) {
			return t.appendTo(sub, 0)
		}); err != nil {
			return nil, err
		}
	}
	for _, a := range p.Arguments {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, a)
	}
	return append(b, p.unknown...), nil
}

func (p *ScriptPayload) UnmarshalBinary(data []byte) error {
	*p = ScriptPayload{}
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
			p.Code = new(MoveScriptBytecode)
			if err := p.Code.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			t := new(MoveType)
			if err := t.unmarshal(v, 0); err != nil {
				return err
			}
			p.TypeArguments = append(p.TypeArguments, t)
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			p.Arguments = append(p.Arguments, v)
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

// MultisigTransactionPayloadType discriminates the inner payload of a
// multisig transaction.
type MultisigTransactionPayloadType uint32

const (
	MultisigTransactionPayloadTypeUnspecified   MultisigTransactionPayloadType = 0
	MultisigTransactionPayloadTypeEntryFunction MultisigTransactionPayloadType = 1
)

// MultisigTransactionPayload is the inner payload executed on behalf of
// a multisig account. Only entry-function calls are representable.
type MultisigTransactionPayload struct {
	Type                 MultisigTransactionPayloadType // field 1
	EntryFunctionPayload *EntryFunctionPayload          // oneof payload, field 2

	unknown []byte
}

func (p *MultisigTransactionPayload) MarshalBinary() ([]byte, error) { return p.appendTo(nil) }

func (p *MultisigTransactionPayload) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendUint32(b, 1, uint32(p.Type))
	if p.EntryFunctionPayload != nil {
		if b, err = wire.AppendMessage(b, 2, p.EntryFunctionPayload.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, p.unknown...), nil
}

func (p *MultisigTransactionPayload) UnmarshalBinary(data []byte) error {
	*p = MultisigTransactionPayload{}
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
			p.Type = MultisigTransactionPayloadType(v)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			if p.EntryFunctionPayload != nil {
				return &movewire.MalformedUnionError{Union: "MultisigTransactionPayload.payload", Reason: "multiple variants populated"}
			}
			p.EntryFunctionPayload = new(EntryFunctionPayload)
			if err := p.EntryFunctionPayload.UnmarshalBinary(v); err != nil {
				return err
			}
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

// MultisigPayload routes a transaction through a multisig account. The
// inner payload is absent when the transaction was stored on-chain
// beforehand.
type MultisigPayload struct {
	MultisigAddress    string                      // field 1
	TransactionPayload *MultisigTransactionPayload // field 2, optional

	unknown []byte
}

func (p *MultisigPayload) MarshalBinary() ([]byte, error) { return p.appendTo(nil) }

func (p *MultisigPayload) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, p.MultisigAddress)
	if p.TransactionPayload != nil {
		if b, err = wire.AppendMessage(b, 2, p.TransactionPayload.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, p.unknown...), nil
}

func (p *MultisigPayload) UnmarshalBinary(data []byte) error {
	*p = MultisigPayload{}
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
			p.MultisigAddress = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			p.TransactionPayload = new(MultisigTransactionPayload)
			if err := p.TransactionPayload.UnmarshalBinary(v); err != nil {
				return err
			}
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

// WriteSetPayload wraps a write set as a transaction payload.
type WriteSetPayload struct {
	WriteSet *WriteSet // field 1

	unknown []byte
}

func (p *WriteSetPayload) MarshalBinary() ([]byte, error) { return p.appendTo(nil) }

func (p *WriteSetPayload) appendTo(b []byte) ([]byte, error) {
	var err error
	if p.WriteSet != nil {
		if b, err = wire.AppendMessage(b, 1, p.WriteSet.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, p.unknown...), nil
}

func (p *WriteSetPayload) UnmarshalBinary(data []byte) error {
	*p = WriteSetPayload{}
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
			p.WriteSet = new(WriteSet)
			if err := p.WriteSet.UnmarshalBinary(v); err != nil {
				return err
			}
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
