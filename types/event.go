package types

import (
	"github.com/movestream/movewire/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// EventKey identifies an event stream: the creation number together
// with the owning account address is unique chain-wide.
type EventKey struct {
	CreationNumber U64    // field 1
	AccountAddress string // field 2

	unknown []byte
}

func (k *EventKey) MarshalBinary() ([]byte, error) { return k.appendTo(nil) }

func (k *EventKey) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendUint64(b, 1, uint64(k.CreationNumber))
	b = wire.AppendString(b, 2, k.AccountAddress)
	return append(b, k.unknown...), nil
}

func (k *EventKey) UnmarshalBinary(data []byte) error {
	*k = EventKey{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			k.CreationNumber = U64(v)
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			k.AccountAddress = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			k.unknown = append(k.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// Event is emitted by transaction execution. SequenceNumber is
// monotonic within the event stream named by Key. Data is an opaque
// JSON-encoded payload; this layer never interprets it.
type Event struct {
	Key            *EventKey // field 1
	SequenceNumber U64       // field 2
	Type           *MoveType // field 3
	Data           string    // field 4
	TypeStr        string    // field 5

	unknown []byte
}

func (e *Event) MarshalBinary() ([]byte, error) { return e.appendTo(nil) }

func (e *Event) appendTo(b []byte) ([]byte, error) {
	var err error
	if e.Key != nil {
		if b, err = wire.AppendMessage(b, 1, e.Key.appendTo); err != nil {
			return nil, err
		}
	}
	b = wire.AppendUint64(b, 2, uint64(e.SequenceNumber))
	if e.Type != nil {
		if b, err = wire.AppendMessage(b, 3, func(sub []byte) ([]byte, error) {
			return e.Type.appendTo(sub, 0)
		}); err != nil {
			return nil, err
		}
	}
	b = wire.AppendString(b, 4, e.Data)
	b = wire.AppendString(b, 5, e.TypeStr)
	return append(b, e.unknown...), nil
}

func (e *Event) UnmarshalBinary(data []byte) error {
	*e = Event{}
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
			e.Key = new(EventKey)
			if err := e.Key.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 2 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			e.SequenceNumber = U64(v)
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			e.Type = new(MoveType)
			if err := e.Type.unmarshal(v, 0); err != nil {
				return err
			}
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			e.Data = v
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			e.TypeStr = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			e.unknown = append(e.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}
