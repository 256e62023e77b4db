package types

import (
	"github.com/movestream/movewire"
	"github.com/movestream/movewire/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// TransactionType discriminates the payload variant of a Transaction.
// Unrecognized values round-trip as their raw integer.
type TransactionType uint32

const (
	TransactionTypeUnspecified     TransactionType = 0
	TransactionTypeGenesis         TransactionType = 1
	TransactionTypeBlockMetadata   TransactionType = 2
	TransactionTypeStateCheckpoint TransactionType = 3
	TransactionTypeUser            TransactionType = 4
	TransactionTypeValidator       TransactionType = 20
)

// Known reports whether the value names a variant this reader
// understands.
func (t TransactionType) Known() bool {
	switch t {
	case TransactionTypeGenesis, TransactionTypeBlockMetadata,
		TransactionTypeStateCheckpoint, TransactionTypeUser, TransactionTypeValidator:
		return true
	}
	return false
}

func (t TransactionType) String() string {
	switch t {
	case TransactionTypeUnspecified:
		return "unspecified"
	case TransactionTypeGenesis:
		return "genesis"
	case TransactionTypeBlockMetadata:
		return "block_metadata"
	case TransactionTypeStateCheckpoint:
		return "state_checkpoint"
	case TransactionTypeUser:
		return "user"
	case TransactionTypeValidator:
		return "validator"
	}
	return "raw(" + wire.FormatUint64(uint64(t)) + ")"
}

// TxnData is the payload variant of a Transaction. Exactly one
// implementation is populated per transaction; the closed interface
// makes multi-population unrepresentable for programmatic construction,
// and decode rejects streams that populate more than one.
type TxnData interface {
	isTxnData()
}

func (*BlockMetadataTransaction) isTxnData()   {}
func (*GenesisTransaction) isTxnData()         {}
func (*StateCheckpointTransaction) isTxnData() {}
func (*UserTransaction) isTxnData()            {}
func (*ValidatorTransaction) isTxnData()       {}

// Transaction is the top-level envelope. Version is the chain-global
// monotonic transaction ordinal; BlockHeight names the containing
// block.
type Transaction struct {
	Timestamp   *Timestamp       // field 1
	Version     U64              // field 2
	Info        *TransactionInfo // field 3
	Epoch       U64              // field 4
	BlockHeight U64              // field 5
	Type        TransactionType  // field 6
	Data        TxnData          // oneof txn_data, fields 7-10 and 21

	unknown []byte
}

// Unrecognized reports whether the transaction carries a payload
// generation this reader does not understand. The raw payload bytes
// remain preserved in the unknown-field buffer, so re-encoding is
// lossless.
func (t *Transaction) Unrecognized() bool {
	return t.Data == nil && !t.Type.Known() && t.Type != TransactionTypeUnspecified
}

func (t *Transaction) MarshalBinary() ([]byte, error) { return t.appendTo(nil) }

func (t *Transaction) appendTo(b []byte) ([]byte, error) {
	var err error
	if t.Timestamp != nil {
		if b, err = wire.AppendMessage(b, 1, t.Timestamp.appendTo); err != nil {
			return nil, err
		}
	}
	b = wire.AppendUint64(b, 2, uint64(t.Version))
	if t.Info != nil {
		if b, err = wire.AppendMessage(b, 3, t.Info.appendTo); err != nil {
			return nil, err
		}
	}
	b = wire.AppendUint64(b, 4, uint64(t.Epoch))
	b = wire.AppendUint64(b, 5, uint64(t.BlockHeight))
	b = wire.AppendUint32(b, 6, uint32(t.Type))
	switch d := t.Data.(type) {
	case nil:
	case *BlockMetadataTransaction:
		b, err = wire.AppendMessage(b, 7, d.appendTo)
	case *GenesisTransaction:
		b, err = wire.AppendMessage(b, 8, d.appendTo)
	case *StateCheckpointTransaction:
		b, err = wire.AppendMessage(b, 9, d.appendTo)
	case *UserTransaction:
		b, err = wire.AppendMessage(b, 10, d.appendTo)
	case *ValidatorTransaction:
		b, err = wire.AppendMessage(b, 21, d.appendTo)
	}
	if err != nil {
		return nil, err
	}
	return append(b, t.unknown...), nil
}

func (t *Transaction) UnmarshalBinary(data []byte) error {
	*t = Transaction{}
	setData := func(d TxnData) error {
		if t.Data != nil {
			return &movewire.MalformedUnionError{Union: "Transaction.txn_data", Reason: "multiple variants populated"}
		}
		t.Data = d
		return nil
	}
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
			t.Timestamp = new(Timestamp)
			if err := t.Timestamp.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 2 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			t.Version = U64(v)
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			t.Info = new(TransactionInfo)
			if err := t.Info.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 4 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			t.Epoch = U64(v)
			data = body[vn:]
		case num == 5 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			t.BlockHeight = U64(v)
			data = body[vn:]
		case num == 6 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			t.Type = TransactionType(v)
			data = body[vn:]
		case num == 7 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d := new(BlockMetadataTransaction)
			if err := d.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setData(d); err != nil {
				return err
			}
			data = body[vn:]
		case num == 8 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d := new(GenesisTransaction)
			if err := d.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setData(d); err != nil {
				return err
			}
			data = body[vn:]
		case num == 9 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d := new(StateCheckpointTransaction)
			if err := d.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setData(d); err != nil {
				return err
			}
			data = body[vn:]
		case num == 10 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d := new(UserTransaction)
			if err := d.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setData(d); err != nil {
				return err
			}
			data = body[vn:]
		case num == 21 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			d := new(ValidatorTransaction)
			if err := d.UnmarshalBinary(v); err != nil {
				return err
			}
			if err := setData(d); err != nil {
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

// TransactionInfo is the execution result metadata attached to every
// committed transaction. When Success is false the changes carry only
// diagnostic output, never semantically applied state.
type TransactionInfo struct {
	Hash            []byte // field 1
	StateChangeHash []byte // field 2
	EventRootHash   []byte // field 3
	// StateCheckpointHash is present only for checkpoint transactions.
	// nil means absent; a non-nil empty slice is a present empty value
	// and survives round-trips as such.
	StateCheckpointHash []byte            // field 4
	GasUsed             U64               // field 5
	Success             bool              // field 6
	VMStatus            string            // field 7
	AccumulatorRootHash []byte            // field 8
	Changes             []*WriteSetChange // field 9

	unknown []byte
}

func (ti *TransactionInfo) MarshalBinary() ([]byte, error) { return ti.appendTo(nil) }

func (ti *TransactionInfo) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendBytes(b, 1, ti.Hash)
	b = wire.AppendBytes(b, 2, ti.StateChangeHash)
	b = wire.AppendBytes(b, 3, ti.EventRootHash)
	b = wire.AppendBytes(b, 4, ti.StateCheckpointHash)
	b = wire.AppendUint64(b, 5, uint64(ti.GasUsed))
	b = wire.AppendBool(b, 6, ti.Success)
	b = wire.AppendString(b, 7, ti.VMStatus)
	b = wire.AppendBytes(b, 8, ti.AccumulatorRootHash)
	for _, c := range ti.Changes {
		if b, err = wire.AppendMessage(b, 9, c.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, ti.unknown...), nil
}

func (ti *TransactionInfo) UnmarshalBinary(data []byte) error {
	*ti = TransactionInfo{}
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
			ti.Hash = v
			data = body[vn:]
		case num == 2 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ti.StateChangeHash = v
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ti.EventRootHash = v
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ti.StateCheckpointHash = v
			data = body[vn:]
		case num == 5 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			ti.GasUsed = U64(v)
			data = body[vn:]
		case num == 6 && typ == protowire.VarintType:
			v, vn, err := wire.BoolField(body)
			if err != nil {
				return err
			}
			ti.Success = v
			data = body[vn:]
		case num == 7 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			ti.VMStatus = v
			data = body[vn:]
		case num == 8 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			ti.AccumulatorRootHash = v
			data = body[vn:]
		case num == 9 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			c := new(WriteSetChange)
			if err := c.UnmarshalBinary(v); err != nil {
				return err
			}
			ti.Changes = append(ti.Changes, c)
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			ti.unknown = append(ti.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// BlockMetadataTransaction opens every block with consensus-level
// metadata.
type BlockMetadataTransaction struct {
	ID                       string   // field 1
	Round                    U64      // field 2
	Events                   []*Event // field 3
	PreviousBlockVotesBitvec []byte   // field 4
	Proposer                 string   // field 5
	FailedProposerIndices    []uint32 // field 6, packed

	unknown []byte
}

func (m *BlockMetadataTransaction) MarshalBinary() ([]byte, error) { return m.appendTo(nil) }

func (m *BlockMetadataTransaction) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, m.ID)
	b = wire.AppendUint64(b, 2, uint64(m.Round))
	for _, e := range m.Events {
		if b, err = wire.AppendMessage(b, 3, e.appendTo); err != nil {
			return nil, err
		}
	}
	b = wire.AppendBytes(b, 4, m.PreviousBlockVotesBitvec)
	b = wire.AppendString(b, 5, m.Proposer)
	b = wire.AppendPacked(b, 6, m.FailedProposerIndices)
	return append(b, m.unknown...), nil
}

func (m *BlockMetadataTransaction) UnmarshalBinary(data []byte) error {
	*m = BlockMetadataTransaction{}
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
			m.ID = v
			data = body[vn:]
		case num == 2 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			m.Round = U64(v)
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			e := new(Event)
			if err := e.UnmarshalBinary(v); err != nil {
				return err
			}
			m.Events = append(m.Events, e)
			data = body[vn:]
		case num == 4 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			m.PreviousBlockVotesBitvec = v
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.StringField(body)
			if err != nil {
				return err
			}
			m.Proposer = v
			data = body[vn:]
		case num == 6 && typ == protowire.BytesType:
			v, vn, err := wire.Packed[uint32](body)
			if err != nil {
				return err
			}
			m.FailedProposerIndices = append(m.FailedProposerIndices, v...)
			data = body[vn:]
		case num == 6 && typ == protowire.VarintType:
			// Unpacked encoding from lenient producers.
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			m.FailedProposerIndices = append(m.FailedProposerIndices, v)
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

// GenesisTransaction seeds the chain's initial state.
type GenesisTransaction struct {
	Payload *WriteSet // field 1
	Events  []*Event  // field 2

	unknown []byte
}

func (g *GenesisTransaction) MarshalBinary() ([]byte, error) { return g.appendTo(nil) }

func (g *GenesisTransaction) appendTo(b []byte) ([]byte, error) {
	var err error
	if g.Payload != nil {
		if b, err = wire.AppendMessage(b, 1, g.Payload.appendTo); err != nil {
			return nil, err
		}
	}
	for _, e := range g.Events {
		if b, err = wire.AppendMessage(b, 2, e.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, g.unknown...), nil
}

func (g *GenesisTransaction) UnmarshalBinary(data []byte) error {
	*g = GenesisTransaction{}
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
			g.Payload = new(WriteSet)
			if err := g.Payload.UnmarshalBinary(v); err != nil {
				return err
			}
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
			g.Events = append(g.Events, e)
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			g.unknown = append(g.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// StateCheckpointTransaction marks a state checkpoint. It has no fields
// of its own.
type StateCheckpointTransaction struct {
	unknown []byte
}

func (s *StateCheckpointTransaction) MarshalBinary() ([]byte, error) { return s.appendTo(nil) }

func (s *StateCheckpointTransaction) appendTo(b []byte) ([]byte, error) {
	return append(b, s.unknown...), nil
}

func (s *StateCheckpointTransaction) UnmarshalBinary(data []byte) error {
	*s = StateCheckpointTransaction{}
	return consumeUnknownOnly(data, &s.unknown)
}

// ValidatorTransaction is a validator-initiated system transaction. Its
// payload fields were added after this schema generation; they survive
// in the unknown-field buffer.
type ValidatorTransaction struct {
	unknown []byte
}

func (v *ValidatorTransaction) MarshalBinary() ([]byte, error) { return v.appendTo(nil) }

func (v *ValidatorTransaction) appendTo(b []byte) ([]byte, error) {
	return append(b, v.unknown...), nil
}

func (v *ValidatorTransaction) UnmarshalBinary(data []byte) error {
	*v = ValidatorTransaction{}
	return consumeUnknownOnly(data, &v.unknown)
}

// consumeUnknownOnly preserves every field of a message with no known
// fields.
func consumeUnknownOnly(data []byte, unknown *[]byte) error {
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		vn, err := wire.Skip(num, typ, data[n:])
		if err != nil {
			return err
		}
		*unknown = append(*unknown, data[:n+vn]...)
		data = data[n+vn:]
	}
	return nil
}

// UserTransaction is a user-submitted transaction together with the
// events it emitted.
type UserTransaction struct {
	Request *UserTransactionRequest // field 1
	Events  []*Event                // field 2

	unknown []byte
}

func (u *UserTransaction) MarshalBinary() ([]byte, error) { return u.appendTo(nil) }

func (u *UserTransaction) appendTo(b []byte) ([]byte, error) {
	var err error
	if u.Request != nil {
		if b, err = wire.AppendMessage(b, 1, u.Request.appendTo); err != nil {
			return nil, err
		}
	}
	for _, e := range u.Events {
		if b, err = wire.AppendMessage(b, 2, e.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, u.unknown...), nil
}

func (u *UserTransaction) UnmarshalBinary(data []byte) error {
	*u = UserTransaction{}
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
			u.Request = new(UserTransactionRequest)
			if err := u.Request.UnmarshalBinary(v); err != nil {
				return err
			}
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
			u.Events = append(u.Events, e)
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			u.unknown = append(u.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

// UserTransactionRequest is the signed request as submitted by the
// sender.
type UserTransactionRequest struct {
	Sender                  string              // field 1
	SequenceNumber          U64                 // field 2
	MaxGasAmount            U64                 // field 3
	GasUnitPrice            U64                 // field 4
	ExpirationTimestampSecs *Timestamp          // field 5
	Payload                 *TransactionPayload // field 6
	Signature               *Signature          // field 7

	unknown []byte
}

func (r *UserTransactionRequest) MarshalBinary() ([]byte, error) { return r.appendTo(nil) }

func (r *UserTransactionRequest) appendTo(b []byte) ([]byte, error) {
	var err error
	b = wire.AppendString(b, 1, r.Sender)
	b = wire.AppendUint64(b, 2, uint64(r.SequenceNumber))
	b = wire.AppendUint64(b, 3, uint64(r.MaxGasAmount))
	b = wire.AppendUint64(b, 4, uint64(r.GasUnitPrice))
	if r.ExpirationTimestampSecs != nil {
		if b, err = wire.AppendMessage(b, 5, r.ExpirationTimestampSecs.appendTo); err != nil {
			return nil, err
		}
	}
	if r.Payload != nil {
		if b, err = wire.AppendMessage(b, 6, r.Payload.appendTo); err != nil {
			return nil, err
		}
	}
	if r.Signature != nil {
		if b, err = wire.AppendMessage(b, 7, r.Signature.appendTo); err != nil {
			return nil, err
		}
	}
	return append(b, r.unknown...), nil
}

func (r *UserTransactionRequest) UnmarshalBinary(data []byte) error {
	*r = UserTransactionRequest{}
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
			r.Sender = v
			data = body[vn:]
		case num == 2 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			r.SequenceNumber = U64(v)
			data = body[vn:]
		case num == 3 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			r.MaxGasAmount = U64(v)
			data = body[vn:]
		case num == 4 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			r.GasUnitPrice = U64(v)
			data = body[vn:]
		case num == 5 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			r.ExpirationTimestampSecs = new(Timestamp)
			if err := r.ExpirationTimestampSecs.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 6 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			r.Payload = new(TransactionPayload)
			if err := r.Payload.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 7 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			r.Signature = new(Signature)
			if err := r.Signature.UnmarshalBinary(v); err != nil {
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
