// Package types defines the wire messages of the transaction stream:
// blocks, transactions, write-set changes, Move type and ABI
// descriptors, and the signature families.
//
// Every message carries hand-written MarshalBinary/UnmarshalBinary over
// the tag-length-value format in the wire package. Unknown fields are
// preserved verbatim and re-emitted after the known fields, and enum
// fields round-trip unrecognized raw values, so messages from newer
// schema generations survive a decode and re-encode losslessly.
//
// Tagged unions ("oneofs") are modeled as closed interfaces with one
// implementation per variant; the discriminant enum travels alongside
// and is cross-checked against the populated variant by the validate
// package.
package types

import (
	"github.com/movestream/movewire"
	"github.com/movestream/movewire/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// Block groups the transactions executed at one chain height together
// with block-level metadata. Transaction order is execution order and
// is significant. Height strictly increases across consecutive blocks
// of the same chain.
type Block struct {
	Timestamp    *Timestamp     // field 1
	Height       U64            // field 2
	Transactions []*Transaction // field 3
	ChainID      uint32         // field 4

	unknown []byte
}

func (b *Block) MarshalBinary() ([]byte, error) { return b.appendTo(nil) }

func (b *Block) appendTo(buf []byte) ([]byte, error) {
	var err error
	if b.Timestamp != nil {
		if buf, err = wire.AppendMessage(buf, 1, b.Timestamp.appendTo); err != nil {
			return nil, err
		}
	}
	buf = wire.AppendUint64(buf, 2, uint64(b.Height))
	for _, txn := range b.Transactions {
		if buf, err = wire.AppendMessage(buf, 3, txn.appendTo); err != nil {
			return nil, err
		}
	}
	buf = wire.AppendUint32(buf, 4, b.ChainID)
	return append(buf, b.unknown...), nil
}

func (b *Block) UnmarshalBinary(data []byte) error {
	*b = Block{}
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
			b.Timestamp = new(Timestamp)
			if err := b.Timestamp.UnmarshalBinary(v); err != nil {
				return err
			}
			data = body[vn:]
		case num == 2 && typ == protowire.VarintType:
			v, vn, err := wire.Uint64Field(body)
			if err != nil {
				return err
			}
			b.Height = U64(v)
			data = body[vn:]
		case num == 3 && typ == protowire.BytesType:
			v, vn, err := wire.BytesField(body)
			if err != nil {
				return err
			}
			txn := new(Transaction)
			if err := txn.UnmarshalBinary(v); err != nil {
				return err
			}
			b.Transactions = append(b.Transactions, txn)
			data = body[vn:]
		case num == 4 && typ == protowire.VarintType:
			v, vn, err := wire.Uint32Field(body)
			if err != nil {
				return err
			}
			b.ChainID = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			b.unknown = append(b.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}

var _ movewire.Message = (*Block)(nil)
