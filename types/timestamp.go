package types

import (
	"time"

	"github.com/movestream/movewire/wire"

	"google.golang.org/protobuf/encoding/protowire"
)

// Timestamp is a wire-safe representation of a point in time: seconds
// since Unix epoch plus a nanosecond offset, deterministic across
// languages.
type Timestamp struct {
	Seconds int64 // field 1
	Nanos   int32 // field 2

	unknown []byte
}

// TimeToTimestamp converts a time.Time to a Timestamp.
func TimeToTimestamp(t time.Time) *Timestamp {
	return &Timestamp{
		Seconds: t.Unix(),
		Nanos:   int32(t.Nanosecond()),
	}
}

// ToTime converts a Timestamp to a time.Time (UTC).
func (ts *Timestamp) ToTime() time.Time {
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

func (ts *Timestamp) MarshalBinary() ([]byte, error) { return ts.appendTo(nil) }

func (ts *Timestamp) appendTo(b []byte) ([]byte, error) {
	b = wire.AppendInt64(b, 1, ts.Seconds)
	b = wire.AppendInt32(b, 2, ts.Nanos)
	return append(b, ts.unknown...), nil
}

func (ts *Timestamp) UnmarshalBinary(data []byte) error {
	*ts = Timestamp{}
	for len(data) > 0 {
		num, typ, n, err := wire.Tag(data)
		if err != nil {
			return err
		}
		body := data[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, vn, err := wire.Int64Field(body)
			if err != nil {
				return err
			}
			ts.Seconds = v
			data = body[vn:]
		case num == 2 && typ == protowire.VarintType:
			v, vn, err := wire.Int32Field(body)
			if err != nil {
				return err
			}
			ts.Nanos = v
			data = body[vn:]
		default:
			vn, err := wire.Skip(num, typ, body)
			if err != nil {
				return err
			}
			ts.unknown = append(ts.unknown, data[:n+vn]...)
			data = body[vn:]
		}
	}
	return nil
}
