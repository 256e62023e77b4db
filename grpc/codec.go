// Package movegrpc is the gRPC transport for the block stream: a
// manually described service carrying cramberry-serialized envelopes
// whose block payloads are the movewire binary encoding.
//
// No protobuf code generation is involved. Envelope types are
// serialized via cramberry struct tags; the nested Block bytes stay in
// the movewire wire format, so the transport never re-interprets the
// domain schema.
package movegrpc

import (
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"google.golang.org/grpc/encoding"
)

const codecName = "cramberry"

// CramberryCodec implements grpc/encoding.Codec using cramberry for
// deterministic binary serialization of the envelope types.
type CramberryCodec struct{}

func (CramberryCodec) Marshal(v any) ([]byte, error) {
	data, err := cramberry.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cramberry marshal: %w", err)
	}
	return data, nil
}

func (CramberryCodec) Unmarshal(data []byte, v any) error {
	if err := cramberry.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cramberry unmarshal: %w", err)
	}
	return nil
}

func (CramberryCodec) Name() string { return codecName }

func init() {
	encoding.RegisterCodec(CramberryCodec{})
}
