package movegrpc

import (
	"context"
	"fmt"
	"io"

	"github.com/movestream/movewire/types"

	"google.golang.org/grpc"
)

// Client consumes the block stream service over gRPC.
type Client struct {
	cc *grpc.ClientConn
}

// Dial connects to a remote block stream service.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append(opts, grpc.WithDefaultCallOptions(
		grpc.ForceCodec(CramberryCodec{}),
	))
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("movewire client: dial %s: %w", addr, err)
	}
	return &Client{cc: cc}, nil
}

func (c *Client) Close() error {
	return c.cc.Close()
}

// GetLedgerInfo fetches the chain id and latest height of the serving
// node.
func (c *Client) GetLedgerInfo(ctx context.Context) (LedgerInfo, error) {
	resp := new(LedgerInfo)
	if err := c.cc.Invoke(ctx, fullMethod("GetLedgerInfo"), &GetLedgerInfoRequest{}, resp); err != nil {
		return LedgerInfo{}, err
	}
	return *resp, nil
}

// DecodedBlock is one delivery from Blocks. Exactly one of Block and
// Err is set; a delivery with Err set is the last on the channel.
type DecodedBlock struct {
	Height  uint64
	ChainID uint32
	Block   *types.Block
	Err     error
}

// Blocks opens a stream of count blocks starting at start (count zero
// streams until the server exhausts its source) and decodes each
// envelope payload. The returned channel closes when the stream ends;
// cancel ctx to abandon it early.
func (c *Client) Blocks(ctx context.Context, start, count uint64) (<-chan DecodedBlock, error) {
	stream, err := c.cc.NewStream(ctx, &grpc.StreamDesc{
		StreamName:    "StreamBlocks",
		ServerStreams: true,
	}, fullMethod("StreamBlocks"))
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(&StreamBlocksRequest{StartHeight: start, Count: count}); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}

	ch := make(chan DecodedBlock)
	go func() {
		defer close(ch)
		for {
			msg := new(BlockStreamMessage)
			if err := stream.RecvMsg(msg); err != nil {
				if err != io.EOF {
					select {
					case ch <- DecodedBlock{Err: err}:
					case <-ctx.Done():
					}
				}
				return
			}
			if msg.Block == nil {
				// Status messages mark batch boundaries; consumers of
				// the decoded channel have no use for them.
				continue
			}
			blk := new(types.Block)
			if err := blk.UnmarshalBinary(msg.Block.Encoded); err != nil {
				select {
				case ch <- DecodedBlock{
					Height:  msg.Block.Height,
					ChainID: msg.Block.ChainID,
					Err:     fmt.Errorf("decoding block %d: %w", msg.Block.Height, err),
				}:
				case <-ctx.Done():
				}
				return
			}
			select {
			case ch <- DecodedBlock{
				Height:  msg.Block.Height,
				ChainID: msg.Block.ChainID,
				Block:   blk,
			}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
