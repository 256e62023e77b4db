package movegrpc

import (
	"context"
	"errors"
	"net"

	"github.com/movestream/movewire/types"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrHeightNotFound is returned by a BlockSource for heights it does
// not have. An open-ended stream (Count zero) ends cleanly when the
// source reports it.
var ErrHeightNotFound = errors.New("block height not found")

// BlockSource supplies blocks to a streaming server. Implementations
// must be safe for concurrent use; one source backs every open stream.
type BlockSource interface {
	LedgerInfo(ctx context.Context) (LedgerInfo, error)
	BlockAt(ctx context.Context, height uint64) (*types.Block, error)
}

// batchSize is the number of envelopes sent between BatchEnd statuses.
const batchSize = 100

// Compile-time interface check.
var _ BlockStreamServiceServer = (*Server)(nil)

// Server serves the block stream service from a BlockSource.
type Server struct {
	source BlockSource
}

// NewServer wraps source as a block stream service.
func NewServer(source BlockSource) *Server {
	return &Server{source: source}
}

// Register adds the service to a gRPC server.
func (s *Server) Register(gs *grpc.Server) {
	RegisterBlockStreamServiceServer(gs, s)
}

// Serve starts a gRPC server on the given listener.
func (s *Server) Serve(lis net.Listener, opts ...grpc.ServerOption) error {
	gs := grpc.NewServer(opts...)
	s.Register(gs)
	return gs.Serve(lis)
}

func (s *Server) GetLedgerInfo(ctx context.Context, _ *GetLedgerInfoRequest) (*LedgerInfo, error) {
	info, err := s.source.LedgerInfo(ctx)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *Server) StreamBlocks(req *StreamBlocksRequest, stream grpc.ServerStream) error {
	ctx := stream.Context()

	if err := stream.SendMsg(&BlockStreamMessage{Status: &StreamStatus{
		Kind:        StatusInit,
		StartHeight: req.StartHeight,
	}}); err != nil {
		return err
	}

	height := req.StartHeight
	batchStart := height
	inBatch := 0
	for req.Count == 0 || height < req.StartHeight+req.Count {
		blk, err := s.source.BlockAt(ctx, height)
		if errors.Is(err, ErrHeightNotFound) {
			if req.Count != 0 {
				return status.Errorf(codes.OutOfRange, "height %d not available", height)
			}
			break
		}
		if err != nil {
			return err
		}

		encoded, err := blk.MarshalBinary()
		if err != nil {
			return status.Errorf(codes.Internal, "encoding block %d: %v", height, err)
		}
		if err := stream.SendMsg(&BlockStreamMessage{Block: &BlockEnvelope{
			Height:  uint64(blk.Height),
			ChainID: blk.ChainID,
			Encoded: encoded,
		}}); err != nil {
			return err
		}

		height++
		inBatch++
		if inBatch == batchSize {
			if err := sendBatchEnd(stream, batchStart, height-1); err != nil {
				return err
			}
			batchStart = height
			inBatch = 0
		}
	}

	if inBatch > 0 {
		return sendBatchEnd(stream, batchStart, height-1)
	}
	return nil
}

func sendBatchEnd(stream grpc.ServerStream, start, end uint64) error {
	return stream.SendMsg(&BlockStreamMessage{Status: &StreamStatus{
		Kind:        StatusBatchEnd,
		StartHeight: start,
		EndHeight:   end,
	}})
}
