package indexer_test

import (
	"context"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/movestream/movewire"
	movegrpc "github.com/movestream/movewire/grpc"
	"github.com/movestream/movewire/indexer"
	"github.com/movestream/movewire/types"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// fakeSource serves generated blocks and can simulate stream drops.
type fakeSource struct {
	mu       sync.Mutex
	chainID  uint32
	first    uint64
	head     uint64
	blocks   []*types.Block
	dropAt   map[uint64]int
	infoCall int
	onInfo   func(call int)
}

func newFakeSource(first uint64, n int) *fakeSource {
	s := &fakeSource{
		chainID: 4,
		first:   first,
		head:    first + uint64(n) - 1,
		dropAt:  map[uint64]int{},
	}
	version := types.U64(first * 10)
	for i := 0; i < n; i++ {
		height := types.U64(first + uint64(i))
		s.blocks = append(s.blocks, &types.Block{
			Timestamp: &types.Timestamp{Seconds: 1700000000 + int64(i)},
			Height:    height,
			ChainID:   s.chainID,
			Transactions: []*types.Transaction{
				{
					Version:     version,
					BlockHeight: height,
					Type:        types.TransactionTypeStateCheckpoint,
					Data:        &types.StateCheckpointTransaction{},
				},
			},
		})
		version++
	}
	return s
}

func (s *fakeSource) setHead(h uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.head = h
}

func (s *fakeSource) GetLedgerInfo(context.Context) (movegrpc.LedgerInfo, error) {
	s.mu.Lock()
	s.infoCall++
	call := s.infoCall
	s.mu.Unlock()
	if s.onInfo != nil {
		s.onInfo(call)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return movegrpc.LedgerInfo{ChainID: s.chainID, LatestHeight: s.head}, nil
}

func (s *fakeSource) Blocks(_ context.Context, start, count uint64) (<-chan movegrpc.DecodedBlock, error) {
	ch := make(chan movegrpc.DecodedBlock)
	go func() {
		defer close(ch)
		for h := start; h < start+count; h++ {
			s.mu.Lock()
			if rem := s.dropAt[h]; rem > 0 {
				s.dropAt[h] = rem - 1
				s.mu.Unlock()
				ch <- movegrpc.DecodedBlock{Height: h, Err: io.ErrUnexpectedEOF}
				return
			}
			s.mu.Unlock()
			if h < s.first || h >= s.first+uint64(len(s.blocks)) {
				ch <- movegrpc.DecodedBlock{Height: h, Err: movegrpc.ErrHeightNotFound}
				return
			}
			ch <- movegrpc.DecodedBlock{
				Height:  h,
				ChainID: s.chainID,
				Block:   s.blocks[h-s.first],
			}
		}
	}()
	return ch, nil
}

func TestExtractor_FixedRange(t *testing.T) {
	src := newFakeSource(10, 10)
	handler := indexer.NewMemoryHandler()
	ext := indexer.New(src, handler, indexer.Config{
		StartHeight: 10,
		StopHeight:  19,
		Concurrency: 4,
	})

	require.NoError(t, ext.Run(context.Background()))
	require.Equal(t, 10, handler.Len())

	blk := handler.Block(15)
	require.NotNil(t, blk)
	require.Equal(t, types.U64(15), blk.Height)

	latest, ok, err := handler.LatestHeight(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(19), latest)
}

func TestExtractor_ResumesAfterStreamDrop(t *testing.T) {
	src := newFakeSource(10, 10)
	src.dropAt[14] = 1
	handler := indexer.NewMemoryHandler()
	ext := indexer.New(src, handler, indexer.Config{
		StartHeight: 10,
		StopHeight:  19,
		MaxRetries:  2,
		RetryDelay:  time.Millisecond,
	})

	require.NoError(t, ext.Run(context.Background()))
	require.Equal(t, 10, handler.Len())
	require.NotNil(t, handler.Block(14))
}

func TestExtractor_ValidationFailureIsTerminal(t *testing.T) {
	src := newFakeSource(10, 5)
	src.blocks[2].Transactions[0].BlockHeight = 999
	handler := indexer.NewMemoryHandler()
	ext := indexer.New(src, handler, indexer.Config{
		StartHeight: 10,
		StopHeight:  14,
		MaxRetries:  1,
		RetryDelay:  time.Millisecond,
	})

	err := ext.Run(context.Background())
	require.Error(t, err)
	_, ok := movewire.AsValidation(err)
	require.True(t, ok, "expected validation errors, got %v", err)
	require.Nil(t, handler.Block(12))
}

func TestExtractor_ProcessMissing(t *testing.T) {
	src := newFakeSource(10, 5)
	handler := indexer.NewMemoryHandler()
	ctx := context.Background()
	for _, h := range []uint64{10, 11, 13, 14} {
		require.NoError(t, handler.WriteBlock(ctx, src.blocks[h-10]))
	}

	ext := indexer.New(src, handler, indexer.Config{RetryDelay: time.Millisecond})
	require.NoError(t, ext.ProcessMissing(ctx))
	require.Equal(t, 5, handler.Len())
	require.NotNil(t, handler.Block(12))

	missing, err := handler.MissingHeights(ctx)
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestExtractor_LiveFollowsHead(t *testing.T) {
	src := newFakeSource(0, 5)
	src.setHead(2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src.onInfo = func(call int) {
		switch call {
		case 2:
			src.setHead(4)
		case 3:
			cancel()
		}
	}

	handler := indexer.NewMemoryHandler()
	ext := indexer.New(src, handler, indexer.Config{
		PollInterval: time.Millisecond,
		RetryDelay:   time.Millisecond,
	})

	err := ext.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 5, handler.Len())
}

// blockAtSource adapts fakeSource to the streaming server's BlockSource.
type blockAtSource struct{ s *fakeSource }

func (b blockAtSource) LedgerInfo(ctx context.Context) (movegrpc.LedgerInfo, error) {
	return b.s.GetLedgerInfo(ctx)
}

func (b blockAtSource) BlockAt(_ context.Context, height uint64) (*types.Block, error) {
	if height < b.s.first || height >= b.s.first+uint64(len(b.s.blocks)) {
		return nil, movegrpc.ErrHeightNotFound
	}
	return b.s.blocks[height-b.s.first], nil
}

func TestExtractor_EndToEndOverGRPC(t *testing.T) {
	src := newFakeSource(100, 10)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	gs := grpc.NewServer()
	movegrpc.NewServer(blockAtSource{s: src}).Register(gs)
	go func() {
		_ = gs.Serve(lis)
	}()
	defer gs.GracefulStop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := movegrpc.Dial(ctx, lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer client.Close()

	handler := indexer.NewMemoryHandler()
	ext := indexer.New(client, handler, indexer.Config{
		StartHeight: 100,
		StopHeight:  109,
		Concurrency: 4,
		RetryDelay:  time.Millisecond,
	})
	require.NoError(t, ext.Run(ctx))
	require.Equal(t, 10, handler.Len())

	blk := handler.Block(109)
	require.NotNil(t, blk)
	require.Equal(t, types.U64(109), blk.Height)
	require.Len(t, blk.Transactions, 1)
}
