package movegrpc_test

import (
	"context"
	"net"
	"testing"
	"time"

	movegrpc "github.com/movestream/movewire/grpc"
	"github.com/movestream/movewire/types"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// memSource serves a fixed contiguous range of generated blocks.
type memSource struct {
	chainID uint32
	first   uint64
	blocks  []*types.Block
}

func newMemSource(chainID uint32, first uint64, n int) *memSource {
	s := &memSource{chainID: chainID, first: first}
	version := types.U64(first * 10)
	for i := 0; i < n; i++ {
		height := types.U64(first + uint64(i))
		s.blocks = append(s.blocks, &types.Block{
			Timestamp: &types.Timestamp{Seconds: 1700000000 + int64(i)},
			Height:    height,
			ChainID:   chainID,
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

func (s *memSource) LedgerInfo(context.Context) (movegrpc.LedgerInfo, error) {
	return movegrpc.LedgerInfo{
		ChainID:      s.chainID,
		LatestHeight: s.first + uint64(len(s.blocks)) - 1,
	}, nil
}

func (s *memSource) BlockAt(_ context.Context, height uint64) (*types.Block, error) {
	if height < s.first || height >= s.first+uint64(len(s.blocks)) {
		return nil, movegrpc.ErrHeightNotFound
	}
	return s.blocks[height-s.first], nil
}

func startServer(t *testing.T, src movegrpc.BlockSource) (string, func()) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	gs := grpc.NewServer()
	movegrpc.NewServer(src).Register(gs)
	go func() {
		_ = gs.Serve(lis)
	}()

	return lis.Addr().String(), gs.GracefulStop
}

func dial(t *testing.T, addr string) *movegrpc.Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := movegrpc.Dial(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	return client
}

func TestGetLedgerInfo(t *testing.T) {
	addr, cleanup := startServer(t, newMemSource(4, 100, 5))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	info, err := client.GetLedgerInfo(context.Background())
	if err != nil {
		t.Fatalf("GetLedgerInfo: %v", err)
	}
	if info.ChainID != 4 {
		t.Fatalf("wrong chain id: %d", info.ChainID)
	}
	if info.LatestHeight != 104 {
		t.Fatalf("wrong latest height: %d", info.LatestHeight)
	}
}

func TestStreamBlocks_FixedRange(t *testing.T) {
	addr, cleanup := startServer(t, newMemSource(4, 100, 10))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	ch, err := client.Blocks(context.Background(), 102, 5)
	if err != nil {
		t.Fatalf("Blocks: %v", err)
	}

	want := uint64(102)
	n := 0
	for db := range ch {
		if db.Err != nil {
			t.Fatalf("stream error at %d: %v", db.Height, db.Err)
		}
		if db.Height != want {
			t.Fatalf("out of order: got %d, want %d", db.Height, want)
		}
		if db.ChainID != 4 {
			t.Fatalf("wrong chain id: %d", db.ChainID)
		}
		if uint64(db.Block.Height) != db.Height {
			t.Fatalf("envelope height %d disagrees with payload %s", db.Height, db.Block.Height)
		}
		if len(db.Block.Transactions) != 1 {
			t.Fatalf("block %d lost transactions", db.Height)
		}
		want++
		n++
	}
	if n != 5 {
		t.Fatalf("expected 5 blocks, got %d", n)
	}
}

func TestStreamBlocks_OpenEndedStopsAtSourceEnd(t *testing.T) {
	addr, cleanup := startServer(t, newMemSource(4, 0, 7))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	ch, err := client.Blocks(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("Blocks: %v", err)
	}
	n := 0
	for db := range ch {
		if db.Err != nil {
			t.Fatalf("stream error: %v", db.Err)
		}
		n++
	}
	if n != 7 {
		t.Fatalf("expected 7 blocks, got %d", n)
	}
}

func TestStreamBlocks_CancelWithoutDraining(t *testing.T) {
	addr, cleanup := startServer(t, newMemSource(4, 0, 50))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := client.Blocks(ctx, 0, 0)
	if err != nil {
		t.Fatalf("Blocks: %v", err)
	}

	// Abandon the stream without ever receiving. The delivery
	// goroutine must notice the cancellation and close the channel by
	// itself, including on its error-delivery path.
	cancel()
	time.Sleep(100 * time.Millisecond)

	select {
	case db, ok := <-ch:
		if ok {
			t.Fatalf("expected closed channel after cancellation, got delivery %+v", db)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("channel not closed after cancellation")
	}
}

func TestStreamBlocks_RangeBeyondSourceFails(t *testing.T) {
	addr, cleanup := startServer(t, newMemSource(4, 0, 3))
	defer cleanup()

	client := dial(t, addr)
	defer client.Close()

	ch, err := client.Blocks(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("Blocks: %v", err)
	}
	var last movegrpc.DecodedBlock
	n := 0
	for db := range ch {
		last = db
		n++
	}
	if last.Err == nil {
		t.Fatalf("expected terminal error after %d deliveries", n)
	}
}
