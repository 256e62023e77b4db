// Package indexer is the ingestion pipeline: it pulls encoded blocks
// from a stream source, decodes and validates them with bounded
// parallelism, and hands them to an output handler.
package indexer

import (
	"context"
	"sort"
	"sync"

	"github.com/movestream/movewire/types"
)

// OutputHandler receives validated blocks from an Extractor.
// Implementations must tolerate concurrent WriteBlock calls and
// re-delivery of the same height.
type OutputHandler interface {
	// WriteBlock persists one block, replacing any previous write at
	// the same height.
	WriteBlock(ctx context.Context, blk *types.Block) error

	// LatestHeight reports the highest height written so far. ok is
	// false when nothing has been written.
	LatestHeight(ctx context.Context) (height uint64, ok bool, err error)

	// MissingHeights lists the gaps between the lowest and highest
	// written heights.
	MissingHeights(ctx context.Context) ([]uint64, error)

	Close() error
}

// MemoryHandler is an in-process OutputHandler for tests and for
// extractions run without a database.
type MemoryHandler struct {
	mu     sync.Mutex
	blocks map[uint64]*types.Block
}

func NewMemoryHandler() *MemoryHandler {
	return &MemoryHandler{blocks: make(map[uint64]*types.Block)}
}

func (h *MemoryHandler) WriteBlock(_ context.Context, blk *types.Block) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.blocks[uint64(blk.Height)] = blk
	return nil
}

func (h *MemoryHandler) LatestHeight(context.Context) (uint64, bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var max uint64
	for height := range h.blocks {
		if height > max {
			max = height
		}
	}
	return max, len(h.blocks) > 0, nil
}

func (h *MemoryHandler) MissingHeights(context.Context) ([]uint64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.blocks) == 0 {
		return nil, nil
	}
	heights := make([]uint64, 0, len(h.blocks))
	for height := range h.blocks {
		heights = append(heights, height)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	var missing []uint64
	for want := heights[0]; want <= heights[len(heights)-1]; want++ {
		if _, ok := h.blocks[want]; !ok {
			missing = append(missing, want)
		}
	}
	return missing, nil
}

func (h *MemoryHandler) Close() error { return nil }

// Block returns the stored block at height, or nil.
func (h *MemoryHandler) Block(height uint64) *types.Block {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.blocks[height]
}

// Len reports how many blocks are stored.
func (h *MemoryHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.blocks)
}
