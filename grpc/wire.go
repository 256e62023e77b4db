package movegrpc

// Transport envelope types for the block stream service. These exist
// only at the gRPC serialization boundary; the domain payload inside
// BlockEnvelope.Encoded stays in the movewire binary format.

// GetLedgerInfoRequest is the (empty) request for GetLedgerInfo.
type GetLedgerInfoRequest struct{}

// LedgerInfo describes the chain a stream serves.
type LedgerInfo struct {
	ChainID      uint32 `cramberry:"1"`
	LatestHeight uint64 `cramberry:"2"`
}

// StreamBlocksRequest asks for Count blocks starting at StartHeight.
// Count zero means "stream until the source is exhausted".
type StreamBlocksRequest struct {
	StartHeight uint64 `cramberry:"1"`
	Count       uint64 `cramberry:"2"`
}

// BlockEnvelope carries one encoded Block. Height and ChainID are
// duplicated from the payload so consumers can route without decoding.
type BlockEnvelope struct {
	Height  uint64 `cramberry:"1"`
	ChainID uint32 `cramberry:"2"`
	Encoded []byte `cramberry:"3"`
}

// StreamStatusKind tags a StreamStatus.
type StreamStatusKind uint32

const (
	// StatusInit opens a stream, confirming the starting height.
	StatusInit StreamStatusKind = 1
	// StatusBatchEnd closes a batch, naming the height range it covered.
	StatusBatchEnd StreamStatusKind = 2
)

// StreamStatus is the control message interleaved with block envelopes.
type StreamStatus struct {
	Kind        StreamStatusKind `cramberry:"1"`
	StartHeight uint64           `cramberry:"2"`
	EndHeight   uint64           `cramberry:"3"`
}

// BlockStreamMessage is the tagged union sent on a StreamBlocks stream:
// exactly one of Status or Block is set per message.
type BlockStreamMessage struct {
	Status *StreamStatus  `cramberry:"1"`
	Block  *BlockEnvelope `cramberry:"2"`
}
