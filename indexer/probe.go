package indexer

import (
	"context"
	"time"

	"github.com/movestream/movewire/types"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// LedgerStatus is the node REST summary used to size an extraction
// before the gRPC stream is opened.
type LedgerStatus struct {
	ChainID     uint32    `json:"chain_id"`
	Epoch       types.U64 `json:"epoch"`
	BlockHeight types.U64 `json:"block_height"`
	// OldestBlockHeight is the lowest height the node still serves;
	// pruned nodes start above zero.
	OldestBlockHeight types.U64 `json:"oldest_block_height"`
	LedgerVersion     types.U64 `json:"ledger_version"`
}

// LedgerProbe fetches the ledger status from a node's REST endpoint.
type LedgerProbe struct {
	client *resty.Client
}

// NewLedgerProbe targets the node REST API at baseURL.
func NewLedgerProbe(baseURL string) *LedgerProbe {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond)
	return &LedgerProbe{client: client}
}

// Status fetches the current ledger status.
func (p *LedgerProbe) Status(ctx context.Context) (LedgerStatus, error) {
	var status LedgerStatus
	resp, err := p.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/v1")
	if err != nil {
		return LedgerStatus{}, errors.Wrap(err, "fetching ledger status")
	}
	if resp.IsError() {
		return LedgerStatus{}, errors.Errorf("ledger status request failed: %s", resp.Status())
	}
	return status, nil
}
