package indexer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/movestream/movewire/indexer"
	"github.com/movestream/movewire/types"

	"github.com/stretchr/testify/require"
)

func TestLedgerProbe_Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"chain_id": 4,
			"epoch": "7",
			"block_height": "18446744073709551615",
			"oldest_block_height": 0,
			"ledger_version": "42"
		}`))
	}))
	defer srv.Close()

	probe := indexer.NewLedgerProbe(srv.URL)
	status, err := probe.Status(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint32(4), status.ChainID)
	require.Equal(t, types.U64(7), status.Epoch)
	require.Equal(t, types.U64(18446744073709551615), status.BlockHeight)
	require.Equal(t, types.U64(0), status.OldestBlockHeight)
	require.Equal(t, types.U64(42), status.LedgerVersion)
}

func TestLedgerProbe_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	probe := indexer.NewLedgerProbe(srv.URL)
	_, err := probe.Status(context.Background())
	require.Error(t, err)
}
