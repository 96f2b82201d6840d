package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartchain/heartchain/internal/config"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T, relayURL string) Ledger {
	t.Helper()

	ledger, err := NewRESTLedger(config.Adapter{
		LedgerRPCAddress: relayURL,
		ContractAddress:  "0xC0FFEE",
		RequestTimeout:   5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return ledger
}

func TestAnchorCampaign_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/contracts/0xC0FFEE/create-campaign", r.URL.Path)

		var req anchorRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "camp-1", req.CampaignID)
		assert.Equal(t, 500000.0, req.Goal)
		assert.Equal(t, "QmMetaCID", req.MetadataCID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tx_hash":"0xabc123"}`))
	}))
	defer srv.Close()

	ledger := newTestLedger(t, srv.URL)

	txHash, err := ledger.AnchorCampaign(context.Background(), "camp-1", 500000, "QmMetaCID")
	require.NoError(t, err)
	assert.Equal(t, "0xabc123", txHash)
}

func TestAnchorCampaign_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("goal below contract minimum"))
	}))
	defer srv.Close()

	ledger := newTestLedger(t, srv.URL)

	_, err := ledger.AnchorCampaign(context.Background(), "camp-1", 1, "QmMetaCID")
	require.ErrorIs(t, err, ErrLedgerRejected)
}

func TestAnchorCampaign_RelayOutage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ledger := newTestLedger(t, srv.URL)

	_, err := ledger.AnchorCampaign(context.Background(), "camp-1", 100, "QmMetaCID")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrLedgerRejected)
}
