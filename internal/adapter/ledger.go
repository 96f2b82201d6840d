package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/heartchain/heartchain/internal/config"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/utils"
)

// restLedger anchors campaigns through a ledger relay service: a thin HTTP
// facade in front of the chain node that signs and submits the contract
// call on the platform's behalf.
type restLedger struct {
	client          *utils.HTTPClient
	contractAddress string

	logger *logger.Logger
}

// anchorRequest is the relay call payload. Goal and metadata CID mirror the
// contract's createCampaign arguments.
type anchorRequest struct {
	CampaignID  string  `json:"campaign_id"`
	Goal        float64 `json:"goal"`
	MetadataCID string  `json:"metadata_cid"`
}

type anchorResponse struct {
	TxHash string `json:"tx_hash"`
}

// NewRESTLedger constructs a relay-backed [Ledger] from the adapter
// configuration. Returns an error when the relay address is missing or
// malformed.
func NewRESTLedger(cfg config.Adapter, logger *logger.Logger) (Ledger, error) {
	baseURL, err := normalizeBaseURL(cfg.LedgerRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger relay address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL).SetTimeout(cfg.RequestTimeout)

	return &restLedger{
		client:          client,
		contractAddress: cfg.ContractAddress,
		logger:          logger,
	}, nil
}

// AnchorCampaign implements [Ledger]. It POSTs the createCampaign call to
// the relay and returns the resulting transaction hash. A 4xx relay
// response maps to [ErrLedgerRejected] so the caller can tell a permanent
// refusal from a transient relay outage.
func (l *restLedger) AnchorCampaign(ctx context.Context, campaignID string, goal float64, metadataCID string) (string, error) {
	log := logger.FromContext(ctx)

	var anchored anchorResponse
	resp, err := l.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(anchorRequest{
			CampaignID:  campaignID,
			Goal:        goal,
			MetadataCID: metadataCID,
		}).
		SetResult(&anchored).
		Post("/contracts/" + l.contractAddress + "/create-campaign")
	if err != nil {
		log.Err(err).
			Str("func", "restLedger.AnchorCampaign").
			Str("campaign_id", campaignID).
			Msg("anchoring request failed")
		return "", fmt.Errorf("ledger relay request: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError {
		log.Error().
			Str("func", "restLedger.AnchorCampaign").
			Str("campaign_id", campaignID).
			Int("status", resp.StatusCode()).
			Msg("anchoring rejected")
		return "", fmt.Errorf("%w: http %d", ErrLedgerRejected, resp.StatusCode())
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if anchored.TxHash == "" {
		return "", errors.New("ledger relay response has no tx hash")
	}

	log.Info().
		Str("func", "restLedger.AnchorCampaign").
		Str("campaign_id", campaignID).
		Str("tx_hash", anchored.TxHash).
		Msg("campaign anchored on ledger")

	return anchored.TxHash, nil
}
