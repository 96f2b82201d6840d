package workers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/heartchain/heartchain/internal/adapter"
	"github.com/heartchain/heartchain/internal/config"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/store"
	"github.com/heartchain/heartchain/models"
)

// anchorWorker periodically anchors freshly approved campaigns on the
// ledger. For each active campaign without a transaction hash it pins the
// public metadata to the blob store and submits the anchor transaction.
// Failures are retried on the next tick; a campaign stays unanchored until
// the hash is recorded, so the loop is idempotent.
type anchorWorker struct {
	campaignRepository store.CampaignRepository
	blobStore          adapter.BlobStore
	ledger             adapter.Ledger

	interval  time.Duration
	batchSize int

	logger *logger.Logger
}

func NewAnchorWorker(campaignRepository store.CampaignRepository, blobStore adapter.BlobStore, ledger adapter.Ledger, cfg config.Workers, logger *logger.Logger) Worker {
	logger.Debug().Dur("interval", cfg.AnchorInterval).Msg("creating anchor worker")

	return &anchorWorker{
		campaignRepository: campaignRepository,
		blobStore:          blobStore,
		ledger:             ledger,
		interval:           cfg.AnchorInterval,
		batchSize:          cfg.AnchorBatchSize,
		logger:             logger,
	}
}

func (w *anchorWorker) Run(ctx context.Context) {
	go w.loop(ctx)
}

func (w *anchorWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("anchor worker stopped")
			return
		case <-ticker.C:
			w.anchorBatch(ctx)
		}
	}
}

func (w *anchorWorker) anchorBatch(ctx context.Context) {
	log := w.logger.With().Str("func", "anchorWorker.anchorBatch").Logger()

	campaigns, err := w.campaignRepository.ListUnanchored(ctx, uint64(w.batchSize))
	if err != nil {
		log.Err(err).Msg("error listing unanchored campaigns")
		return
	}

	for _, campaign := range campaigns {
		if err = w.anchorCampaign(ctx, campaign); err != nil {
			log.Err(err).Str("campaignID", campaign.ID).Msg("error anchoring campaign")
			continue
		}
		log.Info().Str("campaignID", campaign.ID).Msg("campaign anchored")
	}
}

func (w *anchorWorker) anchorCampaign(ctx context.Context, campaign models.Campaign) error {
	metadata, err := json.Marshal(campaign.PublicView())
	if err != nil {
		return err
	}

	metadataCID, err := w.blobStore.PutBlob(ctx, campaign.ID+".json", metadata)
	if err != nil {
		return err
	}

	txHash, err := w.ledger.AnchorCampaign(ctx, campaign.ID, campaign.TargetAmount, metadataCID)
	if err != nil {
		return err
	}

	return w.campaignRepository.SetLedgerTxHash(ctx, campaign.ID, txHash)
}
