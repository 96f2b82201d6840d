package workers

import (
	"context"

	"github.com/heartchain/heartchain/internal/adapter"
	"github.com/heartchain/heartchain/internal/config"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/store"
)

// Workers aggregates the background jobs of the server.
type Workers struct {
	workers []Worker
}

func NewWorkers(storages *store.Storages, blobStore adapter.BlobStore, ledger adapter.Ledger, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewAnchorWorker(storages.CampaignRepository, blobStore, ledger, cfg, logger),
		},
	}
}

// Run starts every registered worker. It returns immediately; cancelling
// ctx stops them.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
