package service

import (
	"github.com/heartchain/heartchain/internal/adapter"
	"github.com/heartchain/heartchain/internal/config"
	"github.com/heartchain/heartchain/internal/crypto"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/store"
	"github.com/heartchain/heartchain/internal/validators"
)

// Services aggregates the business-logic layer.
type Services struct {
	CampaignService CampaignService
	DocumentService DocumentService
	AdminService    AdminService
	DonationService DonationService
	AuthService     AuthService
}

func NewServices(storages *store.Storages, codec crypto.Codec, blobStore adapter.BlobStore, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	projector := crypto.NewProjector(codec)
	campaignValidator := validators.NewCampaignValidator()
	documentValidator := validators.NewDocumentValidator(cfg.Uploads.AllowedMimeTypes, cfg.Uploads.MaxFileSizeBytes())

	return &Services{
		CampaignService: NewCampaignService(storages.CampaignRepository, projector, campaignValidator, logger),
		DocumentService: NewDocumentService(storages.CampaignRepository, codec, blobStore, documentValidator, logger),
		AdminService:    NewAdminService(storages.CampaignRepository, storages.AuditLogRepository, projector, codec, blobStore, campaignValidator, logger),
		DonationService: NewDonationService(storages.DonationRepository, storages.CampaignRepository, campaignValidator, logger),
		AuthService:     NewAuthService(storages.AdminRepository, cfg.App, logger),
	}
}
