package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/heartchain/heartchain/models"
)

// ErrorClassifier decides whether a failed database operation is worth
// retrying. Retries themselves belong to the calling layer.
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}

// StatusPatch is the set of column effects applied together with a status
// change in one conditional UPDATE. Keys are column names; values the new
// column values.
type StatusPatch map[string]any

// CampaignRepository is the persistence contract for campaign records.
// The record is owned by this layer; callers never cache it across calls.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (models.Campaign, error)
	ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error)
	ListPendingCampaigns(ctx context.Context, campaignType models.CampaignType, limit uint64) ([]models.Campaign, error)

	// UpdateCampaignStatus performs the atomic compare-and-swap transition:
	// the status column is changed from expected to target together with the
	// patch effects in one conditional UPDATE. When the campaign is missing
	// it fails with ErrCampaignNotFound; when the freshly read status does
	// not match expected it fails with ErrStatusConflict; exactly one of
	// two concurrent transitions on the same campaign can win.
	UpdateCampaignStatus(ctx context.Context, id string, expected, target models.CampaignStatus, patch StatusPatch) (models.Campaign, error)

	// AppendDocument attaches a document reference, gated on the campaign
	// being in one of allowedStatuses (same conditional-update discipline as
	// status transitions).
	AppendDocument(ctx context.Context, id string, doc models.DocumentReference, allowedStatuses []models.CampaignStatus) (models.Campaign, error)

	// RemoveDocument detaches the document with the given content
	// identifier, permitted only while the campaign is in requiredStatus.
	RemoveDocument(ctx context.Context, id, contentID string, requiredStatus models.CampaignStatus) error

	// SetLedgerTxHash records the on-chain anchor of a campaign.
	SetLedgerTxHash(ctx context.Context, id, txHash string) error

	// ListUnanchored returns active campaigns that have no ledger
	// transaction hash yet, oldest approval first.
	ListUnanchored(ctx context.Context, limit uint64) ([]models.Campaign, error)

	// Stats aggregates campaign counts by status and type plus the total
	// raised amount.
	Stats(ctx context.Context) (models.AdminStats, error)
}

// AuditLogRepository is the append-only audit trail. There is deliberately
// no update or delete operation.
type AuditLogRepository interface {
	AppendAuditEntry(ctx context.Context, entry models.AuditLogEntry) error
	ListAuditEntries(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error)
}

// DonationRepository persists donations and keeps the campaign raised
// amount in step with them.
type DonationRepository interface {
	// CreateDonation inserts the donation and increments the campaign's
	// raised amount in one transaction.
	CreateDonation(ctx context.Context, donation models.Donation) (models.Donation, error)
	ListDonationsByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error)
	ListDonationsByWallet(ctx context.Context, walletAddress string) ([]models.Donation, error)
}

// AdminRepository persists reviewer accounts.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error)
	FindAdminByLogin(ctx context.Context, login string) (models.Admin, error)
}
