package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/heartchain/heartchain/models"
)

// CampaignService covers the public campaign lifecycle: creation, draft
// submission, closing and read access to public projections. Sensitive
// attributes are encrypted before they reach the store and never appear in
// any value this service returns.
type CampaignService interface {
	CreateIndividualCampaign(ctx context.Context, in models.IndividualCampaignCreate) (models.CampaignPublicView, error)
	CreateOrganizationCampaign(ctx context.Context, in models.OrganizationCampaignCreate) (models.CampaignPublicView, error)

	// SubmitCampaign moves a draft into pending verification.
	SubmitCampaign(ctx context.Context, id string) (models.CampaignPublicView, error)

	// CloseCampaign ends an active campaign. The reason is stored verbatim.
	CloseCampaign(ctx context.Context, id, reason string) (models.CampaignPublicView, error)

	GetCampaign(ctx context.Context, id string) (models.CampaignPublicView, error)
	ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.CampaignPublicView, error)
}

// DocumentService manages encrypted supporting documents. Content is sealed
// before upload and stored only in the external blob store; campaigns keep
// references.
type DocumentService interface {
	// UploadDocument seals the content and attaches a reference to the
	// campaign. Permitted only while the campaign is in draft or pending
	// verification.
	UploadDocument(ctx context.Context, campaignID string, upload models.DocumentUpload) (models.DocumentReference, error)

	// RemoveDocument detaches a document reference. Permitted only while the
	// campaign is still a draft.
	RemoveDocument(ctx context.Context, campaignID, contentID string) error

	ListDocuments(ctx context.Context, campaignID string) ([]models.DocumentReference, error)
}

// AdminService is the sole decryption surface. Every operation that reveals
// sensitive plaintext or document content appends an audit entry first and
// refuses the disclosure when the append fails.
type AdminService interface {
	// ListPendingCampaigns returns full views of campaigns awaiting
	// verification, one audit entry appended per revealed campaign.
	ListPendingCampaigns(ctx context.Context, adminID string, campaignType models.CampaignType, limit uint64) ([]models.CampaignFullView, error)

	// RevealCampaign discloses the full view of one campaign.
	RevealCampaign(ctx context.Context, adminID, campaignID string) (models.CampaignFullView, error)

	// ApproveCampaign activates a pending campaign. Anchoring the approval
	// on the ledger happens asynchronously.
	ApproveCampaign(ctx context.Context, adminID, campaignID, notes string) (models.CampaignFullView, error)

	// RejectCampaign rejects a pending campaign. The reason is mandatory and
	// must carry at least ten characters.
	RejectCampaign(ctx context.Context, adminID, campaignID, reason string) (models.CampaignFullView, error)

	// RetrieveDocument fetches and opens one encrypted document.
	RetrieveDocument(ctx context.Context, adminID, campaignID, contentID string) (models.DocumentContent, error)

	ListAuditEntries(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error)
	Stats(ctx context.Context) (models.AdminStats, error)
}

// DonationService records public contributions against active campaigns.
type DonationService interface {
	RecordDonation(ctx context.Context, in models.DonationCreate) (models.Donation, error)
	ListDonationsByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error)
	ListDonationsByWallet(ctx context.Context, walletAddress string) ([]models.Donation, error)
}

// AuthService authenticates reviewer accounts and manages their JWTs.
type AuthService interface {
	Login(ctx context.Context, req models.AdminLoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Bootstrap creates the configured admin account when it does not exist
	// yet. A no-op when the login is empty or already taken.
	Bootstrap(ctx context.Context, login, password string) error
}
