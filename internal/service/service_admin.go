package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartchain/heartchain/internal/adapter"
	"github.com/heartchain/heartchain/internal/crypto"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/store"
	"github.com/heartchain/heartchain/internal/utils"
	"github.com/heartchain/heartchain/internal/validators"
	"github.com/heartchain/heartchain/models"
)

// adminService implements the disclosure surface. It is the only component
// that turns stored ciphertext back into plaintext, and it writes the audit
// entry before any plaintext leaves it. A failed audit append aborts the
// disclosure.
type adminService struct {
	campaignRepository store.CampaignRepository
	auditRepository    store.AuditLogRepository
	projector          *crypto.Projector
	sealer             crypto.EnvelopeSealer
	blobStore          adapter.BlobStore
	validator          validators.Validator
	uuid               *utils.UUIDGenerator

	logger *logger.Logger
}

func NewAdminService(campaignRepository store.CampaignRepository, auditRepository store.AuditLogRepository, projector *crypto.Projector, sealer crypto.EnvelopeSealer, blobStore adapter.BlobStore, validator validators.Validator, logger *logger.Logger) AdminService {
	logger.Debug().Msg("creating admin service")

	return &adminService{
		campaignRepository: campaignRepository,
		auditRepository:    auditRepository,
		projector:          projector,
		sealer:             sealer,
		blobStore:          blobStore,
		validator:          validator,
		uuid:               utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// appendAudit writes one audit entry. Errors wrap ErrAuditAppendFailed so
// callers can refuse the action the entry would have recorded.
func (s *adminService) appendAudit(ctx context.Context, adminID string, action models.AuditAction, campaignID string, details map[string]string) error {
	log := logger.FromContext(ctx)

	entry := models.AuditLogEntry{
		ID:         s.uuid.Generate(),
		AdminID:    adminID,
		Action:     action,
		CampaignID: campaignID,
		Details:    details,
		Timestamp:  time.Now(),
	}

	if err := s.auditRepository.AppendAuditEntry(ctx, entry); err != nil {
		log.Err(err).Str("func", "adminService.appendAudit").
			Str("adminID", adminID).Str("action", string(action)).Str("campaignID", campaignID).
			Msg("error appending audit entry")
		return fmt.Errorf("%w: %w", ErrAuditAppendFailed, err)
	}

	return nil
}

// ListPendingCampaigns discloses the full views of campaigns awaiting
// verification. Each revealed campaign gets its own audit entry; the
// listing fails as a whole when any entry cannot be written.
func (s *adminService) ListPendingCampaigns(ctx context.Context, adminID string, campaignType models.CampaignType, limit uint64) ([]models.CampaignFullView, error) {
	log := logger.FromContext(ctx)

	campaigns, err := s.campaignRepository.ListPendingCampaigns(ctx, campaignType, limit)
	if err != nil {
		log.Err(err).Str("func", "adminService.ListPendingCampaigns").Msg("error listing pending campaigns")
		return nil, err
	}

	views := make([]models.CampaignFullView, 0, len(campaigns))
	for _, campaign := range campaigns {
		if err = s.appendAudit(ctx, adminID, models.AuditViewPending, campaign.ID, nil); err != nil {
			return nil, err
		}

		view, err := s.projector.DecryptCampaign(campaign)
		if err != nil {
			log.Err(err).Str("func", "adminService.ListPendingCampaigns").Str("campaignID", campaign.ID).Msg("error decrypting campaign")
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *adminService) RevealCampaign(ctx context.Context, adminID, campaignID string) (models.CampaignFullView, error) {
	log := logger.FromContext(ctx)

	campaign, err := s.campaignRepository.GetCampaign(ctx, campaignID)
	if err != nil {
		return models.CampaignFullView{}, err
	}

	if err = s.appendAudit(ctx, adminID, models.AuditViewDetails, campaignID, nil); err != nil {
		return models.CampaignFullView{}, err
	}

	view, err := s.projector.DecryptCampaign(campaign)
	if err != nil {
		log.Err(err).Str("func", "adminService.RevealCampaign").Str("campaignID", campaignID).Msg("error decrypting campaign")
		return models.CampaignFullView{}, err
	}
	log.Info().Str("adminID", adminID).Str("campaignID", campaignID).Msg("campaign disclosed")

	return view, nil
}

func (s *adminService) ApproveCampaign(ctx context.Context, adminID, campaignID, notes string) (models.CampaignFullView, error) {
	now := time.Now()

	campaign, err := s.transition(ctx, campaignID, models.EventApprove, store.StatusPatch{
		"approved_at":    now,
		"approved_by":    adminID,
		"approval_notes": notes,
	})
	if err != nil {
		return models.CampaignFullView{}, err
	}

	details := map[string]string{}
	if notes != "" {
		details["notes"] = notes
	}
	if err = s.appendAudit(ctx, adminID, models.AuditApprove, campaignID, details); err != nil {
		return models.CampaignFullView{}, err
	}

	return s.projector.DecryptCampaign(campaign)
}

func (s *adminService) RejectCampaign(ctx context.Context, adminID, campaignID, reason string) (models.CampaignFullView, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, validators.RejectionInput{Reason: reason}); err != nil {
		log.Err(err).Str("func", "adminService.RejectCampaign").Str("campaignID", campaignID).Msg("invalid rejection reason")
		return models.CampaignFullView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := time.Now()

	campaign, err := s.transition(ctx, campaignID, models.EventReject, store.StatusPatch{
		"rejected_at":      now,
		"rejected_by":      adminID,
		"rejection_reason": reason,
	})
	if err != nil {
		return models.CampaignFullView{}, err
	}

	if err = s.appendAudit(ctx, adminID, models.AuditReject, campaignID, map[string]string{"reason": reason}); err != nil {
		return models.CampaignFullView{}, err
	}

	return s.projector.DecryptCampaign(campaign)
}

func (s *adminService) transition(ctx context.Context, campaignID string, event models.TransitionEvent, patch store.StatusPatch) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	from, to, ok := models.Transition(event)
	if !ok {
		return models.Campaign{}, fmt.Errorf("%w: unknown event %q", ErrIllegalTransition, event)
	}

	campaign, err := s.campaignRepository.UpdateCampaignStatus(ctx, campaignID, from, to, patch)
	if err != nil {
		if errors.Is(err, store.ErrStatusConflict) {
			log.Warn().Str("campaignID", campaignID).Str("event", string(event)).Msg("campaign status does not permit event")
			return models.Campaign{}, fmt.Errorf("%w: %w", ErrIllegalTransition, err)
		}
		log.Err(err).Str("func", "adminService.transition").Str("campaignID", campaignID).Str("event", string(event)).Msg("error applying status transition")
		return models.Campaign{}, err
	}
	log.Info().Str("campaignID", campaignID).Str("from", string(from)).Str("to", string(to)).Msg("campaign status changed")

	return campaign, nil
}

// RetrieveDocument fetches the sealed blob, opens it and returns the
// plaintext content. The audit entry is written before the blob store is
// contacted.
func (s *adminService) RetrieveDocument(ctx context.Context, adminID, campaignID, contentID string) (models.DocumentContent, error) {
	log := logger.FromContext(ctx)

	campaign, err := s.campaignRepository.GetCampaign(ctx, campaignID)
	if err != nil {
		return models.DocumentContent{}, err
	}

	doc, found := campaign.DocumentByContentID(contentID)
	if !found {
		return models.DocumentContent{}, store.ErrDocumentNotFound
	}

	details := map[string]string{"content_id": contentID, "filename": doc.Filename}
	if err = s.appendAudit(ctx, adminID, models.AuditViewDocument, campaignID, details); err != nil {
		return models.DocumentContent{}, err
	}

	sealed, err := s.blobStore.GetBlob(ctx, contentID)
	if err != nil {
		log.Err(err).Str("func", "adminService.RetrieveDocument").Str("contentID", contentID).Msg("error fetching sealed document")
		return models.DocumentContent{}, fmt.Errorf("error fetching sealed document: %w", err)
	}

	content, err := s.sealer.OpenDocument(sealed)
	if err != nil {
		log.Err(err).Str("func", "adminService.RetrieveDocument").Str("contentID", contentID).Msg("error opening sealed document")
		return models.DocumentContent{}, err
	}

	return models.DocumentContent{
		ContentID: contentID,
		Filename:  doc.Filename,
		MimeType:  doc.MimeType,
		Content:   content,
	}, nil
}

func (s *adminService) ListAuditEntries(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error) {
	return s.auditRepository.ListAuditEntries(ctx, filter)
}

func (s *adminService) Stats(ctx context.Context) (models.AdminStats, error) {
	stats, err := s.campaignRepository.Stats(ctx)
	if err != nil {
		return models.AdminStats{}, err
	}
	stats.GeneratedAt = time.Now()

	return stats, nil
}
