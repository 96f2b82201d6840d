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
	"github.com/heartchain/heartchain/internal/validators"
	"github.com/heartchain/heartchain/models"
)

// uploadStatuses are the campaign states that still accept new documents.
var uploadStatuses = []models.CampaignStatus{
	models.StatusDraft,
	models.StatusPendingVerification,
}

type documentService struct {
	campaignRepository store.CampaignRepository
	sealer             crypto.EnvelopeSealer
	blobStore          adapter.BlobStore
	validator          validators.Validator

	logger *logger.Logger
}

func NewDocumentService(campaignRepository store.CampaignRepository, sealer crypto.EnvelopeSealer, blobStore adapter.BlobStore, validator validators.Validator, logger *logger.Logger) DocumentService {
	logger.Debug().Msg("creating document service")

	return &documentService{
		campaignRepository: campaignRepository,
		sealer:             sealer,
		blobStore:          blobStore,
		validator:          validator,
		logger:             logger,
	}
}

// UploadDocument seals the content, stores the sealed blob and attaches a
// reference to the campaign. The blob store never sees plaintext. When the
// campaign turns out not to accept uploads anymore the sealed blob stays
// behind in the store unreferenced; content-addressed storage makes the
// orphan harmless.
func (s *documentService) UploadDocument(ctx context.Context, campaignID string, upload models.DocumentUpload) (models.DocumentReference, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, upload); err != nil {
		log.Err(err).Str("func", "documentService.UploadDocument").Str("campaignID", campaignID).Msg("invalid document upload")
		return models.DocumentReference{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	sealed, err := s.sealer.SealDocument(upload.Content)
	if err != nil {
		log.Err(err).Str("func", "documentService.UploadDocument").Str("campaignID", campaignID).Msg("error sealing document")
		return models.DocumentReference{}, err
	}

	contentID, err := s.blobStore.PutBlob(ctx, upload.Filename, sealed)
	if err != nil {
		log.Err(err).Str("func", "documentService.UploadDocument").Str("campaignID", campaignID).Msg("error storing sealed document")
		return models.DocumentReference{}, fmt.Errorf("error storing sealed document: %w", err)
	}

	ref := models.DocumentReference{
		ContentID:  contentID,
		Kind:       upload.Kind,
		Filename:   upload.Filename,
		MimeType:   upload.MimeType,
		SizeBytes:  int64(len(upload.Content)),
		UploadedAt: time.Now(),
	}

	if _, err = s.campaignRepository.AppendDocument(ctx, campaignID, ref, uploadStatuses); err != nil {
		if errors.Is(err, store.ErrStatusConflict) {
			return models.DocumentReference{}, fmt.Errorf("%w: %w", ErrIllegalTransition, err)
		}
		log.Err(err).Str("func", "documentService.UploadDocument").Str("campaignID", campaignID).Str("contentID", contentID).Msg("error attaching document")
		return models.DocumentReference{}, err
	}
	log.Info().Str("campaignID", campaignID).Str("contentID", contentID).Str("kind", string(ref.Kind)).Msg("document attached")

	return ref, nil
}

// RemoveDocument detaches a document reference from a draft campaign. Once
// submitted for verification the document set is frozen.
func (s *documentService) RemoveDocument(ctx context.Context, campaignID, contentID string) error {
	log := logger.FromContext(ctx)

	err := s.campaignRepository.RemoveDocument(ctx, campaignID, contentID, models.StatusDraft)
	if err != nil {
		if errors.Is(err, store.ErrStatusConflict) {
			return fmt.Errorf("%w: %w", ErrIllegalTransition, err)
		}
		log.Err(err).Str("func", "documentService.RemoveDocument").Str("campaignID", campaignID).Str("contentID", contentID).Msg("error removing document")
		return err
	}
	log.Info().Str("campaignID", campaignID).Str("contentID", contentID).Msg("document removed")

	return nil
}

func (s *documentService) ListDocuments(ctx context.Context, campaignID string) ([]models.DocumentReference, error) {
	campaign, err := s.campaignRepository.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	return campaign.Documents, nil
}
