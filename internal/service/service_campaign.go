package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartchain/heartchain/internal/crypto"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/store"
	"github.com/heartchain/heartchain/internal/utils"
	"github.com/heartchain/heartchain/internal/validators"
	"github.com/heartchain/heartchain/models"
)

type campaignService struct {
	campaignRepository store.CampaignRepository
	projector          *crypto.Projector
	validator          validators.Validator
	uuid               *utils.UUIDGenerator

	logger *logger.Logger
}

func NewCampaignService(campaignRepository store.CampaignRepository, projector *crypto.Projector, validator validators.Validator, logger *logger.Logger) CampaignService {
	logger.Debug().Msg("creating campaign service")

	return &campaignService{
		campaignRepository: campaignRepository,
		projector:          projector,
		validator:          validator,
		uuid:               utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// CreateIndividualCampaign validates the input, encrypts the beneficiary
// attributes and persists the campaign as a draft.
func (s *campaignService) CreateIndividualCampaign(ctx context.Context, in models.IndividualCampaignCreate) (models.CampaignPublicView, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Str("func", "campaignService.CreateIndividualCampaign").Msg("invalid campaign input")
		return models.CampaignPublicView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	campaign := s.newDraft(models.CampaignIndividual, in.Title, in.Description, in.TargetAmount, in.DurationDays, in.Category, in.Priority, in.ImageURL)
	if err := s.projector.EncryptIndividual(&campaign, in); err != nil {
		log.Err(err).Str("func", "campaignService.CreateIndividualCampaign").Msg("error encrypting campaign attributes")
		return models.CampaignPublicView{}, err
	}

	return s.persistDraft(ctx, campaign)
}

// CreateOrganizationCampaign validates the input, encrypts the contact
// attributes and persists the campaign as a draft. The organization name
// itself stays public.
func (s *campaignService) CreateOrganizationCampaign(ctx context.Context, in models.OrganizationCampaignCreate) (models.CampaignPublicView, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Str("func", "campaignService.CreateOrganizationCampaign").Msg("invalid campaign input")
		return models.CampaignPublicView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	campaign := s.newDraft(models.CampaignOrganization, in.Title, in.Description, in.TargetAmount, in.DurationDays, in.Category, in.Priority, in.ImageURL)
	campaign.OrganizationName = in.OrganizationName
	if err := s.projector.EncryptOrganization(&campaign, in); err != nil {
		log.Err(err).Str("func", "campaignService.CreateOrganizationCampaign").Msg("error encrypting campaign attributes")
		return models.CampaignPublicView{}, err
	}

	return s.persistDraft(ctx, campaign)
}

func (s *campaignService) newDraft(campaignType models.CampaignType, title, description string, targetAmount float64, durationDays int, category string, priority models.PriorityLevel, imageURL string) models.Campaign {
	now := time.Now()

	return models.Campaign{
		ID:           s.uuid.Generate(),
		Type:         campaignType,
		Status:       models.StatusDraft,
		Title:        title,
		Description:  description,
		TargetAmount: targetAmount,
		DurationDays: durationDays,
		Category:     category,
		Priority:     priority,
		ImageURL:     imageURL,
		Documents:    models.DocumentList{},
		CreatedAt:    now,
		EndDate:      now.AddDate(0, 0, durationDays),
	}
}

func (s *campaignService) persistDraft(ctx context.Context, campaign models.Campaign) (models.CampaignPublicView, error) {
	log := logger.FromContext(ctx)

	saved, err := s.campaignRepository.CreateCampaign(ctx, campaign)
	if err != nil {
		log.Err(err).Str("func", "campaignService.persistDraft").Str("campaignID", campaign.ID).Msg("error saving campaign")
		return models.CampaignPublicView{}, fmt.Errorf("error saving campaign: %w", err)
	}
	log.Info().Str("campaignID", saved.ID).Str("type", string(saved.Type)).Msg("campaign draft created")

	return saved.PublicView(), nil
}

func (s *campaignService) SubmitCampaign(ctx context.Context, id string) (models.CampaignPublicView, error) {
	now := time.Now()

	campaign, err := s.applyTransition(ctx, id, models.EventSubmit, store.StatusPatch{"submitted_at": now})
	if err != nil {
		return models.CampaignPublicView{}, err
	}

	return campaign.PublicView(), nil
}

func (s *campaignService) CloseCampaign(ctx context.Context, id, reason string) (models.CampaignPublicView, error) {
	now := time.Now()

	campaign, err := s.applyTransition(ctx, id, models.EventClose, store.StatusPatch{
		"closed_at":    now,
		"close_reason": reason,
	})
	if err != nil {
		return models.CampaignPublicView{}, err
	}

	return campaign.PublicView(), nil
}

// applyTransition resolves the event against the transition table and runs
// the conditional status update. A precondition failure reported by the
// store becomes ErrIllegalTransition; the campaign was found but its fresh
// status did not permit the event.
func (s *campaignService) applyTransition(ctx context.Context, id string, event models.TransitionEvent, patch store.StatusPatch) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	from, to, ok := models.Transition(event)
	if !ok {
		return models.Campaign{}, fmt.Errorf("%w: unknown event %q", ErrIllegalTransition, event)
	}

	campaign, err := s.campaignRepository.UpdateCampaignStatus(ctx, id, from, to, patch)
	if err != nil {
		if errors.Is(err, store.ErrStatusConflict) {
			log.Warn().Str("campaignID", id).Str("event", string(event)).Msg("campaign status does not permit event")
			return models.Campaign{}, fmt.Errorf("%w: %w", ErrIllegalTransition, err)
		}
		log.Err(err).Str("func", "campaignService.applyTransition").Str("campaignID", id).Str("event", string(event)).Msg("error applying status transition")
		return models.Campaign{}, err
	}
	log.Info().Str("campaignID", id).Str("from", string(from)).Str("to", string(to)).Msg("campaign status changed")

	return campaign, nil
}

func (s *campaignService) GetCampaign(ctx context.Context, id string) (models.CampaignPublicView, error) {
	campaign, err := s.campaignRepository.GetCampaign(ctx, id)
	if err != nil {
		return models.CampaignPublicView{}, err
	}

	return campaign.PublicView(), nil
}

func (s *campaignService) ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.CampaignPublicView, error) {
	campaigns, err := s.campaignRepository.ListCampaigns(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]models.CampaignPublicView, 0, len(campaigns))
	for _, campaign := range campaigns {
		views = append(views, campaign.PublicView())
	}

	return views, nil
}
