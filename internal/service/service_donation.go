package service

import (
	"context"
	"fmt"
	"time"

	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/store"
	"github.com/heartchain/heartchain/internal/utils"
	"github.com/heartchain/heartchain/internal/validators"
	"github.com/heartchain/heartchain/models"
)

type donationService struct {
	donationRepository store.DonationRepository
	campaignRepository store.CampaignRepository
	validator          validators.Validator
	uuid               *utils.UUIDGenerator

	logger *logger.Logger
}

func NewDonationService(donationRepository store.DonationRepository, campaignRepository store.CampaignRepository, validator validators.Validator, logger *logger.Logger) DonationService {
	logger.Debug().Msg("creating donation service")

	return &donationService{
		donationRepository: donationRepository,
		campaignRepository: campaignRepository,
		validator:          validator,
		uuid:               utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// RecordDonation persists a donation against an active campaign and bumps
// the campaign's raised amount.
func (s *donationService) RecordDonation(ctx context.Context, in models.DonationCreate) (models.Donation, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, in); err != nil {
		log.Err(err).Str("func", "donationService.RecordDonation").Msg("invalid donation input")
		return models.Donation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	campaign, err := s.campaignRepository.GetCampaign(ctx, in.CampaignID)
	if err != nil {
		return models.Donation{}, err
	}
	if campaign.Status != models.StatusActive {
		log.Warn().Str("campaignID", in.CampaignID).Str("status", string(campaign.Status)).Msg("donation refused")
		return models.Donation{}, fmt.Errorf("%w: campaign is %s", ErrDonationNotAccepted, campaign.Status)
	}

	donation := models.Donation{
		ID:            s.uuid.Generate(),
		CampaignID:    in.CampaignID,
		WalletAddress: in.WalletAddress,
		Amount:        in.Amount,
		TxHash:        in.TxHash,
		Message:       in.Message,
		CreatedAt:     time.Now(),
	}

	saved, err := s.donationRepository.CreateDonation(ctx, donation)
	if err != nil {
		log.Err(err).Str("func", "donationService.RecordDonation").Str("campaignID", in.CampaignID).Msg("error saving donation")
		return models.Donation{}, fmt.Errorf("error saving donation: %w", err)
	}
	log.Info().Str("campaignID", in.CampaignID).Str("donationID", saved.ID).Float64("amount", saved.Amount).Msg("donation recorded")

	return saved, nil
}

func (s *donationService) ListDonationsByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error) {
	return s.donationRepository.ListDonationsByCampaign(ctx, campaignID)
}

func (s *donationService) ListDonationsByWallet(ctx context.Context, walletAddress string) ([]models.Donation, error) {
	return s.donationRepository.ListDonationsByWallet(ctx, walletAddress)
}
