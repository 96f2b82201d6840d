package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/models"
)

// donationRepository is the PostgreSQL-backed implementation of
// [DonationRepository].
type donationRepository struct {
	*DB
	logger *logger.Logger
}

// NewDonationRepository constructs a [DonationRepository] backed by the
// provided database connection and logger.
func NewDonationRepository(db *DB, logger *logger.Logger) DonationRepository {
	logger.Debug().Msg("creating donation repository")
	return &donationRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateDonation inserts the donation and increments the campaign's raised
// amount in a single transaction, so the campaign total and the donation
// log can never drift apart.
//
// Returns [ErrCampaignNotFound] when the raised-amount update touches zero
// rows, the whole transaction is rolled back in that case.
func (r *donationRepository) CreateDonation(ctx context.Context, donation models.Donation) (models.Donation, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "donationRepository.CreateDonation").
			Str("campaign_id", donation.CampaignID).
			Msg("failed to begin transaction")
		return models.Donation{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var saved models.Donation
	scanErr := tx.QueryRowContext(ctx, insertDonation,
		donation.ID,
		donation.CampaignID,
		donation.WalletAddress,
		donation.Amount,
		donation.TxHash,
		donation.Message,
		donation.CreatedAt,
	).Scan(
		&saved.ID,
		&saved.CampaignID,
		&saved.WalletAddress,
		&saved.Amount,
		&saved.TxHash,
		&saved.Message,
		&saved.CreatedAt,
	)
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "donationRepository.CreateDonation").
			Str("campaign_id", donation.CampaignID).
			Msg("failed to insert donation")
		return models.Donation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	result, execErr := tx.ExecContext(ctx, addCampaignRaisedAmount, donation.CampaignID, donation.Amount)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "donationRepository.CreateDonation").
			Str("campaign_id", donation.CampaignID).
			Msg("failed to increment raised amount")
		return models.Donation{}, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		log.Warn().
			Str("func", "donationRepository.CreateDonation").
			Str("campaign_id", donation.CampaignID).
			Msg("campaign not found")
		return models.Donation{}, ErrCampaignNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "donationRepository.CreateDonation").
			Str("campaign_id", donation.CampaignID).
			Msg("failed to commit transaction")
		return models.Donation{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	return saved, nil
}

// ListDonationsByCampaign retrieves the donations of one campaign, newest
// first.
func (r *donationRepository) ListDonationsByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error) {
	return r.queryDonations(ctx, "donationRepository.ListDonationsByCampaign", listDonationsByCampaign, campaignID)
}

// ListDonationsByWallet retrieves the donations made from one wallet
// address, newest first.
func (r *donationRepository) ListDonationsByWallet(ctx context.Context, walletAddress string) ([]models.Donation, error) {
	return r.queryDonations(ctx, "donationRepository.ListDonationsByWallet", listDonationsByWallet, walletAddress)
}

func (r *donationRepository) queryDonations(ctx context.Context, caller, query string, args ...any) ([]models.Donation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.Donation{}, nil
		}
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute donation listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	donations := make([]models.Donation, 0, 20)

	for rows.Next() {
		var donation models.Donation

		scanErr := rows.Scan(
			&donation.ID,
			&donation.CampaignID,
			&donation.WalletAddress,
			&donation.Amount,
			&donation.TxHash,
			&donation.Message,
			&donation.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan donation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		donations = append(donations, donation)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return donations, nil
}
