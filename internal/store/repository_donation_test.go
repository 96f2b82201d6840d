package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var donationTestColumns = []string{
	"donation_id", "campaign_id", "wallet_address", "amount", "tx_hash", "message", "created_at",
}

func sampleDonation() models.Donation {
	return models.Donation{
		ID:            "don-1",
		CampaignID:    "camp-1",
		WalletAddress: "0xDEADBEEF",
		Amount:        250,
		TxHash:        "0xf00d",
		Message:       "get well soon",
		CreatedAt:     time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateDonation(t *testing.T) {
	donation := sampleDonation()

	t.Run("success: donation saved and raised amount incremented", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(insertDonation)).
			WithArgs(donation.ID, donation.CampaignID, donation.WalletAddress,
				donation.Amount, donation.TxHash, donation.Message, donation.CreatedAt).
			WillReturnRows(sqlmock.NewRows(donationTestColumns).
				AddRow(donation.ID, donation.CampaignID, donation.WalletAddress,
					donation.Amount, donation.TxHash, donation.Message, donation.CreatedAt))
		mock.ExpectExec(regexp.QuoteMeta(addCampaignRaisedAmount)).
			WithArgs(donation.CampaignID, donation.Amount).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewDonationRepository(newDBFromSQL(db), logger.Nop())

		saved, err := repo.CreateDonation(testContext(), donation)
		require.NoError(t, err)
		assert.Equal(t, donation, saved)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("campaign missing: transaction rolled back", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(insertDonation)).
			WillReturnRows(sqlmock.NewRows(donationTestColumns).
				AddRow(donation.ID, donation.CampaignID, donation.WalletAddress,
					donation.Amount, donation.TxHash, donation.Message, donation.CreatedAt))
		mock.ExpectExec(regexp.QuoteMeta(addCampaignRaisedAmount)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		repo := NewDonationRepository(newDBFromSQL(db), logger.Nop())

		_, err := repo.CreateDonation(testContext(), donation)
		require.ErrorIs(t, err, ErrCampaignNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(insertDonation)).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		repo := NewDonationRepository(newDBFromSQL(db), logger.Nop())

		_, err := repo.CreateDonation(testContext(), donation)
		require.ErrorIs(t, err, ErrExecutingQuery)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListDonationsByCampaign(t *testing.T) {
	donation := sampleDonation()

	db, mock := newTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(listDonationsByCampaign)).
		WithArgs("camp-1").
		WillReturnRows(sqlmock.NewRows(donationTestColumns).
			AddRow(donation.ID, donation.CampaignID, donation.WalletAddress,
				donation.Amount, donation.TxHash, donation.Message, donation.CreatedAt))

	repo := NewDonationRepository(newDBFromSQL(db), logger.Nop())

	list, err := repo.ListDonationsByCampaign(testContext(), "camp-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, donation, list[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListDonationsByWallet(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(listDonationsByWallet)).
		WithArgs("0xDEADBEEF").
		WillReturnRows(sqlmock.NewRows(donationTestColumns))

	repo := NewDonationRepository(newDBFromSQL(db), logger.Nop())

	list, err := repo.ListDonationsByWallet(testContext(), "0xDEADBEEF")
	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}
