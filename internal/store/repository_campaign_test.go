package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:              db,
		errorClassifier: NewPostgresErrorClassifier(),
		logger:          logger.Nop(),
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var campaignTestColumns = []string{
	"campaign_id", "campaign_type", "status", "title", "description",
	"target_amount", "raised_amount", "duration_days", "category", "priority", "image_url",
	"organization_name", "beneficiary_name", "phone_number", "residential_address",
	"contact_person_name", "contact_phone_number", "official_address", "verification_notes",
	"documents", "ledger_tx_hash", "created_at", "end_date", "submitted_at",
	"approved_at", "approved_by", "approval_notes", "rejected_at", "rejected_by",
	"rejection_reason", "closed_at", "close_reason",
}

func encFieldValue(t *testing.T, f models.EncryptedField) []byte {
	t.Helper()
	raw, err := json.Marshal(f)
	require.NoError(t, err)
	return raw
}

// campaignRowArgs flattens a campaign into driver values in the
// campaignColumns order.
func campaignRowArgs(t *testing.T, c models.Campaign) []driver.Value {
	t.Helper()

	docs, err := c.Documents.Value()
	require.NoError(t, err)

	timeOrNil := func(ts *time.Time) driver.Value {
		if ts == nil {
			return nil
		}
		return *ts
	}

	return []driver.Value{
		c.ID, string(c.Type), string(c.Status), c.Title, c.Description,
		c.TargetAmount, c.RaisedAmount, c.DurationDays, c.Category, string(c.Priority), c.ImageURL,
		c.OrganizationName,
		encFieldValue(t, c.BeneficiaryName),
		encFieldValue(t, c.PhoneNumber),
		encFieldValue(t, c.ResidentialAddress),
		encFieldValue(t, c.ContactPersonName),
		encFieldValue(t, c.ContactPhoneNumber),
		encFieldValue(t, c.OfficialAddress),
		encFieldValue(t, c.VerificationNotes),
		docs, c.LedgerTxHash, c.CreatedAt, c.EndDate, timeOrNil(c.SubmittedAt),
		timeOrNil(c.ApprovedAt), c.ApprovedBy, c.ApprovalNotes, timeOrNil(c.RejectedAt), c.RejectedBy,
		c.RejectionReason, timeOrNil(c.ClosedAt), c.CloseReason,
	}
}

func sampleCampaign(id string, status models.CampaignStatus) models.Campaign {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return models.Campaign{
		ID:           id,
		Type:         models.CampaignIndividual,
		Status:       status,
		Title:        "Heart surgery for a child",
		Description:  "Urgent pediatric cardiac surgery",
		TargetAmount: 500000,
		DurationDays: 60,
		Category:     "medical",
		Priority:     models.PriorityUrgent,
		BeneficiaryName: models.EncryptedField{
			Nonce:      "bm9uY2UwMDAwMDE=",
			Ciphertext: "Y2lwaGVydGV4dA==",
		},
		PhoneNumber: models.EncryptedField{
			Nonce:      "bm9uY2UwMDAwMDI=",
			Ciphertext: "Y2lwaGVydGV4dDI=",
		},
		ResidentialAddress: models.EncryptedField{
			Nonce:      "bm9uY2UwMDAwMDM=",
			Ciphertext: "Y2lwaGVydGV4dDM=",
		},
		CreatedAt: now,
		EndDate:   now.AddDate(0, 2, 0),
	}
}

func TestGetCampaign(t *testing.T) {
	campaign := sampleCampaign("camp-1", models.StatusDraft)

	tests := []struct {
		name    string
		id      string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			id:   "camp-1",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getCampaignByID)).
					WithArgs("camp-1").
					WillReturnRows(sqlmock.NewRows(campaignTestColumns).AddRow(campaignRowArgs(t, campaign)...))
			},
		},
		{
			name: "not found",
			id:   "missing",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getCampaignByID)).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrCampaignNotFound,
		},
		{
			name: "driver error",
			id:   "camp-1",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getCampaignByID)).
					WithArgs("camp-1").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock)

			repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

			got, err := repo.GetCampaign(testContext(), tt.id)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, campaign.ID, got.ID)
				assert.Equal(t, campaign.Status, got.Status)
				assert.Equal(t, campaign.BeneficiaryName, got.BeneficiaryName)
				assert.Equal(t, campaign.PhoneNumber, got.PhoneNumber)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateCampaign(t *testing.T) {
	campaign := sampleCampaign("camp-new", models.StatusDraft)

	db, mock := newTestDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(insertCampaign)).
		WillReturnRows(sqlmock.NewRows(campaignTestColumns).AddRow(campaignRowArgs(t, campaign)...))

	repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

	saved, err := repo.CreateCampaign(testContext(), campaign)
	require.NoError(t, err)
	assert.Equal(t, "camp-new", saved.ID)
	assert.Equal(t, models.StatusDraft, saved.Status)
	assert.Equal(t, campaign.BeneficiaryName, saved.BeneficiaryName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCampaignStatus(t *testing.T) {
	submitted := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	// Patch columns are applied in sorted order after status, so the
	// generated SQL is deterministic.
	updateSQL := "UPDATE campaigns SET status = $1, submitted_at = $2 " +
		"WHERE campaign_id = $3 AND status = $4 RETURNING " + campaignColumns

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)

		pending := sampleCampaign("camp-1", models.StatusPendingVerification)
		pending.SubmittedAt = &submitted

		mock.ExpectQuery(regexp.QuoteMeta(updateSQL)).
			WithArgs(string(models.StatusPendingVerification), submitted, "camp-1", string(models.StatusDraft)).
			WillReturnRows(sqlmock.NewRows(campaignTestColumns).AddRow(campaignRowArgs(t, pending)...))

		repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

		updated, err := repo.UpdateCampaignStatus(testContext(), "camp-1",
			models.StatusDraft, models.StatusPendingVerification,
			StatusPatch{"submitted_at": submitted})
		require.NoError(t, err)
		assert.Equal(t, models.StatusPendingVerification, updated.Status)
		require.NotNil(t, updated.SubmittedAt)
		assert.Equal(t, submitted, *updated.SubmittedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("precondition failed: campaign in another status", func(t *testing.T) {
		db, mock := newTestDB(t)

		rejected := sampleCampaign("camp-1", models.StatusRejected)

		mock.ExpectQuery(regexp.QuoteMeta(updateSQL)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(getCampaignByID)).
			WithArgs("camp-1").
			WillReturnRows(sqlmock.NewRows(campaignTestColumns).AddRow(campaignRowArgs(t, rejected)...))

		repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

		_, err := repo.UpdateCampaignStatus(testContext(), "camp-1",
			models.StatusDraft, models.StatusPendingVerification,
			StatusPatch{"submitted_at": submitted})
		require.ErrorIs(t, err, ErrStatusConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("campaign does not exist", func(t *testing.T) {
		db, mock := newTestDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(updateSQL)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta(getCampaignByID)).
			WithArgs("camp-1").
			WillReturnError(sql.ErrNoRows)

		repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

		_, err := repo.UpdateCampaignStatus(testContext(), "camp-1",
			models.StatusDraft, models.StatusPendingVerification,
			StatusPatch{"submitted_at": submitted})
		require.ErrorIs(t, err, ErrCampaignNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListPendingCampaigns(t *testing.T) {
	first := sampleCampaign("camp-1", models.StatusPendingVerification)
	second := sampleCampaign("camp-2", models.StatusPendingVerification)

	db, mock := newTestDB(t)
	mock.ExpectQuery(`SELECT .+ FROM campaigns WHERE status = \$1 .* ORDER BY submitted_at ASC`).
		WithArgs(string(models.StatusPendingVerification), string(models.CampaignIndividual)).
		WillReturnRows(sqlmock.NewRows(campaignTestColumns).
			AddRow(campaignRowArgs(t, first)...).
			AddRow(campaignRowArgs(t, second)...))

	repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

	list, err := repo.ListPendingCampaigns(testContext(), models.CampaignIndividual, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "camp-1", list[0].ID)
	assert.Equal(t, "camp-2", list[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveDocument(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta(removeCampaignDocument)).
			WithArgs("camp-1", "Qm123", string(models.StatusDraft)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

		err := repo.RemoveDocument(testContext(), "camp-1", "Qm123", models.StatusDraft)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("campaign already submitted", func(t *testing.T) {
		db, mock := newTestDB(t)

		pending := sampleCampaign("camp-1", models.StatusPendingVerification)

		mock.ExpectExec(regexp.QuoteMeta(removeCampaignDocument)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(getCampaignByID)).
			WithArgs("camp-1").
			WillReturnRows(sqlmock.NewRows(campaignTestColumns).AddRow(campaignRowArgs(t, pending)...))

		repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

		err := repo.RemoveDocument(testContext(), "camp-1", "Qm123", models.StatusDraft)
		require.ErrorIs(t, err, ErrStatusConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("document not attached", func(t *testing.T) {
		db, mock := newTestDB(t)

		draft := sampleCampaign("camp-1", models.StatusDraft)

		mock.ExpectExec(regexp.QuoteMeta(removeCampaignDocument)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(getCampaignByID)).
			WithArgs("camp-1").
			WillReturnRows(sqlmock.NewRows(campaignTestColumns).AddRow(campaignRowArgs(t, draft)...))

		repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

		err := repo.RemoveDocument(testContext(), "camp-1", "Qm999", models.StatusDraft)
		require.ErrorIs(t, err, ErrDocumentNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSetLedgerTxHash(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta(setCampaignLedgerTxHash)).
			WithArgs("camp-1", "0xabc123").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

		require.NoError(t, repo.SetLedgerTxHash(testContext(), "camp-1", "0xabc123"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("campaign not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectExec(regexp.QuoteMeta(setCampaignLedgerTxHash)).
			WithArgs("missing", "0xabc123").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

		err := repo.SetLedgerTxHash(testContext(), "missing", "0xabc123")
		require.ErrorIs(t, err, ErrCampaignNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStats(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(campaignCountsByStatus)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("active", int64(3)).
			AddRow("pending_verification", int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta(campaignCountsByType)).
		WillReturnRows(sqlmock.NewRows([]string{"campaign_type", "count"}).
			AddRow("individual", int64(4)).
			AddRow("organization", int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(campaignTotalRaised)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(12500.50))

	repo := NewCampaignRepository(newDBFromSQL(db), logger.Nop())

	stats, err := repo.Stats(testContext())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.ByStatus[models.StatusActive])
	assert.Equal(t, int64(2), stats.ByStatus[models.StatusPendingVerification])
	assert.Equal(t, int64(4), stats.ByType[models.CampaignIndividual])
	assert.Equal(t, 12500.50, stats.TotalRaised)
	require.NoError(t, mock.ExpectationsWereMet())
}
