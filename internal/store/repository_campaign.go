package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/models"
)

// campaignRepository is the PostgreSQL-backed implementation of
// [CampaignRepository]. It executes all campaign persistence against the
// "campaigns" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions carry the request trace.
type campaignRepository struct {
	*DB
	logger *logger.Logger
}

// NewCampaignRepository constructs a [CampaignRepository] backed by the
// provided database connection and logger.
func NewCampaignRepository(db *DB, logger *logger.Logger) CampaignRepository {
	logger.Debug().Msg("creating campaign repository")
	return &campaignRepository{
		DB:     db,
		logger: logger,
	}
}

// scanCampaign reads one campaigns row into a models.Campaign. The scan
// destination order matches campaignColumns.
func scanCampaign(row interface{ Scan(...any) error }) (models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.ID,
		&c.Type,
		&c.Status,
		&c.Title,
		&c.Description,
		&c.TargetAmount,
		&c.RaisedAmount,
		&c.DurationDays,
		&c.Category,
		&c.Priority,
		&c.ImageURL,
		&c.OrganizationName,
		&c.BeneficiaryName,
		&c.PhoneNumber,
		&c.ResidentialAddress,
		&c.ContactPersonName,
		&c.ContactPhoneNumber,
		&c.OfficialAddress,
		&c.VerificationNotes,
		&c.Documents,
		&c.LedgerTxHash,
		&c.CreatedAt,
		&c.EndDate,
		&c.SubmittedAt,
		&c.ApprovedAt,
		&c.ApprovedBy,
		&c.ApprovalNotes,
		&c.RejectedAt,
		&c.RejectedBy,
		&c.RejectionReason,
		&c.ClosedAt,
		&c.CloseReason,
	)
	return c, err
}

// CreateCampaign persists a new campaign record and returns the fully
// populated [models.Campaign] as the database stored it.
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new record.
func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, insertCampaign,
		campaign.ID,
		campaign.Type,
		campaign.Status,
		campaign.Title,
		campaign.Description,
		campaign.TargetAmount,
		campaign.RaisedAmount,
		campaign.DurationDays,
		campaign.Category,
		campaign.Priority,
		campaign.ImageURL,
		campaign.OrganizationName,
		campaign.BeneficiaryName,
		campaign.PhoneNumber,
		campaign.ResidentialAddress,
		campaign.ContactPersonName,
		campaign.ContactPhoneNumber,
		campaign.OfficialAddress,
		campaign.VerificationNotes,
		campaign.Documents,
		campaign.CreatedAt,
		campaign.EndDate,
	)

	saved, err := scanCampaign(row)
	if err != nil {
		log.Err(err).
			Str("func", "campaignRepository.CreateCampaign").
			Str("campaign_id", campaign.ID).
			Msg("failed to insert campaign")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Campaign{}, ErrCampaignNotSaved
		}
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// GetCampaign retrieves one campaign by identifier. Returns
// [ErrCampaignNotFound] when no record matches.
func (r *campaignRepository) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getCampaignByID, id)

	campaign, err := scanCampaign(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "campaignRepository.GetCampaign").
				Str("campaign_id", id).
				Msg("campaign not found")
			return models.Campaign{}, ErrCampaignNotFound
		}
		log.Err(err).
			Str("func", "campaignRepository.GetCampaign").
			Str("campaign_id", id).
			Msg("failed to scan campaign row")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return campaign, nil
}

// ListCampaigns retrieves campaigns matching the filter, urgent priority
// first, newest first within equal priority.
func (r *campaignRepository) ListCampaigns(ctx context.Context, filter models.CampaignFilter) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCampaignsQuery(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "campaignRepository.ListCampaigns").
			Msg("failed to build listing query")
		return nil, err
	}

	return r.queryCampaigns(ctx, "campaignRepository.ListCampaigns", query, args...)
}

// ListPendingCampaigns retrieves the verification queue: campaigns in
// pending_verification status ordered by submission time, oldest first.
// An empty campaignType matches both variants.
func (r *campaignRepository) ListPendingCampaigns(ctx context.Context, campaignType models.CampaignType, limit uint64) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPendingQuery(ctx, campaignType, limit)
	if err != nil {
		log.Err(err).
			Str("func", "campaignRepository.ListPendingCampaigns").
			Msg("failed to build pending queue query")
		return nil, err
	}

	return r.queryCampaigns(ctx, "campaignRepository.ListPendingCampaigns", query, args...)
}

// UpdateCampaignStatus performs the conditional status transition: one
// UPDATE whose WHERE clause pins both the campaign identifier and the
// expected current status. Zero updated rows means either the campaign
// does not exist ([ErrCampaignNotFound]) or its freshly read status no
// longer matches expected ([ErrStatusConflict]); a follow-up read
// distinguishes the two. Of two concurrent transitions on the same
// campaign exactly one observes the expected status and wins.
func (r *campaignRepository) UpdateCampaignStatus(ctx context.Context, id string, expected, target models.CampaignStatus, patch StatusPatch) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStatusUpdateQuery(ctx, id, expected, target, patch)
	if err != nil {
		log.Err(err).
			Str("func", "campaignRepository.UpdateCampaignStatus").
			Str("campaign_id", id).
			Msg("failed to build status update query")
		return models.Campaign{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	updated, scanErr := scanCampaign(row)
	if scanErr == nil {
		log.Info().
			Str("func", "campaignRepository.UpdateCampaignStatus").
			Str("campaign_id", id).
			Str("from", string(expected)).
			Str("to", string(target)).
			Msg("campaign status updated")
		return updated, nil
	}

	if !errors.Is(scanErr, sql.ErrNoRows) {
		log.Err(scanErr).
			Str("func", "campaignRepository.UpdateCampaignStatus").
			Str("campaign_id", id).
			Msg("failed to execute status update")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	// Zero rows: re-read to tell a missing campaign apart from a lost race.
	if _, getErr := r.GetCampaign(ctx, id); getErr != nil {
		return models.Campaign{}, getErr
	}

	log.Warn().
		Str("func", "campaignRepository.UpdateCampaignStatus").
		Str("campaign_id", id).
		Str("expected", string(expected)).
		Msg("status precondition failed")

	return models.Campaign{}, ErrStatusConflict
}

// AppendDocument attaches a document reference to the campaign's JSONB
// documents array. The UPDATE is gated on the campaign currently being in
// one of allowedStatuses, using the same conditional-update discipline as
// status transitions.
func (r *campaignRepository) AppendDocument(ctx context.Context, id string, doc models.DocumentReference, allowedStatuses []models.CampaignStatus) (models.Campaign, error) {
	log := logger.FromContext(ctx)

	docJSON, err := models.DocumentList{doc}.Value()
	if err != nil {
		log.Err(err).
			Str("func", "campaignRepository.AppendDocument").
			Str("campaign_id", id).
			Msg("failed to encode document reference")
		return models.Campaign{}, err
	}

	query, args, err := buildAppendDocumentQuery(ctx, id, docJSON, allowedStatuses)
	if err != nil {
		log.Err(err).
			Str("func", "campaignRepository.AppendDocument").
			Str("campaign_id", id).
			Msg("failed to build document append query")
		return models.Campaign{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	updated, scanErr := scanCampaign(row)
	if scanErr == nil {
		log.Info().
			Str("func", "campaignRepository.AppendDocument").
			Str("campaign_id", id).
			Str("content_id", doc.ContentID).
			Msg("document attached to campaign")
		return updated, nil
	}

	if !errors.Is(scanErr, sql.ErrNoRows) {
		log.Err(scanErr).
			Str("func", "campaignRepository.AppendDocument").
			Str("campaign_id", id).
			Msg("failed to append document")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	if _, getErr := r.GetCampaign(ctx, id); getErr != nil {
		return models.Campaign{}, getErr
	}

	return models.Campaign{}, ErrStatusConflict
}

// RemoveDocument detaches the document with the given content identifier.
// The UPDATE is gated on requiredStatus and on the document actually being
// attached, zero affected rows is classified by a follow-up read.
func (r *campaignRepository) RemoveDocument(ctx context.Context, id, contentID string, requiredStatus models.CampaignStatus) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, removeCampaignDocument, id, contentID, requiredStatus)
	if err != nil {
		log.Err(err).
			Str("func", "campaignRepository.RemoveDocument").
			Str("campaign_id", id).
			Str("content_id", contentID).
			Msg("failed to remove document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		// Zero rows: the campaign is missing, in the wrong status, or the
		// document is not attached. Re-read to classify.
		campaign, getErr := r.GetCampaign(ctx, id)
		if getErr != nil {
			return getErr
		}
		if campaign.Status != requiredStatus {
			return ErrStatusConflict
		}
		return ErrDocumentNotFound
	}

	return nil
}

// SetLedgerTxHash records the on-chain anchor transaction of a campaign.
func (r *campaignRepository) SetLedgerTxHash(ctx context.Context, id, txHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, setCampaignLedgerTxHash, id, txHash)
	if err != nil {
		log.Err(err).
			Str("func", "campaignRepository.SetLedgerTxHash").
			Str("campaign_id", id).
			Msg("failed to set ledger tx hash")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		log.Warn().
			Str("func", "campaignRepository.SetLedgerTxHash").
			Str("campaign_id", id).
			Msg("campaign not found")
		return ErrCampaignNotFound
	}

	return nil
}

// ListUnanchored returns active campaigns without a ledger transaction
// hash, oldest approval first. Used by the anchoring worker to pick up
// campaigns whose on-chain registration is still outstanding.
func (r *campaignRepository) ListUnanchored(ctx context.Context, limit uint64) ([]models.Campaign, error) {
	return r.queryCampaigns(ctx, "campaignRepository.ListUnanchored", listUnanchoredCampaigns, limit)
}

// Stats aggregates campaign counts by status and by type plus the total
// raised amount across all campaigns.
func (r *campaignRepository) Stats(ctx context.Context) (models.AdminStats, error) {
	log := logger.FromContext(ctx)

	stats := models.AdminStats{
		ByStatus: make(map[models.CampaignStatus]int64),
		ByType:   make(map[models.CampaignType]int64),
	}

	rows, err := r.DB.QueryContext(ctx, campaignCountsByStatus)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.Stats").Msg("failed to count campaigns by status")
		return models.AdminStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var status models.CampaignStatus
		var count int64
		if scanErr := rows.Scan(&status, &count); scanErr != nil {
			log.Err(scanErr).Str("func", "campaignRepository.Stats").Msg("failed to scan status count row")
			return models.AdminStats{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		stats.ByStatus[status] = count
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "campaignRepository.Stats").Msg("error occurred during rows iteration")
		return models.AdminStats{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	typeRows, err := r.DB.QueryContext(ctx, campaignCountsByType)
	if err != nil {
		log.Err(err).Str("func", "campaignRepository.Stats").Msg("failed to count campaigns by type")
		return models.AdminStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer typeRows.Close()

	for typeRows.Next() {
		var campaignType models.CampaignType
		var count int64
		if scanErr := typeRows.Scan(&campaignType, &count); scanErr != nil {
			log.Err(scanErr).Str("func", "campaignRepository.Stats").Msg("failed to scan type count row")
			return models.AdminStats{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		stats.ByType[campaignType] = count
	}
	if rowsErr := typeRows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "campaignRepository.Stats").Msg("error occurred during rows iteration")
		return models.AdminStats{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if err := r.DB.QueryRowContext(ctx, campaignTotalRaised).Scan(&stats.TotalRaised); err != nil {
		log.Err(err).Str("func", "campaignRepository.Stats").Msg("failed to sum raised amounts")
		return models.AdminStats{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stats, nil
}

// queryCampaigns runs a multi-row campaign query and scans the full result
// set. Returns an empty slice when nothing matches.
func (r *campaignRepository) queryCampaigns(ctx context.Context, caller, query string, args ...any) ([]models.Campaign, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute campaign listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	campaigns := make([]models.Campaign, 0, 20)

	for rows.Next() {
		campaign, scanErr := scanCampaign(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan campaign row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		campaigns = append(campaigns, campaign)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return campaigns, nil
}
