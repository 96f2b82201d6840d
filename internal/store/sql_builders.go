package store

import (
	"context"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/models"
)

// psql is the shared statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListCampaignsQuery builds the public campaign listing query with
// optional status, type and category filters. Results are ordered with
// urgent campaigns first, newest first within equal priority.
func buildListCampaignsQuery(ctx context.Context, filter models.CampaignFilter) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select(campaignColumns).
		From("campaigns").
		OrderBy("priority DESC", "created_at DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"campaign_type": filter.Type})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildListCampaignsQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListPendingQuery builds the review-queue query: campaigns awaiting
// verification, oldest submission first, optionally narrowed to one
// campaign type.
func buildListPendingQuery(ctx context.Context, campaignType models.CampaignType, limit uint64) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select(campaignColumns).
		From("campaigns").
		Where(sq.Eq{"status": models.StatusPendingVerification}).
		OrderBy("submitted_at ASC")

	if campaignType != "" {
		builder = builder.Where(sq.Eq{"campaign_type": campaignType})
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildListPendingQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildStatusUpdateQuery builds the conditional status transition UPDATE.
// The WHERE clause pins both the campaign identifier and the expected
// current status, so the statement updates zero rows unless the record is
// still in the expected status at execution time.
func buildStatusUpdateQuery(ctx context.Context, id string, expected, target models.CampaignStatus, patch StatusPatch) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Update("campaigns").
		Set("status", target)

	// Sorted iteration keeps the generated SQL stable for identical inputs.
	columns := make([]string, 0, len(patch))
	for column := range patch {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	for _, column := range columns {
		builder = builder.Set(column, patch[column])
	}

	query, args, err := builder.
		Where(sq.Eq{"campaign_id": id, "status": expected}).
		Suffix("RETURNING " + campaignColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildStatusUpdateQuery").Str("campaign_id", id).Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildAppendDocumentQuery builds the document attach UPDATE. The JSONB
// concatenation appends one reference to the documents array; the WHERE
// clause gates the write on the campaign being in an allowed status.
func buildAppendDocumentQuery(ctx context.Context, id string, docJSON any, allowedStatuses []models.CampaignStatus) (string, []any, error) {
	log := logger.FromContext(ctx)

	statuses := make([]string, 0, len(allowedStatuses))
	for _, s := range allowedStatuses {
		statuses = append(statuses, string(s))
	}

	query, args, err := psql.
		Update("campaigns").
		Set("documents", sq.Expr("documents || ?::jsonb", docJSON)).
		Where(sq.Eq{"campaign_id": id, "status": statuses}).
		Suffix("RETURNING " + campaignColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildAppendDocumentQuery").Str("campaign_id", id).Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListAuditEntriesQuery builds the audit trail listing query with
// optional admin, action and campaign filters, newest entries first.
func buildListAuditEntriesQuery(ctx context.Context, filter models.AuditFilter) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select("entry_id", "admin_id", "action", "campaign_id", "details", "created_at").
		From("admin_audit_log").
		OrderBy("created_at DESC")

	if filter.AdminID != "" {
		builder = builder.Where(sq.Eq{"admin_id": filter.AdminID})
	}
	if filter.Action != "" {
		builder = builder.Where(sq.Eq{"action": filter.Action})
	}
	if filter.CampaignID != "" {
		builder = builder.Where(sq.Eq{"campaign_id": filter.CampaignID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildListAuditEntriesQuery").Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
