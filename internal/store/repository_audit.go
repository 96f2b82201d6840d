package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/models"
)

// auditLogRepository is the PostgreSQL-backed implementation of
// [AuditLogRepository]. The "admin_audit_log" table is append-only; this
// type exposes no update or delete operation on purpose.
type auditLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuditLogRepository constructs an [AuditLogRepository] backed by the
// provided database connection and logger.
func NewAuditLogRepository(db *DB, logger *logger.Logger) AuditLogRepository {
	logger.Debug().Msg("creating audit log repository")
	return &auditLogRepository{
		DB:     db,
		logger: logger,
	}
}

// AppendAuditEntry persists one audit trail entry. Details are stored as
// JSONB. A failed append must propagate to the caller so it can refuse the
// action it was about to record.
func (r *auditLogRepository) AppendAuditEntry(ctx context.Context, entry models.AuditLogEntry) error {
	log := logger.FromContext(ctx)

	details, err := json.Marshal(entry.Details)
	if err != nil {
		log.Err(err).
			Str("func", "auditLogRepository.AppendAuditEntry").
			Str("entry_id", entry.ID).
			Msg("failed to encode audit details")
		return err
	}

	result, err := r.DB.ExecContext(ctx, insertAuditEntry,
		entry.ID,
		entry.AdminID,
		entry.Action,
		entry.CampaignID,
		details,
		entry.Timestamp,
	)
	if err != nil {
		log.Err(err).
			Str("func", "auditLogRepository.AppendAuditEntry").
			Str("entry_id", entry.ID).
			Str("action", string(entry.Action)).
			Msg("failed to insert audit entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		log.Error().
			Str("func", "auditLogRepository.AppendAuditEntry").
			Str("entry_id", entry.ID).
			Msg("audit entry was not persisted")
		return ErrExecutingStatement
	}

	return nil
}

// ListAuditEntries retrieves audit trail entries matching the filter,
// newest first.
func (r *auditLogRepository) ListAuditEntries(ctx context.Context, filter models.AuditFilter) ([]models.AuditLogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuditEntriesQuery(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "auditLogRepository.ListAuditEntries").
			Msg("failed to build audit listing query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "auditLogRepository.ListAuditEntries").
			Msg("failed to execute audit listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AuditLogEntry, 0, 50)

	for rows.Next() {
		var entry models.AuditLogEntry
		var details []byte

		scanErr := rows.Scan(
			&entry.ID,
			&entry.AdminID,
			&entry.Action,
			&entry.CampaignID,
			&details,
			&entry.Timestamp,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "auditLogRepository.ListAuditEntries").
				Msg("failed to scan audit entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if len(details) > 0 {
			if unmarshalErr := json.Unmarshal(details, &entry.Details); unmarshalErr != nil {
				log.Err(unmarshalErr).
					Str("func", "auditLogRepository.ListAuditEntries").
					Str("entry_id", entry.ID).
					Msg("failed to decode audit details")
				return nil, fmt.Errorf("%w: %w", ErrScanningRow, unmarshalErr)
			}
		}

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "auditLogRepository.ListAuditEntries").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}
