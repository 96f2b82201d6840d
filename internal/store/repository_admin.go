package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/models"
)

// adminRepository is the PostgreSQL-backed implementation of
// [AdminRepository]. It handles reviewer account creation and lookup
// against the "admins" table.
type adminRepository struct {
	*DB
	logger *logger.Logger
}

// NewAdminRepository constructs an [AdminRepository] backed by the provided
// database connection and logger.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAdmin persists a new reviewer account and returns it as the
// database stored it.
//
// Error handling:
//   - PostgreSQL unique_violation on the login column → [ErrAdminAlreadyExists].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (r *adminRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	var saved models.Admin
	err := r.DB.QueryRowContext(ctx, insertAdmin,
		admin.ID,
		admin.Login,
		admin.PasswordHash,
		admin.CreatedAt,
	).Scan(
		&saved.ID,
		&saved.Login,
		&saved.PasswordHash,
		&saved.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn().
				Str("func", "adminRepository.CreateAdmin").
				Str("login", admin.Login).
				Msg("admin login already exists")
			return models.Admin{}, ErrAdminAlreadyExists
		}

		log.Err(err).
			Str("func", "adminRepository.CreateAdmin").
			Str("login", admin.Login).
			Msg("failed to insert admin")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// FindAdminByLogin retrieves the reviewer account with the given login.
// Returns [ErrAdminNotFound] when no account matches.
func (r *adminRepository) FindAdminByLogin(ctx context.Context, login string) (models.Admin, error) {
	log := logger.FromContext(ctx)

	var admin models.Admin
	err := r.DB.QueryRowContext(ctx, findAdminByLogin, login).Scan(
		&admin.ID,
		&admin.Login,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "adminRepository.FindAdminByLogin").
				Str("login", login).
				Msg("admin not found")
			return models.Admin{}, ErrAdminNotFound
		}

		log.Err(err).
			Str("func", "adminRepository.FindAdminByLogin").
			Str("login", login).
			Msg("failed to scan admin row")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return admin, nil
}
