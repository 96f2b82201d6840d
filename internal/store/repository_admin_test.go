package store

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminTestColumns = []string{"admin_id", "login", "password_hash", "created_at"}

func TestCreateAdmin(t *testing.T) {
	admin := models.Admin{
		ID:           "admin-1",
		Login:        "reviewer",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		CreatedAt:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(insertAdmin)).
			WithArgs(admin.ID, admin.Login, admin.PasswordHash, admin.CreatedAt).
			WillReturnRows(sqlmock.NewRows(adminTestColumns).
				AddRow(admin.ID, admin.Login, admin.PasswordHash, admin.CreatedAt))

		repo := NewAdminRepository(newDBFromSQL(db), logger.Nop())

		saved, err := repo.CreateAdmin(testContext(), admin)
		require.NoError(t, err)
		assert.Equal(t, admin, saved)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate login", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(insertAdmin)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		repo := NewAdminRepository(newDBFromSQL(db), logger.Nop())

		_, err := repo.CreateAdmin(testContext(), admin)
		require.ErrorIs(t, err, ErrAdminAlreadyExists)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindAdminByLogin(t *testing.T) {
	admin := models.Admin{
		ID:           "admin-1",
		Login:        "reviewer",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		CreatedAt:    time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(findAdminByLogin)).
			WithArgs("reviewer").
			WillReturnRows(sqlmock.NewRows(adminTestColumns).
				AddRow(admin.ID, admin.Login, admin.PasswordHash, admin.CreatedAt))

		repo := NewAdminRepository(newDBFromSQL(db), logger.Nop())

		found, err := repo.FindAdminByLogin(testContext(), "reviewer")
		require.NoError(t, err)
		assert.Equal(t, admin, found)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectQuery(regexp.QuoteMeta(findAdminByLogin)).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		repo := NewAdminRepository(newDBFromSQL(db), logger.Nop())

		_, err := repo.FindAdminByLogin(testContext(), "ghost")
		require.ErrorIs(t, err, ErrAdminNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
