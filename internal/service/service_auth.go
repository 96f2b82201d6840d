package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartchain/heartchain/internal/config"
	"github.com/heartchain/heartchain/internal/logger"
	"github.com/heartchain/heartchain/internal/store"
	"github.com/heartchain/heartchain/internal/utils"
	"github.com/heartchain/heartchain/models"
)

// authService authenticates reviewer accounts with argon2id password
// hashes and issues HS256 JWTs. A missing account and a wrong password are
// both reported as ErrWrongCredentials so the login endpoint does not leak
// which logins exist.
type authService struct {
	adminRepository store.AdminRepository

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	uuid *utils.UUIDGenerator

	logger *logger.Logger
}

func NewAuthService(adminRepository store.AdminRepository, cfg config.App, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")

	return &authService{
		adminRepository: adminRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		uuid:            utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

func (a *authService) Login(ctx context.Context, req models.AdminLoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.Login == "" || req.Password == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	admin, err := a.adminRepository.FindAdminByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			log.Warn().Str("login", req.Login).Msg("login attempt for unknown admin")
			return models.Token{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "authService.Login").Str("login", req.Login).Msg("error looking up admin")
		return models.Token{}, fmt.Errorf("error looking up admin: %w", err)
	}

	match, err := utils.VerifyPassword(admin.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Str("login", req.Login).Msg("error verifying password")
		return models.Token{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !match {
		log.Warn().Str("login", req.Login).Msg("wrong password")
		return models.Token{}, ErrWrongCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, admin.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies the signature and issuer. Every validation failure is
// normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) Bootstrap(ctx context.Context, login, password string) error {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		return nil
	}

	if _, err := a.adminRepository.FindAdminByLogin(ctx, login); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrAdminNotFound) {
		return fmt.Errorf("error looking up admin: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing bootstrap password: %w", err)
	}

	admin := models.Admin{
		ID:           a.uuid.Generate(),
		Login:        login,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if _, err = a.adminRepository.CreateAdmin(ctx, admin); err != nil {
		// Lost the race against a concurrent bootstrap, the account exists.
		if errors.Is(err, store.ErrAdminAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating bootstrap admin: %w", err)
	}
	log.Info().Str("login", login).Msg("bootstrap admin created")

	return nil
}
