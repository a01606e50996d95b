package service

import (
	"context"
	"fmt"
	"time"

	"tx-composer/internal/core/ports"
	"tx-composer/pkg/apperror"

	"github.com/rs/zerolog"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	operatorRepo ports.OperatorRepository
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	log          zerolog.Logger
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(
	operatorRepo ports.OperatorRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		operatorRepo: operatorRepo,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		log:          log,
	}
}

// Login validates operator credentials and returns a JWT whose subject is
// the operator username.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	op, err := s.operatorRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, apperror.ErrDatabaseError(fmt.Errorf("find operator: %w", err))
	}
	if op == nil {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	valid, err := s.hashSvc.Verify(password, op.PasswordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !valid {
		s.log.Warn().Str("username", username).Msg("operator login failed")
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	if !op.IsActive() {
		return "", time.Time{}, apperror.ErrOperatorDisabled()
	}

	token, expiry, err := s.tokenSvc.Generate(op.Username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().Int64("operator_id", op.ID).Str("username", op.Username).Msg("operator logged in")
	return token, expiry, nil
}
