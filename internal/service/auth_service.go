package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cadetnet/dutylog-api/internal/observability"
	"github.com/cadetnet/dutylog-api/internal/repository"
)

// AuthService answers admin allow-list checks for verified email addresses.
type AuthService interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type authService struct {
	repo   repository.AdminRepository
	logger zerolog.Logger
}

// NewAuthService constructs the admin authorization service.
func NewAuthService(repo repository.AdminRepository, logger zerolog.Logger) AuthService {
	return &authService{
		repo:   repo,
		logger: logger.With().Str("component", "auth_service").Logger(),
	}
}

// IsAdmin re-raises store failures instead of defaulting to false: a caller
// cannot tell "legitimately not an admin" from "could not verify" otherwise.
func (s *authService) IsAdmin(ctx context.Context, email string) (bool, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		observability.AdminChecks().WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("admin allow-list check failed")
		return false, err
	}

	if exists {
		observability.AdminChecks().WithLabelValues("admin").Inc()
	} else {
		observability.AdminChecks().WithLabelValues("not_admin").Inc()
	}

	return exists, nil
}
