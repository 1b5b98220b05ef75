package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/adminpro/internal/core/domain"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/platform/config"
	"github.com/SscSPs/adminpro/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := s.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.ID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("target_user_id", user.ID))
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
