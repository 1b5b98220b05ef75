package services

import (
	"context"
	"time"

	"github.com/SscSPs/adminpro/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a signed access token for user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
