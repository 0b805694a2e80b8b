package services

import (
	"context"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
)

// TokenSvcFacade defines access- and refresh-token handling.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAndParseRefreshToken checks a presented refresh token against
	// the stored hash and returns the owning user.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthHandlerSvcFacade defines the Google sign-in flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GetLoginURL returns the Google consent-screen URL for the given state.
	GetLoginURL(state string) string
	// HandleCallback exchanges the authorization code and returns the
	// verified email and display name of the Google account.
	HandleCallback(ctx context.Context, code string) (email string, name string, err error)
}
