package repositories

import (
	"context"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListUsers returns users visible under the filter, optionally restricted
	// to the given roles (nil means every role).
	ListUsers(ctx context.Context, filter policy.Filter, roles []domain.Role) ([]domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	// MarkUserDeleted soft-deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedBy string, at time.Time) error
	// UpdateRefreshToken stores the hash and expiry of the user's current
	// refresh token. Empty hash with nil expiry clears it.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiry *time.Time) error
}
