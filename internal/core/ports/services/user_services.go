package services

import (
	"context"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/dto"
)

// UserSvcFacade defines operations for user administration and caller
// resolution.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, caller domain.Caller, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, caller domain.Caller) ([]domain.User, error)
	UpdateUser(ctx context.Context, caller domain.Caller, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	DeleteUser(ctx context.Context, caller domain.Caller, userID string) error

	// ResolveCaller derives the request identity from a user id. Used by the
	// auth middleware after token validation.
	ResolveCaller(ctx context.Context, userID string) (domain.Caller, error)

	// UpdateStoredRefreshToken persists the hash of a newly issued refresh
	// token; ClearRefreshToken revokes it.
	UpdateStoredRefreshToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}
