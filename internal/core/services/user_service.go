package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portsrepo "github.com/2fiksen-ship-it/booking/internal/core/ports/repositories"
	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/2fiksen-ship-it/booking/internal/utils"
	"github.com/google/uuid"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo   portsrepo.UserRepository
	agencyRepo portsrepo.AgencyRepository
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(engine *policy.Engine, userRepo portsrepo.UserRepository, agencyRepo portsrepo.AgencyRepository) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Policy: engine},
		userRepo:    userRepo,
		agencyRepo:  agencyRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, caller domain.Caller, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, caller, policy.ActionCreateUser, policy.Target{AgencyID: req.AgencyID}); err != nil {
		return nil, err
	}

	if !req.Role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
	}

	// The home agency must exist; a user cannot be attached to a dangling
	// tenant.
	if _, err := s.agencyRepo.FindAgencyByID(ctx, req.AgencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("agency %s: %w", req.AgencyID, apperrors.ErrValidation)
		}
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		AgencyID:     req.AgencyID,
		PasswordHash: passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)),
		slog.String("agency_id", user.AgencyID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, caller domain.Caller) ([]domain.User, error) {
	filter := s.ReadFilter(caller)
	users, err := s.userRepo.ListUsers(ctx, filter, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, caller domain.Caller, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, caller, policy.ActionUpdateUser, policy.Target{UserID: userID}); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, fmt.Errorf("unknown role %q: %w", *req.Role, apperrors.ErrValidation)
		}
		user.Role = *req.Role
	}
	if req.AgencyID != nil {
		if _, err := s.agencyRepo.FindAgencyByID(ctx, *req.AgencyID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("agency %s: %w", *req.AgencyID, apperrors.ErrValidation)
			}
			return nil, err
		}
		user.AgencyID = *req.AgencyID
	}
	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = caller.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, caller domain.Caller, userID string) error {
	if err := s.Authorize(ctx, caller, policy.ActionDeleteUser, policy.Target{UserID: userID}); err != nil {
		return err
	}

	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, caller.UserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

// ResolveCaller derives the request identity from a user id. Deleted users
// resolve to ErrNotFound so their tokens stop working immediately.
func (s *userService) ResolveCaller(ctx context.Context, userID string) (domain.Caller, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return domain.Caller{}, err
	}
	if user.DeletedAt != nil {
		return domain.Caller{}, apperrors.ErrNotFound
	}
	return user.AsCaller(), nil
}

func (s *userService) UpdateStoredRefreshToken(ctx context.Context, userID string, tokenHash string, expiry time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, &expiry); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token hash", slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}
