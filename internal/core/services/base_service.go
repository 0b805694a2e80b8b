package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	"github.com/2fiksen-ship-it/booking/internal/middleware"
)

// BaseService provides common functionality for all services: the
// request-scoped logger and the policy engine chokepoint.
type BaseService struct {
	Policy *policy.Engine
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Authorize consults the policy engine and converts a denial into
// ErrForbidden. All permission checks in the service layer go through here so
// no service carries its own role comparison.
func (s *BaseService) Authorize(ctx context.Context, caller domain.Caller, action policy.Action, target policy.Target) error {
	decision := s.Policy.Authorize(caller, action, target)
	if !decision.Allowed {
		s.LogDebug(ctx, "Action denied by policy",
			slog.String("user_id", caller.UserID),
			slog.String("role", string(caller.Role)),
			slog.String("action", string(action)),
			slog.String("reason", decision.Reason))
		return fmt.Errorf("%s: %w", decision.Reason, apperrors.ErrForbidden)
	}
	return nil
}

// ReadFilter returns the caller's tenant-visibility filter.
func (s *BaseService) ReadFilter(caller domain.Caller) policy.Filter {
	return s.Policy.ReadFilter(caller)
}
