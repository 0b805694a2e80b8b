package middleware

import (
	"context"
	"log/slog"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for request-context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	callerKey    = contextKey("caller")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard
// context, falling back to the default logger.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetUserIDFromContext retrieves the authenticated user id from the request
// context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID, true
	}
	return "", false
}

// GetCallerFromContext retrieves the resolved caller identity (id, role, home
// agency) set by the auth middleware.
func GetCallerFromContext(c *gin.Context) (domain.Caller, bool) {
	if caller, ok := c.Request.Context().Value(callerKey).(domain.Caller); ok {
		return caller, true
	}
	return domain.Caller{}, false
}
