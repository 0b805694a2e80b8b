package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError maps the sentinel errors from the service layer onto HTTP
// statuses. Unexpected errors become an opaque 500 with the fallback message
// so internals never leak to clients.
func respondWithError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidDiscount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// callerFromContext fetches the resolved caller or aborts with 401.
func callerFromContext(c *gin.Context) (domain.Caller, bool) {
	caller, ok := middleware.GetCallerFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Caller not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return caller, ok
}

// parseDateRangeQuery reads optional from/to (YYYY-MM-DD) query parameters.
// The returned range is nil when neither is supplied; the To bound is pushed
// to the end of its day so the interval stays inclusive.
func parseDateRangeQuery(c *gin.Context) (*domain.DateRange, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" && toStr == "" {
		return nil, nil
	}

	rng := &domain.DateRange{}
	if fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, errors.Join(apperrors.ErrValidation, errors.New("from must be YYYY-MM-DD"))
		}
		rng.From = from
	}
	if toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, errors.Join(apperrors.ErrValidation, errors.New("to must be YYYY-MM-DD"))
		}
		rng.To = to.Add(24*time.Hour - time.Nanosecond)
	} else {
		rng.To = time.Now()
	}
	return rng, nil
}
