package services

import (
	"context"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
)

// AggregatorSvcFacade defines the cross-agency report rollups. agencyIDs is
// the caller-requested agency set (nil means every agency the caller may
// see); the effective set is always the intersection with the caller's read
// scope.
type AggregatorSvcFacade interface {
	SalesReport(ctx context.Context, caller domain.Caller, rng domain.DateRange, agencyIDs []string, grouping domain.SalesGrouping, grouped bool) (*domain.AggregateReport, error)
	AgingReport(ctx context.Context, caller domain.Caller, asOf time.Time, agencyIDs []string, grouped bool) (*domain.AggregateReport, error)
	SummaryReport(ctx context.Context, caller domain.Caller, rng domain.DateRange, agencyIDs []string, grouped bool) (*domain.AggregateReport, error)
}
