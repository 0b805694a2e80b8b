package repositories

import (
	"context"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
)

// ReportingRepository defines read operations backing the cross-agency report
// aggregator. agencyIDs is the effective agency set after the policy filter
// has been intersected with the caller's request; nil or empty means every
// agency.
type ReportingRepository interface {
	ListInvoiceFacts(ctx context.Context, agencyIDs []string, rng domain.DateRange) ([]domain.InvoiceFact, error)
	ListBookingFacts(ctx context.Context, agencyIDs []string, rng domain.DateRange) ([]domain.BookingFact, error)
	ListOperationFacts(ctx context.Context, agencyIDs []string, rng domain.DateRange) ([]domain.OperationFact, error)
	// GetDashboardData assembles the landing-page snapshot under the filter.
	GetDashboardData(ctx context.Context, filter policy.Filter) (*domain.Dashboard, error)
}
