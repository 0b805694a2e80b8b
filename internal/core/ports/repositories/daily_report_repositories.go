package repositories

import (
	"context"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
)

// DailyReportRepository defines persistence operations for daily reports.
type DailyReportRepository interface {
	// UpsertPendingReport inserts the report, or updates the existing report
	// for the same (agency, business date) if that report is still pending.
	// The bool result is true when an existing record was updated. If the
	// existing record is terminal the call fails with ErrConflict.
	UpsertPendingReport(ctx context.Context, report domain.DailyReport) (*domain.DailyReport, bool, error)
	FindReportByID(ctx context.Context, reportID string) (*domain.DailyReport, error)
	ListReports(ctx context.Context, filter policy.Filter, rng *domain.DateRange) ([]domain.DailyReport, error)
	// TransitionReportStatus atomically moves a pending report to the given
	// terminal status (compare-and-swap on status). It returns false without
	// error when no pending row matched, so the caller can distinguish a
	// missing record from an already-terminal one.
	TransitionReportStatus(ctx context.Context, reportID string, to domain.ApprovalStatus, approverID string, at time.Time, reason string) (bool, error)
}
