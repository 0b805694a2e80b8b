package services

import (
	"context"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/dto"
)

// DailyReportSvcFacade defines the submission and review lifecycle of daily
// reports.
type DailyReportSvcFacade interface {
	// SubmitDailyReport creates the report for (agency, business date), or
	// updates the existing pending one. The bool result is true when an
	// existing report was updated.
	SubmitDailyReport(ctx context.Context, caller domain.Caller, req dto.SubmitDailyReportRequest) (*domain.DailyReport, bool, error)
	GetDailyReportByID(ctx context.Context, caller domain.Caller, reportID string) (*domain.DailyReport, error)
	ListDailyReports(ctx context.Context, caller domain.Caller, rng *domain.DateRange) ([]domain.DailyReport, error)
	ApproveDailyReport(ctx context.Context, caller domain.Caller, reportID string) (*domain.DailyReport, error)
	RejectDailyReport(ctx context.Context, caller domain.Caller, reportID string, reason string) (*domain.DailyReport, error)
}
