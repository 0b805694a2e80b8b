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
	"github.com/google/uuid"
)

const businessDateLayout = "2006-01-02"

// dailyReportService implements the DailyReportSvcFacade interface
type dailyReportService struct {
	BaseService
	reportRepo portsrepo.DailyReportRepository
}

// NewDailyReportService creates a new daily report service with the provided dependencies
func NewDailyReportService(engine *policy.Engine, reportRepo portsrepo.DailyReportRepository) portssvc.DailyReportSvcFacade {
	return &dailyReportService{
		BaseService: BaseService{Policy: engine},
		reportRepo:  reportRepo,
	}
}

var _ portssvc.DailyReportSvcFacade = (*dailyReportService)(nil)

// SubmitDailyReport stores the end-of-day report for (agency, business date).
// There is at most one per day: re-submission while the existing report is
// still pending overwrites it, and the bool result reports that an update
// happened. Submission against a terminal report fails with ErrConflict.
func (s *dailyReportService) SubmitDailyReport(ctx context.Context, caller domain.Caller, req dto.SubmitDailyReportRequest) (*domain.DailyReport, bool, error) {
	agencyID := s.Policy.OwnAgencyFor(caller, req.AgencyID)
	if err := s.Authorize(ctx, caller, policy.ActionCreateDailyReport, policy.Target{AgencyID: agencyID}); err != nil {
		return nil, false, err
	}

	businessDate, err := time.Parse(businessDateLayout, req.BusinessDate)
	if err != nil {
		return nil, false, fmt.Errorf("businessDate must be YYYY-MM-DD: %w", apperrors.ErrValidation)
	}

	if req.TotalIncome.IsNegative() || req.TotalExpenses.IsNegative() {
		return nil, false, fmt.Errorf("income and expenses cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	report := domain.DailyReport{
		ReportID:          uuid.NewString(),
		AgencyID:          agencyID,
		BusinessDate:      businessDate,
		TotalIncome:       req.TotalIncome,
		TotalExpenses:     req.TotalExpenses,
		CashboxBalance:    req.CashboxBalance,
		TransactionsCount: req.TransactionsCount,
		Notes:             req.Notes,
		Status:            domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	saved, wasUpdated, err := s.reportRepo.UpsertPendingReport(ctx, report)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to submit daily report",
				slog.String("agency_id", agencyID),
				slog.String("business_date", req.BusinessDate))
		}
		return nil, false, err
	}

	s.LogInfo(ctx, "Daily report submitted",
		slog.String("report_id", saved.ReportID),
		slog.String("agency_id", agencyID),
		slog.Bool("was_updated", wasUpdated))
	return saved, wasUpdated, nil
}

func (s *dailyReportService) GetDailyReportByID(ctx context.Context, caller domain.Caller, reportID string) (*domain.DailyReport, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find daily report", slog.String("report_id", reportID))
		}
		return nil, err
	}
	if !s.ReadFilter(caller).Matches(report.AgencyID) {
		return nil, apperrors.ErrNotFound
	}
	return report, nil
}

func (s *dailyReportService) ListDailyReports(ctx context.Context, caller domain.Caller, rng *domain.DateRange) ([]domain.DailyReport, error) {
	reports, err := s.reportRepo.ListReports(ctx, s.ReadFilter(caller), rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list daily reports")
		return nil, err
	}
	if reports == nil {
		return []domain.DailyReport{}, nil
	}
	return reports, nil
}

func (s *dailyReportService) ApproveDailyReport(ctx context.Context, caller domain.Caller, reportID string) (*domain.DailyReport, error) {
	return s.review(ctx, caller, reportID, policy.ActionApproveDailyReport, domain.StatusApproved, "")
}

func (s *dailyReportService) RejectDailyReport(ctx context.Context, caller domain.Caller, reportID string, reason string) (*domain.DailyReport, error) {
	if reason == "" {
		return nil, fmt.Errorf("rejection reason is required: %w", apperrors.ErrValidation)
	}
	return s.review(ctx, caller, reportID, policy.ActionRejectDailyReport, domain.StatusRejected, reason)
}

// review runs the shared approve/reject path. The status move is a
// compare-and-swap on the pending status, so two concurrent reviewers cannot
// both win; the loser sees ErrConflict.
func (s *dailyReportService) review(ctx context.Context, caller domain.Caller, reportID string, action policy.Action, to domain.ApprovalStatus, reason string) (*domain.DailyReport, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if err := s.Authorize(ctx, caller, action, policy.Target{AgencyID: report.AgencyID}); err != nil {
		return nil, err
	}

	if report.Status.IsTerminal() {
		return nil, fmt.Errorf("report already %s: %w", report.Status, apperrors.ErrConflict)
	}

	matched, err := s.reportRepo.TransitionReportStatus(ctx, reportID, to, caller.UserID, time.Now(), reason)
	if err != nil {
		s.LogError(ctx, err, "Failed to transition daily report status",
			slog.String("report_id", reportID),
			slog.String("to", string(to)))
		return nil, err
	}
	if !matched {
		// Another reviewer got there first between our read and the swap.
		return nil, fmt.Errorf("report is no longer pending: %w", apperrors.ErrConflict)
	}

	updated, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Daily report reviewed",
		slog.String("report_id", reportID),
		slog.String("status", string(to)),
		slog.String("reviewer_id", caller.UserID))
	return updated, nil
}
