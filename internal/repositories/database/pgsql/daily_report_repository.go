package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portsrepo "github.com/2fiksen-ship-it/booking/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDailyReportRepository struct {
	BaseRepository
}

func newPgxDailyReportRepository(db *pgxpool.Pool) portsrepo.DailyReportRepository {
	return &PgxDailyReportRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DailyReportRepository = (*PgxDailyReportRepository)(nil)

const dailyReportColumns = `report_id, agency_id, business_date, total_income, total_expenses, cashbox_balance, transactions_count, notes, status, approved_by, approved_at, rejection_reason, created_at, created_by, last_updated_at, last_updated_by`

func scanDailyReport(row pgx.Row) (domain.DailyReport, error) {
	var rep domain.DailyReport
	var rejectionReason *string
	err := row.Scan(
		&rep.ReportID,
		&rep.AgencyID,
		&rep.BusinessDate,
		&rep.TotalIncome,
		&rep.TotalExpenses,
		&rep.CashboxBalance,
		&rep.TransactionsCount,
		&rep.Notes,
		&rep.Status,
		&rep.ApprovedBy,
		&rep.ApprovedAt,
		&rejectionReason,
		&rep.CreatedAt,
		&rep.CreatedBy,
		&rep.LastUpdatedAt,
		&rep.LastUpdatedBy,
	)
	if rejectionReason != nil {
		rep.RejectionReason = *rejectionReason
	}
	return rep, err
}

// UpsertPendingReport enforces the one-report-per-day rule in a single
// atomic statement: a missing row is inserted, a pending row is overwritten
// by the last writer, and a terminal row makes the submission fail with
// ErrConflict. Concurrent first submissions for the same day therefore
// resolve to an update, never a duplicate-key error.
func (r *PgxDailyReportRepository) UpsertPendingReport(ctx context.Context, report domain.DailyReport) (*domain.DailyReport, bool, error) {
	var reportID string
	var wasUpdated bool
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO daily_reports (report_id, agency_id, business_date, total_income, total_expenses, cashbox_balance, transactions_count, notes, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (agency_id, business_date) DO UPDATE
		SET total_income = EXCLUDED.total_income,
		    total_expenses = EXCLUDED.total_expenses,
		    cashbox_balance = EXCLUDED.cashbox_balance,
		    transactions_count = EXCLUDED.transactions_count,
		    notes = EXCLUDED.notes,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by
		WHERE daily_reports.status = $14
		RETURNING report_id, (xmax <> 0);
	`,
		report.ReportID,
		report.AgencyID,
		report.BusinessDate,
		report.TotalIncome,
		report.TotalExpenses,
		report.CashboxBalance,
		report.TransactionsCount,
		report.Notes,
		report.Status,
		report.CreatedAt,
		report.CreatedBy,
		report.LastUpdatedAt,
		report.LastUpdatedBy,
		domain.StatusPending,
	).Scan(&reportID, &wasUpdated)

	// No row returned means the conflicting report is no longer pending.
	if errors.Is(err, pgx.ErrNoRows) {
		var existingStatus domain.ApprovalStatus
		ferr := r.Pool.QueryRow(ctx, `
			SELECT status FROM daily_reports
			WHERE agency_id = $1 AND business_date = $2;
		`, report.AgencyID, report.BusinessDate).Scan(&existingStatus)
		if ferr != nil {
			return nil, false, fmt.Errorf("failed to look up conflicting daily report: %w", ferr)
		}
		return nil, false, fmt.Errorf("report for this day is already %s: %w", existingStatus, apperrors.ErrConflict)
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert daily report: %w", err)
	}

	if !wasUpdated {
		return &report, false, nil
	}
	updated, err := r.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, false, err
	}
	return updated, true, nil
}

func (r *PgxDailyReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.DailyReport, error) {
	query := `SELECT ` + dailyReportColumns + ` FROM daily_reports WHERE report_id = $1;`
	report, err := scanDailyReport(r.Pool.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find daily report %s: %w", reportID, err)
	}
	return &report, nil
}

func (r *PgxDailyReportRepository) ListReports(ctx context.Context, filter policy.Filter, rng *domain.DateRange) ([]domain.DailyReport, error) {
	query := `SELECT ` + dailyReportColumns + ` FROM daily_reports WHERE 1=1`
	args := []any{}
	if clause, clauseArgs := filter.SQLClause("agency_id", len(args)+1); clause != "" {
		query += ` AND ` + clause
		args = append(args, clauseArgs...)
	}
	if rng != nil {
		query += fmt.Sprintf(` AND business_date >= $%d AND business_date <= $%d`, len(args)+1, len(args)+2)
		args = append(args, rng.From, rng.To)
	}
	query += ` ORDER BY business_date DESC, agency_id;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily reports: %w", err)
	}
	defer rows.Close()

	reports := []domain.DailyReport{}
	for rows.Next() {
		report, err := scanDailyReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily report row: %w", err)
		}
		reports = append(reports, report)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating daily report rows: %w", rows.Err())
	}
	return reports, nil
}

// TransitionReportStatus is a compare-and-swap on the pending status: only a
// row still pending is moved, so concurrent reviewers cannot both win.
func (r *PgxDailyReportRepository) TransitionReportStatus(ctx context.Context, reportID string, to domain.ApprovalStatus, approverID string, at time.Time, reason string) (bool, error) {
	var reasonArg *string
	if reason != "" {
		reasonArg = &reason
	}
	query := `
		UPDATE daily_reports
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = $5, last_updated_at = $4, last_updated_by = $3
		WHERE report_id = $1 AND status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query, reportID, to, approverID, at, reasonArg, domain.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to transition daily report %s: %w", reportID, err)
	}
	return tag.RowsAffected() == 1, nil
}
