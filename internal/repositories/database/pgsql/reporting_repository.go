package pgsql

import (
	"context"
	"fmt"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portsrepo "github.com/2fiksen-ship-it/booking/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

func newPgxReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// factWhere builds the shared WHERE tail for fact queries: an optional agency
// set restriction plus an optional half-open or closed creation-date window.
func factWhere(agencyIDs []string, rng domain.DateRange, column string) (string, []any) {
	where := ` WHERE 1=1`
	args := []any{}
	if len(agencyIDs) > 0 {
		where += fmt.Sprintf(` AND agency_id = ANY($%d)`, len(args)+1)
		args = append(args, agencyIDs)
	}
	if !rng.From.IsZero() {
		where += fmt.Sprintf(` AND %s >= $%d`, column, len(args)+1)
		args = append(args, rng.From)
	}
	if !rng.To.IsZero() {
		where += fmt.Sprintf(` AND %s <= $%d`, column, len(args)+1)
		args = append(args, rng.To)
	}
	return where, args
}

func (r *PgxReportingRepository) ListInvoiceFacts(ctx context.Context, agencyIDs []string, rng domain.DateRange) ([]domain.InvoiceFact, error) {
	where, args := factWhere(agencyIDs, rng, "created_at")
	query := `SELECT agency_id, invoice_no, amount_ttc, status, due_date, created_at FROM invoices` + where + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice facts: %w", err)
	}
	defer rows.Close()

	facts := []domain.InvoiceFact{}
	for rows.Next() {
		var f domain.InvoiceFact
		if err := rows.Scan(&f.AgencyID, &f.InvoiceNo, &f.AmountTTC, &f.Status, &f.DueDate, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invoice fact: %w", err)
		}
		facts = append(facts, f)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice facts: %w", rows.Err())
	}
	return facts, nil
}

func (r *PgxReportingRepository) ListBookingFacts(ctx context.Context, agencyIDs []string, rng domain.DateRange) ([]domain.BookingFact, error) {
	where, args := factWhere(agencyIDs, rng, "created_at")
	query := `SELECT agency_id, sell_price, created_at FROM bookings` + where + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query booking facts: %w", err)
	}
	defer rows.Close()

	facts := []domain.BookingFact{}
	for rows.Next() {
		var f domain.BookingFact
		if err := rows.Scan(&f.AgencyID, &f.SellPrice, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan booking fact: %w", err)
		}
		facts = append(facts, f)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating booking facts: %w", rows.Err())
	}
	return facts, nil
}

func (r *PgxReportingRepository) ListOperationFacts(ctx context.Context, agencyIDs []string, rng domain.DateRange) ([]domain.OperationFact, error) {
	where := ` WHERE 1=1`
	args := []any{}
	if len(agencyIDs) > 0 {
		where += fmt.Sprintf(` AND o.agency_id = ANY($%d)`, len(args)+1)
		args = append(args, agencyIDs)
	}
	if !rng.From.IsZero() {
		where += fmt.Sprintf(` AND o.created_at >= $%d`, len(args)+1)
		args = append(args, rng.From)
	}
	if !rng.To.IsZero() {
		where += fmt.Sprintf(` AND o.created_at <= $%d`, len(args)+1)
		args = append(args, rng.To)
	}
	query := `
		SELECT o.agency_id, s.name, o.final_price, o.discount_amount, o.created_at
		FROM daily_operations o
		JOIN service_offerings s ON s.service_id = o.service_id` + where + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation facts: %w", err)
	}
	defer rows.Close()

	facts := []domain.OperationFact{}
	for rows.Next() {
		var f domain.OperationFact
		if err := rows.Scan(&f.AgencyID, &f.ServiceName, &f.FinalPrice, &f.DiscountAmount, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan operation fact: %w", err)
		}
		facts = append(facts, f)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating operation facts: %w", rows.Err())
	}
	return facts, nil
}

// GetDashboardData assembles the landing-page snapshot under the filter:
// today's collected payments, open invoices, bookings of the last seven days,
// and the cashbox balance from each agency's latest approved daily report.
func (r *PgxReportingRepository) GetDashboardData(ctx context.Context, filter policy.Filter) (*domain.Dashboard, error) {
	dashboard := &domain.Dashboard{}

	scopeClause := func(column string, argPos int) (string, []any) {
		clause, args := filter.SQLClause(column, argPos)
		if clause == "" {
			return "", nil
		}
		return ` AND ` + clause, args
	}

	clause, args := scopeClause("agency_id", 1)
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE payment_date::date = CURRENT_DATE`+clause+`;`, args...).Scan(&dashboard.TodayIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to compute today's income: %w", err)
	}

	clause, args = scopeClause("agency_id", 1)
	err = r.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM invoices
		WHERE status <> 'PAID'`+clause+`;`, args...).Scan(&dashboard.UnpaidInvoices)
	if err != nil {
		return nil, fmt.Errorf("failed to count unpaid invoices: %w", err)
	}

	clause, args = scopeClause("agency_id", 1)
	err = r.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE created_at >= CURRENT_DATE - INTERVAL '7 days'`+clause+`;`, args...).Scan(&dashboard.WeekBookings)
	if err != nil {
		return nil, fmt.Errorf("failed to count week bookings: %w", err)
	}

	clause, args = scopeClause("agency_id", 1)
	err = r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(cashbox_balance), 0) FROM (
			SELECT DISTINCT ON (agency_id) cashbox_balance
			FROM daily_reports
			WHERE status = 'APPROVED'`+clause+`
			ORDER BY agency_id, business_date DESC
		) latest;`, args...).Scan(&dashboard.CashboxBalance)
	if err != nil {
		return nil, fmt.Errorf("failed to compute cashbox balance: %w", err)
	}

	return dashboard, nil
}
