package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portsrepo "github.com/2fiksen-ship-it/booking/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, agency_id, invoice_no, client_id, amount_ht, tva_rate, amount_ttc, status, due_date, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.AgencyID,
		&inv.InvoiceNo,
		&inv.ClientID,
		&inv.AmountHT,
		&inv.TVARate,
		&inv.AmountTTC,
		&inv.Status,
		&inv.DueDate,
		&inv.CreatedAt,
		&inv.CreatedBy,
		&inv.LastUpdatedAt,
		&inv.LastUpdatedBy,
	)
	return inv, err
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_id, agency_id, invoice_no, client_id, amount_ht, tva_rate, amount_ttc, status, due_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.AgencyID,
		invoice.InvoiceNo,
		invoice.ClientID,
		invoice.AmountHT,
		invoice.TVARate,
		invoice.AmountTTC,
		invoice.Status,
		invoice.DueDate,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	invoice, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return &invoice, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter policy.Filter) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	args := []any{}
	if clause, clauseArgs := filter.SQLClause("agency_id", 1); clause != "" {
		query += ` WHERE ` + clause
		args = clauseArgs
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, invoice)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) CountInvoicesByAgency(ctx context.Context, agencyID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE agency_id = $1;`, agencyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count invoices for agency %s: %w", agencyID, err)
	}
	return count, nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE invoices SET status = $2, last_updated_at = NOW() WHERE invoice_id = $1;`, invoiceID, status)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s status: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
