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

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(db *pgxpool.Pool) portsrepo.SupplierRepository {
	return &PgxSupplierRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SupplierRepository = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, agency_id, name, type, contact, created_at, created_by, last_updated_at, last_updated_by`

func scanSupplier(row pgx.Row) (domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.SupplierID,
		&s.AgencyID,
		&s.Name,
		&s.Type,
		&s.Contact,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_id, agency_id, name, type, contact, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.AgencyID,
		supplier.Name,
		supplier.Type,
		supplier.Contact,
		supplier.CreatedAt,
		supplier.CreatedBy,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to save supplier: %w", err)
	}
	return nil
}

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`
	supplier, err := scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	return &supplier, nil
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, filter policy.Filter) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers`
	args := []any{}
	if clause, clauseArgs := filter.SQLClause("agency_id", 1); clause != "" {
		query += ` WHERE ` + clause
		args = clauseArgs
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", rows.Err())
	}
	return suppliers, nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, type = $3, contact = $4, last_updated_at = $5, last_updated_by = $6
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.Type,
		supplier.Contact,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update supplier %s: %w", supplier.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to delete supplier %s: %w", supplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
