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

type PgxAgencyRepository struct {
	BaseRepository
}

func newPgxAgencyRepository(db *pgxpool.Pool) portsrepo.AgencyRepository {
	return &PgxAgencyRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.AgencyRepository = (*PgxAgencyRepository)(nil)

const agencyColumns = `agency_id, name, city, address, phone, created_at, created_by, last_updated_at, last_updated_by`

func scanAgency(row pgx.Row) (domain.Agency, error) {
	var a domain.Agency
	err := row.Scan(
		&a.AgencyID,
		&a.Name,
		&a.City,
		&a.Address,
		&a.Phone,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

func (r *PgxAgencyRepository) SaveAgency(ctx context.Context, agency domain.Agency) error {
	query := `
		INSERT INTO agencies (agency_id, name, city, address, phone, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		agency.AgencyID,
		agency.Name,
		agency.City,
		agency.Address,
		agency.Phone,
		agency.CreatedAt,
		agency.CreatedBy,
		agency.LastUpdatedAt,
		agency.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to save agency: %w", err)
	}
	return nil
}

func (r *PgxAgencyRepository) FindAgencyByID(ctx context.Context, agencyID string) (*domain.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies WHERE agency_id = $1;`
	agency, err := scanAgency(r.Pool.QueryRow(ctx, query, agencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find agency %s: %w", agencyID, err)
	}
	return &agency, nil
}

func (r *PgxAgencyRepository) ListAgencies(ctx context.Context, filter policy.Filter) ([]domain.Agency, error) {
	query := `SELECT ` + agencyColumns + ` FROM agencies`
	args := []any{}
	if clause, clauseArgs := filter.SQLClause("agency_id", 1); clause != "" {
		query += ` WHERE ` + clause
		args = clauseArgs
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query agencies: %w", err)
	}
	defer rows.Close()

	agencies := []domain.Agency{}
	for rows.Next() {
		agency, err := scanAgency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agency row: %w", err)
		}
		agencies = append(agencies, agency)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating agency rows: %w", rows.Err())
	}
	return agencies, nil
}

func (r *PgxAgencyRepository) UpdateAgency(ctx context.Context, agency domain.Agency) error {
	query := `
		UPDATE agencies
		SET name = $2, city = $3, address = $4, phone = $5, last_updated_at = $6, last_updated_by = $7
		WHERE agency_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		agency.AgencyID,
		agency.Name,
		agency.City,
		agency.Address,
		agency.Phone,
		agency.LastUpdatedAt,
		agency.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update agency %s: %w", agency.AgencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAgencyRepository) DeleteAgency(ctx context.Context, agencyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM agencies WHERE agency_id = $1;`, agencyID)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to delete agency %s: %w", agencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// HasDependentRecords reports whether any tenant-owned record still
// references the agency.
func (r *PgxAgencyRepository) HasDependentRecords(ctx context.Context, agencyID string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM users WHERE agency_id = $1 AND deleted_at IS NULL)
		    OR EXISTS (SELECT 1 FROM clients WHERE agency_id = $1)
		    OR EXISTS (SELECT 1 FROM suppliers WHERE agency_id = $1)
		    OR EXISTS (SELECT 1 FROM bookings WHERE agency_id = $1)
		    OR EXISTS (SELECT 1 FROM invoices WHERE agency_id = $1)
		    OR EXISTS (SELECT 1 FROM daily_reports WHERE agency_id = $1)
		    OR EXISTS (SELECT 1 FROM daily_operations WHERE agency_id = $1);
	`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, agencyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check agency dependents: %w", err)
	}
	return exists, nil
}
