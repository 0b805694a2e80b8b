package pgsql

import (
	"context"
	"fmt"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portsrepo "github.com/2fiksen-ship-it/booking/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBookingRepository struct {
	BaseRepository
}

func newPgxBookingRepository(db *pgxpool.Pool) portsrepo.BookingRepository {
	return &PgxBookingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.BookingRepository = (*PgxBookingRepository)(nil)

const bookingColumns = `booking_id, agency_id, ref, client_id, supplier_id, type, cost, sell_price, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by`

func scanBooking(row pgx.Row) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.BookingID,
		&b.AgencyID,
		&b.Ref,
		&b.ClientID,
		&b.SupplierID,
		&b.Type,
		&b.Cost,
		&b.SellPrice,
		&b.StartDate,
		&b.EndDate,
		&b.CreatedAt,
		&b.CreatedBy,
		&b.LastUpdatedAt,
		&b.LastUpdatedBy,
	)
	return b, err
}

func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	query := `
		INSERT INTO bookings (booking_id, agency_id, ref, client_id, supplier_id, type, cost, sell_price, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		booking.BookingID,
		booking.AgencyID,
		booking.Ref,
		booking.ClientID,
		booking.SupplierID,
		booking.Type,
		booking.Cost,
		booking.SellPrice,
		booking.StartDate,
		booking.EndDate,
		booking.CreatedAt,
		booking.CreatedBy,
		booking.LastUpdatedAt,
		booking.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

func (r *PgxBookingRepository) ListBookings(ctx context.Context, filter policy.Filter) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []any{}
	if clause, clauseArgs := filter.SQLClause("agency_id", 1); clause != "" {
		query += ` WHERE ` + clause
		args = clauseArgs
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", rows.Err())
	}
	return bookings, nil
}
