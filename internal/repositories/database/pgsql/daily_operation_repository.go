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
	"github.com/shopspring/decimal"
)

type PgxServiceOfferingRepository struct {
	BaseRepository
}

func newPgxServiceOfferingRepository(db *pgxpool.Pool) portsrepo.ServiceOfferingRepository {
	return &PgxServiceOfferingRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ServiceOfferingRepository = (*PgxServiceOfferingRepository)(nil)

const serviceColumns = `service_id, agency_id, name, base_price, min_price, fixed_price, created_at, created_by, last_updated_at, last_updated_by`

func scanServiceOffering(row pgx.Row) (domain.ServiceOffering, error) {
	var s domain.ServiceOffering
	err := row.Scan(
		&s.ServiceID,
		&s.AgencyID,
		&s.Name,
		&s.BasePrice,
		&s.MinPrice,
		&s.FixedPrice,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

func (r *PgxServiceOfferingRepository) SaveService(ctx context.Context, svc domain.ServiceOffering) error {
	query := `
		INSERT INTO service_offerings (service_id, agency_id, name, base_price, min_price, fixed_price, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		svc.ServiceID,
		svc.AgencyID,
		svc.Name,
		svc.BasePrice,
		svc.MinPrice,
		svc.FixedPrice,
		svc.CreatedAt,
		svc.CreatedBy,
		svc.LastUpdatedAt,
		svc.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to save service offering: %w", err)
	}
	return nil
}

func (r *PgxServiceOfferingRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.ServiceOffering, error) {
	query := `SELECT ` + serviceColumns + ` FROM service_offerings WHERE service_id = $1;`
	svc, err := scanServiceOffering(r.Pool.QueryRow(ctx, query, serviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find service offering %s: %w", serviceID, err)
	}
	return &svc, nil
}

func (r *PgxServiceOfferingRepository) ListServices(ctx context.Context, filter policy.Filter) ([]domain.ServiceOffering, error) {
	query := `SELECT ` + serviceColumns + ` FROM service_offerings`
	args := []any{}
	if clause, clauseArgs := filter.SQLClause("agency_id", 1); clause != "" {
		query += ` WHERE ` + clause
		args = clauseArgs
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query service offerings: %w", err)
	}
	defer rows.Close()

	services := []domain.ServiceOffering{}
	for rows.Next() {
		svc, err := scanServiceOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service offering row: %w", err)
		}
		services = append(services, svc)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating service offering rows: %w", rows.Err())
	}
	return services, nil
}

type PgxDailyOperationRepository struct {
	BaseRepository
}

func newPgxDailyOperationRepository(db *pgxpool.Pool) portsrepo.DailyOperationRepository {
	return &PgxDailyOperationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.DailyOperationRepository = (*PgxDailyOperationRepository)(nil)

const operationColumns = `o.operation_id, o.agency_id, o.service_id, o.client_id, o.base_price, o.discount_amount, o.final_price, o.status, o.approved_by, o.approved_at, o.rejection_reason, o.created_at, o.created_by, o.last_updated_at, o.last_updated_by,
	d.request_id, d.original_price, d.discount_amount, d.discount_percentage, d.reason, d.requested_by, d.status`

// scanOperation reads one joined operation row, with the discount request
// columns nullable.
func scanOperation(row pgx.Row) (domain.DailyOperation, error) {
	var op domain.DailyOperation
	var rejectionReason *string
	var d domain.DiscountRequest
	var requestID, reason, requestedBy, status *string
	var originalPrice, discountAmount, discountPercentage decimal.NullDecimal
	err := row.Scan(
		&op.OperationID,
		&op.AgencyID,
		&op.ServiceID,
		&op.ClientID,
		&op.BasePrice,
		&op.DiscountAmount,
		&op.FinalPrice,
		&op.Status,
		&op.ApprovedBy,
		&op.ApprovedAt,
		&rejectionReason,
		&op.CreatedAt,
		&op.CreatedBy,
		&op.LastUpdatedAt,
		&op.LastUpdatedBy,
		&requestID,
		&originalPrice,
		&discountAmount,
		&discountPercentage,
		&reason,
		&requestedBy,
		&status,
	)
	if err != nil {
		return op, err
	}
	if rejectionReason != nil {
		op.RejectionReason = *rejectionReason
	}
	if requestID != nil {
		d.RequestID = *requestID
		d.OperationID = op.OperationID
		if originalPrice.Valid {
			d.OriginalPrice = originalPrice.Decimal
		}
		if discountAmount.Valid {
			d.DiscountAmount = discountAmount.Decimal
		}
		if discountPercentage.Valid {
			d.DiscountPercentage = discountPercentage.Decimal
		}
		if reason != nil {
			d.Reason = *reason
		}
		if requestedBy != nil {
			d.RequestedBy = *requestedBy
		}
		if status != nil {
			d.Status = domain.ApprovalStatus(*status)
		}
		op.Discount = &d
	}
	return op, nil
}

// SaveOperation writes the operation and its discount request (if any) in one
// transaction so the pair can never be persisted apart.
func (r *PgxDailyOperationRepository) SaveOperation(ctx context.Context, op domain.DailyOperation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO daily_operations (operation_id, agency_id, service_id, client_id, base_price, discount_amount, final_price, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`,
		op.OperationID,
		op.AgencyID,
		op.ServiceID,
		op.ClientID,
		op.BasePrice,
		op.DiscountAmount,
		op.FinalPrice,
		op.Status,
		op.CreatedAt,
		op.CreatedBy,
		op.LastUpdatedAt,
		op.LastUpdatedBy,
	)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to insert daily operation: %w", err)
	}

	if op.Discount != nil {
		_, err = tx.Exec(ctx, `
			INSERT INTO discount_requests (request_id, operation_id, original_price, discount_amount, discount_percentage, reason, requested_by, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
		`,
			op.Discount.RequestID,
			op.Discount.OperationID,
			op.Discount.OriginalPrice,
			op.Discount.DiscountAmount,
			op.Discount.DiscountPercentage,
			op.Discount.Reason,
			op.Discount.RequestedBy,
			op.Discount.Status,
		)
		if err != nil {
			if mapped := mapPgError(err); mapped != err {
				return mapped
			}
			return fmt.Errorf("failed to insert discount request: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

const operationJoin = `FROM daily_operations o LEFT JOIN discount_requests d ON d.operation_id = o.operation_id`

func (r *PgxDailyOperationRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.DailyOperation, error) {
	query := `SELECT ` + operationColumns + ` ` + operationJoin + ` WHERE o.operation_id = $1;`
	op, err := scanOperation(r.Pool.QueryRow(ctx, query, operationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find daily operation %s: %w", operationID, err)
	}
	return &op, nil
}

func (r *PgxDailyOperationRepository) ListOperations(ctx context.Context, filter policy.Filter, rng *domain.DateRange) ([]domain.DailyOperation, error) {
	query := `SELECT ` + operationColumns + ` ` + operationJoin + ` WHERE 1=1`
	args := []any{}
	if clause, clauseArgs := filter.SQLClause("o.agency_id", len(args)+1); clause != "" {
		query += ` AND ` + clause
		args = append(args, clauseArgs...)
	}
	if rng != nil {
		query += fmt.Sprintf(` AND o.created_at >= $%d AND o.created_at <= $%d`, len(args)+1, len(args)+2)
		args = append(args, rng.From, rng.To)
	}
	query += ` ORDER BY o.created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily operations: %w", err)
	}
	defer rows.Close()

	ops := []domain.DailyOperation{}
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily operation row: %w", err)
		}
		ops = append(ops, op)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating daily operation rows: %w", rows.Err())
	}
	return ops, nil
}

// TransitionOperationStatus moves a pending operation and its linked discount
// request to the terminal status in one transaction. The operation update is
// the compare-and-swap; the discount row follows only when the swap matched.
func (r *PgxDailyOperationRepository) TransitionOperationStatus(ctx context.Context, operationID string, to domain.ApprovalStatus, approverID string, at time.Time, reason string) (bool, error) {
	var reasonArg *string
	if reason != "" {
		reasonArg = &reason
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `
		UPDATE daily_operations
		SET status = $2, approved_by = $3, approved_at = $4, rejection_reason = $5, last_updated_at = $4, last_updated_by = $3
		WHERE operation_id = $1 AND status = $6;
	`, operationID, to, approverID, at, reasonArg, domain.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to transition daily operation %s: %w", operationID, err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx, `
		UPDATE discount_requests SET status = $2 WHERE operation_id = $1;
	`, operationID, to)
	if err != nil {
		return false, fmt.Errorf("failed to transition discount request for operation %s: %w", operationID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return true, nil
}
