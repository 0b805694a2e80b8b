package repositories

import (
	"context"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
)

// AgencyRepository defines persistence operations for agencies.
type AgencyRepository interface {
	SaveAgency(ctx context.Context, agency domain.Agency) error
	FindAgencyByID(ctx context.Context, agencyID string) (*domain.Agency, error)
	// ListAgencies returns the agencies visible under the filter.
	ListAgencies(ctx context.Context, filter policy.Filter) ([]domain.Agency, error)
	UpdateAgency(ctx context.Context, agency domain.Agency) error
	// DeleteAgency removes an agency. It fails with ErrConflict while any
	// tenant-owned record still references it.
	DeleteAgency(ctx context.Context, agencyID string) error
	// HasDependentRecords reports whether any tenant-owned record references
	// the agency.
	HasDependentRecords(ctx context.Context, agencyID string) (bool, error)
}
