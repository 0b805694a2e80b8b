package repositories

import (
	"context"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
)

// ServiceOfferingRepository defines persistence operations for the priced
// service catalog.
type ServiceOfferingRepository interface {
	SaveService(ctx context.Context, svc domain.ServiceOffering) error
	FindServiceByID(ctx context.Context, serviceID string) (*domain.ServiceOffering, error)
	ListServices(ctx context.Context, filter policy.Filter) ([]domain.ServiceOffering, error)
}

// DailyOperationRepository defines persistence operations for daily
// operations and their owned discount requests. An operation and its discount
// are always written in the same transaction.
type DailyOperationRepository interface {
	SaveOperation(ctx context.Context, op domain.DailyOperation) error
	FindOperationByID(ctx context.Context, operationID string) (*domain.DailyOperation, error)
	ListOperations(ctx context.Context, filter policy.Filter, rng *domain.DateRange) ([]domain.DailyOperation, error)
	// TransitionOperationStatus atomically moves a pending operation and its
	// linked discount request (if any) to the given terminal status. Returns
	// false without error when no pending row matched.
	TransitionOperationStatus(ctx context.Context, operationID string, to domain.ApprovalStatus, approverID string, at time.Time, reason string) (bool, error)
}
