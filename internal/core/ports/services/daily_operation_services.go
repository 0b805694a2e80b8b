package services

import (
	"context"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/dto"
)

// DailyOperationSvcFacade defines the service catalog and the daily-operation
// lifecycle, including discount requests.
type DailyOperationSvcFacade interface {
	CreateService(ctx context.Context, caller domain.Caller, req dto.CreateServiceRequest) (*domain.ServiceOffering, error)
	ListServices(ctx context.Context, caller domain.Caller) ([]domain.ServiceOffering, error)

	// CreateDailyOperation validates pricing, files a discount request when
	// the discount amount is non-zero, and stores the operation as Pending.
	CreateDailyOperation(ctx context.Context, caller domain.Caller, req dto.CreateOperationRequest) (*domain.DailyOperation, error)
	GetDailyOperationByID(ctx context.Context, caller domain.Caller, operationID string) (*domain.DailyOperation, error)
	ListDailyOperations(ctx context.Context, caller domain.Caller, rng *domain.DateRange) ([]domain.DailyOperation, error)
	ApproveDailyOperation(ctx context.Context, caller domain.Caller, operationID string) (*domain.DailyOperation, error)
	RejectDailyOperation(ctx context.Context, caller domain.Caller, operationID string, reason string) (*domain.DailyOperation, error)
}
