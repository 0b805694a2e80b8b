package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portsrepo "github.com/2fiksen-ship-it/booking/internal/core/ports/repositories"
	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// dailyOperationService implements the DailyOperationSvcFacade interface
type dailyOperationService struct {
	BaseService
	serviceRepo   portsrepo.ServiceOfferingRepository
	operationRepo portsrepo.DailyOperationRepository
}

// NewDailyOperationService creates a new daily operation service with the provided dependencies
func NewDailyOperationService(engine *policy.Engine, serviceRepo portsrepo.ServiceOfferingRepository, operationRepo portsrepo.DailyOperationRepository) portssvc.DailyOperationSvcFacade {
	return &dailyOperationService{
		BaseService:   BaseService{Policy: engine},
		serviceRepo:   serviceRepo,
		operationRepo: operationRepo,
	}
}

var _ portssvc.DailyOperationSvcFacade = (*dailyOperationService)(nil)

func (s *dailyOperationService) CreateService(ctx context.Context, caller domain.Caller, req dto.CreateServiceRequest) (*domain.ServiceOffering, error) {
	agencyID := s.Policy.OwnAgencyFor(caller, req.AgencyID)
	if err := s.Authorize(ctx, caller, policy.ActionCreateService, policy.Target{AgencyID: agencyID}); err != nil {
		return nil, err
	}

	if req.BasePrice.IsNegative() || req.MinPrice.IsNegative() {
		return nil, fmt.Errorf("prices cannot be negative: %w", apperrors.ErrValidation)
	}
	if req.FixedPrice && req.MinPrice.GreaterThan(req.BasePrice) {
		return nil, fmt.Errorf("minimum price cannot exceed base price: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	svc := domain.ServiceOffering{
		ServiceID:  uuid.NewString(),
		AgencyID:   agencyID,
		Name:       req.Name,
		BasePrice:  req.BasePrice,
		MinPrice:   req.MinPrice,
		FixedPrice: req.FixedPrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.serviceRepo.SaveService(ctx, svc); err != nil {
		s.LogError(ctx, err, "Failed to save service offering", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Service offering created",
		slog.String("service_id", svc.ServiceID),
		slog.String("agency_id", agencyID))
	return &svc, nil
}

func (s *dailyOperationService) ListServices(ctx context.Context, caller domain.Caller) ([]domain.ServiceOffering, error) {
	services, err := s.serviceRepo.ListServices(ctx, s.ReadFilter(caller))
	if err != nil {
		s.LogError(ctx, err, "Failed to list service offerings")
		return nil, err
	}
	if services == nil {
		return []domain.ServiceOffering{}, nil
	}
	return services, nil
}

// CreateDailyOperation records a service rendered to a client. A non-zero
// discount must carry a reason, must not push the final price below the
// service's fixed-price floor, and files a discount request that lives and
// dies with the operation.
func (s *dailyOperationService) CreateDailyOperation(ctx context.Context, caller domain.Caller, req dto.CreateOperationRequest) (*domain.DailyOperation, error) {
	agencyID := s.Policy.OwnAgencyFor(caller, req.AgencyID)
	if err := s.Authorize(ctx, caller, policy.ActionCreateDailyOperation, policy.Target{AgencyID: agencyID}); err != nil {
		return nil, err
	}

	svc, err := s.serviceRepo.FindServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.AgencyID != agencyID {
		// A service from another agency reads as missing.
		return nil, apperrors.ErrNotFound
	}

	discount := req.DiscountAmount
	if discount.IsNegative() {
		return nil, fmt.Errorf("discount cannot be negative: %w", apperrors.ErrValidation)
	}
	if discount.GreaterThan(decimal.Zero) && req.DiscountReason == "" {
		return nil, fmt.Errorf("discount reason is required: %w", apperrors.ErrValidation)
	}

	finalPrice := svc.BasePrice.Sub(discount)
	if finalPrice.IsNegative() {
		return nil, fmt.Errorf("discount %s exceeds base price %s: %w", discount, svc.BasePrice, apperrors.ErrInvalidDiscount)
	}
	if svc.FixedPrice && finalPrice.LessThan(svc.MinPrice) {
		return nil, fmt.Errorf("final price %s is below minimum %s: %w", finalPrice, svc.MinPrice, apperrors.ErrInvalidDiscount)
	}

	now := time.Now()
	op := domain.DailyOperation{
		OperationID:    uuid.NewString(),
		AgencyID:       agencyID,
		ServiceID:      svc.ServiceID,
		ClientID:       req.ClientID,
		BasePrice:      svc.BasePrice,
		DiscountAmount: discount,
		FinalPrice:     finalPrice,
		Status:         domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if discount.GreaterThan(decimal.Zero) {
		op.Discount = &domain.DiscountRequest{
			RequestID:          uuid.NewString(),
			OperationID:        op.OperationID,
			OriginalPrice:      svc.BasePrice,
			DiscountAmount:     discount,
			DiscountPercentage: discount.Div(svc.BasePrice).Mul(oneHundred).Round(2),
			Reason:             req.DiscountReason,
			RequestedBy:        caller.UserID,
			Status:             domain.StatusPending,
		}
	}

	if err := s.operationRepo.SaveOperation(ctx, op); err != nil {
		s.LogError(ctx, err, "Failed to save daily operation",
			slog.String("agency_id", agencyID),
			slog.String("service_id", svc.ServiceID))
		return nil, err
	}

	s.LogInfo(ctx, "Daily operation created",
		slog.String("operation_id", op.OperationID),
		slog.String("agency_id", agencyID),
		slog.Bool("has_discount", op.Discount != nil))
	return &op, nil
}

func (s *dailyOperationService) GetDailyOperationByID(ctx context.Context, caller domain.Caller, operationID string) (*domain.DailyOperation, error) {
	op, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find daily operation", slog.String("operation_id", operationID))
		}
		return nil, err
	}
	if !s.ReadFilter(caller).Matches(op.AgencyID) {
		return nil, apperrors.ErrNotFound
	}
	return op, nil
}

func (s *dailyOperationService) ListDailyOperations(ctx context.Context, caller domain.Caller, rng *domain.DateRange) ([]domain.DailyOperation, error) {
	ops, err := s.operationRepo.ListOperations(ctx, s.ReadFilter(caller), rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list daily operations")
		return nil, err
	}
	if ops == nil {
		return []domain.DailyOperation{}, nil
	}
	return ops, nil
}

func (s *dailyOperationService) ApproveDailyOperation(ctx context.Context, caller domain.Caller, operationID string) (*domain.DailyOperation, error) {
	return s.review(ctx, caller, operationID, policy.ActionApproveDailyOperation, domain.StatusApproved, "")
}

func (s *dailyOperationService) RejectDailyOperation(ctx context.Context, caller domain.Caller, operationID string, reason string) (*domain.DailyOperation, error) {
	if reason == "" {
		return nil, fmt.Errorf("rejection reason is required: %w", apperrors.ErrValidation)
	}
	return s.review(ctx, caller, operationID, policy.ActionRejectDailyOperation, domain.StatusRejected, reason)
}

// review moves a pending operation and its linked discount request to a
// terminal status in one compare-and-swap transition.
func (s *dailyOperationService) review(ctx context.Context, caller domain.Caller, operationID string, action policy.Action, to domain.ApprovalStatus, reason string) (*domain.DailyOperation, error) {
	op, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		return nil, err
	}

	if err := s.Authorize(ctx, caller, action, policy.Target{AgencyID: op.AgencyID}); err != nil {
		return nil, err
	}

	if op.Status.IsTerminal() {
		return nil, fmt.Errorf("operation already %s: %w", op.Status, apperrors.ErrConflict)
	}

	matched, err := s.operationRepo.TransitionOperationStatus(ctx, operationID, to, caller.UserID, time.Now(), reason)
	if err != nil {
		s.LogError(ctx, err, "Failed to transition daily operation status",
			slog.String("operation_id", operationID),
			slog.String("to", string(to)))
		return nil, err
	}
	if !matched {
		return nil, fmt.Errorf("operation is no longer pending: %w", apperrors.ErrConflict)
	}

	updated, err := s.operationRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Daily operation reviewed",
		slog.String("operation_id", operationID),
		slog.String("status", string(to)),
		slog.String("reviewer_id", caller.UserID))
	return updated, nil
}
