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
)

// agencyService implements the AgencySvcFacade interface
type agencyService struct {
	BaseService
	agencyRepo portsrepo.AgencyRepository
}

// NewAgencyService creates a new agency service with the provided dependencies
func NewAgencyService(engine *policy.Engine, agencyRepo portsrepo.AgencyRepository) portssvc.AgencySvcFacade {
	return &agencyService{
		BaseService: BaseService{Policy: engine},
		agencyRepo:  agencyRepo,
	}
}

var _ portssvc.AgencySvcFacade = (*agencyService)(nil)

func (s *agencyService) CreateAgency(ctx context.Context, caller domain.Caller, req dto.CreateAgencyRequest) (*domain.Agency, error) {
	if err := s.Authorize(ctx, caller, policy.ActionCreateAgency, policy.Target{}); err != nil {
		return nil, err
	}

	now := time.Now()
	agency := domain.Agency{
		AgencyID: uuid.NewString(),
		Name:     req.Name,
		City:     req.City,
		Address:  req.Address,
		Phone:    req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.agencyRepo.SaveAgency(ctx, agency); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save agency", slog.String("name", req.Name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Agency created", slog.String("agency_id", agency.AgencyID))
	return &agency, nil
}

// GetAgencyByID returns the agency if the caller's read scope covers it.
// Out-of-scope agencies read as not found so their existence is not leaked.
func (s *agencyService) GetAgencyByID(ctx context.Context, caller domain.Caller, agencyID string) (*domain.Agency, error) {
	if !s.ReadFilter(caller).Matches(agencyID) {
		return nil, apperrors.ErrNotFound
	}
	agency, err := s.agencyRepo.FindAgencyByID(ctx, agencyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find agency", slog.String("agency_id", agencyID))
		}
		return nil, err
	}
	return agency, nil
}

func (s *agencyService) ListAgencies(ctx context.Context, caller domain.Caller) ([]domain.Agency, error) {
	agencies, err := s.agencyRepo.ListAgencies(ctx, s.ReadFilter(caller))
	if err != nil {
		s.LogError(ctx, err, "Failed to list agencies")
		return nil, err
	}
	if agencies == nil {
		return []domain.Agency{}, nil
	}
	return agencies, nil
}

func (s *agencyService) UpdateAgency(ctx context.Context, caller domain.Caller, agencyID string, req dto.UpdateAgencyRequest) (*domain.Agency, error) {
	if err := s.Authorize(ctx, caller, policy.ActionUpdateAgency, policy.Target{AgencyID: agencyID}); err != nil {
		return nil, err
	}

	agency, err := s.agencyRepo.FindAgencyByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		agency.Name = *req.Name
	}
	if req.City != nil {
		agency.City = *req.City
	}
	if req.Address != nil {
		agency.Address = *req.Address
	}
	if req.Phone != nil {
		agency.Phone = *req.Phone
	}
	agency.LastUpdatedAt = time.Now()
	agency.LastUpdatedBy = caller.UserID

	if err := s.agencyRepo.UpdateAgency(ctx, *agency); err != nil {
		s.LogError(ctx, err, "Failed to update agency", slog.String("agency_id", agencyID))
		return nil, err
	}

	s.LogInfo(ctx, "Agency updated", slog.String("agency_id", agencyID))
	return agency, nil
}

// DeleteAgency removes an agency. It refuses while dependent records exist;
// orphaning tenant data is never allowed.
func (s *agencyService) DeleteAgency(ctx context.Context, caller domain.Caller, agencyID string) error {
	if err := s.Authorize(ctx, caller, policy.ActionDeleteAgency, policy.Target{AgencyID: agencyID}); err != nil {
		return err
	}

	if _, err := s.agencyRepo.FindAgencyByID(ctx, agencyID); err != nil {
		return err
	}

	hasDependents, err := s.agencyRepo.HasDependentRecords(ctx, agencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check agency dependents", slog.String("agency_id", agencyID))
		return err
	}
	if hasDependents {
		return fmt.Errorf("agency still has dependent records: %w", apperrors.ErrConflict)
	}

	if err := s.agencyRepo.DeleteAgency(ctx, agencyID); err != nil {
		s.LogError(ctx, err, "Failed to delete agency", slog.String("agency_id", agencyID))
		return err
	}

	s.LogInfo(ctx, "Agency deleted", slog.String("agency_id", agencyID))
	return nil
}
