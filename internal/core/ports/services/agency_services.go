package services

import (
	"context"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/dto"
)

// AgencySvcFacade defines operations for tenant administration.
type AgencySvcFacade interface {
	CreateAgency(ctx context.Context, caller domain.Caller, req dto.CreateAgencyRequest) (*domain.Agency, error)
	GetAgencyByID(ctx context.Context, caller domain.Caller, agencyID string) (*domain.Agency, error)
	ListAgencies(ctx context.Context, caller domain.Caller) ([]domain.Agency, error)
	UpdateAgency(ctx context.Context, caller domain.Caller, agencyID string, req dto.UpdateAgencyRequest) (*domain.Agency, error)
	DeleteAgency(ctx context.Context, caller domain.Caller, agencyID string) error
}
