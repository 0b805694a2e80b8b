package dto

import (
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
)

// CreateAgencyRequest defines the data required to create an agency.
type CreateAgencyRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateAgencyRequest defines the data allowed for updating an agency.
type UpdateAgencyRequest struct {
	Name    *string `json:"name"`
	City    *string `json:"city"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// AgencyResponse is the public shape of an agency.
type AgencyResponse struct {
	AgencyID  string    `json:"agencyID"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListAgenciesResponse wraps the list of agencies.
type ListAgenciesResponse struct {
	Agencies []AgencyResponse `json:"agencies"`
}

// ToAgencyResponse converts a domain.Agency to its response DTO.
func ToAgencyResponse(agency *domain.Agency) AgencyResponse {
	return AgencyResponse{
		AgencyID:  agency.AgencyID,
		Name:      agency.Name,
		City:      agency.City,
		Address:   agency.Address,
		Phone:     agency.Phone,
		CreatedAt: agency.CreatedAt,
	}
}

// ToListAgenciesResponse converts a slice of domain.Agency to its response DTO.
func ToListAgenciesResponse(agencies []domain.Agency) ListAgenciesResponse {
	responses := make([]AgencyResponse, len(agencies))
	for i := range agencies {
		responses[i] = ToAgencyResponse(&agencies[i])
	}
	return ListAgenciesResponse{Agencies: responses}
}
