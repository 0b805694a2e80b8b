package dto

import (
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceRequest defines a new priced service offering.
type CreateServiceRequest struct {
	AgencyID   string          `json:"agencyID"`
	Name       string          `json:"name" binding:"required"`
	BasePrice  decimal.Decimal `json:"basePrice" binding:"required"`
	MinPrice   decimal.Decimal `json:"minPrice"`
	FixedPrice bool            `json:"fixedPrice"`
}

// ServiceResponse is the public shape of a service offering.
type ServiceResponse struct {
	ServiceID  string          `json:"serviceID"`
	AgencyID   string          `json:"agencyID"`
	Name       string          `json:"name"`
	BasePrice  decimal.Decimal `json:"basePrice"`
	MinPrice   decimal.Decimal `json:"minPrice"`
	FixedPrice bool            `json:"fixedPrice"`
}

// ListServicesResponse wraps the list of service offerings.
type ListServicesResponse struct {
	Services []ServiceResponse `json:"services"`
}

// CreateOperationRequest records a service rendered to a client. A non-zero
// DiscountAmount requires a DiscountReason and files a discount request.
type CreateOperationRequest struct {
	AgencyID       string          `json:"agencyID"`
	ServiceID      string          `json:"serviceID" binding:"required"`
	ClientID       string          `json:"clientID" binding:"required"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	DiscountReason string          `json:"discountReason"`
}

// DiscountResponse is the public shape of a discount request.
type DiscountResponse struct {
	RequestID          string                `json:"requestID"`
	OriginalPrice      decimal.Decimal       `json:"originalPrice"`
	DiscountAmount     decimal.Decimal       `json:"discountAmount"`
	DiscountPercentage decimal.Decimal       `json:"discountPercentage"`
	Reason             string                `json:"reason"`
	RequestedBy        string                `json:"requestedBy"`
	Status             domain.ApprovalStatus `json:"status"`
}

// OperationResponse is the public shape of a daily operation.
type OperationResponse struct {
	OperationID     string                `json:"operationID"`
	AgencyID        string                `json:"agencyID"`
	ServiceID       string                `json:"serviceID"`
	ClientID        string                `json:"clientID"`
	BasePrice       decimal.Decimal       `json:"basePrice"`
	DiscountAmount  decimal.Decimal       `json:"discountAmount"`
	FinalPrice      decimal.Decimal       `json:"finalPrice"`
	Status          domain.ApprovalStatus `json:"status"`
	ApprovedBy      *string               `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time            `json:"approvedAt,omitempty"`
	RejectionReason string                `json:"rejectionReason,omitempty"`
	Discount        *DiscountResponse     `json:"discount,omitempty"`
	CreatedBy       string                `json:"createdBy"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// ListOperationsResponse wraps the list of daily operations.
type ListOperationsResponse struct {
	Operations []OperationResponse `json:"operations"`
}

// ToServiceResponse converts a domain.ServiceOffering to its response DTO.
func ToServiceResponse(svc *domain.ServiceOffering) ServiceResponse {
	return ServiceResponse{
		ServiceID:  svc.ServiceID,
		AgencyID:   svc.AgencyID,
		Name:       svc.Name,
		BasePrice:  svc.BasePrice,
		MinPrice:   svc.MinPrice,
		FixedPrice: svc.FixedPrice,
	}
}

// ToListServicesResponse converts a slice of service offerings.
func ToListServicesResponse(services []domain.ServiceOffering) ListServicesResponse {
	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = ToServiceResponse(&services[i])
	}
	return ListServicesResponse{Services: responses}
}

// ToOperationResponse converts a domain.DailyOperation to its response DTO.
func ToOperationResponse(op *domain.DailyOperation) OperationResponse {
	resp := OperationResponse{
		OperationID:     op.OperationID,
		AgencyID:        op.AgencyID,
		ServiceID:       op.ServiceID,
		ClientID:        op.ClientID,
		BasePrice:       op.BasePrice,
		DiscountAmount:  op.DiscountAmount,
		FinalPrice:      op.FinalPrice,
		Status:          op.Status,
		ApprovedBy:      op.ApprovedBy,
		ApprovedAt:      op.ApprovedAt,
		RejectionReason: op.RejectionReason,
		CreatedBy:       op.CreatedBy,
		CreatedAt:       op.CreatedAt,
	}
	if op.Discount != nil {
		resp.Discount = &DiscountResponse{
			RequestID:          op.Discount.RequestID,
			OriginalPrice:      op.Discount.OriginalPrice,
			DiscountAmount:     op.Discount.DiscountAmount,
			DiscountPercentage: op.Discount.DiscountPercentage,
			Reason:             op.Discount.Reason,
			RequestedBy:        op.Discount.RequestedBy,
			Status:             op.Discount.Status,
		}
	}
	return resp
}

// ToListOperationsResponse converts a slice of daily operations.
func ToListOperationsResponse(ops []domain.DailyOperation) ListOperationsResponse {
	responses := make([]OperationResponse, len(ops))
	for i := range ops {
		responses[i] = ToOperationResponse(&ops[i])
	}
	return ListOperationsResponse{Operations: responses}
}
