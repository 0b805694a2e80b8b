package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOffering is a priced service an agency sells (umrah package, visa
// processing, ...). FixedPrice offerings declare a MinPrice floor that a
// discounted operation may never undercut.
type ServiceOffering struct {
	ServiceID  string          `json:"serviceID"` // Primary key (UUID)
	AgencyID   string          `json:"agencyID"`
	Name       string          `json:"name"`
	BasePrice  decimal.Decimal `json:"basePrice"`
	MinPrice   decimal.Decimal `json:"minPrice"`
	FixedPrice bool            `json:"fixedPrice"` // false means freely priced, no floor
	AuditFields
}

// DailyOperation records one service rendered to a client. The operation owns
// its optional DiscountRequest so the two can never be mutated apart: approval
// and rejection move both in a single transition.
type DailyOperation struct {
	OperationID     string           `json:"operationID"` // Primary key (UUID)
	AgencyID        string           `json:"agencyID"`
	ServiceID       string           `json:"serviceID"`
	ClientID        string           `json:"clientID"`
	BasePrice       decimal.Decimal  `json:"basePrice"`
	DiscountAmount  decimal.Decimal  `json:"discountAmount"`
	FinalPrice      decimal.Decimal  `json:"finalPrice"` // BasePrice - DiscountAmount
	Status          ApprovalStatus   `json:"status"`
	ApprovedBy      *string          `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time       `json:"approvedAt,omitempty"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	Discount        *DiscountRequest `json:"discount,omitempty"` // present iff DiscountAmount > 0
	AuditFields
}

// DiscountRequest is the traceable justification filed whenever an operation
// is created with a non-zero discount. Its status always mirrors the parent
// operation's.
type DiscountRequest struct {
	RequestID          string          `json:"requestID"` // Primary key (UUID)
	OperationID        string          `json:"operationID"`
	OriginalPrice      decimal.Decimal `json:"originalPrice"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"` // amount / original * 100
	Reason             string          `json:"reason"`
	RequestedBy        string          `json:"requestedBy"`
	Status             ApprovalStatus  `json:"status"`
}

// Approve moves the operation and its discount request (if any) to Approved
// in one step. The caller is responsible for the status precondition check;
// this only applies the effect.
func (op *DailyOperation) Approve(approverID string, at time.Time) {
	op.Status = StatusApproved
	op.ApprovedBy = &approverID
	op.ApprovedAt = &at
	if op.Discount != nil {
		op.Discount.Status = StatusApproved
	}
}

// Reject moves the operation and its discount request (if any) to Rejected.
func (op *DailyOperation) Reject(approverID string, at time.Time, reason string) {
	op.Status = StatusRejected
	op.ApprovedBy = &approverID
	op.ApprovedAt = &at
	op.RejectionReason = reason
	if op.Discount != nil {
		op.Discount.Status = StatusRejected
	}
}
