package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReport is the end-of-day financial summary an agency submits for
// review. There is exactly one per (agency, business date); re-submission
// while the report is still pending updates the existing record.
type DailyReport struct {
	ReportID          string          `json:"reportID"` // Primary key (UUID)
	AgencyID          string          `json:"agencyID"`
	BusinessDate      time.Time       `json:"businessDate"` // date component only
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	CashboxBalance    decimal.Decimal `json:"cashboxBalance"`
	TransactionsCount int             `json:"transactionsCount"`
	Notes             string          `json:"notes"`
	Status            ApprovalStatus  `json:"status"`
	ApprovedBy        *string         `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time      `json:"approvedAt,omitempty"`
	RejectionReason   string          `json:"rejectionReason,omitempty"`
	AuditFields
}
