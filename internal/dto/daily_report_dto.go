package dto

import (
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitDailyReportRequest carries an end-of-day report submission.
// AgencyID is optional; for agency staff it is ignored and forced to the
// caller's home agency.
type SubmitDailyReportRequest struct {
	AgencyID          string          `json:"agencyID"`
	BusinessDate      string          `json:"businessDate" binding:"required,dateonly"` // YYYY-MM-DD
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpenses     decimal.Decimal `json:"totalExpenses"`
	CashboxBalance    decimal.Decimal `json:"cashboxBalance"`
	TransactionsCount int             `json:"transactionsCount"`
	Notes             string          `json:"notes"`
}

// RejectRequest carries the mandatory reason for a rejection.
type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// DailyReportResponse is the public shape of a daily report.
type DailyReportResponse struct {
	ReportID          string                `json:"reportID"`
	AgencyID          string                `json:"agencyID"`
	BusinessDate      string                `json:"businessDate"`
	TotalIncome       decimal.Decimal       `json:"totalIncome"`
	TotalExpenses     decimal.Decimal       `json:"totalExpenses"`
	CashboxBalance    decimal.Decimal       `json:"cashboxBalance"`
	TransactionsCount int                   `json:"transactionsCount"`
	Notes             string                `json:"notes,omitempty"`
	Status            domain.ApprovalStatus `json:"status"`
	ApprovedBy        *string               `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time            `json:"approvedAt,omitempty"`
	RejectionReason   string                `json:"rejectionReason,omitempty"`
	CreatedBy         string                `json:"createdBy"`
	CreatedAt         time.Time             `json:"createdAt"`
}

// SubmitDailyReportResponse reports the upsert outcome: WasUpdated is true
// when an existing pending report for the same day was overwritten.
type SubmitDailyReportResponse struct {
	Report     DailyReportResponse `json:"report"`
	WasUpdated bool                `json:"wasUpdated"`
}

// ListDailyReportsResponse wraps the list of daily reports.
type ListDailyReportsResponse struct {
	Reports []DailyReportResponse `json:"reports"`
}

// ToDailyReportResponse converts a domain.DailyReport to its response DTO.
func ToDailyReportResponse(report *domain.DailyReport) DailyReportResponse {
	return DailyReportResponse{
		ReportID:          report.ReportID,
		AgencyID:          report.AgencyID,
		BusinessDate:      report.BusinessDate.Format("2006-01-02"),
		TotalIncome:       report.TotalIncome,
		TotalExpenses:     report.TotalExpenses,
		CashboxBalance:    report.CashboxBalance,
		TransactionsCount: report.TransactionsCount,
		Notes:             report.Notes,
		Status:            report.Status,
		ApprovedBy:        report.ApprovedBy,
		ApprovedAt:        report.ApprovedAt,
		RejectionReason:   report.RejectionReason,
		CreatedBy:         report.CreatedBy,
		CreatedAt:         report.CreatedAt,
	}
}

// ToListDailyReportsResponse converts a slice of reports to its response DTO.
func ToListDailyReportsResponse(reports []domain.DailyReport) ListDailyReportsResponse {
	responses := make([]DailyReportResponse, len(reports))
	for i := range reports {
		responses[i] = ToDailyReportResponse(&reports[i])
	}
	return ListDailyReportsResponse{Reports: responses}
}
