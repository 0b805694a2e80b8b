package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportKind selects which cross-agency rollup the aggregator produces.
type ReportKind string

const (
	// ReportSales buckets invoice amounts by day or month.
	ReportSales ReportKind = "SALES"
	// ReportAging lists unpaid invoices by days overdue.
	ReportAging ReportKind = "AGING"
	// ReportSummary counts bookings and sums operation discounts by service.
	ReportSummary ReportKind = "SUMMARY"
)

// SalesGrouping selects the sub-bucket granularity of a sales report.
type SalesGrouping string

const (
	GroupByDay   SalesGrouping = "DAY"
	GroupByMonth SalesGrouping = "MONTH"
)

// DateRange is an inclusive [From, To] interval over record creation dates.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// ReportTotals carries every numeric field the aggregator sums. The same
// struct is used for per-agency subtotals and for grand totals so the
// "grand total equals the sum of subtotals" invariant is checkable field by
// field.
type ReportTotals struct {
	Sales          decimal.Decimal `json:"sales"`
	InvoiceCount   int64           `json:"invoiceCount"`
	BookingCount   int64           `json:"bookingCount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

// Add accumulates o into t.
func (t *ReportTotals) Add(o ReportTotals) {
	t.Sales = t.Sales.Add(o.Sales)
	t.InvoiceCount += o.InvoiceCount
	t.BookingCount += o.BookingCount
	t.DiscountAmount = t.DiscountAmount.Add(o.DiscountAmount)
}

// ReportRow is one bucket line of an aggregate report. Key is the day or
// month for sales reports, the service name for summary reports, and the
// invoice number for aging reports.
type ReportRow struct {
	AgencyID    string       `json:"agencyID"`
	Key         string       `json:"key"`
	DaysOverdue int          `json:"daysOverdue,omitempty"` // aging only
	Totals      ReportTotals `json:"totals"`
}

// AgencyReportSection groups a report's rows under one agency with its
// subtotals.
type AgencyReportSection struct {
	AgencyID  string       `json:"agencyID"`
	Rows      []ReportRow  `json:"rows"`
	Subtotals ReportTotals `json:"subtotals"`
}

// AggregateReport is the shared result shape of sales, aging and summary
// reports. In grouped mode Agencies is populated; in flat mode Rows is.
// GrandTotals is identical between the two modes for the same inputs.
type AggregateReport struct {
	Kind        ReportKind            `json:"kind"`
	Range       DateRange             `json:"range"`
	Grouped     bool                  `json:"grouped"`
	Agencies    []AgencyReportSection `json:"agencies,omitempty"`
	Rows        []ReportRow           `json:"rows,omitempty"`
	GrandTotals ReportTotals          `json:"grandTotals"`
}

// InvoiceFact is the slice of an invoice the aggregator needs.
type InvoiceFact struct {
	AgencyID  string
	InvoiceNo string
	AmountTTC decimal.Decimal
	Status    InvoiceStatus
	DueDate   time.Time
	CreatedAt time.Time
}

// BookingFact is the slice of a booking the aggregator needs.
type BookingFact struct {
	AgencyID  string
	SellPrice decimal.Decimal
	CreatedAt time.Time
}

// OperationFact is the slice of a daily operation the aggregator needs.
type OperationFact struct {
	AgencyID       string
	ServiceName    string
	FinalPrice     decimal.Decimal
	DiscountAmount decimal.Decimal
	CreatedAt      time.Time
}

// Dashboard is the per-scope snapshot shown on the landing page.
type Dashboard struct {
	TodayIncome    decimal.Decimal `json:"todayIncome"`
	UnpaidInvoices int64           `json:"unpaidInvoices"`
	WeekBookings   int64           `json:"weekBookings"`
	CashboxBalance decimal.Decimal `json:"cashboxBalance"`
}
