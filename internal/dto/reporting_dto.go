package dto

import (
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportTotalsResponse mirrors domain.ReportTotals in report payloads.
type ReportTotalsResponse struct {
	Sales          decimal.Decimal `json:"sales"`
	InvoiceCount   int64           `json:"invoiceCount"`
	BookingCount   int64           `json:"bookingCount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
}

// ReportRowResponse is one bucket line of an aggregate report.
type ReportRowResponse struct {
	AgencyID    string               `json:"agencyID"`
	Key         string               `json:"key"`
	DaysOverdue int                  `json:"daysOverdue,omitempty"`
	Totals      ReportTotalsResponse `json:"totals"`
}

// AgencySectionResponse groups rows under one agency with subtotals.
type AgencySectionResponse struct {
	AgencyID  string               `json:"agencyID"`
	Rows      []ReportRowResponse  `json:"rows"`
	Subtotals ReportTotalsResponse `json:"subtotals"`
}

// AggregateReportResponse is the shared response shape of sales, aging and
// summary reports.
type AggregateReportResponse struct {
	Kind        domain.ReportKind       `json:"kind"`
	From        string                  `json:"from"`
	To          string                  `json:"to"`
	Grouped     bool                    `json:"grouped"`
	Agencies    []AgencySectionResponse `json:"agencies,omitempty"`
	Rows        []ReportRowResponse     `json:"rows,omitempty"`
	GrandTotals ReportTotalsResponse    `json:"grandTotals"`
}

func toTotalsResponse(t domain.ReportTotals) ReportTotalsResponse {
	return ReportTotalsResponse{
		Sales:          t.Sales,
		InvoiceCount:   t.InvoiceCount,
		BookingCount:   t.BookingCount,
		DiscountAmount: t.DiscountAmount,
	}
}

func toRowResponses(rows []domain.ReportRow) []ReportRowResponse {
	out := make([]ReportRowResponse, len(rows))
	for i, r := range rows {
		out[i] = ReportRowResponse{
			AgencyID:    r.AgencyID,
			Key:         r.Key,
			DaysOverdue: r.DaysOverdue,
			Totals:      toTotalsResponse(r.Totals),
		}
	}
	return out
}

// ToAggregateReportResponse converts a domain report to its response DTO.
func ToAggregateReportResponse(report *domain.AggregateReport) AggregateReportResponse {
	resp := AggregateReportResponse{
		Kind:        report.Kind,
		From:        report.Range.From.Format("2006-01-02"),
		To:          report.Range.To.Format("2006-01-02"),
		Grouped:     report.Grouped,
		Rows:        toRowResponses(report.Rows),
		GrandTotals: toTotalsResponse(report.GrandTotals),
	}
	if report.Grouped {
		resp.Agencies = make([]AgencySectionResponse, len(report.Agencies))
		for i, sec := range report.Agencies {
			resp.Agencies[i] = AgencySectionResponse{
				AgencyID:  sec.AgencyID,
				Rows:      toRowResponses(sec.Rows),
				Subtotals: toTotalsResponse(sec.Subtotals),
			}
		}
	}
	return resp
}
