package services

import (
	"context"
	"sort"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portsrepo "github.com/2fiksen-ship-it/booking/internal/core/ports/repositories"
	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
)

// aggregatorService implements the AggregatorSvcFacade interface. All three
// report kinds reduce to the same pipeline: narrow the requested agency set
// through the caller's read filter, fetch facts, bucket them into rows, and
// assemble rows into a grouped or flat report whose grand totals are the sum
// of every row either way.
type aggregatorService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewAggregatorService creates a new aggregator service with the provided dependencies
func NewAggregatorService(engine *policy.Engine, reportingRepo portsrepo.ReportingRepository) portssvc.AggregatorSvcFacade {
	return &aggregatorService{
		BaseService:   BaseService{Policy: engine},
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.AggregatorSvcFacade = (*aggregatorService)(nil)

// SalesReport buckets invoice amounts per agency by day or month.
func (s *aggregatorService) SalesReport(ctx context.Context, caller domain.Caller, rng domain.DateRange, agencyIDs []string, grouping domain.SalesGrouping, grouped bool) (*domain.AggregateReport, error) {
	effective := s.ReadFilter(caller).Narrow(agencyIDs)

	facts, err := s.reportingRepo.ListInvoiceFacts(ctx, effective, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice facts")
		return nil, err
	}

	layout := "2006-01-02"
	if grouping == domain.GroupByMonth {
		layout = "2006-01"
	}

	type bucketKey struct {
		agencyID string
		key      string
	}
	buckets := make(map[bucketKey]*domain.ReportRow)
	for _, f := range facts {
		k := bucketKey{agencyID: f.AgencyID, key: f.CreatedAt.Format(layout)}
		row, ok := buckets[k]
		if !ok {
			row = &domain.ReportRow{AgencyID: k.agencyID, Key: k.key}
			buckets[k] = row
		}
		row.Totals.Add(domain.ReportTotals{Sales: f.AmountTTC, InvoiceCount: 1})
	}

	rows := make([]domain.ReportRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AgencyID != rows[j].AgencyID {
			return rows[i].AgencyID < rows[j].AgencyID
		}
		return rows[i].Key < rows[j].Key
	})

	return assembleReport(domain.ReportSales, rng, grouped, rows), nil
}

// AgingReport lists unpaid invoices past due as of the given date. Days
// overdue counts from issuance, not the due date; rows are ordered by days
// overdue descending with the invoice number breaking ties.
func (s *aggregatorService) AgingReport(ctx context.Context, caller domain.Caller, asOf time.Time, agencyIDs []string, grouped bool) (*domain.AggregateReport, error) {
	effective := s.ReadFilter(caller).Narrow(agencyIDs)

	rng := domain.DateRange{To: asOf}
	facts, err := s.reportingRepo.ListInvoiceFacts(ctx, effective, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoice facts")
		return nil, err
	}

	rows := make([]domain.ReportRow, 0, len(facts))
	for _, f := range facts {
		if f.Status == domain.InvoicePaid || !f.DueDate.Before(asOf) {
			continue
		}
		daysOverdue := int(asOf.Sub(f.CreatedAt).Hours() / 24)
		rows = append(rows, domain.ReportRow{
			AgencyID:    f.AgencyID,
			Key:         f.InvoiceNo,
			DaysOverdue: daysOverdue,
			Totals:      domain.ReportTotals{Sales: f.AmountTTC, InvoiceCount: 1},
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DaysOverdue != rows[j].DaysOverdue {
			return rows[i].DaysOverdue > rows[j].DaysOverdue
		}
		return rows[i].Key < rows[j].Key
	})

	return assembleReport(domain.ReportAging, rng, grouped, rows), nil
}

// SummaryReport rolls up operation revenue and discounts per service, plus a
// per-agency booking count line.
func (s *aggregatorService) SummaryReport(ctx context.Context, caller domain.Caller, rng domain.DateRange, agencyIDs []string, grouped bool) (*domain.AggregateReport, error) {
	effective := s.ReadFilter(caller).Narrow(agencyIDs)

	opFacts, err := s.reportingRepo.ListOperationFacts(ctx, effective, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list operation facts")
		return nil, err
	}
	bookingFacts, err := s.reportingRepo.ListBookingFacts(ctx, effective, rng)
	if err != nil {
		s.LogError(ctx, err, "Failed to list booking facts")
		return nil, err
	}

	type bucketKey struct {
		agencyID string
		key      string
	}
	buckets := make(map[bucketKey]*domain.ReportRow)
	add := func(agencyID, key string, totals domain.ReportTotals) {
		k := bucketKey{agencyID: agencyID, key: key}
		row, ok := buckets[k]
		if !ok {
			row = &domain.ReportRow{AgencyID: agencyID, Key: key}
			buckets[k] = row
		}
		row.Totals.Add(totals)
	}

	for _, f := range opFacts {
		add(f.AgencyID, f.ServiceName, domain.ReportTotals{Sales: f.FinalPrice, DiscountAmount: f.DiscountAmount})
	}
	for _, f := range bookingFacts {
		add(f.AgencyID, "bookings", domain.ReportTotals{Sales: f.SellPrice, BookingCount: 1})
	}

	rows := make([]domain.ReportRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].AgencyID != rows[j].AgencyID {
			return rows[i].AgencyID < rows[j].AgencyID
		}
		return rows[i].Key < rows[j].Key
	})

	return assembleReport(domain.ReportSummary, rng, grouped, rows), nil
}

// assembleReport turns pre-sorted rows into the final report shape. Grouped
// mode partitions rows by agency while preserving their relative order, so
// flat and grouped renderings of the same rows always carry identical grand
// totals.
func assembleReport(kind domain.ReportKind, rng domain.DateRange, grouped bool, rows []domain.ReportRow) *domain.AggregateReport {
	report := &domain.AggregateReport{
		Kind:    kind,
		Range:   rng,
		Grouped: grouped,
	}

	for _, row := range rows {
		report.GrandTotals.Add(row.Totals)
	}

	if !grouped {
		report.Rows = rows
		return report
	}

	sections := make(map[string]*domain.AgencyReportSection)
	order := make([]string, 0)
	for _, row := range rows {
		sec, ok := sections[row.AgencyID]
		if !ok {
			sec = &domain.AgencyReportSection{AgencyID: row.AgencyID}
			sections[row.AgencyID] = sec
			order = append(order, row.AgencyID)
		}
		sec.Rows = append(sec.Rows, row)
		sec.Subtotals.Add(row.Totals)
	}
	sort.Strings(order)

	report.Agencies = make([]domain.AgencyReportSection, 0, len(order))
	for _, agencyID := range order {
		report.Agencies = append(report.Agencies, *sections[agencyID])
	}
	return report
}
