package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ListInvoiceFacts(ctx context.Context, agencyIDs []string, rng domain.DateRange) ([]domain.InvoiceFact, error) {
	args := m.Called(ctx, agencyIDs, rng)
	var facts []domain.InvoiceFact
	if args.Get(0) != nil {
		facts = args.Get(0).([]domain.InvoiceFact)
	}
	return facts, args.Error(1)
}

func (m *MockReportingRepository) ListBookingFacts(ctx context.Context, agencyIDs []string, rng domain.DateRange) ([]domain.BookingFact, error) {
	args := m.Called(ctx, agencyIDs, rng)
	var facts []domain.BookingFact
	if args.Get(0) != nil {
		facts = args.Get(0).([]domain.BookingFact)
	}
	return facts, args.Error(1)
}

func (m *MockReportingRepository) ListOperationFacts(ctx context.Context, agencyIDs []string, rng domain.DateRange) ([]domain.OperationFact, error) {
	args := m.Called(ctx, agencyIDs, rng)
	var facts []domain.OperationFact
	if args.Get(0) != nil {
		facts = args.Get(0).([]domain.OperationFact)
	}
	return facts, args.Error(1)
}

func (m *MockReportingRepository) GetDashboardData(ctx context.Context, filter policy.Filter) (*domain.Dashboard, error) {
	args := m.Called(ctx, filter)
	var d *domain.Dashboard
	if args.Get(0) != nil {
		d = args.Get(0).(*domain.Dashboard)
	}
	return d, args.Error(1)
}

// --- Test Suite ---
type AggregatorServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.AggregatorSvcFacade

	accountant domain.Caller
	staff      domain.Caller

	rng domain.DateRange
}

func (suite *AggregatorServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewAggregatorService(policy.NewEngine(true), suite.mockReportingRepo)

	suite.accountant = domain.Caller{UserID: uuid.NewString(), Role: domain.RoleGeneralAccountant, AgencyID: "agency-1"}
	suite.staff = domain.Caller{UserID: uuid.NewString(), Role: domain.RoleAgencyStaff, AgencyID: "agency-1"}

	suite.rng = domain.DateRange{
		From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC),
	}
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 10, 0, 0, 0, time.UTC)
}

func (suite *AggregatorServiceTestSuite) invoiceFacts() []domain.InvoiceFact {
	return []domain.InvoiceFact{
		{AgencyID: "agency-1", InvoiceNo: "INV-000001", AmountTTC: decimal.NewFromInt(1200), Status: domain.InvoicePending, CreatedAt: day(2)},
		{AgencyID: "agency-1", InvoiceNo: "INV-000002", AmountTTC: decimal.NewFromInt(800), Status: domain.InvoicePaid, CreatedAt: day(2)},
		{AgencyID: "agency-2", InvoiceNo: "INV-000001", AmountTTC: decimal.NewFromInt(500), Status: domain.InvoicePending, CreatedAt: day(3)},
	}
}

// --- SalesReport Tests ---

func (suite *AggregatorServiceTestSuite) TestSalesReport_FlatAndGroupedGrandTotalsMatch() {
	ctx := context.Background()

	suite.mockReportingRepo.On("ListInvoiceFacts", ctx, []string(nil), suite.rng).Return(suite.invoiceFacts(), nil).Twice()

	flat, err := suite.service.SalesReport(ctx, suite.accountant, suite.rng, nil, domain.GroupByDay, false)
	suite.Require().NoError(err)
	grouped, err := suite.service.SalesReport(ctx, suite.accountant, suite.rng, nil, domain.GroupByDay, true)
	suite.Require().NoError(err)

	suite.True(flat.GrandTotals.Sales.Equal(decimal.NewFromInt(2500)))
	suite.Equal(int64(3), flat.GrandTotals.InvoiceCount)
	suite.Equal(flat.GrandTotals, grouped.GrandTotals)

	// Grouped mode carries per-agency subtotals that sum to the grand total.
	var summed domain.ReportTotals
	for _, sec := range grouped.Agencies {
		summed.Add(sec.Subtotals)
	}
	suite.Equal(grouped.GrandTotals, summed)
}

func (suite *AggregatorServiceTestSuite) TestSalesReport_BucketsByDay() {
	ctx := context.Background()

	suite.mockReportingRepo.On("ListInvoiceFacts", ctx, []string(nil), suite.rng).Return(suite.invoiceFacts(), nil).Once()

	report, err := suite.service.SalesReport(ctx, suite.accountant, suite.rng, nil, domain.GroupByDay, false)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)
	suite.Equal("agency-1", report.Rows[0].AgencyID)
	suite.Equal("2025-06-02", report.Rows[0].Key)
	suite.True(report.Rows[0].Totals.Sales.Equal(decimal.NewFromInt(2000)))
	suite.Equal(int64(2), report.Rows[0].Totals.InvoiceCount)
	suite.Equal("agency-2", report.Rows[1].AgencyID)
	suite.Equal("2025-06-03", report.Rows[1].Key)
}

func (suite *AggregatorServiceTestSuite) TestSalesReport_BucketsByMonth() {
	ctx := context.Background()

	suite.mockReportingRepo.On("ListInvoiceFacts", ctx, []string(nil), suite.rng).Return(suite.invoiceFacts(), nil).Once()

	report, err := suite.service.SalesReport(ctx, suite.accountant, suite.rng, nil, domain.GroupByMonth, false)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)
	suite.Equal("2025-06", report.Rows[0].Key)
	suite.Equal("2025-06", report.Rows[1].Key)
}

func (suite *AggregatorServiceTestSuite) TestSalesReport_StaffScopeForcedToHomeAgency() {
	ctx := context.Background()

	// Staff asks for other agencies; the effective set is still their own.
	suite.mockReportingRepo.On("ListInvoiceFacts", ctx, []string{"agency-1"}, suite.rng).Return(nil, nil).Once()

	_, err := suite.service.SalesReport(ctx, suite.staff, suite.rng, []string{"agency-2", "agency-3"}, domain.GroupByDay, false)

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *AggregatorServiceTestSuite) TestSalesReport_AccountantRequestNarrows() {
	ctx := context.Background()

	suite.mockReportingRepo.On("ListInvoiceFacts", ctx, []string{"agency-2"}, suite.rng).Return(nil, nil).Once()

	_, err := suite.service.SalesReport(ctx, suite.accountant, suite.rng, []string{"agency-2"}, domain.GroupByDay, false)

	suite.Require().NoError(err)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

// --- AgingReport Tests ---

func (suite *AggregatorServiceTestSuite) TestAgingReport_OrdersByDaysOverdue() {
	ctx := context.Background()
	asOf := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	facts := []domain.InvoiceFact{
		// Days overdue counts from issuance, not the due date.
		{AgencyID: "agency-1", InvoiceNo: "INV-000010", AmountTTC: decimal.NewFromInt(300), Status: domain.InvoicePending, CreatedAt: asOf.AddDate(0, 0, -5), DueDate: asOf.AddDate(0, 0, -2)},
		{AgencyID: "agency-2", InvoiceNo: "INV-000003", AmountTTC: decimal.NewFromInt(900), Status: domain.InvoicePending, CreatedAt: asOf.AddDate(0, 0, -30), DueDate: asOf.AddDate(0, 0, -20)},
		// Paid and not-yet-due invoices never age.
		{AgencyID: "agency-1", InvoiceNo: "INV-000011", AmountTTC: decimal.NewFromInt(100), Status: domain.InvoicePaid, CreatedAt: asOf.AddDate(0, 0, -10), DueDate: asOf.AddDate(0, 0, -10)},
		{AgencyID: "agency-1", InvoiceNo: "INV-000012", AmountTTC: decimal.NewFromInt(100), Status: domain.InvoicePending, CreatedAt: asOf.AddDate(0, 0, -10), DueDate: asOf.AddDate(0, 0, 3)},
	}

	suite.mockReportingRepo.On("ListInvoiceFacts", ctx, []string(nil), domain.DateRange{To: asOf}).Return(facts, nil).Once()

	report, err := suite.service.AgingReport(ctx, suite.accountant, asOf, nil, false)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)
	suite.Equal("INV-000003", report.Rows[0].Key)
	suite.Equal(30, report.Rows[0].DaysOverdue)
	suite.Equal("INV-000010", report.Rows[1].Key)
	suite.Equal(5, report.Rows[1].DaysOverdue)
	suite.True(report.GrandTotals.Sales.Equal(decimal.NewFromInt(1200)))
}

// --- SummaryReport Tests ---

func (suite *AggregatorServiceTestSuite) TestSummaryReport_RowsPerServiceAndBookings() {
	ctx := context.Background()
	opFacts := []domain.OperationFact{
		{AgencyID: "agency-1", ServiceName: "Omra package", FinalPrice: decimal.NewFromInt(95000), DiscountAmount: decimal.NewFromInt(5000)},
		{AgencyID: "agency-1", ServiceName: "Omra package", FinalPrice: decimal.NewFromInt(100000), DiscountAmount: decimal.Zero},
		{AgencyID: "agency-1", ServiceName: "Visa assistance", FinalPrice: decimal.NewFromInt(8000), DiscountAmount: decimal.Zero},
	}
	bookingFacts := []domain.BookingFact{
		{AgencyID: "agency-1", SellPrice: decimal.NewFromInt(40000)},
		{AgencyID: "agency-2", SellPrice: decimal.NewFromInt(25000)},
	}

	suite.mockReportingRepo.On("ListOperationFacts", ctx, []string(nil), suite.rng).Return(opFacts, nil).Once()
	suite.mockReportingRepo.On("ListBookingFacts", ctx, []string(nil), suite.rng).Return(bookingFacts, nil).Once()

	report, err := suite.service.SummaryReport(ctx, suite.accountant, suite.rng, nil, false)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 4)

	// Rows come sorted by agency then key; lowercase "bookings" sorts after
	// the capitalized service names within agency-1.
	suite.Equal("Omra package", report.Rows[0].Key)
	suite.True(report.Rows[0].Totals.Sales.Equal(decimal.NewFromInt(195000)))
	suite.True(report.Rows[0].Totals.DiscountAmount.Equal(decimal.NewFromInt(5000)))
	suite.Equal("Visa assistance", report.Rows[1].Key)
	suite.Equal("bookings", report.Rows[2].Key)
	suite.Equal(int64(1), report.Rows[2].Totals.BookingCount)
	suite.Equal("agency-2", report.Rows[3].AgencyID)
	suite.Equal("bookings", report.Rows[3].Key)

	// Grand totals include booking sales and every service row.
	suite.True(report.GrandTotals.Sales.Equal(decimal.NewFromInt(268000)))
	suite.Equal(int64(2), report.GrandTotals.BookingCount)
}

func (suite *AggregatorServiceTestSuite) TestSummaryReport_GroupedPartitionsPreserveTotals() {
	ctx := context.Background()
	opFacts := []domain.OperationFact{
		{AgencyID: "agency-1", ServiceName: "Omra package", FinalPrice: decimal.NewFromInt(95000), DiscountAmount: decimal.NewFromInt(5000)},
	}
	bookingFacts := []domain.BookingFact{
		{AgencyID: "agency-2", SellPrice: decimal.NewFromInt(25000)},
	}

	suite.mockReportingRepo.On("ListOperationFacts", ctx, []string(nil), suite.rng).Return(opFacts, nil).Once()
	suite.mockReportingRepo.On("ListBookingFacts", ctx, []string(nil), suite.rng).Return(bookingFacts, nil).Once()

	report, err := suite.service.SummaryReport(ctx, suite.accountant, suite.rng, nil, true)

	suite.Require().NoError(err)
	suite.True(report.Grouped)
	suite.Empty(report.Rows)
	suite.Require().Len(report.Agencies, 2)
	suite.Equal("agency-1", report.Agencies[0].AgencyID)
	suite.Equal("agency-2", report.Agencies[1].AgencyID)

	var summed domain.ReportTotals
	for _, sec := range report.Agencies {
		summed.Add(sec.Subtotals)
	}
	suite.Equal(report.GrandTotals, summed)
	suite.True(report.GrandTotals.Sales.Equal(decimal.NewFromInt(120000)))
}

// --- Run Suite ---
func TestAggregatorService(t *testing.T) {
	suite.Run(t, new(AggregatorServiceTestSuite))
}
