package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/core/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, filter policy.Filter) ([]domain.Client, error) {
	args := m.Called(ctx, filter)
	var out []domain.Client
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Client)
	}
	return out, args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	var supplier *domain.Supplier
	if args.Get(0) != nil {
		supplier = args.Get(0).(*domain.Supplier)
	}
	return supplier, args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, filter policy.Filter) ([]domain.Supplier, error) {
	args := m.Called(ctx, filter)
	var out []domain.Supplier
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Supplier)
	}
	return out, args.Error(1)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	args := m.Called(ctx, supplierID)
	return args.Error(0)
}

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context, filter policy.Filter) ([]domain.Booking, error) {
	args := m.Called(ctx, filter)
	var out []domain.Booking
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Booking)
	}
	return out, args.Error(1)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter policy.Filter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	var out []domain.Invoice
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Invoice)
	}
	return out, args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoicesByAgency(ctx context.Context, agencyID string) (int64, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) error {
	args := m.Called(ctx, invoiceID, status)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, filter policy.Filter) ([]domain.Payment, error) {
	args := m.Called(ctx, filter)
	var out []domain.Payment
	if args.Get(0) != nil {
		out = args.Get(0).([]domain.Payment)
	}
	return out, args.Error(1)
}

func (m *MockPaymentRepository) CountPaymentsByAgency(ctx context.Context, agencyID string) (int64, error) {
	args := m.Called(ctx, agencyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) SumPaymentsForInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite ---
type RecordsServiceTestSuite struct {
	suite.Suite
	mockClientRepo    *MockClientRepository
	mockSupplierRepo  *MockSupplierRepository
	mockBookingRepo   *MockBookingRepository
	mockInvoiceRepo   *MockInvoiceRepository
	mockPaymentRepo   *MockPaymentRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.RecordsSvcFacade

	staff domain.Caller
}

func (suite *RecordsServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockBookingRepo = new(MockBookingRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewRecordsService(
		policy.NewEngine(true),
		suite.mockClientRepo,
		suite.mockSupplierRepo,
		suite.mockBookingRepo,
		suite.mockInvoiceRepo,
		suite.mockPaymentRepo,
		suite.mockReportingRepo,
	)

	suite.staff = domain.Caller{UserID: uuid.NewString(), Role: domain.RoleAgencyStaff, AgencyID: "agency-1"}
}

func (suite *RecordsServiceTestSuite) ownClient() *domain.Client {
	return &domain.Client{ClientID: uuid.NewString(), AgencyID: "agency-1", Name: "Client"}
}

// --- Client Tests ---

func (suite *RecordsServiceTestSuite) TestCreateClient_StaffForcedToHomeAgency() {
	ctx := context.Background()
	req := dto.CreateClientRequest{AgencyID: "agency-9", Name: "Karim"}

	suite.mockClientRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.AgencyID == "agency-1" && c.Name == "Karim"
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, suite.staff, req)

	suite.Require().NoError(err)
	suite.Equal("agency-1", client.AgencyID)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *RecordsServiceTestSuite) TestUpdateClient_ForeignReadsAsMissing() {
	ctx := context.Background()
	foreign := &domain.Client{ClientID: uuid.NewString(), AgencyID: "agency-2"}

	suite.mockClientRepo.On("FindClientByID", ctx, foreign.ClientID).Return(foreign, nil).Once()

	client, err := suite.service.UpdateClient(ctx, suite.staff, foreign.ClientID, dto.CreateClientRequest{Name: "New"})

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
}

// --- Booking Tests ---

func (suite *RecordsServiceTestSuite) TestCreateBooking_EndBeforeStart() {
	ctx := context.Background()
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateBookingRequest{
		Ref:        "BK-1",
		ClientID:   uuid.NewString(),
		SupplierID: uuid.NewString(),
		Type:       domain.BookingUmrah,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, -1),
	}

	booking, err := suite.service.CreateBooking(ctx, suite.staff, req)

	suite.Require().Error(err)
	suite.Nil(booking)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (suite *RecordsServiceTestSuite) TestCreateBooking_Success() {
	ctx := context.Background()
	client := suite.ownClient()
	supplier := &domain.Supplier{SupplierID: uuid.NewString(), AgencyID: "agency-1"}
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateBookingRequest{
		Ref:        "BK-1",
		ClientID:   client.ClientID,
		SupplierID: supplier.SupplierID,
		Type:       domain.BookingFlight,
		Cost:       decimal.NewFromInt(30000),
		SellPrice:  decimal.NewFromInt(36000),
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 7),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplier.SupplierID).Return(supplier, nil).Once()
	suite.mockBookingRepo.On("SaveBooking", ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.AgencyID == "agency-1" && b.Ref == "BK-1"
	})).Return(nil).Once()

	booking, err := suite.service.CreateBooking(ctx, suite.staff, req)

	suite.Require().NoError(err)
	suite.NotEmpty(booking.BookingID)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

// --- Invoice Tests ---

func (suite *RecordsServiceTestSuite) TestCreateInvoice_DerivesNumberAndTTC() {
	ctx := context.Background()
	client := suite.ownClient()
	req := dto.CreateInvoiceRequest{
		ClientID: client.ClientID,
		AmountHT: decimal.NewFromInt(1000),
		DueDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockInvoiceRepo.On("CountInvoicesByAgency", ctx, "agency-1").Return(int64(41), nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.staff, req)

	suite.Require().NoError(err)
	suite.Equal("INV-000042", invoice.InvoiceNo)
	// Default 20% TVA applies when the rate is omitted.
	suite.True(invoice.TVARate.Equal(decimal.NewFromInt(20)))
	suite.True(invoice.AmountTTC.Equal(decimal.NewFromInt(1200)))
	suite.Equal(domain.InvoicePending, invoice.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *RecordsServiceTestSuite) TestCreateInvoice_ExplicitTVARate() {
	ctx := context.Background()
	client := suite.ownClient()
	req := dto.CreateInvoiceRequest{
		ClientID: client.ClientID,
		AmountHT: decimal.NewFromInt(200),
		TVARate:  decimal.NewFromInt(9),
		DueDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockClientRepo.On("FindClientByID", ctx, client.ClientID).Return(client, nil).Once()
	suite.mockInvoiceRepo.On("CountInvoicesByAgency", ctx, "agency-1").Return(int64(0), nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.staff, req)

	suite.Require().NoError(err)
	suite.Equal("INV-000001", invoice.InvoiceNo)
	suite.True(invoice.AmountTTC.Equal(decimal.NewFromInt(218)))
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

// --- Payment Tests ---

func (suite *RecordsServiceTestSuite) TestCreatePayment_FullCoverageFlipsInvoicePaid() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: uuid.NewString(),
		AgencyID:  "agency-1",
		AmountTTC: decimal.NewFromInt(1200),
		Status:    domain.InvoicePending,
	}
	req := dto.CreatePaymentRequest{
		InvoiceID:   invoice.InvoiceID,
		Method:      domain.PaymentCash,
		Amount:      decimal.NewFromInt(1200),
		PaymentDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockPaymentRepo.On("CountPaymentsByAgency", ctx, "agency-1").Return(int64(6), nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockPaymentRepo.On("SumPaymentsForInvoice", ctx, invoice.InvoiceID).Return(decimal.NewFromInt(1200), nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, invoice.InvoiceID, domain.InvoicePaid).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, suite.staff, req)

	suite.Require().NoError(err)
	suite.Equal("PAY-000007", payment.PaymentNo)
	suite.Equal("agency-1", payment.AgencyID)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *RecordsServiceTestSuite) TestCreatePayment_PartialKeepsInvoicePending() {
	ctx := context.Background()
	invoice := &domain.Invoice{
		InvoiceID: uuid.NewString(),
		AgencyID:  "agency-1",
		AmountTTC: decimal.NewFromInt(1200),
		Status:    domain.InvoicePending,
	}
	req := dto.CreatePaymentRequest{
		InvoiceID:   invoice.InvoiceID,
		Method:      domain.PaymentBank,
		Amount:      decimal.NewFromInt(500),
		PaymentDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockPaymentRepo.On("CountPaymentsByAgency", ctx, "agency-1").Return(int64(0), nil).Once()
	suite.mockPaymentRepo.On("SavePayment", ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	suite.mockPaymentRepo.On("SumPaymentsForInvoice", ctx, invoice.InvoiceID).Return(decimal.NewFromInt(500), nil).Once()

	_, err := suite.service.CreatePayment(ctx, suite.staff, req)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecordsServiceTestSuite) TestCreatePayment_ForeignInvoiceReadsAsMissing() {
	ctx := context.Background()
	invoice := &domain.Invoice{InvoiceID: uuid.NewString(), AgencyID: "agency-2", AmountTTC: decimal.NewFromInt(100)}
	req := dto.CreatePaymentRequest{
		InvoiceID:   invoice.InvoiceID,
		Method:      domain.PaymentCash,
		Amount:      decimal.NewFromInt(100),
		PaymentDate: time.Now(),
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, suite.staff, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *RecordsServiceTestSuite) TestCreatePayment_NonPositiveAmount() {
	ctx := context.Background()
	invoice := &domain.Invoice{InvoiceID: uuid.NewString(), AgencyID: "agency-1", AmountTTC: decimal.NewFromInt(100)}
	req := dto.CreatePaymentRequest{InvoiceID: invoice.InvoiceID, Method: domain.PaymentCash, Amount: decimal.Zero, PaymentDate: time.Now()}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	payment, err := suite.service.CreatePayment(ctx, suite.staff, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Dashboard Tests ---

func (suite *RecordsServiceTestSuite) TestDashboard_ScopedToCaller() {
	ctx := context.Background()
	expected := &domain.Dashboard{
		TodayIncome:    decimal.NewFromInt(4200),
		UnpaidInvoices: 3,
		WeekBookings:   5,
		CashboxBalance: decimal.NewFromInt(90000),
	}

	suite.mockReportingRepo.On("GetDashboardData", ctx, policy.Filter{AgencyID: "agency-1"}).Return(expected, nil).Once()

	dashboard, err := suite.service.Dashboard(ctx, suite.staff)

	suite.Require().NoError(err)
	suite.Equal(expected, dashboard)
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestRecordsService(t *testing.T) {
	suite.Run(t, new(RecordsServiceTestSuite))
}
