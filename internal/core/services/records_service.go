package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/2fiksen-ship-it/booking/internal/apperrors"
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portsrepo "github.com/2fiksen-ship-it/booking/internal/core/ports/repositories"
	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultTVARate applies when an invoice is created without an explicit rate.
var defaultTVARate = decimal.NewFromInt(20)

// recordsService implements the RecordsSvcFacade interface. All reads go
// through the policy read filter and all writes through Authorize; there is
// no per-record-type permission logic here.
type recordsService struct {
	BaseService
	clientRepo    portsrepo.ClientRepository
	supplierRepo  portsrepo.SupplierRepository
	bookingRepo   portsrepo.BookingRepository
	invoiceRepo   portsrepo.InvoiceRepository
	paymentRepo   portsrepo.PaymentRepository
	reportingRepo portsrepo.ReportingRepository
}

// NewRecordsService creates a new records service with the provided dependencies
func NewRecordsService(
	engine *policy.Engine,
	clientRepo portsrepo.ClientRepository,
	supplierRepo portsrepo.SupplierRepository,
	bookingRepo portsrepo.BookingRepository,
	invoiceRepo portsrepo.InvoiceRepository,
	paymentRepo portsrepo.PaymentRepository,
	reportingRepo portsrepo.ReportingRepository,
) portssvc.RecordsSvcFacade {
	return &recordsService{
		BaseService:   BaseService{Policy: engine},
		clientRepo:    clientRepo,
		supplierRepo:  supplierRepo,
		bookingRepo:   bookingRepo,
		invoiceRepo:   invoiceRepo,
		paymentRepo:   paymentRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.RecordsSvcFacade = (*recordsService)(nil)

func (s *recordsService) CreateClient(ctx context.Context, caller domain.Caller, req dto.CreateClientRequest) (*domain.Client, error) {
	agencyID := s.Policy.OwnAgencyFor(caller, req.AgencyID)
	if err := s.Authorize(ctx, caller, policy.ActionCreateClient, policy.Target{AgencyID: agencyID}); err != nil {
		return nil, err
	}

	now := time.Now()
	client := domain.Client{
		ClientID:    uuid.NewString(),
		AgencyID:    agencyID,
		Name:        req.Name,
		Phone:       req.Phone,
		CinPassport: req.CinPassport,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("agency_id", agencyID))
		return nil, err
	}
	return &client, nil
}

func (s *recordsService) ListClients(ctx context.Context, caller domain.Caller) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, s.ReadFilter(caller))
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *recordsService) UpdateClient(ctx context.Context, caller domain.Caller, clientID string, req dto.CreateClientRequest) (*domain.Client, error) {
	client, err := s.visibleClient(ctx, caller, clientID)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, caller, policy.ActionUpdateClient, policy.Target{AgencyID: client.AgencyID}); err != nil {
		return nil, err
	}

	client.Name = req.Name
	client.Phone = req.Phone
	client.CinPassport = req.CinPassport
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = caller.UserID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

func (s *recordsService) DeleteClient(ctx context.Context, caller domain.Caller, clientID string) error {
	client, err := s.visibleClient(ctx, caller, clientID)
	if err != nil {
		return err
	}
	if err := s.Authorize(ctx, caller, policy.ActionDeleteClient, policy.Target{AgencyID: client.AgencyID}); err != nil {
		return err
	}
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return err
	}
	return nil
}

func (s *recordsService) visibleClient(ctx context.Context, caller domain.Caller, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !s.ReadFilter(caller).Matches(client.AgencyID) {
		return nil, apperrors.ErrNotFound
	}
	return client, nil
}

func (s *recordsService) CreateSupplier(ctx context.Context, caller domain.Caller, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	agencyID := s.Policy.OwnAgencyFor(caller, req.AgencyID)
	if err := s.Authorize(ctx, caller, policy.ActionCreateSupplier, policy.Target{AgencyID: agencyID}); err != nil {
		return nil, err
	}

	now := time.Now()
	supplier := domain.Supplier{
		SupplierID: uuid.NewString(),
		AgencyID:   agencyID,
		Name:       req.Name,
		Type:       req.Type,
		Contact:    req.Contact,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("agency_id", agencyID))
		return nil, err
	}
	return &supplier, nil
}

func (s *recordsService) ListSuppliers(ctx context.Context, caller domain.Caller) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, s.ReadFilter(caller))
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, err
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

func (s *recordsService) UpdateSupplier(ctx context.Context, caller domain.Caller, supplierID string, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.visibleSupplier(ctx, caller, supplierID)
	if err != nil {
		return nil, err
	}
	if err := s.Authorize(ctx, caller, policy.ActionUpdateSupplier, policy.Target{AgencyID: supplier.AgencyID}); err != nil {
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Type = req.Type
	supplier.Contact = req.Contact
	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = caller.UserID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}
	return supplier, nil
}

func (s *recordsService) DeleteSupplier(ctx context.Context, caller domain.Caller, supplierID string) error {
	supplier, err := s.visibleSupplier(ctx, caller, supplierID)
	if err != nil {
		return err
	}
	if err := s.Authorize(ctx, caller, policy.ActionDeleteSupplier, policy.Target{AgencyID: supplier.AgencyID}); err != nil {
		return err
	}
	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		s.LogError(ctx, err, "Failed to delete supplier", slog.String("supplier_id", supplierID))
		return err
	}
	return nil
}

func (s *recordsService) visibleSupplier(ctx context.Context, caller domain.Caller, supplierID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if !s.ReadFilter(caller).Matches(supplier.AgencyID) {
		return nil, apperrors.ErrNotFound
	}
	return supplier, nil
}

func (s *recordsService) CreateBooking(ctx context.Context, caller domain.Caller, req dto.CreateBookingRequest) (*domain.Booking, error) {
	agencyID := s.Policy.OwnAgencyFor(caller, req.AgencyID)
	if err := s.Authorize(ctx, caller, policy.ActionCreateBooking, policy.Target{AgencyID: agencyID}); err != nil {
		return nil, err
	}

	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("endDate cannot precede startDate: %w", apperrors.ErrValidation)
	}
	if req.Cost.IsNegative() || req.SellPrice.IsNegative() {
		return nil, fmt.Errorf("cost and sell price cannot be negative: %w", apperrors.ErrValidation)
	}

	// The booked client must be visible to the caller, which also pins it to
	// the target agency for staff.
	if _, err := s.visibleClient(ctx, caller, req.ClientID); err != nil {
		return nil, err
	}
	if _, err := s.visibleSupplier(ctx, caller, req.SupplierID); err != nil {
		return nil, err
	}

	now := time.Now()
	booking := domain.Booking{
		BookingID:  uuid.NewString(),
		AgencyID:   agencyID,
		Ref:        req.Ref,
		ClientID:   req.ClientID,
		SupplierID: req.SupplierID,
		Type:       req.Type,
		Cost:       req.Cost,
		SellPrice:  req.SellPrice,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.bookingRepo.SaveBooking(ctx, booking); err != nil {
		s.LogError(ctx, err, "Failed to save booking", slog.String("agency_id", agencyID))
		return nil, err
	}
	return &booking, nil
}

func (s *recordsService) ListBookings(ctx context.Context, caller domain.Caller) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx, s.ReadFilter(caller))
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings")
		return nil, err
	}
	if bookings == nil {
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

// CreateInvoice derives AmountTTC from AmountHT and the TVA rate (20% when
// unspecified) and assigns the next per-agency sequential invoice number.
func (s *recordsService) CreateInvoice(ctx context.Context, caller domain.Caller, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	agencyID := s.Policy.OwnAgencyFor(caller, req.AgencyID)
	if err := s.Authorize(ctx, caller, policy.ActionCreateInvoice, policy.Target{AgencyID: agencyID}); err != nil {
		return nil, err
	}

	if req.AmountHT.IsNegative() {
		return nil, fmt.Errorf("amountHT cannot be negative: %w", apperrors.ErrValidation)
	}
	if _, err := s.visibleClient(ctx, caller, req.ClientID); err != nil {
		return nil, err
	}

	tvaRate := req.TVARate
	if tvaRate.IsZero() {
		tvaRate = defaultTVARate
	}
	amountTTC := req.AmountHT.Mul(decimal.NewFromInt(1).Add(tvaRate.Div(oneHundred))).Round(2)

	count, err := s.invoiceRepo.CountInvoicesByAgency(ctx, agencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count invoices", slog.String("agency_id", agencyID))
		return nil, err
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID: uuid.NewString(),
		AgencyID:  agencyID,
		InvoiceNo: fmt.Sprintf("INV-%06d", count+1),
		ClientID:  req.ClientID,
		AmountHT:  req.AmountHT,
		TVARate:   tvaRate,
		AmountTTC: amountTTC,
		Status:    domain.InvoicePending,
		DueDate:   req.DueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice", slog.String("agency_id", agencyID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_no", invoice.InvoiceNo))
	return &invoice, nil
}

func (s *recordsService) ListInvoices(ctx context.Context, caller domain.Caller) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, s.ReadFilter(caller))
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

// CreatePayment records a settlement against an invoice. The payment is
// always stored under the invoice's agency, and the invoice flips to Paid
// once cumulative payments reach its AmountTTC.
func (s *recordsService) CreatePayment(ctx context.Context, caller domain.Caller, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if !s.ReadFilter(caller).Matches(invoice.AgencyID) {
		return nil, apperrors.ErrNotFound
	}
	if err := s.Authorize(ctx, caller, policy.ActionCreatePayment, policy.Target{AgencyID: invoice.AgencyID}); err != nil {
		return nil, err
	}

	if !req.Amount.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("payment amount must be positive: %w", apperrors.ErrValidation)
	}

	count, err := s.paymentRepo.CountPaymentsByAgency(ctx, invoice.AgencyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count payments", slog.String("agency_id", invoice.AgencyID))
		return nil, err
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		AgencyID:    invoice.AgencyID,
		PaymentNo:   fmt.Sprintf("PAY-%06d", count+1),
		InvoiceID:   invoice.InvoiceID,
		Method:      req.Method,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     caller.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: caller.UserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}

	totalPaid, err := s.paymentRepo.SumPaymentsForInvoice(ctx, invoice.InvoiceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum payments for invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, err
	}
	if totalPaid.GreaterThanOrEqual(invoice.AmountTTC) && invoice.Status != domain.InvoicePaid {
		if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoice.InvoiceID, domain.InvoicePaid); err != nil {
			s.LogError(ctx, err, "Failed to mark invoice paid", slog.String("invoice_id", invoice.InvoiceID))
			return nil, err
		}
		s.LogInfo(ctx, "Invoice fully paid", slog.String("invoice_id", invoice.InvoiceID))
	}

	return &payment, nil
}

func (s *recordsService) ListPayments(ctx context.Context, caller domain.Caller) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListPayments(ctx, s.ReadFilter(caller))
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments")
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

func (s *recordsService) Dashboard(ctx context.Context, caller domain.Caller) (*domain.Dashboard, error) {
	dashboard, err := s.reportingRepo.GetDashboardData(ctx, s.ReadFilter(caller))
	if err != nil {
		s.LogError(ctx, err, "Failed to assemble dashboard")
		return nil, err
	}
	return dashboard, nil
}
