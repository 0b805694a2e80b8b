package services

import (
	"context"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/dto"
)

// RecordsSvcFacade defines the tenant-owned CRUD records (clients, suppliers,
// bookings, invoices, payments). Every read goes through the policy read
// filter and every write through the policy engine; the service owns no
// per-record-type permission logic.
type RecordsSvcFacade interface {
	CreateClient(ctx context.Context, caller domain.Caller, req dto.CreateClientRequest) (*domain.Client, error)
	ListClients(ctx context.Context, caller domain.Caller) ([]domain.Client, error)
	UpdateClient(ctx context.Context, caller domain.Caller, clientID string, req dto.CreateClientRequest) (*domain.Client, error)
	DeleteClient(ctx context.Context, caller domain.Caller, clientID string) error

	CreateSupplier(ctx context.Context, caller domain.Caller, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, caller domain.Caller) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, caller domain.Caller, supplierID string, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, caller domain.Caller, supplierID string) error

	CreateBooking(ctx context.Context, caller domain.Caller, req dto.CreateBookingRequest) (*domain.Booking, error)
	ListBookings(ctx context.Context, caller domain.Caller) ([]domain.Booking, error)

	CreateInvoice(ctx context.Context, caller domain.Caller, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, caller domain.Caller) ([]domain.Invoice, error)

	CreatePayment(ctx context.Context, caller domain.Caller, req dto.CreatePaymentRequest) (*domain.Payment, error)
	ListPayments(ctx context.Context, caller domain.Caller) ([]domain.Payment, error)

	Dashboard(ctx context.Context, caller domain.Caller) (*domain.Dashboard, error)
}
