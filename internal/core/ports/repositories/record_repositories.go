package repositories

import (
	"context"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	"github.com/shopspring/decimal"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, filter policy.Filter) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID string) error
}

// SupplierRepository defines persistence operations for suppliers.
type SupplierRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, filter policy.Filter) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	SaveBooking(ctx context.Context, booking domain.Booking) error
	ListBookings(ctx context.Context, filter policy.Filter) ([]domain.Booking, error)
}

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, filter policy.Filter) ([]domain.Invoice, error)
	// CountInvoicesByAgency backs per-agency invoice numbering.
	CountInvoicesByAgency(ctx context.Context, agencyID string) (int64, error)
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus) error
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	ListPayments(ctx context.Context, filter policy.Filter) ([]domain.Payment, error)
	// CountPaymentsByAgency backs per-agency payment numbering.
	CountPaymentsByAgency(ctx context.Context, agencyID string) (int64, error)
	// SumPaymentsForInvoice returns the total paid against an invoice.
	SumPaymentsForInvoice(ctx context.Context, invoiceID string) (decimal.Decimal, error)
}
