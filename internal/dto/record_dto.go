package dto

import (
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest defines the data required to create a client.
type CreateClientRequest struct {
	AgencyID    string `json:"agencyID"`
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	CinPassport string `json:"cinPassport"`
}

// ClientResponse is the public shape of a client.
type ClientResponse struct {
	ClientID    string    `json:"clientID"`
	AgencyID    string    `json:"agencyID"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	CinPassport string    `json:"cinPassport"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateSupplierRequest defines the data required to create a supplier.
type CreateSupplierRequest struct {
	AgencyID string `json:"agencyID"`
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type"`
	Contact  string `json:"contact"`
}

// SupplierResponse is the public shape of a supplier.
type SupplierResponse struct {
	SupplierID string    `json:"supplierID"`
	AgencyID   string    `json:"agencyID"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Contact    string    `json:"contact"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateBookingRequest defines the data required to create a booking.
type CreateBookingRequest struct {
	AgencyID   string             `json:"agencyID"`
	Ref        string             `json:"ref" binding:"required"`
	ClientID   string             `json:"clientID" binding:"required"`
	SupplierID string             `json:"supplierID" binding:"required"`
	Type       domain.BookingType `json:"type" binding:"required"`
	Cost       decimal.Decimal    `json:"cost"`
	SellPrice  decimal.Decimal    `json:"sellPrice"`
	StartDate  time.Time          `json:"startDate" binding:"required"`
	EndDate    time.Time          `json:"endDate" binding:"required"`
}

// BookingResponse is the public shape of a booking.
type BookingResponse struct {
	BookingID  string             `json:"bookingID"`
	AgencyID   string             `json:"agencyID"`
	Ref        string             `json:"ref"`
	ClientID   string             `json:"clientID"`
	SupplierID string             `json:"supplierID"`
	Type       domain.BookingType `json:"type"`
	Cost       decimal.Decimal    `json:"cost"`
	SellPrice  decimal.Decimal    `json:"sellPrice"`
	StartDate  time.Time          `json:"startDate"`
	EndDate    time.Time          `json:"endDate"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// CreateInvoiceRequest defines the data required to create an invoice.
// AmountTTC is derived server-side from AmountHT and TVARate.
type CreateInvoiceRequest struct {
	AgencyID string          `json:"agencyID"`
	ClientID string          `json:"clientID" binding:"required"`
	AmountHT decimal.Decimal `json:"amountHT" binding:"required"`
	TVARate  decimal.Decimal `json:"tvaRate"`
	DueDate  time.Time       `json:"dueDate" binding:"required"`
}

// InvoiceResponse is the public shape of an invoice.
type InvoiceResponse struct {
	InvoiceID string               `json:"invoiceID"`
	AgencyID  string               `json:"agencyID"`
	InvoiceNo string               `json:"invoiceNo"`
	ClientID  string               `json:"clientID"`
	AmountHT  decimal.Decimal      `json:"amountHT"`
	TVARate   decimal.Decimal      `json:"tvaRate"`
	AmountTTC decimal.Decimal      `json:"amountTTC"`
	Status    domain.InvoiceStatus `json:"status"`
	DueDate   time.Time            `json:"dueDate"`
	CreatedAt time.Time            `json:"createdAt"`
}

// CreatePaymentRequest defines the data required to record a payment.
type CreatePaymentRequest struct {
	AgencyID    string               `json:"agencyID"`
	InvoiceID   string               `json:"invoiceID" binding:"required"`
	Method      domain.PaymentMethod `json:"method" binding:"required"`
	Amount      decimal.Decimal      `json:"amount" binding:"required"`
	PaymentDate time.Time            `json:"paymentDate" binding:"required"`
}

// PaymentResponse is the public shape of a payment.
type PaymentResponse struct {
	PaymentID   string               `json:"paymentID"`
	AgencyID    string               `json:"agencyID"`
	PaymentNo   string               `json:"paymentNo"`
	InvoiceID   string               `json:"invoiceID"`
	Method      domain.PaymentMethod `json:"method"`
	Amount      decimal.Decimal      `json:"amount"`
	PaymentDate time.Time            `json:"paymentDate"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ListClientsResponse wraps a list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ListSuppliersResponse wraps a list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ListBookingsResponse wraps a list of bookings.
type ListBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ListInvoicesResponse wraps a list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// ListPaymentsResponse wraps a list of payments.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// DashboardResponse is the landing-page snapshot.
type DashboardResponse struct {
	TodayIncome    decimal.Decimal `json:"todayIncome"`
	UnpaidInvoices int64           `json:"unpaidInvoices"`
	WeekBookings   int64           `json:"weekBookings"`
	CashboxBalance decimal.Decimal `json:"cashboxBalance"`
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:    c.ClientID,
		AgencyID:    c.AgencyID,
		Name:        c.Name,
		Phone:       c.Phone,
		CinPassport: c.CinPassport,
		CreatedAt:   c.CreatedAt,
	}
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		AgencyID:   s.AgencyID,
		Name:       s.Name,
		Type:       s.Type,
		Contact:    s.Contact,
		CreatedAt:  s.CreatedAt,
	}
}

// ToBookingResponse converts a domain.Booking to its response DTO.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:  b.BookingID,
		AgencyID:   b.AgencyID,
		Ref:        b.Ref,
		ClientID:   b.ClientID,
		SupplierID: b.SupplierID,
		Type:       b.Type,
		Cost:       b.Cost,
		SellPrice:  b.SellPrice,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		CreatedAt:  b.CreatedAt,
	}
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID: inv.InvoiceID,
		AgencyID:  inv.AgencyID,
		InvoiceNo: inv.InvoiceNo,
		ClientID:  inv.ClientID,
		AmountHT:  inv.AmountHT,
		TVARate:   inv.TVARate,
		AmountTTC: inv.AmountTTC,
		Status:    inv.Status,
		DueDate:   inv.DueDate,
		CreatedAt: inv.CreatedAt,
	}
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		AgencyID:    p.AgencyID,
		PaymentNo:   p.PaymentNo,
		InvoiceID:   p.InvoiceID,
		Method:      p.Method,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		CreatedAt:   p.CreatedAt,
	}
}

// ToListClientsResponse converts a slice of clients to its response DTO.
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return ListClientsResponse{Clients: out}
}

// ToListSuppliersResponse converts a slice of suppliers to its response DTO.
func ToListSuppliersResponse(suppliers []domain.Supplier) ListSuppliersResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = ToSupplierResponse(&suppliers[i])
	}
	return ListSuppliersResponse{Suppliers: out}
}

// ToListBookingsResponse converts a slice of bookings to its response DTO.
func ToListBookingsResponse(bookings []domain.Booking) ListBookingsResponse {
	out := make([]BookingResponse, len(bookings))
	for i := range bookings {
		out[i] = ToBookingResponse(&bookings[i])
	}
	return ListBookingsResponse{Bookings: out}
}

// ToListInvoicesResponse converts a slice of invoices to its response DTO.
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return ListInvoicesResponse{Invoices: out}
}

// ToListPaymentsResponse converts a slice of payments to its response DTO.
func ToListPaymentsResponse(payments []domain.Payment) ListPaymentsResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
	}
	return ListPaymentsResponse{Payments: out}
}

// ToDashboardResponse converts a domain.Dashboard to its response DTO.
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		TodayIncome:    d.TodayIncome,
		UnpaidInvoices: d.UnpaidInvoices,
		WeekBookings:   d.WeekBookings,
		CashboxBalance: d.CashboxBalance,
	}
}
