package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingType enumerates the kinds of travel services an agency books.
type BookingType string

const (
	BookingUmrah  BookingType = "UMRAH"
	BookingFlight BookingType = "FLIGHT"
	BookingHotel  BookingType = "HOTEL"
	BookingVisa   BookingType = "VISA"
)

// PaymentMethod enumerates how a payment was collected.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentBank PaymentMethod = "BANK"
	PaymentCard PaymentMethod = "CARD"
)

// InvoiceStatus is the settlement state of an invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "PENDING"
	InvoicePaid    InvoiceStatus = "PAID"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
)

// Client is a customer of an agency.
type Client struct {
	ClientID    string `json:"clientID"` // Primary key (UUID)
	AgencyID    string `json:"agencyID"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CinPassport string `json:"cinPassport"`
	AuditFields
}

// Supplier is a vendor an agency buys services from.
type Supplier struct {
	SupplierID string `json:"supplierID"` // Primary key (UUID)
	AgencyID   string `json:"agencyID"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Contact    string `json:"contact"`
	AuditFields
}

// Booking records a travel service bought from a supplier and sold to a client.
type Booking struct {
	BookingID  string          `json:"bookingID"` // Primary key (UUID)
	AgencyID   string          `json:"agencyID"`
	Ref        string          `json:"ref"`
	ClientID   string          `json:"clientID"`
	SupplierID string          `json:"supplierID"`
	Type       BookingType     `json:"type"`
	Cost       decimal.Decimal `json:"cost"`
	SellPrice  decimal.Decimal `json:"sellPrice"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	AuditFields
}

// Invoice bills a client. AmountTTC is derived from AmountHT and the TVA rate.
type Invoice struct {
	InvoiceID string          `json:"invoiceID"` // Primary key (UUID)
	AgencyID  string          `json:"agencyID"`
	InvoiceNo string          `json:"invoiceNo"` // INV-%06d, per agency
	ClientID  string          `json:"clientID"`
	AmountHT  decimal.Decimal `json:"amountHT"`
	TVARate   decimal.Decimal `json:"tvaRate"`
	AmountTTC decimal.Decimal `json:"amountTTC"`
	Status    InvoiceStatus   `json:"status"`
	DueDate   time.Time       `json:"dueDate"`
	AuditFields
}

// Payment settles (part of) an invoice.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary key (UUID)
	AgencyID    string          `json:"agencyID"`
	PaymentNo   string          `json:"paymentNo"` // PAY-%06d, per agency
	InvoiceID   string          `json:"invoiceID"`
	Method      PaymentMethod   `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	AuditFields
}
