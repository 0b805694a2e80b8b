package pgsql

import (
	portsrepo "github.com/2fiksen-ship-it/booking/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AgencyRepo:    newPgxAgencyRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		ReportRepo:    newPgxDailyReportRepository(dbPool),
		ServiceRepo:   newPgxServiceOfferingRepository(dbPool),
		OperationRepo: newPgxDailyOperationRepository(dbPool),
		ClientRepo:    newPgxClientRepository(dbPool),
		SupplierRepo:  newPgxSupplierRepository(dbPool),
		BookingRepo:   newPgxBookingRepository(dbPool),
		InvoiceRepo:   newPgxInvoiceRepository(dbPool),
		PaymentRepo:   newPgxPaymentRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
