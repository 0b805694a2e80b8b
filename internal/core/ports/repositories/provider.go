package repositories

// RepositoryProvider bundles every repository implementation so service
// construction takes one dependency.
type RepositoryProvider struct {
	AgencyRepo    AgencyRepository
	UserRepo      UserRepository
	ReportRepo    DailyReportRepository
	ServiceRepo   ServiceOfferingRepository
	OperationRepo DailyOperationRepository
	ClientRepo    ClientRepository
	SupplierRepo  SupplierRepository
	BookingRepo   BookingRepository
	InvoiceRepo   InvoiceRepository
	PaymentRepo   PaymentRepository
	ReportingRepo ReportingRepository
}
