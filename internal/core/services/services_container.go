package services

import (
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	portsrepo "github.com/2fiksen-ship-it/booking/internal/core/ports/repositories"
	portssvc "github.com/2fiksen-ship-it/booking/internal/core/ports/services"
	"github.com/2fiksen-ship-it/booking/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	engine := policy.NewEngine(cfg.CrossAgencyReview)

	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(engine, repos.UserRepo, repos.AgencyRepo)
	container.Agency = NewAgencyService(engine, repos.AgencyRepo)
	container.Report = NewDailyReportService(engine, repos.ReportRepo)
	container.Operation = NewDailyOperationService(engine, repos.ServiceRepo, repos.OperationRepo)
	container.Records = NewRecordsService(engine, repos.ClientRepo, repos.SupplierRepo, repos.BookingRepo, repos.InvoiceRepo, repos.PaymentRepo, repos.ReportingRepo)
	container.Aggregator = NewAggregatorService(engine, repos.ReportingRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
