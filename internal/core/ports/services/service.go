package services

// ServiceContainer aggregates every service facade the handler layer needs,
// so route registration takes one dependency instead of eight.
type ServiceContainer struct {
	User        UserSvcFacade
	Agency      AgencySvcFacade
	Report      DailyReportSvcFacade
	Operation   DailyOperationSvcFacade
	Records     RecordsSvcFacade
	Aggregator  AggregatorSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthHandlerSvcFacade
}
