package services

// ServiceContainer is what handlers, the seeder and the binaries are wired against.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateHistorySvcFacade
	Role         RoleSvcFacade
	User         UserSvcFacade
	Token        TokenSvcFacade
}
