package repositories

// RepositoryProvider bundles one storage backend's repositories. Both the
// pgsql and the memory packages build one.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyRepositoryFacade
	ExchangeRateRepo ExchangeRateHistoryRepositoryFacade
	RoleRepo         RoleRepositoryFacade
	UserRepo         UserRepositoryFacade
}
