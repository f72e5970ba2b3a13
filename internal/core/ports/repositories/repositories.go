package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	FxRateRepo        FxRateRepositoryFacade
	ExpenseRepo       ExpenseRepositoryFacade
	CategoryRepo      CategoryRepositoryFacade
	PaymentMethodRepo PaymentMethodRepositoryFacade
	ProfileRepo       ProfileReader
	TenantRepo        TenantRepositoryFacade
}
