package services

import (
	"github.com/SscSPs/expense_tracker/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, provider providers.RateProvider, rateMetrics *metrics.RateMetrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The resolver goes first since the normalizer and the expense service depend on it
	cache := NewRateCache(repos.FxRateRepo, cfg.FxCacheMaxAge, nil)
	container.RateResolver = NewRateResolver(
		cache,
		provider,
		cfg.ReferenceCurrencies,
		WithProviderTimeout(cfg.FxProviderTimeout),
		WithRateMetrics(rateMetrics),
	)
	normalizer := NewExpenseNormalizer(container.RateResolver)

	container.Expense = NewExpenseService(repos.ExpenseRepo, normalizer)
	container.Summary = NewSummaryService(repos.ExpenseRepo)
	container.Currency = NewCurrencyService()
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.PaymentMethod = NewPaymentMethodService(repos.PaymentMethodRepo)
	container.Profile = NewProfileService(repos.ProfileRepo)
	container.Tenant = NewTenantService(repos.TenantRepo)

	return container
}
