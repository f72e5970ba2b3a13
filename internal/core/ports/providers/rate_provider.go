package providers

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// RateProvider fetches conversion rates from an external source.
type RateProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string

	// FetchRates returns, for every requested reference currency, the rate that converts one
	// unit of quote into it. Implementations must return every requested reference or fail
	// with an error matching apperrors.ErrRateUnavailable.
	FetchRates(ctx context.Context, quote domain.CurrencyCode, refs []domain.CurrencyCode) (domain.RateSet, error)
}
