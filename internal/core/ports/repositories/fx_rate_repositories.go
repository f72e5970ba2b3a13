package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// FxRateReader defines read operations for cached exchange rates
type FxRateReader interface {
	// FindFxRate returns the single cached entry for the quote currency or apperrors.ErrNotFound.
	FindFxRate(ctx context.Context, quoteCurrency domain.CurrencyCode) (*domain.FxRate, error)
}

// FxRateWriter defines write operations for cached exchange rates
type FxRateWriter interface {
	// UpsertFxRate replaces any prior entry for the same quote currency in one statement.
	UpsertFxRate(ctx context.Context, rate domain.FxRate) error
}

// FxRateRepositoryFacade combines all fx rate repository interfaces
type FxRateRepositoryFacade interface {
	FxRateReader
	FxRateWriter
}
