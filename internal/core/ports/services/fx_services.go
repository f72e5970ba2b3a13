package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResolverSvc resolves the conversion rates of a quote currency into the reference currencies.
type RateResolverSvc interface {
	// Resolve returns one rate per active reference currency or an error matching ErrRateUnavailable.
	Resolve(ctx context.Context, quoteCurrency string) (domain.RateSet, error)

	// ReferenceCurrencies lists the reference currencies of this deployment.
	ReferenceCurrencies() []domain.CurrencyCode
}

// ExpenseNormalizerSvc computes the stored reference-currency amounts of an expense.
type ExpenseNormalizerSvc interface {
	ComputeAmounts(ctx context.Context, amountOriginal decimal.Decimal, currencyCode string) (domain.NormalizedAmounts, error)
}

// CurrencyReaderSvc serves the currencies users may pick from.
type CurrencyReaderSvc interface {
	ListCurrencies(ctx context.Context) []domain.Currency
}
