package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// expenseNormalizer implements the ExpenseNormalizerSvc interface
type expenseNormalizer struct {
	BaseService
	resolver portssvc.RateResolverSvc
}

// NewExpenseNormalizer creates a normalizer on top of a rate resolver.
func NewExpenseNormalizer(resolver portssvc.RateResolverSvc) portssvc.ExpenseNormalizerSvc {
	return &expenseNormalizer{resolver: resolver}
}

var _ portssvc.ExpenseNormalizerSvc = (*expenseNormalizer)(nil)

// ComputeAmounts converts amountOriginal with the current rates of currencyCode.
// Rates are first rounded to their stored scale so the persisted row satisfies
// amount_usd = round(amount_original * fx_rate_to_usd, 2). Each product is rounded
// half away from zero to 2 places.
func (n *expenseNormalizer) ComputeAmounts(ctx context.Context, amountOriginal decimal.Decimal, currencyCode string) (domain.NormalizedAmounts, error) {
	if !amountOriginal.IsPositive() {
		return domain.NormalizedAmounts{}, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !domain.FitsAmountScale(amountOriginal) {
		return domain.NormalizedAmounts{}, fmt.Errorf("%w: amount supports at most %d decimal places", apperrors.ErrValidation, domain.AmountPlaces)
	}

	rates, err := n.resolver.Resolve(ctx, currencyCode)
	if err != nil {
		return domain.NormalizedAmounts{}, fmt.Errorf("failed to resolve rates for %s: %w", currencyCode, err)
	}

	rateToUSD, ok := rates[domain.USD]
	if !ok {
		return domain.NormalizedAmounts{}, apperrors.NewRateUnavailableError("no USD rate for "+currencyCode, nil)
	}
	rateToUSD = domain.RoundRate(rateToUSD)
	if !rateToUSD.IsPositive() {
		return domain.NormalizedAmounts{}, apperrors.NewRateUnavailableError("USD rate for "+currencyCode+" is below the stored precision", nil)
	}

	amounts := domain.NormalizedAmounts{
		FxRateToUSD: rateToUSD,
		AmountUSD:   domain.RoundMoney(amountOriginal.Mul(rateToUSD)),
	}
	if rateToARS, ok := rates[domain.ARS]; ok {
		amountARS := domain.RoundMoney(amountOriginal.Mul(domain.RoundRate(rateToARS)))
		amounts.AmountARS = &amountARS
	}
	return amounts, nil
}
