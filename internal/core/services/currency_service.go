package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

type CurrencyService struct {
	currencies []domain.Currency
}

// NewCurrencyService serves the fixed list of currencies users can record expenses in.
func NewCurrencyService() *CurrencyService {
	return &CurrencyService{currencies: domain.SupportedCurrencies}
}

var _ portssvc.CurrencyReaderSvc = (*CurrencyService)(nil)

func (s *CurrencyService) ListCurrencies(ctx context.Context) []domain.Currency {
	// Return a copy so callers cannot mutate the shared list
	out := make([]domain.Currency, len(s.currencies))
	copy(out, s.currencies)
	return out
}
