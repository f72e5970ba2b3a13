package dto

import (
	"sort"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// ReferenceRate is the rate of the quote currency into one reference currency.
type ReferenceRate struct {
	CurrencyCode string          `json:"currencyCode"`
	Rate         decimal.Decimal `json:"rate" swaggertype:"string"`
}

// FxRateResponse is the resolved rate set of a quote currency.
type FxRateResponse struct {
	QuoteCurrency string          `json:"quoteCurrency"`
	Rates         []ReferenceRate `json:"rates"`
}

func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		out[i] = CurrencyResponse{CurrencyCode: string(c.CurrencyCode), Symbol: c.Symbol, Name: c.Name}
	}
	return out
}

// ToFxRateResponse lists the rates ordered by reference currency code.
func ToFxRateResponse(quote string, rates domain.RateSet) FxRateResponse {
	out := FxRateResponse{QuoteCurrency: quote, Rates: make([]ReferenceRate, 0, len(rates))}
	for code, rate := range rates {
		out.Rates = append(out.Rates, ReferenceRate{CurrencyCode: string(code), Rate: rate})
	}
	sort.Slice(out.Rates, func(i, j int) bool { return out.Rates[i].CurrencyCode < out.Rates[j].CurrencyCode })
	return out
}
