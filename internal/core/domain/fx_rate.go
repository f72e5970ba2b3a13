package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSet maps a reference currency to the rate that converts one unit of the
// quote currency into it.
type RateSet map[CurrencyCode]decimal.Decimal

// Covers reports whether the set has a positive rate for every given reference currency.
func (s RateSet) Covers(refs []CurrencyCode) bool {
	for _, ref := range refs {
		rate, ok := s[ref]
		if !ok || !rate.IsPositive() {
			return false
		}
	}
	return true
}

// FxRate is the cached rate entry for one quote currency. There is at most one per currency.
type FxRate struct {
	QuoteCurrency CurrencyCode `json:"quoteCurrency"`
	Rates         RateSet      `json:"rates"`
	FetchedAt     time.Time    `json:"fetchedAt"`
}

// NormalizedAmounts are the reference-currency figures stored on an expense row.
type NormalizedAmounts struct {
	FxRateToUSD decimal.Decimal  `json:"fxRateToUsd"`
	AmountUSD   decimal.Decimal  `json:"amountUsd"`
	AmountARS   *decimal.Decimal `json:"amountArs,omitempty"`
}

// Decimal places of the persisted numeric columns.
const (
	// MoneyPlaces is the scale of converted amounts (amount_usd, amount_ars).
	MoneyPlaces = 2
	// AmountPlaces is the scale of expenses.amount_original.
	AmountPlaces = 4
	// RatePlaces is the scale of fx_rate_to_usd and the cached fx_rates columns.
	RatePlaces = 10
)

// RoundMoney rounds half away from zero to MoneyPlaces (33.335 -> 33.34, -33.335 -> -33.34).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// RoundRate rounds a conversion rate to the scale it is stored with.
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.Round(RatePlaces)
}

// FitsAmountScale reports whether d is stored as amount_original without losing digits.
func FitsAmountScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(AmountPlaces))
}

// Clone returns a copy that can be handed to another caller safely.
func (s RateSet) Clone() RateSet {
	out := make(RateSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
