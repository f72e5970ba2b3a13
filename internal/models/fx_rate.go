package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxRate is a row of fx_rates. There is one row per quote currency.
type FxRate struct {
	QuoteCurrency string              `json:"quoteCurrency"` // Primary Key
	RateToUSD     decimal.Decimal     `json:"rateToUsd"`
	RateToARS     decimal.NullDecimal `json:"rateToArs"` // NULL in USD-only deployments
	FetchedAt     time.Time           `json:"fetchedAt"`
}
