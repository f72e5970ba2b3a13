package mapping

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelFxRate converts a domain FxRate to its fx_rates row.
// Rates for currencies without a column are dropped.
func ToModelFxRate(d domain.FxRate) models.FxRate {
	m := models.FxRate{
		QuoteCurrency: string(d.QuoteCurrency),
		RateToUSD:     d.Rates[domain.USD],
		FetchedAt:     d.FetchedAt,
	}
	if ars, ok := d.Rates[domain.ARS]; ok {
		m.RateToARS = decimal.NewNullDecimal(ars)
	}
	return m
}

// ToDomainFxRate converts an fx_rates row to a domain FxRate. A NULL ARS column leaves ARS out of the set.
func ToDomainFxRate(m models.FxRate) domain.FxRate {
	rates := domain.RateSet{domain.USD: m.RateToUSD}
	if m.RateToARS.Valid {
		rates[domain.ARS] = m.RateToARS.Decimal
	}
	return domain.FxRate{
		QuoteCurrency: domain.CurrencyCode(m.QuoteCurrency),
		Rates:         rates,
		FetchedAt:     m.FetchedAt,
	}
}
