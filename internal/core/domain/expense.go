package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend recorded by a tenant member.
// The monetary fields are computed together on every create or update.
type Expense struct {
	ExpenseID       string           `json:"expenseID"`
	TenantID        string           `json:"tenantID"`
	CategoryID      string           `json:"categoryID"`
	SubcategoryID   *string          `json:"subcategoryID,omitempty"`
	PaymentMethodID *string          `json:"paymentMethodID,omitempty"`
	ExpenseDate     time.Time        `json:"expenseDate"`
	AmountOriginal  decimal.Decimal  `json:"amountOriginal"`
	CurrencyCode    CurrencyCode     `json:"currencyCode"`
	FxRateToUSD     decimal.Decimal  `json:"fxRateToUsd"`
	AmountUSD       decimal.Decimal  `json:"amountUsd"`
	AmountARS       *decimal.Decimal `json:"amountArs,omitempty"`
	Note            *string          `json:"note,omitempty"`
	AuditFields

	// Denormalized names, filled by list queries.
	CategoryName      string  `json:"categoryName,omitempty"`
	SubcategoryName   *string `json:"subcategoryName,omitempty"`
	PaymentMethodName *string `json:"paymentMethodName,omitempty"`
}

// ApplyAmounts copies a normalization result onto the expense.
func (e *Expense) ApplyAmounts(a NormalizedAmounts) {
	e.FxRateToUSD = a.FxRateToUSD
	e.AmountUSD = a.AmountUSD
	e.AmountARS = a.AmountARS
}

// ExpenseFilters narrows expense listings. Zero values mean "no filter".
type ExpenseFilters struct {
	StartDate    *time.Time
	EndDate      *time.Time
	CategoryID   string
	UserID       string
	CurrencyCode CurrencyCode
	Limit        int
	NextToken    *string
}
