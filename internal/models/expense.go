package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of expenses.
type Expense struct {
	ExpenseID       string              `json:"expenseID"` // Primary Key (UUID)
	TenantID        string              `json:"tenantID"`  // FK -> tenants.id
	CategoryID      string              `json:"categoryID"`
	SubcategoryID   *string             `json:"subcategoryID"`
	PaymentMethodID *string             `json:"paymentMethodID"`
	ExpenseDate     time.Time           `json:"expenseDate"` // DATE
	AmountOriginal  decimal.Decimal     `json:"amountOriginal"`
	CurrencyCode    string              `json:"currencyCode"`
	FxRateToUSD     decimal.Decimal     `json:"fxRateToUsd"`
	AmountUSD       decimal.Decimal     `json:"amountUsd"`
	AmountARS       decimal.NullDecimal `json:"amountArs"`
	Note            *string             `json:"note"`
	AuditFields

	// Joined from categories, subcategories and payment_methods
	CategoryName      string  `json:"categoryName"`
	SubcategoryName   *string `json:"subcategoryName"`
	PaymentMethodName *string `json:"paymentMethodName"`
}
