package domain

import "github.com/shopspring/decimal"

// NoSubcategoryKey groups expenses that have no subcategory.
const NoSubcategoryKey = "none"

// SubcategoryTotal is one subcategory row inside a category summary.
type SubcategoryTotal struct {
	SubcategoryID string          `json:"subcategoryID"`
	Name          string          `json:"name"`
	TotalUSD      decimal.Decimal `json:"totalUsd"`
	TotalARS      decimal.Decimal `json:"totalArs"`
}

// CategoryTotal aggregates the normalized amounts of one category.
type CategoryTotal struct {
	CategoryID    string             `json:"categoryID"`
	CategoryName  string             `json:"categoryName"`
	TotalUSD      decimal.Decimal    `json:"totalUsd"`
	TotalARS      decimal.Decimal    `json:"totalArs"`
	Subcategories []SubcategoryTotal `json:"subcategories"`
}

// ExpenseSummary aggregates a filtered set of expenses.
type ExpenseSummary struct {
	TotalUSD     decimal.Decimal `json:"totalUsd"`
	TotalARS     decimal.Decimal `json:"totalArs"`
	ExpenseCount int             `json:"expenseCount"`
	Categories   []CategoryTotal `json:"categories"`
}
