package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of expense dates.
const DateLayout = "2006-01-02"

// ExpenseRequest is the body of both create and update expense calls.
// Reference-currency amounts are never accepted from clients.
type ExpenseRequest struct {
	CategoryID      string          `json:"categoryID" binding:"required"`
	SubcategoryID   *string         `json:"subcategoryID,omitempty"`
	PaymentMethodID *string         `json:"paymentMethodID,omitempty"`
	ExpenseDate     string          `json:"expenseDate" binding:"required,datetime=2006-01-02"` // e.g. 2024-03-01
	Amount          decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"50.00"`
	CurrencyCode    string          `json:"currencyCode" binding:"required,currency"`
	Note            *string         `json:"note,omitempty" binding:"omitempty,max=500"`
}

// ListExpensesParams are the query parameters of the expense listing and summary endpoints.
type ListExpensesParams struct {
	StartDate    string  `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate      string  `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	CategoryID   string  `form:"categoryId"`
	UserID       string  `form:"userId"`
	CurrencyCode string  `form:"currencyCode" binding:"omitempty,currency"`
	Limit        int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken    *string `form:"nextToken"`
}

// ToFilters converts query parameters into domain filters.
func (p ListExpensesParams) ToFilters() (domain.ExpenseFilters, error) {
	filters := domain.ExpenseFilters{
		CategoryID: p.CategoryID,
		UserID:     p.UserID,
		Limit:      p.Limit,
		NextToken:  p.NextToken,
	}
	if p.StartDate != "" {
		start, err := time.Parse(DateLayout, p.StartDate)
		if err != nil {
			return filters, fmt.Errorf("%w: invalid startDate", apperrors.ErrValidation)
		}
		filters.StartDate = &start
	}
	if p.EndDate != "" {
		end, err := time.Parse(DateLayout, p.EndDate)
		if err != nil {
			return filters, fmt.Errorf("%w: invalid endDate", apperrors.ErrValidation)
		}
		filters.EndDate = &end
	}
	if p.CurrencyCode != "" {
		code, err := domain.ParseCurrencyCode(p.CurrencyCode)
		if err != nil {
			return filters, err
		}
		filters.CurrencyCode = code
	}
	return filters, nil
}

// ExpenseResponse defines the structure for API responses containing expense details.
type ExpenseResponse struct {
	ExpenseID         string           `json:"expenseID"`
	CategoryID        string           `json:"categoryID"`
	CategoryName      string           `json:"categoryName,omitempty"`
	SubcategoryID     *string          `json:"subcategoryID,omitempty"`
	SubcategoryName   *string          `json:"subcategoryName,omitempty"`
	PaymentMethodID   *string          `json:"paymentMethodID,omitempty"`
	PaymentMethodName *string          `json:"paymentMethodName,omitempty"`
	ExpenseDate       string           `json:"expenseDate"`
	AmountOriginal    decimal.Decimal  `json:"amountOriginal" swaggertype:"string"`
	CurrencyCode      string           `json:"currencyCode"`
	FxRateToUSD       decimal.Decimal  `json:"fxRateToUsd" swaggertype:"string"`
	AmountUSD         decimal.Decimal  `json:"amountUsd" swaggertype:"string"`
	AmountARS         *decimal.Decimal `json:"amountArs,omitempty" swaggertype:"string"`
	Note              *string          `json:"note,omitempty"`
	CreatedBy         string           `json:"createdBy"`
	CreatedAt         time.Time        `json:"createdAt"`
}

// ListExpensesResponse is one page of expenses.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:         e.ExpenseID,
		CategoryID:        e.CategoryID,
		CategoryName:      e.CategoryName,
		SubcategoryID:     e.SubcategoryID,
		SubcategoryName:   e.SubcategoryName,
		PaymentMethodID:   e.PaymentMethodID,
		PaymentMethodName: e.PaymentMethodName,
		ExpenseDate:       e.ExpenseDate.Format(DateLayout),
		AmountOriginal:    e.AmountOriginal,
		CurrencyCode:      string(e.CurrencyCode),
		FxRateToUSD:       e.FxRateToUSD,
		AmountUSD:         e.AmountUSD,
		AmountARS:         e.AmountARS,
		Note:              e.Note,
		CreatedBy:         e.CreatedBy,
		CreatedAt:         e.CreatedAt,
	}
}

// ToListExpensesResponse converts a page of expenses into its response DTO.
func ToListExpensesResponse(expenses []domain.Expense, nextToken *string) ListExpensesResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return ListExpensesResponse{Expenses: responses, NextToken: nextToken}
}
