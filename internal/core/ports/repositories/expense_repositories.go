package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense of a tenant by its ID.
	FindExpenseByID(ctx context.Context, tenantID, expenseID string) (*domain.Expense, error)

	// ListExpenses returns one page of expenses and the token of the next page, if any.
	ListExpenses(ctx context.Context, tenantID string, filters domain.ExpenseFilters) ([]domain.Expense, *string, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense inserts a new, fully normalized expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense overwrites an existing expense of the tenant. Returns ErrNotFound when no row matches.
	UpdateExpense(ctx context.Context, expense domain.Expense) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
