package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// ExpenseReaderSvc defines read operations for expenses
type ExpenseReaderSvc interface {
	GetExpense(ctx context.Context, tenantID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, tenantID string, filters domain.ExpenseFilters) ([]domain.Expense, *string, error)
}

// ExpenseWriterSvc defines write operations for expenses
type ExpenseWriterSvc interface {
	CreateExpense(ctx context.Context, tenantID, userID string, req dto.ExpenseRequest) (*domain.Expense, error)
	UpdateExpense(ctx context.Context, tenantID, expenseID, userID string, req dto.ExpenseRequest) (*domain.Expense, error)
}

// ExpenseSvcFacade combines all expense service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}

// SummarySvc aggregates normalized expense amounts.
type SummarySvc interface {
	Summarize(ctx context.Context, tenantID string, filters domain.ExpenseFilters) (*domain.ExpenseSummary, error)
}
