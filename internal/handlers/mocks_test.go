package handlers_test

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) GetExpense(ctx context.Context, tenantID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, tenantID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, tenantID string, filters domain.ExpenseFilters) ([]domain.Expense, *string, error) {
	args := m.Called(ctx, tenantID, filters)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Expense), token, args.Error(2)
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, tenantID, userID string, req dto.ExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, tenantID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) UpdateExpense(ctx context.Context, tenantID, expenseID, userID string, req dto.ExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, tenantID, expenseID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Summarize(ctx context.Context, tenantID string, filters domain.ExpenseFilters) (*domain.ExpenseSummary, error) {
	args := m.Called(ctx, tenantID, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseSummary), args.Error(1)
}

var _ portssvc.SummarySvc = (*MockSummaryService)(nil)

// --- Mock RateResolver ---
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) Resolve(ctx context.Context, quoteCurrency string) (domain.RateSet, error) {
	args := m.Called(ctx, quoteCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateSet), args.Error(1)
}

func (m *MockRateResolver) ReferenceCurrencies() []domain.CurrencyCode {
	return []domain.CurrencyCode{domain.USD, domain.ARS}
}

var _ portssvc.RateResolverSvc = (*MockRateResolver)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, tenantID, name string) (*domain.Category, error) {
	args := m.Called(ctx, tenantID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) RenameCategory(ctx context.Context, tenantID, categoryID, name string) (*domain.Category, error) {
	args := m.Called(ctx, tenantID, categoryID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) ListSubcategories(ctx context.Context, tenantID string) ([]domain.Subcategory, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}

func (m *MockCategoryService) CreateSubcategory(ctx context.Context, tenantID, categoryID, name string) (*domain.Subcategory, error) {
	args := m.Called(ctx, tenantID, categoryID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}

func (m *MockCategoryService) RenameSubcategory(ctx context.Context, tenantID, subcategoryID, name string) (*domain.Subcategory, error) {
	args := m.Called(ctx, tenantID, subcategoryID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)
