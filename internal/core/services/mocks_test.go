package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock FxRateRepository ---
type MockFxRateRepository struct {
	mock.Mock
}

func (m *MockFxRateRepository) FindFxRate(ctx context.Context, quote domain.CurrencyCode) (*domain.FxRate, error) {
	args := m.Called(ctx, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FxRate), args.Error(1)
}

func (m *MockFxRateRepository) UpsertFxRate(ctx context.Context, rate domain.FxRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
	mu    sync.Mutex
	calls int
}

func (m *MockRateProvider) Name() string { return "mock" }

func (m *MockRateProvider) FetchRates(ctx context.Context, quote domain.CurrencyCode, refs []domain.CurrencyCode) (domain.RateSet, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	args := m.Called(ctx, quote, refs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateSet), args.Error(1)
}

func (m *MockRateProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// --- Mock RateResolver ---
type MockRateResolver struct {
	mock.Mock
	refs []domain.CurrencyCode
}

func (m *MockRateResolver) Resolve(ctx context.Context, quoteCurrency string) (domain.RateSet, error) {
	args := m.Called(ctx, quoteCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateSet), args.Error(1)
}

func (m *MockRateResolver) ReferenceCurrencies() []domain.CurrencyCode { return m.refs }

// --- Mock ExpenseNormalizer ---
type MockExpenseNormalizer struct {
	mock.Mock
}

func (m *MockExpenseNormalizer) ComputeAmounts(ctx context.Context, amount decimal.Decimal, currencyCode string) (domain.NormalizedAmounts, error) {
	args := m.Called(ctx, amount, currencyCode)
	return args.Get(0).(domain.NormalizedAmounts), args.Error(1)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, tenantID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, tenantID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, tenantID string, filters domain.ExpenseFilters) ([]domain.Expense, *string, error) {
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

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListSubcategories(ctx context.Context, tenantID string) ([]domain.Subcategory, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Subcategory), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) RenameCategory(ctx context.Context, tenantID, categoryID, name string) (*domain.Category, error) {
	args := m.Called(ctx, tenantID, categoryID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveSubcategory(ctx context.Context, subcategory domain.Subcategory) error {
	args := m.Called(ctx, subcategory)
	return args.Error(0)
}

func (m *MockCategoryRepository) RenameSubcategory(ctx context.Context, tenantID, subcategoryID, name string) (*domain.Subcategory, error) {
	args := m.Called(ctx, tenantID, subcategoryID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subcategory), args.Error(1)
}

// --- Mock PaymentMethodRepository ---
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) ListActivePaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) RenamePaymentMethod(ctx context.Context, tenantID, paymentMethodID, name string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, tenantID, paymentMethodID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindMembershipByUserID(ctx context.Context, userID string) (*domain.TenantUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantUser), args.Error(1)
}

func (m *MockTenantRepository) JoinDefaultTenant(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
