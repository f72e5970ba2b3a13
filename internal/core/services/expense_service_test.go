package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockExpenseRepository
	mockNormalizer *MockExpenseNormalizer
	service        portssvc.ExpenseSvcFacade
	now            time.Time
	tenantID       string
	userID         string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.mockNormalizer = new(MockExpenseNormalizer)
	suite.now = time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.service = services.NewExpenseService(suite.mockRepo, suite.mockNormalizer,
		services.WithExpenseClock(func() time.Time { return suite.now }))
}

func (suite *ExpenseServiceTestSuite) request() dto.ExpenseRequest {
	note := "  lunch "
	return dto.ExpenseRequest{
		CategoryID:   uuid.NewString(),
		ExpenseDate:  "2024-03-01",
		Amount:       dec("50"),
		CurrencyCode: "ars",
		Note:         &note,
	}
}

func arsAmounts() domain.NormalizedAmounts {
	ars := dec("50")
	return domain.NormalizedAmounts{FxRateToUSD: dec("0.0012"), AmountUSD: dec("0.06"), AmountARS: &ars}
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	req := suite.request()
	suite.mockNormalizer.On("ComputeAmounts", ctx, req.Amount, "ARS").Return(arsAmounts(), nil).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.TenantID == suite.tenantID && e.CreatedBy == suite.userID && e.CreatedAt.Equal(suite.now) &&
			e.CurrencyCode == "ARS" && e.AmountUSD.Equal(dec("0.06")) && e.FxRateToUSD.Equal(dec("0.0012")) &&
			e.ExpenseDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) && *e.Note == "lunch"
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.tenantID, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	_, parseErr := uuid.Parse(expense.ExpenseID)
	suite.NoError(parseErr)
	suite.Nil(expense.SubcategoryID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NormalizationFailureWritesNothing() {
	ctx := context.Background()
	req := suite.request()
	suite.mockNormalizer.On("ComputeAmounts", ctx, req.Amount, "ARS").
		Return(domain.NormalizedAmounts{}, apperrors.NewRateUnavailableError("provider down", nil)).Once()

	expense, err := suite.service.CreateExpense(ctx, suite.tenantID, suite.userID, req)

	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Validation() {
	tests := []struct {
		name   string
		mutate func(r *dto.ExpenseRequest)
	}{
		{name: "missing category", mutate: func(r *dto.ExpenseRequest) { r.CategoryID = " " }},
		{name: "bad date", mutate: func(r *dto.ExpenseRequest) { r.ExpenseDate = "01/03/2024" }},
		{name: "bad currency", mutate: func(r *dto.ExpenseRequest) { r.CurrencyCode = "PESO" }},
	}

	for _, tt := range tests {
		req := suite.request()
		tt.mutate(&req)
		_, err := suite.service.CreateExpense(context.Background(), suite.tenantID, suite.userID, req)
		suite.ErrorIs(err, apperrors.ErrValidation, tt.name)
	}
	suite.mockNormalizer.AssertNotCalled(suite.T(), "ComputeAmounts", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NoTenant() {
	_, err := suite.service.CreateExpense(context.Background(), "", suite.userID, suite.request())

	suite.ErrorIs(err, apperrors.ErrTenantUnavailable)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_SaveError() {
	ctx := context.Background()
	req := suite.request()
	dbErr := apperrors.NewAppError(500, "failed to insert expense", errors.New("db down"))
	suite.mockNormalizer.On("ComputeAmounts", ctx, req.Amount, "ARS").Return(arsAmounts(), nil).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.Anything).Return(dbErr).Once()

	_, err := suite.service.CreateExpense(ctx, suite.tenantID, suite.userID, req)

	suite.ErrorIs(err, dbErr)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_RecomputesWithCurrentRate() {
	ctx := context.Background()
	createdAt := suite.now.Add(-48 * time.Hour)
	existing := &domain.Expense{
		ExpenseID:      uuid.NewString(),
		TenantID:       suite.tenantID,
		CurrencyCode:   "ARS",
		AmountOriginal: dec("50"),
		FxRateToUSD:    dec("0.0010"),
		AmountUSD:      dec("0.05"),
		AuditFields:    domain.AuditFields{CreatedAt: createdAt, CreatedBy: "original-author"},
	}
	req := suite.request()
	req.Amount = dec("100")
	newARS := dec("100")
	suite.mockRepo.On("FindExpenseByID", ctx, suite.tenantID, existing.ExpenseID).Return(existing, nil).Once()
	suite.mockNormalizer.On("ComputeAmounts", ctx, req.Amount, "ARS").
		Return(domain.NormalizedAmounts{FxRateToUSD: dec("0.0012"), AmountUSD: dec("0.12"), AmountARS: &newARS}, nil).Once()
	suite.mockRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ExpenseID == existing.ExpenseID && e.TenantID == suite.tenantID &&
			e.CreatedBy == "original-author" && e.CreatedAt.Equal(createdAt) &&
			e.FxRateToUSD.Equal(dec("0.0012")) && e.AmountUSD.Equal(dec("0.12"))
	})).Return(nil).Once()

	expense, err := suite.service.UpdateExpense(ctx, suite.tenantID, existing.ExpenseID, suite.userID, req)

	suite.Require().NoError(err)
	suite.True(dec("0.12").Equal(expense.AmountUSD))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindExpenseByID", ctx, suite.tenantID, "missing").Return(nil, apperrors.NewNotFoundError("expense not found")).Once()

	_, err := suite.service.UpdateExpense(ctx, suite.tenantID, "missing", suite.userID, suite.request())

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockNormalizer.AssertNotCalled(suite.T(), "ComputeAmounts", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NormalizationFailureWritesNothing() {
	ctx := context.Background()
	existing := &domain.Expense{ExpenseID: "e1", TenantID: suite.tenantID}
	req := suite.request()
	suite.mockRepo.On("FindExpenseByID", ctx, suite.tenantID, "e1").Return(existing, nil).Once()
	suite.mockNormalizer.On("ComputeAmounts", ctx, req.Amount, "ARS").
		Return(domain.NormalizedAmounts{}, apperrors.NewRateUnavailableError("timeout", nil)).Once()

	_, err := suite.service.UpdateExpense(ctx, suite.tenantID, "e1", suite.userID, req)

	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_AppliesDefaultAndCapLimit() {
	ctx := context.Background()
	token := "next"
	suite.mockRepo.On("ListExpenses", ctx, suite.tenantID, mock.MatchedBy(func(f domain.ExpenseFilters) bool {
		return f.Limit == services.DefaultExpensePageSize
	})).Return([]domain.Expense{{ExpenseID: "a"}}, &token, nil).Once()
	suite.mockRepo.On("ListExpenses", ctx, suite.tenantID, mock.MatchedBy(func(f domain.ExpenseFilters) bool {
		return f.Limit == services.MaxExpensePageSize
	})).Return(nil, nil, nil).Once()

	expenses, next, err := suite.service.ListExpenses(ctx, suite.tenantID, domain.ExpenseFilters{})
	suite.Require().NoError(err)
	suite.Len(expenses, 1)
	suite.Equal(&token, next)

	expenses, next, err = suite.service.ListExpenses(ctx, suite.tenantID, domain.ExpenseFilters{Limit: 10_000})
	suite.Require().NoError(err)
	suite.NotNil(expenses)
	suite.Empty(expenses)
	suite.Nil(next)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_RejectsInvertedRange() {
	start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, _, err := suite.service.ListExpenses(context.Background(), suite.tenantID, domain.ExpenseFilters{StartDate: &start, EndDate: &end})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestGetExpense() {
	ctx := context.Background()
	suite.mockRepo.On("FindExpenseByID", ctx, suite.tenantID, "e1").Return(&domain.Expense{ExpenseID: "e1"}, nil).Once()

	expense, err := suite.service.GetExpense(ctx, suite.tenantID, "e1")

	suite.Require().NoError(err)
	suite.Equal("e1", expense.ExpenseID)
}

func TestExpenseService(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

// TestCreateExpense_EndToEndNormalization wires the real resolver and normalizer over an in-memory cache.
func TestCreateExpense_EndToEndNormalization(t *testing.T) {
	ctx := context.Background()
	fxRepo := &memoryFxRateRepository{rates: map[domain.CurrencyCode]domain.FxRate{}}
	provider := new(MockRateProvider)
	provider.On("FetchRates", mock.Anything, domain.ARS, usdOnly).Return(domain.RateSet{domain.USD: dec("0.0012")}, nil).Once()
	resolver := services.NewRateResolver(services.NewRateCache(fxRepo, 12*time.Hour, nil), provider, dual)

	expenseRepo := new(MockExpenseRepository)
	var saved domain.Expense
	expenseRepo.On("SaveExpense", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Expense)
	}).Return(nil).Twice()

	svc := services.NewExpenseService(expenseRepo, services.NewExpenseNormalizer(resolver))
	req := dto.ExpenseRequest{CategoryID: "cat", ExpenseDate: "2024-03-01", Amount: dec("50"), CurrencyCode: "ARS"}

	_, err := svc.CreateExpense(ctx, "tenant", "user", req)
	require.NoError(t, err)
	assert.Equal(t, "0.06", saved.AmountUSD.StringFixed(2))
	assert.True(t, dec("0.0012").Equal(saved.FxRateToUSD))
	require.NotNil(t, saved.AmountARS)
	assert.True(t, dec("50").Equal(*saved.AmountARS))

	// Second expense is served from the cache
	_, err = svc.CreateExpense(ctx, "tenant", "user", req)
	require.NoError(t, err)
	provider.AssertNumberOfCalls(t, "FetchRates", 1)
	assert.True(t, saved.AmountUSD.Equal(decimal.RequireFromString("0.06")))
}
