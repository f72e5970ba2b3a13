package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/google/uuid"
)

const (
	// DefaultExpensePageSize applies when a listing does not ask for a limit.
	DefaultExpensePageSize = 100
	// MaxExpensePageSize caps a single listing page.
	MaxExpensePageSize = 500
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	normalizer  portssvc.ExpenseNormalizerSvc
	now         Clock
}

// ExpenseServiceOption is a functional option for configuring the expense service
type ExpenseServiceOption func(*expenseService)

// WithExpenseClock overrides the clock used for CreatedAt.
func WithExpenseClock(now Clock) ExpenseServiceOption {
	return func(s *expenseService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewExpenseService creates a new expense service with the given options
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, normalizer portssvc.ExpenseNormalizerSvc, options ...ExpenseServiceOption) portssvc.ExpenseSvcFacade {
	s := &expenseService{
		expenseRepo: expenseRepo,
		normalizer:  normalizer,
		now:         time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense normalizes the request and inserts the expense. Nothing is written when normalization fails.
func (s *expenseService) CreateExpense(ctx context.Context, tenantID, userID string, req dto.ExpenseRequest) (*domain.Expense, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}

	expense, err := s.buildExpense(ctx, req)
	if err != nil {
		return nil, err
	}
	expense.ExpenseID = uuid.NewString()
	expense.TenantID = tenantID
	expense.CreatedBy = userID
	expense.CreatedAt = s.now().UTC()

	if err := s.expenseRepo.SaveExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("tenant_id", tenantID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.LogInfo(ctx, "Expense created",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("currency_code", string(expense.CurrencyCode)),
		slog.String("amount_usd", expense.AmountUSD.String()))
	return expense, nil
}

// UpdateExpense recomputes the amounts with the current rate and overwrites the stored expense.
func (s *expenseService) UpdateExpense(ctx context.Context, tenantID, expenseID, userID string, req dto.ExpenseRequest) (*domain.Expense, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}

	existing, err := s.expenseRepo.FindExpenseByID(ctx, tenantID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	expense, err := s.buildExpense(ctx, req)
	if err != nil {
		return nil, err
	}
	expense.ExpenseID = existing.ExpenseID
	expense.TenantID = existing.TenantID
	expense.AuditFields = existing.AuditFields

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}

	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", expenseID), slog.String("updated_by", userID))
	return expense, nil
}

// buildExpense validates the request and computes its reference-currency amounts.
func (s *expenseService) buildExpense(ctx context.Context, req dto.ExpenseRequest) (*domain.Expense, error) {
	if strings.TrimSpace(req.CategoryID) == "" {
		return nil, fmt.Errorf("%w: categoryID is required", apperrors.ErrValidation)
	}
	expenseDate, err := time.Parse(dto.DateLayout, req.ExpenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expenseDate must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	currency, err := domain.ParseCurrencyCode(req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	amounts, err := s.normalizer.ComputeAmounts(ctx, req.Amount, string(currency))
	if err != nil {
		s.LogWarn(ctx, err, "Failed to normalize expense amount", slog.String("currency_code", string(currency)))
		return nil, err
	}

	expense := &domain.Expense{
		CategoryID:      req.CategoryID,
		SubcategoryID:   emptyToNil(req.SubcategoryID),
		PaymentMethodID: emptyToNil(req.PaymentMethodID),
		ExpenseDate:     expenseDate,
		AmountOriginal:  req.Amount,
		CurrencyCode:    currency,
		Note:            emptyToNil(req.Note),
	}
	expense.ApplyAmounts(amounts)
	return expense, nil
}

func (s *expenseService) GetExpense(ctx context.Context, tenantID, expenseID string) (*domain.Expense, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	expense, err := s.expenseRepo.FindExpenseByID(ctx, tenantID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, tenantID string, filters domain.ExpenseFilters) ([]domain.Expense, *string, error) {
	if tenantID == "" {
		return nil, nil, apperrors.ErrTenantUnavailable
	}
	if err := validateDateRange(filters); err != nil {
		return nil, nil, err
	}
	switch {
	case filters.Limit <= 0:
		filters.Limit = DefaultExpensePageSize
	case filters.Limit > MaxExpensePageSize:
		filters.Limit = MaxExpensePageSize
	}

	expenses, nextToken, err := s.expenseRepo.ListExpenses(ctx, tenantID, filters)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("tenant_id", tenantID))
		return nil, nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nextToken, nil
}

func validateDateRange(filters domain.ExpenseFilters) error {
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", apperrors.ErrValidation)
	}
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
