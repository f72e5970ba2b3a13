package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// summaryPageSize is how many expenses are read per round trip while aggregating.
const summaryPageSize = MaxExpensePageSize

type summaryService struct {
	BaseService
	expenseRepo portsrepo.ExpenseReader
}

// NewSummaryService creates a summary service reading through the expense repository.
func NewSummaryService(expenseRepo portsrepo.ExpenseReader) portssvc.SummarySvc {
	return &summaryService{expenseRepo: expenseRepo}
}

var _ portssvc.SummarySvc = (*summaryService)(nil)

// Summarize totals the stored amounts of every matching expense.
func (s *summaryService) Summarize(ctx context.Context, tenantID string, filters domain.ExpenseFilters) (*domain.ExpenseSummary, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	if err := validateDateRange(filters); err != nil {
		return nil, err
	}

	agg := newSummaryAggregator()
	filters.Limit = summaryPageSize
	filters.NextToken = nil
	for {
		page, nextToken, err := s.expenseRepo.ListExpenses(ctx, tenantID, filters)
		if err != nil {
			s.LogError(ctx, err, "Failed to read expenses for summary")
			return nil, fmt.Errorf("failed to summarize expenses: %w", err)
		}
		for i := range page {
			agg.add(&page[i])
		}
		if nextToken == nil {
			break
		}
		filters.NextToken = nextToken
	}
	return agg.result(), nil
}

type categoryAgg struct {
	total domain.CategoryTotal
	subs  map[string]*domain.SubcategoryTotal
}

type summaryAggregator struct {
	summary    domain.ExpenseSummary
	categories map[string]*categoryAgg
}

func newSummaryAggregator() *summaryAggregator {
	return &summaryAggregator{
		summary:    domain.ExpenseSummary{TotalUSD: decimal.Zero, TotalARS: decimal.Zero},
		categories: make(map[string]*categoryAgg),
	}
}

func (a *summaryAggregator) add(e *domain.Expense) {
	ars := decimal.Zero
	if e.AmountARS != nil {
		ars = *e.AmountARS
	}
	a.summary.ExpenseCount++
	a.summary.TotalUSD = a.summary.TotalUSD.Add(e.AmountUSD)
	a.summary.TotalARS = a.summary.TotalARS.Add(ars)

	cat, ok := a.categories[e.CategoryID]
	if !ok {
		cat = &categoryAgg{
			total: domain.CategoryTotal{CategoryID: e.CategoryID, CategoryName: e.CategoryName, TotalUSD: decimal.Zero, TotalARS: decimal.Zero},
			subs:  make(map[string]*domain.SubcategoryTotal),
		}
		a.categories[e.CategoryID] = cat
	}
	cat.total.TotalUSD = cat.total.TotalUSD.Add(e.AmountUSD)
	cat.total.TotalARS = cat.total.TotalARS.Add(ars)

	subID, subName := domain.NoSubcategoryKey, domain.NoSubcategoryKey
	if e.SubcategoryID != nil {
		subID, subName = *e.SubcategoryID, *e.SubcategoryID
		if e.SubcategoryName != nil {
			subName = *e.SubcategoryName
		}
	}
	sub, ok := cat.subs[subID]
	if !ok {
		sub = &domain.SubcategoryTotal{SubcategoryID: subID, Name: subName, TotalUSD: decimal.Zero, TotalARS: decimal.Zero}
		cat.subs[subID] = sub
	}
	sub.TotalUSD = sub.TotalUSD.Add(e.AmountUSD)
	sub.TotalARS = sub.TotalARS.Add(ars)
}

func (a *summaryAggregator) result() *domain.ExpenseSummary {
	out := a.summary
	out.Categories = make([]domain.CategoryTotal, 0, len(a.categories))
	for _, cat := range a.categories {
		total := cat.total
		total.Subcategories = make([]domain.SubcategoryTotal, 0, len(cat.subs))
		for _, sub := range cat.subs {
			total.Subcategories = append(total.Subcategories, *sub)
		}
		sort.Slice(total.Subcategories, func(i, j int) bool {
			return total.Subcategories[i].Name < total.Subcategories[j].Name
		})
		out.Categories = append(out.Categories, total)
	}
	sort.Slice(out.Categories, func(i, j int) bool {
		if out.Categories[i].CategoryName == out.Categories[j].CategoryName {
			return out.Categories[i].CategoryID < out.Categories[j].CategoryID
		}
		return out.Categories[i].CategoryName < out.Categories[j].CategoryName
	})
	return &out
}
