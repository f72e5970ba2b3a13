package dto

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

type SubcategorySummaryResponse struct {
	SubcategoryID string          `json:"subcategoryID"`
	Name          string          `json:"name"`
	TotalUSD      decimal.Decimal `json:"totalUsd" swaggertype:"string"`
	TotalARS      decimal.Decimal `json:"totalArs" swaggertype:"string"`
}

type CategorySummaryResponse struct {
	CategoryID    string                       `json:"categoryID"`
	CategoryName  string                       `json:"categoryName"`
	TotalUSD      decimal.Decimal              `json:"totalUsd" swaggertype:"string"`
	TotalARS      decimal.Decimal              `json:"totalArs" swaggertype:"string"`
	Subcategories []SubcategorySummaryResponse `json:"subcategories"`
}

// SummaryResponse aggregates the filtered expenses of a tenant.
type SummaryResponse struct {
	TotalUSD     decimal.Decimal           `json:"totalUsd" swaggertype:"string"`
	TotalARS     decimal.Decimal           `json:"totalArs" swaggertype:"string"`
	ExpenseCount int                       `json:"expenseCount"`
	Categories   []CategorySummaryResponse `json:"categories"`
}

func ToSummaryResponse(s *domain.ExpenseSummary) SummaryResponse {
	out := SummaryResponse{
		TotalUSD:     s.TotalUSD,
		TotalARS:     s.TotalARS,
		ExpenseCount: s.ExpenseCount,
		Categories:   make([]CategorySummaryResponse, len(s.Categories)),
	}
	for i, c := range s.Categories {
		subs := make([]SubcategorySummaryResponse, len(c.Subcategories))
		for j, sc := range c.Subcategories {
			subs[j] = SubcategorySummaryResponse{SubcategoryID: sc.SubcategoryID, Name: sc.Name, TotalUSD: sc.TotalUSD, TotalARS: sc.TotalARS}
		}
		out.Categories[i] = CategorySummaryResponse{
			CategoryID:    c.CategoryID,
			CategoryName:  c.CategoryName,
			TotalUSD:      c.TotalUSD,
			TotalARS:      c.TotalARS,
			Subcategories: subs,
		}
	}
	return out
}
