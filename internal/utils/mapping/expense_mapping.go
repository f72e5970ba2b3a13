package mapping

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	m := models.Expense{
		ExpenseID:       d.ExpenseID,
		TenantID:        d.TenantID,
		CategoryID:      d.CategoryID,
		SubcategoryID:   d.SubcategoryID,
		PaymentMethodID: d.PaymentMethodID,
		ExpenseDate:     d.ExpenseDate,
		AmountOriginal:  d.AmountOriginal,
		CurrencyCode:    string(d.CurrencyCode),
		FxRateToUSD:     d.FxRateToUSD,
		AmountUSD:       d.AmountUSD,
		Note:            d.Note,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.AmountARS != nil {
		m.AmountARS = decimal.NewNullDecimal(*d.AmountARS)
	}
	return m
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	d := domain.Expense{
		ExpenseID:         m.ExpenseID,
		TenantID:          m.TenantID,
		CategoryID:        m.CategoryID,
		SubcategoryID:     m.SubcategoryID,
		PaymentMethodID:   m.PaymentMethodID,
		ExpenseDate:       m.ExpenseDate,
		AmountOriginal:    m.AmountOriginal,
		CurrencyCode:      domain.CurrencyCode(m.CurrencyCode),
		FxRateToUSD:       m.FxRateToUSD,
		AmountUSD:         m.AmountUSD,
		Note:              m.Note,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
		CategoryName:      m.CategoryName,
		SubcategoryName:   m.SubcategoryName,
		PaymentMethodName: m.PaymentMethodName,
	}
	if m.AmountARS.Valid {
		ars := m.AmountARS.Decimal
		d.AmountARS = &ars
	}
	return d
}

// ToDomainExpenses converts a slice of model Expenses
func ToDomainExpenses(ms []models.Expense) []domain.Expense {
	out := make([]domain.Expense, len(ms))
	for i, m := range ms {
		out[i] = ToDomainExpense(m)
	}
	return out
}
