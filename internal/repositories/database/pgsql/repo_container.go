package pgsql

import (
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FxRateRepo:        newPgxFxRateRepository(dbPool),
		ExpenseRepo:       newPgxExpenseRepository(dbPool),
		CategoryRepo:      newPgxCategoryRepository(dbPool),
		PaymentMethodRepo: newPgxPaymentMethodRepository(dbPool),
		ProfileRepo:       newPgxProfileRepository(dbPool),
		TenantRepo:        newPgxTenantRepository(dbPool),
	}
}
