package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/SscSPs/expense_tracker/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultExpenseListLimit = 100

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepositoryFacade
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const fullExpenseSelectQuery = `
SELECT
	e.id, e.tenant_id, e.category_id, e.subcategory_id, e.payment_method_id,
	e.expense_date, e.amount_original, e.currency_code, e.fx_rate_to_usd,
	e.amount_usd, e.amount_ars, e.note, e.created_by, e.created_at,
	c.name, s.name, p.name
FROM expenses e
JOIN categories c ON c.id = e.category_id AND c.tenant_id = e.tenant_id
LEFT JOIN subcategories s ON s.id = e.subcategory_id AND s.tenant_id = e.tenant_id
LEFT JOIN payment_methods p ON p.id = e.payment_method_id AND p.tenant_id = e.tenant_id
`

// expenseReferencesGuard is true when the category ($3), the optional subcategory ($4)
// and the optional payment method ($5) all belong to tenantArg. The subcategory must
// also sit under the category.
func expenseReferencesGuard(tenantArg string) string {
	tenant := tenantArg + "::uuid"
	return `EXISTS (SELECT 1 FROM categories WHERE id = $3::uuid AND tenant_id = ` + tenant + `)
		AND ($4::uuid IS NULL OR EXISTS (
			SELECT 1 FROM subcategories WHERE id = $4::uuid AND category_id = $3::uuid AND tenant_id = ` + tenant + `))
		AND ($5::uuid IS NULL OR EXISTS (
			SELECT 1 FROM payment_methods WHERE id = $5::uuid AND tenant_id = ` + tenant + `))`
}

var insertExpenseQuery = `
	INSERT INTO expenses (
		id, tenant_id, category_id, subcategory_id, payment_method_id,
		expense_date, amount_original, currency_code, fx_rate_to_usd,
		amount_usd, amount_ars, note, created_by, created_at
	)
	SELECT $1::uuid, $2::uuid, $3::uuid, $4::uuid, $5::uuid,
		$6::date, $7::numeric, $8::text, $9::numeric,
		$10::numeric, $11::numeric, $12::text, $13::text, $14::timestamptz
	WHERE ` + expenseReferencesGuard("$2") + `;
`

// updateExpenseQuery reports whether the row exists, whether its references are
// valid for the tenant, and whether it was rewritten.
var updateExpenseQuery = `
	WITH target AS (
		SELECT id FROM expenses WHERE tenant_id = $1::uuid AND id = $2::uuid
	), refs AS (
		SELECT ` + expenseReferencesGuard("$1") + ` AS ok
	), updated AS (
		UPDATE expenses
		SET category_id = $3::uuid,
		    subcategory_id = $4::uuid,
		    payment_method_id = $5::uuid,
		    expense_date = $6::date,
		    amount_original = $7::numeric,
		    currency_code = $8::text,
		    fx_rate_to_usd = $9::numeric,
		    amount_usd = $10::numeric,
		    amount_ars = $11::numeric,
		    note = $12::text
		WHERE tenant_id = $1::uuid AND id = $2::uuid AND (SELECT ok FROM refs)
		RETURNING id
	)
	SELECT EXISTS (SELECT 1 FROM target), (SELECT ok FROM refs), EXISTS (SELECT 1 FROM updated);
`

func errForeignReferences() error {
	return apperrors.NewValidationError("category, subcategory or payment method not found for this tenant")
}

// updateOutcome turns the flags reported by updateExpenseQuery into an error.
func updateOutcome(expenseID string, found, refsOK, updated bool) error {
	switch {
	case !found:
		return apperrors.NewNotFoundError("expense " + expenseID + " not found for update")
	case !refsOK:
		return errForeignReferences()
	case !updated:
		return apperrors.NewNotFoundError("expense " + expenseID + " not found for update")
	}
	return nil
}

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.TenantID,
		&m.CategoryID,
		&m.SubcategoryID,
		&m.PaymentMethodID,
		&m.ExpenseDate,
		&m.AmountOriginal,
		&m.CurrencyCode,
		&m.FxRateToUSD,
		&m.AmountUSD,
		&m.AmountARS,
		&m.Note,
		&m.CreatedBy,
		&m.CreatedAt,
		&m.CategoryName,
		&m.SubcategoryName,
		&m.PaymentMethodName,
	)
	return m, err
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, tenantID, expenseID string) (*domain.Expense, error) {
	query := fullExpenseSelectQuery + `WHERE e.tenant_id = $1 AND e.id = $2;`

	m, err := scanExpense(r.Pool.QueryRow(ctx, query, tenantID, expenseID))
	if err != nil {
		return nil, translateReadError(err, "failed to find expense "+expenseID, "expense "+expenseID+" not found")
	}
	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

// expenseListQuery assembles the filtered, cursor-paginated listing statement.
// It asks for limit+1 rows so the caller can tell whether another page exists.
func expenseListQuery(tenantID string, filters domain.ExpenseFilters, limit int) (string, []any, error) {
	args := []any{tenantID}
	conditions := []string{"e.tenant_id = $1"}

	addArg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filters.StartDate != nil {
		conditions = append(conditions, "e.expense_date >= "+addArg(*filters.StartDate))
	}
	if filters.EndDate != nil {
		conditions = append(conditions, "e.expense_date <= "+addArg(*filters.EndDate))
	}
	if filters.CategoryID != "" {
		conditions = append(conditions, "e.category_id = "+addArg(filters.CategoryID))
	}
	if filters.UserID != "" {
		conditions = append(conditions, "e.created_by = "+addArg(filters.UserID))
	}
	if filters.CurrencyCode != "" {
		conditions = append(conditions, "e.currency_code = "+addArg(string(filters.CurrencyCode)))
	}
	if filters.NextToken != nil && *filters.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filters.NextToken)
		if err != nil {
			return "", nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		if _, err := uuid.Parse(cursor.ExpenseID); err != nil {
			return "", nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		// Tuple comparison keeps the cursor consistent with the ORDER BY
		dateArg := addArg(cursor.ExpenseDate)
		createdArg := addArg(cursor.CreatedAt)
		idArg := addArg(cursor.ExpenseID)
		conditions = append(conditions, "(e.expense_date, e.created_at, e.id) < ("+dateArg+"::date, "+createdArg+"::timestamptz, "+idArg+"::uuid)")
	}

	query := fullExpenseSelectQuery +
		"WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY e.expense_date DESC, e.created_at DESC, e.id DESC" +
		" LIMIT " + addArg(limit+1) + ";"
	return query, args, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, tenantID string, filters domain.ExpenseFilters) ([]domain.Expense, *string, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = defaultExpenseListLimit
	}

	query, args, err := expenseListQuery(tenantID, filters, limit)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, translateReadError(err, "failed to query expenses for tenant "+tenantID, "no expenses")
	}
	defer rows.Close()

	modelExpenses := make([]models.Expense, 0, limit+1)
	for rows.Next() {
		m, scanErr := scanExpense(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan expense row for tenant "+tenantID, scanErr)
		}
		modelExpenses = append(modelExpenses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating expense rows for tenant "+tenantID, err)
	}

	var nextToken *string
	results := modelExpenses
	if len(modelExpenses) > limit {
		// The token points at the last row of this page
		last := modelExpenses[limit-1]
		token := pagination.EncodeToken(last.ExpenseDate, last.CreatedAt, last.ExpenseID)
		nextToken = &token
		results = modelExpenses[:limit]
	}

	return mapping.ToDomainExpenses(results), nextToken, nil
}

// SaveExpense inserts the row only when every referenced record belongs to the expense's tenant.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	cmdTag, err := r.Pool.Exec(ctx, insertExpenseQuery,
		m.ExpenseID,
		m.TenantID,
		m.CategoryID,
		m.SubcategoryID,
		m.PaymentMethodID,
		m.ExpenseDate,
		m.AmountOriginal,
		m.CurrencyCode,
		m.FxRateToUSD,
		m.AmountUSD,
		m.AmountARS,
		m.Note,
		m.CreatedBy,
		m.CreatedAt,
	)
	if err != nil {
		return translateWriteError(err, "failed to save expense "+m.ExpenseID, "expense "+m.ExpenseID+" already exists")
	}
	if cmdTag.RowsAffected() == 0 {
		return errForeignReferences()
	}
	return nil
}

// UpdateExpense rewrites the editable and computed columns. Creation audit fields are left untouched.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	var found, refsOK, updated bool
	err := r.Pool.QueryRow(ctx, updateExpenseQuery,
		m.TenantID,
		m.ExpenseID,
		m.CategoryID,
		m.SubcategoryID,
		m.PaymentMethodID,
		m.ExpenseDate,
		m.AmountOriginal,
		m.CurrencyCode,
		m.FxRateToUSD,
		m.AmountUSD,
		m.AmountARS,
		m.Note,
	).Scan(&found, &refsOK, &updated)
	if err != nil {
		return translateWriteError(err, "failed to execute update expense "+m.ExpenseID, "expense "+m.ExpenseID+" conflicts with an existing row")
	}
	return updateOutcome(m.ExpenseID, found, refsOK, updated)
}
