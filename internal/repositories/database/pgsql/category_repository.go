package pgsql

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for categories and subcategories.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error) {
	query := `
		SELECT id, tenant_id, name
		FROM categories
		WHERE tenant_id = $1
		ORDER BY name, id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		var c domain.Category
		err := row.Scan(&c.CategoryID, &c.TenantID, &c.Name)
		return c, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect category rows", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) ListSubcategories(ctx context.Context, tenantID string) ([]domain.Subcategory, error) {
	query := `
		SELECT id, tenant_id, category_id, name
		FROM subcategories
		WHERE tenant_id = $1
		ORDER BY name, id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query subcategories", err)
	}
	subcategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subcategory, error) {
		var s domain.Subcategory
		err := row.Scan(&s.SubcategoryID, &s.TenantID, &s.CategoryID, &s.Name)
		return s, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect subcategory rows", err)
	}
	return subcategories, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `INSERT INTO categories (id, tenant_id, name) VALUES ($1, $2, $3);`
	_, err := r.Pool.Exec(ctx, query, category.CategoryID, category.TenantID, category.Name)
	if err != nil {
		return translateWriteError(err, "failed to save category "+category.CategoryID, "category "+category.Name+" already exists")
	}
	return nil
}

func (r *PgxCategoryRepository) RenameCategory(ctx context.Context, tenantID, categoryID, name string) (*domain.Category, error) {
	query := `
		UPDATE categories SET name = $3
		WHERE tenant_id = $1 AND id = $2
		RETURNING id, tenant_id, name;
	`
	var c domain.Category
	err := r.Pool.QueryRow(ctx, query, tenantID, categoryID, name).Scan(&c.CategoryID, &c.TenantID, &c.Name)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, apperrors.NewConflictError("category " + name + " already exists")
		}
		return nil, translateReadError(err, "failed to rename category "+categoryID, "category "+categoryID+" not found")
	}
	return &c, nil
}

// SaveSubcategory inserts the row only when the parent category belongs to the same tenant.
func (r *PgxCategoryRepository) SaveSubcategory(ctx context.Context, subcategory domain.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, tenant_id, category_id, name)
		SELECT $1, $2, $3, $4
		WHERE EXISTS (SELECT 1 FROM categories WHERE id = $3 AND tenant_id = $2);
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		subcategory.SubcategoryID,
		subcategory.TenantID,
		subcategory.CategoryID,
		subcategory.Name,
	)
	if err != nil {
		return translateWriteError(err, "failed to save subcategory "+subcategory.SubcategoryID, "subcategory "+subcategory.Name+" already exists")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category " + subcategory.CategoryID + " not found")
	}
	return nil
}

func (r *PgxCategoryRepository) RenameSubcategory(ctx context.Context, tenantID, subcategoryID, name string) (*domain.Subcategory, error) {
	query := `
		UPDATE subcategories SET name = $3
		WHERE tenant_id = $1 AND id = $2
		RETURNING id, tenant_id, category_id, name;
	`
	var s domain.Subcategory
	err := r.Pool.QueryRow(ctx, query, tenantID, subcategoryID, name).Scan(&s.SubcategoryID, &s.TenantID, &s.CategoryID, &s.Name)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, apperrors.NewConflictError("subcategory " + name + " already exists")
		}
		return nil, translateReadError(err, "failed to rename subcategory "+subcategoryID, "subcategory "+subcategoryID+" not found")
	}
	return &s, nil
}
