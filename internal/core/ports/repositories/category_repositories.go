package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// CategoryReader defines read operations for categories and subcategories
type CategoryReader interface {
	ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error)
	ListSubcategories(ctx context.Context, tenantID string) ([]domain.Subcategory, error)
}

// CategoryWriter defines write operations for categories and subcategories
type CategoryWriter interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	RenameCategory(ctx context.Context, tenantID, categoryID, name string) (*domain.Category, error)
	SaveSubcategory(ctx context.Context, subcategory domain.Subcategory) error
	RenameSubcategory(ctx context.Context, tenantID, subcategoryID, name string) (*domain.Subcategory, error)
}

// CategoryRepositoryFacade combines all category repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
