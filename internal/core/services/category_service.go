package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/google/uuid"
)

// maxNameLength bounds category, subcategory and payment method names.
const maxNameLength = 100

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	categories, err := s.categoryRepo.ListCategories(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, tenantID, name string) (*domain.Category, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	category := domain.Category{CategoryID: uuid.NewString(), TenantID: tenantID, Name: name}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) RenameCategory(ctx context.Context, tenantID, categoryID, name string) (*domain.Category, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.RenameCategory(ctx, tenantID, categoryID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to rename category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) ListSubcategories(ctx context.Context, tenantID string) ([]domain.Subcategory, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	subcategories, err := s.categoryRepo.ListSubcategories(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}
	if subcategories == nil {
		return []domain.Subcategory{}, nil
	}
	return subcategories, nil
}

func (s *categoryService) CreateSubcategory(ctx context.Context, tenantID, categoryID, name string) (*domain.Subcategory, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	if strings.TrimSpace(categoryID) == "" {
		return nil, fmt.Errorf("%w: categoryID is required", apperrors.ErrValidation)
	}
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	subcategory := domain.Subcategory{SubcategoryID: uuid.NewString(), TenantID: tenantID, CategoryID: categoryID, Name: name}
	if err := s.categoryRepo.SaveSubcategory(ctx, subcategory); err != nil {
		s.LogError(ctx, err, "Failed to save subcategory", slog.String("category_id", categoryID), slog.String("name", name))
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}
	return &subcategory, nil
}

func (s *categoryService) RenameSubcategory(ctx context.Context, tenantID, subcategoryID, name string) (*domain.Subcategory, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	subcategory, err := s.categoryRepo.RenameSubcategory(ctx, tenantID, subcategoryID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to rename subcategory %s: %w", subcategoryID, err)
	}
	return subcategory, nil
}

// cleanName trims a catalog name and checks it is non-empty and short enough.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", fmt.Errorf("%w: name must be at most %d characters", apperrors.ErrValidation, maxNameLength)
	}
	return name, nil
}
