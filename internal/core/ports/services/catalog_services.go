package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// CategorySvcFacade manages categories and subcategories of a tenant.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context, tenantID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, tenantID, name string) (*domain.Category, error)
	RenameCategory(ctx context.Context, tenantID, categoryID, name string) (*domain.Category, error)

	ListSubcategories(ctx context.Context, tenantID string) ([]domain.Subcategory, error)
	CreateSubcategory(ctx context.Context, tenantID, categoryID, name string) (*domain.Subcategory, error)
	RenameSubcategory(ctx context.Context, tenantID, subcategoryID, name string) (*domain.Subcategory, error)
}

// PaymentMethodSvcFacade manages the payment methods of a tenant.
type PaymentMethodSvcFacade interface {
	ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, tenantID, name string) (*domain.PaymentMethod, error)
	RenamePaymentMethod(ctx context.Context, tenantID, paymentMethodID, name string) (*domain.PaymentMethod, error)
}

// ProfileReaderSvc lists user profiles.
type ProfileReaderSvc interface {
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
}

// TenantSvc resolves the tenant of a user.
type TenantSvc interface {
	// GetOrCreateMembership returns the user's membership, joining the default tenant when there is none.
	GetOrCreateMembership(ctx context.Context, userID string) (*domain.TenantUser, error)
}
