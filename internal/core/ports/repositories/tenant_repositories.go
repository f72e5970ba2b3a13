package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// TenantReader defines read operations for tenant memberships
type TenantReader interface {
	// FindMembershipByUserID returns the tenant membership of a user or apperrors.ErrNotFound.
	FindMembershipByUserID(ctx context.Context, userID string) (*domain.TenantUser, error)
}

// TenantWriter defines write operations for tenant memberships
type TenantWriter interface {
	// JoinDefaultTenant adds the user to the default tenant. It is a no-op when already a member.
	// Returns apperrors.ErrNotFound when no default tenant exists.
	JoinDefaultTenant(ctx context.Context, userID string) error
}

// TenantRepositoryFacade combines all tenant repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}
