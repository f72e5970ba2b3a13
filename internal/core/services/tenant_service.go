package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
)

type tenantService struct {
	BaseService
	tenantRepo portsrepo.TenantRepositoryFacade
}

// NewTenantService creates a new tenant service
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade) portssvc.TenantSvc {
	return &tenantService{tenantRepo: tenantRepo}
}

var _ portssvc.TenantSvc = (*tenantService)(nil)

// GetOrCreateMembership returns the user's tenant, joining the default tenant on first use.
func (s *tenantService) GetOrCreateMembership(ctx context.Context, userID string) (*domain.TenantUser, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	membership, err := s.tenantRepo.FindMembershipByUserID(ctx, userID)
	if err == nil {
		return membership, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find tenant membership: %w", err)
	}

	if err := s.tenantRepo.JoinDefaultTenant(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "No default tenant to join", slog.String("user_id", userID))
			return nil, fmt.Errorf("%w: no default tenant configured", apperrors.ErrTenantUnavailable)
		}
		return nil, fmt.Errorf("failed to join default tenant: %w", err)
	}

	membership, err = s.tenantRepo.FindMembershipByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: membership missing after join", apperrors.ErrTenantUnavailable)
		}
		return nil, fmt.Errorf("failed to find tenant membership: %w", err)
	}
	s.LogInfo(ctx, "User joined default tenant", slog.String("user_id", userID), slog.String("tenant_id", membership.TenantID))
	return membership, nil
}
