package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/google/uuid"
)

type paymentMethodService struct {
	BaseService
	paymentMethodRepo portsrepo.PaymentMethodRepositoryFacade
}

// NewPaymentMethodService creates a new payment method service
func NewPaymentMethodService(paymentMethodRepo portsrepo.PaymentMethodRepositoryFacade) portssvc.PaymentMethodSvcFacade {
	return &paymentMethodService{paymentMethodRepo: paymentMethodRepo}
}

var _ portssvc.PaymentMethodSvcFacade = (*paymentMethodService)(nil)

// ListPaymentMethods returns only the active payment methods.
func (s *paymentMethodService) ListPaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	methods, err := s.paymentMethodRepo.ListActivePaymentMethods(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	if methods == nil {
		return []domain.PaymentMethod{}, nil
	}
	return methods, nil
}

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, tenantID, name string) (*domain.PaymentMethod, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	method := domain.PaymentMethod{PaymentMethodID: uuid.NewString(), TenantID: tenantID, Name: name, IsActive: true}
	if err := s.paymentMethodRepo.SavePaymentMethod(ctx, method); err != nil {
		s.LogError(ctx, err, "Failed to save payment method", slog.String("name", name))
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}
	return &method, nil
}

func (s *paymentMethodService) RenamePaymentMethod(ctx context.Context, tenantID, paymentMethodID, name string) (*domain.PaymentMethod, error) {
	if tenantID == "" {
		return nil, apperrors.ErrTenantUnavailable
	}
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	method, err := s.paymentMethodRepo.RenamePaymentMethod(ctx, tenantID, paymentMethodID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to rename payment method %s: %w", paymentMethodID, err)
	}
	return method, nil
}
