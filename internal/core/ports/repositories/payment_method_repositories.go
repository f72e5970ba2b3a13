package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// PaymentMethodReader defines read operations for payment methods
type PaymentMethodReader interface {
	// ListActivePaymentMethods returns the active payment methods of a tenant ordered by name.
	ListActivePaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error)
}

// PaymentMethodWriter defines write operations for payment methods
type PaymentMethodWriter interface {
	SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error
	RenamePaymentMethod(ctx context.Context, tenantID, paymentMethodID, name string) (*domain.PaymentMethod, error)
}

// PaymentMethodRepositoryFacade combines all payment method repository interfaces
type PaymentMethodRepositoryFacade interface {
	PaymentMethodReader
	PaymentMethodWriter
}
