package pgsql

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentMethodRepository struct {
	BaseRepository
}

func newPgxPaymentMethodRepository(pool *pgxpool.Pool) portsrepo.PaymentMethodRepositoryFacade {
	return &PgxPaymentMethodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentMethodRepositoryFacade = (*PgxPaymentMethodRepository)(nil)

func (r *PgxPaymentMethodRepository) ListActivePaymentMethods(ctx context.Context, tenantID string) ([]domain.PaymentMethod, error) {
	query := `
		SELECT id, tenant_id, name, is_active
		FROM payment_methods
		WHERE tenant_id = $1 AND is_active
		ORDER BY name, id;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payment methods", err)
	}
	methods, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PaymentMethod, error) {
		var pm domain.PaymentMethod
		err := row.Scan(&pm.PaymentMethodID, &pm.TenantID, &pm.Name, &pm.IsActive)
		return pm, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect payment method rows", err)
	}
	return methods, nil
}

func (r *PgxPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) error {
	query := `INSERT INTO payment_methods (id, tenant_id, name, is_active) VALUES ($1, $2, $3, $4);`
	_, err := r.Pool.Exec(ctx, query, method.PaymentMethodID, method.TenantID, method.Name, method.IsActive)
	if err != nil {
		return translateWriteError(err, "failed to save payment method "+method.PaymentMethodID, "payment method "+method.Name+" already exists")
	}
	return nil
}

func (r *PgxPaymentMethodRepository) RenamePaymentMethod(ctx context.Context, tenantID, paymentMethodID, name string) (*domain.PaymentMethod, error) {
	query := `
		UPDATE payment_methods SET name = $3
		WHERE tenant_id = $1 AND id = $2
		RETURNING id, tenant_id, name, is_active;
	`
	var pm domain.PaymentMethod
	err := r.Pool.QueryRow(ctx, query, tenantID, paymentMethodID, name).Scan(&pm.PaymentMethodID, &pm.TenantID, &pm.Name, &pm.IsActive)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, apperrors.NewConflictError("payment method " + name + " already exists")
		}
		return nil, translateReadError(err, "failed to rename payment method "+paymentMethodID, "payment method "+paymentMethodID+" not found")
	}
	return &pm, nil
}
