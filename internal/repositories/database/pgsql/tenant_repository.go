package pgsql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenants and their members.
func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryFacade {
	return &PgxTenantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TenantRepositoryFacade = (*PgxTenantRepository)(nil)

func (r *PgxTenantRepository) FindMembershipByUserID(ctx context.Context, userID string) (*domain.TenantUser, error) {
	// A user normally belongs to a single tenant; the oldest membership wins otherwise
	query := `
		SELECT tenant_id, user_id
		FROM tenant_users
		WHERE user_id = $1
		ORDER BY created_at
		LIMIT 1;
	`
	var tu domain.TenantUser
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&tu.TenantID, &tu.UserID)
	if err != nil {
		return nil, translateReadError(err, "failed to find tenant membership for user "+userID, "user "+userID+" has no tenant")
	}
	return &tu, nil
}

// JoinDefaultTenant adds the user to the default tenant inside a transaction.
func (r *PgxTenantRepository) JoinDefaultTenant(ctx context.Context, userID string) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := r.Rollback(ctx, tx); rbErr != nil {
				middleware.GetLoggerFromCtx(ctx).Error("failed to rollback join default tenant", slog.String("error", rbErr.Error()))
			}
		}
	}()

	var tenantID string
	err = tx.QueryRow(ctx, `SELECT id FROM tenants WHERE is_default LIMIT 1;`).Scan(&tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("no default tenant configured")
		}
		return apperrors.NewAppError(500, "failed to find default tenant", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO tenant_users (tenant_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (tenant_id, user_id) DO NOTHING;
	`, tenantID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to add user "+userID+" to default tenant", err)
	}

	return r.Commit(ctx, tx)
}
