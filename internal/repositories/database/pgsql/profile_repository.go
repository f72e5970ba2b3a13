package pgsql

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProfileRepository struct {
	BaseRepository
}

func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileReader {
	return &PgxProfileRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProfileReader = (*PgxProfileRepository)(nil)

func (r *PgxProfileRepository) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT id, display_name FROM profiles ORDER BY display_name NULLS LAST, id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query profiles", err)
	}
	profiles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Profile, error) {
		var p domain.Profile
		err := row.Scan(&p.UserID, &p.DisplayName)
		return p, err
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect profile rows", err)
	}
	return profiles, nil
}
