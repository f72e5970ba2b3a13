package pgsql

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFxRateRepository struct {
	BaseRepository
}

// newPgxFxRateRepository creates a new repository for the fx_rates cache table.
func newPgxFxRateRepository(pool *pgxpool.Pool) portsrepo.FxRateRepositoryFacade {
	return &PgxFxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FxRateRepositoryFacade = (*PgxFxRateRepository)(nil)

func (r *PgxFxRateRepository) FindFxRate(ctx context.Context, quoteCurrency domain.CurrencyCode) (*domain.FxRate, error) {
	query := `
		SELECT quote_currency, rate_to_usd, rate_to_ars, fetched_at
		FROM fx_rates
		WHERE quote_currency = $1;
	`
	var m models.FxRate
	err := r.Pool.QueryRow(ctx, query, string(quoteCurrency)).Scan(
		&m.QuoteCurrency,
		&m.RateToUSD,
		&m.RateToARS,
		&m.FetchedAt,
	)
	if err != nil {
		return nil, translateReadError(err, "failed to find fx rate for "+string(quoteCurrency), "no cached rate for "+string(quoteCurrency))
	}

	rate := mapping.ToDomainFxRate(m)
	return &rate, nil
}

// UpsertFxRate writes the whole entry in one statement so readers never observe a partial row.
func (r *PgxFxRateRepository) UpsertFxRate(ctx context.Context, rate domain.FxRate) error {
	m := mapping.ToModelFxRate(rate)
	query := `
		INSERT INTO fx_rates (quote_currency, rate_to_usd, rate_to_ars, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (quote_currency) DO UPDATE
		SET rate_to_usd = EXCLUDED.rate_to_usd,
		    rate_to_ars = EXCLUDED.rate_to_ars,
		    fetched_at = EXCLUDED.fetched_at;
	`
	_, err := r.Pool.Exec(ctx, query, m.QuoteCurrency, m.RateToUSD, m.RateToARS, m.FetchedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert fx rate for "+m.QuoteCurrency, err)
	}
	return nil
}
