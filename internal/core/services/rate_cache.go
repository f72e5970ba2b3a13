package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// DefaultRateMaxAge is the freshness window of cached rates.
const DefaultRateMaxAge = 12 * time.Hour

// RateCache stores the last fetched rates of every quote currency.
// Entries are global across tenants. Only the rate resolver writes them.
type RateCache struct {
	BaseService
	repo   portsrepo.FxRateRepositoryFacade
	maxAge time.Duration
	now    Clock
}

// NewRateCache creates a RateCache over the fx_rates repository.
// A non-positive maxAge falls back to DefaultRateMaxAge.
func NewRateCache(repo portsrepo.FxRateRepositoryFacade, maxAge time.Duration, now Clock) *RateCache {
	if maxAge <= 0 {
		maxAge = DefaultRateMaxAge
	}
	if now == nil {
		now = time.Now
	}
	return &RateCache{repo: repo, maxAge: maxAge, now: now}
}

// MaxAge returns the configured freshness window.
func (c *RateCache) MaxAge() time.Duration {
	return c.maxAge
}

// Lookup returns the stored entry for the quote currency, or an error matching apperrors.ErrNotFound.
func (c *RateCache) Lookup(ctx context.Context, quote domain.CurrencyCode) (*domain.FxRate, error) {
	entry, err := c.repo.FindFxRate(ctx, quote)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cached rate for %s: %w", quote, err)
	}
	return entry, nil
}

// IsFresh reports whether now - entry.FetchedAt <= maxAge.
func (c *RateCache) IsFresh(entry *domain.FxRate, maxAge time.Duration) bool {
	if entry == nil {
		return false
	}
	return c.now().Sub(entry.FetchedAt) <= maxAge
}

// Store upserts the entry by quote currency.
func (c *RateCache) Store(ctx context.Context, entry domain.FxRate) error {
	if err := c.repo.UpsertFxRate(ctx, entry); err != nil {
		return fmt.Errorf("failed to store rate for %s: %w", entry.QuoteCurrency, err)
	}
	return nil
}
