package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/core/ports/providers"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/platform/metrics"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// DefaultProviderTimeout bounds a single provider round trip.
const DefaultProviderTimeout = 5 * time.Second

// rateResolver implements the RateResolverSvc interface
type rateResolver struct {
	BaseService
	cache    *RateCache
	provider providers.RateProvider
	refs     []domain.CurrencyCode
	timeout  time.Duration
	metrics  *metrics.RateMetrics
	now      Clock

	// group collapses concurrent fetches of the same quote currency.
	group singleflight.Group
}

// RateResolverOption is a functional option for configuring the rate resolver
type RateResolverOption func(*rateResolver)

// WithProviderTimeout bounds every provider call.
func WithProviderTimeout(d time.Duration) RateResolverOption {
	return func(r *rateResolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithRateMetrics records lookups and fetches on m.
func WithRateMetrics(m *metrics.RateMetrics) RateResolverOption {
	return func(r *rateResolver) {
		r.metrics = m
	}
}

// WithResolverClock overrides the clock used to stamp fetched entries.
func WithResolverClock(now Clock) RateResolverOption {
	return func(r *rateResolver) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRateResolver creates a resolver for the given reference currencies.
func NewRateResolver(cache *RateCache, provider providers.RateProvider, refs []domain.CurrencyCode, options ...RateResolverOption) portssvc.RateResolverSvc {
	r := &rateResolver{
		cache:    cache,
		provider: provider,
		refs:     append([]domain.CurrencyCode(nil), refs...),
		timeout:  DefaultProviderTimeout,
		now:      time.Now,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ portssvc.RateResolverSvc = (*rateResolver)(nil)

func (r *rateResolver) ReferenceCurrencies() []domain.CurrencyCode {
	return append([]domain.CurrencyCode(nil), r.refs...)
}

// Resolve returns the rate of quoteCurrency into every reference currency.
func (r *rateResolver) Resolve(ctx context.Context, quoteCurrency string) (domain.RateSet, error) {
	quote, err := domain.ParseCurrencyCode(quoteCurrency)
	if err != nil {
		return nil, err
	}

	// Single-reference deployments never look anything up for the reference itself.
	if len(r.refs) == 1 && r.refs[0] == quote {
		r.metrics.ObserveLookup(metrics.LookupIdentity)
		return domain.RateSet{quote: decimal.NewFromInt(1)}, nil
	}

	// The shared call must not die with whichever caller happened to start it.
	shared := context.WithoutCancel(ctx)
	v, err, _ := r.group.Do(string(quote), func() (any, error) {
		return r.resolve(shared, quote)
	})
	if err != nil {
		return nil, err
	}
	return v.(domain.RateSet).Clone(), nil
}

func (r *rateResolver) resolve(ctx context.Context, quote domain.CurrencyCode) (domain.RateSet, error) {
	remote := r.remoteRefs(quote)

	entry, err := r.cache.Lookup(ctx, quote)
	switch {
	case err == nil:
		if entry.Rates.Covers(remote) && r.cache.IsFresh(entry, r.cache.MaxAge()) {
			r.metrics.ObserveLookup(metrics.LookupHit)
			r.LogDebug(ctx, "Using cached rate", slog.String("quote_currency", string(quote)), slog.Time("fetched_at", entry.FetchedAt))
			return r.withIdentity(quote, entry.Rates, remote), nil
		}
		r.metrics.ObserveLookup(metrics.LookupStale)
	case errors.Is(err, apperrors.ErrNotFound):
		r.metrics.ObserveLookup(metrics.LookupMiss)
	default:
		r.LogError(ctx, err, "Failed to read rate cache", slog.String("quote_currency", string(quote)))
		return nil, err
	}

	fetched, err := r.fetch(ctx, quote, remote)
	if err != nil {
		return nil, err
	}

	rates := r.withIdentity(quote, fetched, remote)
	if err := r.cache.Store(ctx, domain.FxRate{QuoteCurrency: quote, Rates: rates, FetchedAt: r.now()}); err != nil {
		r.LogError(ctx, err, "Failed to persist fetched rate", slog.String("quote_currency", string(quote)))
		return nil, err
	}

	r.LogInfo(ctx, "Fetched fresh rate", slog.String("quote_currency", string(quote)), slog.String("provider", r.provider.Name()))
	return rates, nil
}

func (r *rateResolver) fetch(ctx context.Context, quote domain.CurrencyCode, remote []domain.CurrencyCode) (domain.RateSet, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rates, err := r.provider.FetchRates(fetchCtx, quote, remote)
	if err == nil && !rates.Covers(remote) {
		err = apperrors.NewRateUnavailableError(fmt.Sprintf("provider response for %s is missing a reference rate", quote), nil)
	}
	r.metrics.ObserveFetch(r.provider.Name(), err)
	if err != nil {
		r.LogWarn(ctx, err, "Rate provider failed", slog.String("quote_currency", string(quote)), slog.String("provider", r.provider.Name()))
		if errors.Is(err, apperrors.ErrRateUnavailable) {
			return nil, err
		}
		return nil, apperrors.NewRateUnavailableError(fmt.Sprintf("provider %s failed for %s", r.provider.Name(), quote), err)
	}
	return rates, nil
}

// remoteRefs are the reference currencies that need an actual rate for quote.
func (r *rateResolver) remoteRefs(quote domain.CurrencyCode) []domain.CurrencyCode {
	out := make([]domain.CurrencyCode, 0, len(r.refs))
	for _, ref := range r.refs {
		if ref != quote {
			out = append(out, ref)
		}
	}
	return out
}

// withIdentity keeps only the reference rates and pins quote's own rate to 1.
func (r *rateResolver) withIdentity(quote domain.CurrencyCode, rates domain.RateSet, remote []domain.CurrencyCode) domain.RateSet {
	out := make(domain.RateSet, len(r.refs))
	for _, ref := range remote {
		out[ref] = rates[ref]
	}
	if len(remote) < len(r.refs) {
		out[quote] = decimal.NewFromInt(1)
	}
	return out
}
