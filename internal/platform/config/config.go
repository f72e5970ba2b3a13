package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderModeLatest = "latest"
	ProviderModePair   = "pair"

	DirectionQuoteToReference = "quote_to_reference"
	DirectionReferenceToQuote = "reference_to_quote"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Identity provider token verification
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// Rate provider
	FxAPIKey            string
	FxAPIBaseURL        string
	FxProviderMode      string
	FxProviderDirection string
	FxProviderTimeout   time.Duration
	FxCacheMaxAge       time.Duration
	ReferenceCurrencies []domain.CurrencyCode

	CORSAllowedOrigins []string
	RateLimit          string
	RedisURL           string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("JWT_AUDIENCE", "authenticated")
	v.SetDefault("FX_API_KEY", "")
	v.SetDefault("FX_API_BASE_URL", "https://v6.exchangerate-api.com/v6")
	v.SetDefault("FX_PROVIDER_MODE", ProviderModeLatest)
	v.SetDefault("FX_PROVIDER_DIRECTION", DirectionQuoteToReference)
	v.SetDefault("FX_PROVIDER_TIMEOUT", "5s")
	v.SetDefault("FX_CACHE_MAX_AGE", "12h")
	v.SetDefault("REFERENCE_CURRENCIES", "USD,ARS")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("REDIS_URL", "")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         v.GetString("PGSQL_URL"),
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTIssuer:           v.GetString("JWT_ISSUER"),
		JWTAudience:         v.GetString("JWT_AUDIENCE"),
		FxAPIKey:            v.GetString("FX_API_KEY"),
		FxAPIBaseURL:        strings.TrimRight(v.GetString("FX_API_BASE_URL"), "/"),
		FxProviderMode:      strings.ToLower(v.GetString("FX_PROVIDER_MODE")),
		FxProviderDirection: strings.ToLower(v.GetString("FX_PROVIDER_DIRECTION")),
		RateLimit:           v.GetString("RATE_LIMIT"),
		RedisURL:            v.GetString("REDIS_URL"),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set to verify identity provider tokens")
	}
	if cfg.FxAPIKey == "" {
		slog.Warn("FX_API_KEY not set, rate lookups that miss the cache will fail")
	}

	switch cfg.FxProviderMode {
	case ProviderModeLatest, ProviderModePair:
	default:
		return nil, fmt.Errorf("invalid FX_PROVIDER_MODE %q, expected %q or %q", cfg.FxProviderMode, ProviderModeLatest, ProviderModePair)
	}
	switch cfg.FxProviderDirection {
	case DirectionQuoteToReference, DirectionReferenceToQuote:
	default:
		return nil, fmt.Errorf("invalid FX_PROVIDER_DIRECTION %q, expected %q or %q", cfg.FxProviderDirection, DirectionQuoteToReference, DirectionReferenceToQuote)
	}

	var err error
	if cfg.FxProviderTimeout, err = parsePositiveDuration("FX_PROVIDER_TIMEOUT", v.GetString("FX_PROVIDER_TIMEOUT")); err != nil {
		return nil, err
	}
	if cfg.FxCacheMaxAge, err = parsePositiveDuration("FX_CACHE_MAX_AGE", v.GetString("FX_CACHE_MAX_AGE")); err != nil {
		return nil, err
	}
	if cfg.ReferenceCurrencies, err = ParseReferenceCurrencies(v.GetString("REFERENCE_CURRENCIES")); err != nil {
		return nil, err
	}
	if err := validateProviderShape(cfg.FxProviderMode, cfg.ReferenceCurrencies); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseReferenceCurrencies parses a comma separated reference set.
// USD is mandatory and ARS is the only optional second reference.
func ParseReferenceCurrencies(raw string) ([]domain.CurrencyCode, error) {
	var refs []domain.CurrencyCode
	seen := make(map[domain.CurrencyCode]bool)
	for _, part := range splitList(raw) {
		code, err := domain.ParseCurrencyCode(part)
		if err != nil {
			return nil, fmt.Errorf("invalid REFERENCE_CURRENCIES: %w", err)
		}
		if code != domain.USD && code != domain.ARS {
			return nil, fmt.Errorf("invalid REFERENCE_CURRENCIES: %s is not supported as a reference currency", code)
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		refs = append(refs, code)
	}
	if !seen[domain.USD] {
		return nil, fmt.Errorf("invalid REFERENCE_CURRENCIES %q: USD is required", raw)
	}
	return refs, nil
}

// validateProviderShape requires every reference rate to arrive in one provider call.
// The pair endpoint answers a single rate, so it only serves a single reference.
func validateProviderShape(mode string, refs []domain.CurrencyCode) error {
	if mode == ProviderModePair && len(refs) > 1 {
		return fmt.Errorf("FX_PROVIDER_MODE %q supports one reference currency, got %d; use %q", mode, len(refs), ProviderModeLatest)
	}
	return nil
}

func parsePositiveDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
