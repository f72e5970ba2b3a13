// Package exchangerateapi fetches conversion rates from an exchangerate-api.com v6 compatible service.
package exchangerateapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the public v6 endpoint.
	DefaultBaseURL = "https://v6.exchangerate-api.com/v6"

	ModeLatest = "latest"
	ModePair   = "pair"

	// DirectionQuoteToReference asks for rates with the quote currency as base.
	DirectionQuoteToReference = "quote_to_reference"
	// DirectionReferenceToQuote asks with the reference as base and inverts the answer.
	DirectionReferenceToQuote = "reference_to_quote"

	providerName = "exchangerate-api"

	// maxBodyBytes bounds how much of a response is read.
	maxBodyBytes = 1 << 20
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=exchangerateapi_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a rate provider backed by the exchangerate-api v6 REST API.
type Client struct {
	// baseURL is the base URL for the API, without the key.
	baseURL string
	// apiKey is sent as a path segment.
	apiKey     string
	mode       string
	direction  string
	httpClient HTTPClient
}

// ClientOption is a configuration option for the client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMode selects the latest or pair endpoint.
func WithMode(mode string) ClientOption {
	return func(c *Client) {
		c.mode = mode
	}
}

// WithDirection selects which side of the pair is the base of the request.
func WithDirection(direction string) ClientOption {
	return func(c *Client) {
		c.direction = direction
	}
}

// NewClient creates a new client. Request timeouts come from the caller's context.
func NewClient(apiKey string, options ...ClientOption) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		mode:       ModeLatest,
		direction:  DirectionQuoteToReference,
		httpClient: http.DefaultClient,
	}
	for _, option := range options {
		option(c)
	}

	switch c.mode {
	case ModeLatest, ModePair:
	default:
		return nil, fmt.Errorf("unknown mode %q", c.mode)
	}
	switch c.direction {
	case DirectionQuoteToReference, DirectionReferenceToQuote:
	default:
		return nil, fmt.Errorf("unknown direction %q", c.direction)
	}
	return c, nil
}

var _ providers.RateProvider = (*Client)(nil)

func (c *Client) Name() string { return providerName }

// latestResponse is the body of /latest/{base}.
type latestResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	BaseCode        string                     `json:"base_code"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// pairResponse is the body of /pair/{base}/{target}.
type pairResponse struct {
	Result         string           `json:"result"`
	ErrorType      string           `json:"error-type"`
	ConversionRate *decimal.Decimal `json:"conversion_rate"`
}

// FetchRates returns the rate of one unit of quote in every reference currency.
func (c *Client) FetchRates(ctx context.Context, quote domain.CurrencyCode, refs []domain.CurrencyCode) (domain.RateSet, error) {
	if c.apiKey == "" {
		return nil, apperrors.NewRateUnavailableError("no API key configured", nil)
	}
	if len(refs) == 0 {
		return domain.RateSet{}, nil
	}

	switch {
	case c.mode == ModeLatest && c.direction == DirectionQuoteToReference:
		return c.fetchLatestFromQuote(ctx, quote, refs)
	case c.mode == ModeLatest:
		return c.fetchLatestFromReferences(ctx, quote, refs)
	default:
		return c.fetchPairs(ctx, quote, refs)
	}
}

// fetchLatestFromQuote issues one request with quote as base and reads every reference off it.
func (c *Client) fetchLatestFromQuote(ctx context.Context, quote domain.CurrencyCode, refs []domain.CurrencyCode) (domain.RateSet, error) {
	var body latestResponse
	if err := c.get(ctx, &body, "latest", string(quote)); err != nil {
		return nil, err
	}
	if err := checkResult(body.Result, body.ErrorType); err != nil {
		return nil, err
	}

	rates := make(domain.RateSet, len(refs))
	for _, ref := range refs {
		rate, ok := body.ConversionRates[string(ref)]
		if !ok || !rate.IsPositive() {
			return nil, apperrors.NewRateUnavailableError(fmt.Sprintf("response has no %s rate for %s", ref, quote), nil)
		}
		rates[ref] = rate
	}
	return rates, nil
}

// fetchLatestFromReferences issues one request with the first reference as base and
// derives every reference rate as conversion_rates[ref] / conversion_rates[quote].
func (c *Client) fetchLatestFromReferences(ctx context.Context, quote domain.CurrencyCode, refs []domain.CurrencyCode) (domain.RateSet, error) {
	base := refs[0]
	var body latestResponse
	if err := c.get(ctx, &body, "latest", string(base)); err != nil {
		return nil, err
	}
	if err := checkResult(body.Result, body.ErrorType); err != nil {
		return nil, err
	}

	rateOf := func(code domain.CurrencyCode) (decimal.Decimal, bool) {
		if code == base {
			return decimal.NewFromInt(1), true
		}
		rate, ok := body.ConversionRates[string(code)]
		return rate, ok && rate.IsPositive()
	}

	inverse, ok := rateOf(quote)
	if !ok {
		return nil, apperrors.NewRateUnavailableError(fmt.Sprintf("response for %s has no %s rate", base, quote), nil)
	}
	rates := make(domain.RateSet, len(refs))
	for _, ref := range refs {
		rate, ok := rateOf(ref)
		if !ok {
			return nil, apperrors.NewRateUnavailableError(fmt.Sprintf("response for %s has no %s rate", base, ref), nil)
		}
		rates[ref] = rate.Div(inverse)
	}
	return rates, nil
}

// fetchPairs issues one pair request per reference. Configuration only allows it
// with a single reference currency.
func (c *Client) fetchPairs(ctx context.Context, quote domain.CurrencyCode, refs []domain.CurrencyCode) (domain.RateSet, error) {
	rates := make(domain.RateSet, len(refs))
	for _, ref := range refs {
		base, target := string(quote), string(ref)
		if c.direction == DirectionReferenceToQuote {
			base, target = target, base
		}

		var body pairResponse
		if err := c.get(ctx, &body, "pair", base, target); err != nil {
			return nil, err
		}
		if err := checkResult(body.Result, body.ErrorType); err != nil {
			return nil, err
		}
		if body.ConversionRate == nil || !body.ConversionRate.IsPositive() {
			return nil, apperrors.NewRateUnavailableError(fmt.Sprintf("pair %s/%s has no usable rate", base, target), nil)
		}

		rate := *body.ConversionRate
		if c.direction == DirectionReferenceToQuote {
			rate = decimal.NewFromInt(1).Div(rate)
		}
		rates[ref] = rate
	}
	return rates, nil
}

func (c *Client) get(ctx context.Context, out any, segments ...string) error {
	endpoint, err := url.JoinPath(c.baseURL, append([]string{c.apiKey}, segments...)...)
	if err != nil {
		return apperrors.NewRateUnavailableError("building request URL", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return apperrors.NewRateUnavailableError("creating request", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		// The URL carries the API key, so only the cause is kept.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return apperrors.NewRateUnavailableError("performing request", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBodyBytes))
		return apperrors.NewRateUnavailableError(fmt.Sprintf("unexpected status code: %d", res.StatusCode), nil)
	}
	if err := json.NewDecoder(io.LimitReader(res.Body, maxBodyBytes)).Decode(out); err != nil {
		return apperrors.NewRateUnavailableError("decoding response", err)
	}
	return nil
}

func checkResult(result, errorType string) error {
	if result == "success" {
		return nil
	}
	if errorType == "" {
		errorType = "unknown"
	}
	return apperrors.NewRateUnavailableError(fmt.Sprintf("provider returned result=%q error-type=%q", result, errorType), nil)
}
