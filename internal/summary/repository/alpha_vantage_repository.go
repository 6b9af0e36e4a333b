package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"golang-stock-summary/internal/summary/config"
	"golang-stock-summary/internal/summary/dto"
	"golang-stock-summary/pkg/common"
	"golang-stock-summary/pkg/logger"
	"golang-stock-summary/pkg/trace"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
)

type alphaVantageRepository struct {
	client *resty.Client
	cfg    *config.Config
	logger *logger.Logger
}

// NewAlphaVantageRepository creates a QuoteRepository backed by the Alpha Vantage GLOBAL_QUOTE API.
func NewAlphaVantageRepository(cfg *config.Config, log *logger.Logger) QuoteRepository {
	client := resty.New()
	client.SetBaseURL(cfg.AlphaVantage.BaseURL)
	client.SetTimeout(cfg.AlphaVantage.Timeout)
	client.SetHeader("Accept", "application/json")

	return &alphaVantageRepository{
		client: client,
		cfg:    cfg,
		logger: log,
	}
}

func (r *alphaVantageRepository) GetGlobalQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	if !r.cfg.AlphaVantage.Configured() {
		return nil, ErrQuoteProviderNotConfigured
	}

	ctx, span := trace.StartSpan(ctx, "alpha-vantage.global-quote", attribute.String("symbol", symbol))
	defer span.End()

	r.logger.DebugContext(ctx, "Requesting global quote", logger.StringField("symbol", symbol), logger.StringField("base_url", r.cfg.AlphaVantage.BaseURL))

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": common.AlphaVantageGlobalQuote,
			"symbol":   symbol,
			"apikey":   r.cfg.AlphaVantage.APIKey,
		}).
		Get("/query")
	if err != nil {
		err = fmt.Errorf("%w: failed to send request to Alpha Vantage: %w", ErrUpstreamTransport, stripRequestURL(err))
		trace.RecordError(span, err)
		r.logger.ErrorContext(ctx, "Failed to send request to Alpha Vantage", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return nil, err
	}

	if !resp.IsSuccess() {
		err := fmt.Errorf("%w: received non-success response from Alpha Vantage: %d", ErrUpstreamTransport, resp.StatusCode())
		trace.RecordError(span, err)
		r.logger.ErrorContext(ctx, "Received non-success response from Alpha Vantage", logger.IntField("status_code", resp.StatusCode()), logger.StringField("symbol", symbol))
		return nil, err
	}

	var body dto.AlphaVantageGlobalQuoteResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		err = fmt.Errorf("%w: failed to decode Alpha Vantage response: %w", ErrUpstreamParse, err)
		trace.RecordError(span, err)
		r.logger.ErrorContext(ctx, "Failed to decode Alpha Vantage response", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return nil, err
	}

	if body.GlobalQuote.Empty() {
		if msg := firstNonEmpty(body.Note, body.Information, body.ErrorMessage); msg != "" {
			r.logger.WarnContext(ctx, "Alpha Vantage returned no quote", logger.StringField("symbol", symbol), logger.StringField("message", msg))
		}
		return nil, ErrQuoteNotFound
	}

	if missing := body.GlobalQuote.MissingFields(); len(missing) > 0 {
		err := fmt.Errorf("%w: Alpha Vantage quote is missing %v", ErrUpstreamParse, missing)
		trace.RecordError(span, err)
		r.logger.ErrorContext(ctx, "Incomplete Alpha Vantage quote", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return nil, err
	}

	quote := body.GlobalQuote
	return &dto.Quote{
		Symbol:        *quote.Symbol,
		Price:         *quote.Price,
		Change:        *quote.Change,
		PercentChange: *quote.ChangePercent,
	}, nil
}

// stripRequestURL drops the request URL from a client error. The query string carries the API key.
func stripRequestURL(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}
	host := ""
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		host = u.Host
	}
	return fmt.Errorf("%s %s: %w", urlErr.Op, host, urlErr.Err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
