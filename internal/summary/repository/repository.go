package repository

import (
	"context"
	"errors"

	"golang-stock-summary/internal/summary/dto"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

var (
	// ErrQuoteProviderNotConfigured means no usable Alpha Vantage key is set.
	ErrQuoteProviderNotConfigured = errors.New("quote provider api key is not configured")
	// ErrQuoteNotFound means the provider answered but had no quote for the symbol.
	ErrQuoteNotFound = errors.New("no stock data found for this symbol")
	// ErrUpstreamTransport covers network failures and non-success statuses.
	ErrUpstreamTransport = errors.New("upstream transport error")
	// ErrUpstreamParse covers bodies that do not match the expected shape.
	ErrUpstreamParse = errors.New("upstream parse error")
	// ErrChatNotConfigured means no LLM token is set.
	ErrChatNotConfigured = errors.New("chat provider token is not configured")
)

// QuoteRepository fetches stock quotes from a market-data provider.
type QuoteRepository interface {
	GetGlobalQuote(ctx context.Context, symbol string) (*dto.Quote, error)
}

// ChatRepository sends chat-completion requests to a language model.
type ChatRepository interface {
	// Configured reports whether a credential is available; when false Complete is not called.
	Configured() bool
	Complete(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error)
}
