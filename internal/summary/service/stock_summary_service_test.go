package service

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang-stock-summary/internal/summary/config"
	"golang-stock-summary/internal/summary/dto"
	"golang-stock-summary/internal/summary/repository"
	"golang-stock-summary/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetStockSummary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	quoteRepo := repository.NewMockQuoteRepository(ctrl)
	summarizer := NewMockSummaryGenerator(ctrl)

	gomock.InOrder(
		quoteRepo.EXPECT().GetGlobalQuote(gomock.Any(), "AAPL").Return(&testQuote, nil),
		summarizer.EXPECT().Summarize(gomock.Any(), testQuote).Return("summary"),
	)

	svc := NewStockSummaryService(quoteRepo, summarizer, logger.NewNop())
	resp, err := svc.GetStockSummary(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, &dto.StockSummaryResponse{
		Symbol:        "AAPL",
		Price:         "150.00",
		Change:        "1.50",
		PercentChange: "1.00%",
		AISummary:     "summary",
	}, resp)
}

func TestGetStockSummary_QuoteErrors(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{
		repository.ErrQuoteProviderNotConfigured,
		repository.ErrQuoteNotFound,
		repository.ErrUpstreamTransport,
		repository.ErrUpstreamParse,
	} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			quoteRepo := repository.NewMockQuoteRepository(ctrl)
			summarizer := NewMockSummaryGenerator(ctrl)

			// Assert: the summarizer is never reached.
			quoteRepo.EXPECT().GetGlobalQuote(gomock.Any(), "ZZZZ").Return(nil, sentinel)

			svc := NewStockSummaryService(quoteRepo, summarizer, logger.NewNop())
			resp, err := svc.GetStockSummary(t.Context(), "ZZZZ")
			require.ErrorIs(t, err, sentinel)
			require.Nil(t, resp)
		})
	}
}

func TestGetStockSummary_EndToEnd_NoLLMToken(t *testing.T) {
	t.Parallel()

	quoteSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Global Quote":{"01. symbol":"AAPL","05. price":"150.00","09. change":"1.50","10. change percent":"1.00%"}}`))
	}))
	t.Cleanup(quoteSrv.Close)

	var llmCalls atomic.Int32
	llmSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		llmCalls.Add(1)
	}))
	t.Cleanup(llmSrv.Close)

	cfg := &config.Config{
		AlphaVantage: config.AlphaVantage{APIKey: "key", BaseURL: quoteSrv.URL, Timeout: 5 * time.Second},
		LLM:          config.LLM{Provider: "openai", Endpoint: llmSrv.URL, Model: "gpt-4o-mini", Timeout: 5 * time.Second},
	}
	log := logger.NewNop()
	svc := NewStockSummaryService(
		repository.NewAlphaVantageRepository(cfg, log),
		NewSummaryGenerator(repository.NewOpenAIChatRepository(cfg, log), cfg, log),
		log,
	)

	resp, err := svc.GetStockSummary(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, testFallback, resp.AISummary)
	require.Equal(t, "AAPL", resp.Symbol)
	require.Zero(t, llmCalls.Load())
}

func TestGetStockSummary_EndToEnd_LLMFailure(t *testing.T) {
	t.Parallel()

	quoteSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Global Quote":{"01. symbol":"AAPL","05. price":"150.00","09. change":"1.50","10. change percent":"1.00%"}}`))
	}))
	t.Cleanup(quoteSrv.Close)

	llmSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	t.Cleanup(llmSrv.Close)

	cfg := &config.Config{
		AlphaVantage: config.AlphaVantage{APIKey: "key", BaseURL: quoteSrv.URL, Timeout: 5 * time.Second},
		LLM:          config.LLM{Provider: "openai", Token: "token", Endpoint: llmSrv.URL, Model: "gpt-4o-mini", Timeout: 5 * time.Second},
	}
	log := logger.NewNop()
	svc := NewStockSummaryService(
		repository.NewAlphaVantageRepository(cfg, log),
		NewSummaryGenerator(repository.NewOpenAIChatRepository(cfg, log), cfg, log),
		log,
	)

	resp, err := svc.GetStockSummary(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, testFallback, resp.AISummary)
}
