package service

import (
	"errors"
	"fmt"
	"testing"

	"golang-stock-summary/internal/summary/config"
	"golang-stock-summary/internal/summary/dto"
	"golang-stock-summary/internal/summary/repository"
	"golang-stock-summary/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testQuote = dto.Quote{Symbol: "AAPL", Price: "150.00", Change: "1.50", PercentChange: "1.00%"}

const testFallback = "Stock AAPL is currently priced at $150.00, with a change of 1.50 (1.00%)."

func testConfig() *config.Config {
	return &config.Config{
		LLM: config.LLM{
			Provider: "openai",
			Token:    "token",
			Endpoint: "http://llm.local/v1/chat/completions",
			Model:    "gpt-4o-mini",
		},
	}
}

func ptr(s string) *string { return &s }

func TestFallbackSummary(t *testing.T) {
	t.Parallel()

	require.Equal(t, testFallback, FallbackSummary(testQuote))
}

func TestBuildSummaryPrompt(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"Summarize this stock update in one sentence: Stock AAPL is priced at 150.00, changed by 1.50 (1.00%).",
		BuildSummaryPrompt(testQuote))
}

func TestSummarize_NotConfigured(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	chatRepo := repository.NewMockChatRepository(ctrl)

	// Assert: no Complete call is expected.
	chatRepo.EXPECT().Configured().Return(false)

	gen := NewSummaryGenerator(chatRepo, testConfig(), logger.NewNop())
	require.Equal(t, testFallback, gen.Summarize(t.Context(), testQuote))
}

func TestSummarize_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	chatRepo := repository.NewMockChatRepository(ctrl)

	chatRepo.EXPECT().Configured().Return(true)
	chatRepo.EXPECT().
		Complete(gomock.Any(), dto.ChatRequest{
			Model: "gpt-4o-mini",
			Messages: []dto.Message{
				{Role: "system", Content: "You are a financial assistant that summarizes stock trends clearly."},
				{Role: "user", Content: "Summarize this stock update in one sentence: Stock AAPL is priced at 150.00, changed by 1.50 (1.00%)."},
			},
		}).
		Return(&dto.ChatResponse{Choices: []dto.Choice{
			{Message: dto.ResponseMessage{Content: ptr("Apple rose 1% to $150.")}},
			{Message: dto.ResponseMessage{Content: ptr("second choice")}},
		}}, nil)

	gen := NewSummaryGenerator(chatRepo, testConfig(), logger.NewNop())
	require.Equal(t, "Apple rose 1% to $150.", gen.Summarize(t.Context(), testQuote))
}

func TestSummarize_FallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp *dto.ChatResponse
		err  error
	}{
		{name: "transport error", err: fmt.Errorf("%w: dial tcp: refused", repository.ErrUpstreamTransport)},
		{name: "non-success status", err: fmt.Errorf("%w: 503", repository.ErrUpstreamTransport)},
		{name: "malformed json", err: fmt.Errorf("%w: invalid character", repository.ErrUpstreamParse)},
		{name: "unexpected error", err: errors.New("boom")},
		{name: "empty choices", resp: &dto.ChatResponse{Choices: []dto.Choice{}}},
		{name: "missing choices", resp: &dto.ChatResponse{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			chatRepo := repository.NewMockChatRepository(ctrl)
			chatRepo.EXPECT().Configured().Return(true)
			chatRepo.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(tt.resp, tt.err)

			gen := NewSummaryGenerator(chatRepo, testConfig(), logger.NewNop())
			require.Equal(t, testFallback, gen.Summarize(t.Context(), testQuote))
		})
	}
}

func TestSummarize_MissingContent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	chatRepo := repository.NewMockChatRepository(ctrl)
	chatRepo.EXPECT().Configured().Return(true)
	chatRepo.EXPECT().Complete(gomock.Any(), gomock.Any()).
		Return(&dto.ChatResponse{Choices: []dto.Choice{{Message: dto.ResponseMessage{Role: "assistant"}}}}, nil)

	gen := NewSummaryGenerator(chatRepo, testConfig(), logger.NewNop())
	require.Equal(t, "No summary generated.", gen.Summarize(t.Context(), testQuote))
}
