package service

import (
	"context"

	"golang-stock-summary/internal/summary/config"
	"golang-stock-summary/internal/summary/dto"
	"golang-stock-summary/internal/summary/repository"
	"golang-stock-summary/pkg/logger"
)

//go:generate mockgen -source=summary_generator.go -destination=mock_summary_generator.go -package=service

// SummaryGenerator turns a quote into a one sentence summary.
// Summarize never fails: every error resolves to FallbackSummary.
type SummaryGenerator interface {
	Summarize(ctx context.Context, quote dto.Quote) string
}

type summaryGenerator struct {
	chatRepo repository.ChatRepository
	cfg      *config.Config
	logger   *logger.Logger
}

// NewSummaryGenerator creates a SummaryGenerator on top of a chat repository.
func NewSummaryGenerator(chatRepo repository.ChatRepository, cfg *config.Config, log *logger.Logger) SummaryGenerator {
	return &summaryGenerator{
		chatRepo: chatRepo,
		cfg:      cfg,
		logger:   log,
	}
}

func (g *summaryGenerator) Summarize(ctx context.Context, quote dto.Quote) string {
	if !g.chatRepo.Configured() {
		g.logger.InfoContext(ctx, "LLM token not configured, using fallback summary", logger.StringField("symbol", quote.Symbol))
		return FallbackSummary(quote)
	}

	g.logger.DebugContext(ctx, "Calling LLM endpoint",
		logger.StringField("endpoint", g.cfg.LLM.Endpoint),
		logger.StringField("model", g.cfg.LLM.Model),
		logger.StringField("provider", g.cfg.LLM.Provider),
	)

	resp, err := g.chatRepo.Complete(ctx, buildSummaryRequest(g.cfg.LLM.Model, quote))
	if err != nil {
		g.logger.WarnContext(ctx, "LLM request failed, using fallback summary", logger.ErrorField(err), logger.StringField("symbol", quote.Symbol))
		return FallbackSummary(quote)
	}

	if len(resp.Choices) == 0 {
		g.logger.WarnContext(ctx, "LLM returned no choices, using fallback summary", logger.StringField("symbol", quote.Symbol))
		return FallbackSummary(quote)
	}

	content := resp.Choices[0].Message.Content
	if content == nil {
		return noSummaryGenerated
	}
	return *content
}
