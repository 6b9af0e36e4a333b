package service

import (
	"context"
	"fmt"

	"golang-stock-summary/internal/summary/dto"
	"golang-stock-summary/internal/summary/repository"
	"golang-stock-summary/pkg/logger"
	"golang-stock-summary/pkg/trace"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=stock_summary_service.go -destination=mock_stock_summary_service.go -package=service

// StockSummaryService combines a quote with its generated summary.
type StockSummaryService interface {
	GetStockSummary(ctx context.Context, symbol string) (*dto.StockSummaryResponse, error)
}

type stockSummaryService struct {
	quoteRepo  repository.QuoteRepository
	summarizer SummaryGenerator
	logger     *logger.Logger
}

// NewStockSummaryService creates a new stock summary service.
func NewStockSummaryService(quoteRepo repository.QuoteRepository, summarizer SummaryGenerator, log *logger.Logger) StockSummaryService {
	return &stockSummaryService{
		quoteRepo:  quoteRepo,
		summarizer: summarizer,
		logger:     log,
	}
}

// GetStockSummary fetches the quote and then the summary. Errors come only from the quote
// lookup and wrap the repository sentinels.
func (s *stockSummaryService) GetStockSummary(ctx context.Context, symbol string) (*dto.StockSummaryResponse, error) {
	ctx, span := trace.StartSpan(ctx, "stock-summary", attribute.String("symbol", symbol))
	defer span.End()

	quote, err := s.quoteRepo.GetGlobalQuote(ctx, symbol)
	if err != nil {
		trace.RecordError(span, err)
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}

	summary := s.summarizer.Summarize(ctx, *quote)

	s.logger.InfoContext(ctx, "Stock summary generated", logger.StringField("symbol", quote.Symbol), logger.StringField("price", quote.Price))
	return dto.NewStockSummaryResponse(*quote, summary), nil
}
