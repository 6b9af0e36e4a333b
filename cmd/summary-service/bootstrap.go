package main

import (
	"context"
	"fmt"
	"log"

	"golang-stock-summary/internal/summary/config"
	"golang-stock-summary/internal/summary/repository"
	"golang-stock-summary/internal/summary/service"
	"golang-stock-summary/pkg/common"
	"golang-stock-summary/pkg/logger"
	"golang-stock-summary/pkg/trace"
)

// app bundles everything a command needs.
type app struct {
	cfg          *config.Config
	logger       *logger.Logger
	stockService service.StockSummaryService
	shutdown     trace.ShutdownFunc
}

// bootstrap loads configuration and wires logger, tracing, repositories and services.
func bootstrap(ctx context.Context, path string) *app {
	// Load configuration
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize tracer
	shutdown, err := trace.Init(trace.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
		PrettyPrint: cfg.Tracing.PrettyPrint,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer", logger.ErrorField(err))
	}

	if !cfg.AlphaVantage.Configured() {
		appLogger.Warn("AlphaVantageKey is not configured, every summary request will fail")
	}
	if cfg.LLM.Token == "" {
		appLogger.Warn("LLM token is not configured, summaries will use the fallback sentence")
	}

	// Initialize repositories
	quoteRepo := repository.NewAlphaVantageRepository(cfg, appLogger)
	chatRepo, err := newChatRepository(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize chat repository", logger.ErrorField(err), logger.StringField("provider", cfg.LLM.Provider))
	}

	// Initialize services
	summarizer := service.NewSummaryGenerator(chatRepo, cfg, appLogger)
	stockSvc := service.NewStockSummaryService(quoteRepo, summarizer, appLogger)

	return &app{
		cfg:          cfg,
		logger:       appLogger,
		stockService: stockSvc,
		shutdown:     shutdown,
	}
}

func newChatRepository(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.ChatRepository, error) {
	switch cfg.LLM.Provider {
	case common.LLMProviderOpenAI:
		return repository.NewOpenAIChatRepository(cfg, log), nil
	case common.LLMProviderGemini:
		return repository.NewGeminiChatRepository(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("invalid llm provider %q", cfg.LLM.Provider)
	}
}

func (a *app) close(ctx context.Context) {
	if err := a.shutdown(ctx); err != nil {
		a.logger.Error("Failed to shut down tracer", logger.ErrorField(err))
	}
	_ = a.logger.Sync()
}
