package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	delivery "golang-stock-summary/internal/summary/delivery/http"
	_ "golang-stock-summary/internal/summary/docs"
	"golang-stock-summary/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the stock summary API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := bootstrap(ctx, configPath)
	defer a.close(context.Background())

	a.logger.Info("Starting Stock Summary Service",
		logger.Field("name", a.cfg.App.Name),
		logger.StringField("env", a.cfg.App.Env),
		logger.StringField("llm_provider", a.cfg.LLM.Provider),
		logger.StringField("llm_model", a.cfg.LLM.Model),
	)

	// Initialize Echo server
	e := echo.New()
	delivery.Setup(e, a.logger)

	// Initialize handlers and routes
	delivery.NewHealthHandler().RegisterRoutes(e)
	apiGroup := e.Group("/api")
	stockHandler := delivery.NewStockHandler(a.stockService, a.logger)
	stockHandler.RegisterRoutes(apiGroup.Group("/stock"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", a.cfg.API.Host, a.cfg.API.Port)
		a.logger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	a.logger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	a.logger.Info("Server exiting")
}

// @title Stock Summary API
// @version 1.0
// @description Stock quotes with a one sentence AI summary.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{
		Use:   "summary-service",
		Short: "Stock quotes with a one sentence AI summary",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-summary.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, quoteCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing summary-service CLI: %s\n", err)
		os.Exit(1)
	}
}
