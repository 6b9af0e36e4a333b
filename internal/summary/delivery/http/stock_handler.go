package http

import (
	"errors"
	"net/http"
	"strings"

	"golang-stock-summary/internal/summary/repository"
	"golang-stock-summary/internal/summary/service"
	"golang-stock-summary/pkg/common"
	"golang-stock-summary/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	msgQuoteProviderNotConfigured = "AlphaVantageKey is not configured. Please set the AlphaVantageKey in Azure App Service configuration."
	msgQuoteNotFound              = "No stock data found for this symbol."
	msgFetchFailedPrefix          = "Error fetching stock data: "
)

// StockHandler handles HTTP requests for stock summaries.
type StockHandler struct {
	stockService service.StockSummaryService
	logger       *logger.Logger
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService service.StockSummaryService, logger *logger.Logger) *StockHandler {
	return &StockHandler{stockService: stockService, logger: logger}
}

// RegisterRoutes registers the stock routes to the Echo group.
func (h *StockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/summary", h.GetStockSummary)
}

// GetStockSummary godoc
// @Summary Get a stock quote with an AI summary
// @Description Fetches the latest quote from Alpha Vantage and a one sentence summary from the configured LLM.
// @Tags stock
// @Produce  json
// @Produce  plain
// @Param   symbol  query    string  false  "Ticker symbol"  default(AAPL)
// @Success 200 {object} dto.StockSummaryResponse
// @Failure 404 {string} string "No stock data found for this symbol."
// @Failure 500 {string} string "Configuration or upstream error"
// @Router /stock/summary [get]
func (h *StockHandler) GetStockSummary(c echo.Context) error {
	symbol := strings.TrimSpace(c.QueryParam("symbol"))
	if symbol == "" {
		symbol = common.DefaultSymbol
	}

	ctx := c.Request().Context()
	resp, err := h.stockService.GetStockSummary(ctx, symbol)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, resp)
	case errors.Is(err, repository.ErrQuoteProviderNotConfigured):
		h.logger.ErrorContext(ctx, "Quote provider is not configured")
		return c.String(http.StatusInternalServerError, msgQuoteProviderNotConfigured)
	case errors.Is(err, repository.ErrQuoteNotFound):
		return c.String(http.StatusNotFound, msgQuoteNotFound)
	default:
		h.logger.ErrorContext(ctx, "Failed to get stock summary", logger.ErrorField(err), logger.StringField("symbol", symbol))
		return c.String(http.StatusInternalServerError, msgFetchFailedPrefix+err.Error())
	}
}
