package dto

// StockSummaryResponse is the body returned by GET /api/stock/summary.
type StockSummaryResponse struct {
	Symbol        string `json:"Symbol" example:"AAPL"`
	Price         string `json:"Price" example:"150.00"`
	Change        string `json:"Change" example:"1.50"`
	PercentChange string `json:"PercentChange" example:"1.00%"`
	AISummary     string `json:"aiSummary" example:"Stock AAPL is currently priced at $150.00, with a change of 1.50 (1.00%)."`
}

// NewStockSummaryResponse merges a quote with its summary.
func NewStockSummaryResponse(q Quote, summary string) *StockSummaryResponse {
	return &StockSummaryResponse{
		Symbol:        q.Symbol,
		Price:         q.Price,
		Change:        q.Change,
		PercentChange: q.PercentChange,
		AISummary:     summary,
	}
}

// HealthResponse is the body returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
