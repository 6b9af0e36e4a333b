package service

import (
	"fmt"

	"golang-stock-summary/internal/summary/dto"
)

const (
	systemPrompt = "You are a financial assistant that summarizes stock trends clearly."

	noSummaryGenerated = "No summary generated."
)

// BuildSummaryPrompt builds the user prompt asking for a one sentence summary.
func BuildSummaryPrompt(q dto.Quote) string {
	return fmt.Sprintf("Summarize this stock update in one sentence: Stock %s is priced at %s, changed by %s (%s).",
		q.Symbol, q.Price, q.Change, q.PercentChange)
}

// FallbackSummary is the templated sentence returned whenever the model cannot be used.
func FallbackSummary(q dto.Quote) string {
	return fmt.Sprintf("Stock %s is currently priced at $%s, with a change of %s (%s).",
		q.Symbol, q.Price, q.Change, q.PercentChange)
}

func buildSummaryRequest(model string, q dto.Quote) dto.ChatRequest {
	return dto.ChatRequest{
		Model: model,
		Messages: []dto.Message{
			{Role: dto.RoleSystem, Content: systemPrompt},
			{Role: dto.RoleUser, Content: BuildSummaryPrompt(q)},
		},
	}
}
