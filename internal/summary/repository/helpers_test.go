package repository

import (
	"time"

	"golang-stock-summary/internal/summary/config"
)

func newTestConfig(quoteURL, chatURL string) *config.Config {
	return &config.Config{
		AlphaVantage: config.AlphaVantage{
			APIKey:  "test-key",
			BaseURL: quoteURL,
			Timeout: 5 * time.Second,
		},
		LLM: config.LLM{
			Provider: "openai",
			Token:    "test-token",
			Endpoint: chatURL,
			Model:    "gpt-4o-mini",
			Timeout:  5 * time.Second,
		},
	}
}
