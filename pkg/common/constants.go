package common

const (
	DefaultSymbol = "AAPL"

	// AlphaVantageKeyPlaceholder is the value shipped in sample configs; it counts as unset.
	AlphaVantageKeyPlaceholder = "<YOUR_ALPHA_VANTAGE_KEY>"
	AlphaVantageBaseURL        = "https://www.alphavantage.co"
	AlphaVantageGlobalQuote    = "GLOBAL_QUOTE"

	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"

	DefaultLLMEndpoint = "https://models.inference.ai.azure.com/v1/chat/completions"
	DefaultLLMModel    = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.0-flash"
)
