package config

import (
	"fmt"
	"strings"
	"time"

	"golang-stock-summary/pkg/common"
	"golang-stock-summary/pkg/config"
)

// AlphaVantage holds the configuration for the Alpha Vantage quote API.
type AlphaVantage struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Configured reports whether a usable API key is set.
func (a AlphaVantage) Configured() bool {
	return a.APIKey != "" && a.APIKey != common.AlphaVantageKeyPlaceholder
}

// LLM holds the configuration for the chat-completion provider.
type LLM struct {
	Provider string        `mapstructure:"provider"`
	Token    string        `mapstructure:"token"`
	Endpoint string        `mapstructure:"endpoint"`
	Model    string        `mapstructure:"model"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Config holds the full configuration for the summary service.
type Config struct {
	App          config.App     `mapstructure:"app"`
	Logger       config.Logger  `mapstructure:"logger"`
	API          config.API     `mapstructure:"api"`
	Tracing      config.Tracing `mapstructure:"tracing"`
	AlphaVantage AlphaVantage   `mapstructure:"alpha_vantage"`
	LLM          LLM            `mapstructure:"llm"`
}

var defaults = map[string]interface{}{
	"app.name":               "stock-summary-service",
	"app.env":                "development",
	"app.version":            "1.0.0",
	"logger.level":           "info",
	"logger.encoding":        "json",
	"api.host":               "",
	"api.port":               8080,
	"tracing.enabled":        false,
	"tracing.pretty_print":   false,
	"alpha_vantage.api_key":  "",
	"alpha_vantage.base_url": common.AlphaVantageBaseURL,
	"alpha_vantage.timeout":  "30s",
	"llm.provider":           common.LLMProviderOpenAI,
	"llm.token":              "",
	"llm.endpoint":           common.DefaultLLMEndpoint,
	"llm.model":              "",
	"llm.timeout":            "60s",
}

// Setting names used by earlier deployments of the service.
var envAliases = map[string][]string{
	"alpha_vantage.api_key": {"AlphaVantageKey"},
	"llm.token":             {"GitHubToken"},
	"llm.endpoint":          {"LlmEndpoint"},
	"llm.model":             {"LlmModel"},
}

// Load loads the summary service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	err := config.Load(path, &cfg, config.Options{
		Defaults:    defaults,
		EnvAliases:  envAliases,
		DotEnvFiles: []string{".env"},
	})
	if err != nil {
		return nil, err
	}
	cfg.applyProviderDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// The model default depends on the provider, so it is filled in after loading.
func (c *Config) applyProviderDefaults() {
	if c.LLM.Model != "" {
		return
	}
	switch c.LLM.Provider {
	case common.LLMProviderGemini:
		c.LLM.Model = common.DefaultGeminiModel
	default:
		c.LLM.Model = common.DefaultLLMModel
	}
}

// Validate checks settings that would otherwise fail on the first request.
// Missing API credentials are not validated here: they degrade per request.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case common.LLMProviderOpenAI, common.LLMProviderGemini:
	default:
		return fmt.Errorf("invalid llm provider %q", c.LLM.Provider)
	}
	if c.LLM.Provider == common.LLMProviderGemini && strings.HasPrefix(c.LLM.Model, "gpt-") {
		return fmt.Errorf("llm model %q is not a gemini model", c.LLM.Model)
	}
	if c.API.Port <= 0 || c.API.Port > 65535 {
		return fmt.Errorf("invalid api port %d", c.API.Port)
	}
	return nil
}
