package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, "stock-summary-service", cfg.App.Name)
	require.Equal(t, 8080, cfg.API.Port)
	require.Equal(t, "https://www.alphavantage.co", cfg.AlphaVantage.BaseURL)
	require.Equal(t, 30*time.Second, cfg.AlphaVantage.Timeout)
	require.Equal(t, "openai", cfg.LLM.Provider)
	require.Equal(t, "https://models.inference.ai.azure.com/v1/chat/completions", cfg.LLM.Endpoint)
	require.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	require.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	require.Empty(t, cfg.LLM.Token)
	require.False(t, cfg.AlphaVantage.Configured())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeConfig(t, `
api:
  port: 9090
alpha_vantage:
  api_key: file-key
llm:
  model: file-model
  timeout: 5s
`)
	t.Setenv("LLM_MODEL", "env-model")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.API.Port)
	require.Equal(t, "file-key", cfg.AlphaVantage.APIKey)
	require.Equal(t, "env-model", cfg.LLM.Model)
	require.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	require.True(t, cfg.AlphaVantage.Configured())
}

func TestLoad_LegacyEnvironmentNames(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("AlphaVantageKey", "legacy-key")
	t.Setenv("GitHubToken", "legacy-token")
	t.Setenv("LlmEndpoint", "http://localhost:1234/v1/chat/completions")
	t.Setenv("LlmModel", "legacy-model")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "legacy-key", cfg.AlphaVantage.APIKey)
	require.Equal(t, "legacy-token", cfg.LLM.Token)
	require.Equal(t, "http://localhost:1234/v1/chat/completions", cfg.LLM.Endpoint)
	require.Equal(t, "legacy-model", cfg.LLM.Model)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ALPHA_VANTAGE_API_KEY=dotenv-key\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("ALPHA_VANTAGE_API_KEY") })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dotenv-key", cfg.AlphaVantage.APIKey)
}

func TestLoad_InvalidProvider(t *testing.T) {
	t.Chdir(t.TempDir())

	path := writeConfig(t, "llm:\n  provider: mystery\n")
	_, err := Load(path)
	require.ErrorContains(t, err, "invalid llm provider")
}

func TestLoad_GeminiModelDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(writeConfig(t, "llm:\n  provider: gemini\n"))
	require.NoError(t, err)
	require.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)

	t.Setenv("LLM_MODEL", "gemini-2.5-pro")
	cfg, err = Load(writeConfig(t, "llm:\n  provider: gemini\n"))
	require.NoError(t, err)
	require.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
}

func TestLoad_GeminiWithOpenAIModel(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(writeConfig(t, "llm:\n  provider: gemini\n  model: gpt-4o-mini\n"))
	require.ErrorContains(t, err, "is not a gemini model")
}

func TestAlphaVantage_Configured(t *testing.T) {
	t.Parallel()

	require.False(t, AlphaVantage{}.Configured())
	require.False(t, AlphaVantage{APIKey: "<YOUR_ALPHA_VANTAGE_KEY>"}.Configured())
	require.True(t, AlphaVantage{APIKey: "demo"}.Configured())
}
