package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// API holds API server configuration.
type API struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Tracing holds OpenTelemetry configuration.
type Tracing struct {
	Enabled     bool `mapstructure:"enabled"`
	PrettyPrint bool `mapstructure:"pretty_print"`
}

// Options tunes how Load resolves values.
type Options struct {
	// Defaults are applied before the file and the environment.
	Defaults map[string]interface{}
	// EnvAliases binds extra environment variable names to a key, e.g.
	// "alpha_vantage.api_key" -> ["AlphaVantageKey"].
	EnvAliases map[string][]string
	// DotEnvFiles are loaded into the process environment first. Missing files are ignored.
	DotEnvFiles []string
}

// Load loads configuration from a file into the given config struct.
// Environment variables override file values; a missing file is not an error.
func Load(path string, config interface{}, opts Options) error {
	for _, f := range opts.DotEnvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()
	for key, value := range opts.Defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, aliases := range opts.EnvAliases {
		names := append([]string{key, strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, aliases...)
		if err := v.BindEnv(names...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
	}

	return v.Unmarshal(config)
}
