// Package modexpr carries the shared configuration for the model-expression
// tools.
package modexpr

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// ErrConfigValidation is returned when configuration validation fails
var ErrConfigValidation = errors.New("configuration validation failed")

// Config represents the modexpr configuration
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Output OutputConfig `yaml:"output"`
}

// ParserConfig represents expression parsing settings
type ParserConfig struct {
	PreserveCase bool `yaml:"preserve_case"`
}

// OutputConfig represents CLI output settings
type OutputConfig struct {
	Color string `yaml:"color"` // auto, always, never
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			PreserveCase: false,
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

// LoadConfig loads configuration from the given path. A missing file yields
// the defaults; environment variables override file values.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if present
	loadEnvFile()

	config := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	applyEnvironmentOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: output.color must be auto, always or never, got %q", ErrConfigValidation, c.Output.Color)
	}

	return nil
}

// loadEnvFile loads .env from the current directory when present
func loadEnvFile() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

// applyEnvironmentOverrides applies MODEXPR_* environment variables
func applyEnvironmentOverrides(config *Config) {
	if v := os.Getenv("MODEXPR_PRESERVE_CASE"); v != "" {
		config.Parser.PreserveCase = v == "1" || v == "true"
	}
	if v := os.Getenv("MODEXPR_COLOR"); v != "" {
		config.Output.Color = v
	}
}
