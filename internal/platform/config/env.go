// Package config loads command settings from TEXTUAL_-prefixed environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name declared in env tags.
const EnvPrefix = "TEXTUAL_"

// Localization selects the display locale and formats shared by commands.
type Localization struct {
	Locale           string `env:"LOCALE" envDefault:"en-US"`
	TimestampFormat  string `env:"TIMESTAMP_FORMAT"`
	PluginCatalogDir string `env:"PLUGIN_CATALOG_DIR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
