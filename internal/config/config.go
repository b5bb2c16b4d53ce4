// Package config loads srouter settings from viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the srouter tool.
// Values are populated from .srouter.yaml, SROUTER_* env vars, and CLI flags.
type Config struct {
	Origin         string          `mapstructure:"origin"`
	TableFile      string          `mapstructure:"table_file"`
	PageVisibility map[string]bool `mapstructure:"page_visibility"`
	Verbose        bool            `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("origin", "chrome://settings")
	viper.SetDefault("table_file", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// VisibilityFor returns the page visibility with keys matched against pages.
// Viper lowercases map keys, so "onstartup" in the config is reported as
// "onStartup" when that is one of pages.  Unmatched keys are kept as-is.
func (c Config) VisibilityFor(pages []string) map[string]bool {
	if len(c.PageVisibility) == 0 {
		return nil
	}

	canon := make(map[string]string, len(pages))
	for _, p := range pages {
		canon[strings.ToLower(p)] = p
	}

	ret := make(map[string]bool, len(c.PageVisibility))
	for k, v := range c.PageVisibility {
		if p, ok := canon[strings.ToLower(k)]; ok {
			k = p
		}
		ret[k] = v
	}
	return ret
}
