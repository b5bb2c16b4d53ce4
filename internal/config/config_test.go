package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetViper clears all viper state between tests to avoid cross-contamination.
func resetViper() {
	viper.Reset()
}

func TestLoad_Defaults(t *testing.T) {
	resetViper()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "chrome://settings", cfg.Origin)
	assert.Equal(t, "", cfg.TableFile)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.PageVisibility)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetViper()

	t.Setenv("SROUTER_ORIGIN", "chrome://os-settings")
	t.Setenv("SROUTER_TABLE_FILE", "/tmp/routes.toml")
	viper.SetEnvPrefix("SROUTER")
	viper.AutomaticEnv()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "chrome://os-settings", cfg.Origin)
	assert.Equal(t, "/tmp/routes.toml", cfg.TableFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	resetViper()

	p := filepath.Join(t.TempDir(), ".srouter.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
origin: chrome://settings
page_visibility:
  appearance: false
  reset: true
verbose: true
`), 0o644))

	viper.SetConfigFile(p)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, map[string]bool{"appearance": false, "reset": true}, cfg.PageVisibility)
}

func TestVisibilityFor(t *testing.T) {
	cfg := Config{PageVisibility: map[string]bool{"onstartup": false, "defaultbrowser": true, "custom": false}}

	got := cfg.VisibilityFor([]string{"onStartup", "defaultBrowser", "appearance"})
	assert.Equal(t, map[string]bool{"onStartup": false, "defaultBrowser": true, "custom": false}, got)

	assert.Nil(t, Config{}.VisibilityFor([]string{"onStartup"}))
}
