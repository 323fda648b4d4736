//go:build integration

package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jaimeman84/daily-quotes-app/internal/platform/config"
)

// writeConfigs lays out a configs/ directory in a temp working directory
// and chdirs into it, since config.Load resolves configs/ relative to cwd.
func writeConfigs(t *testing.T, files map[string]string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))

	for name, content := range files {
		path := filepath.Join(dir, "configs", name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	t.Chdir(dir)
}

// TestConfigLoad_Defaults_Integration verifies the service boots on pure
// defaults when no config files exist.
func TestConfigLoad_Defaults_Integration(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("local")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "daily-quotes-app", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.quotable.io", cfg.Quotes.BaseURL)
	assert.Equal(t, 50, cfg.Quotes.SearchPageSize)
	assert.Equal(t, 5, cfg.Quotes.MaxSearchPages)
	assert.Equal(t, "quotes.csv", cfg.Store.Path)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
}

// TestConfigLoad_ProfileOverridesBase_Integration verifies precedence of
// profile files over base.yaml.
func TestConfigLoad_ProfileOverridesBase_Integration(t *testing.T) {
	writeConfigs(t, map[string]string{
		"base.yaml": `
log:
  level: info
store:
  path: /var/lib/quotes/quotes.csv
`,
		"qa.yaml": `
app:
  environment: qa
log:
  level: debug
`,
	})

	cfg, err := config.Load("qa")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "qa", cfg.App.Environment)
	assert.Equal(t, "debug", cfg.Log.Level)

	// base.yaml values survive where the profile is silent
	assert.Equal(t, "/var/lib/quotes/quotes.csv", cfg.Store.Path)
}

// TestConfigLoad_EnvOverridesFiles_Integration verifies APP_ environment
// variables win over every file layer.
func TestConfigLoad_EnvOverridesFiles_Integration(t *testing.T) {
	writeConfigs(t, map[string]string{
		"base.yaml": `
server:
  port: 8080
store:
  path: quotes.csv
`,
	})

	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_STORE_PATH", "/tmp/override.csv")

	cfg, err := config.Load("local")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/override.csv", cfg.Store.Path)
}

// TestConfigLoad_InvalidYAML_Integration verifies a malformed file fails
// loudly instead of silently falling back to defaults.
func TestConfigLoad_InvalidYAML_Integration(t *testing.T) {
	writeConfigs(t, map[string]string{
		"base.yaml": "server: [not a map",
	})

	_, err := config.Load("local")
	require.Error(t, err)
}

// TestConfigValidate_RejectsBadValues_Integration verifies validation
// catches out-of-range settings before the service starts.
func TestConfigValidate_RejectsBadValues_Integration(t *testing.T) {
	writeConfigs(t, map[string]string{
		"base.yaml": `
server:
  port: 99999
`,
	})

	cfg, err := config.Load("local")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

// TestConfigLoad_MissingProfileFileIsFine_Integration verifies an absent
// profile file falls back to base + defaults.
func TestConfigLoad_MissingProfileFileIsFine_Integration(t *testing.T) {
	writeConfigs(t, map[string]string{
		"base.yaml": `
app:
  environment: dev
`,
	})

	cfg, err := config.Load("nonexistent-profile")
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.App.Environment)
}
