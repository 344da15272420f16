package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1024, cfg.Anthropic.MaxTokens)
	assert.Equal(t, 30, cfg.Anthropic.TimeoutSecs)
	assert.Equal(t, "https://dir.indiamart.com", cfg.IndiaMART.BaseURL)
	assert.Equal(t, 0.5, cfg.IndiaMART.RequestsPerSec)
	assert.Equal(t, "https://s.jina.ai", cfg.Search.BaseURL)
	assert.Equal(t, 0.10, cfg.Economics.MarketingRate)
	assert.Equal(t, 50000.0, cfg.Economics.FixedMonthlyCost)
	assert.Equal(t, 500, cfg.Economics.AssumedMonthlyUnits)
	assert.Equal(t, "national", cfg.Economics.Zone)
	assert.Equal(t, 50.0, cfg.Limits.MinWeightGrams)
	assert.Equal(t, 2000.0, cfg.Limits.MaxPrice)
	assert.False(t, cfg.Offline)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)

	content := []byte(`
log:
  level: debug
  format: console
economics:
  marketing_rate: 0.05
  zone: regional
offline: true
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 0.05, cfg.Economics.MarketingRate)
	assert.Equal(t, "regional", cfg.Economics.Zone)
	assert.True(t, cfg.Offline)
	// Untouched keys keep their defaults.
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_EnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("GONOGO_ANTHROPIC_KEY", "sk-test")
	t.Setenv("GONOGO_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.Anthropic.Key)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestInitLogger(t *testing.T) {
	assert.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.Error(t, InitLogger(LogConfig{Level: "verbose", Format: "json"}))
}

// chdirTemp runs the test in an empty directory so a developer's local
// config.yaml cannot leak into assertions.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}
