package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithNoConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Diagnostics.Enabled)
	assert.Equal(t, "127.0.0.1:9797", cfg.Diagnostics.Addr)
	assert.Equal(t, 30*time.Second, cfg.ChannelTimeout)
}

func TestLoadReadsChannelTimeoutFromConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	require.NoError(t, os.WriteFile("minipar.yaml", []byte("channel_timeout: 5s\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.ChannelTimeout)
}

func TestLoadReadsConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	content := `
log:
  level: debug
  format: json
diagnostics:
  enabled: true
  addr: 0.0.0.0:9000
`
	require.NoError(t, os.WriteFile("minipar.yaml", []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Diagnostics.Enabled)
	assert.Equal(t, "0.0.0.0:9000", cfg.Diagnostics.Addr)
}

func TestLoadRejectsInvalidLogFormat(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	require.NoError(t, os.WriteFile("minipar.yaml", []byte("log:\n  format: xml\n"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestEnvironmentVariableOverridesDefault(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	os.Setenv("MINIPAR_LOG_LEVEL", "warn")
	defer os.Unsetenv("MINIPAR_LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}
