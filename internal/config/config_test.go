package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mdewolf/cfadmin/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.API.Host)
	assert.Equal(t, 8787, cfg.API.Port)
	assert.Equal(t, "cfadmin.db", cfg.Storage.Path)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "30s", cfg.Cloudflare.Timeout)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfadmin.json")
	content := `{
		"api": {"host": "0.0.0.0", "port": 9090, "api_key": "sekret"},
		"cloudflare": {"timeout": "5s"},
		"logging": {"level": "debug"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.API.Host)
	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, "sekret", cfg.API.APIKey)
	assert.Equal(t, "DEBUG", cfg.Logging.Level, "level is upcased")
	assert.Equal(t, "5s", cfg.Cloudflare.Timeout)
	assert.Equal(t, "cfadmin.db", cfg.Storage.Path, "unset fields keep defaults")
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSONFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsBadTimeout(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cloudflare.Timeout = "thirty seconds"
	assert.Error(t, cfg.Validate())
}

func TestResolveConfigPath_FlagWins(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "/from/env.json")
	assert.Equal(t, "/from/flag.json", config.ResolveConfigPath("/from/flag.json"))
}

func TestResolveConfigPath_EnvFallback(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "/from/env.json")
	assert.Equal(t, "/from/env.json", config.ResolveConfigPath(""))
}

func TestCloudflareTimeout(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "30s", cfg.Cloudflare.Timeout)
	assert.Equal(t, float64(30), cfg.CloudflareTimeout().Seconds())
}
