package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"safelink/backend/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("SAFELINK_ADDR", ":9999")
	t.Setenv("SAFELINK_DATA_DIR", "/tmp/safelink")
	t.Setenv("SAFELINK_LOG_LEVEL", "debug")
	t.Setenv("SAFELINK_BULLETIN_INTERVAL", "5m")
	t.Setenv("SAFELINK_ENABLE_SWAGGER", "true")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg := config.Load()
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "/tmp/safelink", cfg.DataDir)
	require.Contains(t, cfg.DBPath, "/tmp/safelink/safelink.db")
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 5*time.Minute, cfg.BulletinInterval)
	require.True(t, cfg.EnableSwagger)
	require.Equal(t, "g-key", cfg.GeminiAPIKey)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SAFELINK_ADDR", "SAFELINK_DATA_DIR", "SAFELINK_DB_PATH", "SAFELINK_LOG_LEVEL",
		"SAFELINK_BULLETIN_INTERVAL", "SAFELINK_CONFIG", "SAFELINK_NODE_ID",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "data", cfg.DataDir)
	require.Contains(t, cfg.DBPath, "safelink.db")
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 30*time.Minute, cfg.BulletinInterval)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "safelink.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\ndata_dir: /srv/site\nbulletin_interval: 10m\n"), 0o600))

	t.Setenv("SAFELINK_ADDR", ":9999")
	t.Setenv("SAFELINK_DB_PATH", "")
	t.Setenv("SAFELINK_CONFIG", path)

	cfg := config.Load()
	require.Equal(t, ":7000", cfg.Addr)
	require.Equal(t, "/srv/site", cfg.DataDir)
	require.Equal(t, filepath.Join("/srv/site", "safelink.db"), cfg.DBPath)
	require.Equal(t, 10*time.Minute, cfg.BulletinInterval)
}

func TestLoadFile_RejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("adr: \":1\"\n"), 0o600))

	_, err := config.LoadFile(path)
	require.Error(t, err)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := config.Config{
		BulletinInterval: time.Second,
		NodeID:           2048,
		RedisURL:         "http://localhost",
	}
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"addr is required", "db path is required", "bulletin interval", "node id", "redis url"} {
		require.ErrorContains(t, err, want)
	}
}
