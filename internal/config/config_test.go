package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-analytics/internal/config/configs"
	"campaign-analytics/internal/core/engine"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.Equal(t, "csv", cfg.Dataset.Source)
	assert.Equal(t, 4, cfg.Report.Workers)
	assert.Equal(t, engine.DefaultThresholds(), cfg.Report.Thresholds())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATASET_SOURCE", "postgres")
	t.Setenv("REPORT_CTR_THRESHOLD", "5")
	t.Setenv("REPORT_TOP_N", "3")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())

	kind, err := cfg.Dataset.Kind()
	require.NoError(t, err)
	assert.Equal(t, "postgres", kind)

	th := cfg.Report.Thresholds()
	assert.Equal(t, 5.0, th.CTR)
	assert.Equal(t, 3, th.TopN)
}

func TestLoadDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATASET_PATH=/data/campaigns.csv\nHTTP_PORT=7070\n"), 0o600))
	t.Setenv("HTTP_PORT", "6060")
	// godotenv sets variables outside t.Setenv, so clean up explicitly.
	t.Cleanup(func() { _ = os.Unsetenv("DATASET_PATH") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/campaigns.csv", cfg.Dataset.Path)
	// the environment wins over the file
	assert.Equal(t, uint16(6060), cfg.HTTP.Port)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "s3")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(configs.Logger{Level: "warn", Format: "JSON"}.Handler(&buf))
	logger.Info("dropped")
	logger.Warn("kept", slog.Int("rejected", 2))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, float64(2), rec["rejected"])

	buf.Reset()
	slog.New(configs.Logger{Level: "bogus", Format: "xml"}.Handler(&buf)).Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
