package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Export defaults
	assert.Equal(t, "gantt_tasks.json", cfg.Export.Filename)

	// Chart defaults
	assert.Equal(t, "week", cfg.Chart.DefaultZoom)
	assert.Equal(t, 28, cfg.Chart.NameColWidth)
	assert.Equal(t, 10, cfg.Chart.DateColWidth)

	// Locale defaults are Japanese
	assert.Equal(t, "保存", cfg.Locale.Save)
	assert.Equal(t, "キャンセル", cfg.Locale.Cancel)
	assert.Equal(t, "削除", cfg.Locale.Delete)
	assert.Equal(t, "説明", cfg.Locale.SectionDescription)
	assert.Equal(t, "期間", cfg.Locale.SectionTime)
	assert.Equal(t, "削除の確認", cfg.Locale.ConfirmDeletingTitle)
	assert.Contains(t, cfg.Locale.ConfirmDeleting, "%s")

	// Log defaults
	assert.NotEmpty(t, cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialFileMergesDefaults(t *testing.T) {
	dir := t.TempDir()
	raw := `{"chart":{"defaultZoom":"month"},"export":{"filename":"custom.json"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ganttea.json"), []byte(raw), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	// File values win
	assert.Equal(t, "month", cfg.Chart.DefaultZoom)
	assert.Equal(t, "custom.json", cfg.Export.Filename)

	// Everything unspecified falls back to defaults
	assert.Equal(t, 28, cfg.Chart.NameColWidth)
	assert.Equal(t, "保存", cfg.Locale.Save)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".ganttea.json"), []byte("{not json"), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".ganttea.json")

	cfg := DefaultConfig()
	cfg.Chart.DefaultZoom = "day"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestMergeWithDefaults_EmptyConfig(t *testing.T) {
	cfg := MergeWithDefaults(&Config{})
	assert.Equal(t, DefaultConfig(), cfg)
}
