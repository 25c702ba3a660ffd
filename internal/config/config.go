package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full Ganttea configuration
type Config struct {
	Export ExportConfig `json:"export"`
	Chart  ChartConfig  `json:"chart"`
	Locale LocaleConfig `json:"locale"`
	Log    LogConfig    `json:"log"`
}

// ExportConfig contains document export settings
type ExportConfig struct {
	Filename string `json:"filename"`
}

// ChartConfig contains timeline display settings
type ChartConfig struct {
	DefaultZoom  string `json:"defaultZoom"`
	NameColWidth int    `json:"nameColWidth"`
	DateColWidth int    `json:"dateColWidth"`
}

// LocaleConfig contains label overrides for chart chrome. Ship defaults
// are Japanese, matching the original UI.
type LocaleConfig struct {
	Save                 string `json:"save"`
	Cancel               string `json:"cancel"`
	Delete               string `json:"delete"`
	SectionDescription   string `json:"sectionDescription"`
	SectionTime          string `json:"sectionTime"`
	ConfirmDeletingTitle string `json:"confirmDeletingTitle"`
	ConfirmDeleting      string `json:"confirmDeleting"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Path  string `json:"path"`
	Level string `json:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Export: ExportConfig{
			Filename: "gantt_tasks.json",
		},
		Chart: ChartConfig{
			DefaultZoom:  "week",
			NameColWidth: 28,
			DateColWidth: 10,
		},
		Locale: LocaleConfig{
			Save:                 "保存",
			Cancel:               "キャンセル",
			Delete:               "削除",
			SectionDescription:   "説明",
			SectionTime:          "期間",
			ConfirmDeletingTitle: "削除の確認",
			ConfirmDeleting:      "「%s」を削除しますか？",
		},
		Log: LogConfig{
			Path:  filepath.Join(homeDir, ".ganttea", "ganttea.log"),
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from a directory with priority:
// 1. .ganttea.json in the directory
// 2. Defaults
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".ganttea.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return MergeWithDefaults(cfg), nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Export.Filename == "" {
		cfg.Export.Filename = defaults.Export.Filename
	}

	if cfg.Chart.DefaultZoom == "" {
		cfg.Chart.DefaultZoom = defaults.Chart.DefaultZoom
	}
	if cfg.Chart.NameColWidth == 0 {
		cfg.Chart.NameColWidth = defaults.Chart.NameColWidth
	}
	if cfg.Chart.DateColWidth == 0 {
		cfg.Chart.DateColWidth = defaults.Chart.DateColWidth
	}

	if cfg.Locale.Save == "" {
		cfg.Locale.Save = defaults.Locale.Save
	}
	if cfg.Locale.Cancel == "" {
		cfg.Locale.Cancel = defaults.Locale.Cancel
	}
	if cfg.Locale.Delete == "" {
		cfg.Locale.Delete = defaults.Locale.Delete
	}
	if cfg.Locale.SectionDescription == "" {
		cfg.Locale.SectionDescription = defaults.Locale.SectionDescription
	}
	if cfg.Locale.SectionTime == "" {
		cfg.Locale.SectionTime = defaults.Locale.SectionTime
	}
	if cfg.Locale.ConfirmDeletingTitle == "" {
		cfg.Locale.ConfirmDeletingTitle = defaults.Locale.ConfirmDeletingTitle
	}
	if cfg.Locale.ConfirmDeleting == "" {
		cfg.Locale.ConfirmDeleting = defaults.Locale.ConfirmDeleting
	}

	if cfg.Log.Path == "" {
		cfg.Log.Path = defaults.Log.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
