package config

import (
	"encoding/json"
	"testing"
)

func TestParseVersionedConfig_LegacyConfig(t *testing.T) {
	// Legacy config without version field
	legacyJSON := `{
		"export": {
			"filename": "out.json"
		},
		"chart": {
			"defaultZoom": "day"
		}
	}`

	cfg, err := ParseVersionedConfig([]byte(legacyJSON))
	if err != nil {
		t.Fatalf("Failed to parse legacy config: %v", err)
	}

	if cfg.Export.Filename != "out.json" {
		t.Errorf("Expected filename 'out.json', got '%s'", cfg.Export.Filename)
	}

	if cfg.Chart.DefaultZoom != "day" {
		t.Errorf("Expected defaultZoom 'day', got '%s'", cfg.Chart.DefaultZoom)
	}
}

func TestParseVersionedConfig_Version1(t *testing.T) {
	// Config with version 1
	v1JSON := `{
		"version": 1,
		"export": {
			"filename": "tasks.json"
		},
		"locale": {
			"save": "Save"
		}
	}`

	cfg, err := ParseVersionedConfig([]byte(v1JSON))
	if err != nil {
		t.Fatalf("Failed to parse v1 config: %v", err)
	}

	if cfg.Export.Filename != "tasks.json" {
		t.Errorf("Expected filename 'tasks.json', got '%s'", cfg.Export.Filename)
	}

	if cfg.Locale.Save != "Save" {
		t.Errorf("Expected save label 'Save', got '%s'", cfg.Locale.Save)
	}
}

func TestParseVersionedConfig_FutureVersion(t *testing.T) {
	// Config with future version should fail
	futureJSON := `{
		"version": 999,
		"export": {}
	}`

	_, err := ParseVersionedConfig([]byte(futureJSON))
	if err == nil {
		t.Error("Expected error for future version, got nil")
	}
}

func TestApplyMigrations_V0ToV1(t *testing.T) {
	// Legacy config (version 0)
	data := map[string]interface{}{
		"export": map[string]interface{}{
			"filename": "out.json",
		},
	}

	migrated, err := ApplyMigrations(data, 0)
	if err != nil {
		t.Fatalf("Migration failed: %v", err)
	}

	version, ok := migrated["version"].(int)
	if !ok || version != 1 {
		t.Errorf("Expected version 1, got %v", migrated["version"])
	}

	// Verify data is preserved
	export, ok := migrated["export"].(map[string]interface{})
	if !ok || export["filename"] != "out.json" {
		t.Errorf("Expected export filename preserved, got %v", migrated["export"])
	}
}

func TestMarshalVersionedConfig(t *testing.T) {
	cfg := &Config{
		Export: ExportConfig{Filename: "tasks.json"},
		Chart:  ChartConfig{DefaultZoom: "month"},
	}

	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	// Parse to verify structure
	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}

	// Check version is present
	if version, ok := result["version"].(float64); !ok || int(version) != CurrentVersion {
		t.Errorf("Expected version %d, got %v", CurrentVersion, result["version"])
	}

	// Check config fields are preserved
	export, ok := result["export"].(map[string]interface{})
	if !ok || export["filename"] != "tasks.json" {
		t.Errorf("Expected export section preserved, got %v", result["export"])
	}
}

func TestRoundTrip(t *testing.T) {
	original := &Config{
		Export: ExportConfig{Filename: "plan.json"},
		Chart: ChartConfig{
			DefaultZoom:  "day",
			NameColWidth: 32,
			DateColWidth: 12,
		},
		Locale: LocaleConfig{
			Save:   "保存",
			Cancel: "キャンセル",
		},
		Log: LogConfig{
			Path:  "/tmp/ganttea.log",
			Level: "debug",
		},
	}

	data, err := MarshalVersionedConfig(original)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	parsed, err := ParseVersionedConfig(data)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if parsed.Export.Filename != original.Export.Filename {
		t.Errorf("Filename mismatch: %s != %s", parsed.Export.Filename, original.Export.Filename)
	}

	if parsed.Chart.DefaultZoom != original.Chart.DefaultZoom {
		t.Errorf("DefaultZoom mismatch: %s != %s", parsed.Chart.DefaultZoom, original.Chart.DefaultZoom)
	}

	if parsed.Chart.NameColWidth != original.Chart.NameColWidth {
		t.Errorf("NameColWidth mismatch: %d != %d", parsed.Chart.NameColWidth, original.Chart.NameColWidth)
	}

	if parsed.Locale.Save != original.Locale.Save {
		t.Errorf("Save label mismatch: %s != %s", parsed.Locale.Save, original.Locale.Save)
	}

	if parsed.Log.Level != original.Log.Level {
		t.Errorf("Log level mismatch: %s != %s", parsed.Log.Level, original.Log.Level)
	}
}

func TestCurrentVersion(t *testing.T) {
	// Ensure CurrentVersion is at least 1
	if CurrentVersion < 1 {
		t.Errorf("CurrentVersion should be at least 1, got %d", CurrentVersion)
	}
}
