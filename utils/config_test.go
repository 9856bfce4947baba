package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("expected error for missing file")
	}
	// defaults come back even on failure so callers can fall through
	if config != DefaultConfig() {
		t.Errorf("config on failure = %+v, want defaults", config)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"width": 32, "height": 24, "seed": 99}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if config.Width != 32 || config.Height != 24 || config.Seed != 99 {
		t.Errorf("overridden fields not applied: %+v", config)
	}
	if config.MaxGenerations != DefaultConfig().MaxGenerations {
		t.Errorf("absent fields should keep defaults: %+v", config)
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
