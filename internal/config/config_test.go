package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene != "voltage_divider" {
		t.Errorf("expected scene voltage_divider, got %s", cfg.Scene)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Params.Vin <= 0 {
		t.Error("vin should be positive")
	}
	if cfg.Params.RL <= 0 {
		t.Error("rl should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.FPS = 60
	cfg.Params.R2 = 4700
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.FPS != 60 {
		t.Errorf("expected fps 60, got %d", loaded.FPS)
	}
	if loaded.Params.R2 != 4700 {
		t.Errorf("expected r2 4700, got %f", loaded.Params.R2)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("scene: regulator_comparison\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Scene != "regulator_comparison" {
		t.Errorf("expected scene regulator_comparison, got %s", loaded.Scene)
	}
	if loaded.FPS != DefaultFPS {
		t.Errorf("expected default fps %d, got %d", DefaultFPS, loaded.FPS)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("voltage_divider", "heavy_load")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.RL != 2000 {
		t.Errorf("expected rl 2000, got %f", cfg.Params.RL)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("voltage_divider", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "classroom"); cfg != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("voltage_divider")
	if len(presets) == 0 {
		t.Error("expected presets for voltage_divider")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent scene")
	}
}
