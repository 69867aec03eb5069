package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Components) != 3 {
		t.Errorf("expected 3 components, got %d", len(cfg.Components))
	}
	if cfg.Stages != 20 {
		t.Errorf("expected 20 stages, got %d", cfg.Stages)
	}
	if cfg.RefluxRatio <= 0 {
		t.Error("reflux ratio seed should be positive")
	}
	if cfg.Feed["A"] != 0.5 {
		t.Errorf("expected feed A 0.5, got %f", cfg.Feed["A"])
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "column.yaml")

	cfg := DefaultConfig()
	cfg.Stages = 25
	cfg.Condenser = "partial"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Stages != 25 {
		t.Errorf("expected 25 stages, got %d", loaded.Stages)
	}
	if loaded.Condenser != "partial" {
		t.Errorf("expected partial condenser, got %s", loaded.Condenser)
	}
	if len(loaded.Components) != 3 {
		t.Errorf("expected 3 components, got %d", len(loaded.Components))
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("wide")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Stages != 30 {
		t.Errorf("expected 30 stages, got %d", cfg.Stages)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Error("presets should be sorted")
		}
	}
}

func TestBuildComponents_PreservesOrder(t *testing.T) {
	cfg := DefaultConfig()
	components := cfg.BuildComponents()

	if len(components) != len(cfg.Components) {
		t.Fatalf("expected %d components, got %d", len(cfg.Components), len(components))
	}
	for i, comp := range components {
		if comp.Name != cfg.Components[i].Name {
			t.Errorf("component %d: expected %s, got %s", i, cfg.Components[i].Name, comp.Name)
		}
	}
}

func TestBuildColumn(t *testing.T) {
	col, err := DefaultConfig().BuildColumn()
	if err != nil {
		t.Fatalf("BuildColumn: %v", err)
	}
	if col.NumStages != 20 {
		t.Errorf("expected 20 stages, got %d", col.NumStages)
	}

	bad := DefaultConfig()
	bad.Feed["Z"] = 0.1
	if _, err := bad.BuildColumn(); err == nil {
		t.Error("expected error for unknown feed component")
	}
}
