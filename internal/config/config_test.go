package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Tyre.Model != "linear" {
		t.Errorf("expected linear tyre model, got %s", cfg.Tyre.Model)
	}
	if cfg.Mass <= 0 {
		t.Error("mass should be positive")
	}
	if cfg.Solver.Tolerance <= 0 {
		t.Error("tolerance should be positive")
	}
	if cfg.Solver.SpeedCap <= 0 {
		t.Error("speed cap should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "car.yaml")

	cfg := GetPreset("formula_student")
	if cfg == nil {
		t.Fatal("expected formula_student preset")
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Car != cfg.Car {
		t.Errorf("expected car %s, got %s", cfg.Car, loaded.Car)
	}
	if loaded.Mass != cfg.Mass {
		t.Errorf("expected mass %g, got %g", cfg.Mass, loaded.Mass)
	}
	if loaded.Chassis.Wheelbase != cfg.Chassis.Wheelbase {
		t.Errorf("expected wheelbase %g, got %g", cfg.Chassis.Wheelbase, loaded.Chassis.Wheelbase)
	}
	if loaded.Tyre.D != cfg.Tyre.D {
		t.Errorf("expected tyre D %g, got %g", cfg.Tyre.D, loaded.Tyre.D)
	}
	if loaded.DriveTrain.Power != cfg.DriveTrain.Power {
		t.Errorf("expected power %g, got %g", cfg.DriveTrain.Power, loaded.DriveTrain.Power)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := []byte("mass: 950\n")

	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Mass != 950 {
		t.Errorf("expected mass 950, got %g", cfg.Mass)
	}
	if cfg.Chassis.Wheelbase != 2.5 {
		t.Errorf("expected default wheelbase, got %g", cfg.Chassis.Wheelbase)
	}
	if cfg.Solver.MaxIterations != DefaultIterations {
		t.Errorf("expected default iteration cap, got %d", cfg.Solver.MaxIterations)
	}
}

func TestGetPreset(t *testing.T) {
	if cfg := GetPreset("kart"); cfg == nil || cfg.Mass != 160 {
		t.Error("expected kart preset with mass 160")
	}
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}

	found := false
	for _, name := range names {
		if name == "formula_student" {
			found = true
		}
	}
	if !found {
		t.Error("expected formula_student in preset list")
	}
}
