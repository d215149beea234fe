package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source != "seasonal" {
		t.Errorf("expected source seasonal, got %s", cfg.Source)
	}
	if cfg.Atmosphere.CO2 != 395 {
		t.Errorf("expected 395 ppm, got %f", cfg.Atmosphere.CO2)
	}
	if cfg.TotalYears() != 7 {
		t.Errorf("expected 7 total years, got %d", cfg.TotalYears())
	}
	if cfg.Wind.Summer != DefaultWindSummer || cfg.Wind.Winter != DefaultWindWinter {
		t.Errorf("unexpected wind %+v", cfg.Wind)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestMixedLayerMass(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.MixedLayer.Mass(); got != 30*1029 {
		t.Errorf("expected %d kg, got %f", 30*1029, got)
	}
}

func TestSaveLoad(t *testing.T) {
	for _, name := range []string{"carbonbox.yaml", "carbonbox.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			cfg := DefaultConfig()
			cfg.Source = "historical"
			cfg.Dataset = "tseries.nc"
			cfg.Region = "ne"
			cfg.Wind.Summer = 6
			if err := Save(path, cfg); err != nil {
				t.Fatal(err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			if loaded.Region != "ne" || loaded.Dataset != "tseries.nc" || loaded.Wind.Summer != 6 {
				t.Errorf("round trip lost fields: %+v", loaded)
			}
			if loaded.MixedLayer.Density != DefaultDensity {
				t.Errorf("expected density %f, got %f", DefaultDensity, loaded.MixedLayer.Density)
			}
		})
	}
}

func TestLoad_PartialTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	data := "region = \"me\"\nyears = 4\n\n[atmosphere]\nco2 = 280.0\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Region != "me" || cfg.Years != 4 || cfg.Atmosphere.CO2 != 280 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	// unset keys keep their defaults
	if cfg.Source != DefaultSource || cfg.Atmosphere.D13C != DefaultAtmosphericD13C {
		t.Errorf("defaults lost: source %q, d13c %f", cfg.Source, cfg.Atmosphere.D13C)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty source", func(c *Config) { c.Source = "" }},
		{"historical without dataset", func(c *Config) { c.Source = "historical" }},
		{"negative years", func(c *Config) { c.Years = -1 }},
		{"zero horizon", func(c *Config) { c.Years, c.SpinUpYears = 0, 0 }},
		{"zero co2", func(c *Config) { c.Atmosphere.CO2 = 0 }},
		{"negative wind", func(c *Config) { c.Wind.Winter = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("historical", "me")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Region != "me" || cfg.SourceParams().Prefix != "me" {
		t.Errorf("expected region me, got %s", cfg.Region)
	}
	if cfg.Atmosphere.CO2 != DefaultAtmosphericCO2 {
		t.Errorf("preset should carry default atmosphere, got %f", cfg.Atmosphere.CO2)
	}

	cfg.Years = 99
	if again := GetPreset("historical", "me"); again.Years == 99 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("seasonal", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "default"); cfg != nil {
		t.Error("expected nil for nonexistent source")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("historical")
	if len(presets) != 3 || presets[0] != "me" {
		t.Errorf("unexpected presets %v", presets)
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent source")
	}
}
