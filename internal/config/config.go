package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/carbonbox/internal/forcing"
)

const (
	DefaultSource      = "seasonal"
	DefaultRegion      = "se"
	DefaultYears       = 2
	DefaultSpinUpYears = 5

	DefaultAtmosphericCO2  = 395.0 // ppm
	DefaultAtmosphericD13C = -8.0  // per mil
	DefaultAtmosphericD14C = 0.0   // per mil

	DefaultSurfaceD13C = 1.0 // per mil
	DefaultSurfaceD14C = 0.0 // per mil

	DefaultTemperature = 15.0 // °C
	DefaultSalinity    = 33.5 // psu
	DefaultWindSummer  = 7.0  // m/s
	DefaultWindWinter  = 10.5 // m/s

	DefaultMixedLayerDepth = 30.0   // m
	DefaultSurfaceArea     = 1.0    // m^2
	DefaultDensity         = 1029.0 // kg/m^3
)

type Config struct {
	Source      string           `yaml:"source" toml:"source"`
	Dataset     string           `yaml:"dataset,omitempty" toml:"dataset,omitempty"`
	Region      string           `yaml:"region" toml:"region"`
	Years       int              `yaml:"years" toml:"years"`
	SpinUpYears int              `yaml:"spin_up_years" toml:"spin_up_years"`
	Atmosphere  AtmosphereConfig `yaml:"atmosphere" toml:"atmosphere"`
	Surface     SurfaceConfig    `yaml:"surface" toml:"surface"`
	MixedLayer  MixedLayerConfig `yaml:"mixed_layer" toml:"mixed_layer"`
	Wind        forcing.Wind     `yaml:"wind" toml:"wind"`
}

type AtmosphereConfig struct {
	CO2  float64 `yaml:"co2" json:"co2" toml:"co2"`
	D13C float64 `yaml:"d13c" json:"d13c" toml:"d13c"`
	D14C float64 `yaml:"d14c" json:"d14c" toml:"d14c"`
}

// SurfaceConfig holds the initial isotopic signature of the mixed layer.
type SurfaceConfig struct {
	D13C float64 `yaml:"d13c" json:"d13c" toml:"d13c"`
	D14C float64 `yaml:"d14c" json:"d14c" toml:"d14c"`
}

type MixedLayerConfig struct {
	Depth       float64 `yaml:"depth" json:"depth" toml:"depth"`
	SurfaceArea float64 `yaml:"surface_area" json:"surface_area" toml:"surface_area"`
	Density     float64 `yaml:"density" json:"density" toml:"density"`
}

// Mass returns the seawater mass of the box in kg.
func (m MixedLayerConfig) Mass() float64 {
	return m.SurfaceArea * m.Depth * m.Density
}

func DefaultConfig() *Config {
	return &Config{
		Source:      DefaultSource,
		Region:      DefaultRegion,
		Years:       DefaultYears,
		SpinUpYears: DefaultSpinUpYears,
		Atmosphere: AtmosphereConfig{
			CO2:  DefaultAtmosphericCO2,
			D13C: DefaultAtmosphericD13C,
			D14C: DefaultAtmosphericD14C,
		},
		Surface: SurfaceConfig{
			D13C: DefaultSurfaceD13C,
			D14C: DefaultSurfaceD14C,
		},
		MixedLayer: MixedLayerConfig{
			Depth:       DefaultMixedLayerDepth,
			SurfaceArea: DefaultSurfaceArea,
			Density:     DefaultDensity,
		},
		Wind: forcing.DefaultWind(),
	}
}

// Load reads a config file over the defaults. Files ending in .toml are
// decoded as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("config: decoding %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return err
		}
		data = buf.Bytes()
	} else {
		var err error
		if data, err = yaml.Marshal(cfg); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// TotalYears is the generated horizon including spin-up.
func (c *Config) TotalYears() int {
	return c.Years + c.SpinUpYears
}

func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("config: source is required")
	}
	if c.Source == "historical" && c.Dataset == "" {
		return fmt.Errorf("config: historical source requires a dataset")
	}
	if c.Years < 0 || c.SpinUpYears < 0 {
		return fmt.Errorf("config: years (%d) and spin_up_years (%d) must not be negative", c.Years, c.SpinUpYears)
	}
	if c.TotalYears() == 0 {
		return fmt.Errorf("config: nothing to generate with zero years")
	}
	if c.Atmosphere.CO2 <= 0 {
		return fmt.Errorf("config: atmospheric CO2 must be positive, got %g", c.Atmosphere.CO2)
	}
	if c.Wind.Summer < 0 || c.Wind.Winter < 0 {
		return fmt.Errorf("config: wind speeds must not be negative")
	}
	return nil
}

// SourceParams returns the forcing parameters for the configured source.
// Historical datasets name their columns after the region.
func (c *Config) SourceParams() forcing.SourceParams {
	return forcing.SourceParams{
		Dataset: c.Dataset,
		Prefix:  c.Region,
	}
}
