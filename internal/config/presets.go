package config

import "sort"

var Presets = map[string]map[string]*Config{
	"seasonal": {
		"default": {
			Source: "seasonal", Region: "se", Years: 2, SpinUpYears: 5,
		},
		"quick": {
			Source: "seasonal", Region: "se", Years: 1, SpinUpYears: 0,
		},
		"decade": {
			Source: "seasonal", Region: "me", Years: 10, SpinUpYears: 5,
		},
	},
	"historical": {
		"se": {
			Source: "historical", Dataset: "data/tseries.nc", Region: "se", Years: 5, SpinUpYears: 5,
		},
		"me": {
			Source: "historical", Dataset: "data/tseries.nc", Region: "me", Years: 5, SpinUpYears: 5,
		},
		"ne": {
			Source: "historical", Dataset: "data/tseries.nc", Region: "ne", Years: 5, SpinUpYears: 5,
		},
	},
}

// GetPreset returns a copy of the named preset filled with defaults for
// the fields it leaves unset, or nil if there is no such preset.
func GetPreset(source, preset string) *Config {
	sourcePresets, ok := Presets[source]
	if !ok {
		return nil
	}
	p, ok := sourcePresets[preset]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	cfg.Source = p.Source
	cfg.Dataset = p.Dataset
	cfg.Region = p.Region
	cfg.Years = p.Years
	cfg.SpinUpYears = p.SpinUpYears
	return cfg
}

func ListPresets(source string) []string {
	sourcePresets, ok := Presets[source]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(sourcePresets))
	for name := range sourcePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
