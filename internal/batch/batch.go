package batch

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/carbonbox/internal/analysis"
	"github.com/san-kum/carbonbox/internal/config"
	"github.com/san-kum/carbonbox/internal/forcing"
	"github.com/san-kum/carbonbox/internal/scenario"
	"github.com/san-kum/carbonbox/internal/storage"
)

// Batch defines a sequence of scenario runs.
type Batch struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one scenario run. Preset names a config preset as
// "<source>/<name>"; the other fields override it when set.
type Step struct {
	Preset         string        `yaml:"preset"`
	Source         string        `yaml:"source"`
	Dataset        string        `yaml:"dataset"`
	Region         string        `yaml:"region"`
	Years          *int          `yaml:"years"`
	SpinUpYears    *int          `yaml:"spin_up_years"`
	AtmosphericCO2 float64       `yaml:"atmospheric_co2"`
	Wind           *forcing.Wind `yaml:"wind"`
}

type Result struct {
	Step     int
	RunID    string
	Scenario *scenario.Scenario
}

func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, err
	}
	if len(b.Steps) == 0 {
		return nil, fmt.Errorf("batch %s has no steps", path)
	}

	return &b, nil
}

// Config resolves the step against base.
func (s Step) Config(base *config.Config) (*config.Config, error) {
	cfg := *base
	if s.Preset != "" {
		source, name, ok := strings.Cut(s.Preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset %q: want <source>/<name>", s.Preset)
		}
		p := config.GetPreset(source, name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", s.Preset)
		}
		cfg = *p
	}

	if s.Source != "" {
		cfg.Source = s.Source
	}
	if s.Dataset != "" {
		cfg.Dataset = s.Dataset
	}
	if s.Region != "" {
		cfg.Region = s.Region
	}
	if s.Years != nil {
		cfg.Years = *s.Years
	}
	if s.SpinUpYears != nil {
		cfg.SpinUpYears = *s.SpinUpYears
	}
	if s.AtmosphericCO2 != 0 {
		cfg.Atmosphere.CO2 = s.AtmosphericCO2
	}
	if s.Wind != nil {
		cfg.Wind = *s.Wind
	}
	return &cfg, nil
}

type Runner struct {
	Registry *forcing.Registry
	Store    *storage.Store
	Log      logrus.FieldLogger
}

// Run builds every step in order and saves it when a store is set. It stops
// at the first failing step and returns the results completed so far.
func (r *Runner) Run(ctx context.Context, b *Batch, base *config.Config) ([]Result, error) {
	results := make([]Result, 0, len(b.Steps))

	for i, step := range b.Steps {
		cfg, err := step.Config(base)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		r.Log.WithFields(logrus.Fields{
			"batch":  b.Name,
			"step":   fmt.Sprintf("%d/%d", i+1, len(b.Steps)),
			"source": cfg.Source,
			"region": cfg.Region,
		}).Info("running step")

		src, err := r.source(cfg)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		sc, err := (&scenario.Builder{Log: r.Log}).Build(ctx, cfg, src)
		if err != nil {
			return results, fmt.Errorf("step %d build: %w", i+1, err)
		}

		res := Result{Step: i + 1, Scenario: sc}
		if r.Store != nil {
			id, err := r.Store.Save(sc, analysis.Metrics(sc.Columns()))
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			res.RunID = id
		}
		results = append(results, res)
	}

	return results, nil
}

// source resolves cfg's forcing source and points a historical loader at
// the runner's logger.
func (r *Runner) source(cfg *config.Config) (forcing.Source, error) {
	src, err := r.Registry.GetSource(cfg.Source, cfg.SourceParams())
	if err != nil {
		return nil, err
	}
	if h, ok := src.(*forcing.Historical); ok && r.Log != nil {
		h.Log = r.Log
	}
	return src, nil
}
