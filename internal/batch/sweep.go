package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/carbonbox/internal/analysis"
	"github.com/san-kum/carbonbox/internal/config"
	"github.com/san-kum/carbonbox/internal/scenario"
)

// Sweep varies one scenario parameter over an evenly spaced range.
type Sweep struct {
	Param    string
	Min      float64
	Max      float64
	NumSteps int
}

type SweepResult struct {
	Value          float64 `json:"value"`
	DIC            float64 `json:"dic"`
	PH             float64 `json:"pH"`
	OmegaAragonite float64 `json:"saturation_aragonite"`
	MeanPiston     float64 `json:"mean_piston_velocity"`
}

var sweepParams = map[string]func(*config.Config, float64){
	"atmospheric_co2": func(c *config.Config, v float64) { c.Atmosphere.CO2 = v },
	"wind_summer":     func(c *config.Config, v float64) { c.Wind.Summer = v },
	"wind_winter":     func(c *config.Config, v float64) { c.Wind.Winter = v },
}

func SweepParams() []string {
	return []string{"atmospheric_co2", "wind_summer", "wind_winter"}
}

// RunSweep builds one scenario per parameter value concurrently and reports
// its initial carbonate system and mean gas exchange, in value order.
func (r *Runner) RunSweep(ctx context.Context, sweep *Sweep, base *config.Config) ([]SweepResult, error) {
	set, ok := sweepParams[sweep.Param]
	if !ok {
		return nil, fmt.Errorf("unknown sweep parameter: %s (available: %v)", sweep.Param, SweepParams())
	}
	if sweep.NumSteps < 1 {
		return nil, fmt.Errorf("sweep needs at least one step, got %d", sweep.NumSteps)
	}

	step := 0.0
	if sweep.NumSteps > 1 {
		step = (sweep.Max - sweep.Min) / float64(sweep.NumSteps-1)
	}

	results := make([]SweepResult, sweep.NumSteps)
	errs := make([]error, sweep.NumSteps)

	var wg sync.WaitGroup
	for i := 0; i < sweep.NumSteps; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			value := sweep.Min + float64(idx)*step
			cfg := *base
			set(&cfg, value)

			results[idx], errs[idx] = r.sweepPoint(ctx, &cfg, value)
			if errs[idx] != nil {
				errs[idx] = fmt.Errorf("sweep %s=%g: %w", sweep.Param, value, errs[idx])
			}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

func (r *Runner) sweepPoint(ctx context.Context, cfg *config.Config, value float64) (SweepResult, error) {
	src, err := r.source(cfg)
	if err != nil {
		return SweepResult{}, err
	}
	sc, err := (&scenario.Builder{Log: r.Log}).Build(ctx, cfg, src)
	if err != nil {
		return SweepResult{}, err
	}
	piston, err := analysis.Summarize(sc.PistonVelocity)
	if err != nil {
		return SweepResult{}, err
	}
	r.Log.WithField("value", value).Debug("sweep point built")

	return SweepResult{
		Value:          value,
		DIC:            sc.Initial.DIC,
		PH:             sc.Initial.PH,
		OmegaAragonite: sc.Initial.OmegaAragonite,
		MeanPiston:     piston.Mean,
	}, nil
}
