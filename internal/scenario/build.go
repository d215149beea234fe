package scenario

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/san-kum/carbonbox/internal/carbsys"
	"github.com/san-kum/carbonbox/internal/config"
	"github.com/san-kum/carbonbox/internal/forcing"
	"github.com/san-kum/carbonbox/internal/seawater"
)

// Scenario holds the daily driving series of a box-model run and the state
// it starts from. Time is in years from the end of spin-up.
type Scenario struct {
	Config *config.Config
	Source string

	Time           []float64
	Temperature    []float64
	Salinity       []float64
	Alkalinity     []float64
	Wind           []float64
	K0             []float64
	PistonVelocity []float64

	Initial *carbsys.Result

	// InitialState is the tracer vector DIC, ALK, d13C·DIC, D14C·DIC.
	InitialState []float64
}

func (s *Scenario) Len() int { return len(s.Time) }

// Columns returns the daily series keyed by column name.
func (s *Scenario) Columns() map[string][]float64 {
	return map[string][]float64{
		"time":            s.Time,
		"temperature":     s.Temperature,
		"salinity":        s.Salinity,
		"alkalinity":      s.Alkalinity,
		"wind":            s.Wind,
		"k0":              s.K0,
		"piston_velocity": s.PistonVelocity,
	}
}

// ColumnNames lists Columns in output order.
var ColumnNames = []string{"time", "temperature", "salinity", "alkalinity", "wind", "k0", "piston_velocity"}

type Builder struct {
	Log logrus.FieldLogger
}

func NewBuilder() *Builder {
	return &Builder{Log: logrus.StandardLogger()}
}

// Build is NewBuilder().Build.
func Build(ctx context.Context, cfg *config.Config, src forcing.Source) (*Scenario, error) {
	return NewBuilder().Build(ctx, cfg, src)
}

// Build loads cfg.TotalYears of forcing from src, derives the daily series,
// solves the initial carbonate system from the first day and drops the
// spin-up years from the returned series.
func (b *Builder) Build(ctx context.Context, cfg *config.Config, src forcing.Source) (*Scenario, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := b.Log.WithFields(logrus.Fields{
		"source": src.Name(),
		"region": cfg.Region,
		"years":  cfg.Years,
		"spinup": cfg.SpinUpYears,
	})

	series, err := src.Load(ctx, cfg.TotalYears())
	if err != nil {
		return nil, fmt.Errorf("loading %s forcing: %w", src.Name(), err)
	}
	n := series.Len()
	if n == 0 || len(series.Salinity) != n {
		return nil, fmt.Errorf("loading %s forcing: got %d temperature and %d salinity values", src.Name(), n, len(series.Salinity))
	}
	log.WithField("days", n).Debug("forcing loaded")

	alk, err := AlkalinitySeries(series.Salinity, cfg.Region)
	if err != nil {
		return nil, err
	}
	wind := cfg.Wind.Series(n)
	k0, err := seawater.K0Series(seawater.KelvinSeries(series.Temperature), series.Salinity)
	if err != nil {
		return nil, err
	}
	piston, err := seawater.PistonVelocitySeries(wind, series.Temperature, series.Salinity)
	if err != nil {
		return nil, err
	}

	initial, err := InitialConditions(cfg.Atmosphere.CO2, alk[0], series.Temperature[0], series.Salinity[0])
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"alkalinity": initial.Alkalinity,
		"dic":        initial.DIC,
		"pH":         initial.PH,
	}).Debug("initial carbonate system solved")

	drop := cfg.SpinUpYears * forcing.DaysPerYear
	if drop > n {
		drop = n
	}
	days := n - drop
	t := make([]float64, days)
	for i := range t {
		t[i] = float64(i) / forcing.DaysPerYear
	}

	return &Scenario{
		Config:         cfg,
		Source:         src.Name(),
		Time:           t,
		Temperature:    series.Temperature[drop:],
		Salinity:       series.Salinity[drop:],
		Alkalinity:     alk[drop:],
		Wind:           wind[drop:],
		K0:             k0[drop:],
		PistonVelocity: piston[drop:],
		Initial:        initial,
		InitialState: []float64{
			initial.DIC,
			alk[0],
			cfg.Surface.D13C * initial.DIC,
			cfg.Surface.D14C * initial.DIC,
		},
	}, nil
}
