package forcing

import (
	"context"
	"math"
)

// Seasonal is an idealized US East Coast shelf year:
//
//	T(d) = TempMean + TempAmplitude*sin(2π(d - TempPhase)/365)
//	S(d) = SalMean  + SalAmplitude *sin(2π(d + SalPhase)/365)
type Seasonal struct {
	TempMean      float64
	TempAmplitude float64
	TempPhase     float64
	SalMean       float64
	SalAmplitude  float64
	SalPhase      float64
}

func NewSeasonal() *Seasonal {
	return &Seasonal{
		TempMean:      15,
		TempAmplitude: 7.5,
		TempPhase:     180,
		SalMean:       33.5,
		SalAmplitude:  0.5,
		SalPhase:      31,
	}
}

func (s *Seasonal) Name() string { return "seasonal" }

// Year returns one 365-day cycle.
func (s *Seasonal) Year() *Series {
	temp := make([]float64, DaysPerYear)
	sal := make([]float64, DaysPerYear)
	for d := 0; d < DaysPerYear; d++ {
		day := float64(d)
		temp[d] = s.TempMean + s.TempAmplitude*math.Sin(2*math.Pi*(day-s.TempPhase)/DaysPerYear)
		sal[d] = s.SalMean + s.SalAmplitude*math.Sin(2*math.Pi*(day+s.SalPhase)/DaysPerYear)
	}
	return &Series{Temperature: temp, Salinity: sal}
}

func (s *Seasonal) Load(ctx context.Context, years int) (*Series, error) {
	total, err := totalDays(years)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	year := s.Year()
	return &Series{
		Temperature: Tile(year.Temperature, total),
		Salinity:    Tile(year.Salinity, total),
	}, nil
}
