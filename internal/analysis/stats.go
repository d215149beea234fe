package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	ArgMin int     `json:"argmin"`
	ArgMax int     `json:"argmax"`
}

func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, fmt.Errorf("summarize: empty series")
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}
	iMin, iMax := floats.MinIdx(values), floats.MaxIdx(values)
	return Summary{
		Mean:   mean,
		StdDev: std,
		Min:    values[iMin],
		Max:    values[iMax],
		ArgMin: iMin,
		ArgMax: iMax,
	}, nil
}

// Metrics flattens summaries of named series into one map keyed
// "<name>_<stat>".
func Metrics(columns map[string][]float64) map[string]float64 {
	out := make(map[string]float64)
	for name, col := range columns {
		s, err := Summarize(col)
		if err != nil {
			continue
		}
		out[name+"_mean"] = s.Mean
		out[name+"_std"] = s.StdDev
		out[name+"_min"] = s.Min
		out[name+"_max"] = s.Max
	}
	return out
}

// Extrema is the day within a year of its maximum and minimum.
type Extrema struct {
	Year   int
	MaxDay int
	MinDay int
	Max    float64
	Min    float64
}

// AnnualExtrema splits values into whole periods of length period and
// locates the extrema of each. A trailing partial period is ignored.
func AnnualExtrema(values []float64, period int) []Extrema {
	if period <= 0 {
		return nil
	}
	out := make([]Extrema, 0, len(values)/period)
	for y := 0; (y+1)*period <= len(values); y++ {
		year := values[y*period : (y+1)*period]
		iMax, iMin := floats.MaxIdx(year), floats.MinIdx(year)
		out = append(out, Extrema{
			Year:   y,
			MaxDay: iMax,
			MinDay: iMin,
			Max:    year[iMax],
			Min:    year[iMin],
		})
	}
	return out
}

// MaxStep returns the largest absolute difference between consecutive values.
func MaxStep(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	diff := make([]float64, len(values)-1)
	for i := range diff {
		diff[i] = math.Abs(values[i+1] - values[i])
	}
	return floats.Max(diff)
}
