package forcing

import (
	"fmt"
	"math"
)

// DaysPerYear is the model calendar length. Leap days are not represented.
const DaysPerYear = 365

// Series holds daily forcing values.
type Series struct {
	Temperature []float64 // °C
	Salinity    []float64 // psu
}

func (s *Series) Len() int { return len(s.Temperature) }

// Years returns the number of whole model years covered.
func (s *Series) Years() int { return s.Len() / DaysPerYear }

// Slice returns days [from, to) sharing the underlying arrays.
func (s *Series) Slice(from, to int) (*Series, error) {
	if from < 0 || to > s.Len() || from > to {
		return nil, fmt.Errorf("forcing: slice [%d, %d) out of range for %d days", from, to, s.Len())
	}
	return &Series{
		Temperature: s.Temperature[from:to],
		Salinity:    s.Salinity[from:to],
	}, nil
}

// At linearly interpolates both series at a fractional day index.
// Values beyond either end are clamped to the end points.
func (s *Series) At(day float64) (temp, sal float64) {
	return Interp(s.Temperature, day), Interp(s.Salinity, day)
}

// Interp linearly interpolates values on the integer grid 0..len-1.
func Interp(values []float64, x float64) float64 {
	n := len(values)
	switch {
	case n == 0:
		return math.NaN()
	case x <= 0:
		return values[0]
	case x >= float64(n-1):
		return values[n-1]
	}
	i := int(x)
	frac := x - float64(i)
	return values[i] + frac*(values[i+1]-values[i])
}

// DayOfYear maps a model time in years to the day of year, 1..365.
func DayOfYear(tYears float64) int {
	totalDays := tYears * DaysPerYear
	return int(math.Mod(totalDays, DaysPerYear)) + 1
}

// Tile repeats cycle and truncates the result to exactly total values.
func Tile(cycle []float64, total int) []float64 {
	if len(cycle) == 0 || total <= 0 {
		return []float64{}
	}
	out := make([]float64, total)
	for i := range out {
		out[i] = cycle[i%len(cycle)]
	}
	return out
}

// LoopYear adds a linear ramp from 0 to v[0]-v[364] so that the last day
// of the corrected year equals the first and tiling is seamless.
func LoopYear(v []float64) ([]float64, error) {
	if len(v) != DaysPerYear {
		return nil, fmt.Errorf("%w: got %d values", ErrShortSeries, len(v))
	}
	delta := v[0] - v[DaysPerYear-1]
	step := delta / float64(DaysPerYear-1)

	out := make([]float64, DaysPerYear)
	for i := range v {
		slope := float64(i) * step
		if i == DaysPerYear-1 {
			slope = delta
		}
		out[i] = v[i] + slope
	}
	return out, nil
}
