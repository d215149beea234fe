package forcing

// Wind holds seasonal 10 m wind speeds in m/s.
type Wind struct {
	Summer float64 `yaml:"summer" json:"summer" toml:"summer"`
	Winter float64 `yaml:"winter" json:"winter" toml:"winter"`
}

// Summer runs from 1 May to 30 September on the 1-based day-of-year calendar.
const (
	summerStart = 121
	summerEnd   = 273
)

func DefaultWind() Wind {
	return Wind{Summer: 7.0, Winter: 10.5}
}

// At returns the wind speed for a 1-based day of year.
func (w Wind) At(dayOfYear int) float64 {
	if dayOfYear >= summerStart && dayOfYear <= summerEnd {
		return w.Summer
	}
	return w.Winter
}

// Series returns the daily wind speed for n days starting at day 1.
func (w Wind) Series(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = w.At(i%DaysPerYear + 1)
	}
	return out
}
