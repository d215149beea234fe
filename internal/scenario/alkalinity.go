package scenario

import (
	"errors"
	"fmt"
)

// ErrInvalidRegion indicates a region code other than se, me or ne.
var ErrInvalidRegion = errors.New("scenario: invalid region, expected one of 'se', 'me', 'ne'")

type regression struct {
	slope, intercept float64
}

// Salinity to total alkalinity regressions for the US East Coast shelf
// (south, mid and north), in µmol/kg.
var regressions = map[string]regression{
	"se": {48.7, 608.8},
	"me": {46.6, 670.6},
	"ne": {39.1, 932.7},
}

func Regions() []string {
	return []string{"se", "me", "ne"}
}

// Alkalinity returns total alkalinity in µmol/kg for salinity in a region.
func Alkalinity(sal float64, region string) (float64, error) {
	r, ok := regressions[region]
	if !ok {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidRegion, region)
	}
	return r.slope*sal + r.intercept, nil
}

func AlkalinitySeries(sal []float64, region string) ([]float64, error) {
	r, ok := regressions[region]
	if !ok {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidRegion, region)
	}
	out := make([]float64, len(sal))
	for i, s := range sal {
		out[i] = r.slope*s + r.intercept
	}
	return out, nil
}
