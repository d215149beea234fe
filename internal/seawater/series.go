package seawater

import "fmt"

func map1(fn func(float64) float64, a []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = fn(v)
	}
	return out
}

func map2(fn func(float64, float64) float64, a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = fn(a[i], b[i])
	}
	return out, nil
}

func map3(fn func(float64, float64, float64) float64, a, b, c []float64) ([]float64, error) {
	if len(a) != len(b) || len(a) != len(c) {
		return nil, fmt.Errorf("%w: %d, %d, %d", ErrDimensionMismatch, len(a), len(b), len(c))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = fn(a[i], b[i], c[i])
	}
	return out, nil
}

func K0Series(tempK, sal []float64) ([]float64, error) { return map2(K0, tempK, sal) }
func K1Series(tempK, sal []float64) ([]float64, error) { return map2(K1, tempK, sal) }
func K2Series(tempK, sal []float64) ([]float64, error) { return map2(K2, tempK, sal) }
func KbSeries(tempK, sal []float64) ([]float64, error) { return map2(Kb, tempK, sal) }
func KwSeries(tempK, sal []float64) ([]float64, error) { return map2(Kw, tempK, sal) }

func SchmidtSeries(tempC []float64) []float64 { return map1(Schmidt, tempC) }
func BoronSeries(sal []float64) []float64     { return map1(Boron, sal) }

func KappaSeries(wind, tempC []float64) ([]float64, error) { return map2(Kappa, wind, tempC) }

func PistonVelocitySeries(wind, tempC, sal []float64) ([]float64, error) {
	return map3(PistonVelocity, wind, tempC, sal)
}

// KelvinSeries converts a Celsius series to Kelvin.
func KelvinSeries(tempC []float64) []float64 { return map1(CelsiusToKelvin, tempC) }
