package analysis

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/stat"
)

// FFT returns the n/2+1 non-negative frequency coefficients of a real series.
func FFT(data []float64) []complex128 {
	if len(data) == 0 {
		return nil
	}
	return fourier.NewFFT(len(data)).Coefficients(nil, data)
}

// PowerSpectrum returns the squared magnitude of each coefficient of the
// mean-removed series, excluding the zero frequency.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	mean := stat.Mean(data, nil)
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	coeff := FFT(centered)
	ps := make([]float64, len(coeff)-1)
	for i := range ps {
		a := cmplx.Abs(coeff[i+1])
		ps[i] = a * a
	}
	return ps
}

// DominantPeriod returns the period, in samples, of the strongest non-zero
// frequency. It returns 0 for constant or too-short series.
func DominantPeriod(data []float64) float64 {
	ps := PowerSpectrum(data)
	best := -1
	for i, p := range ps {
		if p > 1e-12 && (best < 0 || p > ps[best]) {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	// ps[i] holds frequency index i+1
	return float64(len(data)) / float64(best+1)
}
