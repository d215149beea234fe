// Package analysis provides diagnostics for daily forcing series.
//
//   - [Summarize]: mean, spread and extrema of a series
//   - [AnnualExtrema]: day of the maximum and minimum within each year
//   - [PowerSpectrum] and [DominantPeriod]: periodicity of a series
//   - [MaxStep]: largest day-to-day change, used to check year boundaries
//
// A seasonal series of several years should show a dominant period of 365
// days:
//
//	period := analysis.DominantPeriod(s.Temperature)
package analysis
