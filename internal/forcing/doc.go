// Package forcing builds the daily temperature and salinity series that
// drive the mixed-layer model.
//
// A [Source] materializes a [Series] of exactly years*365 days. Two sources
// are provided: [Seasonal], an idealized sinusoidal year, and [Historical],
// which reads one year of regional data from a dataset file, closes the
// year-end discontinuity with [LoopYear] and tiles the corrected year.
//
// Dataset files are netCDF-3 (.nc), CSV (.csv) or spreadsheets (.xlsx, first
// sheet). Columns are named <prefix>temp and <prefix>salt, one row per day of
// year.
package forcing
