// Package viz renders scenarios in the terminal.
//
//   - [RenderConstants]: table of seawater constants at one condition
//   - [RenderInitial]: initial carbonate system of a scenario
//   - [PlotSeries]: asciigraph line plot of a daily series
//   - [SavePlot]: PNG/SVG figure of several daily series
//   - [Browser]: Bubble Tea day-by-day browser of a saved run
//
// # Key Bindings
//
//	←/→ h/l - previous/next day
//	↑/↓ k/j - previous/next column
//	PgUp/PgDn - jump one month
//	T       - cycle color themes
//	Q       - quit
package viz
