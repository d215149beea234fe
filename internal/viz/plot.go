package viz

import (
	"fmt"
	"image/color"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotSeries draws a terminal line plot, averaging values down to width
// points when the series is longer.
func PlotSeries(values []float64, caption string, width, height int) string {
	if len(values) == 0 {
		return Subtle.Render("(no data)")
	}
	return asciigraph.Plot(Downsample(values, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Downsample averages values into at most n buckets.
func Downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	out := make([]float64, n)
	for i := range out {
		lo := i * len(values) / n
		hi := (i + 1) * len(values) / n
		sum := 0.0
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

// Line is one named series of a figure.
type Line struct {
	Name   string
	Values []float64
}

var palette = []color.RGBA{
	{R: 0x00, G: 0x77, B: 0xbe, A: 0xff},
	{R: 0xd6, G: 0x5f, B: 0x00, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// SavePlot writes a figure of daily lines against time in years. The
// format follows the file extension (.png, .svg, .pdf).
func SavePlot(path, title, ylabel string, lines []Line) error {
	if len(lines) == 0 {
		return fmt.Errorf("no series to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (years)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	for i, l := range lines {
		xys := make(plotter.XYs, len(l.Values))
		for d, v := range l.Values {
			xys[d].X = float64(d) / 365
			xys[d].Y = v
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("series %s: %w", l.Name, err)
		}
		line.Color = palette[i%len(palette)]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(l.Name, line)
	}
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
