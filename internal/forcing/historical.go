package forcing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Historical reads one year of daily regional data and repeats it with the
// year boundary closed by LoopYear.
type Historical struct {
	Path   string
	Prefix string
	Log    logrus.FieldLogger
}

func NewHistorical(path, prefix string) *Historical {
	return &Historical{
		Path:   path,
		Prefix: prefix,
		Log:    logrus.StandardLogger(),
	}
}

func (h *Historical) Name() string { return "historical" }

func (h *Historical) Load(ctx context.Context, years int) (*Series, error) {
	total, err := totalDays(years)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	h.Log.WithFields(logrus.Fields{
		"dataset": h.Path,
		"prefix":  h.Prefix,
	}).Debug("loading historical forcing")

	ds, err := OpenDataset(h.Path)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	temp, err := h.loopedColumn(ds, h.Prefix+"temp")
	if err != nil {
		return nil, err
	}
	sal, err := h.loopedColumn(ds, h.Prefix+"salt")
	if err != nil {
		return nil, err
	}

	h.Log.WithFields(logrus.Fields{
		"dataset": h.Path,
		"days":    total,
		"elapsed": time.Since(start),
	}).Debug("historical forcing loaded")

	return &Series{
		Temperature: Tile(temp, total),
		Salinity:    Tile(sal, total),
	}, nil
}

// loopedColumn returns two consecutive corrected copies of the first year of a column.
func (h *Historical) loopedColumn(ds Dataset, name string) ([]float64, error) {
	raw, err := ds.Column(name)
	if err != nil {
		return nil, err
	}
	if len(raw) < DaysPerYear {
		return nil, fmt.Errorf("%w: column %s has %d values", ErrShortSeries, name, len(raw))
	}
	year, err := LoopYear(raw[:DaysPerYear])
	if err != nil {
		return nil, err
	}
	return append(year, year...), nil
}
