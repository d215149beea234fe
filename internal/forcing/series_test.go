package forcing

import (
	"context"
	"errors"
	"math"
	"testing"
)

func argmax(v []float64) int {
	best := 0
	for i := range v {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

func argmin(v []float64) int {
	best := 0
	for i := range v {
		if v[i] < v[best] {
			best = i
		}
	}
	return best
}

func TestSeasonalLength(t *testing.T) {
	for _, years := range []int{0, 1, 2, 7} {
		s, err := NewSeasonal().Load(context.Background(), years)
		if err != nil {
			t.Fatalf("years=%d: %v", years, err)
		}
		if len(s.Temperature) != years*365 || len(s.Salinity) != years*365 {
			t.Errorf("years=%d: got %d/%d days, want %d", years, len(s.Temperature), len(s.Salinity), years*365)
		}
	}
}

func TestSeasonalExtrema(t *testing.T) {
	s, err := NewSeasonal().Load(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 730 {
		t.Fatalf("expected 730 days, got %d", s.Len())
	}

	for year := 0; year < 2; year++ {
		temp := s.Temperature[year*365 : (year+1)*365]
		sal := s.Salinity[year*365 : (year+1)*365]

		// sin peaks where (d-180)/365 = 1/4
		if got := argmax(temp); got != 271 {
			t.Errorf("year %d: temperature max at day %d, want 271", year, got)
		}
		// sin troughs where (d+31)/365 = 3/4
		if got := argmin(sal); got != 243 {
			t.Errorf("year %d: salinity min at day %d, want 243", year, got)
		}
	}

	if math.Abs(s.Temperature[180]-15) > 1e-12 {
		t.Errorf("temperature at the phase shift should equal the mean, got %f", s.Temperature[180])
	}
}

func TestSeasonalBounds(t *testing.T) {
	year := NewSeasonal().Year()
	for d := range year.Temperature {
		if year.Temperature[d] < 7.5 || year.Temperature[d] > 22.5 {
			t.Fatalf("day %d temperature %f out of [7.5, 22.5]", d, year.Temperature[d])
		}
		if year.Salinity[d] < 33 || year.Salinity[d] > 34 {
			t.Fatalf("day %d salinity %f out of [33, 34]", d, year.Salinity[d])
		}
	}
}

func TestNegativeYears(t *testing.T) {
	_, err := NewSeasonal().Load(context.Background(), -1)
	if !errors.Is(err, ErrInvalidYears) {
		t.Errorf("expected ErrInvalidYears, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSeasonal().Load(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestTile(t *testing.T) {
	tests := []struct {
		name  string
		cycle []float64
		total int
		want  []float64
	}{
		{"exact multiple", []float64{1, 2}, 4, []float64{1, 2, 1, 2}},
		{"partial cycle", []float64{1, 2, 3}, 5, []float64{1, 2, 3, 1, 2}},
		{"shorter than cycle", []float64{1, 2, 3}, 2, []float64{1, 2}},
		{"zero", []float64{1}, 0, []float64{}},
		{"empty cycle", nil, 3, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tile(tt.cycle, tt.total)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestLoopYear(t *testing.T) {
	raw := make([]float64, 365)
	for i := range raw {
		raw[i] = 10 + 0.02*float64(i)
	}

	got, err := LoopYear(raw)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != raw[0] {
		t.Errorf("first day changed: %f != %f", got[0], raw[0])
	}
	if math.Abs(got[364]-raw[0]) > 1e-12 {
		t.Errorf("last day = %f, want first day %f", got[364], raw[0])
	}
	// a pure linear drift is removed entirely
	for i := range got {
		if math.Abs(got[i]-10) > 1e-9 {
			t.Fatalf("day %d = %f, want 10", i, got[i])
		}
	}
}

func TestLoopYearRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, 200, 364, 366} {
		if _, err := LoopYear(make([]float64, n)); !errors.Is(err, ErrShortSeries) {
			t.Errorf("n=%d: expected ErrShortSeries, got %v", n, err)
		}
	}
}

func TestInterp(t *testing.T) {
	v := []float64{0, 10, 20}
	tests := []struct {
		x, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 5},
		{1.25, 12.5},
		{2, 20},
		{7, 20},
	}
	for _, tt := range tests {
		if got := Interp(v, tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Interp(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if !math.IsNaN(Interp(nil, 1)) {
		t.Error("expected NaN for empty series")
	}
}

func TestSeriesAtAndSlice(t *testing.T) {
	s := NewSeasonal().Year()
	temp, sal := s.At(100)
	if temp != s.Temperature[100] || sal != s.Salinity[100] {
		t.Errorf("At(100) = %f, %f", temp, sal)
	}

	sub, err := s.Slice(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Len() != 10 || sub.Temperature[0] != s.Temperature[10] {
		t.Errorf("unexpected slice %v", sub.Temperature)
	}
	if _, err := s.Slice(300, 400); err == nil {
		t.Error("expected out of range error")
	}
	if s.Years() != 1 {
		t.Errorf("Years() = %d, want 1", s.Years())
	}
}

func TestDayOfYear(t *testing.T) {
	tests := []struct {
		t    float64
		want int
	}{
		{0, 1},
		{0.5, 183},
		{1, 1},
		{2.25, 92},
	}
	for _, tt := range tests {
		if got := DayOfYear(tt.t); got != tt.want {
			t.Errorf("DayOfYear(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}
}

func TestWind(t *testing.T) {
	w := DefaultWind()
	tests := []struct {
		day  int
		want float64
	}{
		{1, 10.5},
		{120, 10.5},
		{121, 7.0},
		{200, 7.0},
		{273, 7.0},
		{274, 10.5},
		{365, 10.5},
	}
	for _, tt := range tests {
		if got := w.At(tt.day); got != tt.want {
			t.Errorf("At(%d) = %v, want %v", tt.day, got, tt.want)
		}
	}

	series := w.Series(730)
	if len(series) != 730 {
		t.Fatalf("len = %d", len(series))
	}
	if series[120] != 7.0 || series[365+120] != 7.0 || series[0] != 10.5 {
		t.Errorf("unexpected wind series values")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	src, err := r.GetSource("seasonal", SourceParams{})
	if err != nil {
		t.Fatal(err)
	}
	if src.Name() != "seasonal" {
		t.Errorf("got %s", src.Name())
	}

	src, err = r.GetSource("historical", SourceParams{Dataset: "x.nc", Prefix: "se"})
	if err != nil {
		t.Fatal(err)
	}
	if h, ok := src.(*Historical); !ok || h.Prefix != "se" || h.Path != "x.nc" {
		t.Errorf("unexpected historical source %#v", src)
	}

	if _, err := r.GetSource("nonexistent", SourceParams{}); err == nil {
		t.Error("expected error for unknown source")
	}

	names := r.ListSources()
	if len(names) != 2 || names[0] != "historical" || names[1] != "seasonal" {
		t.Errorf("ListSources() = %v", names)
	}
}
