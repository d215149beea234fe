package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/carbonbox/internal/config"
	"github.com/san-kum/carbonbox/internal/forcing"
	"github.com/san-kum/carbonbox/internal/scenario"
)

func testScenario(t *testing.T) *scenario.Scenario {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Years = 1
	cfg.SpinUpYears = 0
	sc, err := scenario.Build(context.Background(), cfg, forcing.NewSeasonal())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return sc
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	sc := testScenario(t)
	runID, err := st.Save(sc, map[string]float64{"temperature_mean": 15})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Source != "seasonal" || meta.Region != "se" {
		t.Errorf("unexpected source/region %s/%s", meta.Source, meta.Region)
	}
	if meta.Days != 365 {
		t.Errorf("expected 365 days, got %d", meta.Days)
	}
	if meta.Metrics["temperature_mean"] != 15 {
		t.Errorf("expected metric 15, got %f", meta.Metrics["temperature_mean"])
	}
	if meta.Initial == nil || meta.Initial.DIC != sc.Initial.DIC {
		t.Errorf("initial conditions not saved: %+v", meta.Initial)
	}
	if len(meta.InitialState) != 4 {
		t.Errorf("expected 4 tracers, got %v", meta.InitialState)
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series failed: %v", err)
	}
	if series.Len() != 365 {
		t.Errorf("expected 365 rows, got %d", series.Len())
	}
	temp, err := series.Column("temperature")
	if err != nil {
		t.Fatal(err)
	}
	for i := range temp {
		if temp[i] != sc.Temperature[i] {
			t.Fatalf("day %d: temperature %v != %v", i, temp[i], sc.Temperature[i])
		}
	}
	if _, err := series.Column("nonexistent"); err == nil {
		t.Error("expected error for unknown column")
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	sc := testScenario(t)
	for i := 0; i < 2; i++ {
		if _, err := st.Save(sc, nil); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "not-a-run"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testScenario(t), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	for _, name := range []string{"metadata.json", "series.csv"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}

	data, err := os.ReadFile(filepath.Join(runDir, "series.csv"))
	if err != nil {
		t.Fatal(err)
	}
	header := strings.SplitN(string(data), "\n", 2)[0]
	if header != "time,temperature,salinity,alkalinity,wind,k0,piston_velocity" {
		t.Errorf("unexpected header %q", header)
	}
}

func TestExport(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	runID, err := st.Save(testScenario(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	meta, _ := st.Load(runID)
	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, meta, series); err != nil {
		t.Fatal(err)
	}
	var decoded ExportData
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Days != 365 || len(decoded.Series["salinity"]) != 365 {
		t.Errorf("unexpected export: %d days", decoded.Days)
	}
	if decoded.Metadata.Initial.PH == 0 {
		t.Error("export is missing initial pH")
	}

	tsv := filepath.Join(tmpDir, "out.txt")
	if err := ExportTable(tsv, series, '\t', 2); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(tsv)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 366 {
		t.Fatalf("expected 366 lines, got %d", len(lines))
	}
	fields := strings.Split(lines[1], "\t")
	if len(fields) != 7 || fields[0] != "0.00" {
		t.Errorf("unexpected first row %q", lines[1])
	}
}
