package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/carbonbox/internal/carbsys"
	"github.com/san-kum/carbonbox/internal/config"
	"github.com/san-kum/carbonbox/internal/forcing"
	"github.com/san-kum/carbonbox/internal/scenario"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string                  `json:"id"`
	Source      string                  `json:"source"`
	Dataset     string                  `json:"dataset,omitempty"`
	Region      string                  `json:"region"`
	Timestamp   time.Time               `json:"timestamp"`
	Years       int                     `json:"years"`
	SpinUpYears int                     `json:"spin_up_years"`
	Days        int                     `json:"days"`
	Atmosphere  config.AtmosphereConfig `json:"atmosphere"`
	MixedLayer  config.MixedLayerConfig `json:"mixed_layer"`
	Wind        forcing.Wind            `json:"wind"`

	Initial      *carbsys.Result    `json:"initial_conditions"`
	InitialState []float64          `json:"initial_state"`
	Metrics      map[string]float64 `json:"metrics"`
}

// Series is the daily table of a saved run.
type Series struct {
	Header  []string
	Columns map[string][]float64
}

func (s *Series) Len() int {
	if len(s.Header) == 0 {
		return 0
	}
	return len(s.Columns[s.Header[0]])
}

func (s *Series) Column(name string) ([]float64, error) {
	col, ok := s.Columns[name]
	if !ok {
		return nil, fmt.Errorf("unknown column: %s (available: %v)", name, s.Header)
	}
	return col, nil
}

func NewMetadata(id string, sc *scenario.Scenario, metrics map[string]float64) RunMetadata {
	cfg := sc.Config
	return RunMetadata{
		ID:           id,
		Source:       sc.Source,
		Dataset:      cfg.Dataset,
		Region:       cfg.Region,
		Timestamp:    time.Now(),
		Years:        cfg.Years,
		SpinUpYears:  cfg.SpinUpYears,
		Days:         sc.Len(),
		Atmosphere:   cfg.Atmosphere,
		MixedLayer:   cfg.MixedLayer,
		Wind:         cfg.Wind,
		Initial:      sc.Initial,
		InitialState: sc.InitialState,
		Metrics:      metrics,
	}
}

// Save writes a scenario under a new run directory and returns its id.
func (s *Store) Save(sc *scenario.Scenario, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", sc.Source, sc.Config.Region, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := NewMetadata(runID, sc, metrics)

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, seriesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := writeSeries(csvFile, scenario.ColumnNames, sc.Columns(), 'g', -1); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(runID string) (*Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Series{Columns: map[string][]float64{}}, nil
	}

	header := records[0]
	series := &Series{
		Header:  header,
		Columns: make(map[string][]float64, len(header)),
	}
	for _, name := range header {
		series.Columns[name] = make([]float64, 0, len(records)-1)
	}

	for i := 1; i < len(records); i++ {
		for j, field := range records[i] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", seriesFile, i+1, err)
			}
			series.Columns[header[j]] = append(series.Columns[header[j]], val)
		}
	}

	return series, nil
}
