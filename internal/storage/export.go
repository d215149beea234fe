package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

type ExportData struct {
	Metadata *RunMetadata         `json:"metadata"`
	Days     int                  `json:"days"`
	Series   map[string][]float64 `json:"series"`
}

func ExportJSON(path string, meta *RunMetadata, series *Series) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, meta, series)
}

func WriteJSON(w io.Writer, meta *RunMetadata, series *Series) error {
	data := ExportData{
		Metadata: meta,
		Days:     series.Len(),
		Series:   series.Columns,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportTable writes the series to path as a delimited text table. See WriteTable.
func ExportTable(path string, series *Series, delim rune, decimals int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteTable(file, series, delim, decimals)
}

// WriteTable writes the series as a delimited text table with values
// rounded to the given number of decimals. A tab delimiter and two decimals
// give the layout of the model's initial-condition output files.
func WriteTable(out io.Writer, series *Series, delim rune, decimals int) error {
	for _, name := range series.Header {
		if _, ok := series.Columns[name]; !ok {
			return fmt.Errorf("series has no column %s", name)
		}
	}
	w := csv.NewWriter(out)
	w.Comma = delim
	return writeRows(w, series.Header, series.Columns, 'f', decimals)
}

func writeSeries(out io.Writer, header []string, cols map[string][]float64, format byte, prec int) error {
	return writeRows(csv.NewWriter(out), header, cols, format, prec)
}

func writeRows(w *csv.Writer, header []string, cols map[string][]float64, format byte, prec int) error {
	if err := w.Write(header); err != nil {
		return err
	}

	n := 0
	if len(header) > 0 {
		n = len(cols[header[0]])
	}
	row := make([]string, len(header))
	for i := 0; i < n; i++ {
		for j, name := range header {
			col := cols[name]
			if i >= len(col) {
				return fmt.Errorf("column %s has %d rows, want %d", name, len(col), n)
			}
			row[j] = strconv.FormatFloat(col[i], format, prec, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
