package forcing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ctessum/cdf"
	"github.com/tealeg/xlsx"
)

// DayDimension names the netCDF dimension holding daily rows.
const DayDimension = "day"

// Dataset is a table of named daily columns.
type Dataset interface {
	Columns() []string
	Column(name string) ([]float64, error)
	Close() error
}

// OpenDataset opens a dataset file, choosing the reader from its extension:
// .nc, .csv or .xlsx (first sheet, header row of column names).
func OpenDataset(path string) (Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nc":
		return openNetCDF(path)
	case ".csv":
		return openCSV(path)
	case ".xlsx":
		return openXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// WriteDataset writes equal-length columns to path in the format implied by
// its extension.
func WriteDataset(path string, columns map[string][]float64) error {
	names := make([]string, 0, len(columns))
	n := -1
	for name, col := range columns {
		if n >= 0 && len(col) != n {
			return fmt.Errorf("forcing: column %s has %d rows, want %d", name, len(col), n)
		}
		n = len(col)
		names = append(names, name)
	}
	if n <= 0 {
		return fmt.Errorf("forcing: no rows to write to %s", path)
	}
	// Sort the names so they write in the same order every time.
	sort.Strings(names)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".nc":
		return writeNetCDF(path, names, columns, n)
	case ".csv":
		return writeCSV(path, names, columns, n)
	case ".xlsx":
		return writeXLSX(path, names, columns, n)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

type netCDFDataset struct {
	f  *os.File
	nc *cdf.File
}

func openNetCDF(path string) (*netCDFDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	nc, err := cdf.Open(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("forcing: reading netcdf %s: %w", path, err)
	}
	return &netCDFDataset{f: f, nc: nc}, nil
}

func (d *netCDFDataset) Columns() []string { return d.nc.Header.Variables() }

func (d *netCDFDataset) Column(name string) ([]float64, error) {
	found := false
	for _, v := range d.nc.Header.Variables() {
		if v == name {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	if dims := d.nc.Header.Lengths(name); len(dims) != 1 {
		return nil, fmt.Errorf("forcing: variable %s has %d dimensions, want 1", name, len(dims))
	}

	// The reader reports io.EOF once a fixed-size variable is exhausted.
	r := d.nc.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("forcing: reading variable %s: %w", name, err)
	}

	switch v := buf.(type) {
	case []float64:
		return v, nil
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	case []int16:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("forcing: variable %s has unsupported type %T", name, buf)
	}
}

func (d *netCDFDataset) Close() error { return d.f.Close() }

func writeNetCDF(path string, names []string, columns map[string][]float64, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	h := cdf.NewHeader([]string{DayDimension}, []int{n})
	h.AddAttribute("", "comment", "carbonbox daily forcing dataset")
	for _, name := range names {
		h.AddVariable(name, []string{DayDimension}, []float64{0})
	}
	h.Define()

	nc, err := cdf.Create(f, h)
	if err != nil {
		return err
	}
	for _, name := range names {
		w := nc.Writer(name, nil, nil)
		if _, err := w.Write(columns[name]); err != nil && err != io.EOF {
			return fmt.Errorf("forcing: writing variable %s to netcdf file: %w", name, err)
		}
	}
	return cdf.UpdateNumRecs(f)
}

type csvDataset struct {
	names []string
	cols  map[string][]float64
}

func openCSV(path string) (*csvDataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readCSV(file)
}

func readCSV(rd io.Reader) (*csvDataset, error) {
	r := csv.NewReader(rd)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("forcing: empty csv dataset")
	}

	header := records[0]
	ds := &csvDataset{
		names: header,
		cols:  make(map[string][]float64, len(header)),
	}
	for _, name := range header {
		ds.cols[name] = make([]float64, 0, len(records)-1)
	}
	for i, record := range records[1:] {
		for j, field := range record {
			val, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("forcing: csv row %d column %s: %w", i+2, header[j], err)
			}
			ds.cols[header[j]] = append(ds.cols[header[j]], val)
		}
	}
	return ds, nil
}

func (d *csvDataset) Columns() []string { return d.names }

func (d *csvDataset) Column(name string) ([]float64, error) {
	col, ok := d.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	return col, nil
}

func (d *csvDataset) Close() error { return nil }

func writeCSV(path string, names []string, columns map[string][]float64, n int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(names); err != nil {
		return err
	}
	row := make([]string, len(names))
	for i := 0; i < n; i++ {
		for j, name := range names {
			row[j] = strconv.FormatFloat(columns[name][i], 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func openXLSX(path string) (*csvDataset, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("forcing: reading spreadsheet %s: %w", path, err)
	}
	if len(f.Sheets) == 0 || len(f.Sheets[0].Rows) == 0 {
		return nil, fmt.Errorf("forcing: empty spreadsheet %s", path)
	}

	rows := f.Sheets[0].Rows
	header := make([]string, len(rows[0].Cells))
	for j, c := range rows[0].Cells {
		header[j] = strings.TrimSpace(c.String())
	}
	ds := &csvDataset{
		names: header,
		cols:  make(map[string][]float64, len(header)),
	}
	for i, row := range rows[1:] {
		for j, c := range row.Cells {
			if j >= len(header) {
				break
			}
			val, err := c.Float()
			if err != nil {
				return nil, fmt.Errorf("forcing: spreadsheet row %d column %s: %w", i+2, header[j], err)
			}
			ds.cols[header[j]] = append(ds.cols[header[j]], val)
		}
	}
	return ds, nil
}

func writeXLSX(path string, names []string, columns map[string][]float64, n int) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("forcing")
	if err != nil {
		return err
	}
	header := sheet.AddRow()
	for _, name := range names {
		header.AddCell().SetString(name)
	}
	for i := 0; i < n; i++ {
		row := sheet.AddRow()
		for _, name := range names {
			row.AddCell().SetFloat(columns[name][i])
		}
	}
	return f.Save(path)
}
