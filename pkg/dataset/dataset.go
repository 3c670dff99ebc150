package dataset

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/roffe/txgraph/pkg/timeseries"
)

var (
	ErrNoData     = errors.New("no data rows")
	ErrIrregular  = errors.New("timestamps are not on a regular interval")
	ErrTimeFormat = errors.New("unrecognised timestamp")
	ErrFormat     = errors.New("unsupported file format")
)

// Dataset is a set of series sharing one time axis. Column order of the
// source file is kept.
type Dataset struct {
	Name     string
	Interval timeseries.Interval
	Series   []*timeseries.Series
}

// Lookup returns the series with the given name.
func (d *Dataset) Lookup(name string) *timeseries.Series {
	for _, s := range d.Series {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Load reads a dataset, picking the reader from the file extension.
func Load(filename string) (*Dataset, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		rows, err = readCSV(filename)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(filename, "")
	default:
		return nil, fmt.Errorf("%s: %w", filename, ErrFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	ds, err := FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	ds.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return ds, nil
}

// FromRows builds a dataset from a header row followed by data rows. The
// first column holds timestamps, every other column one series. Rows missing
// from the regular grid and empty cells become missing samples.
func FromRows(rows [][]string) (*Dataset, error) {
	if len(rows) < 2 {
		return nil, ErrNoData
	}
	header := rows[0]
	data := rows[1:]

	times := make([]time.Time, 0, len(data))
	for i, row := range data {
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			return nil, fmt.Errorf("row %d: %w", i+2, ErrTimeFormat)
		}
		t, err := ParseTime(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		times = append(times, t)
	}

	interval, err := DetectInterval(times)
	if err != nil {
		return nil, err
	}
	start := times[0]
	n := interval.Steps(start, times[len(times)-1]) + 1

	ds := &Dataset{Interval: interval}
	for col := 1; col < len(header); col++ {
		values := make([]float64, n)
		for i := range values {
			values[i] = math.NaN()
		}
		name := strings.TrimSpace(header[col])
		if name == "" {
			name = fmt.Sprintf("Column %d", col+1)
		}
		ds.Series = append(ds.Series, timeseries.New(name, start, interval, values))
	}

	for i, row := range data {
		idx := interval.Steps(start, times[i])
		if !interval.Add(start, idx).Equal(times[i]) {
			return nil, fmt.Errorf("row %d at %s: %w", i+2, times[i].Format(time.RFC3339), ErrIrregular)
		}
		for col := 1; col < len(row) && col < len(header); col++ {
			cell := strings.TrimSpace(row[col])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i+2, header[col], err)
			}
			if err := ds.Series[col-1].Set(times[i], v); err != nil {
				return nil, err
			}
		}
	}
	return ds, nil
}
