// Package dataset loads observation tables from CSV files and selects
// the dependent and regressor columns a regression needs.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Table is a set of named, equally long observation columns.
type Table struct {
	Names []string
	Cols  [][]float64 // Cols[j] holds the observations of Names[j]
}

// LoadCSV reads a headered CSV file into a Table. Every cell below the
// header must parse as a float.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("empty header in %s", path)
	}
	k := len(header)
	cols := make([][]float64, k)

	row := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+2, err) // +2 for header + 1-based
		}

		// Skip completely empty lines.
		if len(record) == 1 && record[0] == "" {
			continue
		}
		if len(record) != k {
			return nil, fmt.Errorf("row %d has %d fields, want %d", row+2, len(record), k)
		}

		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", row+2, header[j], err)
			}
			cols[j] = append(cols[j], v)
		}
		row++
	}
	if row == 0 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	return &Table{Names: header, Cols: cols}, nil
}

// Nobs returns the number of observations per column.
func (t *Table) Nobs() int {
	if len(t.Cols) == 0 {
		return 0
	}
	return len(t.Cols[0])
}

// Column returns the named column, or an error when it does not exist.
func (t *Table) Column(name string) ([]float64, error) {
	i := t.index(name)
	if i < 0 {
		return nil, fmt.Errorf("no column named %q", name)
	}
	return t.Cols[i], nil
}

// Split selects the dependent column and the regressor columns,
// returning the regressors row-major as the estimator expects. An empty
// regressor list selects every column except the dependent one.
func (t *Table) Split(dep string, regressors []string) (y []float64, x [][]float64, names []string, err error) {
	di := t.index(dep)
	if di < 0 {
		return nil, nil, nil, fmt.Errorf("no column named %q", dep)
	}

	names = regressors
	if len(names) == 0 {
		for i, n := range t.Names {
			if i != di {
				names = append(names, n)
			}
		}
	}

	idx := make([]int, len(names))
	for j, n := range names {
		i := t.index(n)
		if i < 0 {
			return nil, nil, nil, fmt.Errorf("no column named %q", n)
		}
		idx[j] = i
	}

	nobs := t.Nobs()
	y = make([]float64, nobs)
	copy(y, t.Cols[di])

	x = make([][]float64, nobs)
	for row := 0; row < nobs; row++ {
		vals := make([]float64, len(idx))
		for j, i := range idx {
			vals[j] = t.Cols[i][row]
		}
		x[row] = vals
	}
	return y, x, names, nil
}

func (t *Table) index(name string) int {
	for i, n := range t.Names {
		if n == name {
			return i
		}
	}
	return -1
}
