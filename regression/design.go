package regression

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// makeDesignMatrix assembles the T x K' regressor matrix from the raw
// regressors, appending the constant column and then the trend column
// when the specification requests them. It returns the matrix together
// with the ordered regressor names.
func makeDesignMatrix(x [][]float64, nobs int, spec ModelSpec) (*mat.Dense, []string, error) {
	if len(x) != nobs {
		return nil, nil, &DimensionError{Rows: len(x), Obs: nobs}
	}
	if nobs == 0 {
		return nil, nil, &DimensionError{Rows: 0, Obs: 0}
	}

	nvars := len(x[0])
	if nvars == 0 {
		return nil, nil, fmt.Errorf("no regressors provided")
	}

	names := spec.VarNames
	if len(names) == 0 {
		names = make([]string, nvars)
		for i := range names {
			names[i] = fmt.Sprintf("x%02d", i+1)
		}
	} else if len(names) != nvars {
		return nil, nil, fmt.Errorf("got %d variable names for %d regressors", len(names), nvars)
	}

	ncoefs := nvars
	if spec.Constant != 0 {
		ncoefs++
	}
	if spec.HasTrend {
		ncoefs++
	}

	// Fill X row by row: raw regressors, then constant, then trend.
	X := mat.NewDense(nobs, ncoefs, nil)
	for t := 0; t < nobs; t++ {
		row := x[t]
		if len(row) != nvars {
			return nil, nil, fmt.Errorf("row %d has %d regressor values, want %d", t, len(row), nvars)
		}

		col := 0
		for k := 0; k < nvars; k++ {
			X.Set(t, col, row[k])
			col++
		}
		if spec.Constant != 0 {
			X.Set(t, col, spec.Constant)
			col++
		}
		if spec.HasTrend {
			X.Set(t, col, float64(t)-spec.TrendOffset)
		}
	}

	full := make([]string, 0, ncoefs)
	full = append(full, names...)
	if spec.Constant != 0 {
		full = append(full, "Constant")
	}
	if spec.HasTrend {
		full = append(full, "Trend")
	}

	seen := make(map[string]struct{}, len(full))
	for _, n := range full {
		if _, dup := seen[n]; dup {
			return nil, nil, fmt.Errorf("duplicate regressor name %q", n)
		}
		seen[n] = struct{}{}
	}

	return X, full, nil
}
