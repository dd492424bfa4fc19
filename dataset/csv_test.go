package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "obs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "cons, income, rate\n1, 2, 3\n4, 5, 6\n7, 8, 9\n")

	table, err := LoadCSV(path)
	require.NoError(t, err)
	require.Equal(t, []string{"cons", "income", "rate"}, table.Names)
	require.Equal(t, 3, table.Nobs())

	income, err := table.Column("income")
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5, 8}, income)

	_, err = table.Column("missing")
	require.Error(t, err)
}

func TestLoadCSVBadCell(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2\n3,oops\n")

	_, err := LoadCSV(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 3")
	require.Contains(t, err.Error(), "column b")
}

func TestLoadCSVNoRows(t *testing.T) {
	path := writeCSV(t, "a,b\n")

	_, err := LoadCSV(path)
	require.Error(t, err)
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestSplitExplicitRegressors(t *testing.T) {
	path := writeCSV(t, "cons,income,rate\n1,2,3\n4,5,6\n7,8,9\n")
	table, err := LoadCSV(path)
	require.NoError(t, err)

	y, x, names, err := table.Split("cons", []string{"rate"})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 4, 7}, y)
	require.Equal(t, []string{"rate"}, names)
	require.Equal(t, [][]float64{{3}, {6}, {9}}, x)
}

func TestSplitDefaultRegressors(t *testing.T) {
	path := writeCSV(t, "cons,income,rate\n1,2,3\n4,5,6\n7,8,9\n")
	table, err := LoadCSV(path)
	require.NoError(t, err)

	// Empty regressor list selects everything except the dependent.
	y, x, names, err := table.Split("income", nil)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5, 8}, y)
	require.Equal(t, []string{"cons", "rate"}, names)
	require.Equal(t, [][]float64{{1, 3}, {4, 6}, {7, 9}}, x)
}

func TestSplitUnknownColumns(t *testing.T) {
	path := writeCSV(t, "a,b\n1,2\n3,4\n")
	table, err := LoadCSV(path)
	require.NoError(t, err)

	_, _, _, err = table.Split("missing", nil)
	require.Error(t, err)

	_, _, _, err = table.Split("a", []string{"missing"})
	require.Error(t, err)
}
