package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeYAML(t, `
data: obs.csv
dependent: cons
regressors: [income, rate]
trend: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "obs.csv", cfg.Data)
	require.Equal(t, "cons", cfg.Dependent)
	require.Equal(t, []string{"income", "rate"}, cfg.Regressors)

	spec := cfg.Spec()
	require.Equal(t, "cons", spec.DepName)
	require.Equal(t, 1.0, spec.Constant) // omitted constant defaults to 1
	require.True(t, spec.HasTrend)
	require.Equal(t, 0.0, spec.TrendOffset)
	require.Empty(t, spec.VarNames)
}

func TestLoadNoTrendNoConstant(t *testing.T) {
	path := writeYAML(t, `
data: obs.csv
dependent: cons
constant: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	spec := cfg.Spec()
	require.Equal(t, 0.0, spec.Constant)
	require.False(t, spec.HasTrend)
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(writeYAML(t, "dependent: cons\n"))
	require.Error(t, err)

	_, err = Load(writeYAML(t, "data: obs.csv\n"))
	require.Error(t, err)

	_, err = Load(writeYAML(t, "data: [not\n"))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
