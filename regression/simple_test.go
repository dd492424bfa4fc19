package regression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleRegressionExactLine(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2*v + 1
	}

	m, err := SimpleRegression(x, y)
	require.NoError(t, err)

	require.InDelta(t, 2.0, m.Slope, 1e-12)
	require.InDelta(t, 1.0, m.Intercept, 1e-12)
	require.InDelta(t, 0.0, m.SlopeSE, 1e-12)
	require.InDelta(t, 0.0, m.InterceptSE, 1e-12)
	require.InDelta(t, 1.0, m.R2, 1e-12)
	require.InDelta(t, 0.0, m.Sigma2, 1e-12)
	require.Equal(t, 5, m.Nobs)
}

func TestSimpleRegressionClassicDataset(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 3, 5, 7, 11}

	m, err := SimpleRegression(x, y)
	require.NoError(t, err)

	require.InDelta(t, 2.2, m.Slope, 1e-12)
	require.InDelta(t, -1.0, m.Intercept, 1e-12)
	require.InDelta(t, 0.9453125, m.R2, 1e-12)
	require.InDelta(t, 2.8/3, m.Sigma2, 1e-12)
	require.InDelta(t, 0.3055050, m.SlopeSE, 1e-6)
	require.InDelta(t, 1.0132456, m.InterceptSE, 1e-6)
}

func TestSimpleRegressionLengthMismatch(t *testing.T) {
	_, err := SimpleRegression([]float64{1, 2}, []float64{1, 2, 3})
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
}

func TestSimpleRegressionTooFewObservations(t *testing.T) {
	_, err := SimpleRegression([]float64{1, 2}, []float64{3, 4})
	var dfErr *DegreesOfFreedomError
	require.ErrorAs(t, err, &dfErr)
}

func TestSimpleRegressionConstantRegressor(t *testing.T) {
	_, err := SimpleRegression([]float64{4, 4, 4, 4}, []float64{1, 2, 3, 4})
	var singErr *SingularMatrixError
	require.ErrorAs(t, err, &singErr)
}
