package regression

import (
	"fmt"
	"math"
)

// SimpleModel holds the closed-form bivariate regression y = slope*x +
// intercept.
type SimpleModel struct {
	Slope     float64
	Intercept float64

	SlopeSE     float64
	InterceptSE float64

	R2     float64
	Sigma2 float64 // residual sum of squares / (N - 2)
	Nobs   int
}

// SimpleRegression fits y = slope*x + intercept without any matrix
// machinery, solving the 2x2 normal equations directly. It fails with
// *DimensionError on a length mismatch, *DegreesOfFreedomError for
// fewer than three observations, and *SingularMatrixError when the
// regressor has no variation.
func SimpleRegression(x, y []float64) (*SimpleModel, error) {
	if len(x) != len(y) {
		return nil, &DimensionError{Rows: len(x), Obs: len(y)}
	}
	n := len(x)
	if n < 3 {
		return nil, &DegreesOfFreedomError{Nobs: n, NCoefs: 2}
	}

	var sx, sy, sxx, sxy float64
	for i := range x {
		sx += x[i]
		sy += y[i]
		sxx += x[i] * x[i]
		sxy += x[i] * y[i]
	}

	nf := float64(n)
	det := sxx*nf - sx*sx
	if det == 0 {
		return nil, &SingularMatrixError{err: fmt.Errorf("zero determinant: regressor has no variation")}
	}

	slope := (sxy*nf - sy*sx) / det
	intercept := (sxx*sy - sx*sxy) / det

	ymean := sy / nf
	var meanError, rss float64
	for i := range x {
		d := y[i] - ymean
		meanError += d * d
		r := y[i] - slope*x[i] - intercept
		rss += r * r
	}
	s2 := rss / float64(n-2)

	return &SimpleModel{
		Slope:     slope,
		Intercept: intercept,

		SlopeSE:     math.Sqrt(s2 * nf / det),
		InterceptSE: math.Sqrt(s2 * sxx / det),

		R2:     1 - rss/meanError,
		Sigma2: s2,
		Nobs:   n,
	}, nil
}
