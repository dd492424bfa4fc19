package regression

import "fmt"

// DimensionError reports a row-count mismatch between the dependent and
// independent data. It aborts construction; no partial fit is exposed.
type DimensionError struct {
	Rows int // rows of independent data
	Obs  int // observations of dependent data
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch: %d rows of regressors for %d observations", e.Rows, e.Obs)
}

// DegreesOfFreedomError reports a fit with no error degrees of freedom,
// T <= K'. It aborts construction.
type DegreesOfFreedomError struct {
	Nobs   int // observations T
	NCoefs int // regressors K', including constant and trend
}

func (e *DegreesOfFreedomError) Error() string {
	return fmt.Sprintf("degrees of freedom: %d observations for %d regressors", e.Nobs, e.NCoefs)
}

// SingularMatrixError reports that X'X could not be inverted when the
// coefficient covariance was requested. It is recoverable: point
// estimates and residual diagnostics of the fit stay valid, only the
// covariance-derived statistics are unavailable.
type SingularMatrixError struct {
	err error
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("X'X is singular: %v", e.err)
}

func (e *SingularMatrixError) Unwrap() error { return e.err }
