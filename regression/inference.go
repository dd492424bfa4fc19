package regression

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Inference holds the covariance-derived statistics of a fit, plus the
// model-level statistics conventionally reported alongside them.
type Inference struct {
	Cov     *mat.Dense // sigma^2 (X'X)^(-1)
	SE      []float64  // sqrt of the covariance diagonal; NaN on a negative entry
	TStats  []float64  // Coefs / SE; +-Inf on a zero standard error
	PValues []float64  // two-sided Student-t; +Inf in degraded mode

	F             float64
	PValueF       float64
	LogLikelihood float64
	AIC           float64
	BIC           float64
}

// Inference computes the covariance block on first call and caches it;
// repeated calls return the identical value. It fails with
// *SingularMatrixError when X'X cannot be inverted, in which case point
// estimates and residual diagnostics of the fit remain valid.
func (f *Fit) Inference() (*Inference, error) {
	if f.infDone {
		return f.inf, f.infErr
	}
	f.infDone = true

	var inv mat.Dense
	if err := inv.Inverse(f.xTx); err != nil {
		f.infErr = &SingularMatrixError{err: err}
		return nil, f.infErr
	}

	k := f.NCoefs
	cov := mat.NewDense(k, k, nil)
	cov.Scale(f.Sigma2, &inv)

	se := make([]float64, k)
	tstats := make([]float64, k)
	pvals := make([]float64, k)
	for i := 0; i < k; i++ {
		se[i] = math.Sqrt(cov.At(i, i))
		tstats[i] = f.Coefs[i] / se[i]
		if f.opts.Dist == nil {
			pvals[i] = math.Inf(1)
		} else {
			pvals[i] = 2 * (1 - f.opts.Dist.StudentsTCDF(math.Abs(tstats[i]), float64(f.DFError)))
		}
	}

	f.inf = &Inference{
		Cov:     cov,
		SE:      se,
		TStats:  tstats,
		PValues: pvals,

		F:             f.F,
		PValueF:       f.PValueF(),
		LogLikelihood: f.LogLikelihood,
		AIC:           f.AIC,
		BIC:           f.BIC,
	}
	return f.inf, nil
}

// PValueF returns the p-value of the model F-statistic, computed once
// and cached. Unlike the covariance block it never needs (X'X)^(-1),
// so it stays available when Inference fails. It is +Inf when no
// distribution source is configured.
func (f *Fit) PValueF() float64 {
	if f.pvalFDone {
		return f.pvalF
	}
	f.pvalFDone = true

	if f.opts.Dist == nil {
		f.pvalF = math.Inf(1)
	} else {
		f.pvalF = 1 - f.opts.Dist.FCDF(f.F, float64(f.DFRegression), float64(f.DFError))
	}
	return f.pvalF
}
