package regression

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Fit holds the least-squares estimates for a single equation together
// with the first-order fit statistics. Inference and residual
// diagnostics are derived on demand and cached; apart from those caches
// a Fit is immutable. Separate fits are fully independent and may be
// computed concurrently by the caller.
type Fit struct {
	Spec  ModelSpec
	Names []string // regressor names, including Constant/Trend

	Nobs   int // observations T
	NCoefs int // regressors K', including constant and trend

	Coefs  []float64 // least-squares solution, length K'
	Fitted []float64 // X * Coefs, length T
	Resids []float64 // y - Fitted, length T

	ESS          float64 // sum of squared residuals
	DFError      int     // T - K'
	DFRegression int     // K' - 1
	Sigma2       float64 // ESS / DFError
	R2           float64
	AdjR2        float64
	F            float64 // model F-statistic

	LogLikelihood float64
	AIC           float64
	BIC           float64

	// Date and Time record when the fit was computed.
	Date string
	Time string

	x   *mat.Dense
	xTx *mat.Dense
	xTy *mat.VecDense

	opts EstimationOptions

	inf     *Inference
	infErr  error
	infDone bool

	diag *Diagnostics

	pvalF     float64
	pvalFDone bool
}

// Estimate fits y on the given regressors by ordinary least squares.
// x is row-major: x[t] holds the K regressor values of observation t.
// It fails with *DimensionError on a row-count mismatch and with
// *DegreesOfFreedomError when T <= K'.
func Estimate(y []float64, x [][]float64, spec ModelSpec, opts EstimationOptions) (*Fit, error) {
	nobs := len(y)

	X, names, err := makeDesignMatrix(x, nobs, spec)
	if err != nil {
		return nil, err
	}
	_, ncoefs := X.Dims()

	dfErr := nobs - ncoefs
	if dfErr <= 0 {
		return nil, &DegreesOfFreedomError{Nobs: nobs, NCoefs: ncoefs}
	}

	yy := make([]float64, nobs)
	copy(yy, y)
	Y := mat.NewVecDense(nobs, yy)

	var xtx mat.Dense
	xtx.Mul(X.T(), X)
	var xty mat.VecDense
	xty.MulVec(X.T(), Y)

	// First try the normal equations: beta = (X'X)^(-1) X'y.
	beta := mat.NewVecDense(ncoefs, nil)
	var xtxInv mat.Dense
	if invErr := xtxInv.Inverse(&xtx); invErr == nil {
		beta.MulVec(&xtxInv, &xty)
	} else {
		// X'X is singular or badly conditioned. Use SVD-based least
		// squares: minimize ||y - X beta|| with the minimum-norm beta.
		var svd mat.SVD
		if ok := svd.Factorize(X, mat.SVDFullU|mat.SVDFullV); !ok {
			return nil, fmt.Errorf("least-squares solve failed: X'X singular and SVD factorization failed: %v", invErr)
		}

		// If rank == 0, X is numerically all-zero and the minimum-norm
		// solution is beta = 0, which the vector already holds.
		rank := svd.Rank(1e-12)
		if rank > 0 {
			yMat := mat.NewDense(nobs, 1, nil)
			for t := 0; t < nobs; t++ {
				yMat.Set(t, 0, Y.AtVec(t))
			}
			var b mat.Dense
			svd.SolveTo(&b, yMat, rank)
			for i := 0; i < ncoefs; i++ {
				beta.SetVec(i, b.At(i, 0))
			}
		}
	}

	fitted := mat.NewVecDense(nobs, nil)
	fitted.MulVec(X, beta)
	resid := mat.NewVecDense(nobs, nil)
	resid.SubVec(Y, fitted)

	// Sanity check: e'e must agree with the algebraic identity
	// y'y - beta'(X'y), which holds for any least-squares solution.
	ess := mat.Dot(resid, resid)
	alg := mat.Dot(Y, Y) - mat.Dot(beta, &xty)
	if math.Abs(ess-alg) > 1e-3 {
		return nil, fmt.Errorf("internal error: residual sum of squares mismatch (%g vs %g)", ess, alg)
	}

	coefs := make([]float64, ncoefs)
	for i := 0; i < ncoefs; i++ {
		coefs[i] = beta.AtVec(i)
	}

	n := float64(nobs)
	sigma2 := ess / float64(dfErr)
	r2 := 1 - popVariance(resid.RawVector().Data)/popVariance(yy)
	adjR2 := 1 - (1-r2)*(n-1)/float64(nobs-ncoefs)
	dfReg := ncoefs - 1
	fStat := (r2 / float64(dfReg)) / ((1 - r2) / float64(dfErr))

	llf := -(n/2)*(1+math.Log(2*math.Pi)) - (n/2)*math.Log(ess/n)
	aic := -2*llf/n + 2*float64(ncoefs)/n
	bic := -2*llf/n + float64(ncoefs)*math.Log(n)/n

	now := time.Now()
	return &Fit{
		Spec:  spec,
		Names: names,

		Nobs:   nobs,
		NCoefs: ncoefs,

		Coefs:  coefs,
		Fitted: fitted.RawVector().Data,
		Resids: resid.RawVector().Data,

		ESS:          ess,
		DFError:      dfErr,
		DFRegression: dfReg,
		Sigma2:       sigma2,
		R2:           r2,
		AdjR2:        adjR2,
		F:            fStat,

		LogLikelihood: llf,
		AIC:           aic,
		BIC:           bic,

		Date: now.Format("Mon, 02 Jan 2006"),
		Time: now.Format("15:04:05"),

		x:    X,
		xTx:  &xtx,
		xTy:  &xty,
		opts: opts,
	}, nil
}

// EstimateVec fits a single-regressor equation; x is treated as one
// column of length len(y).
func EstimateVec(y, x []float64, spec ModelSpec, opts EstimationOptions) (*Fit, error) {
	if len(x) != len(y) {
		return nil, &DimensionError{Rows: len(x), Obs: len(y)}
	}
	rows := make([][]float64, len(x))
	for i, v := range x {
		rows[i] = []float64{v}
	}
	return Estimate(y, rows, spec, opts)
}

// DepName returns the label of the dependent variable.
func (f *Fit) DepName() string {
	if f.Spec.DepName != "" {
		return f.Spec.DepName
	}
	return "y"
}

// SlopeIntercept returns the slope of regressor xcol together with the
// intercept implied by holding every other regressor at its mean.
func (f *Fit) SlopeIntercept(xcol int) (slope, intercept float64) {
	for j := 0; j < f.NCoefs; j++ {
		if j == xcol {
			continue
		}
		var sum float64
		for t := 0; t < f.Nobs; t++ {
			sum += f.x.At(t, j)
		}
		intercept += f.Coefs[j] * sum / float64(f.Nobs)
	}
	return f.Coefs[xcol], intercept
}

// popVariance is the population variance (denominator n), the
// convention the R-squared of the estimator is defined with.
func popVariance(v []float64) float64 {
	n := float64(len(v))

	var mean float64
	for _, x := range v {
		mean += x
	}
	mean /= n

	var ss float64
	for _, x := range v {
		d := x - mean
		ss += d * d
	}
	return ss / n
}
