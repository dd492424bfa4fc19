package regression

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/vernadici/econgo/normality"
)

// ModelSpec describes how the design matrix is assembled from the raw
// regressors.
type ModelSpec struct {
	// DepName labels the dependent variable in summaries. Empty means "y".
	DepName string

	// VarNames labels the raw regressors. Empty means default labels
	// x01..x0K. When set, the length must match the regressor count and
	// the names must be unique.
	VarNames []string

	// Constant is the scale of the appended constant column; 0 omits it.
	Constant float64

	// HasTrend appends a linear trend column with value i - TrendOffset
	// for observation i = 0..T-1.
	HasTrend    bool
	TrendOffset float64
}

// DefaultSpec returns the conventional specification: a unit constant
// column and no trend.
func DefaultSpec() ModelSpec {
	return ModelSpec{Constant: 1}
}

// DistSource provides the continuous-distribution CDFs used for
// p-values. A nil DistSource is the supported degraded mode: every
// p-value is reported as +Inf instead of failing the fit.
type DistSource interface {
	StudentsTCDF(x, df float64) float64
	FCDF(x, d1, d2 float64) float64
	ChiSquaredCDF(x, df float64) float64
}

// GonumDist backs DistSource with gonum's distuv distributions.
type GonumDist struct{}

func (GonumDist) StudentsTCDF(x, df float64) float64 {
	return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(x)
}

func (GonumDist) FCDF(x, d1, d2 float64) float64 {
	return distuv.F{D1: d1, D2: d2}.CDF(x)
}

func (GonumDist) ChiSquaredCDF(x, df float64) float64 {
	return distuv.ChiSquared{K: df}.CDF(x)
}

// NormalityTest maps a residual sequence to a test statistic and its
// p-value. The estimator treats it as opaque.
type NormalityTest func(sample []float64) (statistic, pvalue float64)

// EstimationOptions carries the optional statistical collaborators.
// The zero value disables both: p-values become +Inf and the omnibus
// statistic becomes NaN.
type EstimationOptions struct {
	Dist      DistSource
	Normality NormalityTest
}

// DefaultOptions wires the gonum distributions and the
// D'Agostino-Pearson omnibus test.
func DefaultOptions() EstimationOptions {
	return EstimationOptions{
		Dist:      GonumDist{},
		Normality: normality.DAgostinoK2,
	}
}
