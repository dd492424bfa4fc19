package regression

import "math"

// Diagnostics holds the second-order residual statistics. All of them
// are pure functions of the residual vector; none mutate the fit.
type Diagnostics struct {
	DurbinWatson float64

	Skewness float64
	// Kurtosis is the fourth standardized moment, 3 + excess kurtosis,
	// so a normal sample yields 3.
	Kurtosis float64

	JarqueBera       float64
	JarqueBeraPValue float64 // +Inf in degraded mode

	// Omnibus comes from the injected normality test; NaN with p-value
	// +Inf when none is configured.
	Omnibus       float64
	OmnibusPValue float64
}

// Diagnostics computes the residual diagnostics on first call and
// caches them; repeated calls return the identical value.
func (f *Fit) Diagnostics() *Diagnostics {
	if f.diag != nil {
		return f.diag
	}

	e := f.Resids
	n := float64(f.Nobs)

	m2, m3, m4 := residMoments(e)
	skew := m3 / math.Pow(m2, 1.5)
	kurt := m4 / (m2 * m2)

	jb := (n / 6) * (skew*skew + (kurt-3)*(kurt-3)/4)
	jbp := math.Inf(1)
	if f.opts.Dist != nil {
		jbp = 1 - f.opts.Dist.ChiSquaredCDF(jb, 2)
	}

	omni, omniP := math.NaN(), math.Inf(1)
	if f.opts.Normality != nil {
		omni, omniP = f.opts.Normality(e)
	}

	f.diag = &Diagnostics{
		DurbinWatson: durbinWatson(e),

		Skewness: skew,
		Kurtosis: kurt,

		JarqueBera:       jb,
		JarqueBeraPValue: jbp,

		Omnibus:       omni,
		OmnibusPValue: omniP,
	}
	return f.diag
}

// durbinWatson is the first-order autocorrelation statistic
// sum((e_i - e_{i-1})^2) / sum(e_i^2).
func durbinWatson(e []float64) float64 {
	var num, den float64
	for i := 1; i < len(e); i++ {
		d := e[i] - e[i-1]
		num += d * d
	}
	for _, r := range e {
		den += r * r
	}
	return num / den
}

// residMoments returns the second, third and fourth central moments of
// the residuals, with denominator n.
func residMoments(e []float64) (m2, m3, m4 float64) {
	n := float64(len(e))

	var mean float64
	for _, r := range e {
		mean += r
	}
	mean /= n

	for _, r := range e {
		d := r - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	return m2 / n, m3 / n, m4 / n
}
