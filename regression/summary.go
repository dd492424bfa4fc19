package regression

import (
	"fmt"
	"math"
	"strings"
)

// Summary renders the fit as the classical regression table: one row
// per regressor followed by the model and residual statistics. When the
// coefficient covariance is unavailable, the standard-error, t and p
// columns show NaN.
func (f *Fit) Summary() string {
	se := nanSlice(f.NCoefs)
	tstats := nanSlice(f.NCoefs)
	pvals := nanSlice(f.NCoefs)
	if inf, err := f.Inference(); err == nil {
		se, tstats, pvals = inf.SE, inf.TStats, inf.PValues
	}
	d := f.Diagnostics()

	line := strings.Repeat("=", 78)

	var b strings.Builder
	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "Dependent Variable: %s\n", f.DepName())
	fmt.Fprintln(&b, "Method: Least Squares")
	fmt.Fprintf(&b, "Date: %s\n", f.Date)
	fmt.Fprintf(&b, "Time: %s\n", f.Time)
	fmt.Fprintf(&b, "# obs:           %5d\n", f.Nobs)
	fmt.Fprintf(&b, "# RHS variables: %5d\n", f.NCoefs)
	fmt.Fprintln(&b, line)

	fmt.Fprintf(&b, "%-15s%-15s%-15s%-15s%-15s\n",
		"variable", "coefficient", "std. error", "t-statistic", "prob.")
	for i, name := range f.Names {
		fmt.Fprintf(&b, "%-15s% -14.6f % -14.6f % -14.6f % -14.6f\n",
			name, f.Coefs[i], se[i], tstats[i], pvals[i])
	}
	fmt.Fprintln(&b, line)

	fmt.Fprintln(&b, "Model stats                             Residual stats")
	fmt.Fprintf(&b, "%-24s% -15.6f %-22s% -15.6f\n",
		"R-squared", f.R2, "Durbin-Watson stat", d.DurbinWatson)
	fmt.Fprintf(&b, "%-24s% -15.6f %-22s% -15.6f\n",
		"Adjusted R-squared", f.AdjR2, "Omnibus stat", d.Omnibus)
	fmt.Fprintf(&b, "%-24s% -15.6f %-22s% -15.6f\n",
		"F-statistic", f.F, "Prob(Omnibus stat)", d.OmnibusPValue)
	fmt.Fprintf(&b, "%-24s% -15.6f %-22s% -15.6f\n",
		"Prob (F-statistic)", f.PValueF(), "JB stat", d.JarqueBera)
	fmt.Fprintf(&b, "%-24s% -15.6f %-22s% -15.6f\n",
		"Log likelihood", f.LogLikelihood, "Prob(JB)", d.JarqueBeraPValue)
	fmt.Fprintf(&b, "%-24s% -15.6f %-22s% -15.6f\n",
		"AIC criterion", f.AIC, "Skew", d.Skewness)
	fmt.Fprintf(&b, "%-24s% -15.6f %-22s% -15.6f\n",
		"BIC criterion", f.BIC, "Kurtosis", d.Kurtosis)
	fmt.Fprintln(&b, line)

	return b.String()
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
