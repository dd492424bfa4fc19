// Package normality implements the D'Agostino-Pearson K-squared omnibus
// test of normality. The test combines a transformed skewness statistic
// and a transformed kurtosis statistic into a single chi-squared variate
// with two degrees of freedom.
package normality

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// MinSampleSize is the smallest sample the kurtosis transform is defined
// for. Smaller samples yield (NaN, NaN).
const MinSampleSize = 8

// DAgostinoK2 returns the K-squared statistic and its p-value for the
// null hypothesis that the sample is drawn from a normal distribution.
// A small p-value rejects normality.
func DAgostinoK2(sample []float64) (statistic, pvalue float64) {
	if len(sample) < MinSampleSize {
		return math.NaN(), math.NaN()
	}

	zs := skewZ(sample)
	zk := kurtosisZ(sample)
	k2 := zs*zs + zk*zk

	p := distuv.ChiSquared{K: 2}.Survival(k2)
	return k2, p
}

// moments returns the second, third and fourth central moments of the
// sample, with denominator n.
func moments(sample []float64) (m2, m3, m4 float64) {
	n := float64(len(sample))

	var mean float64
	for _, v := range sample {
		mean += v
	}
	mean /= n

	for _, v := range sample {
		d := v - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	return m2 / n, m3 / n, m4 / n
}

// skewZ transforms the sample skewness to an approximately standard
// normal variate (D'Agostino, 1970).
func skewZ(sample []float64) float64 {
	n := float64(len(sample))
	m2, m3, _ := moments(sample)
	b1 := m3 / math.Pow(m2, 1.5)

	y := b1 * math.Sqrt((n+1)*(n+3)/(6*(n-2)))
	beta2 := 3 * (n*n + 27*n - 70) * (n + 1) * (n + 3) /
		((n - 2) * (n + 5) * (n + 7) * (n + 9))
	w2 := -1 + math.Sqrt(2*(beta2-1))
	delta := 1 / math.Sqrt(0.5*math.Log(w2))
	alpha := math.Sqrt(2 / (w2 - 1))

	return delta * math.Asinh(y/alpha)
}

// kurtosisZ transforms the sample kurtosis to an approximately standard
// normal variate (Anscombe & Glynn, 1983).
func kurtosisZ(sample []float64) float64 {
	n := float64(len(sample))
	m2, _, m4 := moments(sample)
	b2 := m4 / (m2 * m2)

	e := 3 * (n - 1) / (n + 1)
	varB2 := 24 * n * (n - 2) * (n - 3) /
		((n + 1) * (n + 1) * (n + 3) * (n + 5))
	x := (b2 - e) / math.Sqrt(varB2)

	sqrtBeta1 := 6 * (n*n - 5*n + 2) / ((n + 7) * (n + 9)) *
		math.Sqrt(6*(n+3)*(n+5)/(n*(n-2)*(n-3)))
	a := 6 + 8/sqrtBeta1*(2/sqrtBeta1+math.Sqrt(1+4/(sqrtBeta1*sqrtBeta1)))

	term1 := 1 - 2/(9*a)
	denom := 1 + x*math.Sqrt(2/(a-4))
	term2 := math.Copysign(math.Cbrt((1-2/a)/math.Abs(denom)), denom)

	return (term1 - term2) / math.Sqrt(2/(9*a))
}
