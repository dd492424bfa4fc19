// Package econgo provides ordinary least-squares estimation for a single
// linear equation together with the classical inferential statistics used
// to judge the fit.
//
// # Features
//
//   - OLS estimation with optional constant and linear-trend regressors
//   - Coefficient covariance, standard errors, t-statistics and p-values
//   - Model F-statistic, log-likelihood, AIC and BIC
//   - Residual diagnostics: Durbin-Watson, skewness/kurtosis,
//     Jarque-Bera, and the D'Agostino-Pearson omnibus normality test
//   - Explicit degraded mode when no probability-distribution source is
//     configured (p-values become +Inf instead of failing the fit)
//
// # Quick Start
//
// Fit a regression with a constant term and print the summary table:
//
//	spec := regression.DefaultSpec()
//	fit, err := regression.EstimateVec(y, x, spec, regression.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(fit.Summary())
//
// # Packages
//
// The library is organized into the following packages:
//
//   - regression: design-matrix construction, estimation, inference and
//     residual diagnostics
//   - normality: the D'Agostino-Pearson K-squared omnibus test
//   - dataset: CSV observation tables
//   - config: YAML run configuration for the demo program
//
// # References
//
//   - Davidson, R., & MacKinnon, J. G. (1993). Estimation and Inference
//     in Econometrics
package econgo
