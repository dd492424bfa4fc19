// Package regression estimates a single linear equation by ordinary
// least squares and derives the classical inferential statistics.
//
// Estimation is eager: Estimate builds the design matrix, solves the
// least-squares problem and computes the first-order fit statistics, or
// fails with a typed error. Covariance-derived inference and residual
// diagnostics are computed lazily on first access and cached for the
// lifetime of the fit.
//
// The probability-distribution dependency is injected through
// EstimationOptions. When it is absent, p-values are reported as +Inf
// instead of failing the fit, so point estimates and residual
// diagnostics remain usable.
package regression
