// Package interp is the example package the sample documentation site
// documents. It wraps gonum's Akima spline with rewritten documentation;
// all interpolation math is delegated, unmodified, to gonum.
package interp

import "gonum.org/v1/gonum/interp"

// Spline is a one-dimensional Akima cubic-spline interpolator.
//
// Compared to a natural cubic spline, the Akima construction keeps the
// interpolant local: an outlier sample perturbs the curve only in its
// immediate neighborhood instead of rippling through every segment. The
// fitted curve passes through every sample point exactly.
//
// A Spline must be fitted before prediction. The zero value is ready to
// use with Fit.
type Spline struct {
	s interp.AkimaSpline
}

// Fit computes the spline coefficients for the sample points (xs, ys).
// xs must be strictly increasing and both slices must have equal length
// of at least two; gonum panics on invalid input, and that behavior is
// passed through unchanged.
func (sp *Spline) Fit(xs, ys []float64) error {
	return sp.s.Fit(xs, ys)
}

// Predict evaluates the interpolant at x. Outside the fitted interval
// the boundary segment is extrapolated linearly, matching gonum's
// behavior.
func (sp *Spline) Predict(x float64) float64 {
	return sp.s.Predict(x)
}

// PredictDerivative evaluates the interpolant's first derivative at x.
func (sp *Spline) PredictDerivative(x float64) float64 {
	return sp.s.PredictDerivative(x)
}
