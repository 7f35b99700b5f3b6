// Package spatial builds profiles of space: f(x) in a one-axis simulation,
// f(x,y) in a two-axis one.
//
// Every factory takes an explicit simctx.Context, resolves missing
// parameters from it (domain length per axis), builds one axis evaluator
// per spatial axis and composes them:
//
//	Constant     value where x ≥ xvacuum (and y ≥ yvacuum)   — AND gate
//	Trapezoidal  vacuum / rise / plateau / fall per axis       — product
//	Gaussian     super-Gaussian window per axis                — product
//	Polygonal    breakpoint table along x, y ignored           — product with 1
//	Cosine       harmonic cosine window per axis               — product
//
// Parameters are supplied with axis-qualified functional options
// (WithVacuum(X, 2), WithPlateau(Y, 6), ...). The x axis carries the shape's
// scale (value/peak); the y axis of Trapezoidal and Gaussian is unit-scaled.
//
// Defaults (per axis, when the option is absent):
//
//	vacuum   0 (−Inf for Constant)
//	plateau  domainLength[axis] − vacuum
//	slopes   0
//	length   domainLength[axis] − vacuum
//	fwhm     length/3
//	center   vacuum + length/2
//	order    2
//	amplitude 1, phase 0, harmonic number 2
//	breakpoints [0, domainLength[0]] → [1, 1]
//
// A default that needs a domain length the context does not have fails with
// profile.ErrPrecursorNotSet naming the parameter (e.g. "yplateau").
package spatial
