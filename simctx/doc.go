// Package simctx holds the ambient simulation values that profile factories
// read while resolving default parameters.
//
// What is a simulation context?
//
//	Three values established by the configuration layer before any profile
//	is built:
//	  • Dimensionality — one or two spatial axes.
//	  • Domain length  — the extent of each spatial axis (may be shorter than
//	    the axis count; a missing axis just disables defaulting on it).
//	  • Duration       — total simulated time, needed by temporal shapes.
//
// A Context is an immutable value. Factories receive it explicitly, so there
// is no hidden construction order: a missing value surfaces as
// ErrPrecursorNotSet at construction time, never at evaluation time.
//
// Usage:
//
//	sc := simctx.New(
//	    simctx.WithDimensionality(simctx.TwoAxis),
//	    simctx.WithDomainLength(10, 20),
//	    simctx.WithDuration(100),
//	)
//	p, err := spatial.Trapezoidal(sc, 2, spatial.WithSlope1(spatial.X, 2))
package simctx
