// Package temporal builds profiles of time, f(t), with values normalized to
// a unit scale (callers apply their own amplitude).
//
// Shapes mirror package spatial on a single axis, with defaults drawn from
// the simulated duration instead of the domain length:
//
//	Constant     1 for t ≥ start, 0 before
//	Trapezoidal  start / rise / plateau / fall       plateau = duration − start
//	Gaussian     super-Gaussian window               duration = duration − start
//	Polygonal    breakpoint table                    [0, duration] → [1, 1]
//	Cosine       base + amplitude*cos(phi + freq*(t−start)) on [start, start+duration)
//
// Unlike the spatial cosine, the temporal cosine takes an explicit angular
// frequency rather than a harmonic count across its window.
//
// Every shape except Constant requires the context's duration and fails with
// profile.ErrPrecursorNotSet without it.
package temporal
