// Package profile is the shared core of profilekit: the Profile value
// returned by every factory, its read-only Metadata, and the 1-D axis
// kernels that spatial and temporal factories compose.
//
// 🚀 What is a profile?
//
//	A pure function of space (f(x), f(x,y)) or time (f(t)) used to
//	initialize a physical quantity (density, field amplitude, ...) in a
//	particle/field simulation, decorated with the shape name and every
//	resolved parameter so it can be inspected or serialized later.
//
// ✨ Building blocks:
//   - TrapezoidAxis   — vacuum, rising ramp, plateau, falling ramp.
//   - GaussianAxis    — super-Gaussian window exp(-(u-c)^order/sigma).
//   - BreakpointTable — piecewise-linear interpolation, no extrapolation.
//   - HarmonicAxis    — cosine with a harmonic count across a window.
//   - AngularAxis     — cosine with an explicit angular frequency.
//   - StepAxis        — value at and beyond a threshold, 0 before it.
//   - Product / Conjunction / Unit — 2-D combinators.
//
// Boundary convention:
//
//	Every piecewise kernel uses half-open regions [a, b). A coordinate
//	exactly on a breakpoint belongs to the region that starts there.
//
// Concurrency:
//
//	Profiles and kernels are immutable closures over resolved parameters;
//	evaluate them from any number of goroutines without synchronization.
//
// Errors (errors.Is):
//   - ErrPrecursorNotSet   — an ambient value was missing (see simctx).
//   - ErrParameterMismatch — breakpoint points/values differ in length.
//   - ErrTooFewBreakpoints — a breakpoint table needs at least 2 pairs.
//   - ErrDomain            — NaN parameters, decreasing breakpoints, or a
//     zero Gaussian width constant.
//   - ErrArity             — At called with the wrong coordinate count.
package profile
