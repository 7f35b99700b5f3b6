// Package profilekit builds the shape functions a simulation engine uses to
// seed fields in space and drive parameters in time.
//
// What is a profile?
//
//	A pure closure f(x) / f(x, y) over space, or f(t) over time, tagged with
//	a shape name and a read-only record of every parameter it was built with.
//	Profiles are immutable and safe to evaluate from many goroutines.
//
// Shapes:
//
//	constant     step at a vacuum boundary (space) / at a start time (time)
//	trapezoidal  vacuum, rising ramp, plateau, falling ramp
//	gaussian     super-Gaussian window of configurable even order
//	polygonal    piecewise-linear breakpoint table
//	cosine       harmonic window (space) / angular-frequency cosine (time)
//
// Packages:
//
//	simctx/       — the simulation context: dimensionality, domain lengths, duration
//	profile/      — Profile, Metadata, shape names, axis kernels, combinators, errors
//	spatial/      — spatial factories with per-axis functional options
//	temporal/     — temporal factories, unit-scale
//	catalog/      — YAML profile documents and metadata-driven rebuild
//	store/        — SQLite snapshots of metadata and sampled values
//	cmd/profsample — CLI: list, describe, sample, export
//
// Quick example:
//
//	sc := simctx.New(simctx.WithDimensionality(simctx.OneAxis), simctx.WithDomainLength(10))
//	p, err := spatial.Trapezoidal(sc, 2, spatial.WithSlope1(spatial.X, 2), spatial.WithPlateau(spatial.X, 4))
//	f, _ := p.Func1D()
//	f(3) // 2
//
// Defaults that depend on the simulation (a plateau running to the end of
// the domain, a Gaussian window spanning the whole duration) are resolved
// at build time; a factory that needs a context value which was never set
// fails with profile.ErrPrecursorNotSet instead of guessing.
//
//	go get github.com/katalvlaran/profilekit
package profilekit
