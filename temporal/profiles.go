// SPDX-License-Identifier: MIT
// Package: profilekit/temporal
//
// profiles.go — the five temporal factories.
//
// Each factory resolves its parameters, builds one profile kernel and
// decorates it; there is no composition step in time.

package temporal

import (
	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
)

// Constant returns 1 for t ≥ start (default 0) and 0 before.
// It reads nothing from the context.
// Metadata: start.
func Constant(_ simctx.Context, opts ...Option) (*profile.Profile, error) {
	cfg := newConfig(opts...)
	k := profile.StepAxis{Threshold: cfg.start.or(defaultStart), Value: 1}
	f, err := k.Func()
	if err != nil {
		return nil, wrap(MethodConstant, err)
	}
	meta := profile.NewMetadata(profile.NameTimeConstant).With("start", k.Threshold)
	return profile.New1D(f, meta), nil
}

// Trapezoidal ramps from 0 to 1 over slope1, holds for plateau, and ramps
// back over slope2. plateau defaults to duration − start.
//
// Metadata: start, plateau, slope1, slope2, fallramp.
// Errors: ErrPrecursorNotSet without a duration; ErrDomain on NaN.
func Trapezoidal(sc simctx.Context, opts ...Option) (*profile.Profile, error) {
	total, err := simTime(MethodTrapezoidal, sc)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	start := cfg.start.or(defaultStart)

	k := profile.TrapezoidAxis{
		Vacuum:   start,
		Plateau:  cfg.plateau.or(total - start),
		Slope1:   cfg.slope1.or(defaultSlope),
		Slope2:   cfg.slope2.or(defaultSlope),
		Scale:    1,
		FallRamp: cfg.fallRamp,
	}
	f, err := k.Func()
	if err != nil {
		return nil, wrap(MethodTrapezoidal, err)
	}
	meta := profile.NewMetadata(profile.NameTimeTrapezoidal).
		With("start", k.Vacuum).
		With("plateau", k.Plateau).
		With("slope1", k.Slope1).
		With("slope2", k.Slope2).
		With("fallramp", float64(k.FallRamp))
	return profile.New1D(f, meta), nil
}

// Gaussian is exp(-(t-center)^order / sigma) on [start, start+duration),
// with duration = total − start, fwhm = duration/3 and
// center = start + duration/2 by default.
//
// Metadata: start, duration, fwhm, sigma, center, order.
// Errors: ErrPrecursorNotSet without a duration; ErrDomain on NaN or a
// zero width constant.
func Gaussian(sc simctx.Context, opts ...Option) (*profile.Profile, error) {
	total, err := simTime(MethodGaussian, sc)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	start := cfg.start.or(defaultStart)
	duration := cfg.duration.or(total - start)
	order := defaultOrder
	if cfg.orderSet {
		order = cfg.order
	}

	k := profile.GaussianAxis{
		Vacuum: start,
		Length: duration,
		FWHM:   cfg.fwhm.or(duration / defaultFWHMParts),
		Center: cfg.center.or(start + duration/2),
		Order:  order,
		Scale:  1,
	}
	f, err := k.Func()
	if err != nil {
		return nil, wrap(MethodGaussian, err)
	}
	meta := profile.NewMetadata(profile.NameTimeGaussian).
		With("start", k.Vacuum).
		With("duration", k.Length).
		With("fwhm", k.FWHM).
		With("sigma", k.Sigma()).
		With("center", k.Center).
		With("order", float64(k.Order))
	return profile.New1D(f, meta), nil
}

// Polygonal interpolates the WithBreakpoints table; with no table it is 1
// on [0, duration).
//
// Metadata series: points, values, slopes.
// Errors: ErrPrecursorNotSet without a duration; ErrParameterMismatch,
// ErrTooFewBreakpoints, ErrDomain from the table.
func Polygonal(sc simctx.Context, opts ...Option) (*profile.Profile, error) {
	total, err := simTime(MethodPolygonal, sc)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	points, values := cfg.points, cfg.values
	if len(points) == 0 && len(values) == 0 {
		points, values = []float64{0, total}, []float64{1, 1}
	}
	tbl, err := profile.NewBreakpointTable(points, values)
	if err != nil {
		return nil, wrap(MethodPolygonal, err)
	}
	meta := profile.NewMetadata(profile.NameTimePolygonal).
		WithSeries("points", tbl.Points()).
		WithSeries("values", tbl.Values()).
		WithSeries("slopes", tbl.Slopes())
	return profile.New1D(tbl.Func(), meta), nil
}

// Cosine is base + amplitude*cos(phi + freq*(t-start)) on
// [start, start+duration), 0 elsewhere; duration defaults to total − start.
//
// Metadata: base, amplitude, start, duration, phi, freq.
// Errors: ErrPrecursorNotSet without a duration; ErrDomain on NaN.
func Cosine(sc simctx.Context, opts ...Option) (*profile.Profile, error) {
	total, err := simTime(MethodCosine, sc)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	start := cfg.start.or(defaultStart)

	k := profile.AngularAxis{
		Base:      cfg.base.or(defaultBase),
		Amplitude: cfg.amplitude.or(defaultAmplitude),
		Start:     start,
		Duration:  cfg.duration.or(total - start),
		Phase:     cfg.phase.or(defaultPhase),
		Freq:      cfg.freq.or(defaultFrequency),
	}
	f, err := k.Func()
	if err != nil {
		return nil, wrap(MethodCosine, err)
	}
	meta := profile.NewMetadata(profile.NameTimeCosine).
		With("base", k.Base).
		With("amplitude", k.Amplitude).
		With("start", k.Start).
		With("duration", k.Duration).
		With("phi", k.Phase).
		With("freq", k.Freq)
	return profile.New1D(f, meta), nil
}
