// SPDX-License-Identifier: MIT
// Package: profilekit/spatial
//
// impl_trapezoidal.go — vacuum / rise / plateau / fall along each axis.
//
// The x axis is scaled by peak, the y axis peaks at 1; f(x,y) = fx(x)*fy(y).
// The fall ramp follows profile.FallRampReference unless WithFallRamp says
// otherwise (see profile.TrapezoidAxis).

package spatial

import (
	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
)

// Trapezoidal builds a trapezoidal profile of height peak.
//
// Options: WithVacuum, WithPlateau, WithSlope1, WithSlope2 (per axis),
// WithFallRamp.
// Metadata: value, fallramp, and per axis vacuum, plateau, slope1, slope2.
// Errors:
//   - ErrPrecursorNotSet if dimensionality or domain length is missing, or
//     a plateau must be defaulted on an axis without a domain length.
//   - ErrDomain on NaN parameters.
//
// Complexity: O(1) build and evaluation.
func Trapezoidal(sc simctx.Context, peak float64, opts ...Option) (*profile.Profile, error) {
	if err := sc.RequireDomain(); err != nil {
		return nil, wrap(MethodTrapezoidal, err)
	}
	cfg := newConfig(opts...)
	meta := profile.NewMetadata(profile.NameTrapezoidal).
		With(KeyValue, peak).
		With(KeyFallRamp, float64(cfg.fallRamp))

	return separable(sc, meta, func(a Axis, meta *profile.Metadata) (profile.Func1D, error) {
		ac := cfg.axes[a]
		vacuum := ac.vacuum.or(defaultVacuum)
		plateau, err := extent(MethodTrapezoidal, sc, a, ac.plateau, "plateau", vacuum)
		if err != nil {
			return nil, err
		}
		scale := 1.0
		if a == X {
			scale = peak
		}
		k := profile.TrapezoidAxis{
			Vacuum:   vacuum,
			Plateau:  plateau,
			Slope1:   ac.slope1.or(defaultSlope),
			Slope2:   ac.slope2.or(defaultSlope),
			Scale:    scale,
			FallRamp: cfg.fallRamp,
		}
		f, err := k.Func()
		if err != nil {
			return nil, wrap(MethodTrapezoidal, err)
		}
		*meta = meta.With(a.key("vacuum"), k.Vacuum).
			With(a.key("plateau"), k.Plateau).
			With(a.key("slope1"), k.Slope1).
			With(a.key("slope2"), k.Slope2)
		return f, nil
	})
}
