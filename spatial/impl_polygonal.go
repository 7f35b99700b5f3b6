// SPDX-License-Identifier: MIT
// Package: profilekit/spatial
//
// impl_polygonal.go — breakpoint table along x.
//
// Polygonal exposes no y parameters: in a two-axis simulation the y factor
// is profile.Unit, so f(x,y) = fx(x).

package spatial

import (
	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
)

// Polygonal builds a piecewise-linear profile from WithBreakpoints. With no
// breakpoints the table defaults to [0, domainLength[0]] → [1, 1], a flat
// unit profile over the whole x extent.
//
// Metadata series: xpoints, xvalues, xslopes.
// Errors:
//   - ErrPrecursorNotSet if dimensionality or domain length is missing.
//   - ErrParameterMismatch if points and values differ in length.
//   - ErrTooFewBreakpoints, ErrDomain from profile.NewBreakpointTable.
//
// Complexity: O(N) build, O(N) per evaluation.
func Polygonal(sc simctx.Context, opts ...Option) (*profile.Profile, error) {
	if err := sc.RequireDomain(); err != nil {
		return nil, wrap(MethodPolygonal, err)
	}
	cfg := newConfig(opts...)

	points, values := cfg.points, cfg.values
	if len(points) == 0 && len(values) == 0 {
		l, _ := sc.DomainLength(int(X)) // present: RequireDomain passed
		points, values = []float64{0, l}, []float64{1, 1}
	}
	tbl, err := profile.NewBreakpointTable(points, values)
	if err != nil {
		return nil, wrap(MethodPolygonal, err)
	}
	meta := profile.NewMetadata(profile.NamePolygonal).
		WithSeries(X.key("points"), tbl.Points()).
		WithSeries(X.key("values"), tbl.Values()).
		WithSeries(X.key("slopes"), tbl.Slopes())

	return separable(sc, meta, func(a Axis, _ *profile.Metadata) (profile.Func1D, error) {
		if a == Y {
			return profile.Unit, nil
		}
		return tbl.Func(), nil
	})
}
