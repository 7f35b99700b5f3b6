// SPDX-License-Identifier: MIT
// Package: profilekit/spatial
//
// impl_constant.go — constant profile behind per-axis vacuum thresholds.
//
// Composition is the AND gate profile.Conjunction, not a product: the x
// axis carries the value and y is a pure Boolean gate.

package spatial

import (
	"math"

	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
)

// Constant returns value where every coordinate is at or beyond its
// vacuum threshold (default −Inf, i.e. everywhere), 0 elsewhere.
//
// Metadata: value, xvacuum, and yvacuum in two-axis simulations.
// Errors:
//   - ErrPrecursorNotSet if the dimensionality is not established.
//   - ErrDomain on NaN parameters.
//
// Complexity: O(1) build and evaluation.
func Constant(sc simctx.Context, value float64, opts ...Option) (*profile.Profile, error) {
	if err := sc.RequireDimensionality(); err != nil {
		return nil, wrap(MethodConstant, err)
	}
	cfg := newConfig(opts...)
	noVacuum := math.Inf(-1)

	sx := profile.StepAxis{Threshold: cfg.axes[X].vacuum.or(noVacuum), Value: value}
	fx, err := sx.Func()
	if err != nil {
		return nil, wrap(MethodConstant, err)
	}
	meta := profile.NewMetadata(profile.NameConstant).
		With(KeyValue, value).
		With(X.key("vacuum"), sx.Threshold)

	if sc.Dimensionality() == simctx.OneAxis {
		return profile.New1D(fx, meta), nil
	}

	sy := profile.StepAxis{Threshold: cfg.axes[Y].vacuum.or(noVacuum), Value: value}
	if _, err := sy.Func(); err != nil {
		return nil, wrap(MethodConstant, err)
	}
	meta = meta.With(Y.key("vacuum"), sy.Threshold)

	return profile.New2D(profile.Conjunction(value, sx.Gate(), sy.Gate()), meta), nil
}
