// SPDX-License-Identifier: MIT
// Package: profilekit/spatial
//
// config.go — resolved option state and shared default resolution.
//
// Design:
//   • config is built per call by newConfig(opts...) and passed by value.
//   • optional records whether a value was supplied, so defaults derived
//     from the context apply only to absent parameters.

package spatial

import (
	"fmt"

	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
)

// Fixed per-axis defaults.
const (
	defaultVacuum    = 0.0
	defaultSlope     = 0.0
	defaultOrder     = 2
	defaultAmplitude = 1.0
	defaultPhase     = 0.0
	defaultHarmonic  = 2.0
	defaultFWHMParts = 3.0 // fwhm = length / defaultFWHMParts
)

// optional is a float64 that remembers whether it was set.
type optional struct {
	value float64
	set   bool
}

func (o *optional) put(v float64) {
	o.value, o.set = v, true
}

func (o optional) or(def float64) float64 {
	if o.set {
		return o.value
	}
	return def
}

// axisConfig holds every per-axis knob; shapes read only their own.
type axisConfig struct {
	vacuum    optional
	plateau   optional
	slope1    optional
	slope2    optional
	length    optional
	fwhm      optional
	center    optional
	amplitude optional
	phase     optional
	number    optional
	order     int
	orderSet  bool
}

type config struct {
	axes     [2]axisConfig
	points   []float64
	values   []float64
	fallRamp profile.FallRamp
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// orderOr returns the configured Gaussian order on axis a, or def.
func (c config) orderOr(a Axis, def int) int {
	if c.axes[a].orderSet {
		return c.axes[a].order
	}
	return def
}

// extent resolves a parameter that defaults to domainLength[a] - vacuum.
// Errors: ErrPrecursorNotSet when o is unset and the context has no domain
// length for axis a.
func extent(method string, sc simctx.Context, a Axis, o optional, param string, vacuum float64) (float64, error) {
	if o.set {
		return o.value, nil
	}
	l, ok := sc.DomainLength(int(a))
	if !ok {
		return 0, fmt.Errorf("%s: %s: no domain length for axis %s: %w",
			method, a.key(param), a, profile.ErrPrecursorNotSet)
	}
	return l - vacuum, nil
}

// axisBuilder resolves one axis, records its parameters into meta and
// returns the axis evaluator.
type axisBuilder func(a Axis, meta *profile.Metadata) (profile.Func1D, error)

// separable builds x (and y, in two-axis simulations) and composes them by
// product. It is the single 2-D combinator for every shape but Constant.
// Complexity: cost of the axis builders; O(1) composition.
func separable(sc simctx.Context, meta profile.Metadata, build axisBuilder) (*profile.Profile, error) {
	fx, err := build(X, &meta)
	if err != nil {
		return nil, err
	}
	if sc.Dimensionality() == simctx.OneAxis {
		return profile.New1D(fx, meta), nil
	}
	fy, err := build(Y, &meta)
	if err != nil {
		return nil, err
	}
	return profile.New2D(profile.Product(fx, fy), meta), nil
}

// wrap prefixes a kernel error with the factory name.
func wrap(method string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", method, err)
}
