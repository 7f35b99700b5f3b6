// SPDX-License-Identifier: MIT
// Package: profilekit/temporal
//
// config.go — resolved option state and duration-based defaults.

package temporal

import (
	"fmt"

	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
)

// Fixed defaults.
const (
	defaultStart     = 0.0
	defaultSlope     = 0.0
	defaultOrder     = 2
	defaultBase      = 0.0
	defaultAmplitude = 1.0
	defaultPhase     = 0.0
	defaultFrequency = 1.0
	defaultFWHMParts = 3.0 // fwhm = duration / defaultFWHMParts
)

// Factory name tokens, used to prefix errors.
const (
	MethodConstant    = "temporal.Constant"
	MethodTrapezoidal = "temporal.Trapezoidal"
	MethodGaussian    = "temporal.Gaussian"
	MethodPolygonal   = "temporal.Polygonal"
	MethodCosine      = "temporal.Cosine"
)

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

type config struct {
	start     optional
	plateau   optional
	slope1    optional
	slope2    optional
	duration  optional
	fwhm      optional
	center    optional
	base      optional
	amplitude optional
	phase     optional
	freq      optional
	order     int
	orderSet  bool
	points    []float64
	values    []float64
	fallRamp  profile.FallRamp
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// simTime returns the context duration or ErrPrecursorNotSet.
func simTime(method string, sc simctx.Context) (float64, error) {
	t, err := sc.RequireDuration()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	return t, nil
}

func wrap(method string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", method, err)
}
