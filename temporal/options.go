// SPDX-License-Identifier: MIT
// Package: profilekit/temporal
//
// options.go — functional options for temporal factories.
//
// Same contract as package spatial: constructors panic only on programmer
// errors (negative order, unknown fall-ramp mode); NaN values surface as
// profile.ErrDomain from the factory.

package temporal

import "github.com/katalvlaran/profilekit/profile"

// Option customizes a temporal factory call.
type Option func(*config)

// WithStart sets the time at which the profile starts.
func WithStart(t float64) Option {
	return func(c *config) { c.start.put(t) }
}

// WithPlateau sets the trapezoid plateau length.
func WithPlateau(v float64) Option {
	return func(c *config) { c.plateau.put(v) }
}

// WithSlope1 sets the rising ramp duration.
func WithSlope1(v float64) Option {
	return func(c *config) { c.slope1.put(v) }
}

// WithSlope2 sets the falling ramp duration.
func WithSlope2(v float64) Option {
	return func(c *config) { c.slope2.put(v) }
}

// WithDuration sets the window length (Gaussian, Cosine).
func WithDuration(v float64) Option {
	return func(c *config) { c.duration.put(v) }
}

// WithFWHM sets the Gaussian full width at half maximum.
func WithFWHM(v float64) Option {
	return func(c *config) { c.fwhm.put(v) }
}

// WithCenter sets the Gaussian center.
func WithCenter(v float64) Option {
	return func(c *config) { c.center.put(v) }
}

// WithOrder sets the Gaussian exponent. Panics on a negative order.
func WithOrder(n int) Option {
	if n < 0 {
		panic("temporal: WithOrder(n<0)")
	}
	return func(c *config) {
		c.order = n
		c.orderSet = true
	}
}

// WithBase sets the cosine offset.
func WithBase(v float64) Option {
	return func(c *config) { c.base.put(v) }
}

// WithAmplitude sets the cosine amplitude.
func WithAmplitude(v float64) Option {
	return func(c *config) { c.amplitude.put(v) }
}

// WithPhase sets the cosine phase.
func WithPhase(v float64) Option {
	return func(c *config) { c.phase.put(v) }
}

// WithFrequency sets the cosine angular frequency.
func WithFrequency(w float64) Option {
	return func(c *config) { c.freq.put(w) }
}

// WithBreakpoints sets the polygonal table. Slices are copied.
func WithBreakpoints(points, values []float64) Option {
	pts := append([]float64(nil), points...)
	vals := append([]float64(nil), values...)
	return func(c *config) {
		c.points, c.values = pts, vals
	}
}

// WithFallRamp selects the trapezoid fall-ramp reference point.
// Panics on an unknown mode.
func WithFallRamp(r profile.FallRamp) Option {
	if r != profile.FallRampReference && r != profile.FallRampMirrored {
		panic("temporal: WithFallRamp(unknown)")
	}
	return func(c *config) { c.fallRamp = r }
}
