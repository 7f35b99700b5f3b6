// SPDX-License-Identifier: MIT
// Package: profilekit/spatial
//
// options.go — functional options for spatial factories.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors PANIC on programmer errors (unknown axis, negative
//     Gaussian order, unknown fall-ramp mode). Numeric values are not
//     screened here: NaN surfaces as profile.ErrDomain from the factory, so
//     values decoded from files never panic.
//   • Options irrelevant to a shape are ignored by that shape.

package spatial

import (
	"fmt"

	"github.com/katalvlaran/profilekit/profile"
)

// Axis identifies a spatial axis.
type Axis int

const (
	// X is the first spatial axis.
	X Axis = iota
	// Y is the second spatial axis (two-axis simulations only).
	Y
)

// String returns the parameter prefix of the axis ("x" or "y").
func (a Axis) String() string {
	if a == Y {
		return "y"
	}
	return "x"
}

// key returns the metadata key of param on this axis, e.g. "xvacuum".
func (a Axis) key(param string) string {
	return a.String() + param
}

func mustAxis(method string, a Axis) {
	if a != X && a != Y {
		panic(fmt.Sprintf("spatial: %s(axis=%d)", method, int(a)))
	}
}

// Option customizes a spatial factory call.
type Option func(*config)

// WithVacuum sets the coordinate where the profile starts on axis a.
func WithVacuum(a Axis, v float64) Option {
	mustAxis("WithVacuum", a)
	return func(c *config) { c.axes[a].vacuum.put(v) }
}

// WithPlateau sets the trapezoid plateau length on axis a.
func WithPlateau(a Axis, v float64) Option {
	mustAxis("WithPlateau", a)
	return func(c *config) { c.axes[a].plateau.put(v) }
}

// WithSlope1 sets the rising ramp width on axis a.
func WithSlope1(a Axis, v float64) Option {
	mustAxis("WithSlope1", a)
	return func(c *config) { c.axes[a].slope1.put(v) }
}

// WithSlope2 sets the falling ramp width on axis a.
func WithSlope2(a Axis, v float64) Option {
	mustAxis("WithSlope2", a)
	return func(c *config) { c.axes[a].slope2.put(v) }
}

// WithLength sets the window length (Gaussian, Cosine) on axis a.
func WithLength(a Axis, v float64) Option {
	mustAxis("WithLength", a)
	return func(c *config) { c.axes[a].length.put(v) }
}

// WithFWHM sets the Gaussian full width at half maximum on axis a.
func WithFWHM(a Axis, v float64) Option {
	mustAxis("WithFWHM", a)
	return func(c *config) { c.axes[a].fwhm.put(v) }
}

// WithCenter sets the Gaussian center on axis a.
func WithCenter(a Axis, v float64) Option {
	mustAxis("WithCenter", a)
	return func(c *config) { c.axes[a].center.put(v) }
}

// WithOrder sets the Gaussian exponent on axis a. Order 0 on the y axis
// makes the y factor the constant 1. Panics on a negative order.
func WithOrder(a Axis, n int) Option {
	mustAxis("WithOrder", a)
	if n < 0 {
		panic("spatial: WithOrder(n<0)")
	}
	return func(c *config) {
		c.axes[a].order = n
		c.axes[a].orderSet = true
	}
}

// WithAmplitude sets the cosine amplitude on axis a.
func WithAmplitude(a Axis, v float64) Option {
	mustAxis("WithAmplitude", a)
	return func(c *config) { c.axes[a].amplitude.put(v) }
}

// WithPhase sets the cosine phase on axis a.
func WithPhase(a Axis, v float64) Option {
	mustAxis("WithPhase", a)
	return func(c *config) { c.axes[a].phase.put(v) }
}

// WithHarmonic sets the number of cosine periods across the window on axis a.
func WithHarmonic(a Axis, n float64) Option {
	mustAxis("WithHarmonic", a)
	return func(c *config) { c.axes[a].number.put(n) }
}

// WithBreakpoints sets the polygonal table along x. Slices are copied;
// length checks happen in the factory.
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
		panic("spatial: WithFallRamp(unknown)")
	}
	return func(c *config) { c.fallRamp = r }
}
