// SPDX-License-Identifier: MIT
// Package: profilekit/simctx
//
// context.go — immutable ambient simulation context.
//
// Contract:
//   • Context is a value; slices are copied on the way in and out.
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Require* methods never panic; they return ErrPrecursorNotSet wrapped
//     with the name of the missing value.

package simctx

import (
	"errors"
	"fmt"
	"math"
)

// ErrPrecursorNotSet indicates that a profile was constructed before the
// ambient value it defaults from (dimensionality, domain length, duration)
// was established.
// Usage: if errors.Is(err, simctx.ErrPrecursorNotSet) { /* fix order */ }.
var ErrPrecursorNotSet = errors.New("simctx: precursor not set")

// Dimensionality selects how many spatial axes a simulation has.
type Dimensionality int

const (
	// Unset means the dimensionality was never established.
	Unset Dimensionality = iota
	// OneAxis is a 1-D simulation: spatial profiles are f(x).
	OneAxis
	// TwoAxis is a 2-D simulation: spatial profiles are f(x,y).
	TwoAxis
)

// Axes returns the number of spatial axes (0 when unset).
func (d Dimensionality) Axes() int {
	switch d {
	case OneAxis:
		return 1
	case TwoAxis:
		return 2
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (d Dimensionality) String() string {
	switch d {
	case OneAxis:
		return "1d"
	case TwoAxis:
		return "2d"
	default:
		return "unset"
	}
}

// FromAxes maps an axis count to a Dimensionality (Unset for anything
// other than 1 or 2).
func FromAxes(n int) Dimensionality {
	switch n {
	case 1:
		return OneAxis
	case 2:
		return TwoAxis
	default:
		return Unset
	}
}

// Context carries the ambient values read by profile factories.
// The zero value is a context where nothing has been established.
type Context struct {
	dim         Dimensionality
	domain      []float64
	duration    float64
	hasDuration bool
}

// Option customizes a Context under construction.
type Option func(*Context)

// WithDimensionality sets the number of spatial axes.
// Panics on values other than OneAxis/TwoAxis.
func WithDimensionality(d Dimensionality) Option {
	if d != OneAxis && d != TwoAxis {
		panic("simctx: WithDimensionality(unknown)")
	}
	return func(c *Context) {
		c.dim = d
	}
}

// WithDomainLength sets the per-axis domain extents, axis 0 first.
// Panics on negative or NaN lengths.
func WithDomainLength(lengths ...float64) Option {
	for _, l := range lengths {
		if math.IsNaN(l) || l < 0 {
			panic("simctx: WithDomainLength(negative or NaN)")
		}
	}
	cp := append([]float64(nil), lengths...)
	return func(c *Context) {
		c.domain = cp
	}
}

// WithDuration sets the total simulated time.
// Panics on negative or NaN durations.
func WithDuration(t float64) Option {
	if math.IsNaN(t) || t < 0 {
		panic("simctx: WithDuration(negative or NaN)")
	}
	return func(c *Context) {
		c.duration = t
		c.hasDuration = true
	}
}

// New builds a Context, applying options in order (last wins).
// Complexity: O(len(opts)).
func New(opts ...Option) Context {
	var c Context
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Dimensionality returns the configured dimensionality (Unset if none).
func (c Context) Dimensionality() Dimensionality {
	return c.dim
}

// DomainLength returns the extent of axis i, if known.
func (c Context) DomainLength(i int) (float64, bool) {
	if i < 0 || i >= len(c.domain) {
		return 0, false
	}
	return c.domain[i], true
}

// DomainLengths returns a copy of all known per-axis extents.
func (c Context) DomainLengths() []float64 {
	return append([]float64(nil), c.domain...)
}

// Duration returns the total simulated time, if known.
func (c Context) Duration() (float64, bool) {
	return c.duration, c.hasDuration
}

// RequireDimensionality fails unless the dimensionality is established.
func (c Context) RequireDimensionality() error {
	if c.dim == Unset {
		return fmt.Errorf("dimensionality: %w", ErrPrecursorNotSet)
	}
	return nil
}

// RequireDomain fails unless both the dimensionality and at least one
// domain length are established.
func (c Context) RequireDomain() error {
	if err := c.RequireDimensionality(); err != nil {
		return err
	}
	if len(c.domain) == 0 {
		return fmt.Errorf("domain length: %w", ErrPrecursorNotSet)
	}
	return nil
}

// RequireDuration fails unless the simulated duration is established.
func (c Context) RequireDuration() (float64, error) {
	if !c.hasDuration {
		return 0, fmt.Errorf("duration: %w", ErrPrecursorNotSet)
	}
	return c.duration, nil
}
