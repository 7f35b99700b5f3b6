// SPDX-License-Identifier: MIT
// Package: profilekit/profile
//
// errors.go — sentinel errors for the profile core.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Kernels and factories never panic; option constructors may.

package profile

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/profilekit/simctx"
)

// ErrPrecursorNotSet is re-exported from simctx so callers of the
// factories need not import simctx only to match it.
var ErrPrecursorNotSet = simctx.ErrPrecursorNotSet

// ErrParameterMismatch indicates that breakpoint points and values have
// different lengths.
var ErrParameterMismatch = errors.New("profile: points and values differ in length")

// ErrTooFewBreakpoints indicates a breakpoint table with fewer than
// MinBreakpoints pairs.
var ErrTooFewBreakpoints = errors.New("profile: too few breakpoints")

// ErrDomain indicates a parameter outside the numeric domain of a shape:
// NaN inputs, decreasing breakpoints, or a Gaussian whose width constant is
// zero or not finite.
var ErrDomain = errors.New("profile: parameter outside numeric domain")

// ErrArity indicates a Profile was evaluated with the wrong number of
// coordinates.
var ErrArity = errors.New("profile: wrong number of coordinates")

// MinBreakpoints is the smallest breakpoint table that defines a segment.
const MinBreakpoints = 2

// Method tokens used as error prefixes.
const (
	MethodTrapezoid   = "TrapezoidAxis"
	MethodGaussian    = "GaussianAxis"
	MethodBreakpoints = "BreakpointTable"
	MethodHarmonic    = "HarmonicAxis"
	MethodAngular     = "AngularAxis"
	MethodStep        = "StepAxis"
	MethodAt          = "Profile.At"
)

// Field names one parameter for NaN screening.
type Field struct {
	Name  string
	Value float64
}

// RejectNaN returns ErrDomain for the first NaN field, nil otherwise.
// Infinities are allowed: a vacuum of -Inf is a meaningful default.
// Complexity: O(len(fields)).
func RejectNaN(method string, fields ...Field) error {
	for _, f := range fields {
		if math.IsNaN(f.Value) {
			return fmt.Errorf("%s: %s is NaN: %w", method, f.Name, ErrDomain)
		}
	}
	return nil
}
