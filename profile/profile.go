// SPDX-License-Identifier: MIT
// Package: profilekit/profile
//
// profile.go — the decorated callable returned by every factory.
//
// Design contract:
//   • A Profile has arity 1 (time or 1-D space) or 2 (2-D space).
//   • The evaluator is a closure over resolved parameters only; it holds no
//     mutable state and never touches the ambient context.
//   • Metadata is write-once at construction.

package profile

import "fmt"

// Func1D evaluates a profile of one coordinate.
type Func1D func(u float64) float64

// Func2D evaluates a profile of two coordinates.
type Func2D func(x, y float64) float64

// Predicate reports whether a coordinate satisfies a gate.
type Predicate func(u float64) bool

// Profile is an evaluator plus its metadata.
type Profile struct {
	arity int
	f1    Func1D
	f2    Func2D
	meta  Metadata
}

// New1D decorates a one-coordinate evaluator. meta is copied.
func New1D(f Func1D, meta Metadata) *Profile {
	return &Profile{arity: 1, f1: f, meta: meta.Clone()}
}

// New2D decorates a two-coordinate evaluator. meta is copied.
func New2D(f Func2D, meta Metadata) *Profile {
	return &Profile{arity: 2, f2: f, meta: meta.Clone()}
}

// Name returns the shape tag.
func (p *Profile) Name() Name {
	return p.meta.Name
}

// Arity returns the number of coordinates the profile takes.
func (p *Profile) Arity() int {
	return p.arity
}

// Func1D returns the evaluator when the profile has arity 1.
func (p *Profile) Func1D() (Func1D, bool) {
	return p.f1, p.arity == 1
}

// Func2D returns the evaluator when the profile has arity 2.
func (p *Profile) Func2D() (Func2D, bool) {
	return p.f2, p.arity == 2
}

// At evaluates the profile at the given coordinates.
// Returns ErrArity when len(coords) differs from Arity().
// Complexity: that of the underlying shape (O(1), or O(N) breakpoints).
func (p *Profile) At(coords ...float64) (float64, error) {
	if len(coords) != p.arity {
		return 0, fmt.Errorf("%s: %s takes %d coordinates, got %d: %w",
			MethodAt, p.meta.Name, p.arity, len(coords), ErrArity)
	}
	if p.arity == 1 {
		return p.f1(coords[0]), nil
	}
	return p.f2(coords[0], coords[1]), nil
}

// Metadata returns a deep copy of the resolved parameter record.
func (p *Profile) Metadata() Metadata {
	return p.meta.Clone()
}
