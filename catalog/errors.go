// SPDX-License-Identifier: MIT
// Package: profilekit/catalog
//
// errors.go — sentinel errors for document decoding and rebuild.

package catalog

import "errors"

var (
	// ErrUnknownShape indicates a record whose name is not a known shape.
	ErrUnknownShape = errors.New("catalog: unknown shape")

	// ErrUnknownParameter indicates a key the shape does not accept.
	ErrUnknownParameter = errors.New("catalog: unknown parameter")

	// ErrMissingParameter indicates that a required key (value, base) is absent.
	ErrMissingParameter = errors.New("catalog: missing parameter")

	// ErrInvalidParameter indicates a key whose value is out of its domain
	// (a fractional Gaussian order, an unknown fall-ramp mode).
	ErrInvalidParameter = errors.New("catalog: invalid parameter")

	// ErrInvalidContext indicates a document context that cannot describe a
	// simulation (dimensionality other than 1 or 2, negative lengths).
	ErrInvalidContext = errors.New("catalog: invalid context")

	// ErrDuplicateID indicates two entries sharing an id.
	ErrDuplicateID = errors.New("catalog: duplicate id")
)
