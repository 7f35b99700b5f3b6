// SPDX-License-Identifier: MIT
// Package: profilekit/profile
//
// metadata.go — the read-only parameter record attached to every Profile.
//
// Contract:
//   • Metadata is informational: evaluation never reads it back.
//   • Profile.Metadata() returns a deep copy, so the record a Profile was
//     built with can never be mutated from outside.

package profile

import "sort"

// Metadata is the shape tag plus every resolved parameter of a Profile.
// Scalars live in Params, breakpoint tables in Series.
type Metadata struct {
	Name   Name                 `yaml:"name"`
	Params map[string]float64   `yaml:"params,omitempty"`
	Series map[string][]float64 `yaml:"series,omitempty"`
}

// NewMetadata starts an empty record for the given shape.
func NewMetadata(name Name) Metadata {
	return Metadata{Name: name, Params: map[string]float64{}}
}

// With returns m with Params[key] = v. It mutates m's map; use it only
// while assembling a record that has not been published yet.
func (m Metadata) With(key string, v float64) Metadata {
	if m.Params == nil {
		m.Params = map[string]float64{}
	}
	m.Params[key] = v
	return m
}

// WithSeries returns m with a copy of vs stored under key.
func (m Metadata) WithSeries(key string, vs []float64) Metadata {
	if m.Series == nil {
		m.Series = map[string][]float64{}
	}
	m.Series[key] = append([]float64(nil), vs...)
	return m
}

// Param returns a scalar parameter.
func (m Metadata) Param(key string) (float64, bool) {
	v, ok := m.Params[key]
	return v, ok
}

// SeriesOf returns a copy of a series parameter.
func (m Metadata) SeriesOf(key string) ([]float64, bool) {
	vs, ok := m.Series[key]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), vs...), true
}

// Keys returns all parameter keys (scalars and series), sorted.
func (m Metadata) Keys() []string {
	keys := make([]string, 0, len(m.Params)+len(m.Series))
	for k := range m.Params {
		keys = append(keys, k)
	}
	for k := range m.Series {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy.
// Complexity: O(total parameters).
func (m Metadata) Clone() Metadata {
	out := Metadata{Name: m.Name}
	if m.Params != nil {
		out.Params = make(map[string]float64, len(m.Params))
		for k, v := range m.Params {
			out.Params[k] = v
		}
	}
	if m.Series != nil {
		out.Series = make(map[string][]float64, len(m.Series))
		for k, vs := range m.Series {
			out.Series[k] = append([]float64(nil), vs...)
		}
	}
	return out
}
