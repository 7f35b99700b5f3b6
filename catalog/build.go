// SPDX-License-Identifier: MIT
// Package: profilekit/catalog
//
// build.go — rebuild a Profile from its Metadata record.
//
// Dispatch is by shape name, one recipe per shape. A recipe reads its keys
// through a reader, which remembers every key consumed; keys left over at
// the end are reported as ErrUnknownParameter.

package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
	"github.com/katalvlaran/profilekit/spatial"
	"github.com/katalvlaran/profilekit/temporal"
)

type recipe func(sc simctx.Context, r *reader) (*profile.Profile, error)

var recipes = map[profile.Name]recipe{
	profile.NameConstant:        spatialConstant,
	profile.NameTrapezoidal:     spatialTrapezoidal,
	profile.NameGaussian:        spatialGaussian,
	profile.NamePolygonal:       spatialPolygonal,
	profile.NameCosine:          spatialCosine,
	profile.NameTimeConstant:    timeConstant,
	profile.NameTimeTrapezoidal: timeTrapezoidal,
	profile.NameTimeGaussian:    timeGaussian,
	profile.NameTimePolygonal:   timePolygonal,
	profile.NameTimeCosine:      timeCosine,
}

// Build rebuilds the profile described by meta in context sc.
//
// Errors:
//   - ErrUnknownShape if meta.Name is not a known shape.
//   - ErrMissingParameter if a required key is absent.
//   - ErrUnknownParameter if a key is not accepted by the shape.
//   - ErrInvalidParameter on an out-of-domain order or fall-ramp value.
//   - any error of the underlying factory (ErrPrecursorNotSet, ErrDomain, ...).
func Build(sc simctx.Context, meta profile.Metadata) (*profile.Profile, error) {
	build, ok := recipes[meta.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, meta.Name)
	}
	r := &reader{meta: meta, used: make(map[string]bool)}
	p, err := build(sc, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", meta.Name, err)
	}
	if err := r.leftover(); err != nil {
		return nil, fmt.Errorf("%s: %w", meta.Name, err)
	}
	return p, nil
}

// reader tracks which keys of a record were consumed. The first error
// sticks; later calls are no-ops.
type reader struct {
	meta profile.Metadata
	used map[string]bool
	err  error
}

// scalar calls apply with Params[key] when present.
func (r *reader) scalar(key string, apply func(float64)) {
	if r.err != nil {
		return
	}
	if v, ok := r.meta.Params[key]; ok {
		r.used[key] = true
		apply(v)
	}
}

// require returns Params[key] or records ErrMissingParameter.
func (r *reader) require(key string) float64 {
	if r.err != nil {
		return 0
	}
	v, ok := r.meta.Params[key]
	if !ok {
		r.err = fmt.Errorf("%s: %w", key, ErrMissingParameter)
		return 0
	}
	r.used[key] = true
	return v
}

// maxOrder bounds a decoded Gaussian order so the int conversion is exact.
const maxOrder = math.MaxInt32

// order reads a Gaussian order, which must be an integer in [0, maxOrder].
func (r *reader) order(key string, apply func(int)) {
	r.scalar(key, func(v float64) {
		// the negated range test also rejects NaN
		if !(v >= 0 && v <= maxOrder) || v != math.Trunc(v) {
			r.err = fmt.Errorf("%s=%v: %w", key, v, ErrInvalidParameter)
			return
		}
		apply(int(v))
	})
}

// fallRamp reads the trapezoid fall-ramp mode.
func (r *reader) fallRamp(key string, apply func(profile.FallRamp)) {
	r.scalar(key, func(v float64) {
		switch v {
		case float64(profile.FallRampReference):
			apply(profile.FallRampReference)
		case float64(profile.FallRampMirrored):
			apply(profile.FallRampMirrored)
		default:
			r.err = fmt.Errorf("%s=%v: %w", key, v, ErrInvalidParameter)
		}
	})
}

// table reads a breakpoint table. Either both keys are present or neither.
func (r *reader) table(pointsKey, valuesKey string, apply func(points, values []float64)) {
	if r.err != nil {
		return
	}
	points, okP := r.meta.Series[pointsKey]
	values, okV := r.meta.Series[valuesKey]
	switch {
	case !okP && !okV:
		return
	case !okP:
		r.err = fmt.Errorf("%s: %w", pointsKey, ErrMissingParameter)
		return
	case !okV:
		r.err = fmt.Errorf("%s: %w", valuesKey, ErrMissingParameter)
		return
	}
	r.used[pointsKey], r.used[valuesKey] = true, true
	apply(points, values)
}

// derived marks keys that are recorded by factories but recomputed on build.
func (r *reader) derived(keys ...string) {
	for _, k := range keys {
		r.used[k] = true
	}
}

// leftover reports the first unconsumed key in sorted order.
func (r *reader) leftover() error {
	var extra []string
	for k := range r.meta.Params {
		if !r.used[k] {
			extra = append(extra, k)
		}
	}
	for k := range r.meta.Series {
		if !r.used[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	return fmt.Errorf("%s: %w", extra[0], ErrUnknownParameter)
}

var axes = [...]spatial.Axis{spatial.X, spatial.Y}

// axisScalars binds per-axis keys ("xvacuum", "ylength", ...) to options.
func axisScalars(r *reader, opts *[]spatial.Option, binds map[string]func(spatial.Axis, float64) spatial.Option) {
	names := make([]string, 0, len(binds))
	for name := range binds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, a := range axes {
		for _, name := range names {
			bind := binds[name]
			a := a
			r.scalar(a.String()+name, func(v float64) { *opts = append(*opts, bind(a, v)) })
		}
	}
}

func spatialConstant(sc simctx.Context, r *reader) (*profile.Profile, error) {
	value := r.require(spatial.KeyValue)
	var opts []spatial.Option
	axisScalars(r, &opts, map[string]func(spatial.Axis, float64) spatial.Option{
		"vacuum": spatial.WithVacuum,
	})
	if r.err != nil {
		return nil, r.err
	}
	return spatial.Constant(sc, value, opts...)
}

func spatialTrapezoidal(sc simctx.Context, r *reader) (*profile.Profile, error) {
	value := r.require(spatial.KeyValue)
	var opts []spatial.Option
	r.fallRamp(spatial.KeyFallRamp, func(fr profile.FallRamp) { opts = append(opts, spatial.WithFallRamp(fr)) })
	axisScalars(r, &opts, map[string]func(spatial.Axis, float64) spatial.Option{
		"vacuum":  spatial.WithVacuum,
		"plateau": spatial.WithPlateau,
		"slope1":  spatial.WithSlope1,
		"slope2":  spatial.WithSlope2,
	})
	if r.err != nil {
		return nil, r.err
	}
	return spatial.Trapezoidal(sc, value, opts...)
}

func spatialGaussian(sc simctx.Context, r *reader) (*profile.Profile, error) {
	value := r.require(spatial.KeyValue)
	var opts []spatial.Option
	axisScalars(r, &opts, map[string]func(spatial.Axis, float64) spatial.Option{
		"vacuum": spatial.WithVacuum,
		"length": spatial.WithLength,
		"fwhm":   spatial.WithFWHM,
		"center": spatial.WithCenter,
	})
	for _, a := range axes {
		a := a
		r.order(a.String()+"order", func(n int) { opts = append(opts, spatial.WithOrder(a, n)) })
		r.derived(a.String() + "sigma")
	}
	if r.err != nil {
		return nil, r.err
	}
	return spatial.Gaussian(sc, value, opts...)
}

func spatialPolygonal(sc simctx.Context, r *reader) (*profile.Profile, error) {
	var opts []spatial.Option
	r.table("xpoints", "xvalues", func(points, values []float64) {
		opts = append(opts, spatial.WithBreakpoints(points, values))
	})
	r.derived("xslopes")
	if r.err != nil {
		return nil, r.err
	}
	return spatial.Polygonal(sc, opts...)
}

func spatialCosine(sc simctx.Context, r *reader) (*profile.Profile, error) {
	base := r.require(spatial.KeyBase)
	var opts []spatial.Option
	axisScalars(r, &opts, map[string]func(spatial.Axis, float64) spatial.Option{
		"amplitude": spatial.WithAmplitude,
		"vacuum":    spatial.WithVacuum,
		"length":    spatial.WithLength,
		"phi":       spatial.WithPhase,
		"number":    spatial.WithHarmonic,
	})
	if r.err != nil {
		return nil, r.err
	}
	return spatial.Cosine(sc, base, opts...)
}

// timeScalars binds flat keys to temporal options.
func timeScalars(r *reader, opts *[]temporal.Option, binds map[string]func(float64) temporal.Option) {
	names := make([]string, 0, len(binds))
	for name := range binds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		bind := binds[name]
		r.scalar(name, func(v float64) { *opts = append(*opts, bind(v)) })
	}
}

func timeConstant(sc simctx.Context, r *reader) (*profile.Profile, error) {
	var opts []temporal.Option
	timeScalars(r, &opts, map[string]func(float64) temporal.Option{"start": temporal.WithStart})
	if r.err != nil {
		return nil, r.err
	}
	return temporal.Constant(sc, opts...)
}

func timeTrapezoidal(sc simctx.Context, r *reader) (*profile.Profile, error) {
	var opts []temporal.Option
	r.fallRamp("fallramp", func(fr profile.FallRamp) { opts = append(opts, temporal.WithFallRamp(fr)) })
	timeScalars(r, &opts, map[string]func(float64) temporal.Option{
		"start":   temporal.WithStart,
		"plateau": temporal.WithPlateau,
		"slope1":  temporal.WithSlope1,
		"slope2":  temporal.WithSlope2,
	})
	if r.err != nil {
		return nil, r.err
	}
	return temporal.Trapezoidal(sc, opts...)
}

func timeGaussian(sc simctx.Context, r *reader) (*profile.Profile, error) {
	var opts []temporal.Option
	timeScalars(r, &opts, map[string]func(float64) temporal.Option{
		"start":    temporal.WithStart,
		"duration": temporal.WithDuration,
		"fwhm":     temporal.WithFWHM,
		"center":   temporal.WithCenter,
	})
	r.order("order", func(n int) { opts = append(opts, temporal.WithOrder(n)) })
	r.derived("sigma")
	if r.err != nil {
		return nil, r.err
	}
	return temporal.Gaussian(sc, opts...)
}

func timePolygonal(sc simctx.Context, r *reader) (*profile.Profile, error) {
	var opts []temporal.Option
	r.table("points", "values", func(points, values []float64) {
		opts = append(opts, temporal.WithBreakpoints(points, values))
	})
	r.derived("slopes")
	if r.err != nil {
		return nil, r.err
	}
	return temporal.Polygonal(sc, opts...)
}

func timeCosine(sc simctx.Context, r *reader) (*profile.Profile, error) {
	var opts []temporal.Option
	timeScalars(r, &opts, map[string]func(float64) temporal.Option{
		"base":      temporal.WithBase,
		"amplitude": temporal.WithAmplitude,
		"start":     temporal.WithStart,
		"duration":  temporal.WithDuration,
		"phi":       temporal.WithPhase,
		"freq":      temporal.WithFrequency,
	})
	if r.err != nil {
		return nil, r.err
	}
	return temporal.Cosine(sc, opts...)
}
