// SPDX-License-Identifier: MIT
// Package: profilekit/spatial
//
// impl_cosine.go — harmonic cosine window along each axis.
//
// Per axis, on [vacuum, vacuum+length):
//   base + amplitude*cos(phase + 2π*number*(u-vacuum)/length)
// and 0 elsewhere. Both axis factors include base; f(x,y) = fx(x)*fy(y).

package spatial

import (
	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
)

// Cosine builds a cosine profile around base.
//
// Options: WithAmplitude, WithVacuum, WithLength, WithPhase, WithHarmonic.
// Metadata: base, and per axis amplitude, vacuum, length, phi, number.
// Errors:
//   - ErrPrecursorNotSet if dimensionality or domain length is missing, or
//     a length must be defaulted on an axis without a domain length.
//   - ErrDomain on NaN parameters.
//
// Complexity: O(1) build and evaluation.
func Cosine(sc simctx.Context, base float64, opts ...Option) (*profile.Profile, error) {
	if err := sc.RequireDomain(); err != nil {
		return nil, wrap(MethodCosine, err)
	}
	cfg := newConfig(opts...)
	meta := profile.NewMetadata(profile.NameCosine).With(KeyBase, base)

	return separable(sc, meta, func(a Axis, meta *profile.Metadata) (profile.Func1D, error) {
		ac := cfg.axes[a]
		vacuum := ac.vacuum.or(defaultVacuum)
		length, err := extent(MethodCosine, sc, a, ac.length, "length", vacuum)
		if err != nil {
			return nil, err
		}
		k := profile.HarmonicAxis{
			Base:      base,
			Amplitude: ac.amplitude.or(defaultAmplitude),
			Vacuum:    vacuum,
			Length:    length,
			Phase:     ac.phase.or(defaultPhase),
			Number:    ac.number.or(defaultHarmonic),
		}
		f, err := k.Func()
		if err != nil {
			return nil, wrap(MethodCosine, err)
		}
		*meta = meta.With(a.key("amplitude"), k.Amplitude).
			With(a.key("vacuum"), k.Vacuum).
			With(a.key("length"), k.Length).
			With(a.key("phi"), k.Phase).
			With(a.key("number"), k.Number)
		return f, nil
	})
}
