// SPDX-License-Identifier: MIT
// Package: profilekit/profile
//
// kernel_cosine.go — windowed cosine axes.
//
// Two parameterizations share the window [v, v+length):
//   HarmonicAxis: base + amplitude*cos(phase + 2π*number*(u-v)/length)
//   AngularAxis:  base + amplitude*cos(phase + freq*(u-v))
// Outside the window both return 0. A zero-length window is empty, so the
// harmonic division by length is never evaluated.

package profile

import "math"

// HarmonicAxis counts full periods across the window (spatial cosine).
type HarmonicAxis struct {
	Base      float64
	Amplitude float64
	Vacuum    float64
	Length    float64
	Phase     float64
	Number    float64 // harmonic number: periods across Length
}

// Func validates the parameters and returns the axis evaluator.
// Errors: ErrDomain on NaN parameters.
func (h HarmonicAxis) Func() (Func1D, error) {
	if err := RejectNaN(MethodHarmonic,
		Field{"base", h.Base}, Field{"amplitude", h.Amplitude},
		Field{"vacuum", h.Vacuum}, Field{"length", h.Length},
		Field{"phase", h.Phase}, Field{"number", h.Number},
	); err != nil {
		return nil, err
	}

	var (
		base, amp, v, l, phi, n = h.Base, h.Amplitude, h.Vacuum, h.Length, h.Phase, h.Number
		end                     = v + l
	)
	return func(u float64) float64 {
		if u < v || u >= end {
			return 0
		}
		return base + amp*math.Cos(phi+2*math.Pi*n*(u-v)/l)
	}, nil
}

// AngularAxis uses an explicit angular frequency (temporal cosine).
type AngularAxis struct {
	Base      float64
	Amplitude float64
	Start     float64
	Duration  float64
	Phase     float64
	Freq      float64 // angular frequency, radians per unit of u
}

// Func validates the parameters and returns the axis evaluator.
// Errors: ErrDomain on NaN parameters.
func (a AngularAxis) Func() (Func1D, error) {
	if err := RejectNaN(MethodAngular,
		Field{"base", a.Base}, Field{"amplitude", a.Amplitude},
		Field{"start", a.Start}, Field{"duration", a.Duration},
		Field{"phase", a.Phase}, Field{"freq", a.Freq},
	); err != nil {
		return nil, err
	}

	var (
		base, amp, s, phi, w = a.Base, a.Amplitude, a.Start, a.Phase, a.Freq
		end                  = a.Start + a.Duration
	)
	return func(u float64) float64 {
		if u < s || u >= end {
			return 0
		}
		return base + amp*math.Cos(phi+w*(u-s))
	}, nil
}
