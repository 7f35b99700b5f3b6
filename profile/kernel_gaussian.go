// SPDX-License-Identifier: MIT
// Package: profilekit/profile
//
// kernel_gaussian.go — (super-)Gaussian window along one axis.
//
//   sigma = (0.5*fwhm)^order / ln 2
//   u < v              → 0
//   v ≤ u < v+length   → scale * exp(-(u-center)^order / sigma)
//   otherwise          → 0
//
// Order 2 is the usual Gaussian; higher even orders flatten the top.

package profile

import (
	"fmt"
	"math"
)

// GaussianAxis holds the resolved parameters of one Gaussian axis.
type GaussianAxis struct {
	Vacuum float64
	Length float64
	FWHM   float64
	Center float64
	Order  int
	Scale  float64
}

// Sigma returns the derived width constant (0.5*fwhm)^order / ln 2.
func (g GaussianAxis) Sigma() float64 {
	return math.Pow(0.5*g.FWHM, float64(g.Order)) / math.Ln2
}

// Func validates the parameters and returns the axis evaluator.
// Errors:
//   - ErrDomain on NaN parameters.
//   - ErrDomain when Sigma() is zero or not finite (e.g. fwhm = 0), since
//     the exponent would be 0/0 at the center.
//
// Complexity: O(1) build, O(1) per evaluation.
func (g GaussianAxis) Func() (Func1D, error) {
	// Stage 1 (Validate): NaN fields, then a usable width constant.
	if err := RejectNaN(MethodGaussian,
		Field{"vacuum", g.Vacuum}, Field{"length", g.Length},
		Field{"fwhm", g.FWHM}, Field{"center", g.Center},
		Field{"scale", g.Scale},
	); err != nil {
		return nil, err
	}
	sigma := g.Sigma()
	if sigma == 0 || math.IsInf(sigma, 0) || math.IsNaN(sigma) {
		return nil, fmt.Errorf("%s: width constant %v from fwhm=%v order=%d: %w",
			MethodGaussian, sigma, g.FWHM, g.Order, ErrDomain)
	}

	// Stage 2 (Evaluate): window test, then the scaled exponential.
	var (
		v, c, m = g.Vacuum, g.Center, g.Scale
		end     = g.Vacuum + g.Length
		order   = float64(g.Order)
	)
	return func(u float64) float64 {
		if u < v || u >= end {
			return 0
		}
		return m * math.Exp(-math.Pow(u-c, order)/sigma)
	}, nil
}
