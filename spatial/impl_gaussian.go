// SPDX-License-Identifier: MIT
// Package: profilekit/spatial
//
// impl_gaussian.go — super-Gaussian window along each axis.
//
// Per axis: sigma = (0.5*fwhm)^order / ln 2, and on [vacuum, vacuum+length)
// the factor is exp(-(u-center)^order / sigma). The x factor is scaled by
// peak. A y order of 0 short-circuits the y factor to 1, which keeps a 2-D
// call signature for an effectively 1-D profile.

package spatial

import (
	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
)

// Gaussian builds a Gaussian profile with peak value peak.
//
// Options: WithVacuum, WithLength, WithFWHM, WithCenter, WithOrder.
// Metadata: value, and per axis vacuum, length, fwhm, sigma, center, order
// (only yvacuum and yorder when yorder is 0).
// Errors:
//   - ErrPrecursorNotSet if dimensionality or domain length is missing, or
//     a length must be defaulted on an axis without a domain length.
//   - ErrDomain on NaN parameters or a zero width constant (fwhm = 0).
//
// Complexity: O(1) build and evaluation.
func Gaussian(sc simctx.Context, peak float64, opts ...Option) (*profile.Profile, error) {
	if err := sc.RequireDomain(); err != nil {
		return nil, wrap(MethodGaussian, err)
	}
	cfg := newConfig(opts...)
	meta := profile.NewMetadata(profile.NameGaussian).With(KeyValue, peak)

	return separable(sc, meta, func(a Axis, meta *profile.Metadata) (profile.Func1D, error) {
		ac := cfg.axes[a]
		vacuum := ac.vacuum.or(defaultVacuum)
		order := cfg.orderOr(a, defaultOrder)

		if a == Y && order == 0 {
			*meta = meta.With(a.key("vacuum"), vacuum).With(a.key("order"), 0)
			return profile.Unit, nil
		}

		length, err := extent(MethodGaussian, sc, a, ac.length, "length", vacuum)
		if err != nil {
			return nil, err
		}
		scale := 1.0
		if a == X {
			scale = peak
		}
		k := profile.GaussianAxis{
			Vacuum: vacuum,
			Length: length,
			FWHM:   ac.fwhm.or(length / defaultFWHMParts),
			Center: ac.center.or(vacuum + length/2),
			Order:  order,
			Scale:  scale,
		}
		f, err := k.Func()
		if err != nil {
			return nil, wrap(MethodGaussian, err)
		}
		*meta = meta.With(a.key("vacuum"), k.Vacuum).
			With(a.key("length"), k.Length).
			With(a.key("fwhm"), k.FWHM).
			With(a.key("sigma"), k.Sigma()).
			With(a.key("center"), k.Center).
			With(a.key("order"), float64(k.Order))
		return f, nil
	})
}
