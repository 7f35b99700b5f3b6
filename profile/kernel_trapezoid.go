// SPDX-License-Identifier: MIT
// Package: profilekit/profile
//
// kernel_trapezoid.go — piecewise-linear vacuum/ramp/plateau/ramp axis.
//
// Regions, for coordinate u (all half-open, left-closed):
//   u < v                        → 0
//   v ≤ u < v+s1                 → scale*(u-v)/s1
//   v+s1 ≤ u < v+s1+p            → scale
//   v+s1+p ≤ u < v+s1+p+s2       → scale*(1 - (u-ref)/s2)
//   otherwise                    → 0
// where ref = v+s1+s2 (FallRampReference) or v+s1+p (FallRampMirrored).
//
// Zero-width slopes are legal: the ramp region is then empty and its
// division is never evaluated.

package profile

// TrapezoidAxis holds the resolved parameters of one trapezoidal axis.
type TrapezoidAxis struct {
	Vacuum   float64  // start of the profile along the axis
	Plateau  float64  // length of the flat top
	Slope1   float64  // width of the rising ramp
	Slope2   float64  // width of the falling ramp
	Scale    float64  // plateau height (1 for unit axes)
	FallRamp FallRamp // reference point of the falling ramp
}

// Func validates the parameters and returns the axis evaluator.
// Errors: ErrDomain on NaN parameters.
// Complexity: O(1) build, O(1) per evaluation.
func (t TrapezoidAxis) Func() (Func1D, error) {
	// Stage 1 (Validate): NaN in any field poisons every region.
	if err := RejectNaN(MethodTrapezoid,
		Field{"vacuum", t.Vacuum}, Field{"plateau", t.Plateau},
		Field{"slope1", t.Slope1}, Field{"slope2", t.Slope2},
		Field{"scale", t.Scale},
	); err != nil {
		return nil, err
	}

	// Stage 2 (Prepare): region boundaries are fixed once per axis.
	var (
		v, s1, s2, m = t.Vacuum, t.Slope1, t.Slope2, t.Scale
		rise         = v + s1             // end of the rising ramp
		top          = v + s1 + t.Plateau // end of the plateau
		end          = top + s2           // end of the falling ramp
		ref          = v + s1 + s2        // fall reference point
	)
	if t.FallRamp == FallRampMirrored {
		ref = top
	}

	// Stage 3 (Evaluate): first matching region wins; empty ramps are skipped.
	return func(u float64) float64 {
		switch {
		case u < v:
			return 0
		case u < rise:
			return m * (u - v) / s1
		case u < top:
			return m
		case u < end:
			return m * (1 - (u-ref)/s2)
		default:
			return 0
		}
	}, nil
}
