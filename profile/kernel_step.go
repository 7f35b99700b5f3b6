// SPDX-License-Identifier: MIT
// Package: profilekit/profile
//
// kernel_step.go — threshold step axis and its gate predicate.

package profile

// StepAxis is Value at and beyond Threshold, 0 before it.
type StepAxis struct {
	Threshold float64
	Value     float64
}

// Func validates the parameters and returns the axis evaluator.
// Errors: ErrDomain on NaN parameters. Threshold may be ±Inf.
func (s StepAxis) Func() (Func1D, error) {
	if err := RejectNaN(MethodStep, Field{"threshold", s.Threshold}, Field{"value", s.Value}); err != nil {
		return nil, err
	}
	th, v := s.Threshold, s.Value
	return func(u float64) float64 {
		if u >= th {
			return v
		}
		return 0
	}, nil
}

// Gate returns the threshold test u >= Threshold.
func (s StepAxis) Gate() Predicate {
	th := s.Threshold
	return func(u float64) bool { return u >= th }
}
