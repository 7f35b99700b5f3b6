// SPDX-License-Identifier: MIT
// Package: profilekit/profile
//
// kernel_breakpoints.go — piecewise-linear interpolation over a table of
// (point, value) pairs.
//
// Contract:
//   • points are non-decreasing; len(points) == len(values) ≥ 2.
//   • slopes[i] = (values[i+1]-values[i]) / (points[i+1]-points[i]),
//     or 0 when points[i] == points[i+1] (degenerate segment).
//   • Evaluation: 0 before the first point; inside, the first segment whose
//     right end exceeds u; 0 at or beyond the last point (no extrapolation).
//   • Lookup is a linear scan in breakpoint order.

package profile

import "fmt"

// BreakpointTable is an immutable polygonal profile definition.
type BreakpointTable struct {
	points []float64
	values []float64
	slopes []float64
}

// NewBreakpointTable validates the table and derives per-segment slopes.
// Inputs are copied.
//
// Errors:
//   - ErrParameterMismatch if len(points) != len(values).
//   - ErrTooFewBreakpoints if fewer than MinBreakpoints pairs.
//   - ErrDomain on NaN entries or a decreasing point sequence.
//
// Complexity: O(N) time and memory.
func NewBreakpointTable(points, values []float64) (BreakpointTable, error) {
	// Stage 1 (Validate): shape, NaN entries and monotone points.
	if len(points) != len(values) {
		return BreakpointTable{}, fmt.Errorf("%s: %d points, %d values: %w",
			MethodBreakpoints, len(points), len(values), ErrParameterMismatch)
	}
	n := len(points)
	if n < MinBreakpoints {
		return BreakpointTable{}, fmt.Errorf("%s: got %d, need %d: %w",
			MethodBreakpoints, n, MinBreakpoints, ErrTooFewBreakpoints)
	}
	for i := 0; i < n; i++ {
		if err := RejectNaN(MethodBreakpoints,
			Field{fmt.Sprintf("points[%d]", i), points[i]},
			Field{fmt.Sprintf("values[%d]", i), values[i]},
		); err != nil {
			return BreakpointTable{}, err
		}
		if i > 0 && points[i] < points[i-1] {
			return BreakpointTable{}, fmt.Errorf("%s: points[%d]=%v < points[%d]=%v: %w",
				MethodBreakpoints, i, points[i], i-1, points[i-1], ErrDomain)
		}
	}

	// Stage 2 (Derive): private copies, then per-segment slopes.
	t := BreakpointTable{
		points: append([]float64(nil), points...),
		values: append([]float64(nil), values...),
		slopes: make([]float64, n-1),
	}
	for i := 1; i < n; i++ {
		if t.points[i] == t.points[i-1] {
			continue // degenerate segment keeps slope 0
		}
		t.slopes[i-1] = (t.values[i] - t.values[i-1]) / (t.points[i] - t.points[i-1])
	}
	return t, nil
}

// Len returns the number of breakpoints.
func (t BreakpointTable) Len() int { return len(t.points) }

// Points returns a copy of the breakpoint coordinates.
func (t BreakpointTable) Points() []float64 { return append([]float64(nil), t.points...) }

// Values returns a copy of the breakpoint values.
func (t BreakpointTable) Values() []float64 { return append([]float64(nil), t.values...) }

// Slopes returns a copy of the derived per-segment slopes.
func (t BreakpointTable) Slopes() []float64 { return append([]float64(nil), t.slopes...) }

// Func returns the interpolating evaluator.
// Complexity: O(N) per evaluation (linear scan).
func (t BreakpointTable) Func() Func1D {
	points, values, slopes := t.points, t.values, t.slopes
	return func(u float64) float64 {
		if u < points[0] {
			return 0
		}
		for i := 1; i < len(points); i++ {
			if u < points[i] {
				return values[i-1] + slopes[i-1]*(u-points[i-1])
			}
		}
		return 0
	}
}
