package profile_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/profilekit/profile"
)

const eps = 1e-12

// TestTrapezoidRegions walks every region of a trapezoid with the half-open
// convention: a coordinate on a boundary belongs to the next region.
func TestTrapezoidRegions(t *testing.T) {
	t.Parallel()

	f, err := profile.TrapezoidAxis{Vacuum: 1, Plateau: 4, Slope1: 2, Slope2: 4, Scale: 3}.Func()
	require.NoError(t, err)

	assert.Equal(t, 0.0, f(0.999))
	assert.Equal(t, 0.0, f(1))        // start of the rise
	assert.InDelta(t, 1.5, f(2), eps) // mid-rise
	assert.Equal(t, 3.0, f(3))        // rise end belongs to the plateau
	assert.Equal(t, 3.0, f(6.999))
	assert.InDelta(t, 3.0, f(7), eps) // plateau == slope2: both fall forms agree
	assert.InDelta(t, 1.5, f(9), eps)
	assert.Equal(t, 0.0, f(11)) // end of the fall
}

// TestTrapezoidRiseContinuity checks continuity where the rise meets the
// plateau, approached from the left.
func TestTrapezoidRiseContinuity(t *testing.T) {
	t.Parallel()

	f, err := profile.TrapezoidAxis{Vacuum: 0, Plateau: 6, Slope1: 2, Slope2: 2, Scale: 2}.Func()
	require.NoError(t, err)

	assert.InDelta(t, f(2), f(math.Nextafter(2, 0)), 1e-9)
	assert.InDelta(t, 0, f(0), eps)
}

// TestTrapezoidFallRamp flags the fall-ramp reference point: by default the
// ramp is measured from vacuum+slope1+slope2, not from the plateau end.
// With plateau=6, slope2=2 the reference form leaves the [0,scale] range
// inside the fall region; the mirrored form ramps straight down.
func TestTrapezoidFallRamp(t *testing.T) {
	t.Parallel()

	base := profile.TrapezoidAxis{Vacuum: 0, Plateau: 6, Slope1: 2, Slope2: 2, Scale: 2}

	ref, err := base.Func()
	require.NoError(t, err)
	// 2*(1 - (9-4)/2) = -3
	assert.InDelta(t, -3.0, ref(9), eps)
	// 2*(1 - (8-4)/2) = -2
	assert.InDelta(t, -2.0, ref(8), eps)

	base.FallRamp = profile.FallRampMirrored
	mir, err := base.Func()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, mir(8), eps)
	assert.InDelta(t, 1.0, mir(9), eps)
	assert.Equal(t, 0.0, mir(10))
	assert.InDelta(t, mir(8), mir(math.Nextafter(8, 0)), 1e-9)
}

// TestTrapezoidZeroSlopes ensures zero-width ramps never divide by zero.
func TestTrapezoidZeroSlopes(t *testing.T) {
	t.Parallel()

	f, err := profile.TrapezoidAxis{Vacuum: 2, Plateau: 3, Scale: 1}.Func()
	require.NoError(t, err)

	for _, u := range []float64{1.9, 2, 4.9, 5, 6} {
		v := f(u)
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "u=%v gave %v", u, v)
	}
	assert.Equal(t, 1.0, f(2))
	assert.Equal(t, 0.0, f(5))
}

// TestGaussianAxis covers the peak, the window edges and the sigma formula.
func TestGaussianAxis(t *testing.T) {
	t.Parallel()

	g := profile.GaussianAxis{Vacuum: 0, Length: 10, FWHM: 2, Center: 5, Order: 2, Scale: 4}
	assert.InDelta(t, 1/math.Ln2, g.Sigma(), eps)

	f, err := g.Func()
	require.NoError(t, err)
	assert.Equal(t, 4.0, f(5))
	assert.InDelta(t, 2.0, f(6), 1e-12) // half maximum at center ± fwhm/2
	assert.InDelta(t, 2.0, f(4), 1e-12)
	assert.Equal(t, 0.0, f(-0.1))
	assert.Equal(t, 0.0, f(10))
	assert.Greater(t, f(0), 0.0)
}

// TestGaussianDomain rejects a zero width constant and NaN inputs.
func TestGaussianDomain(t *testing.T) {
	t.Parallel()

	_, err := profile.GaussianAxis{Length: 10, FWHM: 0, Center: 5, Order: 2, Scale: 1}.Func()
	require.ErrorIs(t, err, profile.ErrDomain)

	_, err = profile.GaussianAxis{Length: 10, FWHM: math.NaN(), Center: 5, Order: 2, Scale: 1}.Func()
	require.ErrorIs(t, err, profile.ErrDomain)

	// order 0: (0.5*fwhm)^0 = 1, a legal (flat) window even for fwhm=0.
	f, err := profile.GaussianAxis{Length: 10, FWHM: 0, Center: 5, Order: 0, Scale: 1}.Func()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, f(3), eps)
}

// TestBreakpointTable covers interpolation, exact breakpoints and the
// absence of extrapolation.
func TestBreakpointTable(t *testing.T) {
	t.Parallel()

	tbl, err := profile.NewBreakpointTable([]float64{0, 5, 10}, []float64{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, -0.2}, tbl.Slopes())
	assert.Equal(t, 3, tbl.Len())

	f := tbl.Func()
	assert.InDelta(t, 0.5, f(2.5), eps)
	assert.InDelta(t, 0.5, f(7.5), eps)
	assert.Equal(t, 0.0, f(0))
	assert.Equal(t, 1.0, f(5))
	assert.Equal(t, 0.0, f(10))
	assert.Equal(t, 0.0, f(-1))
	assert.Equal(t, 0.0, f(11))
}

// TestBreakpointInteriorValues checks f(point[i]) == value[i] for every
// breakpoint but the last, including a degenerate (vertical) segment.
func TestBreakpointInteriorValues(t *testing.T) {
	t.Parallel()

	points := []float64{-2, 0, 0, 3, 7}
	values := []float64{1, 2, 5, -1, 4}
	tbl, err := profile.NewBreakpointTable(points, values)
	require.NoError(t, err)
	assert.Equal(t, 0.0, tbl.Slopes()[1]) // degenerate segment

	f := tbl.Func()
	for i := 0; i < len(points)-1; i++ {
		if i > 0 && points[i] == points[i-1] {
			continue
		}
		next := i
		for next+1 < len(points)-1 && points[next+1] == points[i] {
			next++
		}
		// A repeated point resolves to the last segment starting there.
		assert.InDelta(t, values[next], f(points[i]), eps, "i=%d", i)
	}
	assert.Equal(t, 0.0, f(7))
}

// TestBreakpointErrors covers the validation sentinels.
func TestBreakpointErrors(t *testing.T) {
	t.Parallel()

	_, err := profile.NewBreakpointTable([]float64{0, 1}, []float64{1})
	require.ErrorIs(t, err, profile.ErrParameterMismatch)

	_, err = profile.NewBreakpointTable([]float64{0}, []float64{1})
	require.ErrorIs(t, err, profile.ErrTooFewBreakpoints)

	_, err = profile.NewBreakpointTable([]float64{0, 2, 1}, []float64{1, 1, 1})
	require.ErrorIs(t, err, profile.ErrDomain)

	_, err = profile.NewBreakpointTable([]float64{0, math.NaN()}, []float64{1, 1})
	require.ErrorIs(t, err, profile.ErrDomain)
}

// TestBreakpointTableIsCopied ensures the table does not alias inputs.
func TestBreakpointTableIsCopied(t *testing.T) {
	t.Parallel()

	points := []float64{0, 10}
	values := []float64{1, 1}
	tbl, err := profile.NewBreakpointTable(points, values)
	require.NoError(t, err)
	points[1] = 1
	values[0] = 9

	assert.Equal(t, []float64{0, 10}, tbl.Points())
	assert.Equal(t, 1.0, tbl.Func()(5))
}

// TestHarmonicAxis checks f(vacuum) = base + amplitude*cos(phase) and the
// window.
func TestHarmonicAxis(t *testing.T) {
	t.Parallel()

	h := profile.HarmonicAxis{Base: 1, Amplitude: 0.5, Vacuum: 2, Length: 8, Phase: 0.3, Number: 2}
	f, err := h.Func()
	require.NoError(t, err)

	assert.InDelta(t, 1+0.5*math.Cos(0.3), f(2), eps)
	assert.InDelta(t, 1+0.5*math.Cos(0.3+math.Pi), f(4), eps) // quarter window = half period
	assert.Equal(t, 0.0, f(1.99))
	assert.Equal(t, 0.0, f(10))

	empty, err := profile.HarmonicAxis{Base: 1, Amplitude: 1, Length: 0, Number: 2}.Func()
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty(0))
}

// TestAngularAxis checks the explicit-frequency cosine.
func TestAngularAxis(t *testing.T) {
	t.Parallel()

	f, err := profile.AngularAxis{Base: 0, Amplitude: 2, Start: 1, Duration: 10, Phase: 0, Freq: math.Pi}.Func()
	require.NoError(t, err)

	assert.InDelta(t, 2, f(1), eps)
	assert.InDelta(t, -2, f(2), eps)
	assert.Equal(t, 0.0, f(0.5))
	assert.Equal(t, 0.0, f(11))
}

// TestStepAxis covers the threshold and an infinite default threshold.
func TestStepAxis(t *testing.T) {
	t.Parallel()

	f, err := profile.StepAxis{Threshold: 2, Value: 3}.Func()
	require.NoError(t, err)
	assert.Equal(t, 0.0, f(1))
	assert.Equal(t, 3.0, f(2))
	assert.Equal(t, 3.0, f(100))

	always, err := profile.StepAxis{Threshold: math.Inf(-1), Value: 1}.Func()
	require.NoError(t, err)
	assert.Equal(t, 1.0, always(-1e300))

	_, err = profile.StepAxis{Threshold: 0, Value: math.NaN()}.Func()
	require.ErrorIs(t, err, profile.ErrDomain)
}

// TestCombinators covers Product, Conjunction and Unit.
func TestCombinators(t *testing.T) {
	t.Parallel()

	double := func(u float64) float64 { return 2 * u }
	p := profile.Product(double, profile.Unit)
	assert.Equal(t, 6.0, p(3, 1e9))

	q := profile.Product(double, double)
	assert.Equal(t, 24.0, q(3, 2))

	gx := profile.StepAxis{Threshold: 1}.Gate()
	gy := profile.StepAxis{Threshold: 2}.Gate()
	c := profile.Conjunction(5, gx, gy)
	assert.Equal(t, 5.0, c(1, 2))
	assert.Equal(t, 0.0, c(0.9, 2))
	assert.Equal(t, 0.0, c(1, 1.9))
}
