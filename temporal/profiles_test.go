package temporal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
	"github.com/katalvlaran/profilekit/temporal"
)

const eps = 1e-12

func withDuration(t float64) simctx.Context {
	return simctx.New(simctx.WithDuration(t))
}

func fn(t *testing.T, p *profile.Profile, err error) profile.Func1D {
	t.Helper()
	require.NoError(t, err)
	f, ok := p.Func1D()
	require.True(t, ok)
	return f
}

// TestTrapezoidalScenario: duration 10, start 0, slope1 2, plateau 6,
// slope2 2. The listed f(8)=1 and f(9)=0.5 hold for the mirrored fall;
// the reference fall is asserted alongside.
func TestTrapezoidalScenario(t *testing.T) {
	t.Parallel()

	sc := withDuration(10)
	opts := []temporal.Option{
		temporal.WithStart(0), temporal.WithSlope1(2), temporal.WithPlateau(6), temporal.WithSlope2(2),
	}

	p, err := temporal.Trapezoidal(sc, opts...)
	ref := fn(t, p, err)
	assert.Equal(t, 0.0, ref(0))
	assert.InDelta(t, 0.5, ref(1), eps)
	assert.Equal(t, 1.0, ref(2))
	assert.Equal(t, 1.0, ref(7.999))
	assert.InDelta(t, -1.0, ref(8), eps) // 1 - (8-4)/2
	assert.InDelta(t, -1.5, ref(9), eps) // 1 - (9-4)/2
	assert.Equal(t, 0.0, ref(10))

	p, err = temporal.Trapezoidal(sc, append(opts, temporal.WithFallRamp(profile.FallRampMirrored))...)
	mir := fn(t, p, err)
	assert.Equal(t, 0.0, mir(0))
	assert.InDelta(t, 0.5, mir(1), eps)
	assert.InDelta(t, 1.0, mir(8), eps)
	assert.InDelta(t, 0.5, mir(9), eps)
	assert.Equal(t, 0.0, mir(10))
}

// TestTrapezoidalDefaultPlateau: plateau = duration − start.
func TestTrapezoidalDefaultPlateau(t *testing.T) {
	t.Parallel()

	p, err := temporal.Trapezoidal(withDuration(10), temporal.WithStart(4))
	f := fn(t, p, err)
	assert.Equal(t, 0.0, f(3.99))
	assert.Equal(t, 1.0, f(4))
	assert.Equal(t, 1.0, f(9.99))
	assert.Equal(t, 0.0, f(10))

	plateau, _ := p.Metadata().Param("plateau")
	assert.Equal(t, 6.0, plateau)
	assert.Equal(t, profile.NameTimeTrapezoidal, p.Name())
}

// TestMissingDuration: every shape but Constant needs the duration.
func TestMissingDuration(t *testing.T) {
	t.Parallel()

	var empty simctx.Context
	_, err := temporal.Trapezoidal(empty)
	require.ErrorIs(t, err, profile.ErrPrecursorNotSet)
	_, err = temporal.Gaussian(empty)
	require.ErrorIs(t, err, profile.ErrPrecursorNotSet)
	_, err = temporal.Polygonal(empty)
	require.ErrorIs(t, err, profile.ErrPrecursorNotSet)
	_, err = temporal.Cosine(empty)
	require.ErrorIs(t, err, profile.ErrPrecursorNotSet)

	p, err := temporal.Constant(empty, temporal.WithStart(1))
	f := fn(t, p, err)
	assert.Equal(t, 0.0, f(0.5))
	assert.Equal(t, 1.0, f(1))
}

// TestGaussianPeak: f(center) == 1 for even orders.
func TestGaussianPeak(t *testing.T) {
	t.Parallel()

	for _, order := range []int{2, 4, 6} {
		p, err := temporal.Gaussian(withDuration(30), temporal.WithStart(6), temporal.WithOrder(order))
		f := fn(t, p, err)
		center, _ := p.Metadata().Param("center")
		assert.Equal(t, 18.0, center)
		assert.Equal(t, 1.0, f(center), "order=%d", order)
		assert.Equal(t, 0.0, f(5.9))
		assert.Equal(t, 0.0, f(30))
	}

	_, err := temporal.Gaussian(withDuration(30), temporal.WithFWHM(0))
	require.ErrorIs(t, err, profile.ErrDomain)
}

// TestPolygonal covers defaults, interpolation and mismatch (which the
// temporal table checks too).
func TestPolygonal(t *testing.T) {
	t.Parallel()

	p, err := temporal.Polygonal(withDuration(5))
	f := fn(t, p, err)
	assert.Equal(t, 1.0, f(0))
	assert.Equal(t, 1.0, f(4.9))
	assert.Equal(t, 0.0, f(5))

	p, err = temporal.Polygonal(withDuration(5), temporal.WithBreakpoints([]float64{1, 3}, []float64{0, 4}))
	g := fn(t, p, err)
	assert.Equal(t, 0.0, g(0.5))
	assert.InDelta(t, 2.0, g(2), eps)
	assert.Equal(t, 0.0, g(3))

	_, err = temporal.Polygonal(withDuration(5), temporal.WithBreakpoints([]float64{1, 3}, []float64{0}))
	require.ErrorIs(t, err, profile.ErrParameterMismatch)
}

// TestCosine: explicit angular frequency, no 2π/length normalization.
func TestCosine(t *testing.T) {
	t.Parallel()

	p, err := temporal.Cosine(withDuration(20),
		temporal.WithBase(1), temporal.WithAmplitude(2), temporal.WithStart(2),
		temporal.WithPhase(0.5), temporal.WithFrequency(3),
	)
	f := fn(t, p, err)
	assert.InDelta(t, 1+2*math.Cos(0.5), f(2), eps)
	assert.InDelta(t, 1+2*math.Cos(0.5+3*1.5), f(3.5), eps)
	assert.Equal(t, 0.0, f(1.9))
	assert.Equal(t, 0.0, f(20))

	duration, _ := p.Metadata().Param("duration")
	assert.Equal(t, 18.0, duration)

	// Defaults: base 0, amplitude 1, freq 1.
	p, err = temporal.Cosine(withDuration(10))
	d := fn(t, p, err)
	assert.InDelta(t, math.Cos(1), d(1), eps)
}

// TestMetadataNames: each temporal shape carries its own name.
func TestMetadataNames(t *testing.T) {
	t.Parallel()

	sc := withDuration(1)
	cases := map[profile.Name]func() (*profile.Profile, error){
		profile.NameTimeConstant:    func() (*profile.Profile, error) { return temporal.Constant(sc) },
		profile.NameTimeTrapezoidal: func() (*profile.Profile, error) { return temporal.Trapezoidal(sc) },
		profile.NameTimeGaussian:    func() (*profile.Profile, error) { return temporal.Gaussian(sc) },
		profile.NameTimePolygonal:   func() (*profile.Profile, error) { return temporal.Polygonal(sc) },
		profile.NameTimeCosine:      func() (*profile.Profile, error) { return temporal.Cosine(sc) },
	}
	for want, build := range cases {
		p, err := build()
		require.NoError(t, err)
		assert.Equal(t, want, p.Name())
		assert.Equal(t, 1, p.Arity())
	}
}

// TestOptionPanics covers the programmer-error contract.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { temporal.WithOrder(-2) })
	assert.Panics(t, func() { temporal.WithFallRamp(profile.FallRamp(-1)) })
}
