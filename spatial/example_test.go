// Package spatial_test provides runnable examples of the spatial factories.
package spatial_test

import (
	"fmt"

	"github.com/katalvlaran/profilekit/profile"
	"github.com/katalvlaran/profilekit/simctx"
	"github.com/katalvlaran/profilekit/spatial"
)

// ExampleTrapezoidal builds a one-axis trapezoid of height 2 starting at x=1.
func ExampleTrapezoidal() {
	// 1) One axis of length 10.
	sc := simctx.New(simctx.WithDimensionality(simctx.OneAxis), simctx.WithDomainLength(10))

	// 2) 2 units of ramp, 4 of plateau, 2 of ramp, falling from the plateau end.
	p, err := spatial.Trapezoidal(sc, 2,
		spatial.WithVacuum(spatial.X, 1),
		spatial.WithSlope1(spatial.X, 2),
		spatial.WithPlateau(spatial.X, 4),
		spatial.WithSlope2(spatial.X, 2),
		spatial.WithFallRamp(profile.FallRampMirrored),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Evaluate across every region.
	f, _ := p.Func1D()
	for _, x := range []float64{0, 2, 4, 8, 9} {
		fmt.Printf("f(%g)=%g\n", x, f(x))
	}
	// Output:
	// f(0)=0
	// f(2)=1
	// f(4)=2
	// f(8)=1
	// f(9)=0
}

// ExamplePolygonal interpolates a breakpoint table; the last point closes
// the profile.
func ExamplePolygonal() {
	sc := simctx.New(simctx.WithDimensionality(simctx.OneAxis), simctx.WithDomainLength(10))
	p, err := spatial.Polygonal(sc, spatial.WithBreakpoints([]float64{0, 2, 6}, []float64{0, 4, 2}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	f, _ := p.Func1D()
	fmt.Println(f(1), f(4), f(6))

	slopes, _ := p.Metadata().SeriesOf("xslopes")
	fmt.Println(slopes)
	// Output:
	// 2 3 0
	// [2 -0.5]
}

// ExampleGaussian shows the two-axis product and the defaults it resolves.
func ExampleGaussian() {
	sc := simctx.New(simctx.WithDimensionality(simctx.TwoAxis), simctx.WithDomainLength(12, 6))
	p, err := spatial.Gaussian(sc, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m := p.Metadata()
	cx, _ := m.Param("xcenter")
	cy, _ := m.Param("ycenter")
	fw, _ := m.Param("xfwhm")

	f, _ := p.Func2D()
	fmt.Printf("center=(%g,%g) xfwhm=%g peak=%g\n", cx, cy, fw, f(cx, cy))
	// Output: center=(6,3) xfwhm=4 peak=5
}
