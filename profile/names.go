// SPDX-License-Identifier: MIT
// Package: profilekit/profile
//
// names.go — shape names and the trapezoid fall-ramp mode.

package profile

// Name tags the shape of a Profile. The values match the names the
// simulation engine dispatches on.
type Name string

// Spatial shapes.
const (
	NameConstant    Name = "constant"
	NameTrapezoidal Name = "trapezoidal"
	NameGaussian    Name = "gaussian"
	NamePolygonal   Name = "polygonal"
	NameCosine      Name = "cosine"
)

// Temporal shapes.
const (
	NameTimeConstant    Name = "tconstant"
	NameTimeTrapezoidal Name = "ttrapezoidal"
	NameTimeGaussian    Name = "tgaussian"
	NameTimePolygonal   Name = "tpolygonal"
	NameTimeCosine      Name = "tcosine"
)

// Names lists every known shape, spatial first.
func Names() []Name {
	return []Name{
		NameConstant, NameTrapezoidal, NameGaussian, NamePolygonal, NameCosine,
		NameTimeConstant, NameTimeTrapezoidal, NameTimeGaussian, NameTimePolygonal, NameTimeCosine,
	}
}

// Temporal reports whether n is a time shape.
func (n Name) Temporal() bool {
	switch n {
	case NameTimeConstant, NameTimeTrapezoidal, NameTimeGaussian, NameTimePolygonal, NameTimeCosine:
		return true
	}
	return false
}

// Known reports whether n is one of Names().
func (n Name) Known() bool {
	for _, k := range Names() {
		if k == n {
			return true
		}
	}
	return false
}

// FallRamp selects the reference point of a trapezoid's falling ramp.
type FallRamp int

const (
	// FallRampReference evaluates the fall as
	//   scale*(1 - (u - (vacuum+slope1+slope2))/slope2)
	// which is the formula the engine's factories have always used. It only
	// coincides with a straight ramp down from the plateau when
	// plateau == slope2.
	FallRampReference FallRamp = iota
	// FallRampMirrored evaluates the fall relative to the plateau end:
	//   scale*(1 - (u - (vacuum+slope1+plateau))/slope2)
	FallRampMirrored
)

// String implements fmt.Stringer.
func (r FallRamp) String() string {
	if r == FallRampMirrored {
		return "mirrored"
	}
	return "reference"
}
