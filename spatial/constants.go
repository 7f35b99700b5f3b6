// SPDX-License-Identifier: MIT
// Package: profilekit/spatial
//
// constants.go — factory name tokens and shared metadata keys.

package spatial

// Factory name tokens, used to prefix errors.
const (
	MethodConstant    = "spatial.Constant"
	MethodTrapezoidal = "spatial.Trapezoidal"
	MethodGaussian    = "spatial.Gaussian"
	MethodPolygonal   = "spatial.Polygonal"
	MethodCosine      = "spatial.Cosine"
)

// Metadata keys shared by several shapes.
const (
	KeyValue    = "value"
	KeyBase     = "base"
	KeyFallRamp = "fallramp"
)
