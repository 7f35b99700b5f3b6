// SPDX-License-Identifier: MIT
// Package: profilekit/profile
//
// compose.go — 2-D combinators over per-axis evaluators.
//
// Every 2-D spatial shape is one of:
//   • Product(fx, fy):          f(x,y) = fx(x) * fy(y)
//   • Conjunction(v, gx, gy):   f(x,y) = v if gx(x) && gy(y) else 0
// Unit is the neutral y factor for shapes that ignore the second axis.

package profile

// Product composes two axis evaluators multiplicatively.
// Complexity: cost(fx) + cost(fy) per evaluation.
func Product(fx, fy Func1D) Func2D {
	return func(x, y float64) float64 {
		return fx(x) * fy(y)
	}
}

// Conjunction yields value where both gates hold, 0 elsewhere.
func Conjunction(value float64, gx, gy Predicate) Func2D {
	return func(x, y float64) float64 {
		if gx(x) && gy(y) {
			return value
		}
		return 0
	}
}

// Unit is the constant 1 axis.
func Unit(float64) float64 {
	return 1
}
