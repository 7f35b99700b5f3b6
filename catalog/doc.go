// Package catalog reads and writes declarative profile documents and
// rebuilds profiles from their metadata records.
//
// A document is YAML:
//
//	context:
//	  dimensionality: 1
//	  domain_length: [10]
//	  duration: 20
//	profiles:
//	  - id: inlet
//	    name: trapezoidal
//	    params: {value: 2, xvacuum: 1, xslope1: 2, xplateau: 4, xslope2: 2}
//	  - id: ramp
//	    name: tpolygonal
//	    series: {points: [0, 5, 10], values: [0, 1, 1]}
//
// Each entry is exactly the Metadata record a factory attaches to its
// profile, so Build(sc, p.Metadata()) reproduces p. Derived keys (sigma,
// slopes) are accepted and recomputed. Unknown shapes and unknown keys are
// errors; missing keys fall back to the factory defaults.
package catalog
