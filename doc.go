// Package astro implements the numerical core of an astrodynamics stack:
// state algebra, pluggable ODE integrators, a composable force model,
// orbital propagators (Keplerian, numerical, SGP4-style, analytical),
// the Kepler/Lambert solvers, maneuver-design primitives, coordinate
// frame conversions, event detection, and a validation harness.
//
// The package carries no process-wide mutable state beyond a lazily
// loaded configuration singleton (see Config); physical constants are
// plain values or fields on CelestialObject.
package astro
