package astro

import "math"

// CentralGravity returns the point-mass gravity force of origin,
// grounded on the inverse-square term implicit in the teacher's
// Cartesian EOM (prop.go's two-body derivative before any
// Perturbations.Perturb is added).
func CentralGravity() Force {
	return named{name: "central-gravity", fn: func(s StateVector, origin CelestialObject, epoch float64) [3]float64 {
		r := s.Position
		rNorm := math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
		factor := -origin.Mu / (rNorm * rNorm * rNorm)
		return [3]float64{factor * r[0], factor * r[1], factor * r[2]}
	}}
}
