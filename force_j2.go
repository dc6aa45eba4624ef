package astro

import "math"

// J2Perturbation returns the J2 oblateness acceleration, ported directly
// from the teacher's Perturbations.Perturb Cartesian J2 branch
// (perturbations.go): accJ2 * (5*x*z^2/r2^3.5 - x/r2^2.5) per axis,
// with r2 = |r|^2.
// Applicable only below j2MaxAltitudeKm, per spec 4.3's gate.
func J2Perturbation() Force {
	return named{
		name: "j2",
		applicable: func(s StateVector, origin CelestialObject) bool {
			return altitudeKm(s, origin) <= j2MaxAltitudeKm
		},
		fn: func(s StateVector, origin CelestialObject, epoch float64) [3]float64 {
			j2 := origin.J(2)
			if j2 == 0 {
				return [3]float64{}
			}
			x, y, z := s.Position[0], s.Position[1], s.Position[2]
			z2 := z * z
			z3 := z2 * z
			r2 := x*x + y*y + z2
			r252 := math.Pow(r2, 2.5)
			r272 := math.Pow(r2, 3.5)

			accJ2 := 1.5 * j2 * origin.Radius * origin.Radius * origin.Mu

			return [3]float64{
				accJ2 * (5*x*z2/r272 - x/r252),
				accJ2 * (5*y*z2/r272 - y/r252),
				accJ2 * (5*z3/r272 - 3*z/r252),
			}
		},
	}
}
