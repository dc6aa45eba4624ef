package astro

import "math"

// J3Perturbation returns the J3 acceleration, ported from the teacher's
// Perturbations.Perturb J3 branch (perturbations.go). Applicable only
// below j3j4MaxAltitudeKm, per spec 4.3's gate.
func J3Perturbation() Force {
	return named{
		name: "j3",
		applicable: func(s StateVector, origin CelestialObject) bool {
			return altitudeKm(s, origin) <= j3j4MaxAltitudeKm
		},
		fn: func(s StateVector, origin CelestialObject, epoch float64) [3]float64 {
			j3 := origin.J(3)
			if j3 == 0 {
				return [3]float64{}
			}
			x, y, z := s.Position[0], s.Position[1], s.Position[2]
			z2 := z * z
			z3 := z2 * z
			z4 := z2 * z2
			r2 := x*x + y*y + z2
			r252 := math.Pow(r2, 2.5)
			r272 := math.Pow(r2, 3.5)
			r292 := math.Pow(r2, 4.5)

			accJ3 := j3 * origin.Radius * origin.Radius * origin.Radius * origin.Mu

			return [3]float64{
				2.5 * accJ3 * (7*x*z3/r292 - 3*x*z/r272),
				2.5 * accJ3 * (7*y*z3/r292 - 3*y*z/r272),
				0.5 * accJ3 * (35*z4/r292 - 30*z2/r272 + 3/r252),
			}
		},
	}
}

// J4Perturbation returns the J4 zonal harmonic acceleration. The
// teacher never implements a standalone J4 Cartesian term (only the
// Gaussian-VOP branch references J4, for the secular node/argp rates),
// so this is built directly from Vallado's J4 Cartesian acceleration
// formula (Fundamentals of Astrodynamics and Applications, eq. 8-22)
// rather than generalized from teacher code. Applicable only below
// j3j4MaxAltitudeKm, per spec 4.3's gate.
func J4Perturbation() Force {
	return named{
		name: "j4",
		applicable: func(s StateVector, origin CelestialObject) bool {
			return altitudeKm(s, origin) <= j3j4MaxAltitudeKm
		},
		fn: func(s StateVector, origin CelestialObject, epoch float64) [3]float64 {
			j4 := origin.J(4)
			if j4 == 0 {
				return [3]float64{}
			}
			x, y, z := s.Position[0], s.Position[1], s.Position[2]
			z2 := z * z
			z4 := z2 * z2
			r2 := x*x + y*y + z2
			r := math.Sqrt(r2)
			r72 := math.Pow(r, 7)

			accJ4 := 1.875 * j4 * math.Pow(origin.Radius, 4) * origin.Mu

			termXY := accJ4 * (1 - 14*z2/r2 + 21*z4/(r2*r2)) / r72
			termZ := accJ4 * (5 - 70*z2/(3*r2) + 21*z4/(r2*r2)) * z / r72

			return [3]float64{termXY * x, termXY * y, termZ}
		},
	}
}
