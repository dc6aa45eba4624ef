package astro

import (
	"math"
	"time"
)

// ThirdBody returns a third-body perturbation force from perturbing,
// ported from the teacher's Perturbations.Perturb PerturbingBody branch
// (perturbations.go): the classical indirect + direct term, R between
// origin and the perturbing body taken from HelioOrbitPosition (Sun) or
// MoonPositionECI (Moon, whose position is carried geocentrically).
// Applicable only above thirdBodyMinAltitudeKm, per spec 4.3's gate.
//
// SPEC_FULL.md 9's Open Question on the third-body indirect term's
// normalization is resolved by keeping the teacher's own sign/ordering
// convention verbatim (documented in DESIGN.md as fragile near body
// crossing, same caveat the teacher carries).
func ThirdBody(perturbing CelestialObject, ref time.Time) Force {
	return named{
		name: "third-body-" + perturbing.Name,
		applicable: func(s StateVector, origin CelestialObject) bool {
			return altitudeKm(s, origin) >= thirdBodyMinAltitudeKm
		},
		fn: func(s StateVector, origin CelestialObject, epoch float64) [3]float64 {
			t := ref.Add(timeSeconds(epoch))

			var mainR, pertR []float64
			if perturbing.Name == "Moon" {
				// The Moon's position is only carried geocentrically (see
				// ephemeris.go); treat origin itself as the frame center
				// rather than routing through the heliocentric stand-in.
				mainR = []float64{0, 0, 0}
				pertR = MoonPositionECI(t)
			} else {
				mainR = HelioOrbitPosition(origin, t)
				pertR = HelioOrbitPosition(perturbing, t)
			}

			oppose := 1.0
			if norm(mainR) > norm(pertR) {
				oppose = -1.0
			}

			relPertR := make([]float64, 3)
			scPert := make([]float64, 3)
			scR := s.Position[:]
			for i := 0; i < 3; i++ {
				relPertR[i] = oppose * (pertR[i] - mainR[i])
				scPert[i] = relPertR[i] - scR[i]
			}

			relPertRNorm3 := math.Pow(norm(relPertR), 3)
			scPertNorm3 := math.Pow(norm(scPert), 3)

			var a [3]float64
			for i := 0; i < 3; i++ {
				a[i] = perturbing.Mu * (scPert[i]/scPertNorm3 - relPertR[i]/relPertRNorm3)
			}
			return a
		},
	}
}
