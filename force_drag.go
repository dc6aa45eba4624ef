package astro

import "math"

// DragConfig parameterizes the exponential atmosphere drag force: Cd is
// the drag coefficient, AreaM2 the spacecraft's ram-facing cross
// section (m^2), MassKg the spacecraft mass.
//
// The teacher has no atmospheric drag model at all (its only
// perturbations are Jn and third-body); this is built directly from
// spec 4.3's exponential-atmosphere formula and constants.go's
// ExponentialAtmosphereRho0/ScaleHeight rather than generalized from
// teacher code.
type DragConfig struct {
	Cd     float64
	AreaM2 float64
	MassKg float64
}

// ExponentialDrag returns a drag Force using cfg, modeling the
// atmosphere's co-rotation with origin (velocity relative to the
// rotating atmosphere, not inertial velocity) when origin is Earth.
// Applicable only below dragMaxAltitudeKm, per spec 4.3's gate.
func ExponentialDrag(cfg DragConfig) Force {
	return named{
		name: "drag",
		applicable: func(s StateVector, origin CelestialObject) bool {
			return altitudeKm(s, origin) <= dragMaxAltitudeKm
		},
		fn: func(s StateVector, origin CelestialObject, epoch float64) [3]float64 {
			altitude := norm(s.Position[:]) - origin.Radius
			if altitude < 0 {
				altitude = 0
			}
			rho := ExponentialAtmosphereRho0 * math.Exp(-altitude/ExponentialAtmosphereScaleHeight)

			vRel := relativeVelocity(s, origin)
			vRelNorm := norm(vRel)
			if vRelNorm == 0 {
				return [3]float64{}
			}

			factor := -0.5 * cfg.Cd * cfg.AreaM2 * rho * vRelNorm / cfg.MassKg / 1000 // m/s^2 -> km/s^2
			return [3]float64{factor * vRel[0], factor * vRel[1], factor * vRel[2]}
		},
	}
}

// relativeVelocity returns the spacecraft's velocity relative to an
// atmosphere co-rotating with origin at OmegaEarth (applied only for
// Earth; other bodies are treated as non-rotating for drag purposes,
// since the module carries no per-body rotation rate).
func relativeVelocity(s StateVector, origin CelestialObject) []float64 {
	if origin.Name != "Earth" {
		return s.Velocity[:]
	}
	omega := []float64{0, 0, OmegaEarth}
	atmosV := cross(omega, s.Position[:])
	return subVec(s.Velocity[:], atmosV)
}
