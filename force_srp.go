package astro

import (
	"math"
	"time"
)

// SRPConfig parameterizes solar radiation pressure: Cr is the
// reflectivity coefficient, AreaM2 the Sun-facing cross section (m^2),
// MassKg the spacecraft mass.
//
// Grounded on spec 4.3's cylindrical-shadow SRP model; the teacher has
// no SRP force, so this is built from the spec's formulas directly,
// reusing ephemeris.go's SunPositionECI for the Sun vector and a simple
// cylindrical (not conical/penumbra) shadow test.
type SRPConfig struct {
	Cr     float64
	AreaM2 float64
	MassKg float64
	Epoch  time.Time // wall-clock reference for Epoch+seconds offsets
}

// SolarRadiationPressure returns the SRP force for cfg. Applicable only
// when cfg's area-to-mass ratio is at least srpMinAreaToMassM2PerKg, per
// spec 4.3's gate (below that ratio, SRP is negligible next to the
// forces already modeled).
func SolarRadiationPressure(cfg SRPConfig) Force {
	return named{
		name: "srp",
		applicable: func(s StateVector, origin CelestialObject) bool {
			return cfg.AreaM2/cfg.MassKg >= srpMinAreaToMassM2PerKg
		},
		fn: func(s StateVector, origin CelestialObject, epoch float64) [3]float64 {
			t := cfg.Epoch.Add(time.Duration(epoch) * time.Second)
			sunPos := SunPositionECI(t)

			scToSun := subVec(sunPos, s.Position[:])
			if inShadow(s.Position[:], sunPos, origin.Radius) {
				return [3]float64{}
			}

			dist := norm(scToSun)
			dir := unit(scToSun)

			pressure := SolarConstant / SpeedOfLight // N/m^2 at 1 AU
			pressure *= (AU / dist) * (AU / dist)

			factor := -(1 + cfg.Cr) * cfg.AreaM2 * pressure / cfg.MassKg / 1000 // m/s^2 -> km/s^2
			return [3]float64{factor * dir[0], factor * dir[1], factor * dir[2]}
		},
	}
}

// inShadow implements a cylindrical shadow model: the spacecraft is in
// shadow if it is on the night side of origin and its perpendicular
// distance from the Sun-origin line is less than origin's radius.
func inShadow(scPos, sunPos []float64, bodyRadius float64) bool {
	sunDir := unit(sunPos)
	alongSun := dot(scPos, sunDir)
	if alongSun > 0 {
		return false // day side
	}
	perp := subVec(scPos, scaleVec(sunDir, alongSun))
	return norm(perp) < bodyRadius && math.Abs(alongSun) > 0
}
