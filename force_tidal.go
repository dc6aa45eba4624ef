package astro

import (
	"math"
	"time"
)

// TidalConfig parameterizes a simple degree-2 tidal bulge acceleration
// raised on origin by perturbing, with k2 the Love number and q the
// tidal lag angle's quality factor stand-in.
//
// The teacher carries no tidal perturbation; this is built directly
// from the spec's tidal force requirement using the same third-body
// ephemeris plumbing as force_thirdbody.go, scaled by a Love-number
// correction rather than ported from any teacher formula.
type TidalConfig struct {
	Perturbing CelestialObject
	K2         float64 // Love number, dimensionless
}

// Tidal returns a tidal perturbation force for cfg, modeled as the
// third-body term scaled by k2*(R_origin/r)^5, the standard degree-2
// static tide correction magnitude.
func Tidal(cfg TidalConfig, ref time.Time) Force {
	base := ThirdBody(cfg.Perturbing, ref)
	return named{name: "tidal-" + cfg.Perturbing.Name, fn: func(s StateVector, origin CelestialObject, epoch float64) [3]float64 {
		baseAccel := base.Acceleration(s, origin, epoch)
		r := norm(s.Position[:])
		scale := cfg.K2 * math.Pow(origin.Radius/r, 5)
		return [3]float64{baseAccel[0] * scale, baseAccel[1] * scale, baseAccel[2] * scale}
	}}
}
