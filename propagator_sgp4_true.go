package astro

import (
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
)

// SatelliteSGP4Propagator wraps joshuaferrara/go-satellite's full SGP4/
// SDP4 implementation (deep-space resonance branches included), the
// "link a true SGP4" half of spec 9's design note. Positions come back
// in the TEME frame go-satellite itself works in; Propagate here
// returns them unconverted, leaving any ECI/ECEF distinction to
// coord.go's frame conversions.
//
// Grounded directly on the Cizor-spacetime-constellation-sim repo's
// OrbitalSGP4MotionModel (core/motion.go): TLEToSat/Propagate/JDay/
// ThetaG_JD/ECIToECEF is lifted verbatim as this module's only true-SGP4
// call sequence.
type SatelliteSGP4Propagator struct {
	sat   satellite.Satellite
	epoch time.Time
}

// NewSatelliteSGP4Propagator builds a propagator from raw TLE lines
// using the WGS72 gravity model, go-satellite's default.
func NewSatelliteSGP4Propagator(line1, line2 string, epoch time.Time) SatelliteSGP4Propagator {
	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)
	return SatelliteSGP4Propagator{sat: sat, epoch: epoch}
}

// Propagate returns the TEME state at p.epoch + s.Time + dt seconds.
func (p SatelliteSGP4Propagator) Propagate(s StateVector, dt float64) (StateVector, error) {
	t := p.epoch.Add(timeSeconds(s.Time + dt))
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	posECI, velECI := satellite.Propagate(p.sat, year, int(month), day, hour, min, sec)

	return StateVector{
		Position: [3]float64{posECI.X, posECI.Y, posECI.Z},
		Velocity: [3]float64{velECI.X, velECI.Y, velECI.Z},
		Time:     s.Time + dt,
	}, nil
}

// ECEF returns the ECEF position (km) at p.epoch + s.Time seconds,
// exercising go-satellite's own GMST and frame-rotation helpers exactly
// as the Cizor reference does.
func (p SatelliteSGP4Propagator) ECEF(s StateVector) [3]float64 {
	t := p.epoch.Add(timeSeconds(s.Time))
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	posECI, _ := satellite.Propagate(p.sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	posECEF := satellite.ECIToECEF(posECI, gmst)

	return [3]float64{posECEF.X, posECEF.Y, posECEF.Z}
}

// Acceleration is not meaningful for a black-box SGP4 propagator (it has
// no explicit force decomposition); returns the zero vector.
func (p SatelliteSGP4Propagator) Acceleration(s StateVector) [3]float64 {
	return [3]float64{}
}
