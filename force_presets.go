package astro

import "time"

// LEOForceModel returns a force model suited to low-Earth orbit
// scenarios: central gravity, J2-J4, and exponential drag. Grounded on
// the teacher's habit of giving common scenarios (station-keeping,
// deorbit) preset Perturbations literals in its test files, generalized
// into reusable factory functions.
func LEOForceModel(drag DragConfig) *ForceModel {
	fm := NewForceModel(Earth)
	fm.Add(CentralGravity())
	fm.Add(J2Perturbation())
	fm.Add(J3Perturbation())
	fm.Add(J4Perturbation())
	fm.Add(ExponentialDrag(drag))
	return fm
}

// GEOForceModel returns a force model suited to geostationary orbit
// scenarios: central gravity, J2 only (drag is negligible at GEO
// altitude), lunar and solar third-body, and SRP.
func GEOForceModel(srp SRPConfig, ref time.Time) *ForceModel {
	fm := NewForceModel(Earth)
	fm.Add(CentralGravity())
	fm.Add(J2Perturbation())
	fm.Add(ThirdBody(Moon, ref))
	fm.Add(ThirdBody(Sun, ref))
	fm.Add(SolarRadiationPressure(srp))
	return fm
}

// InterplanetaryForceModel returns a force model suited to heliocentric
// transfer scenarios: central solar gravity and SRP only (no zonal
// harmonics or drag around the Sun).
func InterplanetaryForceModel(srp SRPConfig) *ForceModel {
	fm := NewForceModel(Sun)
	fm.Add(CentralGravity())
	fm.Add(SolarRadiationPressure(srp))
	return fm
}
