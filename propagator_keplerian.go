package astro

import "math"

// KeplerianPropagator advances a two-body orbit analytically via mean
// motion and Kepler's equation, with no perturbations whatsoever.
// Grounded on the teacher's Orbit type's implicit two-body assumption
// when Perturbations.isEmpty(), generalized into its own propagator
// rather than a zero-valued perturbation struct.
type KeplerianPropagator struct {
	Origin CelestialObject
}

// Propagate advances s by dt seconds along its unperturbed Keplerian
// orbit: convert to elements, advance mean anomaly, convert back.
func (k KeplerianPropagator) Propagate(s StateVector, dt float64) (StateVector, error) {
	oe := StateToElements(s, k.Origin)

	if oe.E < 1 {
		m0 := TrueToMeanAnomalyElliptic(oe.Nu, oe.E)
		n := oe.MeanMotion()
		m1 := MeanAnomalyAtEpoch(m0, n, dt)
		nu1, err := MeanToTrueAnomaly(m1, oe.E)
		if err != nil {
			return s, err
		}
		oe.Nu = nu1
	} else {
		h0 := TrueToHyperbolicAnomaly(oe.Nu, oe.E)
		m0 := oe.E*math.Sinh(h0) - h0
		n := oe.MeanMotion()
		m1 := m0 + n*dt
		nu1, err := MeanToTrueAnomaly(m1, oe.E)
		if err != nil {
			return s, err
		}
		oe.Nu = nu1
	}

	oe.Epoch = s.Time + dt
	next := ElementsToState(oe)
	next.Time = s.Time + dt
	return next, nil
}

// Acceleration returns the central-body gravitational acceleration only;
// a Keplerian propagator by definition has no perturbing forces.
func (k KeplerianPropagator) Acceleration(s StateVector) [3]float64 {
	return CentralGravity().Acceleration(s, k.Origin, s.Time)
}

// TrueToMeanAnomalyElliptic converts true anomaly directly to mean
// anomaly for the elliptic case, composing TrueToEccentricAnomaly with
// EccentricToMeanAnomaly.
func TrueToMeanAnomalyElliptic(nu, e float64) float64 {
	eAnom := TrueToEccentricAnomaly(nu, e)
	return EccentricToMeanAnomaly(eAnom, e)
}
