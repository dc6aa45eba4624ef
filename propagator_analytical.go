package astro

import "math"

// AnalyticalMode selects the secular-rate model AnalyticalPropagator
// applies on top of the unperturbed two-body solution.
type AnalyticalMode int

const (
	AnalyticalNone AnalyticalMode = iota
	AnalyticalJ2
	AnalyticalAtmospheric
)

// AnalyticalPropagator advances an orbit by Keplerian motion plus a
// closed-form secular correction selected by Mode, avoiding numerical
// integration entirely. Grounded on the teacher's Gaussian-VOP secular
// rate formulas (perturbations.go's GaussianVOP branch, d-Omega/dt and
// d-omega/dt), generalized into a propagator with an explicit mode
// switch rather than a single hardcoded J2-only rate pair.
type AnalyticalPropagator struct {
	Origin    CelestialObject
	Mode      AnalyticalMode
	DragDecay float64 // fractional semi-major-axis decay per second, AnalyticalAtmospheric only
}

func (p AnalyticalPropagator) Propagate(s StateVector, dt float64) (StateVector, error) {
	oe := StateToElements(s, p.Origin)
	n := oe.MeanMotion()
	m0 := TrueToMeanAnomalyElliptic(oe.Nu, oe.E)

	switch p.Mode {
	case AnalyticalJ2:
		ra := p.Origin.Radius / oe.A
		j2 := p.Origin.J2
		acc := math.Sqrt(p.Origin.Mu/math.Pow(p.Origin.Radius, 3)) * math.Pow(ra, 3.5)
		oe.RAAN = normalizeAngle(oe.RAAN - acc*1.5*j2*dt*math.Cos(oe.I))
		oe.ArgP = normalizeAngle(oe.ArgP + acc*1.5*j2*dt*(2-2.5*math.Sin(oe.I)*math.Sin(oe.I)))
	case AnalyticalAtmospheric:
		altitude := oe.A - p.Origin.Radius
		if altitude < 2000 {
			oe.A = oe.A * (1 - p.DragDecay*dt)
			if oe.A < p.Origin.Radius+100 {
				oe.A = p.Origin.Radius + 100
			}
		}
		n = oe.MeanMotion()
	case AnalyticalNone:
		// no secular correction
	}

	m1 := MeanAnomalyAtEpoch(m0, n, dt)
	nu1, err := MeanToTrueAnomaly(m1, oe.E)
	if err != nil {
		return s, err
	}
	oe.Nu = nu1
	oe.Epoch = s.Time + dt

	next := ElementsToState(oe)
	next.Time = s.Time + dt
	return next, nil
}

func (p AnalyticalPropagator) Acceleration(s StateVector) [3]float64 {
	central := CentralGravity().Acceleration(s, p.Origin, s.Time)
	if p.Mode == AnalyticalJ2 {
		j2 := J2Perturbation().Acceleration(s, p.Origin, s.Time)
		return [3]float64{central[0] + j2[0], central[1] + j2[1], central[2] + j2[2]}
	}
	return central
}
