package astro

import "time"

// Propagator advances a StateVector forward in time under some model of
// motion. Grounded on the teacher's Propagator enum (prop.go, used to
// select Cartesian vs GaussianVOP integration) generalized into an
// interface so each propagation family (Keplerian, Numerical, SGP4,
// Analytical) is its own type rather than a switch branch.
type Propagator interface {
	// Propagate returns the state at epoch+dt seconds.
	Propagate(s StateVector, dt float64) (StateVector, error)
	// Acceleration returns the instantaneous acceleration at s, for callers that
	// need the force breakdown rather than just the next state.
	Acceleration(s StateVector) [3]float64
}

// PropagateSeries repeatedly calls p.Propagate, recording every
// intermediate state, stopping early on the first error.
func PropagateSeries(p Propagator, s0 StateVector, step, total float64) ([]StateVector, error) {
	out := []StateVector{s0}
	s := s0
	elapsed := 0.0
	for elapsed < total {
		dt := step
		if dt > total-elapsed {
			dt = total - elapsed
		}
		next, err := p.Propagate(s, dt)
		if err != nil {
			return out, err
		}
		s = next
		elapsed += dt
		out = append(out, s)
	}
	return out, nil
}

// epochTime is a shared helper converting a StateVector's relative Time
// field plus a reference wall-clock into an absolute time.Time, used by
// every propagator that needs to evaluate ephemeris-dependent forces.
func epochTime(ref time.Time, s StateVector) time.Time {
	return ref.Add(timeSeconds(s.Time))
}
