package astro

// Integrator advances a StateVector under a Derivative by a fixed step,
// and drives a full integration over a time window. Grounded on the
// teacher's src/integrator.Integrable interface (GetState/SetState/Stop/
// Func) generalized from that mutation-based protocol to pure functions,
// since spec requires Step to have no hidden mutation beyond Verlet's
// cached acceleration.
type Integrator interface {
	// Step advances state by dt and returns the new state.
	Step(s StateVector, f Derivative, dt float64) StateVector
	// Integrate emits ceil(T/dt)+1 states including s0, with the final
	// step clamped so the total elapsed time equals T exactly.
	Integrate(s0 StateVector, f Derivative, dt, T float64) []StateVector
}

// AdaptiveCapable is implemented by integrators with a native embedded
// error estimate (RK4 via Richardson extrapolation, RKF45 via its
// embedded 4th-order companion). AdaptiveStepper (integrator_adaptive.go)
// wraps any Integrator, but prefers this interface when available since
// it is cheaper than the generic half-step comparison.
type AdaptiveCapable interface {
	Integrator
	// AdaptiveStep returns the accepted state, the next suggested step
	// size, and the estimated local error.
	AdaptiveStep(s StateVector, f Derivative, dt float64) (next StateVector, nextDt, errEst float64)
}

// integrate is the shared driver used by every fixed-step Integrator:
// it calls step repeatedly, clamping the final step so the total elapsed
// time is exactly T.
func integrate(step func(StateVector, Derivative, float64) StateVector, s0 StateVector, f Derivative, dt, T float64) []StateVector {
	if dt <= 0 {
		panic("astro: integrator step size must be positive")
	}
	n := int(T / dt)
	out := make([]StateVector, 0, n+2)
	out = append(out, s0)
	s := s0
	elapsed := 0.0
	for i := 0; i < n; i++ {
		s = step(s, f, dt)
		elapsed += dt
		out = append(out, s)
	}
	if remainder := T - elapsed; remainder > 1e-12 {
		s = step(s, f, remainder)
		out = append(out, s)
	}
	return out
}
