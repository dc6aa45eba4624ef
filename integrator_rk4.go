package astro

// RK4Integrator implements the classical 4th-order Runge-Kutta method
// with Butcher weights 1/6, 1/3, 1/3, 1/6. Grounded on the teacher's
// src/integrator.RK4.Solve stage structure (k1..k4 accumulation into a
// weighted sum), generalized from the teacher's fixed-size []float64
// buffers keyed by an Integrable interface to the package's StateVector
// algebra.
type RK4Integrator struct{}

// Step implements Integrator.
func (RK4Integrator) Step(s StateVector, f Derivative, dt float64) StateVector {
	const (
		half     = 0.5
		oneSixth = 1.0 / 6.0
		oneThird = 1.0 / 3.0
	)
	t := s.Time
	k1 := f(s, t)
	k2 := f(s.AddScaled(k1, dt*half), t+dt*half)
	k3 := f(s.AddScaled(k2, dt*half), t+dt*half)
	k4 := f(s.AddScaled(k3, dt), t+dt)

	next := s
	for i := 0; i < 3; i++ {
		next.Position[i] = s.Position[i] + dt*oneSixth*(k1.Position[i]+2*k2.Position[i]+2*k3.Position[i]+k4.Position[i])
		next.Velocity[i] = s.Velocity[i] + dt*oneSixth*(k1.Velocity[i]+2*k2.Velocity[i]+2*k3.Velocity[i]+k4.Velocity[i])
	}
	next.Time = t + dt
	return next
}

// Integrate implements Integrator.
func (r RK4Integrator) Integrate(s0 StateVector, f Derivative, dt, T float64) []StateVector {
	return integrate(r.Step, s0, f, dt, T)
}

// AdaptiveStep implements AdaptiveCapable via Richardson extrapolation:
// one full step is compared against two half-steps, the twin-step
// (more accurate) solution is kept, and the local error estimate is
// |full - twin| / 15, the standard RK4 doubling-error normalization.
func (r RK4Integrator) AdaptiveStep(s StateVector, f Derivative, dt float64) (StateVector, float64, float64) {
	full := r.Step(s, f, dt)
	half := r.Step(s, f, dt/2)
	twin := r.Step(half, f, dt/2)
	errEst := Error(full, twin) / 15
	return twin, dt, errEst
}
