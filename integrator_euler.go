package astro

// EulerIntegrator implements the explicit Euler method: y_{n+1} = y_n +
// dt*f(y_n, t_n). Local error is O(dt^2); included as the simplest member
// of the integrator family spec'd alongside RK4/RKF45/Verlet.
type EulerIntegrator struct{}

// Step implements Integrator.
func (EulerIntegrator) Step(s StateVector, f Derivative, dt float64) StateVector {
	k := f(s, s.Time)
	next := s.AddScaled(k, dt)
	next.Time = s.Time + dt
	return next
}

// Integrate implements Integrator.
func (e EulerIntegrator) Integrate(s0 StateVector, f Derivative, dt, T float64) []StateVector {
	return integrate(e.Step, s0, f, dt, T)
}
