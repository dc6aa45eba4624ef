package astro

// NumericalPropagator drives any Integrator against a ForceModel's
// derivative, the module's general-purpose perturbed propagator.
// Grounded on the teacher's Mission.Propagate loop (mission.go), which
// pairs an Integrable implementation with an integrator.RK4 driver;
// generalized here to accept any Integrator (fixed-step or adaptive)
// and any ForceModel rather than a single hardcoded RK4+Perturbations
// pair.
type NumericalPropagator struct {
	Forces     *ForceModel
	Integrator Integrator
	Step       float64 // seconds, initial/fixed step depending on Integrator
}

// Propagate advances s by dt seconds using p.Integrator against
// p.Forces' derivative.
func (p NumericalPropagator) Propagate(s StateVector, dt float64) (StateVector, error) {
	states := p.Integrator.Integrate(s, p.Forces.Derivative(), p.Step, dt)
	return states[len(states)-1], nil
}

// Acceleration returns the total force-model acceleration at s.
func (p NumericalPropagator) Acceleration(s StateVector) [3]float64 {
	return p.Forces.TotalAcceleration(s, s.Time)
}
