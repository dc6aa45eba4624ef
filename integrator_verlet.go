package astro

// VerletIntegrator implements velocity-Verlet: the position update uses
// the current acceleration, the velocity update uses the average of the
// old and new acceleration. Preferred for long-horizon conservative
// integration because its energy drift is bounded rather than secular.
//
// Unlike the other integrators in this family, VerletIntegrator carries
// mutable per-instance state (the cached prior acceleration) exactly as
// spec'd: it is "hot" between calls, must be Reset between independent
// runs, and must not be shared across goroutines. Grounded on the
// teacher's src/integrator package's willingness to carry per-run state
// on the integrator struct (RK4.X0/StepSize), generalized to a cache
// that must be explicitly invalidated rather than one set once at
// construction.
type VerletIntegrator struct {
	priorAccel [3]float64
	havePrior  bool
}

// Reset clears the cached prior acceleration, required before reusing a
// VerletIntegrator for a new, independent propagation.
func (v *VerletIntegrator) Reset() {
	v.havePrior = false
}

// Step implements Integrator.
func (v *VerletIntegrator) Step(s StateVector, f Derivative, dt float64) StateVector {
	var aOld [3]float64
	if v.havePrior {
		aOld = v.priorAccel
	} else {
		// No prior acceleration cached: fall back to a position-only
		// half-step form by evaluating the derivative at the current
		// state directly.
		aOld = f(s, s.Time).Velocity
	}

	var posNew, velHalf [3]float64
	for i := 0; i < 3; i++ {
		posNew[i] = s.Position[i] + s.Velocity[i]*dt + 0.5*aOld[i]*dt*dt
		velHalf[i] = s.Velocity[i] + 0.5*aOld[i]*dt
	}

	mid := StateVector{Position: posNew, Velocity: velHalf, Time: s.Time + dt}
	aNew := f(mid, mid.Time).Velocity

	var velNew [3]float64
	for i := 0; i < 3; i++ {
		velNew[i] = velHalf[i] + 0.5*aNew[i]*dt
	}

	v.priorAccel = aNew
	v.havePrior = true

	return StateVector{Position: posNew, Velocity: velNew, Time: s.Time + dt}
}

// Integrate implements Integrator.
func (v *VerletIntegrator) Integrate(s0 StateVector, f Derivative, dt, T float64) []StateVector {
	return integrate(v.Step, s0, f, dt, T)
}
