package astro

import (
	"math"

	"github.com/go-kit/kit/log"
)

// AdaptiveStepper wraps any Integrator (preferring its AdaptiveCapable
// error estimate when available, otherwise falling back to a generic
// half-step doubling comparison) with step-size control.
//
// Step acceptance: err <= Tol. On acceptance, the next step is scaled by
// Safety*(Tol/err)^0.2 (increasing) or ^0.25 (decreasing), clamped to a
// relative change of [0.1x, 5x] and an absolute range of [MinStep,
// MaxStep]. On repeated rejection the step is halved up to MaxIterations
// times (default 10), after which MinStep is accepted and a
// ResourceExhaustion warning is emitted on Logger rather than the
// propagation unwinding.
//
// Grounded on spec 4.2's adaptive-step formulas; the teacher has no
// adaptive stepping at all (its only integrator is a fixed-step RK4
// driving Mission.Propagate), so this wrapper is built directly from the
// spec's named constants rather than generalized from teacher code.
type AdaptiveStepper struct {
	Inner         Integrator
	Tol           float64
	MinStep       float64
	MaxStep       float64
	Safety        float64 // 0.9 generic, 0.84 for RKF45
	MaxIterations int
	Logger        log.Logger
}

// NewAdaptiveStepper returns an AdaptiveStepper with the safety factor
// appropriate to inner (0.84 for RKF45Integrator, 0.9 otherwise) and a
// default iteration cap of 10.
func NewAdaptiveStepper(inner Integrator, tol, minStep, maxStep float64) *AdaptiveStepper {
	safety := 0.9
	if _, ok := inner.(RKF45Integrator); ok {
		safety = 0.84
	}
	return &AdaptiveStepper{
		Inner:         inner,
		Tol:           tol,
		MinStep:       minStep,
		MaxStep:       maxStep,
		Safety:        safety,
		MaxIterations: 10,
		Logger:        log.NewNopLogger(),
	}
}

func (a *AdaptiveStepper) innerStep(s StateVector, f Derivative, dt float64) (StateVector, float64) {
	if capable, ok := a.Inner.(AdaptiveCapable); ok {
		next, _, err := capable.AdaptiveStep(s, f, dt)
		return next, err
	}
	full := a.Inner.Step(s, f, dt)
	half := a.Inner.Step(s, f, dt/2)
	twin := a.Inner.Step(half, f, dt/2)
	return twin, Error(full, twin) / 15
}

func (a *AdaptiveStepper) clampStep(dt, proposed float64) float64 {
	if proposed > dt*5 {
		proposed = dt * 5
	}
	if proposed < dt*0.1 {
		proposed = dt * 0.1
	}
	if proposed > a.MaxStep {
		proposed = a.MaxStep
	}
	if proposed < a.MinStep {
		proposed = a.MinStep
	}
	return proposed
}

// AdaptiveStep implements AdaptiveCapable, running the accept/reject
// loop for a single step and returning the accepted state, the suggested
// size of the next step, and the accepted step's error estimate.
func (a *AdaptiveStepper) AdaptiveStep(s StateVector, f Derivative, dt float64) (StateVector, float64, float64) {
	step := dt
	for iter := 0; iter < a.MaxIterations; iter++ {
		next, err := a.innerStep(s, f, step)
		if err <= a.Tol || step <= a.MinStep {
			if err > a.Tol {
				a.Logger.Log("level", "warning", "component", "adaptive-step", "message", "resource exhaustion: accepting minStep above tolerance", "err", err, "tol", a.Tol)
			}
			var factor float64
			if err <= 0 {
				factor = 5
			} else if err <= a.Tol {
				factor = a.Safety * math.Pow(a.Tol/err, 0.2)
			} else {
				factor = a.Safety * math.Pow(a.Tol/err, 0.25)
			}
			nextDt := a.clampStep(step, step*factor)
			return next, nextDt, err
		}
		step = math.Max(step/2, a.MinStep)
	}
	// Exhausted MaxIterations without reaching MinStep's acceptance
	// branch (should not normally happen given the step<=MinStep check
	// above, but guards against pathological tolerances).
	next, err := a.innerStep(s, f, a.MinStep)
	a.Logger.Log("level", "warning", "component", "adaptive-step", "message", "resource exhaustion: max iterations reached", "err", err, "tol", a.Tol)
	return next, a.MinStep, err
}

// Step implements Integrator by running a single adaptive step and
// discarding the suggested next step size.
func (a *AdaptiveStepper) Step(s StateVector, f Derivative, dt float64) StateVector {
	next, _, _ := a.AdaptiveStep(s, f, dt)
	return next
}

// Integrate implements Integrator, driving the adaptive step-size
// controller from s0 to elapsed time T, starting from an initial guess
// step of dt.
func (a *AdaptiveStepper) Integrate(s0 StateVector, f Derivative, dt, T float64) []StateVector {
	out := []StateVector{s0}
	s := s0
	step := dt
	elapsed := 0.0
	for elapsed < T {
		if step > T-elapsed {
			step = T - elapsed
		}
		next, nextStep, _ := a.AdaptiveStep(s, f, step)
		if used := next.Time - s.Time; used > 0 && used < step*(1-1e-9) {
			// The controller halved the step; count only the time it advanced.
			step = used
		}
		s = next
		elapsed += step
		out = append(out, s)
		step = nextStep
	}
	return out
}
