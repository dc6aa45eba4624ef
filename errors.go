package astro

import "fmt"

// InvalidDomainError reports that an input value fell outside the
// domain a formula requires (e.g. a negative semi-major axis passed to
// a function expecting an elliptic orbit).
type InvalidDomainError struct {
	Function string
	Field    string
	Value    float64
}

func (e *InvalidDomainError) Error() string {
	return fmt.Sprintf("astro: %s: %s=%g is outside its valid domain", e.Function, e.Field, e.Value)
}

// InfeasibleError reports that a solver determined no solution exists
// for the given inputs (e.g. a Lambert geometry with no valid transfer,
// or a rendezvous search that found no acceptable wait time within its
// search horizon).
type InfeasibleError struct {
	Solver string
	Reason string
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("astro: %s: infeasible (%s)", e.Solver, e.Reason)
}

// ResourceExhaustionError reports that an iterative process (step-size
// control, a search scan) hit its iteration or horizon budget without
// satisfying its stopping condition. Unlike NonConvergenceError (used by
// the Newton solvers in solver_kepler.go, where failing to converge
// means the result is unusable), ResourceExhaustionError describes
// processes that still produce a usable, if degraded, result - the
// caller decides whether that degradation is acceptable. No function in
// this package returns it; AdaptiveStepper reports step-size exhaustion
// as a warning on its Logger.
type ResourceExhaustionError struct {
	Component string
	Detail    string
}

func (e *ResourceExhaustionError) Error() string {
	return fmt.Sprintf("astro: %s: resource exhausted (%s)", e.Component, e.Detail)
}
