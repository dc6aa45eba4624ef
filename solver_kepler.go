package astro

import (
	"fmt"
	"math"
)

// NonConvergenceError reports that a Newton iteration failed to reach
// its tolerance within the allotted iteration budget.
type NonConvergenceError struct {
	Solver     string
	Iterations int
	Residual   float64
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("astro: %s failed to converge after %d iterations (residual %g)", e.Solver, e.Iterations, e.Residual)
}

const (
	keplerMaxIterations = 100
	keplerTolerance     = 1e-12
)

// SolveKeplerElliptic solves Kepler's equation M = E - e*sin(E) for the
// eccentric anomaly E via Newton-Raphson, grounded on spec 4.5's named
// elliptic-case formula. M and the returned E are both in radians.
func SolveKeplerElliptic(m, e float64) (float64, error) {
	eAnom := m
	if e > 0.8 {
		eAnom = math.Pi
	}
	for iter := 0; iter < keplerMaxIterations; iter++ {
		f := eAnom - e*math.Sin(eAnom) - m
		fPrime := 1 - e*math.Cos(eAnom)
		delta := f / fPrime
		eAnom -= delta
		if math.Abs(delta) < keplerTolerance {
			return normalizeAngle(eAnom), nil
		}
	}
	return eAnom, &NonConvergenceError{Solver: "SolveKeplerElliptic", Iterations: keplerMaxIterations, Residual: math.Abs(eAnom - e*math.Sin(eAnom) - m)}
}

// SolveKeplerHyperbolic solves the hyperbolic Kepler equation M = e*sinh(H) - H
// for the hyperbolic anomaly H via Newton-Raphson.
func SolveKeplerHyperbolic(m, e float64) (float64, error) {
	hAnom := m
	if e > 1.6 {
		hAnom = math.Log(2*math.Abs(m)/e + 1.8)
		if m < 0 {
			hAnom = -hAnom
		}
	}
	for iter := 0; iter < keplerMaxIterations; iter++ {
		f := e*math.Sinh(hAnom) - hAnom - m
		fPrime := e*math.Cosh(hAnom) - 1
		delta := f / fPrime
		hAnom -= delta
		if math.Abs(delta) < keplerTolerance {
			return hAnom, nil
		}
	}
	return hAnom, &NonConvergenceError{Solver: "SolveKeplerHyperbolic", Iterations: keplerMaxIterations, Residual: math.Abs(e*math.Sinh(hAnom) - hAnom - m)}
}

// MeanToTrueAnomaly converts mean anomaly m (rad) to true anomaly (rad)
// for eccentricity e, dispatching to the elliptic or hyperbolic Kepler
// solver and using the atan2-safe half-angle form (spec 4.5) to recover
// true anomaly without quadrant ambiguity.
func MeanToTrueAnomaly(m, e float64) (float64, error) {
	if e < 1 {
		eAnom, err := SolveKeplerElliptic(m, e)
		if err != nil {
			return 0, err
		}
		return EccentricToTrueAnomaly(eAnom, e), nil
	}
	hAnom, err := SolveKeplerHyperbolic(m, e)
	if err != nil {
		return 0, err
	}
	return HyperbolicToTrueAnomaly(hAnom, e), nil
}

// EccentricToTrueAnomaly converts eccentric anomaly E to true anomaly,
// via the atan2 half-angle form tan(nu/2) = sqrt((1+e)/(1-e)) tan(E/2),
// which is well-behaved at E near 0 and pi (unlike the plain acos form).
func EccentricToTrueAnomaly(eAnom, e float64) float64 {
	sinHalf, cosHalf := math.Sincos(eAnom / 2)
	nu := 2 * math.Atan2(math.Sqrt(1+e)*sinHalf, math.Sqrt(1-e)*cosHalf)
	return normalizeAngle(nu)
}

// TrueToEccentricAnomaly is the inverse of EccentricToTrueAnomaly.
func TrueToEccentricAnomaly(nu, e float64) float64 {
	sinHalf, cosHalf := math.Sincos(nu / 2)
	eAnom := 2 * math.Atan2(math.Sqrt(1-e)*sinHalf, math.Sqrt(1+e)*cosHalf)
	return normalizeAngle(eAnom)
}

// EccentricToMeanAnomaly applies Kepler's equation directly.
func EccentricToMeanAnomaly(eAnom, e float64) float64 {
	return normalizeAngle(eAnom - e*math.Sin(eAnom))
}

// HyperbolicToTrueAnomaly converts hyperbolic anomaly H to true anomaly
// via the hyperbolic analogue of the half-angle form, tan(nu/2) =
// sqrt((e+1)/(e-1)) tanh(H/2).
func HyperbolicToTrueAnomaly(hAnom, e float64) float64 {
	nu := 2 * math.Atan(math.Sqrt((e+1)/(e-1))*math.Tanh(hAnom/2))
	return normalizeAngle(nu)
}

// TrueToHyperbolicAnomaly is the inverse of HyperbolicToTrueAnomaly.
func TrueToHyperbolicAnomaly(nu, e float64) float64 {
	hAnom := 2 * math.Atanh(math.Sqrt((e-1)/(e+1))*math.Tan(nu/2))
	return hAnom
}

// MeanAnomalyAtEpoch propagates the mean anomaly m0 forward by dt
// seconds under Keplerian mean motion n, used by propagator_keplerian.go.
func MeanAnomalyAtEpoch(m0, n, dt float64) float64 {
	return normalizeAngle(m0 + n*dt)
}
