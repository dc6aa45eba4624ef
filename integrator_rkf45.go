package astro

// RKF45Integrator implements the embedded Runge-Kutta-Fehlberg 4(5)
// method: a shared set of six stage evaluations produces both a 5th-
// order solution (taken as the accepted step) and a 4th-order companion
// used only to estimate local error. Coefficients are the classical
// Fehlberg (1969) tableau.
//
// Grounded on the same src/integrator.Integrable stage-accumulation
// pattern as RK4Integrator, generalized to the six-stage embedded
// tableau spec requires (the teacher implements no RKF45 at all).
type RKF45Integrator struct{}

var (
	rkf45A = [6]float64{0, 1.0 / 4, 3.0 / 8, 12.0 / 13, 1, 1.0 / 2}

	rkf45B = [6][5]float64{
		{},
		{1.0 / 4},
		{3.0 / 32, 9.0 / 32},
		{1932.0 / 2197, -7200.0 / 2197, 7296.0 / 2197},
		{439.0 / 216, -8, 3680.0 / 513, -845.0 / 4104},
		{-8.0 / 27, 2, -3544.0 / 2565, 1859.0 / 4104, -11.0 / 40},
	}

	// rkf45C5 are the weights for the 5th-order solution.
	rkf45C5 = [6]float64{16.0 / 135, 0, 6656.0 / 12825, 28561.0 / 56430, -9.0 / 50, 2.0 / 55}
	// rkf45C4 are the weights for the 4th-order companion solution.
	rkf45C4 = [6]float64{25.0 / 216, 0, 1408.0 / 2565, 2197.0 / 4104, -1.0 / 5, 0}
)

func (RKF45Integrator) stages(s StateVector, f Derivative, dt float64) [6]StateVector {
	var k [6]StateVector
	t := s.Time
	k[0] = f(s, t)
	for i := 1; i < 6; i++ {
		acc := s
		for j := 0; j < i; j++ {
			acc = acc.AddScaled(k[j], dt*rkf45B[i][j])
		}
		k[i] = f(acc, t+rkf45A[i]*dt)
	}
	return k
}

func combine(s StateVector, k [6]StateVector, dt float64, w [6]float64) StateVector {
	next := s
	for i := 0; i < 3; i++ {
		var dp, dv float64
		for j := 0; j < 6; j++ {
			dp += w[j] * k[j].Position[i]
			dv += w[j] * k[j].Velocity[i]
		}
		next.Position[i] = s.Position[i] + dt*dp
		next.Velocity[i] = s.Velocity[i] + dt*dv
	}
	return next
}

// Step implements Integrator, returning the 5th-order solution.
func (r RKF45Integrator) Step(s StateVector, f Derivative, dt float64) StateVector {
	k := r.stages(s, f, dt)
	next := combine(s, k, dt, rkf45C5)
	next.Time = s.Time + dt
	return next
}

// Integrate implements Integrator.
func (r RKF45Integrator) Integrate(s0 StateVector, f Derivative, dt, T float64) []StateVector {
	return integrate(r.Step, s0, f, dt, T)
}

// AdaptiveStep implements AdaptiveCapable: the 5th-order solution is
// accepted, and the error estimate is the normalized difference against
// the embedded 4th-order companion.
func (r RKF45Integrator) AdaptiveStep(s StateVector, f Derivative, dt float64) (StateVector, float64, float64) {
	k := r.stages(s, f, dt)
	y5 := combine(s, k, dt, rkf45C5)
	y4 := combine(s, k, dt, rkf45C4)
	y5.Time = s.Time + dt
	y4.Time = s.Time + dt
	return y5, dt, Error(y5, y4)
}
