package astro

import (
	"math"
	"testing"
)

func TestValidationTestCaseLEOCircular400km(t *testing.T) {
	oe := OrbitalElements{A: REarth + 400, E: 0, I: Deg2rad(51.6), Origin: Earth}

	const wantPeriod = 5553.64
	if period := oe.Period(); math.Abs(period-wantPeriod) > 0.02 {
		t.Errorf("period = %f s, want %f s +/- 0.02 s", period, wantPeriod)
	}

	s0 := ElementsToState(oe)
	fm := NewForceModel(Earth)
	fm.Add(CentralGravity())
	numerical := NumericalPropagator{Forces: fm, Integrator: RK4Integrator{}, Step: 10}

	tc := ValidationTestCase{
		Name:     "leo-400km-full-period",
		Origin:   Earth,
		Initial:  s0,
		Expected: s0, // a circular orbit returns to its start after exactly one period
		Propagate: func(s StateVector) (StateVector, error) {
			return numerical.Propagate(s, oe.Period())
		},
	}

	result := tc.Run()
	if result.PositionError*1000 >= 1 {
		t.Errorf("position error after one period = %f m, want < 1 m", result.PositionError*1000)
	}
}
