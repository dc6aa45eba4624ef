package astro

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSolveKeplerEllipticKnownExample(t *testing.T) {
	// M=1.0 rad, e=0.5 is the classical textbook worked example
	// (Vallado), E converges to approximately 1.4987 rad.
	eAnom, err := SolveKeplerElliptic(1.0, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1.49870
	if !floats.EqualWithinAbs(eAnom, want, 1e-4) {
		t.Errorf("E = %f, want near %f", eAnom, want)
	}
}

func TestAnomalyRoundTrip(t *testing.T) {
	e := 0.3
	for _, nu := range []float64{0, 0.5, math.Pi / 2, math.Pi - 0.01, math.Pi, math.Pi + 0.3, 2*math.Pi - 0.1} {
		eAnom := TrueToEccentricAnomaly(nu, e)
		back := EccentricToTrueAnomaly(eAnom, e)
		diff := math.Abs(normalizeAngle(back) - normalizeAngle(nu))
		if diff > math.Pi {
			diff = 2*math.Pi - diff
		}
		if diff > 1e-9 {
			t.Errorf("nu=%f: round trip got %f", nu, back)
		}
	}
}

func TestMeanToTrueAnomalyHyperbolic(t *testing.T) {
	nu, err := MeanToTrueAnomaly(2.0, 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.IsNaN(nu) {
		t.Errorf("got NaN true anomaly")
	}
}

func TestSolveKeplerHyperbolicRoundTrip(t *testing.T) {
	hAnom, err := SolveKeplerHyperbolic(3.0, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := 2.0*math.Sinh(hAnom) - hAnom
	if !floats.EqualWithinAbs(m, 3.0, 1e-9) {
		t.Errorf("recovered M = %f, want 3.0", m)
	}
}
