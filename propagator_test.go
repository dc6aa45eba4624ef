package astro

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestKeplerianPropagatorConservesShape(t *testing.T) {
	oe := OrbitalElements{A: 7000, E: 0.01, I: Deg2rad(45), RAAN: Deg2rad(10), ArgP: Deg2rad(20), Nu: Deg2rad(0), Origin: Earth}
	s0 := ElementsToState(oe)

	k := KeplerianPropagator{Origin: Earth}
	s1, err := k.Propagate(s0, oe.Period()/4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := StateToElements(s1, Earth)
	if !floats.EqualWithinAbs(oe.A, back.A, 1e-6) {
		t.Errorf("semi-major axis should be conserved, got %f want %f", back.A, oe.A)
	}
	if !floats.EqualWithinAbs(oe.E, back.E, 1e-9) {
		t.Errorf("eccentricity should be conserved, got %f want %f", back.E, oe.E)
	}
}

func TestKeplerianFullPeriodReturnsToStart(t *testing.T) {
	oe := OrbitalElements{A: 7000, E: 0.1, I: Deg2rad(30), RAAN: 0, ArgP: 0, Nu: 0, Origin: Earth}
	s0 := ElementsToState(oe)
	k := KeplerianPropagator{Origin: Earth}

	s1, err := k.Propagate(s0, oe.Period())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(s1.Position[0]-s0.Position[0]) > 1e-3 {
		t.Errorf("expected return to starting position after one period, got delta %f", s1.Position[0]-s0.Position[0])
	}
}

func TestNumericalPropagatorMatchesKeplerianForTwoBodyOnly(t *testing.T) {
	oe := OrbitalElements{A: 7000, E: 0.01, I: Deg2rad(45), Origin: Earth}
	s0 := ElementsToState(oe)

	fm := NewForceModel(Earth)
	fm.Add(CentralGravity())

	num := NumericalPropagator{Forces: fm, Integrator: RK4Integrator{}, Step: 1.0}
	kep := KeplerianPropagator{Origin: Earth}

	dt := 600.0
	sNum, err := num.Propagate(s0, dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sKep, err := kep.Propagate(s0, dt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Error(sNum, sKep) > 1e-4 {
		t.Errorf("numerical and Keplerian propagation diverge: error=%g", Error(sNum, sKep))
	}
}

func TestAnalyticalAtmosphericGatedAbove2000km(t *testing.T) {
	oe := OrbitalElements{A: REarth + 3000, E: 0, I: 0, Origin: Earth}
	s0 := ElementsToState(oe)

	p := AnalyticalPropagator{Origin: Earth, Mode: AnalyticalAtmospheric, DragDecay: 1e-3}
	s1, err := p.Propagate(s0, 3600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := StateToElements(s1, Earth)
	if !floats.EqualWithinAbs(oe.A, back.A, 1e-6) {
		t.Errorf("above 2000 km altitude, decay should not engage: a = %f, want %f", back.A, oe.A)
	}
}

func TestAnalyticalAtmosphericFloorsAtOriginRadiusPlus100(t *testing.T) {
	oe := OrbitalElements{A: REarth + 150, E: 0, I: 0, Origin: Earth}
	s0 := ElementsToState(oe)

	p := AnalyticalPropagator{Origin: Earth, Mode: AnalyticalAtmospheric, DragDecay: 1.0}
	s1, err := p.Propagate(s0, 3600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := StateToElements(s1, Earth)
	want := Earth.Radius + 100
	if !floats.EqualWithinAbs(want, back.A, 1e-6) {
		t.Errorf("decay should floor at origin radius + 100 km: a = %f, want %f", back.A, want)
	}
}

func TestAnalyticalJ2NodeRegressesSunSynchronous(t *testing.T) {
	// A sun-synchronous orbit has a J2 nodal regression rate matching
	// Earth's heliocentric mean motion (~0.9856 deg/day); verify the
	// analytical propagator's RAAN drift has the expected sign for a
	// retrograde, near-polar inclination.
	oe := OrbitalElements{A: REarth + 800, E: 0, I: Deg2rad(98.6), Origin: Earth}
	s0 := ElementsToState(oe)

	p := AnalyticalPropagator{Origin: Earth, Mode: AnalyticalJ2}
	s1, err := p.Propagate(s0, 86400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := StateToElements(s1, Earth)
	before := StateToElements(s0, Earth)

	drift := normalizeAngle(back.RAAN - before.RAAN)
	if drift > math.Pi {
		drift -= 2 * math.Pi
	}
	driftDegPerDay := Rad2deg(drift)
	if driftDegPerDay < 0 {
		driftDegPerDay += 360
	}
	// Expect drift in the sun-synchronous ballpark (~1 deg/day), positive
	// for a retrograde orbit.
	if driftDegPerDay < 0.5 || driftDegPerDay > 1.5 {
		t.Errorf("node drift = %f deg/day, want near 0.9856", driftDegPerDay)
	}
}

func TestSGP4PropagatorAccelerationIsZero(t *testing.T) {
	p := NewSGP4Propagator(TLEData{
		MeanMotion:   15.5,
		Eccentricity: 0.001,
		Inclination:  51.6,
		RAAN:         45,
		ArgPerigee:   90,
		MeanAnomaly:  10,
		Epoch:        time.Now(),
	})
	s := StateVector{Position: [3]float64{REarth + 400, 0, 0}}
	a := p.Acceleration(s)
	if a != [3]float64{} {
		t.Errorf("SGP4Propagator.Acceleration() = %v, want the zero vector", a)
	}
}
