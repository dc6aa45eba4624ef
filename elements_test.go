package astro

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestElementsToStateRoundTrip(t *testing.T) {
	o := OrbitalElements{
		A:      7000,
		E:      0.01,
		I:      Deg2rad(51.6),
		RAAN:   Deg2rad(30),
		ArgP:   Deg2rad(40),
		Nu:     Deg2rad(80),
		Origin: Earth,
	}
	s := ElementsToState(o)
	back := StateToElements(s, Earth)

	if !floats.EqualWithinAbs(o.A, back.A, 1e-6) {
		t.Errorf("a round-trip: got %f want %f", back.A, o.A)
	}
	if !floats.EqualWithinAbs(o.E, back.E, 1e-9) {
		t.Errorf("e round-trip: got %f want %f", back.E, o.E)
	}
	if !floats.EqualWithinAbs(o.I, back.I, 1e-9) {
		t.Errorf("i round-trip: got %f want %f", back.I, o.I)
	}
	if !floats.EqualWithinAbs(o.RAAN, back.RAAN, 1e-9) {
		t.Errorf("RAAN round-trip: got %f want %f", back.RAAN, o.RAAN)
	}
	if !floats.EqualWithinAbs(o.ArgP, back.ArgP, 1e-9) {
		t.Errorf("ArgP round-trip: got %f want %f", back.ArgP, o.ArgP)
	}
	if !floats.EqualWithinAbs(o.Nu, back.Nu, 1e-9) {
		t.Errorf("Nu round-trip: got %f want %f", back.Nu, o.Nu)
	}
}

func TestCircularEquatorialRoundTrip(t *testing.T) {
	o := OrbitalElements{A: 42164, E: 0, I: 0, RAAN: 0, ArgP: 0, Nu: Deg2rad(123), Origin: Earth}
	s := ElementsToState(o)
	back := StateToElements(s, Earth)

	if ClassifyOrbit(back) != ClassCircularEquatorial {
		t.Fatalf("expected circular-equatorial, got %s", ClassifyOrbit(back))
	}
	// True anomaly is replaced by true longitude for this degenerate case;
	// since RAAN=ArgP=0 here, TrueLongitude should recover Nu directly.
	if !floats.EqualWithinAbs(o.Nu, back.TrueLongitude(), 1e-6) {
		t.Errorf("true longitude round-trip: got %f want %f", back.TrueLongitude(), o.Nu)
	}
}

func TestEllipticalEquatorialRoundTrip(t *testing.T) {
	o := OrbitalElements{A: 24000, E: 0.3, I: 0, RAAN: 0, ArgP: Deg2rad(65), Nu: Deg2rad(140), Origin: Earth}
	s := ElementsToState(o)
	back := StateToElements(s, Earth)

	if ClassifyOrbit(back) != ClassEllipticalEquatorial {
		t.Fatalf("expected elliptical-equatorial, got %s", ClassifyOrbit(back))
	}
	if !floats.EqualWithinAbs(o.A, back.A, 1e-6) {
		t.Errorf("a round-trip: got %f want %f", back.A, o.A)
	}
	if !floats.EqualWithinAbs(o.E, back.E, 1e-9) {
		t.Errorf("e round-trip: got %f want %f", back.E, o.E)
	}
	if !floats.EqualWithinAbs(o.ArgP, back.ArgP, 1e-6) {
		t.Errorf("ArgP round-trip: got %f want %f", back.ArgP, o.ArgP)
	}
	if !floats.EqualWithinAbs(o.Nu, back.Nu, 1e-6) {
		t.Errorf("Nu round-trip: got %f want %f", back.Nu, o.Nu)
	}
}

func TestCircularInclinedRoundTrip(t *testing.T) {
	o := OrbitalElements{A: 7000, E: 0, I: Deg2rad(98), RAAN: Deg2rad(10), ArgP: 0, Nu: Deg2rad(200), Origin: Earth}
	s := ElementsToState(o)
	back := StateToElements(s, Earth)

	if ClassifyOrbit(back) != ClassCircularInclined {
		t.Fatalf("expected circular-inclined, got %s", ClassifyOrbit(back))
	}
	if !floats.EqualWithinAbs(o.Nu, back.ArgLatitude(), 1e-6) {
		t.Errorf("arg latitude round-trip: got %f want %f", back.ArgLatitude(), o.Nu)
	}
}

func TestPeriodLEO(t *testing.T) {
	o := OrbitalElements{A: REarth + 400, E: 0, I: 0, Origin: Earth}
	period := o.Period()
	// A 400 km circular LEO orbit has a period near 92.5 minutes.
	wantSeconds := 92.5 * 60
	if math.Abs(period-wantSeconds) > 60 {
		t.Errorf("LEO period = %f s, want near %f s", period, wantSeconds)
	}
}

func TestPeriodGEO(t *testing.T) {
	o := OrbitalElements{A: 42164, E: 0, I: 0, Origin: Earth}
	period := o.Period()
	wantSeconds := 86164.0 // one sidereal day
	if math.Abs(period-wantSeconds) > 5 {
		t.Errorf("GEO period = %f s, want near %f s", period, wantSeconds)
	}
}

func TestRadii2ae(t *testing.T) {
	a, e := Radii2ae(42164, REarth+400)
	wantA := (42164 + REarth + 400) / 2
	if !floats.EqualWithinAbs(a, wantA, 1e-9) {
		t.Errorf("a = %f, want %f", a, wantA)
	}
	if e <= 0 || e >= 1 {
		t.Errorf("e = %f, want in (0,1)", e)
	}
}

func TestApoapsisPeriapsis(t *testing.T) {
	o := OrbitalElements{A: 10000, E: 0.2, Origin: Earth}
	if !floats.EqualWithinAbs(o.Apoapsis(), 12000, 1e-9) {
		t.Errorf("apoapsis = %f, want 12000", o.Apoapsis())
	}
	if !floats.EqualWithinAbs(o.Periapsis(), 8000, 1e-9) {
		t.Errorf("periapsis = %f, want 8000", o.Periapsis())
	}
}
