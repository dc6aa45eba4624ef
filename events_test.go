package astro

import (
	"testing"
)

func TestFindCrossingsApoapsis(t *testing.T) {
	oe := OrbitalElements{A: 10000, E: 0.3, Origin: Earth}
	s0 := ElementsToState(oe)

	fm := NewForceModel(Earth)
	fm.Add(CentralGravity())
	integrator := RK4Integrator{}

	states := integrator.Integrate(s0, fm.Derivative(), 10, oe.Period())

	detector := ApoapsisDetector(Earth)
	crossings := FindCrossings(states, Earth, detector, integrator, fm.Derivative(), 1e-3)

	if len(crossings) == 0 {
		t.Fatalf("expected at least one apoapsis/periapsis crossing over a full orbit")
	}
	for _, c := range crossings {
		if c.Kind != EventApoapsis {
			t.Errorf("unexpected kind %v", c.Kind)
		}
	}
}

func TestFindCrossingsAscendingNode(t *testing.T) {
	oe := OrbitalElements{A: 7000, E: 0.01, I: Deg2rad(45), Origin: Earth}
	s0 := ElementsToState(oe)

	fm := NewForceModel(Earth)
	fm.Add(CentralGravity())
	integrator := RK4Integrator{}
	states := integrator.Integrate(s0, fm.Derivative(), 10, oe.Period())

	detector := AscendingNodeDetector()
	crossings := FindCrossings(states, Earth, detector, integrator, fm.Derivative(), 1e-3)

	if len(crossings) == 0 {
		t.Fatalf("expected at least one ascending node crossing over a full orbit")
	}
}
