package astro

import (
	"math"
	"testing"
	"time"
)

func TestCentralGravityMagnitude(t *testing.T) {
	s := StateVector{Position: [3]float64{REarth + 400, 0, 0}}
	a := CentralGravity().Acceleration(s, Earth, 0)
	want := Earth.Mu / math.Pow(REarth+400, 2)
	got := norm(a[:])
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("|a| = %f, want %f", got, want)
	}
	if a[0] >= 0 {
		t.Errorf("acceleration should point toward origin (negative x), got %f", a[0])
	}
}

func TestJ2NonzeroOffEquator(t *testing.T) {
	s := StateVector{Position: [3]float64{REarth + 400, 0, 2000}}
	a := J2Perturbation().Acceleration(s, Earth, 0)
	if norm(a[:]) == 0 {
		t.Errorf("expected nonzero J2 acceleration off the equatorial plane")
	}
}

func TestJ2ZeroForNonZonalBody(t *testing.T) {
	s := StateVector{Position: [3]float64{Sun.Radius * 2, 0, 1000}}
	a := J2Perturbation().Acceleration(s, Sun, 0)
	if norm(a[:]) != 0 {
		t.Errorf("Sun carries no J2 in this module's body table, want zero acceleration")
	}
}

func TestForceModelToggle(t *testing.T) {
	fm := NewForceModel(Earth)
	fm.Add(CentralGravity())
	fm.Add(J2Perturbation())

	s := StateVector{Position: [3]float64{REarth + 400, 0, 500}}
	withJ2 := fm.TotalAcceleration(s, 0)

	if !fm.Toggle("j2", false) {
		t.Fatalf("expected j2 to be a known force")
	}
	withoutJ2 := fm.TotalAcceleration(s, 0)

	if withJ2 == withoutJ2 {
		t.Errorf("toggling j2 off should change total acceleration")
	}
}

func TestExponentialDragMagnitude(t *testing.T) {
	altitude := 400.0
	r := REarth + altitude
	vcirc := math.Sqrt(MuEarth / r)
	s := StateVector{Position: [3]float64{r, 0, 0}, Velocity: [3]float64{0, vcirc, 0}}

	cfg := DragConfig{Cd: 2.2, AreaM2: 10, MassKg: 500}
	a := ExponentialDrag(cfg).Acceleration(s, Earth, 0)

	vRel := relativeVelocity(s, Earth)
	vRelNorm := norm(vRel)
	rho := ExponentialAtmosphereRho0 * math.Exp(-altitude/ExponentialAtmosphereScaleHeight)
	factor := -0.5 * cfg.Cd * cfg.AreaM2 * rho * vRelNorm / cfg.MassKg / 1000
	want := norm([]float64{factor * vRel[0], factor * vRel[1], factor * vRel[2]})

	got := norm(a[:])
	if math.Abs(got-want) > 1e-30 {
		t.Errorf("|a_drag| = %e, want %e", got, want)
	}
	if got <= 0 || got > 1e-18 {
		t.Errorf("|a_drag| = %e km/s^2, outside the physically plausible range for a 400 km LEO drag term", got)
	}
}

func TestSolarRadiationPressureMagnitude(t *testing.T) {
	epoch := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	s := StateVector{Position: [3]float64{REarth + 400, 0, 0}, Time: 0}

	cfg := SRPConfig{Cr: 1.3, AreaM2: 10, MassKg: 500, Epoch: epoch}
	a := SolarRadiationPressure(cfg).Acceleration(s, Earth, 0)

	sunPos := SunPositionECI(epoch)
	scToSun := subVec(sunPos, s.Position[:])
	dist := norm(scToSun)
	dir := unit(scToSun)
	pressure := (SolarConstant / SpeedOfLight) * (AU / dist) * (AU / dist)
	factor := -(1 + cfg.Cr) * cfg.AreaM2 * pressure / cfg.MassKg / 1000
	want := norm([]float64{factor * dir[0], factor * dir[1], factor * dir[2]})

	got := norm(a[:])
	if math.Abs(got-want) > 1e-20 {
		t.Errorf("|a_srp| = %e, want %e", got, want)
	}
	if got <= 0 || got > 1e-8 {
		t.Errorf("|a_srp| = %e km/s^2, outside the physically plausible range for SRP near 1 AU", got)
	}
}

func TestDragApplicableGate(t *testing.T) {
	drag := ExponentialDrag(DragConfig{Cd: 2.2, AreaM2: 10, MassKg: 500})

	low := StateVector{Position: [3]float64{REarth + 500, 0, 0}, Velocity: [3]float64{0, 7.6, 0}}
	if !drag.Applicable(low, Earth) {
		t.Errorf("drag should be applicable at 500 km altitude")
	}

	high := StateVector{Position: [3]float64{REarth + 1500, 0, 0}, Velocity: [3]float64{0, 7.1, 0}}
	if drag.Applicable(high, Earth) {
		t.Errorf("drag should not be applicable above %g km altitude", dragMaxAltitudeKm)
	}
}

func TestJ2ApplicableGate(t *testing.T) {
	j2 := J2Perturbation()

	low := StateVector{Position: [3]float64{REarth + 2000, 0, 500}}
	if !j2.Applicable(low, Earth) {
		t.Errorf("j2 should be applicable below %g km altitude", j2MaxAltitudeKm)
	}

	high := StateVector{Position: [3]float64{200000, 0, 500}}
	if j2.Applicable(high, Earth) {
		t.Errorf("j2 should not be applicable above %g km altitude", j2MaxAltitudeKm)
	}
}

func TestJ3J4ApplicableGate(t *testing.T) {
	j3 := J3Perturbation()
	j4 := J4Perturbation()

	low := StateVector{Position: [3]float64{REarth + 2000, 0, 500}}
	if !j3.Applicable(low, Earth) || !j4.Applicable(low, Earth) {
		t.Errorf("j3/j4 should be applicable below %g km altitude", j3j4MaxAltitudeKm)
	}

	high := StateVector{Position: [3]float64{70000, 0, 500}}
	if j3.Applicable(high, Earth) || j4.Applicable(high, Earth) {
		t.Errorf("j3/j4 should not be applicable above %g km altitude", j3j4MaxAltitudeKm)
	}
}

func TestSRPApplicableGate(t *testing.T) {
	s := StateVector{Position: [3]float64{REarth + 400, 0, 0}}

	lowRatio := SolarRadiationPressure(SRPConfig{Cr: 1.3, AreaM2: 1, MassKg: 2000})
	if lowRatio.Applicable(s, Earth) {
		t.Errorf("srp should not be applicable when area/mass < %g m^2/kg", srpMinAreaToMassM2PerKg)
	}

	highRatio := SolarRadiationPressure(SRPConfig{Cr: 1.3, AreaM2: 10, MassKg: 500})
	if !highRatio.Applicable(s, Earth) {
		t.Errorf("srp should be applicable when area/mass >= %g m^2/kg", srpMinAreaToMassM2PerKg)
	}
}

func TestThirdBodyApplicableGate(t *testing.T) {
	tb := ThirdBody(Sun, time.Now())

	nearby := StateVector{Position: [3]float64{REarth + 500, 0, 0}}
	if tb.Applicable(nearby, Earth) {
		t.Errorf("third-body should not be applicable below %g km altitude", thirdBodyMinAltitudeKm)
	}

	far := StateVector{Position: [3]float64{REarth + 5000, 0, 0}}
	if !tb.Applicable(far, Earth) {
		t.Errorf("third-body should be applicable above %g km altitude", thirdBodyMinAltitudeKm)
	}
}

func TestContributionsKeyedByName(t *testing.T) {
	fm := NewForceModel(Earth)
	fm.Add(CentralGravity())
	fm.Add(J2Perturbation())

	s := StateVector{Position: [3]float64{REarth + 400, 0, 500}}
	contribs := fm.Contributions(s, 0)
	if _, ok := contribs["central-gravity"]; !ok {
		t.Errorf("expected central-gravity contribution present")
	}
	if _, ok := contribs["j2"]; !ok {
		t.Errorf("expected j2 contribution present")
	}
}
