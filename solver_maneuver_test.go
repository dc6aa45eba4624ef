package astro

import (
	"math"
	"testing"
	"time"
)

func TestHohmannLEOToGEO(t *testing.T) {
	rI := REarth + 400
	rF := 42164.0
	plan := HohmannTransfer(rI, rF, Earth)

	const wantDV1 = 2.431
	const wantDV2 = 1.466
	const wantTotalDV = 3.897
	const wantTOF = 19041.0

	dv1 := norm(plan.DeltaV[0][:])
	dv2 := norm(plan.DeltaV[1][:])
	if math.Abs(dv1-wantDV1) > 0.04 {
		t.Errorf("delta-v1 = %f km/s, want %f", dv1, wantDV1)
	}
	if math.Abs(dv2-wantDV2) > 0.04 {
		t.Errorf("delta-v2 = %f km/s, want %f", dv2, wantDV2)
	}
	if math.Abs(plan.TotalDeltaV-wantTotalDV) > 0.05 {
		t.Errorf("total delta-v = %f km/s, want %f", plan.TotalDeltaV, wantTotalDV)
	}
	if math.Abs(plan.TimeOfFlight-wantTOF) > 10 {
		t.Errorf("time of flight = %f s, want %f s", plan.TimeOfFlight, wantTOF)
	}
}

func TestBiEllipticCheaperForLargeRatios(t *testing.T) {
	rI := 7000.0
	rF := 105000.0 // large enough ratio that bi-elliptic should win
	rB := 210000.0

	hohmann := HohmannTransfer(rI, rF, Earth)
	biElliptic := BiEllipticTransfer(rI, rB, rF, Earth)

	if biElliptic.TotalDeltaV >= hohmann.TotalDeltaV {
		t.Errorf("expected bi-elliptic (%f) to beat Hohmann (%f) for this radius ratio", biElliptic.TotalDeltaV, hohmann.TotalDeltaV)
	}
}

func TestPlaneChangeZeroForZeroAngle(t *testing.T) {
	if dv := PlaneChange(7.5, 0); dv != 0 {
		t.Errorf("expected zero delta-v for zero inclination change, got %f", dv)
	}
}

func TestPlaneChangeScalesWithVelocity(t *testing.T) {
	dvSlow := PlaneChange(1.0, Deg2rad(10))
	dvFast := PlaneChange(10.0, Deg2rad(10))
	if dvFast <= dvSlow {
		t.Errorf("expected higher-velocity plane change to cost more delta-v")
	}
}

func TestMultiImpulsePlanSumsLegs(t *testing.T) {
	plan := MultiImpulsePlan([]float64{7000, 15000, 42164}, Earth)
	leg1 := HohmannTransfer(7000, 15000, Earth)
	leg2 := HohmannTransfer(15000, 42164, Earth)
	want := leg1.TotalDeltaV + leg2.TotalDeltaV
	if math.Abs(plan.TotalDeltaV-want) > 1e-9 {
		t.Errorf("total delta-v = %f, want %f", plan.TotalDeltaV, want)
	}
}

func TestRendezvousSearchFindsFeasibleTransfer(t *testing.T) {
	r := REarth + 400
	vcirc := math.Sqrt(MuEarth / r)

	chaser := StateVector{Position: [3]float64{r, 0, 0}, Velocity: [3]float64{0, vcirc, 0}}
	// Target on the same circular orbit, 30 degrees ahead.
	theta := Deg2rad(30)
	target := StateVector{
		Position: [3]float64{r * math.Cos(theta), r * math.Sin(theta), 0},
		Velocity: [3]float64{-vcirc * math.Sin(theta), vcirc * math.Cos(theta), 0},
	}

	plan, err := RendezvousSearch(chaser, target, Earth, 3600)
	if err != nil {
		t.Fatalf("RendezvousSearch returned infeasible: %v", err)
	}
	if plan.TotalDeltaV <= 0 {
		t.Errorf("expected positive total delta-v, got %f", plan.TotalDeltaV)
	}
	if len(plan.At) != 1 || plan.At[0] <= 0 || plan.At[0] > 3600 {
		t.Errorf("expected a single time-of-flight within the scanned window, got %v", plan.At)
	}
}

func TestRendezvousSearchInfeasibleForDegenerateWindow(t *testing.T) {
	chaser := StateVector{Position: [3]float64{REarth + 400, 0, 0}, Velocity: [3]float64{0, 7.6, 0}}
	target := chaser
	_, err := RendezvousSearch(chaser, target, Earth, 0)
	if err == nil {
		t.Errorf("expected an infeasible error for a zero-length scan window")
	}
}

func TestLaunchAzimuthWindow(t *testing.T) {
	lat := Deg2rad(28.5) // Cape Canaveral
	incl := Deg2rad(51.6)
	vOrb := math.Sqrt(MuEarth / (REarth + 400))
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	entries := LaunchAzimuthWindow(lat, incl, vOrb, start)
	if len(entries) != 144 { // 24h / 10min
		t.Fatalf("expected 144 samples, got %d", len(entries))
	}

	wantBeta := math.Asin(math.Cos(incl) / math.Cos(lat))
	wantVEarth := (earthSurfaceSpeedMs * math.Cos(lat)) / 1000
	wantDeltaV := math.Sqrt(vOrb*vOrb + wantVEarth*wantVEarth - 2*vOrb*wantVEarth*math.Cos(wantBeta))

	for i, e := range entries {
		if math.Abs(e.Azimuth-wantBeta) > 1e-9 {
			t.Errorf("entry %d: azimuth = %f, want %f", i, e.Azimuth, wantBeta)
		}
		if math.Abs(e.DeltaV-wantDeltaV) > 1e-9 {
			t.Errorf("entry %d: delta-v = %f, want %f", i, e.DeltaV, wantDeltaV)
		}
	}
	if !entries[0].Time.Equal(start) {
		t.Errorf("first entry time = %v, want %v", entries[0].Time, start)
	}
}

func TestLaunchAzimuthWindowUnreachableInclination(t *testing.T) {
	// A launch site latitude greater than the target inclination cannot
	// reach that inclination without a plane-change maneuver; the direct
	// ascent formula has no real solution there.
	lat := Deg2rad(60)
	incl := Deg2rad(28.5)
	entries := LaunchAzimuthWindow(lat, incl, 7.6, time.Now())
	if entries != nil {
		t.Errorf("expected no feasible launch azimuth, got %d entries", len(entries))
	}
}

func TestGravityAssistTurnAngleIncreasesWithLowerPeriapsis(t *testing.T) {
	high := GravityAssistTurnAngle(5.0, 10000, Earth)
	low := GravityAssistTurnAngle(5.0, 7000, Earth)
	if low <= high {
		t.Errorf("expected a lower periapsis to produce a larger turn angle")
	}
}
