package astro

import (
	"math"
	"time"
)

// ManeuverPlan is the data contract for a discrete maneuver sequence:
// one label for the plan, each impulse's delta-v vector and time offset,
// plus the aggregate totals. Grounded on SPEC_FULL.md's data model; the teacher
// never aggregates a maneuver into one struct (Hohmann (tools.go)
// returns bare scalars), so this composes the teacher's individual
// formulas into a uniform return type each maneuver-design function in
// this file shares.
type ManeuverPlan struct {
	Label        string
	DeltaV       [][3]float64
	At           []float64 // seconds since the plan's reference epoch, parallel to DeltaV
	TotalDeltaV  float64
	TimeOfFlight float64 // seconds
}

// HohmannTransfer computes a two-impulse Hohmann transfer between
// circular orbits of radius rI and rF around body, ported from the
// teacher's Hohmann (tools.go).
func HohmannTransfer(rI, rF float64, body CelestialObject) ManeuverPlan {
	aTransfer := 0.5 * (rI + rF)
	vI := math.Sqrt(body.Mu / rI)
	vF := math.Sqrt(body.Mu / rF)
	vDeparture := math.Sqrt(2*body.Mu/rI - body.Mu/aTransfer)
	vArrival := math.Sqrt(2*body.Mu/rF - body.Mu/aTransfer)
	tof := math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/body.Mu)

	dv1 := vDeparture - vI
	dv2 := vF - vArrival

	return ManeuverPlan{
		Label:        "hohmann",
		DeltaV:       [][3]float64{{dv1, 0, 0}, {dv2, 0, 0}},
		At:           []float64{0, tof},
		TotalDeltaV:  math.Abs(dv1) + math.Abs(dv2),
		TimeOfFlight: tof,
	}
}

// BiEllipticTransfer computes a three-impulse bi-elliptic transfer
// through an intermediate apoapsis rB, generalizing HohmannTransfer's
// two-burn form per spec 4.6 (the teacher has no bi-elliptic
// implementation at all; built directly from the standard two-Hohmann-
// leg decomposition).
func BiEllipticTransfer(rI, rB, rF float64, body CelestialObject) ManeuverPlan {
	leg1 := HohmannTransfer(rI, rB, body)
	leg2 := HohmannTransfer(rB, rF, body)

	dv1 := leg1.DeltaV[0]
	// The burn at rB moves directly from the first transfer ellipse to
	// the second: leg1's arrival burn plus leg2's departure burn.
	dv2 := [3]float64{leg1.DeltaV[1][0] + leg2.DeltaV[0][0], 0, 0}
	dv3 := leg2.DeltaV[1]

	tof1 := leg1.TimeOfFlight
	tof2 := leg2.TimeOfFlight

	return ManeuverPlan{
		Label:        "bi-elliptic",
		DeltaV:       [][3]float64{dv1, dv2, dv3},
		At:           []float64{0, tof1, tof1 + tof2},
		TotalDeltaV:  norm(dv1[:]) + norm(dv2[:]) + norm(dv3[:]),
		TimeOfFlight: tof1 + tof2,
	}
}

// PlaneChange computes the delta-v of a pure inclination-change impulse
// applied at velocity v with flight-path angle 0 (circular orbit
// assumption), rotating the orbital plane by deltaI radians. Grounded
// on the standard plane-change formula dv = 2v sin(deltaI/2); the
// teacher only ever expresses this inline inside its OptiDeltaiCL
// Lyapunov control law rather than as a discrete-impulse formula, so
// this is the spec's named closed form rather than a teacher port.
func PlaneChange(v, deltaI float64) float64 {
	return 2 * v * math.Sin(deltaI/2)
}

// CombinedPlaneChangeHohmann computes a Hohmann transfer with the plane
// change folded into the apoapsis burn (the standard cheapest-point
// combination, since delta-v for a plane change scales with velocity
// and the transfer orbit's apoapsis velocity is the smallest of the
// three candidate burn points).
func CombinedPlaneChangeHohmann(rI, rF float64, deltaI float64, body CelestialObject) ManeuverPlan {
	aTransfer := 0.5 * (rI + rF)
	vF := math.Sqrt(body.Mu / rF)
	vArrival := math.Sqrt(2*body.Mu/rF - body.Mu/aTransfer)

	dv2 := math.Sqrt(vF*vF + vArrival*vArrival - 2*vF*vArrival*math.Cos(deltaI))

	base := HohmannTransfer(rI, rF, body)
	return ManeuverPlan{
		Label:        "hohmann-plane-change",
		DeltaV:       [][3]float64{base.DeltaV[0], {dv2, 0, 0}},
		At:           base.At,
		TotalDeltaV:  math.Abs(base.DeltaV[0][0]) + dv2,
		TimeOfFlight: base.TimeOfFlight,
	}
}

// RendezvousSearch scans T in [0, window] at resolution window/100,
// propagating target via a KeplerianPropagator and solving Lambert's
// problem from chaser's current position to target's propagated
// position for each T, keeping the transfer of minimum total delta-v.
// ΔV₁ = v_Lambert − v_chaser, per spec 4.7's literal rendezvous
// procedure (the teacher's Mission/waypoint system handles phasing via
// its own time-loop rather than a Lambert scan, so this is built
// directly from the spec's procedure rather than ported).
func RendezvousSearch(chaser, target StateVector, body CelestialObject, window float64) (ManeuverPlan, error) {
	if window <= 0 {
		return ManeuverPlan{Label: "rendezvous"}, &InfeasibleError{Solver: "RendezvousSearch", Reason: "scan window must be positive"}
	}
	resolution := window / 100
	kep := KeplerianPropagator{Origin: body}

	bestDeltaV := math.Inf(1)
	var bestPlan ManeuverPlan
	found := false

	for tof := resolution; tof <= window; tof += resolution {
		targetAtTOF, err := kep.Propagate(target, tof)
		if err != nil {
			continue
		}
		sol := SolveLambert(chaser.Position, targetAtTOF.Position, timeSeconds(tof), TransferAuto, body)
		if !sol.Feasible {
			continue
		}
		dv1 := subVec3(sol.V1, chaser.Velocity)
		totalDeltaV := norm(dv1[:])
		if totalDeltaV < bestDeltaV {
			bestDeltaV = totalDeltaV
			found = true
			bestPlan = ManeuverPlan{
				Label:        "rendezvous",
				DeltaV:       [][3]float64{dv1},
				At:           []float64{tof},
				TotalDeltaV:  totalDeltaV,
				TimeOfFlight: tof,
			}
		}
	}

	if !found {
		return ManeuverPlan{Label: "rendezvous"}, &InfeasibleError{Solver: "RendezvousSearch", Reason: "no feasible Lambert transfer within the scanned window"}
	}
	return bestPlan, nil
}

// MultiImpulsePlan chains an arbitrary sequence of Hohmann-style radius
// changes rs[0]->rs[1]->...->rs[n-1] into a single ManeuverPlan,
// summing delta-v and time of flight leg by leg.
func MultiImpulsePlan(rs []float64, body CelestialObject) ManeuverPlan {
	if len(rs) < 2 {
		return ManeuverPlan{Label: "multi-impulse"}
	}
	var dvs [][3]float64
	var ats []float64
	elapsed := 0.0
	total := 0.0
	for i := 0; i+1 < len(rs); i++ {
		leg := HohmannTransfer(rs[i], rs[i+1], body)
		dvs = append(dvs, leg.DeltaV...)
		ats = append(ats, elapsed, elapsed+leg.TimeOfFlight)
		elapsed += leg.TimeOfFlight
		total += leg.TotalDeltaV
	}
	return ManeuverPlan{Label: "multi-impulse", DeltaV: dvs, At: ats, TotalDeltaV: total, TimeOfFlight: elapsed}
}

// GravityAssistTurnAngle returns the hyperbolic turn angle for a flyby
// with hyperbolic excess speed vInf and periapsis radius rP about body,
// ported from the teacher's GATurnAngle (assists.go).
func GravityAssistTurnAngle(vInf, rP float64, body CelestialObject) float64 {
	rho := math.Acos(1 / (1 + vInf*vInf*(rP/body.Mu)))
	return math.Pi - 2*rho
}

// GravityAssistFromVinf computes the B-plane parameters of a patched-
// conic flyby given the incoming and outgoing hyperbolic excess velocity
// vectors, ported verbatim from the teacher's GAFromVinf (assists.go).
func GravityAssistFromVinf(vInfIn, vInfOut [3]float64, body CelestialObject) (turnAngle, rP, bT, bR, bMag, theta float64) {
	vInfInNorm := norm(vInfIn[:])
	vInfOutNorm := norm(vInfOut[:])
	turnAngle = math.Acos(dot(vInfIn[:], vInfOut[:]) / (vInfInNorm * vInfOutNorm))
	rP = (body.Mu / (vInfInNorm * vInfInNorm)) * (1/math.Cos((math.Pi-turnAngle)/2) - 1)

	k := []float64{0, 0, 1}
	sHat := unit(vInfIn[:])
	tHat := unit(cross(sHat, k))
	rHat := unit(cross(sHat, tHat))
	hHat := unit(cross(vInfIn[:], vInfOut[:]))
	bVec := unit(cross(sHat, hHat))
	bVal := (body.Mu / (vInfInNorm * vInfInNorm)) * math.Sqrt(math.Pow(1+vInfInNorm*vInfInNorm*(rP/body.Mu), 2)-1)
	for i := range bVec {
		bVec[i] *= bVal
	}
	bT = dot(bVec, tHat)
	bR = dot(bVec, rHat)
	bMag = norm(bVec)
	theta = math.Atan2(bT, bR)
	return
}

// PatchedConicTransfer composes a heliocentric Lambert transfer between
// two planets' instantaneous positions with the hyperbolic departure/
// arrival excess-velocity bookkeeping a patched-conic interplanetary
// trajectory needs: the Lambert solution's boundary velocities minus
// each planet's own heliocentric velocity give the required v-infinity
// at departure and arrival.
func PatchedConicTransfer(departurePlanet, arrivalPlanet CelestialObject, departure time.Time, tof time.Duration) (sol LambertSolution, vInfDeparture, vInfArrival [3]float64) {
	arrival := departure.Add(tof)
	r1Slice := HelioOrbitPosition(departurePlanet, departure)
	r2Slice := HelioOrbitPosition(arrivalPlanet, arrival)
	var r1, r2 [3]float64
	copy(r1[:], r1Slice)
	copy(r2[:], r2Slice)

	sol = SolveLambert(r1, r2, tof, TransferAuto, Sun)
	if !sol.Feasible {
		return sol, vInfDeparture, vInfArrival
	}

	vPlanetDep := departurePlanet.heliocentricVelocity(departure)
	vPlanetArr := arrivalPlanet.heliocentricVelocity(arrival)

	vInfDeparture = subVec3(sol.V1, vPlanetDep)
	vInfArrival = subVec3(sol.V2, vPlanetArr)
	return sol, vInfDeparture, vInfArrival
}

func subVec3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// heliocentricVelocity is a small adapter so PatchedConicTransfer can
// call through CelestialObject rather than the free HelioOrbitVelocity
// function directly.
func (c CelestialObject) heliocentricVelocity(t time.Time) [3]float64 {
	v := HelioOrbitVelocity(c, t)
	var out [3]float64
	copy(out[:], v)
	return out
}

// LaunchAzimuthEntry is one sampled instant of a LaunchAzimuthWindow scan:
// the launch azimuth and insertion delta-v needed to reach the target
// orbit directly from the ground, at that departure time.
type LaunchAzimuthEntry struct {
	Time    time.Time
	Azimuth float64 // radians, measured from north
	DeltaV  float64 // km/s
}

// earthSurfaceSpeedMs is the equatorial ground speed due to Earth's
// rotation, spec 4.7's v_earth = 465.1*cos(phi) constant.
const earthSurfaceSpeedMs = 465.1

// LaunchAzimuthWindow scans departure times in [start, start+24h) at
// 10-minute steps and computes, for a direct ascent from a ground site
// at geodetic latitude lat into a circular orbit of velocity vOrb (km/s)
// and inclination incl (both radians), the launch azimuth beta and the
// delta-v the ascent must supply, per spec 4.7's formula:
//
//	beta  = asin(cos(incl) / cos(lat))
//	vEarth = 465.1 * cos(lat) m/s
//	deltaV = sqrt(vOrb^2 + vEarth^2 - 2*vOrb*vEarth*cos(beta))
//
// The azimuth/delta-v pair itself has no time dependence in this model
// (it depends only on geometry, not on the site's instantaneous
// orientation), so every sample in the window carries the same beta and
// deltaV; the scan exists to enumerate each wall-clock opportunity, as
// spec 4.7 names it. Returns no entries if lat/incl make the orbit
// geometrically unreachable (|cos(incl)/cos(lat)| > 1).
func LaunchAzimuthWindow(lat, incl, vOrb float64, start time.Time) []LaunchAzimuthEntry {
	sinBeta := math.Cos(incl) / math.Cos(lat)
	if math.Abs(sinBeta) > 1 {
		return nil
	}
	beta := math.Asin(sinBeta)
	vEarth := (earthSurfaceSpeedMs * math.Cos(lat)) / 1000 // m/s -> km/s
	deltaV := math.Sqrt(vOrb*vOrb + vEarth*vEarth - 2*vOrb*vEarth*math.Cos(beta))

	var entries []LaunchAzimuthEntry
	for offset := time.Duration(0); offset < 24*time.Hour; offset += 10 * time.Minute {
		entries = append(entries, LaunchAzimuthEntry{
			Time:    start.Add(offset),
			Azimuth: beta,
			DeltaV:  deltaV,
		})
	}
	return entries
}

// LaunchWindowScan scans departure dates in [start, start+horizon) at
// step resolution, evaluating PatchedConicTransfer for each and
// returning the date with the lowest departure C3 (squared departure
// v-infinity; the arrival v-infinity is not counted), a stand-in for a full C3/pork-chop contour scan per spec
// 4.7 (the teacher's PCPGenerator (tools.go) writes Matlab contour data
// files instead of selecting a best point; this keeps the same nested
// launch/arrival scan structure but returns the optimum directly).
func LaunchWindowScan(departurePlanet, arrivalPlanet CelestialObject, start time.Time, horizon, step time.Duration, tofMin, tofMax, tofStep time.Duration) (bestDeparture time.Time, bestTOF time.Duration, bestC3 float64) {
	bestC3 = math.Inf(1)
	for depOffset := time.Duration(0); depOffset < horizon; depOffset += step {
		departure := start.Add(depOffset)
		for tof := tofMin; tof < tofMax; tof += tofStep {
			_, vInfDep, _ := PatchedConicTransfer(departurePlanet, arrivalPlanet, departure, tof)
			c3 := dot(vInfDep[:], vInfDep[:])
			if c3 > 0 && c3 < bestC3 {
				bestC3 = c3
				bestDeparture = departure
				bestTOF = tof
			}
		}
	}
	return bestDeparture, bestTOF, bestC3
}
