package astro

import (
	"math"
	"time"
)

// TransferType selects which of Lambert's four zero/one-revolution
// branches to solve (short/long way, 0/1 revolutions), grounded
// verbatim on the teacher's TransferType (tools.go).
type TransferType uint8

const (
	TransferAuto TransferType = iota + 1
	TransferType1
	TransferType2
	TransferType3
	TransferType4
)

func (t TransferType) longway() bool {
	return t == TransferType2 || t == TransferType4
}

func (t TransferType) revs() float64 {
	if t == TransferType3 || t == TransferType4 {
		return 1
	}
	return 0
}

const (
	lambertEpsilon     = 1e-4
	lambertTimeEpsilon = 1e-4
)

// LambertSolution is the data contract solver_lambert.go's public entry
// point returns: both boundary velocities, a feasibility flag rather
// than an error (per SPEC_FULL.md's data model, so pork-chop-style scans
// can treat infeasible points as data rather than unwinding), a delta-v
// field, and bookkeeping on which branch was solved. DeltaV is +Inf for
// an infeasible solution; SolveLambert leaves it zero for a feasible one,
// since the spacecraft velocities it would be measured against are not
// among its inputs (DeltaVGiven computes it from them).
type LambertSolution struct {
	V1           [3]float64
	V2           [3]float64
	Feasible     bool
	DeltaV       float64
	Revolutions  float64
	TransferType TransferType
}

// SolveLambert solves Lambert's problem between position vectors r1 and
// r2 (km), given a desired time of flight, around body. Ported from the
// teacher's Lambert (tools.go): the universal-variable phi/c2/c3
// bisection, generalized from gonum mat64.Vector arguments to plain
// [3]float64, and from a (Vi, Vf, phi, error) return into the
// LambertSolution data contract.
func SolveLambert(r1, r2 [3]float64, tof time.Duration, ttype TransferType, body CelestialObject) LambertSolution {
	rI := norm(r1[:])
	rF := norm(r2[:])
	if rI == 0 || rF == 0 {
		return LambertSolution{Feasible: false, DeltaV: math.Inf(1)}
	}

	cosDeltaNu := dot(r1[:], r2[:]) / (rI * rF)

	nuI := math.Atan2(r1[1], r1[0])
	nuF := math.Atan2(r2[1], r2[0])

	dm := 1.0
	switch ttype {
	case TransferType2, TransferType4:
		dm = -1.0
	case TransferAuto:
		deltaNu := nuF - nuI
		if deltaNu > 2*math.Pi {
			deltaNu -= 2 * math.Pi
		} else if deltaNu < 0 {
			deltaNu += 2 * math.Pi
		}
		if deltaNu > math.Pi {
			dm = -1.0
		}
	}

	A := dm * math.Sqrt(rI*rF*(1+cosDeltaNu))
	if 1-cosDeltaNu < 1e-9 || math.Abs(A) < lambertEpsilon {
		// Delta-nu ~ 0 (the two position vectors coincide in direction)
		// or A ~ 0 (delta-nu ~ pi): geometry is degenerate; the A~=0
		// early return is what resolves spec 9's sin(pi-delta nu) concern.
		return LambertSolution{Feasible: false, DeltaV: math.Inf(1), TransferType: ttype, Revolutions: ttype.revs()}
	}

	revs := ttype.revs()
	phiUp := 4 * math.Pi * math.Pi * (revs + 1) * (revs + 1)
	phiLow := -4 * math.Pi

	if revs > 0 {
		deltaTMin := 4000 * 24 * 3600.0
		phiBound := 0.0
		for phiP := 15.0; phiP < phiUp; phiP += 0.1 {
			c2 := (1 - math.Cos(math.Sqrt(phiP))) / phiP
			c3 := (math.Sqrt(phiP) - math.Sin(math.Sqrt(phiP))) / math.Sqrt(math.Pow(phiP, 3))
			y := rI + rF + A*(phiP*c3-1)/math.Sqrt(c2)
			chi := math.Sqrt(y / c2)
			deltaT := (math.Pow(chi, 3)*c3 + A*math.Sqrt(y)) / math.Sqrt(body.Mu)
			if deltaTMin > deltaT {
				deltaTMin = deltaT
				phiBound = phiP
			}
		}
		if ttype == TransferType3 {
			phiLow = phiUp
			phiUp = phiBound
		} else if ttype == TransferType4 {
			phiLow = phiBound
		}
	}

	c2 := 0.5
	c3 := 1.0 / 6.0
	var deltaT, y, phi float64
	tofSec := tof.Seconds()

	for iteration := 0; math.Abs(deltaT-tofSec) > lambertTimeEpsilon; iteration++ {
		if iteration > 10000 {
			return LambertSolution{Feasible: false, DeltaV: math.Inf(1), TransferType: ttype, Revolutions: revs}
		}
		y = rI + rF + A*(phi*c3-1)/math.Sqrt(c2)
		if A > 0 && y < 0 {
			for guard := 0; y < 0; guard++ {
				if guard > 10000 {
					return LambertSolution{Feasible: false, DeltaV: math.Inf(1), TransferType: ttype, Revolutions: revs}
				}
				phi += 0.1
				y = rI + rF + A*(phi*c3-1)/math.Sqrt(c2)
			}
		}
		chi := math.Sqrt(y / c2)
		deltaT = (math.Pow(chi, 3)*c3 + A*math.Sqrt(y)) / math.Sqrt(body.Mu)
		if ttype != TransferType3 {
			if deltaT <= tofSec {
				phiLow = phi
			} else {
				phiUp = phi
			}
		} else {
			if deltaT >= tofSec {
				phiLow = phi
			} else {
				phiUp = phi
			}
		}
		phi = (phiUp + phiLow) / 2
		switch {
		case phi > lambertEpsilon:
			sPhi := math.Sqrt(phi)
			sinSPhi, cosSPhi := math.Sincos(sPhi)
			c2 = (1 - cosSPhi) / phi
			c3 = (sPhi - sinSPhi) / math.Sqrt(math.Pow(phi, 3))
		case phi < -lambertEpsilon:
			sPhi := math.Sqrt(-phi)
			c2 = (1 - math.Cosh(sPhi)) / phi
			c3 = (math.Sinh(sPhi) - sPhi) / math.Sqrt(math.Pow(-phi, 3))
		default:
			c2 = 0.5
			c3 = 1.0 / 6.0
		}
	}

	f := 1 - y/rI
	gDot := 1 - y/rF
	g := A * math.Sqrt(y/body.Mu)

	var v1, v2 [3]float64
	for i := 0; i < 3; i++ {
		v1[i] = (r2[i] - f*r1[i]) / g
		v2[i] = (gDot*r2[i] - r1[i]) / g
	}

	return LambertSolution{
		V1:           v1,
		V2:           v2,
		Feasible:     true,
		Revolutions:  revs,
		TransferType: ttype,
	}
}

// DeltaVGiven computes the total delta-v this solution requires given
// the spacecraft's actual velocity vectors vDeparture (before the
// transfer) and vArrival (desired after the transfer) — the two boundary
// velocities SolveLambert alone cannot know, since it only sees
// geometry. Returns 0 if sol is infeasible.
func (sol LambertSolution) DeltaVGiven(vDeparture, vArrival [3]float64) float64 {
	if !sol.Feasible {
		return 0
	}
	dv1 := norm(subVec(sol.V1[:], vDeparture[:]))
	dv2 := norm(subVec(vArrival[:], sol.V2[:]))
	return dv1 + dv2
}
