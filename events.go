package astro

import "math"

// EventKind labels the geometric condition an EventDetector watches for.
type EventKind int

const (
	EventApoapsis EventKind = iota
	EventPeriapsis
	EventAscendingNode
	EventDescendingNode
	EventEclipseEntry
	EventEclipseExit
)

func (k EventKind) String() string {
	switch k {
	case EventApoapsis:
		return "apoapsis"
	case EventPeriapsis:
		return "periapsis"
	case EventAscendingNode:
		return "ascending-node"
	case EventDescendingNode:
		return "descending-node"
	case EventEclipseEntry:
		return "eclipse-entry"
	case EventEclipseExit:
		return "eclipse-exit"
	default:
		return "unknown"
	}
}

// EventCrossing is the data contract for a detected event: the time, the
// interpolated state at that time, and which kind of event it was.
// Grounded on SPEC_FULL.md's data model; the teacher's nearest analogue
// is its waypoint "cleared" check (dynamics/waypoints.go's
// AchieveOptiΔa / similar done-functions), which tests a scalar
// condition crossing zero but never returns an event value — this file
// generalizes that crossing-test idiom into a standalone detector
// family with a refine step the teacher's waypoints skip entirely.
type EventCrossing struct {
	Time  float64
	State StateVector
	Kind  EventKind
}

// EventDetector exposes the scalar function whose sign change signals
// the event: positive before the event, negative after (or vice versa
// - only the sign change matters, refine uses bisection so the
// direction is irrelevant).
type EventDetector interface {
	Kind() EventKind
	Value(s StateVector, origin CelestialObject) float64
}

type apoapsisDetector struct{ origin CelestialObject }

func (d apoapsisDetector) Kind() EventKind { return EventApoapsis }
func (d apoapsisDetector) Value(s StateVector, origin CelestialObject) float64 {
	// d(r)/dt crosses from positive to negative at apoapsis.
	return dot(s.Position[:], s.Velocity[:])
}

type periapsisDetector struct{ origin CelestialObject }

func (d periapsisDetector) Kind() EventKind { return EventPeriapsis }
func (d periapsisDetector) Value(s StateVector, origin CelestialObject) float64 {
	// Same radial-rate scalar as apoapsis. FindCrossings reports every
	// sign change of it, so this detector and ApoapsisDetector find the
	// same passages (both apsides); only the Kind label differs.
	return dot(s.Position[:], s.Velocity[:])
}

type ascendingNodeDetector struct{}

func (d ascendingNodeDetector) Kind() EventKind { return EventAscendingNode }
func (d ascendingNodeDetector) Value(s StateVector, origin CelestialObject) float64 {
	return s.Position[2] // z crosses zero going positive at the ascending node
}

type descendingNodeDetector struct{}

func (d descendingNodeDetector) Kind() EventKind { return EventDescendingNode }
func (d descendingNodeDetector) Value(s StateVector, origin CelestialObject) float64 {
	return -s.Position[2]
}

// ApoapsisDetector returns an EventDetector on the radial rate r·v,
// labeled EventApoapsis. FindCrossings does not check the direction of a
// sign change, so periapsis passages are reported with this label too.
func ApoapsisDetector(origin CelestialObject) EventDetector { return apoapsisDetector{origin} }

// PeriapsisDetector returns an EventDetector on the same radial rate,
// labeled EventPeriapsis; apoapsis passages are reported with this
// label too.
func PeriapsisDetector(origin CelestialObject) EventDetector { return periapsisDetector{origin} }

// AscendingNodeDetector returns an EventDetector on z, labeled
// EventAscendingNode; descending-node crossings are reported with this
// label too.
func AscendingNodeDetector() EventDetector { return ascendingNodeDetector{} }

// DescendingNodeDetector returns an EventDetector on -z, labeled
// EventDescendingNode; ascending-node crossings are reported with this
// label too.
func DescendingNodeDetector() EventDetector { return descendingNodeDetector{} }

type eclipseDetector struct {
	bodyRadius float64
	entry      bool
}

func (d eclipseDetector) Kind() EventKind {
	if d.entry {
		return EventEclipseEntry
	}
	return EventEclipseExit
}

func (d eclipseDetector) Value(s StateVector, origin CelestialObject) float64 {
	sunPos := SunPositionECI(refEpoch.Add(timeSeconds(s.Time)))
	sunDir := unit(sunPos)
	alongSun := dot(s.Position[:], sunDir)
	perp := subVec(s.Position[:], scaleVec(sunDir, alongSun))
	shadowDistance := d.bodyRadius - norm(perp)
	if alongSun > 0 {
		shadowDistance = -math.Abs(shadowDistance) - 1 // day side: force negative (outside shadow)
	}
	return shadowDistance
}

// refEpoch anchors eclipse detection's epoch-dependent Sun ephemeris
// lookup to a fixed wall-clock reference (J2000.0).
var refEpoch = j2000Epoch

// EclipseDetectorAt returns an eclipse entry/exit detector for a body of
// radius bodyRadius. The Sun's position is looked up at refEpoch plus
// StateVector.Time; the reference epoch is fixed and is not a parameter.
// Entry and exit detectors share one Value and differ only in Kind.
func EclipseDetectorAt(bodyRadius float64, entry bool) EventDetector {
	return eclipseDetector{bodyRadius: bodyRadius, entry: entry}
}

// FindCrossings scans states (assumed evenly spaced in time, in order)
// for sign changes in detector.Value, refining each with bisection
// against f (the same derivative driving the propagation) to a time
// tolerance of tol seconds.
func FindCrossings(states []StateVector, origin CelestialObject, detector EventDetector, integrator Integrator, f Derivative, tol float64) []EventCrossing {
	var out []EventCrossing
	for i := 0; i+1 < len(states); i++ {
		v0 := detector.Value(states[i], origin)
		v1 := detector.Value(states[i+1], origin)
		if v0 == 0 {
			out = append(out, EventCrossing{Time: states[i].Time, State: states[i], Kind: detector.Kind()})
			continue
		}
		if (v0 < 0) == (v1 < 0) {
			continue
		}
		crossing := bisectCrossing(states[i], states[i+1], origin, detector, integrator, f, tol)
		out = append(out, crossing)
	}
	return out
}

func bisectCrossing(lo, hi StateVector, origin CelestialObject, detector EventDetector, integrator Integrator, f Derivative, tol float64) EventCrossing {
	vLo := detector.Value(lo, origin)
	for hi.Time-lo.Time > tol {
		mid := integrator.Step(lo, f, (hi.Time-lo.Time)/2)
		vMid := detector.Value(mid, origin)
		if (vMid < 0) == (vLo < 0) {
			lo = mid
			vLo = vMid
		} else {
			hi = mid
		}
	}
	return EventCrossing{Time: lo.Time, State: lo, Kind: detector.Kind()}
}
