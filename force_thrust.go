package astro

import "time"

// ThrustProfile defines a continuous-thrust maneuver: a fixed direction
// (unit vector, inertial frame) and magnitude applied for a bounded
// window [Start, Start+Duration), with a mass-flow model driven by
// Isp, grounded on the teacher's EPThruster (thrusters.go) interface
// generalized from "a device with Thrust(voltage,power)" into "a
// profile with Newtons and seconds directly" per spec 4.3's thrust
// force.
type ThrustProfile struct {
	Direction [3]float64 // unit vector, inertial frame
	ThrustN   float64    // Newtons
	IspS      float64    // seconds
	Start     time.Time
	Duration  time.Duration
	MassKg    float64 // spacecraft mass used for the acceleration; Thrust does not change it
}

// Active reports whether t falls within the thrust window.
func (tp *ThrustProfile) Active(t time.Time) bool {
	if t.Before(tp.Start) {
		return false
	}
	return t.Before(tp.Start.Add(tp.Duration))
}

// MassFlowRate returns the propellant mass-flow rate (kg/s) implied by
// ThrustN and IspS, via the rocket equation's thrust-to-mass-flow
// relation F = Isp * g0 * mdot.
func (tp *ThrustProfile) MassFlowRate() float64 {
	return tp.ThrustN / (tp.IspS * StandardGravity)
}

// Thrust returns a continuous-thrust Force applying tp.ThrustN/tp.MassKg
// along Direction while Active, and zero otherwise. epoch is seconds
// since ref; Active is tested against ref.Add(epoch seconds).
func Thrust(tp *ThrustProfile, ref time.Time) Force {
	return named{name: "thrust", fn: func(s StateVector, origin CelestialObject, epoch float64) [3]float64 {
		t := ref.Add(timeSeconds(epoch))
		if !tp.Active(t) {
			return [3]float64{}
		}
		accelKmS2 := (tp.ThrustN / 1000) / tp.MassKg // N/kg = m/s^2, /1000 -> km/s^2
		return [3]float64{
			accelKmS2 * tp.Direction[0],
			accelKmS2 * tp.Direction[1],
			accelKmS2 * tp.Direction[2],
		}
	}}
}

func timeSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
