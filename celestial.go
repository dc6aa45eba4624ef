package astro

import (
	"fmt"
	"math"
	"strings"
)

// CelestialObject defines a gravitating body: its gravitational
// parameter, radius, sphere-of-influence radius (w.r.t. the Sun), and
// zonal harmonics. Grounded verbatim on the teacher's CelestialObject
// (celestial.go), minus the VSOP87/SPICE-backed planetposition field —
// per SPEC_FULL.md's Non-goal on photorealistic ephemerides, body
// positions here come from the analytic stand-ins in ephemeris.go, not
// a loaded planetary series.
type CelestialObject struct {
	Name   string
	Radius float64 // km
	Mu     float64 // km^3/s^2
	SOI    float64 // km, w.r.t. the Sun; -1 for the Sun itself
	J2     float64
	J3     float64
	J4     float64
}

// GM returns the gravitational parameter (mu).
func (c CelestialObject) GM() float64 { return c.Mu }

// J returns the zonal harmonic coefficient for the given degree n (2-4
// supported; 0 for anything else).
func (c CelestialObject) J(n uint8) float64 {
	switch n {
	case 2:
		return c.J2
	case 3:
		return c.J3
	case 4:
		return c.J4
	default:
		return 0
	}
}

func (c CelestialObject) String() string { return c.Name + " body" }

// Equals reports whether b is the same celestial object (by physical
// parameters, matching the teacher's CelestialObject.Equals).
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.Mu == b.Mu && c.SOI == b.SOI && c.J2 == b.J2
}

// Definitions, grounded verbatim on the teacher's celestial.go body
// table (mu/radius/SOI/Jn values), minus the heliocentric orbital
// elements the teacher stored per-planet for VSOP87 (a, tilt, incl):
// those fed HelioOrbit's ephemeris path, which this module replaces with
// the low-precision analytic formulas in ephemeris.go.
var (
	// Sun is the solar system's central body.
	Sun = CelestialObject{Name: "Sun", Radius: 695700, Mu: MuSun, SOI: -1}
	// Earth is the home body, the only one carrying J3/J4 and the only
	// one whose atmosphere drag treats as co-rotating.
	Earth = CelestialObject{Name: "Earth", Radius: REarth, Mu: MuEarth, SOI: 924645.0, J2: J2Earth, J3: J3Earth, J4: J4Earth}
	// Moon, for third-body perturbations on Earth-orbiting spacecraft.
	Moon = CelestialObject{Name: "Moon", Radius: 1737.4, Mu: MuMoon, SOI: 66100}
	// Venus, Mars and Jupiter are carried for interplanetary patched-conic
	// and launch-window scenarios (spec 4.7).
	Venus   = CelestialObject{Name: "Venus", Radius: 6051.8, Mu: 3.24858592e5, SOI: 616000}
	Mars    = CelestialObject{Name: "Mars", Radius: 3396.19, Mu: 4.282837e4, SOI: 576000, J2: 1960.45e-6}
	Jupiter = CelestialObject{Name: "Jupiter", Radius: 71492.0, Mu: 1.26686534e8, SOI: 48200000}
)

// CelestialObjectFromString returns the body matching name
// (case-insensitive), grounded on the teacher's CelestialObjectFromString.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "sun":
		return Sun, nil
	case "earth":
		return Earth, nil
	case "moon":
		return Moon, nil
	case "venus":
		return Venus, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	default:
		return CelestialObject{}, fmt.Errorf("astro: undefined body %q", name)
	}
}

// semiMajorAxisAU gives each planet's approximate heliocentric semi-major
// axis, used only by the low-precision circular-orbit ephemeris stand-in
// in ephemeris.go (never a substitute for a real planetary series).
var semiMajorAxisAU = map[string]float64{
	"Venus":   0.723332,
	"Earth":   1.0,
	"Mars":    1.523679,
	"Jupiter": 5.2044,
}

// heliocentricPeriodDays approximates each planet's orbital period for
// the same analytic stand-in.
func heliocentricPeriodDays(name string) float64 {
	a, ok := semiMajorAxisAU[name]
	if !ok {
		return math.NaN()
	}
	return 365.25 * math.Pow(a, 1.5)
}
