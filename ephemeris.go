package astro

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// j2000Epoch is the wall-clock instant corresponding to the J2000.0
// reference epoch used throughout this file's analytic ephemerides.
var j2000Epoch = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// JulianDate returns the Julian date for t, via meeus/julian — the one
// piece of the teacher's soniakeys/meeus dependency this module keeps.
// meeus's planetposition/pluto VSOP87 series are deliberately dropped
// (see DESIGN.md): SPEC_FULL.md's Non-goals call for analytic ephemeris
// stand-ins, not a loaded planetary series, so only the date-conversion
// utility survives.
func JulianDate(t time.Time) float64 {
	return julian.TimeToJD(t)
}

// SunPositionECI returns the Sun's geocentric equatorial position in km
// using the low-precision solar ephemeris (Vallado, Fundamentals of
// Astrodynamics and Applications, Algorithm 29 "Sun"), accurate to about
// 0.01 degrees — the analytic stand-in SPEC_FULL.md calls for in place
// of a VSOP87/SPICE-backed ephemeris. Used by the SRP force's shadow
// geometry and by the eclipse detector; ThirdBody takes the Sun's
// position from HelioOrbitPosition instead.
func SunPositionECI(t time.Time) []float64 {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	meanLongitude := Deg2rad(280.460 + 36000.771*T)
	meanAnomaly := Deg2rad(357.5291092 + 35999.05034*T)

	sinM, cosM := math.Sincos(meanAnomaly)
	sin2M, cos2M := math.Sincos(2 * meanAnomaly)

	eclipticLongitude := meanLongitude + (1.914666471*math.Pi/180)*sinM + (0.019994643*math.Pi/180)*sin2M

	rAU := 1.000140612 - 0.016708617*cosM - 0.000139589*cos2M
	obliquity := (23.439291 - 0.0130042*T) * math.Pi / 180

	sinLambda, cosLambda := math.Sincos(eclipticLongitude)
	sinEps, cosEps := math.Sincos(obliquity)

	rKm := rAU * AU
	return []float64{
		rKm * cosLambda,
		rKm * cosEps * sinLambda,
		rKm * sinEps * sinLambda,
	}
}

// HelioOrbitPosition returns an approximate heliocentric position (km)
// for planet c at time t, assuming a circular, coplanar orbit phased by
// a fixed reference epoch. This is intentionally the simplest possible
// stand-in adequate for patched-conic and launch-window scans (spec
// 4.7), which only need a planet's instantaneous heliocentric radius
// and angular rate, not a precise ephemeris.
func HelioOrbitPosition(c CelestialObject, t time.Time) []float64 {
	if c.Name == "Sun" {
		return []float64{0, 0, 0}
	}
	periodDays := heliocentricPeriodDays(c.Name)
	if math.IsNaN(periodDays) {
		return []float64{0, 0, 0}
	}
	aAU := semiMajorAxisAU[c.Name]
	aKm := aAU * AU
	const referenceEpochJD = 2451545.0 // J2000.0, phase angle 0 at this epoch
	daysSinceEpoch := JulianDate(t) - referenceEpochJD
	theta := 2 * math.Pi * daysSinceEpoch / periodDays
	sinT, cosT := math.Sincos(theta)
	return []float64{aKm * cosT, aKm * sinT, 0}
}

// HelioOrbitVelocity returns the circular heliocentric velocity (km/s)
// consistent with HelioOrbitPosition, via v = sqrt(mu_sun/r) tangential
// to the position vector.
func HelioOrbitVelocity(c CelestialObject, t time.Time) []float64 {
	r := HelioOrbitPosition(c, t)
	rNorm := norm(r)
	if rNorm == 0 {
		return []float64{0, 0, 0}
	}
	v := math.Sqrt(Sun.Mu / rNorm)
	tangent := unit(cross([]float64{0, 0, 1}, r))
	return scaleVec(tangent, v)
}

// moonSemiMajorAxisKm and moonPeriodDays parameterize the same
// circular-orbit stand-in HelioOrbitPosition uses, but geocentric: the
// Moon is not a heliocentric body in this module's body table, so its
// third-body position needs its own small ephemeris rather than
// HelioOrbitPosition's Sun-relative formula.
const (
	moonSemiMajorAxisKm = 384400.0
	moonPeriodDays      = 27.321661
)

// MoonPositionECI returns an approximate geocentric equatorial Moon
// position (km), using the same fixed-phase circular-orbit stand-in as
// HelioOrbitPosition, inclined by the Moon's mean orbital inclination
// to Earth's equator (~23.5 degrees, approximated here as the obliquity
// of the ecliptic since the lunar orbital plane is close to the
// ecliptic).
func MoonPositionECI(t time.Time) []float64 {
	const referenceEpochJD = 2451545.0
	daysSinceEpoch := JulianDate(t) - referenceEpochJD
	theta := 2 * math.Pi * daysSinceEpoch / moonPeriodDays
	sinT, cosT := math.Sincos(theta)

	xEcl := moonSemiMajorAxisKm * cosT
	yEcl := moonSemiMajorAxisKm * sinT

	obliquity := 23.439291 * math.Pi / 180
	sinEps, cosEps := math.Sincos(obliquity)

	return []float64{xEcl, yEcl * cosEps, yEcl * sinEps}
}
