package astro

import (
	"math"
	"time"
)

// GMST returns the Greenwich mean sidereal time (radians) at t, via the
// standard IAU-82 polynomial in Julian centuries since J2000.0.
// Grounded on the teacher's reliance on a theta_gst angle threaded
// through ECI2ECEF (rotation.go) — the teacher always takes theta_gst
// as an externally-supplied parameter, so this supplies the formula the
// teacher itself never implements.
func GMST(t time.Time) float64 {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0
	gmstSec := 67310.54841 + (876600*3600+8640184.812866)*T + 0.093104*T*T - 6.2e-6*T*T*T
	gmstDeg := math.Mod(gmstSec, 86400.0) * (360.0 / 86400.0)
	return normalizeAngle(Deg2rad(gmstDeg))
}

// R3 rotates v about the z-axis by theta radians, matching the teacher's
// R3 (rotation.go) but operating directly on []float64 rather than
// mat64.Dense.
func R3(theta float64, v []float64) []float64 {
	s, c := math.Sincos(theta)
	return []float64{c*v[0] + s*v[1], -s*v[0] + c*v[1], v[2]}
}

// R1 rotates v about the x-axis by theta radians.
func R1(theta float64, v []float64) []float64 {
	s, c := math.Sincos(theta)
	return []float64{v[0], c*v[1] + s*v[2], -s*v[1] + c*v[2]}
}

// R2 rotates v about the y-axis by theta radians.
func R2(theta float64, v []float64) []float64 {
	s, c := math.Sincos(theta)
	return []float64{c*v[0] - s*v[2], v[1], s*v[0] + c*v[2]}
}

// ECI2ECEF rotates an ECI vector into ECEF at sidereal angle gmst
// (radians), ported from the teacher's ECI2ECEF (rotation.go).
func ECI2ECEF(r []float64, gmst float64) []float64 {
	return R3(gmst, r)
}

// ECEF2ECI is the inverse of ECI2ECEF.
func ECEF2ECI(r []float64, gmst float64) []float64 {
	return R3(-gmst, r)
}

// GeodeticToECEF converts geodetic latitude/longitude (radians) and
// altitude (km above the WGS84 ellipsoid) to an ECEF position. Grounded
// on the teacher's GEO2ECEF (rotation.go), generalized from a spherical
// body assumption to the WGS84 oblate-ellipsoid formula spec 6's
// constants call for.
func GeodeticToECEF(lat, lon, altitude float64) []float64 {
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)

	e2 := 2*WGS84F - WGS84F*WGS84F
	n := WGS84A / math.Sqrt(1-e2*sinLat*sinLat)

	x := (n + altitude) * cosLat * cosLon
	y := (n + altitude) * cosLat * sinLon
	z := (n*(1-e2) + altitude) * sinLat
	return []float64{x, y, z}
}

const bowringMaxIterations = 10

// ECEFToGeodetic converts an ECEF position (km) to geodetic latitude/
// longitude (radians, longitude in [0, 2pi)) and altitude (km), via
// Bowring's iterative method (spec 6). The teacher has no ECEF-to-geodetic
// inverse at all (Station stores its own latitude/longitude directly
// rather than deriving them), so this is built from Bowring's formula
// directly.
func ECEFToGeodetic(r []float64) (lat, lon, altitude float64) {
	x, y, z := r[0], r[1], r[2]
	p := math.Sqrt(x*x + y*y)
	lon = normalizeAngle(math.Atan2(y, x))

	e2 := 2*WGS84F - WGS84F*WGS84F
	lat = math.Atan2(z, p*(1-e2))

	for i := 0; i < bowringMaxIterations; i++ {
		sinLat := math.Sin(lat)
		n := WGS84A / math.Sqrt(1-e2*sinLat*sinLat)
		altitude = p/math.Cos(lat) - n
		lat = math.Atan2(z, p*(1-e2*(n/(n+altitude))))
	}
	return lat, lon, altitude
}

// ENU returns the east/north/up unit vectors at geodetic latitude/
// longitude (radians), the local topocentric frame azimuth/elevation
// measurements are expressed in.
func ENU(lat, lon float64) (east, north, up [3]float64) {
	sinLat, cosLat := math.Sincos(lat)
	sinLon, cosLon := math.Sincos(lon)
	east = [3]float64{-sinLon, cosLon, 0}
	north = [3]float64{-sinLat * cosLon, -sinLat * sinLon, cosLat}
	up = [3]float64{cosLat * cosLon, cosLat * sinLon, sinLat}
	return
}

// RangeElAz returns the topocentric range (km), elevation, and azimuth
// (radians) of target (ECEF) as seen from observer (ECEF) at geodetic
// latitude/longitude. Ported from the teacher's Station.RangeElAz
// (station.go)'s SEZ-frame computation, generalized from a
// station-carried fixed lat/long to explicit parameters.
func RangeElAz(observerECEF, targetECEF []float64, lat, lon float64) (rangeKm, el, az float64) {
	rho := subVec(targetECEF, observerECEF)
	rangeKm = norm(rho)
	if rangeKm == 0 {
		return 0, 0, 0
	}

	sez := R2(math.Pi/2-lat, R3(lon, rho))

	el = math.Asin(sez[2] / rangeKm)
	az = normalizeAngle(math.Atan2(sez[1], -sez[0]))
	return rangeKm, el, az
}

// LVLHFrame returns the local-vertical-local-horizontal (RSW-like) unit
// basis for state s: radial (away from origin), along-track, and cross-
// track. Grounded on the teacher's implicit use of r/h to build its
// thrust-direction control laws (prop.go's tangential/antiTangential
// control laws), generalized into a reusable named frame.
func LVLHFrame(s StateVector) (radial, alongTrack, crossTrack [3]float64) {
	r := s.Position[:]
	v := s.Velocity[:]
	rHat := unit(r)
	h := cross(r, v)
	wHat := unit(h)
	sHat := unit(cross(wHat, rHat))

	copy(radial[:], rHat)
	copy(alongTrack[:], sHat)
	copy(crossTrack[:], wHat)
	return
}

// SubsatellitePoint returns the geodetic ground-track point (lat, lon,
// altitude) below s at sidereal angle gmst.
func SubsatellitePoint(s StateVector, gmst float64) (lat, lon, altitude float64) {
	ecef := ECI2ECEF(s.Position[:], gmst)
	return ECEFToGeodetic(ecef)
}

// GreatCircleDistance returns the geodetic surface distance (km) between
// two points on a sphere of radius, via the haversine formula.
func GreatCircleDistance(lat1, lon1, lat2, lon2, radius float64) float64 {
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	sinDLat2, sinDLon2 := math.Sin(dLat/2), math.Sin(dLon/2)
	a := sinDLat2*sinDLat2 + math.Cos(lat1)*math.Cos(lat2)*sinDLon2*sinDLon2
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return radius * c
}
