package astro

// Physical constants honored exactly per the numerical core's contract.
// None of these are process-wide singletons in the sense of being mutated
// anywhere: they are plain values, referenced directly or copied onto
// CelestialObject instances (celestial.go).
const (
	// MuEarth is Earth's gravitational parameter in km^3/s^2.
	MuEarth = 398600.4418
	// REarth is Earth's equatorial radius in km.
	REarth = 6378.137
	// J2Earth is Earth's second zonal harmonic coefficient.
	J2Earth = 1.08262668e-3
	// J3Earth is Earth's third zonal harmonic coefficient.
	J3Earth = -2.53265648e-6
	// J4Earth is Earth's fourth zonal harmonic coefficient.
	J4Earth = -1.61962159e-6
	// OmegaEarth is Earth's sidereal rotation rate in rad/s.
	OmegaEarth = 7.2921159e-5
	// AU is one astronomical unit in kilometers.
	AU = 149597870.7
	// MuSun is the Sun's gravitational parameter in km^3/s^2.
	MuSun = 1.32712442018e11
	// MuMoon is the Moon's gravitational parameter in km^3/s^2.
	MuMoon = 4902.800066
	// SolarConstant is the solar flux at 1 AU in W/m^2.
	SolarConstant = 1367.0
	// SpeedOfLight is c in m/s.
	SpeedOfLight = 299792458.0

	// WGS84A is the WGS84 semi-major axis in kilometers.
	WGS84A = 6378.137
	// WGS84F is the WGS84 flattening.
	WGS84F = 1.0 / 298.257223563

	// ExponentialAtmosphereRho0 is the reference density for the
	// exponential drag model, in kg/m^3.
	ExponentialAtmosphereRho0 = 1.225
	// ExponentialAtmosphereScaleHeight is H in the exponential drag
	// model, in km.
	ExponentialAtmosphereScaleHeight = 8.5
	// StandardGravity is g0, used to convert thrust/Isp to fuel rate.
	StandardGravity = 9.80665
)
