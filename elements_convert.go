package astro

import "math"

// ElementsToState converts o to a Cartesian StateVector via the
// perifocal-frame rotation, grounded on the teacher's Orbit.RV
// (orbit.go), generalized to take an OrbitalElements value instead of
// reading cached struct fields.
func ElementsToState(o OrbitalElements) StateVector {
	p := o.SemiParameter()
	mu := o.Origin.Mu

	sinNu, cosNu := math.Sincos(o.Nu)
	rPF := []float64{p * cosNu / (1 + o.E*cosNu), p * sinNu / (1 + o.E*cosNu), 0}
	vPF := []float64{-math.Sqrt(mu/p) * sinNu, math.Sqrt(mu/p) * (o.E + cosNu), 0}

	rot := perifocalToInertial(o.RAAN, o.I, o.ArgP)
	r := matVec(rot, rPF)
	v := matVec(rot, vPF)

	return StateVector{
		Position: [3]float64{r[0], r[1], r[2]},
		Velocity: [3]float64{v[0], v[1], v[2]},
		Time:     o.Epoch,
	}
}

// perifocalToInertial returns the 3x3 direction cosine matrix rotating
// perifocal (PQW) coordinates into the inertial frame, the classical
// R3(-RAAN) R1(-i) R3(-argp) composition (Vallado eq. 2-24), grounded on
// the rotation composition the teacher applies inline in Orbit.RV.
func perifocalToInertial(raan, incl, argp float64) [3][3]float64 {
	sO, cO := math.Sincos(raan)
	si, ci := math.Sincos(incl)
	sw, cw := math.Sincos(argp)

	return [3][3]float64{
		{cO*cw - sO*sw*ci, -cO*sw - sO*cw*ci, sO * si},
		{sO*cw + cO*sw*ci, -sO*sw + cO*cw*ci, -cO * si},
		{sw * si, cw * si, ci},
	}
}

func matVec(m [3][3]float64, v []float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// StateToElements converts a Cartesian StateVector into OrbitalElements
// around origin, grounded on the teacher's Orbit.Elements (orbit.go):
// angular momentum and node vectors, Laplace's eccentricity vector,
// energy-based semi-major axis, atan2 for RAAN (and for ArgP of an
// equatorial orbit), and a clamped acos with a quadrant test for ArgP and
// Nu, with the degenerate-case substitutions spec 4.5/4.6 require when e
// or i collapse to zero.
func StateToElements(s StateVector, origin CelestialObject) OrbitalElements {
	mu := origin.Mu
	r := s.Position[:]
	v := s.Velocity[:]

	rNorm := norm(r)
	vNorm := norm(v)

	h := cross(r, v)
	hNorm := norm(h)

	nVec := cross([]float64{0, 0, 1}, h)
	nNorm := norm(nVec)

	rDotV := r[0]*v[0] + r[1]*v[1] + r[2]*v[2]
	eVec := make([]float64, 3)
	for i := 0; i < 3; i++ {
		eVec[i] = ((vNorm*vNorm-mu/rNorm)*r[i] - rDotV*v[i]) / mu
	}
	e := norm(eVec)

	energy := vNorm*vNorm/2 - mu/rNorm
	var a float64
	if math.Abs(e-1) > eccentricityEpsilon {
		a = -mu / (2 * energy)
	} else {
		a = hNorm * hNorm / mu // parabolic: semi-parameter stands in for a
	}

	i := clampAcos(h[2] / hNorm)

	var raan float64
	if nNorm > 1e-12 {
		raan = math.Atan2(nVec[1], nVec[0])
	}

	var argp float64
	if nNorm > 1e-12 && e > eccentricityEpsilon {
		cosArgp := (nVec[0]*eVec[0] + nVec[1]*eVec[1] + nVec[2]*eVec[2]) / (nNorm * e)
		argp = clampAcos(cosArgp)
		if eVec[2] < 0 {
			argp = 2*math.Pi - argp
		}
	} else if e > eccentricityEpsilon {
		// Elliptical, equatorial: the ascending node is undefined, so
		// argument of periapsis is measured from the x-axis directly.
		argp = math.Atan2(eVec[1], eVec[0])
	}

	var nu float64
	switch {
	case e > eccentricityEpsilon:
		cosNu := (eVec[0]*r[0] + eVec[1]*r[1] + eVec[2]*r[2]) / (e * rNorm)
		nu = clampAcos(cosNu)
		if rDotV < 0 {
			nu = 2*math.Pi - nu
		}
	case nNorm > 1e-12:
		// Circular, inclined: true anomaly is undefined, use the
		// argument of latitude in its place.
		cosU := (nVec[0]*r[0] + nVec[1]*r[1] + nVec[2]*r[2]) / (nNorm * rNorm)
		nu = clampAcos(cosU)
		if r[2] < 0 {
			nu = 2*math.Pi - nu
		}
	default:
		// Circular, equatorial: use the true longitude.
		cosL := r[0] / rNorm
		nu = clampAcos(cosL)
		if r[1] < 0 {
			nu = 2*math.Pi - nu
		}
	}

	return OrbitalElements{
		A:      a,
		E:      e,
		I:      normalizeAngle(i),
		RAAN:   normalizeAngle(raan),
		ArgP:   normalizeAngle(argp),
		Nu:     normalizeAngle(nu),
		Epoch:  s.Time,
		Origin: origin,
	}
}

// Radii2ae converts apoapsis/periapsis radii to (a, e), grounded on the
// teacher's Radii2ae (orbit.go).
func Radii2ae(rA, rP float64) (a, e float64) {
	a = (rA + rP) / 2
	e = (rA - rP) / (rA + rP)
	return a, e
}
