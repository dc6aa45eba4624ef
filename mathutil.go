package astro

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// norm returns the Euclidean norm of a 3-vector.
func norm(v []float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// unit returns the unit vector of a, or the zero vector if a is ~0.
func unit(a []float64) []float64 {
	n := norm(a)
	if scalar.EqualWithinAbs(n, 0, 1e-12) {
		return []float64{0, 0, 0}
	}
	b := make([]float64, len(a))
	for i, val := range a {
		b[i] = val / n
	}
	return b
}

// sign returns the sign of v, treating ~0 as positive.
func sign(v float64) float64 {
	if scalar.EqualWithinAbs(v, 0, 1e-12) {
		return 1
	}
	return v / math.Abs(v)
}

// dot performs the inner product via gonum's mat package (BLAS-backed), matching the teacher's
// preference for routing linear algebra through gonum rather than hand
// loops.
func dot(a, b []float64) float64 {
	return mat.Dot(mat.NewVecDense(len(a), a), mat.NewVecDense(len(b), b))
}

// cross performs the 3-vector cross product a x b.
func cross(a, b []float64) []float64 {
	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func addVec(a, b []float64) []float64 {
	return []float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func subVec(a, b []float64) []float64 {
	return []float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scaleVec(a []float64, s float64) []float64 {
	return []float64{a[0] * s, a[1] * s, a[2] * s}
}

// clampAcos clamps x to [-1, 1] before calling math.Acos, per the
// solvers' universal requirement to never let rounding push an acos
// argument out of domain.
func clampAcos(x float64) float64 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return math.Acos(x)
}

// normalizeAngle reduces a to [0, 2*pi).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Deg2rad converts degrees to radians, matching the teacher's convention
// of normalizing to a positive angle in [0, 2*pi).
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return normalizeAngle(a * math.Pi / 180)
}

// Rad2deg converts radians to degrees in [0, 360).
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	deg := a * 180 / math.Pi
	return math.Mod(deg, 360)
}

// Cartesian2Spherical returns (r, theta, phi) with theta the polar angle
// from +z and phi the azimuth from +x, matching the teacher's
// Cartesian2Spherical in math.go.
func Cartesian2Spherical(a []float64) []float64 {
	r := norm(a)
	if r == 0 {
		return []float64{0, 0, 0}
	}
	return []float64{r, math.Acos(a[2] / r), math.Atan2(a[1], a[0])}
}

// Spherical2Cartesian is the inverse of Cartesian2Spherical.
func Spherical2Cartesian(a []float64) []float64 {
	sTheta, cTheta := math.Sincos(a[1])
	sPhi, cPhi := math.Sincos(a[2])
	return []float64{a[0] * sTheta * cPhi, a[0] * sTheta * sPhi, a[0] * cTheta}
}
