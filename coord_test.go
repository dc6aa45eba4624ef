package astro

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestECIECEFRoundTrip(t *testing.T) {
	r := []float64{7000, 1000, 500}
	gmst := Deg2rad(37.5)
	ecef := ECI2ECEF(r, gmst)
	back := ECEF2ECI(ecef, gmst)
	for i := range r {
		if !floats.EqualWithinAbs(r[i], back[i], 1e-9) {
			t.Errorf("component %d: got %f want %f", i, back[i], r[i])
		}
	}
}

func TestGeodeticRoundTrip(t *testing.T) {
	lat := Deg2rad(34.2)
	lon := Deg2rad(-118.3)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	alt := 0.1 // km

	ecef := GeodeticToECEF(lat, lon, alt)
	backLat, backLon, backAlt := ECEFToGeodetic(ecef)

	if !floats.EqualWithinAbs(lat, backLat, 1e-6) {
		t.Errorf("lat = %f, want %f", backLat, lat)
	}
	if !floats.EqualWithinAbs(lon, backLon, 1e-6) {
		t.Errorf("lon = %f, want %f", backLon, lon)
	}
	if !floats.EqualWithinAbs(alt, backAlt, 1e-4) {
		t.Errorf("alt = %f, want %f", backAlt, alt)
	}
}

func TestGMSTWithinRange(t *testing.T) {
	g := GMST(time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC))
	if g < 0 || g >= 2*math.Pi {
		t.Errorf("GMST = %f, want within [0, 2pi)", g)
	}
}

func TestLVLHFrameOrthonormal(t *testing.T) {
	s := StateVector{Position: [3]float64{7000, 0, 0}, Velocity: [3]float64{0, 7.5, 0}}
	radial, along, cross_ := LVLHFrame(s)

	if !floats.EqualWithinAbs(norm(radial[:]), 1, 1e-9) {
		t.Errorf("radial not unit: %f", norm(radial[:]))
	}
	if !floats.EqualWithinAbs(norm(along[:]), 1, 1e-9) {
		t.Errorf("along-track not unit: %f", norm(along[:]))
	}
	if !floats.EqualWithinAbs(norm(cross_[:]), 1, 1e-9) {
		t.Errorf("cross-track not unit: %f", norm(cross_[:]))
	}
	if !floats.EqualWithinAbs(dot(radial[:], along[:]), 0, 1e-9) {
		t.Errorf("radial and along-track should be orthogonal")
	}
}

func TestGreatCircleDistanceZeroForSamePoint(t *testing.T) {
	d := GreatCircleDistance(Deg2rad(10), Deg2rad(20), Deg2rad(10), Deg2rad(20), REarth)
	if d > 1e-6 {
		t.Errorf("distance between identical points should be ~0, got %f", d)
	}
}
