package astro

import "fmt"

// ValidationTestCase integrates an initial state forward and compares it
// to an expected state, computing the position/velocity/energy/angular-
// momentum error metrics spec 8's validation harness requires.
// Grounded on the teacher's table-driven _test.go idiom (orbit_test.go's
// floats.EqualWithinAbs assertions against textbook numbers), lifted
// into a reusable, named type rather than inline test assertions so the
// same harness can run outside `go test` (e.g. from a cmd/ validation
// binary).
type ValidationTestCase struct {
	Name      string
	Origin    CelestialObject
	Initial   StateVector
	Expected  StateVector
	Propagate func(s StateVector) (StateVector, error)
}

// ValidationResult reports the error metrics for one ValidationTestCase
// run.
type ValidationResult struct {
	Name             string
	PositionError    float64 // km
	VelocityError    float64 // km/s
	EnergyError      float64 // relative
	AngMomentumError float64 // relative
	Err              error
}

// Run executes the test case and computes its error metrics.
func (tc ValidationTestCase) Run() ValidationResult {
	got, err := tc.Propagate(tc.Initial)
	if err != nil {
		return ValidationResult{Name: tc.Name, Err: err}
	}

	posErr := norm(subVec(got.Position[:], tc.Expected.Position[:]))
	velErr := norm(subVec(got.Velocity[:], tc.Expected.Velocity[:]))

	energyGot := specificEnergy(got, tc.Origin)
	energyWant := specificEnergy(tc.Expected, tc.Origin)
	var energyErr float64
	if energyWant != 0 {
		energyErr = (energyGot - energyWant) / energyWant
	}

	hGot := norm(cross(got.Position[:], got.Velocity[:]))
	hWant := norm(cross(tc.Expected.Position[:], tc.Expected.Velocity[:]))
	var hErr float64
	if hWant != 0 {
		hErr = (hGot - hWant) / hWant
	}

	return ValidationResult{
		Name:             tc.Name,
		PositionError:    posErr,
		VelocityError:    velErr,
		EnergyError:      energyErr,
		AngMomentumError: hErr,
	}
}

func specificEnergy(s StateVector, origin CelestialObject) float64 {
	v := norm(s.Velocity[:])
	r := norm(s.Position[:])
	return v*v/2 - origin.Mu/r
}

// Pass reports whether every error metric in r is within tol (position
// in km, velocity in km/s, energy/angular-momentum as relative error).
func (r ValidationResult) Pass(posTol, velTol, relTol float64) bool {
	if r.Err != nil {
		return false
	}
	return r.PositionError <= posTol && r.VelocityError <= velTol &&
		absFloat(r.EnergyError) <= relTol && absFloat(r.AngMomentumError) <= relTol
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// String implements a terse pass/fail report line, matching the
// teacher's habit of short, information-dense %f-formatted String
// methods (e.g. Station.String in station.go).
func (r ValidationResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: ERROR %v", r.Name, r.Err)
	}
	return fmt.Sprintf("%s: dPos=%.3e km dVel=%.3e km/s dE=%.3e dH=%.3e", r.Name, r.PositionError, r.VelocityError, r.EnergyError, r.AngMomentumError)
}
