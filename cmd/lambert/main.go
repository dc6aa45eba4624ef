// Command lambert solves a single Lambert boundary value problem
// between two radii separated by a given angle and time of flight,
// printing the resulting boundary velocities.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	astro "github.com/skyforge-labs/astrocore"
)

func main() {
	r1km := flag.Float64("r1", 6678, "departure radius, km")
	r2km := flag.Float64("r2", 42164, "arrival radius, km")
	angleDeg := flag.Float64("angle", 90, "transfer angle, degrees")
	tofHours := flag.Float64("hours", 5, "time of flight, hours")
	flag.Parse()

	theta := astro.Deg2rad(*angleDeg)
	sinTheta, cosTheta := math.Sincos(theta)
	r1 := [3]float64{*r1km, 0, 0}
	r2 := [3]float64{*r2km * cosTheta, *r2km * sinTheta, 0}

	tof := time.Duration(*tofHours * float64(time.Hour))
	sol := astro.SolveLambert(r1, r2, tof, astro.TransferAuto, astro.Earth)

	if !sol.Feasible {
		fmt.Fprintln(os.Stderr, "lambert: no feasible solution for the given geometry")
		os.Exit(1)
	}
	fmt.Printf("V1 = %v km/s\nV2 = %v km/s\n", sol.V1, sol.V2)
}
