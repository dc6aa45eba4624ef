// Command maneuver prints the delta-v and time of flight for a Hohmann
// transfer between two circular orbits around Earth.
package main

import (
	"flag"
	"fmt"

	astro "github.com/skyforge-labs/astrocore"
)

func main() {
	rI := flag.Float64("r1", 6678, "departure circular orbit radius, km")
	rF := flag.Float64("r2", 42164, "arrival circular orbit radius, km")
	flag.Parse()

	plan := astro.HohmannTransfer(*rI, *rF, astro.Earth)
	fmt.Printf("Hohmann transfer %g km -> %g km\n", *rI, *rF)
	fmt.Printf("  delta-v 1: %.4f km/s\n", plan.DeltaV[0][0])
	fmt.Printf("  delta-v 2: %.4f km/s\n", plan.DeltaV[1][0])
	fmt.Printf("  total delta-v: %.4f km/s\n", plan.TotalDeltaV)
	fmt.Printf("  time of flight: %.2f hours\n", plan.TimeOfFlight/3600)
}
