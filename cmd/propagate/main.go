// Command propagate integrates a circular orbit forward under a chosen
// force model and prints its osculating elements at each step, a small
// CLI exercising NumericalPropagator/ForceModel end to end. Grounded on
// the teacher's cmd/ convention of small, single-scenario demo mains.
package main

import (
	"flag"
	"fmt"
	"os"

	astro "github.com/skyforge-labs/astrocore"
)

func main() {
	altitude := flag.Float64("altitude", 400, "circular orbit altitude above Earth, km")
	inclination := flag.Float64("inclination", 51.6, "orbit inclination, degrees")
	durationHours := flag.Float64("hours", 2, "propagation duration, hours")
	stepSeconds := flag.Float64("step", 10, "integrator step, seconds")
	flag.Parse()

	oe := astro.OrbitalElements{
		A:      astro.REarth + *altitude,
		E:      0,
		I:      astro.Deg2rad(*inclination),
		Origin: astro.Earth,
	}
	s0 := astro.ElementsToState(oe)

	drag := astro.DragConfig{Cd: 2.2, AreaM2: 10, MassKg: 500}
	fm := astro.LEOForceModel(drag)

	prop := astro.NumericalPropagator{Forces: fm, Integrator: astro.RK4Integrator{}, Step: *stepSeconds}
	states, err := astro.PropagateSeries(prop, s0, *stepSeconds, *durationHours*3600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "propagate: %v\n", err)
		os.Exit(1)
	}

	if err := astro.ExportCSV(os.Stdout, astro.Earth, states); err != nil {
		fmt.Fprintf(os.Stderr, "propagate: export failed: %v\n", err)
		os.Exit(1)
	}
}
