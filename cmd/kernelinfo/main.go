// Command kernelinfo prints the detected CPU capability and the variant
// each distance kernel dispatches to on this host. Useful when deployment
// behaves differently across machines and you need to see which instruction
// set actually got picked.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Micky774/kernex/pkg/core/cpufeat"
	"github.com/Micky774/kernex/pkg/core/distance"
)

func main() {
	tuningPath := flag.String("tuning", "", "Path to a YAML tuning file applied before printing (e.g. tuning.yaml)")
	flag.Parse()

	if *tuningPath != "" {
		if err := distance.LoadTuningFile(*tuningPath); err != nil {
			log.Fatalf("Cannot load tuning file: %v", err)
		}
	}

	caps := cpufeat.Detect()
	fmt.Printf("host capability: %s\n", caps)
	fmt.Printf("best target:     %s\n\n", caps.Best())

	fmt.Printf("%-12s %-8s %-6s %s\n", "KERNEL", "TARGET", "LANES", "THRESHOLD")
	for _, op := range distance.Ops() {
		target, lanes := distance.Selection(op)
		fmt.Printf("%-12s %-8s %-6d %d\n", op, target, lanes, distance.DispatchThreshold(op))
	}
}
