// Command ftracker runs the canonical sample packages through the dispatcher
// and prints one summary line per workout.
package main

import (
	"fmt"
	"log"

	"example.com/ftracker/internal/domain"
)

type sensorPackage struct {
	tag      string
	readings []float64
}

func main() {
	packages := []sensorPackage{
		{domain.TagSwimming, []float64{720, 1, 80, 25, 40}},
		{domain.TagRunning, []float64{15000, 1, 75}},
		{domain.TagWalking, []float64{9000, 1, 75, 180}},
	}

	for _, pkg := range packages {
		workout, err := domain.ReadPackage(pkg.tag, pkg.readings)
		if err != nil {
			// One bad package must not stop the batch.
			log.Printf("skipping package %q: %v", pkg.tag, err)
			continue
		}
		fmt.Println(domain.Summarize(workout))
	}
}
