package main

import (
	"flag"
	"log"
	"os"
)

type check struct {
	name string
	run  func() error
}

func main() {
	seed := flag.Uint64("seed", 1, "randomizer seed for the FFT and Box-Muller checks")
	flag.Parse()

	log.SetFlags(0)

	checks := []check{
		{"inverse of a rigid transform", checkInverse},
		{"inverse of a singular matrix", checkSingularInverse},
		{"determinant", checkDeterminant},
		{"look-at", checkLookAt},
		{"rotation about an arbitrary axis", checkRotation},
		{"rotation is orthogonal", checkOrthogonal},
		{"matrix product", checkMultiply},
		{"viewport NDC", checkViewport},
		{"un-ortho", checkUnOrtho},
		{"quaternion rotation", checkQuaternion},
		{"slerp", checkSlerp},
		{"euler round trip", checkEuler},
		{"hash", checkHash},
		{"fft round trip", func() error { return checkFFT(*seed) }},
		{"box-muller moments", func() error { return checkBoxMuller(*seed) }},
		{"plane", checkPlane},
	}

	failed := 0
	for _, c := range checks {
		if err := c.run(); err != nil {
			log.Printf("FAILED %s: %v", c.name, err)
			failed++
			continue
		}
		log.Printf("PASSED %s", c.name)
	}

	if failed > 0 {
		log.Printf("%d of %d checks failed", failed, len(checks))
		os.Exit(1)
	}
	log.Printf("all %d checks passed", len(checks))
}
