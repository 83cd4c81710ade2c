package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	samples := flag.Int("samples", 512, "complex samples per transform, a power of two")
	freq := flag.Float64("freq", 2, "base frequency in cycles per window")
	noise := flag.Float64("noise", 0.5, "standard deviation of the Gaussian noise")
	seed := flag.Uint64("seed", 1, "seed for the noise generators")
	flag.Parse()

	game, err := NewGame(*samples, *freq, *noise, *seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("FFT")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
