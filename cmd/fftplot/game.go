package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/gomath3d"
)

const (
	screenWidth  = 1024
	screenHeight = 720
)

type Game struct {
	samples int
	freq    float64
	noise   float64
	drift   bool
	t       float64

	rand  *gomath3d.Randomizer
	field *gomath3d.NoiseField

	signal   []float32
	spectrum []float32
	restored []float32

	panels [3]panel
}

func NewGame(samples int, freq, noise float64, seed uint64) (*Game, error) {
	if !gomath3d.IsPowerOfTwo(samples) {
		return nil, fmt.Errorf("sample count %d: %w", samples, gomath3d.ErrPrecondition)
	}
	g := &Game{
		samples: samples,
		freq:    freq,
		noise:   noise,
		drift:   true,
		rand:    gomath3d.NewRandomizer(seed),
		field:   gomath3d.NewNoiseField(int64(seed)),
	}

	h := float32(screenHeight) / 3
	g.panels = [3]panel{
		{top: 0, height: h, label: "signal", clr: color.RGBA{R: 255, G: 200, B: 0, A: 255}},
		{top: h, height: h, label: "spectrum |X[k]|, k < N/2", clr: color.RGBA{R: 0, G: 220, B: 255, A: 255}},
		{top: 2 * h, height: h, label: "reverse FFT, renormalized", clr: color.RGBA{R: 120, G: 255, B: 120, A: 255}},
	}

	log.Printf("Plotting %d samples at frequency %.1f", samples, freq)
	return g, g.transform()
}

// transform synthesizes the current signal and runs it forward and back.
func (g *Game) transform() error {
	n := g.samples
	data := make([]float32, 2*n)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		theta := step * float64(i)
		v := math.Cos(theta*g.freq) + 0.7*math.Cos(theta*g.freq*3)
		if g.noise > 0 {
			v += g.rand.BoxMuller(0, g.noise)
		}
		if g.drift {
			v += g.field.Sample2D(float64(i)/float64(n)*4, g.t)
		}
		data[2*i] = float32(v)
	}

	g.signal = realParts(data)

	if err := gomath3d.FFT(data, gomath3d.Forward); err != nil {
		return err
	}
	g.spectrum = gomath3d.Magnitudes(data)[:n/2]

	if err := gomath3d.FFT(data, gomath3d.Reverse); err != nil {
		return err
	}
	gomath3d.Renormalize(data)
	g.restored = realParts(data)
	return nil
}

func realParts(data []float32) []float32 {
	out := make([]float32, len(data)/2)
	for i := range out {
		out[i] = data[2*i]
	}
	return out
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) && g.freq < float64(g.samples/8) {
		g.freq++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.freq > 1 {
		g.freq--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if g.noise > 0 {
			g.noise = 0
		} else {
			g.noise = 0.5
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.drift = !g.drift
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rand.Reset()
	}

	g.t += 0.01
	return g.transform()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	limit := float32(3)
	g.panels[0].plot(screen, g.signal, limit)
	g.panels[2].plot(screen, g.restored, limit)

	peak := float32(0)
	for _, m := range g.spectrum {
		peak = max(peak, m)
	}
	// The spectrum is non-negative; mirror it so it fills the panel.
	centered := make([]float32, len(g.spectrum))
	for i, m := range g.spectrum {
		centered[i] = 2*m - peak
	}
	g.panels[1].plot(screen, centered, peak)

	for _, p := range g.panels {
		ebitenutil.DebugPrintAt(screen, p.label, 4, int(p.top)+2)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\nfreq %.0f (up/down)  noise %.1f (n)  drift %v (d)  FPS: %0.2f",
		g.freq, g.noise, g.drift, ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
