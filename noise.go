package gomath3d

import perlin "github.com/aquilax/go-perlin"

const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
)

// NoiseField is smooth Perlin noise: nearby inputs give nearby outputs,
// unlike the independent samples of Randomizer. It is used for slow drift
// on top of a synthesized signal.
type NoiseField struct {
	p *perlin.Perlin
}

func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{p: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)}
}

func (f *NoiseField) Sample1D(x float64) float64 {
	return f.p.Noise1D(x)
}

func (f *NoiseField) Sample2D(x, y float64) float64 {
	return f.p.Noise2D(x, y)
}

func (f *NoiseField) Sample3D(p Vec3) float64 {
	return f.p.Noise3D(p.X, p.Y, p.Z)
}
