package main

import (
	"fmt"
	"math"

	"github.com/smasonuk/gomath3d"
)

const (
	sampleCount = 512
	// Keep well under the Nyquist frequency of sampleCount/2.
	signalFreq = 2.0
)

// noisySignal is two cosines plus Gaussian noise, interleaved as real,
// imaginary pairs with the imaginary parts zero.
func noisySignal(r *gomath3d.Randomizer) []float32 {
	data := make([]float32, 2*sampleCount)
	step := 2 * math.Pi / sampleCount
	for i := 0; i < sampleCount; i++ {
		theta := step * float64(i)
		data[2*i] = float32(math.Cos(theta*signalFreq) + 0.7*math.Cos(theta*signalFreq*3) + r.BoxMuller(0, 0.5))
	}
	return data
}

func checkFFT(seed uint64) error {
	original := noisySignal(gomath3d.NewRandomizer(seed))

	data := make([]float32, len(original))
	copy(data, original)
	if err := gomath3d.FFT(data, gomath3d.Forward); err != nil {
		return err
	}

	mags := gomath3d.Magnitudes(data)
	if peak := strongestBin(mags[:sampleCount/2]); peak != int(signalFreq) {
		return fmt.Errorf("strongest bin is %d, want %d", peak, int(signalFreq))
	}

	if err := gomath3d.FFT(data, gomath3d.Reverse); err != nil {
		return err
	}
	gomath3d.Renormalize(data)

	for i := range data {
		if d := math.Abs(float64(data[i] - original[i])); d > 1e-4 {
			return fmt.Errorf("sample %d came back as %v, want %v", i/2, data[i], original[i])
		}
	}

	odd := make([]float32, 2*(sampleCount-1))
	if err := gomath3d.FFT(odd, gomath3d.Forward); err == nil {
		return fmt.Errorf("fft of %d samples did not fail", sampleCount-1)
	}
	return nil
}

// strongestBin skips bin 0, the DC offset.
func strongestBin(mags []float32) int {
	best := 1
	for i := 2; i < len(mags); i++ {
		if mags[i] > mags[best] {
			best = i
		}
	}
	return best
}

// checkBoxMuller draws sampleCount values with mean 0 and standard
// deviation 2 and checks the sample moments loosely.
func checkBoxMuller(seed uint64) error {
	r := gomath3d.NewRandomizer(seed)
	var sum, sumSq float64
	for i := 0; i < sampleCount; i++ {
		v := r.BoxMuller(0, 2)
		sum += v
		sumSq += v * v
	}
	mean := sum / sampleCount
	stddev := math.Sqrt(sumSq/sampleCount - mean*mean)
	if math.Abs(mean) > 0.5 || math.Abs(stddev-2) > 0.5 {
		return fmt.Errorf("mean %.3f, standard deviation %.3f", mean, stddev)
	}
	return nil
}
