package gomath3d

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Direction selects the sign of the FFT twiddle angle.
type Direction int

const (
	// Forward computes X[k] = sum x[j] exp(-2 pi i jk/N).
	Forward Direction = iota
	// Reverse flips the twiddle sign. The result is N times the inverse
	// transform; call Renormalize to divide it out.
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// IsPowerOfTwo reports whether n is 1, 2, 4, 8, ...
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// FFT transforms data in place with an iterative radix-2 Cooley-Tukey
// FFT. data interleaves N complex samples as real, imaginary pairs, so
// len(data) is 2N, and N must be a power of two. Any other length returns
// ErrPrecondition and leaves data untouched.
//
// Twiddle factors are computed in float64 whatever the element type.
func FFT[T constraints.Float](data []T, dir Direction) error {
	if len(data)%2 != 0 {
		return fmt.Errorf("fft buffer of odd length %d: %w", len(data), ErrPrecondition)
	}
	n := len(data) / 2
	if !IsPowerOfTwo(n) {
		return fmt.Errorf("fft of %d samples, not a power of two: %w", n, ErrPrecondition)
	}
	if dir != Forward && dir != Reverse {
		return fmt.Errorf("fft direction %v: %w", dir, ErrPrecondition)
	}

	bitReverse(data, n)

	sign := -1.0
	if dir == Reverse {
		sign = 1.0
	}

	twiddles := make([]float64, n) // cos, sin pairs for half of the largest stage
	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		step := sign * 2 * math.Pi / float64(size)
		for k := 0; k < half; k++ {
			twiddles[2*k+1], twiddles[2*k] = math.Sincos(step * float64(k))
		}

		for start := 0; start < n; start += size {
			for k := 0; k < half; k++ {
				wr, wi := twiddles[2*k], twiddles[2*k+1]
				a := 2 * (start + k)
				b := a + 2*half

				br, bi := float64(data[b]), float64(data[b+1])
				tr := wr*br - wi*bi
				ti := wr*bi + wi*br

				ar, ai := float64(data[a]), float64(data[a+1])
				data[b] = T(ar - tr)
				data[b+1] = T(ai - ti)
				data[a] = T(ar + tr)
				data[a+1] = T(ai + ti)
			}
		}
	}
	return nil
}

// bitReverse swaps complex sample i with the sample at the bit-reversed
// index of i.
func bitReverse[T constraints.Float](data []T, n int) {
	j := 0
	for i := 0; i < n; i++ {
		if i < j {
			data[2*i], data[2*j] = data[2*j], data[2*i]
			data[2*i+1], data[2*j+1] = data[2*j+1], data[2*i+1]
		}
		bit := n >> 1
		for bit > 0 && j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j |= bit
	}
}

// Renormalize divides every element by N, the complex sample count, turning
// the output of a Reverse FFT into the inverse transform.
func Renormalize[T constraints.Float](data []T) {
	n := len(data) / 2
	if n == 0 {
		return
	}
	scale := 1 / float64(n)
	for i := range data {
		data[i] = T(float64(data[i]) * scale)
	}
}

// Magnitudes returns the modulus of every complex sample in data.
func Magnitudes[T constraints.Float](data []T) []T {
	out := make([]T, len(data)/2)
	for i := range out {
		re, im := float64(data[2*i]), float64(data[2*i+1])
		out[i] = T(math.Hypot(re, im))
	}
	return out
}
