package gomath3d

import (
	"fmt"

	"github.com/dgravesa/go-parallel/parallel"
)

// Batches shorter than this are transformed on the calling goroutine.
const parallelThreshold = 4096

// Points per goroutine work item once a batch is split.
const batchChunk = 1024

// TransformPoints writes m applied to every point of src (w = 1) into dst.
// dst may alias src. dst shorter than src returns ErrPrecondition without
// writing anything.
func (m Matrix4) TransformPoints(dst, src []Vec3) error {
	if len(dst) < len(src) {
		return fmt.Errorf("transform %d points into %d slots: %w", len(src), len(dst), ErrPrecondition)
	}
	forEachChunk(len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = m.MulPoint(src[i])
		}
	})
	return nil
}

// TransformDirections is TransformPoints with w = 0: translation is
// ignored, making it suitable for normals of rigid transforms.
func (m Matrix4) TransformDirections(dst, src []Vec3) error {
	if len(dst) < len(src) {
		return fmt.Errorf("transform %d directions into %d slots: %w", len(src), len(dst), ErrPrecondition)
	}
	forEachChunk(len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = m.MulDirection(src[i])
		}
	})
	return nil
}

// forEachChunk calls fn over [0, n) in disjoint ranges, in parallel when n
// is large. Each index is visited exactly once.
func forEachChunk(n int, fn func(lo, hi int)) {
	if n < parallelThreshold {
		fn(0, n)
		return
	}
	chunks := (n + batchChunk - 1) / batchChunk
	parallel.For(chunks, func(c, _ int) {
		lo := c * batchChunk
		hi := lo + batchChunk
		if hi > n {
			hi = n
		}
		fn(lo, hi)
	})
}
