package gomath3d

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// HashCombine folds h into seed using the boost/glm hash_combine step.
func HashCombine(seed, h uint64) uint64 {
	h += 0x9e3779b9 + (seed << 6) + (seed >> 2)
	return seed ^ h
}

// HashFloat64 hashes the IEEE-754 bits of f with FNV-1a. -0 and +0 compare
// equal in Go so they hash the same.
func HashFloat64(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

// Hash is consistent with ==: equal vectors always hash equally. It is an
// exact-bits hash meant for deduplicating literal input data such as mesh
// vertices, not for grouping computed results.
func (v Vec3) Hash() uint64 {
	var seed uint64
	seed = HashCombine(seed, HashFloat64(v.X))
	seed = HashCombine(seed, HashFloat64(v.Y))
	seed = HashCombine(seed, HashFloat64(v.Z))
	return seed
}

func (v Vec4) Hash() uint64 {
	var seed uint64
	seed = HashCombine(seed, HashFloat64(v.X))
	seed = HashCombine(seed, HashFloat64(v.Y))
	seed = HashCombine(seed, HashFloat64(v.Z))
	seed = HashCombine(seed, HashFloat64(v.W))
	return seed
}
