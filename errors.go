package gomath3d

import "errors"

// Every kernel error wraps one of these, so callers test with errors.Is.
// A fallback value (zero vector, identity matrix, zero quaternion or an
// untouched buffer) is always returned alongside the error.
var (
	// ErrDegenerateInput reports an input with no usable direction or
	// magnitude: normalizing a zero vector, inverting a zero quaternion,
	// a look-at with eye == center.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrSingularMatrix reports a matrix whose determinant is within
	// SingularEpsilon of zero.
	ErrSingularMatrix = errors.New("singular matrix")

	// ErrPrecondition reports an argument outside a function's documented
	// domain, such as an FFT buffer whose sample count is not a power of two.
	ErrPrecondition = errors.New("precondition violated")
)

const (
	// SingularEpsilon is the determinant magnitude below which Inverse
	// gives up and returns the identity.
	SingularEpsilon = 1e-12

	// VerySmall is the length below which a vector has no direction.
	VerySmall = 1e-12
)
