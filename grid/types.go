package grid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrInvalidInterval indicates the interval end does not exceed the start,
	// or an endpoint is NaN/Inf.
	ErrInvalidInterval = errors.New("grid: interval end must exceed start")

	// ErrTooFewPoints indicates a requested point count below two.
	ErrTooFewPoints = errors.New("grid: at least two points required")

	// ErrIndexOutOfRange indicates a positional access outside [0, Size).
	ErrIndexOutOfRange = errors.New("grid: index out of range")

	// ErrNonPositiveStep indicates a nominal step that is zero, negative or NaN.
	ErrNonPositiveStep = errors.New("grid: nominal step must be positive")

	// ErrStepTooLarge indicates a nominal step exceeding the interval length.
	ErrStepTooLarge = errors.New("grid: nominal step exceeds interval length")
)
