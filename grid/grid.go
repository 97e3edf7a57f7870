package grid

import (
	"fmt"
	"iter"
	"math"
)

// Grid is an immutable uniform discretization of [start, end] into size
// points with step = (end−start)/(size−1). Construct with New; the zero
// value is not usable.
type Grid struct {
	start, end float64
	step       float64
	size       int
}

// New constructs a Grid over [a, b] with n points.
// Returns ErrInvalidInterval if b ≤ a or an endpoint is NaN/Inf,
// ErrTooFewPoints if n < 2. The step is derived once and never recomputed.
// Complexity: O(1).
func New(a, b float64, n int) (*Grid, error) {
	if !isFinite(a) || !isFinite(b) || b <= a {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, a, b)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}
	return &Grid{
		start: a,
		end:   b,
		step:  (b - a) / float64(n-1),
		size:  n,
	}, nil
}

// At returns the coordinate of point j: start + j·step.
// Returns ErrIndexOutOfRange for j outside [0, Size).
// Complexity: O(1).
func (g *Grid) At(j int) (float64, error) {
	if j < 0 || j >= g.size {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, j, g.size)
	}
	return g.start + float64(j)*g.step, nil
}

// Size returns the number of grid points.
func (g *Grid) Size() int { return g.size }

// Step returns the distance between adjacent points.
func (g *Grid) Step() float64 { return g.step }

// Start returns the left endpoint a.
func (g *Grid) Start() float64 { return g.start }

// End returns the right endpoint b.
func (g *Grid) End() float64 { return g.end }

// Points yields all (index, coordinate) pairs in increasing index order,
// starting at (0, Start). The sequence is finite and restartable: every
// range over it obtains a fresh, independent cursor.
// Complexity: O(Size) per traversal.
func (g *Grid) Points() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for j := 0; j < g.size; j++ {
			if !yield(j, g.start+float64(j)*g.step) {
				return
			}
		}
	}
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
