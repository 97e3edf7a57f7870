package scheme

import (
	"errors"

	"github.com/katalvlaran/gridode/grid"
)

// Point is one value produced by a forward walk: the grid index, its
// coordinate, and the computed y.
type Point struct {
	Index int
	X, Y  float64
}

// Iterator walks the grid forward from the last known condition, one
// point per Next call. Each produced value is appended to a private copy
// of the caller's conditions so later values can depend on earlier ones.
//
// An Iterator is stateful and single-pass; obtain a new one for every
// traversal. The caller's condition table is never mutated.
type Iterator struct {
	scheme Scheme
	grid   *grid.Grid
	known  Conditions
	next   int
}

// NewIterator validates the collaborators and positions the walk just
// past the highest condition index.
// Errors: ErrNilScheme, ErrNilGrid, ErrNoConditions, ErrConditionGap.
func NewIterator(s Scheme, g *grid.Grid, c Conditions) (*Iterator, error) {
	if s == nil {
		return nil, ErrNilScheme
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &Iterator{
		scheme: s,
		grid:   g,
		known:  c.Clone(),
		next:   c.MaxIndex() + 1,
	}, nil
}

// Remaining reports how many points the iterator can still produce.
func (it *Iterator) Remaining() int {
	if it.next >= it.grid.Size() {
		return 0
	}
	return it.grid.Size() - it.next
}

// Next computes the value at the next grid index, records it in the
// private condition table and advances. Once the grid is covered, every
// further call returns ErrExhausted.
func (it *Iterator) Next() (Point, error) {
	if it.next >= it.grid.Size() {
		return Point{}, ErrExhausted
	}
	j := it.next
	y, err := it.scheme.Step(it.grid, it.known, j)
	if err != nil {
		return Point{}, err
	}
	x, err := it.grid.At(j)
	if err != nil {
		return Point{}, err
	}
	it.known[j] = y
	it.next++
	return Point{Index: j, X: x, Y: y}, nil
}

// Trace runs a full forward pass of s over g and returns the value at
// every grid index, seeded condition values included.
// Errors mirror NewIterator and the scheme's Step.
func Trace(s Scheme, g *grid.Grid, c Conditions) ([]float64, error) {
	it, err := NewIterator(s, g, c)
	if err != nil {
		return nil, err
	}
	out := make([]float64, g.Size())
	for j := 0; j <= c.MaxIndex() && j < g.Size(); j++ {
		out[j] = c[j]
	}
	for {
		p, err := it.Next()
		if errors.Is(err, ErrExhausted) {
			break
		}
		if err != nil {
			return nil, err
		}
		out[p.Index] = p.Y
	}
	return out, nil
}
