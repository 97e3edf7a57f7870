package scheme

import (
	"fmt"

	"github.com/katalvlaran/gridode/grid"
)

// TwoStep — second-order two-step (leapfrog-family) recurrence:
//
//	y_j = 2h·g(x_{j−1}) + y_{j−2}
//
// Requires y_{j−2} and at least two known conditions (the scheme cannot
// start itself; the caller seeds y_1, typically from the exact solution).
// Global error is O(h²).
type TwoStep struct {
	rhs Func
}

// NewTwoStep builds the scheme for the right-hand side g.
func NewTwoStep(rhs Func) TwoStep {
	return TwoStep{rhs: rhs}
}

// Lookback reports the two-point window of the recurrence.
func (s TwoStep) Lookback() int { return 2 }

// Step computes y_j = 2h·g(x_{j−1}) + y_{j−2}.
// Returns ErrMissingCondition if fewer than two conditions are known or
// y_{j−2} is absent, ErrNilFunc if the scheme has no right-hand side.
func (s TwoStep) Step(g *grid.Grid, c Conditions, j int) (float64, error) {
	if s.rhs == nil {
		return 0, ErrNilFunc
	}
	if len(c) < 2 {
		return 0, fmt.Errorf("%w: two-step recurrence needs at least two known values", ErrMissingCondition)
	}
	back, ok := c[j-2]
	if !ok {
		return 0, fmt.Errorf("%w: need y[%d]", ErrMissingCondition, j-2)
	}
	x, err := g.At(j - 1)
	if err != nil {
		return 0, err
	}
	return 2*g.Step()*s.rhs(x) + back, nil
}
