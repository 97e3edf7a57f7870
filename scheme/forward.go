package scheme

import (
	"fmt"

	"github.com/katalvlaran/gridode/grid"
)

// ForwardDifference — first-order forward-difference (explicit Euler)
// recurrence:
//
//	y_j = g(x_{j−1})·h + y_{j−1}
//
// Requires exactly the one prior value y_{j−1}. Global error is O(h):
// halving the step halves the error.
type ForwardDifference struct {
	rhs Func
}

// NewForwardDifference builds the scheme for the right-hand side g.
func NewForwardDifference(rhs Func) ForwardDifference {
	return ForwardDifference{rhs: rhs}
}

// Lookback reports the one-point window of the recurrence.
func (s ForwardDifference) Lookback() int { return 1 }

// Step computes y_j = g(x_{j−1})·h + y_{j−1}.
// Returns ErrMissingCondition if y_{j−1} is absent, ErrNilFunc if the
// scheme was built without a right-hand side.
func (s ForwardDifference) Step(g *grid.Grid, c Conditions, j int) (float64, error) {
	if s.rhs == nil {
		return 0, ErrNilFunc
	}
	prev, ok := c[j-1]
	if !ok {
		return 0, fmt.Errorf("%w: need y[%d]", ErrMissingCondition, j-1)
	}
	x, err := g.At(j - 1)
	if err != nil {
		return 0, err
	}
	return s.rhs(x)*g.Step() + prev, nil
}
