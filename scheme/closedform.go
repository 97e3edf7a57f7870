package scheme

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridode/grid"
)

// ClosedForm evaluates an exact solution pointwise under the recurrence
// contract. It never follows the prior-value chain: each Step is a direct
// evaluation y(x_j) anchored at the fixed initial condition
// (x0 = grid start, y0 = conditions[0]). Sharing the contract lets the
// evaluator run exact and approximate schemes through the same machinery.
type ClosedForm struct {
	sol SolutionFunc
}

// NewClosedForm builds the pointwise scheme for a closed-form solution.
func NewClosedForm(sol SolutionFunc) ClosedForm {
	return ClosedForm{sol: sol}
}

// Lookback is zero: only the anchor at index 0 is consulted.
func (s ClosedForm) Lookback() int { return 0 }

// Step evaluates the solution at x_j anchored at (Start, y[0]).
// Returns ErrMissingCondition if index 0 is absent, ErrNilFunc if the
// scheme has no solution function.
func (s ClosedForm) Step(g *grid.Grid, c Conditions, j int) (float64, error) {
	if s.sol == nil {
		return 0, ErrNilFunc
	}
	y0, ok := c[0]
	if !ok {
		return 0, fmt.Errorf("%w: need the initial value y[0]", ErrMissingCondition)
	}
	x, err := g.At(j)
	if err != nil {
		return 0, err
	}
	return s.sol(x, g.Start(), y0), nil
}

// ExpCos is the reference right-hand side g(x) = eˣ·cos x.
func ExpCos(x float64) float64 {
	return math.Exp(x) * math.Cos(x)
}

// ExpCosSolution is the closed-form solution of y' = eˣ·cos x anchored
// at (x0, y0):
//
//	y(x) = ½(−e^{x0}·sin x0 − e^{x0}·cos x0 + 2y0 + eˣ·sin x + eˣ·cos x)
//
// At x = x0 the exponential terms cancel exactly and the value is y0.
func ExpCosSolution(x, x0, y0 float64) float64 {
	anchor := math.Exp(x0)
	return 0.5 * (-anchor*math.Sin(x0) - anchor*math.Cos(x0) + 2*y0 +
		math.Exp(x)*math.Sin(x) + math.Exp(x)*math.Cos(x))
}
