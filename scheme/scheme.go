package scheme

import (
	"fmt"

	"github.com/katalvlaran/gridode/grid"
)

// Scheme computes the value of y at a grid index from previously known
// values. Implementations are stateless; all state lives in the grid and
// the condition table passed to Step.
type Scheme interface {
	// Lookback reports the minimum number of immediately preceding
	// values the recurrence depends on (0 for pointwise evaluation).
	Lookback() int

	// Step computes y at index j. The conditions must already contain
	// every prior value the recurrence needs; a missing one is rejected
	// with ErrMissingCondition. Step performs no shared-precondition
	// checks of its own — call Compute for the full contract.
	Step(g *grid.Grid, c Conditions, j int) (float64, error)
}

// Compute — guarded recurrence evaluation.
//
// Description:
//
//	Validates the shared preconditions of the recurrence contract and then
//	dispatches to the scheme's step function. Pure: no input is mutated.
//
// Preconditions:
//  1. s and g are non-nil.
//  2. c is a non-empty contiguous prefix of indices from 0.
//  3. j is strictly greater than the highest condition index
//     (recomputing a condition point is a caller error).
//  4. j is a valid grid index.
//
// Errors:
//   - ErrNilScheme, ErrNilGrid       — missing collaborators.
//   - ErrNoConditions, ErrConditionGap — malformed condition table.
//   - ErrPointCovered                — j inside the condition window.
//   - grid.ErrIndexOutOfRange        — j outside [0, Size).
//   - ErrMissingCondition, ErrNilFunc — surfaced by the scheme's Step.
//
// Complexity: O(len(c)) validation + O(1) step.
func Compute(s Scheme, g *grid.Grid, c Conditions, j int) (float64, error) {
	if s == nil {
		return 0, ErrNilScheme
	}
	if g == nil {
		return 0, ErrNilGrid
	}
	if err := c.validate(); err != nil {
		return 0, err
	}
	if j <= c.MaxIndex() {
		return 0, fmt.Errorf("%w: index %d, conditions cover 0..%d", ErrPointCovered, j, c.MaxIndex())
	}
	if _, err := g.At(j); err != nil {
		return 0, err
	}
	return s.Step(g, c, j)
}
