// Package scheme defines condition tables, function types and sentinel
// errors for the recurrence subpackage of github.com/katalvlaran/gridode.
package scheme

import "errors"

// Sentinel errors for recurrence operations.
var (
	// ErrNilScheme is returned if a nil Scheme is passed.
	ErrNilScheme = errors.New("scheme: scheme is nil")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("scheme: grid is nil")

	// ErrNilFunc indicates a scheme constructed with a nil function.
	ErrNilFunc = errors.New("scheme: function is nil")

	// ErrNoConditions indicates an empty condition table.
	ErrNoConditions = errors.New("scheme: at least one condition required")

	// ErrConditionGap indicates condition indices that do not form a
	// contiguous prefix starting at 0.
	ErrConditionGap = errors.New("scheme: condition indices must form a contiguous prefix from 0")

	// ErrPointCovered indicates a request to recompute an index already
	// present in the conditions.
	ErrPointCovered = errors.New("scheme: index already covered by conditions")

	// ErrMissingCondition indicates a recurrence whose required prior
	// value is absent from the conditions.
	ErrMissingCondition = errors.New("scheme: required prior condition missing")

	// ErrExhausted signals a forward iteration that has already covered
	// the whole grid. It is a terminal state, distinct from every
	// invalid-request error above.
	ErrExhausted = errors.New("scheme: forward iteration exhausted")
)

// Func is the right-hand side g of the equation y' = g(x).
type Func func(x float64) float64

// SolutionFunc evaluates a closed-form solution at x, anchored at the
// initial condition (x0, y0).
type SolutionFunc func(x, x0, y0 float64) float64

// Conditions maps grid indices to already-known values of y.
// Valid tables hold a contiguous prefix of indices 0..k; schemes rely on
// that window to find the trailing prior values they need.
type Conditions map[int]float64

// NewConditions seeds a condition table with values at indices 0, 1, …
// in argument order.
func NewConditions(values ...float64) Conditions {
	c := make(Conditions, len(values))
	for j, v := range values {
		c[j] = v
	}
	return c
}

// Clone returns an independent copy of the table.
func (c Conditions) Clone() Conditions {
	out := make(Conditions, len(c))
	for j, v := range c {
		out[j] = v
	}
	return out
}

// MaxIndex returns the highest index present, or −1 for an empty table.
func (c Conditions) MaxIndex() int {
	max := -1
	for j := range c {
		if j > max {
			max = j
		}
	}
	return max
}

// validate checks the contiguous-prefix invariant.
func (c Conditions) validate() error {
	if len(c) == 0 {
		return ErrNoConditions
	}
	for j := 0; j < len(c); j++ {
		if _, ok := c[j]; !ok {
			return ErrConditionGap
		}
	}
	return nil
}
