// Package scheme defines the recurrence contract for computing values of
// y over a uniform grid from previously known values, together with the
// concrete finite-difference schemes and a lazy forward iterator.
//
// 🚀 What is a scheme?
//
//	A rule that produces y at grid index j from a set of known
//	(index → value) conditions:
//	  • ForwardDifference — y_j = g(x_{j−1})·h + y_{j−1}   (first order)
//	  • TwoStep           — y_j = 2h·g(x_{j−1}) + y_{j−2}  (second order)
//	  • ClosedForm        — y_j = y(x_j), the exact solution evaluated
//	    pointwise under the same contract
//
// ✨ Key features:
//   - Compute validates every precondition before dispatch: the target must
//     lie past the condition window and inside the grid, and the conditions
//     must form a contiguous prefix of indices from 0
//   - Iterator walks the grid forward one point at a time, feeding each new
//     value back into a private copy of the conditions
//   - Trace runs a full forward pass and returns all n values at once
//   - Every violation is a sentinel error; exhaustion of an Iterator is a
//     distinct terminal state (ErrExhausted), not an invalid request
//
// ⚙️ Usage:
//
//	s := scheme.NewForwardDifference(scheme.ExpCos)
//	g, _ := grid.New(0, 4, 41)
//	ys, err := scheme.Trace(s, g, scheme.NewConditions(0))
//
// All schemes are stateless pure functions of (grid, conditions, index);
// see the convergence package for the two-grid error study built on them.
package scheme
