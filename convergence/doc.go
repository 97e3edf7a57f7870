// Package convergence runs an approximate scheme on a coarse grid and a
// 3× denser one, compares both against an exact scheme, and reports the
// empirically observed convergence order per grid point.
//
// 🚀 What is the observed order?
//
//	For a scheme with error ∝ stepᵖ, shrinking the step by a factor of 3
//	shrinks the error by 3ᵖ. The Evaluator therefore estimates
//
//	  p_j = log₃(coarseError_j / denseError_j)
//
//	at every coarse grid point j, plus aggregate statistics over all
//	points with a defined order.
//
// ✨ Key features:
//   - One construction, lazy computation: rows are built on first access
//     and cached — repeated retrieval returns identical data
//   - Both grids share the coarse coordinates exactly (coarse index i is
//     dense index 3·i), so errors are compared at the same x
//   - Undefined orders (a vanishing error on either grid) stay NaN and are
//     excluded from the summary statistics
//
// ⚙️ Usage:
//
//	ev, err := convergence.New(0, 4, 0.1, convergence.Options{
//	  Approx:           scheme.NewForwardDifference(scheme.ExpCos),
//	  Exact:            scheme.NewClosedForm(scheme.ExpCosSolution),
//	  CoarseConditions: scheme.NewConditions(0),
//	  DenseConditions:  scheme.NewConditions(0),
//	  ExactConditions:  scheme.NewConditions(0),
//	})
//	rows, err := ev.Rows()
//	sum, err := ev.Summary()
//
// Performance: O(n) time and memory in the dense grid size.
package convergence
