// Package grid provides an immutable uniform discretization of a real
// interval [a, b] and a point-count suggester for a nominal step size.
//
// 🚀 What is a grid here?
//
//	An ordered, finite set of equally spaced sample points:
//	  x_j = a + j·h,  j = 0 … n−1,  h = (b−a)/(n−1)
//
//	The (n−1) convention is the only one used in this module; mixing it
//	with (b−a)/n silently shifts every subsequent point and corrupts any
//	convergence measurement built on top.
//
// ✨ Key features:
//   - Construction validates b > a and n ≥ 2 up front (sentinel errors)
//   - O(1) positional access via At, bounds-checked
//   - Points() yields a fresh, restartable (index, coordinate) cursor
//   - SuggestPoints picks the smallest n whose actual step ≤ the nominal one
//
// ⚙️ Usage:
//
//	g, err := grid.New(0, 4, 41) // step 0.1
//	if err != nil {
//	  // handle ErrInvalidInterval or ErrTooFewPoints
//	}
//	for j, x := range g.Points() {
//	  fmt.Println(j, x)
//	}
//
// A Grid is immutable after construction and safe to share; see the
// concurrency note in the root package documentation.
package grid
