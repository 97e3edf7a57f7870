// Package gridode approximates solutions of first-order ordinary
// differential equations y' = g(x) with finite-difference recurrences
// over uniform grids, and measures how fast they converge.
//
// 🚀 What is gridode?
//
//	A small numerical library that brings together:
//		• Uniform grids: immutable 1-D discretizations with restartable iteration
//		• Recurrence schemes: forward-difference (Euler), two-step, exact closed form
//		• Lazy forward walks: compute y point by point from known conditions
//		• Convergence study: run a scheme on a coarse and a 3× denser grid and
//		  read the observed order straight off the error ratio
//
// ✨ Why choose gridode?
//
//   - Minimal API, clear, intuitive naming
//   - Every precondition violation surfaces as a sentinel error, never a panic
//   - One step convention everywhere — h = (b−a)/(n−1), no off-by-one drift
//   - Extensible — plug any right-hand side g(x) or closed-form solution
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/        — uniform grid + point-count suggestion for a nominal step
//	scheme/      — the recurrence contract, concrete schemes and forward iteration
//	convergence/ — two-grid evaluator producing per-point errors and observed order
//
// Quick sketch:
//
//	a ──┬──┬──┬──┬── b        coarse grid, step h
//	a ┬┬┬┬┬┬┬┬┬┬┬┬┬┬ b        dense grid, step h/3
//
//	order ≈ log₃(coarseError / denseError)
//
// Dive into examples/ for a full convergence walkthrough of the reference
// problem y' = eˣ·cos x.
//
//	go get github.com/katalvlaran/gridode
package gridode
