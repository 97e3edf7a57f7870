// Package convergence defines the evaluator options, row and summary
// types for the two-grid convergence study.
package convergence

import "github.com/katalvlaran/gridode/scheme"

// DensityRatio is the fixed oversampling factor between the dense and
// coarse grids. Tripling the density maps error ratios directly onto
// convergence-order estimates via log base 3.
const DensityRatio = 3

// Options bundles the schemes and condition sets for an Evaluator.
//
// Fields:
//   - Approx           — the approximate scheme under study.
//   - Exact            — the exact scheme used as the reference.
//   - CoarseConditions — seeds for the approximate run on the coarse grid.
//   - DenseConditions  — seeds for the approximate run on the dense grid
//     (the dense grid has its own step, so a two-step scheme needs a
//     dense-appropriate second seed).
//   - ExactConditions  — seed (index 0) for the exact run; kept separate
//     so a multi-seed approximate table never leaks an approximate value
//     into the reference.
type Options struct {
	Approx           scheme.Scheme
	Exact            scheme.Scheme
	CoarseConditions scheme.Conditions
	DenseConditions  scheme.Conditions
	ExactConditions  scheme.Conditions
}

// Row is one evaluated coarse-grid point.
//
// Order is log₃(CoarseErr/DenseErr) and is NaN whenever either error is
// zero or non-finite — most visibly at index 0, where both runs start
// from the same exact initial condition and both errors are 0.
type Row struct {
	Index     int
	X         float64
	Exact     float64
	CoarseErr float64
	DenseErr  float64
	Order     float64
}

// Summary aggregates the cached rows.
//
// MeanOrder and OrderStdDev cover only rows with a defined order;
// Defined counts them. Both statistics are NaN when Defined is 0.
type Summary struct {
	MaxCoarseErr float64
	MaxDenseErr  float64
	MeanOrder    float64
	OrderStdDev  float64
	Defined      int
}
