// Package column implements the steady-state distillation column model.
//
// A [Column] owns an ordered component list, a feed, and scalar
// configuration. Construction validates feed/component agreement and
// precomputes the equilibrium lookup tables. [Column.Simulate] optimizes the
// reflux ratio over [1, 10] and then walks stages 1..N, producing one
// immutable [Stage] record per tray.
//
// Stages are computed independently from the same feed and optimized reflux;
// there is no tray-to-tray composition carry-over. That is a deliberate
// property of the model being reproduced, and the parallel path relies on it.
package column
