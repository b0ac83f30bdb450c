// Package words provides pure preprocessing transforms applied to
// trajectories before they are fed to the digraph builder.
//
// Three transforms cover the usual cleanup of discretized streamline
// data:
//
//   - FilterShortRuns drops flickering states that never persist,
//   - Stride subsamples a trajectory recorded at a finer resolution
//     than the dynamics of interest,
//   - CollapseRuns reduces each dwell period to a single visit, so the
//     built graph describes state changes rather than dwell times.
//
// Every transform returns a fresh Word and leaves its input untouched;
// Pipeline composes them left to right.
package words
