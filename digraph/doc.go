// Package digraph builds directed transition graphs from symbolic
// trajectories ("words").
//
// Every consecutive pair of states inside a word becomes one aggregated
// edge carrying:
//
//   - Weight — how often the pair occurred across all words, and
//   - NextCounts — the distribution of the state that immediately
//     followed those occurrences inside the same word.
//
// NextCounts is the two-step context consumed by the entropy package:
// it answers "given the step u→v, what came next?", and it never mixes
// continuations across word boundaries.
//
// Construction is one-shot and order-independent. All counts are
// associative sums, so permuting the input words — or building
// per-worker graphs and combining them with Merge, as BuildParallel
// does — yields the same graph. Accessors return sorted slices for
// deterministic iteration.
//
// A Graph has a single logical owner at any time: the builder fills it,
// the annotator adds one attribute per edge, and afterwards it is
// read-only. It is deliberately unsynchronized.
package digraph
