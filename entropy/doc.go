// Package entropy annotates a transition digraph with the Shannon
// entropy of each edge's follow-up distribution.
//
// The quantity is second-order conditional: for an edge u→v it measures
// the uncertainty (in bits) of the next state given the two-step
// context (u, v). A first-order view would lump together everything
// leaving v; conditioning on the previous state keeps distinct
// histories apart. Interleave the patterns A→B→C and X→B→D and the
// out-distribution of B looks like a coin flip, yet both A→B and X→B
// have perfectly predictable continuations — their entropy is zero.
//
// Entropy depends only on the shape of the distribution, never on how
// often the context occurred: an edge seen twice with a 50/50
// continuation split scores exactly like one seen a thousand times
// with the same split.
//
// Edges whose pair occurrences never had an in-word successor carry no
// value at all. Absence is reported through the (value, ok) idiom on
// Edge.Entropy, so a missing distribution can never be confused with a
// deterministic one.
package entropy
