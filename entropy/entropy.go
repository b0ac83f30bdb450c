package entropy

import (
	"math"

	"github.com/vkiriako/trigraph/digraph"
)

// Annotate walks every edge of g and attaches the base-2 Shannon
// entropy of its follow-up distribution. Edges with an empty
// distribution are skipped and keep their entropy unset. The graph is
// mutated in place and also returned for chaining.
//
// Complexity: O(E + total follow-up keys).
func Annotate(g *digraph.Graph) *digraph.Graph {
	for _, e := range g.Edges() {
		if h, ok := Shannon(e.NextCounts); ok {
			e.SetEntropy(h)
		}
	}
	return g
}

// Shannon computes the base-2 Shannon entropy of the distribution
// obtained by normalizing counts. Keys with non-positive counts are
// ignored, so log(0) is never evaluated. The second return value is
// false when no positive count remains — an empty distribution has no
// entropy, and reporting 0.0 for it would fake certainty.
//
// A single positive key yields exactly +0: the deterministic case is a
// combinatorial fact, not a rounding accident, so it is returned
// without touching floating-point arithmetic.
func Shannon(counts map[digraph.State]int64) (float64, bool) {
	var total int64
	var support int
	for _, c := range counts {
		if c > 0 {
			total += c
			support++
		}
	}
	if support == 0 {
		return 0, false
	}
	if support == 1 {
		return 0, true
	}

	var h float64
	for _, c := range counts {
		if c <= 0 {
			continue
		}
		p := float64(c) / float64(total)
		h -= p * math.Log2(p)
	}
	return h, true
}
