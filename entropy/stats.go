package entropy

import "github.com/vkiriako/trigraph/digraph"

// Stats summarizes the entropy values of a graph's annotated edges.
type Stats struct {
	// Min, Max and Mean are taken over annotated edges only; edges
	// without a value do not drag the mean toward zero.
	Min  float64
	Max  float64
	Mean float64

	// Count is the number of edges carrying an entropy value.
	Count int
}

// Summarize aggregates the entropy annotations of g. The second return
// value is false when no edge carries a value, in which case the Stats
// are meaningless and must not be read — a graph of terminal pairs has
// no mean entropy, not a mean of zero.
func Summarize(g *digraph.Graph) (Stats, bool) {
	var s Stats
	var sum float64
	for _, e := range g.Edges() {
		h, ok := e.Entropy()
		if !ok {
			continue
		}
		if s.Count == 0 || h < s.Min {
			s.Min = h
		}
		if s.Count == 0 || h > s.Max {
			s.Max = h
		}
		sum += h
		s.Count++
	}
	if s.Count == 0 {
		return Stats{}, false
	}
	s.Mean = sum / float64(s.Count)
	return s, true
}

// Values returns the raw entropy values of annotated edges in the
// graph's deterministic edge order. Unannotated edges are omitted, not
// zero-filled.
func Values(g *digraph.Graph) []float64 {
	var out []float64
	for _, e := range g.Edges() {
		if h, ok := e.Entropy(); ok {
			out = append(out, h)
		}
	}
	return out
}

// IncomingSums returns, per state, the summed entropy of its annotated
// incoming edges. States whose incoming edges carry no annotation are
// present with a zero sum, so exporters can attach the attribute to
// every node.
func IncomingSums(g *digraph.Graph) map[digraph.State]float64 {
	sums := make(map[digraph.State]float64, g.NodeCount())
	for _, s := range g.Nodes() {
		sums[s] = 0
	}
	for _, e := range g.Edges() {
		if h, ok := e.Entropy(); ok {
			sums[e.To] += h
		}
	}
	return sums
}
