package digraph

import (
	"runtime"
	"sync"
)

// Build constructs a fresh Graph from the given words. The result does
// not depend on the order of the words: every count is an associative
// sum over independent observations.
//
// Complexity: O(total states) expected.
func Build(words []Word) *Graph {
	g := New()
	for _, w := range words {
		g.AddWord(w)
	}
	return g
}

// Merge folds other into g: nodes are united, edge weights and
// follow-up counts are summed. Merging is associative and commutative,
// which makes it the reduction step of BuildParallel. other is left
// untouched; entropy annotations are not carried over, annotate after
// merging.
func (g *Graph) Merge(other *Graph) {
	if other == nil {
		return
	}
	for s := range other.nodes {
		g.nodes[s] = struct{}{}
	}
	for _, row := range other.adjacency {
		for _, oe := range row {
			e := g.bump(oe.From, oe.To, oe.Weight)
			for w, c := range oe.NextCounts {
				e.NextCounts[w] += c
			}
		}
	}
}

// BuildParallel constructs the same Graph as Build using up to workers
// goroutines. Words are striped across per-worker graphs that are then
// merged; because counting is commutative the partitioning cannot show
// in the result. workers <= 0 selects runtime.GOMAXPROCS(0), and the
// worker count never exceeds the number of words.
func BuildParallel(words []Word, workers int) *Graph {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(words) {
		workers = len(words)
	}
	if workers <= 1 {
		return Build(words)
	}

	parts := make([]*Graph, workers)
	var wg sync.WaitGroup
	for k := 0; k < workers; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			part := New()
			for i := k; i < len(words); i += workers {
				part.AddWord(words[i])
			}
			parts[k] = part
		}(k)
	}
	wg.Wait()

	g := New()
	for _, part := range parts {
		g.Merge(part)
	}
	return g
}
