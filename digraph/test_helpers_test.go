package digraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vkiriako/trigraph/digraph"
)

// requireSameGraph asserts that two graphs agree on nodes, edge weights
// and follow-up counts.
func requireSameGraph(t *testing.T, want, got *digraph.Graph) {
	t.Helper()
	require.Equal(t, want.Nodes(), got.Nodes(), "node sets differ")
	require.Equal(t, want.EdgeCount(), got.EdgeCount(), "edge counts differ")
	for _, we := range want.Edges() {
		ge, ok := got.Edge(we.From, we.To)
		require.Truef(t, ok, "edge %s->%s missing", we.From, we.To)
		require.Equalf(t, we.Weight, ge.Weight, "weight differs on %s->%s", we.From, we.To)
		require.Equalf(t, we.NextCounts, ge.NextCounts, "follow-up counts differ on %s->%s", we.From, we.To)
	}
}

// randomWords builds a reproducible corpus over a five-letter alphabet.
func randomWords(n, maxLen int, seed int64) []digraph.Word {
	rng := rand.New(rand.NewSource(seed))
	alphabet := []digraph.State{"A", "B", "C", "D", "E"}
	words := make([]digraph.Word, n)
	for i := range words {
		w := make(digraph.Word, rng.Intn(maxLen+1))
		for j := range w {
			w[j] = alphabet[rng.Intn(len(alphabet))]
		}
		words[i] = w
	}
	return words
}

// sumCounts totals a follow-up distribution.
func sumCounts(counts map[digraph.State]int64) int64 {
	var total int64
	for _, c := range counts {
		total += c
	}
	return total
}
