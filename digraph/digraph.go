package digraph

import "sort"

// AddWord folds one trajectory into the graph: every state becomes a
// node, every consecutive pair increments an edge weight, and every
// consecutive triple increments the pair edge's follow-up count for the
// trailing state. Words are independent of each other — a pair or
// triple never spans two words.
//
// Words shorter than two states contribute their states (if any) and
// nothing else.
//
// Complexity: O(len(w)) expected.
func (g *Graph) AddWord(w Word) {
	for _, s := range w {
		g.nodes[s] = struct{}{}
	}
	for i := 0; i+1 < len(w); i++ {
		g.bump(w[i], w[i+1], 1)
	}
	for i := 0; i+2 < len(w); i++ {
		g.adjacency[w[i]][w[i+1]].NextCounts[w[i+2]]++
	}
}

// bump adds delta to the (from, to) edge weight, creating the edge on
// first observation, and keeps the weighted degrees in step.
func (g *Graph) bump(from, to State, delta int64) *Edge {
	row := g.adjacency[from]
	if row == nil {
		row = make(map[State]*Edge)
		g.adjacency[from] = row
	}
	e := row[to]
	if e == nil {
		e = &Edge{From: from, To: to, NextCounts: make(map[State]int64)}
		row[to] = e
		g.edgeCount++
	}
	e.Weight += delta
	g.outWeight[from] += delta
	g.inWeight[to] += delta
	return e
}

// HasNode reports whether s was observed in any ingested word.
func (g *Graph) HasNode(s State) bool {
	_, ok := g.nodes[s]
	return ok
}

// HasEdge reports whether the ordered pair (from, to) was observed.
func (g *Graph) HasEdge(from, to State) bool {
	_, ok := g.adjacency[from][to]
	return ok
}

// Edge returns the aggregated edge of the ordered pair (from, to), or
// (nil, false) when the pair was never observed. The returned edge is
// the graph's own record, not a copy.
func (g *Graph) Edge(from, to State) (*Edge, bool) {
	e, ok := g.adjacency[from][to]
	return e, ok
}

// NodeCount returns the number of distinct observed states.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of distinct observed ordered pairs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Nodes returns every observed state in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []State {
	out := make([]State, 0, len(g.nodes))
	for s := range g.nodes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Edges returns every aggregated edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.edgeCount)
	for _, row := range g.adjacency {
		for _, e := range row {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// OutEdges returns the edges leaving from, sorted by To. The slice is
// empty when the state has no outgoing transitions.
func (g *Graph) OutEdges(from State) []*Edge {
	row := g.adjacency[from]
	out := make([]*Edge, 0, len(row))
	for _, e := range row {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })
	return out
}

// InDegree returns the weighted in-degree of s: the summed weight of
// every edge ending in s. A self-transition counts toward both degrees.
// Complexity: O(1).
func (g *Graph) InDegree(s State) int64 {
	return g.inWeight[s]
}

// OutDegree returns the weighted out-degree of s: the summed weight of
// every edge leaving s. Complexity: O(1).
func (g *Graph) OutDegree(s State) int64 {
	return g.outWeight[s]
}
