package digraph

// State is one discrete symbol of a trajectory. The graph treats it as
// an opaque, comparable identifier and attaches no meaning to its text.
type State string

// Word is one observed trajectory: an ordered, finite sequence of
// states. Words shorter than two states carry no transition statistics;
// their states still register as nodes.
type Word []State

// Edge aggregates every occurrence of one ordered pair of states across
// all ingested words.
type Edge struct {
	// From and To identify the ordered pair; the pair is unique within
	// a Graph.
	From State
	To   State

	// Weight counts how often From was immediately followed by To,
	// summed over all words and positions. A stored edge always has
	// Weight > 0.
	Weight int64

	// NextCounts maps a follow-up state w to the number of times the
	// triple (From, To, w) occurred consecutively inside a single word.
	// Stored values are always > 0 and their sum never exceeds Weight:
	// only the final occurrence of the pair in a word can lack a
	// successor.
	NextCounts map[State]int64

	entropy    float64
	hasEntropy bool
}

// Entropy returns the edge's annotated Shannon entropy in bits and
// whether one has been set. Edges whose pair occurrences never had an
// in-word successor stay unset: "no continuation observed" is a
// different fact than "the continuation is certain".
func (e *Edge) Entropy() (float64, bool) {
	return e.entropy, e.hasEntropy
}

// SetEntropy attaches an entropy value to the edge.
func (e *Edge) SetEntropy(bits float64) {
	e.entropy = bits
	e.hasEntropy = true
}

// Graph is the transition digraph: the set of observed states plus one
// aggregated Edge per observed ordered pair.
type Graph struct {
	nodes map[State]struct{}

	// adjacency[from][to] holds the single aggregated edge of the pair.
	adjacency map[State]map[State]*Edge
	edgeCount int

	// inWeight and outWeight keep the weighted degrees current on every
	// increment so degree queries stay O(1).
	inWeight  map[State]int64
	outWeight map[State]int64
}

// New returns an empty Graph ready for AddWord.
func New() *Graph {
	return &Graph{
		nodes:     make(map[State]struct{}),
		adjacency: make(map[State]map[State]*Edge),
		inWeight:  make(map[State]int64),
		outWeight: make(map[State]int64),
	}
}
