// Package trigraph turns discrete symbolic trajectories ("words")
// into directed transition graphs annotated with a per-edge
// uncertainty measure.
//
// Each consecutive pair of states becomes an aggregated edge carrying
// its occurrence count and the distribution of the state that
// followed; the Shannon entropy of that follow-up distribution, the
// second-order conditional entropy, is then attached to the edge.
// Edges whose occurrences never had an in-word successor carry no
// entropy at all: absence is kept distinct from zero.
//
// The work is organized under focused subpackages:
//
//	digraph/  — core types and the one-shot (optionally parallel) builder
//	entropy/  — the Shannon annotator and summary statistics
//	words/    — trajectory preprocessing (dwell filtering, subsampling, run collapsing)
//	tsv/      — loader for tab-separated state exports
//	gexf/     — GEXF 1.2draft exporter for Gephi
//	pipeline/ — batch orchestration of load, prep, build, annotate, export
//
// A command-line front end lives in cmd/trigraph; runnable demos live
// under examples/.
package trigraph
