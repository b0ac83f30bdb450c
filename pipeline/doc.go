// Package pipeline orchestrates one full analysis run: load each TSV
// file into a word, apply the configured preprocessing, build the
// transition digraph, annotate it with entropy, summarize, and
// optionally export GEXF.
//
// The run is a one-shot batch; the context is consulted between
// phases only, since no phase blocks on anything external. Progress
// is reported through a *slog.Logger; nil means silent.
package pipeline
