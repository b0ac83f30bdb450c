package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vkiriako/trigraph/digraph"
	"github.com/vkiriako/trigraph/entropy"
	"github.com/vkiriako/trigraph/gexf"
	"github.com/vkiriako/trigraph/internal/logging"
	"github.com/vkiriako/trigraph/tsv"
	"github.com/vkiriako/trigraph/words"
)

// Result carries the outcome of one analysis run.
type Result struct {
	// Graph is the built and annotated transition digraph.
	Graph *digraph.Graph

	// Stats summarizes the entropy annotations; HasStats is false
	// when no edge carries a value (all pairs terminal).
	Stats    entropy.Stats
	HasStats bool

	// WordCount is the number of loaded trajectories, StateCount the
	// total states remaining after preprocessing.
	WordCount  int
	StateCount int
}

// Run executes one analysis per cfg. The context is checked between
// phases; a nil logger runs silently.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prep := preprocessor(cfg)
	loaderOpts := cfg.loaderOptions()

	var corpus []digraph.Word
	total := 0
	for _, path := range cfg.InputPaths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline: canceled during load: %w", err)
		}
		word, err := tsv.Load(path, loaderOpts...)
		if err != nil {
			return nil, err
		}
		raw := len(word)
		word = prep(word)
		logger.Info("loaded trajectory", "path", path, "states", raw, "after_prep", len(word))
		corpus = append(corpus, word)
		total += len(word)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: canceled before build: %w", err)
	}
	var g *digraph.Graph
	if cfg.Workers > 1 {
		g = digraph.BuildParallel(corpus, cfg.Workers)
	} else {
		g = digraph.Build(corpus)
	}
	logger.Info("built digraph", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pipeline: canceled before annotation: %w", err)
	}
	entropy.Annotate(g)
	stats, ok := entropy.Summarize(g)
	if ok {
		logger.Info("annotated entropy",
			"annotated_edges", stats.Count,
			"min", stats.Min, "max", stats.Max, "mean", stats.Mean)
	} else {
		logger.Info("annotated entropy", "annotated_edges", 0)
	}

	if cfg.OutputGEXF != "" {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline: canceled before export: %w", err)
		}
		if err := gexf.Save(cfg.OutputGEXF, g); err != nil {
			return nil, err
		}
		logger.Info("exported graph", "path", cfg.OutputGEXF)
	}

	return &Result{
		Graph:      g,
		Stats:      stats,
		HasStats:   ok,
		WordCount:  len(corpus),
		StateCount: total,
	}, nil
}

// preprocessor assembles the configured word transforms in their
// canonical order: dwell filtering, then subsampling, then run
// collapsing.
func preprocessor(cfg Config) words.Op {
	var ops []words.Op
	if cfg.MinDuration > 1 {
		n := cfg.MinDuration
		ops = append(ops, func(w digraph.Word) digraph.Word {
			return words.FilterShortRuns(w, n)
		})
	}
	if cfg.Stride > 1 {
		step := cfg.Stride
		ops = append(ops, func(w digraph.Word) digraph.Word {
			return words.Stride(w, step)
		})
	}
	if cfg.CollapseRuns {
		ops = append(ops, words.CollapseRuns)
	}
	return words.Pipeline(ops...)
}
