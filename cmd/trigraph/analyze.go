package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vkiriako/trigraph/internal/config"
	"github.com/vkiriako/trigraph/internal/logging"
	"github.com/vkiriako/trigraph/pipeline"
	"github.com/vkiriako/trigraph/tsv"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Build and annotate a transition graph from TSV trajectories",
	Long: `Loads one trajectory per TSV file, applies the configured
preprocessing, builds the aggregated transition digraph, annotates each
edge with the entropy of its follow-up distribution and prints a
summary. With --out the annotated graph is exported as GEXF.

Defaults come from the environment (TRIGRAPH_COLUMN,
TRIGRAPH_ERROR_TOKEN, TRIGRAPH_OUT, TRIGRAPH_VERBOSE; a .env file is
honored) and from an optional --config YAML file. Explicit flags win.`,
	RunE: runAnalyze,
}

func init() {
	env := config.Load(tsv.DefaultColumn, tsv.DefaultErrorToken)

	analyzeCmd.Flags().String("config", "", "YAML run configuration file")
	analyzeCmd.Flags().String("column", env.Column, "state column to read")
	analyzeCmd.Flags().String("error-token", env.ErrorToken, "state value marking rows to skip")
	analyzeCmd.Flags().Int("min-duration", 1, "drop runs of equal states shorter than this")
	analyzeCmd.Flags().Int("stride", 1, "keep every Nth sample")
	analyzeCmd.Flags().Bool("collapse-runs", false, "collapse dwell periods to single visits")
	analyzeCmd.Flags().String("out", env.Out, "GEXF output path (empty skips export)")
	analyzeCmd.Flags().Int("workers", 1, "parallel build workers (>1 enables fan-out)")
	analyzeCmd.Flags().BoolP("verbose", "v", env.Verbose, "log each pipeline phase")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var cfg pipeline.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := pipeline.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.InputPaths = args
	}
	if cmd.Flags().Changed("column") || cfg.Column == "" {
		cfg.Column, _ = cmd.Flags().GetString("column")
	}
	if cmd.Flags().Changed("error-token") || cfg.ErrorToken == "" {
		cfg.ErrorToken, _ = cmd.Flags().GetString("error-token")
	}
	if cmd.Flags().Changed("min-duration") || cfg.MinDuration == 0 {
		cfg.MinDuration, _ = cmd.Flags().GetInt("min-duration")
	}
	if cmd.Flags().Changed("stride") || cfg.Stride == 0 {
		cfg.Stride, _ = cmd.Flags().GetInt("stride")
	}
	if cmd.Flags().Changed("collapse-runs") {
		cfg.CollapseRuns, _ = cmd.Flags().GetBool("collapse-runs")
	}
	if cmd.Flags().Changed("out") || cfg.OutputGEXF == "" {
		cfg.OutputGEXF, _ = cmd.Flags().GetString("out")
	}
	if cmd.Flags().Changed("workers") || cfg.Workers == 0 {
		cfg.Workers, _ = cmd.Flags().GetInt("workers")
	}

	logger := logging.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger = logging.New(slog.LevelDebug)
	}

	res, err := pipeline.Run(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "words:  %d (%d states after preprocessing)\n", res.WordCount, res.StateCount)
	fmt.Fprintf(out, "nodes:  %d\n", res.Graph.NodeCount())
	fmt.Fprintf(out, "edges:  %d\n", res.Graph.EdgeCount())
	if res.HasStats {
		fmt.Fprintf(out, "entropy: min=%.4f max=%.4f mean=%.4f over %d edges\n",
			res.Stats.Min, res.Stats.Max, res.Stats.Mean, res.Stats.Count)
	} else {
		fmt.Fprintln(out, "entropy: no edge has an observed continuation")
	}
	if cfg.OutputGEXF != "" {
		fmt.Fprintf(out, "graph exported to %s\n", cfg.OutputGEXF)
	}
	return nil
}
