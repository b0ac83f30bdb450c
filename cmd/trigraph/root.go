package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trigraph",
	Short: "Transition-graph entropy analysis for discretized trajectories",
	Long: `trigraph builds a directed transition graph from symbolic trajectories
and annotates every edge with the Shannon entropy of its follow-up
distribution. Input is tab-separated state exports; output is a summary
and, optionally, a GEXF file for Gephi.`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
