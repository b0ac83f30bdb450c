package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkiriako/trigraph"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the trigraph version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trigraph version %s\n", trigraph.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
