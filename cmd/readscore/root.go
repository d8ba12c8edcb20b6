// Package main provides the entry point for the readscore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for readscore.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readscore",
		Short: "Estimate the reading age of a text",
		Long: `readscore estimates how old a reader must be to understand a text.
It computes four readability metrics (ARI, Flesch–Kincaid, SMOG, and
Coleman–Liau) from word, sentence, character, and syllable counts, and
maps each score to an estimated reader age.

Results can be printed as plain text, JSON, or Markdown, and are saved
to a local history database for later comparison.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewScoreCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
