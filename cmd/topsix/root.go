package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "topsix",
	Short: "topsix - multi-criteria decision analysis",
	Long: `topsix ranks alternatives over conflicting criteria with TOPSIS and
VIKOR, deriving criterion weights from fixed vectors, entropy, or AHP
pairwise comparisons.`,
	SilenceUsage: true,
}

// logger writes human-readable console output; commands share it.
func logger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
