// Package main implements the advent CLI: solvers for the daily puzzles,
// an input-file watch mode, and a log of recorded answers.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/internal/config"
	"advent/internal/logging"
)

var (
	// Global flags
	cfgPath string
	verbose bool
	noSave  bool

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "advent - daily puzzle solutions",
	Long: `advent solves the daily puzzles over their input files and prints
one integer per part.

Inputs live in inputs/dayNN.txt by default; override per run with --input
or globally via advent.yaml / ADVENT_INPUT_DIR. Solved answers are recorded
to a local sqlite log unless --no-save is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file (default advent.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noSave, "no-save", false, "Do not record answers to the store")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
