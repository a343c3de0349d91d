package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/internal/watch"
)

var watchInput string

// watchCmd re-solves a puzzle whenever its input file changes.
var watchCmd = &cobra.Command{
	Use:   "watch [day]",
	Short: "Re-solve a puzzle whenever its input file changes",
	Long: `Solves the puzzle once, then watches the input file and re-solves
after each settled change. Stop with Ctrl-C. Answers are not recorded in
watch mode.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid day %q: %w", args[0], err)
		}
		return runWatch(cmd, day)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchInput, "input", "i", "", "Input file (default inputs/dayNN.txt)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, day int) error {
	input := watchInput
	if input == "" {
		input = cfg.InputPath(day)
	}

	out := cmd.OutOrStdout()
	solve := func(path string) {
		ans, err := solveOnce(cfg, logger, day, path)
		if err != nil {
			// A malformed intermediate save is expected while editing;
			// report and keep watching.
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		_ = printAnswer(out, ans, 0)
	}

	// First run happens immediately; a missing file is only reported since
	// it may appear while watching.
	solve(input)

	w, err := watch.New(input, logger, solve)
	if err != nil {
		return err
	}
	if err := w.Start(cmd.Context()); err != nil {
		return err
	}
	defer w.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case <-cmd.Context().Done():
	}
	return nil
}
