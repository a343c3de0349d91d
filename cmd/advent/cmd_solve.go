package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"advent/internal/config"
	"advent/internal/puzzle"
	"advent/internal/store"
)

var (
	inputPath string
	partFlag  int
)

// day1Cmd solves the calorie-counting puzzle.
var day1Cmd = &cobra.Command{
	Use:   "day1",
	Short: "Solve day 1 (Calorie Counting)",
	Long: `Parses the calorie list into blank-line-separated blocks and prints
the maximum block total and the sum of the three largest block totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return solveDay(cmd, 1)
	},
}

// day2Cmd solves the rock-paper-scissors puzzle.
var day2Cmd = &cobra.Command{
	Use:   "day2",
	Short: "Solve day 2 (Rock Paper Scissors)",
	Long: `Scores the strategy guide twice: reading the second column as the
player's move, then as the desired outcome.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return solveDay(cmd, 2)
	},
}

// solveCmd solves any registered day by number.
var solveCmd = &cobra.Command{
	Use:   "solve [day]",
	Short: "Solve a puzzle by day number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid day %q: %w", args[0], err)
		}
		return solveDay(cmd, day)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{day1Cmd, day2Cmd, solveCmd} {
		cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file (default inputs/dayNN.txt)")
		cmd.Flags().IntVarP(&partFlag, "part", "p", 0, "Print only part 1 or 2 (default both)")
	}
	rootCmd.AddCommand(day1Cmd, day2Cmd, solveCmd)
}

// solveDay runs one solver over its input file, prints the requested parts
// to stdout, and records the answer unless saving is disabled.
func solveDay(cmd *cobra.Command, day int) error {
	ans, err := solveOnce(cfg, logger, day, inputPath)
	if err != nil {
		return err
	}

	if err := printAnswer(cmd.OutOrStdout(), ans, partFlag); err != nil {
		return err
	}

	if noSave || cfg.Store.Path == "" {
		return nil
	}
	return recordAnswer(cmd, ans)
}

// solveOnce reads the input file and runs the day's solver against it.
func solveOnce(cfg *config.Config, logger *zap.Logger, day int, input string) (puzzle.Answer, error) {
	solver, err := puzzle.Get(day)
	if err != nil {
		return puzzle.Answer{}, err
	}

	if input == "" {
		input = cfg.InputPath(day)
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("failed to read input: %w", err)
	}
	if cfg.StrictEmpty && strings.TrimSpace(string(data)) == "" {
		return puzzle.Answer{}, fmt.Errorf("input file %s is empty", input)
	}

	logger.Debug("solving",
		zap.Int("day", day),
		zap.String("puzzle", solver.Name()),
		zap.String("input", input))

	start := time.Now()
	ans, err := solver.Solve(string(data))
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("day %d: %w", day, err)
	}
	ans.Elapsed = time.Since(start)
	ans.SolvedAt = time.Now()

	logger.Info("solved",
		zap.Int("day", day),
		zap.Uint32("part1", ans.Part1),
		zap.Uint32("part2", ans.Part2),
		zap.Duration("elapsed", ans.Elapsed))
	return ans, nil
}

func printAnswer(w io.Writer, ans puzzle.Answer, part int) error {
	switch part {
	case 0:
		fmt.Fprintln(w, ans.Part1)
		fmt.Fprintln(w, ans.Part2)
	case 1:
		fmt.Fprintln(w, ans.Part1)
	case 2:
		fmt.Fprintln(w, ans.Part2)
	default:
		return fmt.Errorf("invalid part %d: must be 1 or 2", part)
	}
	return nil
}

func recordAnswer(cmd *cobra.Command, ans puzzle.Answer) error {
	s, err := store.Open(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Record(cmd.Context(), ans)
}
