package main

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"advent/internal/puzzle"
	"advent/internal/store"
)

var (
	resultsDBPath string
	resultsDay    int
)

// resultsCmd lists recorded answers.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "List recorded answers",
	Long: `Prints every recorded answer, most recent first. With --day only
the most recent answer for that day is shown.`,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&resultsDBPath, "db", "", "Answer database (default from config)")
	resultsCmd.Flags().IntVar(&resultsDay, "day", 0, "Show only the latest answer for this day")
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	dbPath := resultsDBPath
	if dbPath == "" {
		dbPath = cfg.Store.Path
	}
	if dbPath == "" {
		return fmt.Errorf("no answer database configured")
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	var answers []puzzle.Answer
	if resultsDay > 0 {
		latest, err := s.Latest(cmd.Context(), resultsDay)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			fmt.Fprintf(cmd.OutOrStdout(), "No recorded answer for day %d.\n", resultsDay)
			return nil
		case err != nil:
			return err
		}
		answers = []puzzle.Answer{latest}
	} else {
		answers, err = s.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(answers) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recorded answers.")
			return nil
		}
	}

	table := newResultsTable("Recorded Answers", "Day", "Part 1", "Part 2", "Elapsed", "Solved At")
	for _, ans := range answers {
		table.AddRow(
			strconv.Itoa(ans.Day),
			strconv.FormatUint(uint64(ans.Part1), 10),
			strconv.FormatUint(uint64(ans.Part2), 10),
			ans.Elapsed.String(),
			ans.SolvedAt.Local().Format("2006-01-02 15:04:05"),
		)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.View())
	return nil
}
