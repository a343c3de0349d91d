package puzzle

import (
	"fmt"

	"advent/internal/calories"
	"advent/internal/rps"
)

func init() {
	Register(calorieSolver{})
	Register(strategySolver{})
}

// calorieSolver is day 1: max block sum and top-three block sum.
type calorieSolver struct{}

func (calorieSolver) Day() int     { return 1 }
func (calorieSolver) Name() string { return "Calorie Counting" }

func (calorieSolver) Solve(input string) (Answer, error) {
	totals, err := calories.Parse(input)
	if err != nil {
		return Answer{}, fmt.Errorf("failed to parse calories: %w", err)
	}
	topThree, err := calories.TopThreeTotal(totals)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Day:   1,
		Part1: calories.MaxTotal(totals),
		Part2: topThree,
	}, nil
}

// strategySolver is day 2: strategy guide totals under both readings of the
// second column.
type strategySolver struct{}

func (strategySolver) Day() int     { return 2 }
func (strategySolver) Name() string { return "Rock Paper Scissors" }

func (strategySolver) Solve(input string) (Answer, error) {
	byMove, err := rps.TotalByMove(input)
	if err != nil {
		return Answer{}, err
	}
	byOutcome, err := rps.TotalByOutcome(input)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Day:   2,
		Part1: byMove,
		Part2: byOutcome,
	}, nil
}
