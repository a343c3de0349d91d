// Package rps implements rock-paper-scissors strategy-guide scoring. Each
// input line holds two tokens: the opponent's move (A/B/C) and either the
// player's move (X/Y/Z, part one) or the desired outcome (X/Y/Z, part two).
// A round scores shape points (1/2/3) plus outcome points (0/3/6).
package rps

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Move is one of the three playable shapes.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Outcome is the result of a round from the player's perspective.
type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

// ErrOverflow is returned when the running score exceeds the uint32 range.
var ErrOverflow = errors.New("total score overflows uint32")

func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Draw:
		return "draw"
	case Win:
		return "win"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// ShapeScore returns the fixed point value of playing the move.
func (m Move) ShapeScore() uint32 {
	return uint32(m) + 1
}

// Score returns the outcome's fixed point value.
func (o Outcome) Score() uint32 {
	return uint32(o) * 3
}

// beats returns the move that m defeats.
func (m Move) beats() Move {
	return Move((int(m) + 2) % 3)
}

// ParseMove decodes a move token from either column.
func ParseMove(token string) (Move, error) {
	switch token {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("invalid move token: %q", token)
}

// ParseOutcome decodes a desired-outcome token from the second column.
func ParseOutcome(token string) (Outcome, error) {
	switch token {
	case "X":
		return Lose, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, fmt.Errorf("invalid outcome token: %q", token)
}

// Resolve returns the round outcome for the player's move against the
// opponent's.
func Resolve(opponent, player Move) Outcome {
	switch {
	case player == opponent:
		return Draw
	case player.beats() == opponent:
		return Win
	}
	return Lose
}

// Score returns the round score: outcome points plus shape points.
func Score(opponent, player Move) uint32 {
	return Resolve(opponent, player).Score() + player.ShapeScore()
}

// RequiredMove returns the move the player must make against opponent to
// produce the desired outcome.
func RequiredMove(opponent Move, desired Outcome) Move {
	switch desired {
	case Draw:
		return opponent
	case Win:
		// The move that the opponent's move loses to.
		return Move((int(opponent) + 1) % 3)
	}
	return opponent.beats()
}

// parseRound splits a line into its opponent token and second-column token.
func parseRound(line string) (string, string, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return "", "", fmt.Errorf("missing opponent move in line: %q", line)
	case 1:
		return "", "", fmt.Errorf("missing second token in line: %q", line)
	}
	return fields[0], fields[1], nil
}

// TotalByMove scores the whole guide reading the second column as the
// player's move. Blank lines are skipped.
func TotalByMove(input string) (uint32, error) {
	var total uint32
	err := eachRound(input, func(opp string, second string) error {
		opponent, err := ParseMove(opp)
		if err != nil {
			return err
		}
		player, err := ParseMove(second)
		if err != nil {
			return err
		}
		total, err = addScore(total, Score(opponent, player))
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// TotalByOutcome scores the whole guide reading the second column as the
// desired outcome and deriving the player's move from it.
func TotalByOutcome(input string) (uint32, error) {
	var total uint32
	err := eachRound(input, func(opp string, second string) error {
		opponent, err := ParseMove(opp)
		if err != nil {
			return err
		}
		desired, err := ParseOutcome(second)
		if err != nil {
			return err
		}
		total, err = addScore(total, Score(opponent, RequiredMove(opponent, desired)))
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func eachRound(input string, fn func(opp, second string) error) error {
	for _, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		opp, second, err := parseRound(line)
		if err != nil {
			return err
		}
		if err := fn(opp, second); err != nil {
			return err
		}
	}
	return nil
}

func addScore(total, score uint32) (uint32, error) {
	if total > math.MaxUint32-score {
		return 0, ErrOverflow
	}
	return total + score, nil
}
