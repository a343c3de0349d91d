// Package calories implements the calorie-counting puzzle: input is a list
// of integers grouped into blocks by blank lines, one block per elf. The
// interesting values are the largest block total and the sum of the three
// largest block totals.
package calories

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNoBlocks is returned when the input contains no calorie blocks at all.
	ErrNoBlocks = errors.New("no calorie blocks found in input")

	// ErrOverflow is returned when a running total exceeds the uint32 range.
	ErrOverflow = errors.New("calorie sum overflows uint32")
)

// checkedAdd adds b to a, failing instead of wrapping past math.MaxUint32.
func checkedAdd(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Parse splits the input into blank-line-separated blocks and returns each
// block's calorie total, in input order. Windows line endings are normalized
// before splitting. Whitespace-only lines inside a block are skipped.
func Parse(input string) ([]uint32, error) {
	normalized := strings.ReplaceAll(input, "\r\n", "\n")
	normalized = strings.TrimRight(normalized, " \t\n")

	if strings.TrimSpace(normalized) == "" {
		return nil, ErrNoBlocks
	}

	blocks := strings.Split(normalized, "\n\n")
	totals := make([]uint32, 0, len(blocks))

	for _, block := range blocks {
		var total uint32
		seen := false
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			n, err := strconv.ParseUint(line, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("failed to parse number %q: %w", line, err)
			}
			total, err = checkedAdd(total, uint32(n))
			if err != nil {
				return nil, err
			}
			seen = true
		}
		if !seen {
			// Runs of 3+ newlines produce empty blocks; drop them.
			continue
		}
		totals = append(totals, total)
	}

	if len(totals) == 0 {
		return nil, ErrNoBlocks
	}
	return totals, nil
}

// MaxTotal returns the largest block total.
func MaxTotal(totals []uint32) uint32 {
	var max uint32
	for _, t := range totals {
		if t > max {
			max = t
		}
	}
	return max
}

// TopThreeTotal returns the sum of the three largest block totals. Fewer
// than three blocks sum whatever is there.
func TopThreeTotal(totals []uint32) (uint32, error) {
	sorted := make([]uint32, len(totals))
	copy(sorted, totals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })

	var sum uint32
	var err error
	for i, t := range sorted {
		if i == 3 {
			break
		}
		sum, err = checkedAdd(sum, t)
		if err != nil {
			return 0, err
		}
	}
	return sum, nil
}
