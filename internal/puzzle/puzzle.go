// Package puzzle defines the solver contract and the registry the CLI uses
// to dispatch a day number to its implementation.
package puzzle

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Answer is one solved puzzle: both part values plus run metadata.
type Answer struct {
	// RunID identifies one recorded run; assigned by the store on Record.
	RunID    string
	Day      int
	Part1    uint32
	Part2    uint32
	Elapsed  time.Duration
	SolvedAt time.Time
}

// Solver solves a single day's puzzle over its raw input text.
type Solver interface {
	// Day is the puzzle's day number, unique across the registry.
	Day() int
	// Name is a short human-readable puzzle title.
	Name() string
	// Solve computes both parts. Answer.Elapsed and SolvedAt are filled in
	// by the caller, not the solver.
	Solve(input string) (Answer, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[int]Solver)
)

// Register adds a solver to the registry. Registering two solvers for the
// same day is a programming error and panics.
func Register(s Solver) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[s.Day()]; dup {
		panic(fmt.Sprintf("puzzle: duplicate solver registered for day %d", s.Day()))
	}
	registry[s.Day()] = s
}

// Get returns the solver for the given day.
func Get(day int) (Solver, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[day]
	if !ok {
		return nil, fmt.Errorf("no solver registered for day %d", day)
	}
	return s, nil
}

// Days returns all registered day numbers in ascending order.
func Days() []int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
