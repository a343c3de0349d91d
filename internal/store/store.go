// Package store persists solved answers to a local sqlite database so runs
// can be compared over time.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"advent/internal/puzzle"
)

// Store is the answer log.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Open creates or opens the answer database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS answers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL UNIQUE,
		day INTEGER NOT NULL,
		part1 INTEGER NOT NULL,
		part2 INTEGER NOT NULL,
		elapsed_ns INTEGER NOT NULL,
		solved_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_answers_day ON answers(day);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record appends one solved answer to the log. A fresh run ID is assigned
// when the answer carries none.
func (s *Store) Record(ctx context.Context, ans puzzle.Answer) error {
	if ans.RunID == "" {
		ans.RunID = uuid.New().String()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO answers (run_id, day, part1, part2, elapsed_ns, solved_at) VALUES (?, ?, ?, ?, ?, ?)`,
		ans.RunID, ans.Day, ans.Part1, ans.Part2, ans.Elapsed.Nanoseconds(), ans.SolvedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record answer for day %d: %w", ans.Day, err)
	}
	return nil
}

// List returns all recorded answers, most recent first.
func (s *Store) List(ctx context.Context) ([]puzzle.Answer, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, day, part1, part2, elapsed_ns, solved_at FROM answers ORDER BY solved_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	var out []puzzle.Answer
	for rows.Next() {
		var ans puzzle.Answer
		var elapsedNS int64
		var solvedAt time.Time
		if err := rows.Scan(&ans.RunID, &ans.Day, &ans.Part1, &ans.Part2, &elapsedNS, &solvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer row: %w", err)
		}
		ans.Elapsed = time.Duration(elapsedNS)
		ans.SolvedAt = solvedAt
		out = append(out, ans)
	}
	return out, rows.Err()
}

// Latest returns the most recent answer for a day, or sql.ErrNoRows.
func (s *Store) Latest(ctx context.Context, day int) (puzzle.Answer, error) {
	var ans puzzle.Answer
	var elapsedNS int64
	err := s.db.QueryRowContext(ctx,
		`SELECT run_id, day, part1, part2, elapsed_ns, solved_at FROM answers WHERE day = ? ORDER BY solved_at DESC, id DESC LIMIT 1`,
		day).Scan(&ans.RunID, &ans.Day, &ans.Part1, &ans.Part2, &elapsedNS, &ans.SolvedAt)
	if err != nil {
		return puzzle.Answer{}, err
	}
	ans.Elapsed = time.Duration(elapsedNS)
	return ans, nil
}
