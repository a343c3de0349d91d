package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advent/internal/puzzle"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "advent.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_CreatesDirectoryAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "advent.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, path, s.Path())

	answers, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := puzzle.Answer{
		Day:      1,
		Part1:    24000,
		Part2:    45000,
		Elapsed:  3 * time.Millisecond,
		SolvedAt: time.Date(2022, 12, 1, 9, 0, 0, 0, time.UTC),
	}
	second := puzzle.Answer{
		Day:      2,
		Part1:    15,
		Part2:    12,
		Elapsed:  time.Millisecond,
		SolvedAt: time.Date(2022, 12, 2, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.Record(ctx, first))
	require.NoError(t, s.Record(ctx, second))

	answers, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, answers, 2)

	// Most recent first.
	assert.Equal(t, 2, answers[0].Day)
	assert.Equal(t, uint32(15), answers[0].Part1)
	assert.Equal(t, uint32(12), answers[0].Part2)
	assert.Equal(t, time.Millisecond, answers[0].Elapsed)

	assert.Equal(t, 1, answers[1].Day)
	assert.Equal(t, uint32(24000), answers[1].Part1)
	assert.Equal(t, uint32(45000), answers[1].Part2)
	assert.True(t, answers[1].SolvedAt.Equal(first.SolvedAt))
}

func TestRecord_AssignsRunIDs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, s.Record(ctx, puzzle.Answer{Day: 1, Part1: 1, Part2: 2, SolvedAt: now}))
	require.NoError(t, s.Record(ctx, puzzle.Answer{Day: 1, Part1: 1, Part2: 2, SolvedAt: now}))

	answers, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, answers, 2)

	for _, ans := range answers {
		_, err := uuid.Parse(ans.RunID)
		assert.NoError(t, err, "run ID %q is not a UUID", ans.RunID)
	}
	assert.NotEqual(t, answers[0].RunID, answers[1].RunID)
}

func TestRecord_KeepsProvidedRunID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	runID := uuid.New().String()
	require.NoError(t, s.Record(ctx, puzzle.Answer{
		RunID:    runID,
		Day:      2,
		Part1:    15,
		Part2:    12,
		SolvedAt: time.Now(),
	}))

	latest, err := s.Latest(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, runID, latest.RunID)
}

func TestLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2022, 12, 1, 9, 0, 0, 0, time.UTC)
	for i, part1 := range []uint32{100, 200, 300} {
		require.NoError(t, s.Record(ctx, puzzle.Answer{
			Day:      1,
			Part1:    part1,
			Part2:    part1 * 2,
			Elapsed:  time.Millisecond,
			SolvedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	latest, err := s.Latest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(300), latest.Part1)
	assert.Equal(t, uint32(600), latest.Part2)
}

func TestLatest_NoRows(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Latest(context.Background(), 7)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advent.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, puzzle.Answer{Day: 1, Part1: 1, Part2: 2, SolvedAt: time.Now()}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	answers, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, answers, 1)
}
