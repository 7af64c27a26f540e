package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndResults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	results := []CodeResult{
		{Code: "029A", Presses: 68, Value: 29, Complexity: 1972},
		{Code: "980A", Presses: 60, Value: 980, Complexity: 58800},
	}
	run, err := s.Record(ctx, Run{Depth: 2, Total: 60772, CacheEntries: 18}, results)
	require.NoError(t, err)
	assert.Len(t, run.ID, 26)
	assert.Equal(t, 2, run.Codes)
	assert.False(t, run.CreatedAt.IsZero())

	got, err := s.Results(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Seq)
	assert.Equal(t, "980A", got[1].Code)
	assert.Equal(t, uint64(58800), got[1].Complexity)
}

func TestRecord_LargeTotals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	const big = ^uint64(0) - 1

	_, err := s.Record(ctx, Run{Depth: 25, Total: big}, []CodeResult{{Code: "9A", Presses: big, Value: 9, Complexity: big}})
	require.NoError(t, err)

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, big, runs[0].Total)
}

func TestList_NewestFirstAndLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	for depth := 1; depth <= 3; depth++ {
		_, err := s.Record(ctx, Run{Depth: depth, Total: uint64(depth)}, nil)
		require.NoError(t, err)
	}

	runs, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, 3, runs[0].Depth)
	assert.Equal(t, 1, runs[2].Depth)

	runs, err = s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestResults_UnknownRun(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Results(context.Background(), "01J00000000000000000000000")
	assert.ErrorIs(t, err, ErrRunNotFound)
}
