// Package store keeps a history of solve runs in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// timeLayout is fixed-width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound is returned by Results for an unknown run ID.
var ErrRunNotFound = errors.New("store: run not found")

// Run is one recorded batch.
type Run struct {
	ID           string
	CreatedAt    time.Time
	Depth        int
	Codes        int
	Total        uint64
	CacheEntries int
}

// CodeResult is one code's line within a Run.
type CodeResult struct {
	Seq        int
	Code       string
	Presses    uint64
	Value      uint64
	Complexity uint64
}

// SQLiteStore records runs in a SQLite database.
type SQLiteStore struct {
	db      *sql.DB
	mu      sync.Mutex // guards entropy
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id            TEXT PRIMARY KEY,
		created_at    TEXT NOT NULL,
		depth         INTEGER NOT NULL,
		codes         INTEGER NOT NULL,
		total         TEXT NOT NULL,
		cache_entries INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS results (
		run_id     TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		code       TEXT NOT NULL,
		presses    TEXT NOT NULL,
		value      TEXT NOT NULL,
		complexity TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record stores a run and its per-code results in one transaction and
// returns the run with its new ID and timestamp filled in.
// Counts are stored as decimal text: SQLite integers are signed 64-bit.
func (s *SQLiteStore) Record(ctx context.Context, run Run, results []CodeResult) (Run, error) {
	now := time.Now().UTC()
	run.ID = s.newID(now)
	run.CreatedAt = now
	run.Codes = len(results)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, depth, codes, total, cache_entries) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, now.Format(timeLayout), run.Depth, run.Codes, formatU(run.Total), run.CacheEntries)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}

	for i, r := range results {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO results (run_id, seq, code, presses, value, complexity) VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, i, r.Code, formatU(r.Presses), formatU(r.Value), formatU(r.Complexity))
		if err != nil {
			return Run{}, fmt.Errorf("insert result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("commit: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first. Run IDs are monotonic
// ULIDs, so ID order is creation order.
// limit <= 0 means all.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, created_at, depth, codes, total, cache_entries FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			created string
			total   string
		)
		if err := rows.Scan(&r.ID, &created, &r.Depth, &r.Codes, &total, &r.CacheEntries); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("run %s: created_at: %w", r.ID, err)
		}
		if r.Total, err = parseU(total); err != nil {
			return nil, fmt.Errorf("run %s: total: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the per-code lines of a run in input order.
func (s *SQLiteStore) Results(ctx context.Context, runID string) ([]CodeResult, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM runs WHERE id = ?`, runID).Scan(&n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT seq, code, presses, value, complexity FROM results WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var out []CodeResult
	for rows.Next() {
		var (
			r                          CodeResult
			presses, value, complexity string
		)
		if err := rows.Scan(&r.Seq, &r.Code, &presses, &value, &complexity); err != nil {
			return nil, err
		}
		for _, f := range []struct {
			dst *uint64
			src string
		}{{&r.Presses, presses}, {&r.Value, value}, {&r.Complexity, complexity}} {
			if *f.dst, err = parseU(f.src); err != nil {
				return nil, fmt.Errorf("result %d: %w", r.Seq, err)
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func formatU(v uint64) string { return strconv.FormatUint(v, 10) }

func parseU(s string) (uint64, error) { return strconv.ParseUint(strings.TrimSpace(s), 10, 64) }
