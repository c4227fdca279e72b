// Package journal persists completed suite runs to a local SQLite file,
// giving failure history across invocations. It records outcomes only;
// it does not replay prior sessions.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/shipq/propcheck/suite"
)

const schema = `
CREATE TABLE IF NOT EXISTS suite_runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	suite       TEXT    NOT NULL,
	recorded_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS check_results (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id             INTEGER NOT NULL REFERENCES suite_runs(id),
	name               TEXT    NOT NULL,
	seed               INTEGER NOT NULL,
	total_runs         INTEGER NOT NULL,
	failures           INTEGER NOT NULL,
	first_failure      INTEGER NOT NULL,
	first_failure_kind TEXT    NOT NULL,
	counter_example    TEXT    NOT NULL,
	err                TEXT    NOT NULL,
	elapsed_ns         INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_check_results_run ON check_results(run_id);
`

// Journal is an append-only store of suite runs.
type Journal struct {
	sqlDB *sql.DB
}

// RunSummary describes one recorded suite run.
type RunSummary struct {
	RunID      int64
	Suite      string
	RecordedAt time.Time
	Checks     int
	Failed     int
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping journal db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create journal schema: %w", err)
	}
	return &Journal{sqlDB: sqlDB}, nil
}

// Close closes the underlying database handle.
func (j *Journal) Close() error {
	if j == nil || j.sqlDB == nil {
		return nil
	}
	return j.sqlDB.Close()
}

// Append records one completed suite run and returns its journal id.
func (j *Journal) Append(ctx context.Context, suiteName string, results []suite.Result) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	tx, err := j.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin journal tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO suite_runs (suite, recorded_at) VALUES (?, ?)`,
		suiteName, time.Now().UTC().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("insert suite run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("suite run id: %w", err)
	}

	for _, r := range results {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO check_results
			    (run_id, name, seed, total_runs, failures, first_failure,
			     first_failure_kind, counter_example, err, elapsed_ns)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, r.Name, r.Seed, r.TotalRuns, r.Failures, r.FirstFailure,
			r.FirstFailureKind, r.CounterExample, r.Err, r.Elapsed.Nanoseconds())
		if err != nil {
			return 0, fmt.Errorf("insert check result %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit journal tx: %w", err)
	}
	return runID, nil
}

// RecentRuns lists the most recent runs for a suite, newest first.
func (j *Journal) RecentRuns(ctx context.Context, suiteName string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.sqlDB.QueryContext(ctx,
		`SELECT r.id, r.suite, r.recorded_at,
		        COUNT(c.id),
		        COALESCE(SUM(CASE WHEN c.first_failure > 0 OR c.err != '' THEN 1 ELSE 0 END), 0)
		   FROM suite_runs r
		   LEFT JOIN check_results c ON c.run_id = r.id
		  WHERE r.suite = ?
		  GROUP BY r.id
		  ORDER BY r.id DESC
		  LIMIT ?`,
		suiteName, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var s RunSummary
		var millis int64
		if err := rows.Scan(&s.RunID, &s.Suite, &millis, &s.Checks, &s.Failed); err != nil {
			return nil, fmt.Errorf("scan run summary: %w", err)
		}
		s.RecordedAt = time.UnixMilli(millis).UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

// RunResults returns the recorded check rows for one run, in insertion
// order.
func (j *Journal) RunResults(ctx context.Context, runID int64) ([]suite.Result, error) {
	rows, err := j.sqlDB.QueryContext(ctx,
		`SELECT name, seed, total_runs, failures, first_failure,
		        first_failure_kind, counter_example, err, elapsed_ns
		   FROM check_results
		  WHERE run_id = ?
		  ORDER BY id`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("query run results: %w", err)
	}
	defer rows.Close()

	var out []suite.Result
	for rows.Next() {
		var r suite.Result
		var elapsedNS int64
		if err := rows.Scan(&r.Name, &r.Seed, &r.TotalRuns, &r.Failures, &r.FirstFailure,
			&r.FirstFailureKind, &r.CounterExample, &r.Err, &elapsedNS); err != nil {
			return nil, fmt.Errorf("scan check result: %w", err)
		}
		r.Elapsed = time.Duration(elapsedNS)
		out = append(out, r)
	}
	return out, rows.Err()
}
