package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
)

const (
	// migrations
	createProjectsTableSQL = `
  CREATE TABLE IF NOT EXISTS projects (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  start_date TEXT,
  end_date TEXT,
  status TEXT NOT NULL DEFAULT 'planned',
  budget REAL NOT NULL DEFAULT 0,
  hourly_rate REAL NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
  )`

	createSubProjectsTableSQL = `
  CREATE TABLE IF NOT EXISTS subprojects (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  project_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
  )`

	createTasksTableSQL = `
  CREATE TABLE IF NOT EXISTS tasks (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  project_id INTEGER NOT NULL,
  subproject_id INTEGER,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  estimated_hours INTEGER,
  deadline TEXT,
  FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
  FOREIGN KEY (subproject_id) REFERENCES subprojects(id) ON DELETE SET NULL
  )`

	createTimeEntriesTableSQL = `
  CREATE TABLE IF NOT EXISTS time_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  task_id INTEGER NOT NULL,
  work_date TEXT NOT NULL,
  hours INTEGER NOT NULL,
  FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
  )`

	createTasksProjectIndexSQL = `CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`
	createEntriesTaskIndexSQL  = `CREATE INDEX IF NOT EXISTS idx_time_entries_task ON time_entries(task_id)`
)

// SQLiteRepository implements tracking.Repository on a SQLite database.
type SQLiteRepository struct {
	db          *sql.DB
	retryConfig retry.Config
}

// OpenSQLite opens (creating if needed) the database at dbPath and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &SQLiteRepository{
		db: db,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}

	if err := repo.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) runMigrations() error {
	stmts := []string{
		createProjectsTableSQL,
		createSubProjectsTableSQL,
		createTasksTableSQL,
		createTimeEntriesTableSQL,
		createTasksProjectIndexSQL,
		createEntriesTaskIndexSQL,
	}

	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// corruptRowError marks a stored value that cannot be decoded. Reading it again gives the same result.
type corruptRowError struct {
	err error
}

func (e *corruptRowError) Error() string { return e.err.Error() }
func (e *corruptRowError) Unwrap() error { return e.err }

func corrupt(err error) error {
	if err == nil {
		return nil
	}
	return &corruptRowError{err: err}
}

// read runs fn under the repository's retry policy. A corrupt row ends the retries at once.
func read[T any](r *SQLiteRepository, fn func(ctx context.Context) (T, error)) (T, error) {
	var stopped error
	retryer := retry.New[T](r.retryConfig)
	v, err := retryer.Do(context.Background(), func(ctx context.Context) (T, error) {
		v, err := fn(ctx)
		var cre *corruptRowError
		if errors.As(err, &cre) {
			stopped = err
			var zero T
			return zero, nil
		}
		return v, err
	})
	if stopped != nil {
		var zero T
		return zero, stopped
	}
	return v, err
}

// nullDate maps an optional date to a nullable column value.
func nullDate(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(calendar.Layout), Valid: true}
}

func scanDate(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := calendar.ParseOptional(ns.String)
	return t, corrupt(err)
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullID(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// checkAffected reports false when an update or delete touched no row.
func checkAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
