package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/calendar"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

const (
	taskColumns = `id, project_id, subproject_id, name, description, estimated_hours, deadline`

	listTasksByProjectSQL    = `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = ? ORDER BY id`
	listTasksBySubProjectSQL = `SELECT ` + taskColumns + ` FROM tasks WHERE subproject_id = ? ORDER BY id`
	getTaskSQL               = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	createTaskSQL            = `INSERT INTO tasks (project_id, subproject_id, name, description, estimated_hours, deadline)
  VALUES (?, ?, ?, ?, ?, ?)`
	updateTaskSQL = `UPDATE tasks SET project_id = ?, subproject_id = ?, name = ?, description = ?,
  estimated_hours = ?, deadline = ? WHERE id = ?`
	deleteTaskSQL = `DELETE FROM tasks WHERE id = ?`

	entryColumns = `id, task_id, work_date, hours`

	listEntriesByTaskSQL = `SELECT ` + entryColumns + ` FROM time_entries WHERE task_id = ? ORDER BY work_date, id`
	getEntrySQL          = `SELECT ` + entryColumns + ` FROM time_entries WHERE id = ?`
	createEntrySQL       = `INSERT INTO time_entries (task_id, work_date, hours) VALUES (?, ?, ?)`
	updateEntrySQL       = `UPDATE time_entries SET task_id = ?, work_date = ?, hours = ? WHERE id = ?`
	deleteEntrySQL       = `DELETE FROM time_entries WHERE id = ?`

	sumHoursByProjectSQL = `SELECT COALESCE(SUM(te.hours), 0) FROM time_entries te
  JOIN tasks t ON t.id = te.task_id WHERE t.project_id = ?`
)

func scanTask(row rowScanner) (*tracking.Task, error) {
	var (
		t        tracking.Task
		subID    sql.NullInt64
		est      sql.NullInt64
		deadline sql.NullString
		err      error
	)
	if err := row.Scan(&t.ID, &t.ProjectID, &subID, &t.Name, &t.Description, &est, &deadline); err != nil {
		return nil, err
	}
	if subID.Valid {
		id := subID.Int64
		t.SubProjectID = &id
	}
	if est.Valid {
		h := int(est.Int64)
		t.EstimatedHours = &h
	}
	if t.Deadline, err = scanDate(deadline); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteRepository) listTasks(query string, arg int64) ([]tracking.Task, error) {
	return read(r, func(ctx context.Context) ([]tracking.Task, error) {
		rows, err := r.db.QueryContext(ctx, query, arg)
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		defer rows.Close()

		tasks := []tracking.Task{}
		for rows.Next() {
			t, err := scanTask(rows)
			if err != nil {
				return nil, fmt.Errorf("failed to scan task: %w", err)
			}
			tasks = append(tasks, *t)
		}
		return tasks, rows.Err()
	})
}

func (r *SQLiteRepository) ListTasksByProject(projectID int64) ([]tracking.Task, error) {
	return r.listTasks(listTasksByProjectSQL, projectID)
}

func (r *SQLiteRepository) ListTasksBySubProject(subProjectID int64) ([]tracking.Task, error) {
	return r.listTasks(listTasksBySubProjectSQL, subProjectID)
}

func (r *SQLiteRepository) GetTask(id int64) (*tracking.Task, error) {
	t, err := read(r, func(ctx context.Context) (*tracking.Task, error) {
		t, err := scanTask(r.db.QueryRowContext(ctx, getTaskSQL, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load task %d: %w", id, err)
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, &domain.NotFoundError{Kind: domain.KindTask, ID: id}
	}
	return t, nil
}

func (r *SQLiteRepository) CreateTask(t *tracking.Task) error {
	res, err := r.db.Exec(createTaskSQL, t.ProjectID, nullID(t.SubProjectID), t.Name, t.Description,
		nullInt(t.EstimatedHours), nullDate(t.Deadline))
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	if t.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read task id: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateTask(t *tracking.Task) error {
	res, err := r.db.Exec(updateTaskSQL, t.ProjectID, nullID(t.SubProjectID), t.Name, t.Description,
		nullInt(t.EstimatedHours), nullDate(t.Deadline), t.ID)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", t.ID, err)
	}
	return r.expectRow(res, domain.KindTask, t.ID)
}

func (r *SQLiteRepository) DeleteTask(id int64) error {
	res, err := r.db.Exec(deleteTaskSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return r.expectRow(res, domain.KindTask, id)
}

func scanEntry(row rowScanner) (*tracking.TimeEntry, error) {
	var (
		te       tracking.TimeEntry
		workDate string
	)
	if err := row.Scan(&te.ID, &te.TaskID, &workDate, &te.Hours); err != nil {
		return nil, err
	}
	d, err := calendar.ParseDate(workDate)
	if err != nil {
		return nil, corrupt(err)
	}
	te.WorkDate = d
	return &te, nil
}

func (r *SQLiteRepository) ListTimeEntriesByTask(taskID int64) ([]tracking.TimeEntry, error) {
	return read(r, func(ctx context.Context) ([]tracking.TimeEntry, error) {
		rows, err := r.db.QueryContext(ctx, listEntriesByTaskSQL, taskID)
		if err != nil {
			return nil, fmt.Errorf("failed to list time entries: %w", err)
		}
		defer rows.Close()

		entries := []tracking.TimeEntry{}
		for rows.Next() {
			te, err := scanEntry(rows)
			if err != nil {
				return nil, fmt.Errorf("failed to scan time entry: %w", err)
			}
			entries = append(entries, *te)
		}
		return entries, rows.Err()
	})
}

func (r *SQLiteRepository) GetTimeEntry(id int64) (*tracking.TimeEntry, error) {
	te, err := read(r, func(ctx context.Context) (*tracking.TimeEntry, error) {
		te, err := scanEntry(r.db.QueryRowContext(ctx, getEntrySQL, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load time entry %d: %w", id, err)
		}
		return te, nil
	})
	if err != nil {
		return nil, err
	}
	if te == nil {
		return nil, &domain.NotFoundError{Kind: domain.KindTimeEntry, ID: id}
	}
	return te, nil
}

func (r *SQLiteRepository) CreateTimeEntry(te *tracking.TimeEntry) error {
	res, err := r.db.Exec(createEntrySQL, te.TaskID, te.WorkDate.Format(calendar.Layout), te.Hours)
	if err != nil {
		return fmt.Errorf("failed to create time entry: %w", err)
	}
	if te.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read time entry id: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateTimeEntry(te *tracking.TimeEntry) error {
	res, err := r.db.Exec(updateEntrySQL, te.TaskID, te.WorkDate.Format(calendar.Layout), te.Hours, te.ID)
	if err != nil {
		return fmt.Errorf("failed to update time entry %d: %w", te.ID, err)
	}
	return r.expectRow(res, domain.KindTimeEntry, te.ID)
}

func (r *SQLiteRepository) DeleteTimeEntry(id int64) error {
	res, err := r.db.Exec(deleteEntrySQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete time entry %d: %w", id, err)
	}
	return r.expectRow(res, domain.KindTimeEntry, id)
}

// SumHoursByProject totals every entry logged against the project's tasks. No entries yields 0.
func (r *SQLiteRepository) SumHoursByProject(projectID int64) (int, error) {
	return read(r, func(ctx context.Context) (int, error) {
		var total int
		if err := r.db.QueryRowContext(ctx, sumHoursByProjectSQL, projectID).Scan(&total); err != nil {
			return 0, fmt.Errorf("failed to sum hours for project %d: %w", projectID, err)
		}
		return total, nil
	})
}

var _ tracking.Repository = (*SQLiteRepository)(nil)
