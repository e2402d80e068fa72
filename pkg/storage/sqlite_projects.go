package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
	"github.com/Laman1911/AS-Calculation/pkg/domain/tracking"
)

const (
	projectColumns = `id, name, description, start_date, end_date, status, budget, hourly_rate, created_at`

	listProjectsSQL  = `SELECT ` + projectColumns + ` FROM projects ORDER BY id`
	getProjectSQL    = `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	createProjectSQL = `INSERT INTO projects (name, description, start_date, end_date, status, budget, hourly_rate, created_at)
  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	updateProjectSQL = `UPDATE projects SET name = ?, description = ?, start_date = ?, end_date = ?, status = ?,
  budget = ?, hourly_rate = ? WHERE id = ?`
	deleteProjectSQL = `DELETE FROM projects WHERE id = ?`

	subProjectColumns = `id, project_id, name, description`

	listSubProjectsSQL  = `SELECT ` + subProjectColumns + ` FROM subprojects WHERE project_id = ? ORDER BY id`
	getSubProjectSQL    = `SELECT ` + subProjectColumns + ` FROM subprojects WHERE id = ?`
	createSubProjectSQL = `INSERT INTO subprojects (project_id, name, description) VALUES (?, ?, ?)`
	updateSubProjectSQL = `UPDATE subprojects SET project_id = ?, name = ?, description = ? WHERE id = ?`
	deleteSubProjectSQL = `DELETE FROM subprojects WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*tracking.Project, error) {
	var (
		p          tracking.Project
		start, end sql.NullString
		status     string
		createdAt  string
		err        error
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &start, &end, &status, &p.Budget, &p.HourlyRate, &createdAt); err != nil {
		return nil, err
	}
	p.Status = tracking.ProjectStatus(status)
	if p.StartDate, err = scanDate(start); err != nil {
		return nil, err
	}
	if p.EndDate, err = scanDate(end); err != nil {
		return nil, err
	}
	if createdAt != "" {
		if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, corrupt(fmt.Errorf("invalid created_at %q: %w", createdAt, err))
		}
	}
	return &p, nil
}

func (r *SQLiteRepository) ListProjects() ([]tracking.Project, error) {
	return read(r, func(ctx context.Context) ([]tracking.Project, error) {
		rows, err := r.db.QueryContext(ctx, listProjectsSQL)
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		defer rows.Close()

		projects := []tracking.Project{}
		for rows.Next() {
			p, err := scanProject(rows)
			if err != nil {
				return nil, fmt.Errorf("failed to scan project: %w", err)
			}
			projects = append(projects, *p)
		}
		return projects, rows.Err()
	})
}

func (r *SQLiteRepository) GetProject(id int64) (*tracking.Project, error) {
	p, err := read(r, func(ctx context.Context) (*tracking.Project, error) {
		p, err := scanProject(r.db.QueryRowContext(ctx, getProjectSQL, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load project %d: %w", id, err)
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &domain.NotFoundError{Kind: domain.KindProject, ID: id}
	}
	return p, nil
}

func (r *SQLiteRepository) CreateProject(p *tracking.Project) error {
	if p.Status == "" {
		p.Status = tracking.StatusPlanned
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}
	res, err := r.db.Exec(createProjectSQL, p.Name, p.Description, nullDate(p.StartDate), nullDate(p.EndDate),
		string(p.Status), p.Budget, p.HourlyRate, p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	if p.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read project id: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateProject(p *tracking.Project) error {
	res, err := r.db.Exec(updateProjectSQL, p.Name, p.Description, nullDate(p.StartDate), nullDate(p.EndDate),
		string(p.Status), p.Budget, p.HourlyRate, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update project %d: %w", p.ID, err)
	}
	return r.expectRow(res, domain.KindProject, p.ID)
}

func (r *SQLiteRepository) DeleteProject(id int64) error {
	res, err := r.db.Exec(deleteProjectSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	return r.expectRow(res, domain.KindProject, id)
}

func scanSubProject(row rowScanner) (*tracking.SubProject, error) {
	var sp tracking.SubProject
	if err := row.Scan(&sp.ID, &sp.ProjectID, &sp.Name, &sp.Description); err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *SQLiteRepository) ListSubProjects(projectID int64) ([]tracking.SubProject, error) {
	return read(r, func(ctx context.Context) ([]tracking.SubProject, error) {
		rows, err := r.db.QueryContext(ctx, listSubProjectsSQL, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to list subprojects: %w", err)
		}
		defer rows.Close()

		subs := []tracking.SubProject{}
		for rows.Next() {
			sp, err := scanSubProject(rows)
			if err != nil {
				return nil, fmt.Errorf("failed to scan subproject: %w", err)
			}
			subs = append(subs, *sp)
		}
		return subs, rows.Err()
	})
}

func (r *SQLiteRepository) GetSubProject(id int64) (*tracking.SubProject, error) {
	sp, err := read(r, func(ctx context.Context) (*tracking.SubProject, error) {
		sp, err := scanSubProject(r.db.QueryRowContext(ctx, getSubProjectSQL, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load subproject %d: %w", id, err)
		}
		return sp, nil
	})
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, &domain.NotFoundError{Kind: domain.KindSubProject, ID: id}
	}
	return sp, nil
}

func (r *SQLiteRepository) CreateSubProject(sp *tracking.SubProject) error {
	res, err := r.db.Exec(createSubProjectSQL, sp.ProjectID, sp.Name, sp.Description)
	if err != nil {
		return fmt.Errorf("failed to create subproject: %w", err)
	}
	if sp.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("failed to read subproject id: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateSubProject(sp *tracking.SubProject) error {
	res, err := r.db.Exec(updateSubProjectSQL, sp.ProjectID, sp.Name, sp.Description, sp.ID)
	if err != nil {
		return fmt.Errorf("failed to update subproject %d: %w", sp.ID, err)
	}
	return r.expectRow(res, domain.KindSubProject, sp.ID)
}

func (r *SQLiteRepository) DeleteSubProject(id int64) error {
	res, err := r.db.Exec(deleteSubProjectSQL, id)
	if err != nil {
		return fmt.Errorf("failed to delete subproject %d: %w", id, err)
	}
	return r.expectRow(res, domain.KindSubProject, id)
}

func (r *SQLiteRepository) expectRow(res sql.Result, kind string, id int64) error {
	ok, err := checkAffected(res)
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if !ok {
		return &domain.NotFoundError{Kind: kind, ID: id}
	}
	return nil
}
