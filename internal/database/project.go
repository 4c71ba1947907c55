package database

import (
	"context"
	"database/sql"
	"errors"

	"ganttui/internal/models"
)

// DefaultProjectSlug identifies the project created on first run.
const DefaultProjectSlug = "default"

// EnsureDefaultProject returns the default project's id, creating it if
// this is a fresh database.
func (s *Store) EnsureDefaultProject(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM projects WHERE slug = ?", DefaultProjectSlug).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, wrapProjectErr("ensure default", 0, err)
	}
	return s.CreateProject(ctx, "Default", DefaultProjectSlug)
}

// CreateProject inserts a project and returns its id.
func (s *Store) CreateProject(ctx context.Context, name, slug string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO projects (name, slug) VALUES (?, ?)", name, slug)
	if err != nil {
		return 0, wrapProjectErr("create", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapProjectErr("create", 0, err)
	}
	return id, nil
}

// GetProjects lists all projects.
func (s *Store) GetProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, slug FROM projects ORDER BY id")
	if err != nil {
		return nil, wrapProjectErr("list", 0, err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var slug sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &slug); err != nil {
			return nil, wrapProjectErr("list", 0, err)
		}
		p.Slug = slug.String
		projects = append(projects, p)
	}
	return projects, wrapProjectErr("list", 0, rows.Err())
}

// GetProject returns one project by id.
func (s *Store) GetProject(ctx context.Context, id int64) (models.Project, error) {
	var p models.Project
	var slug sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT id, name, slug FROM projects WHERE id = ?", id).
		Scan(&p.ID, &p.Name, &slug)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, wrapProjectErr("get", id, ErrProjectNotFound)
	}
	if err != nil {
		return models.Project{}, wrapProjectErr("get", id, err)
	}
	p.Slug = slug.String
	return p, nil
}
