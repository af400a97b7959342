package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"project_manager/internal/models"
)

type ProjectSQLite struct {
	db *sql.DB
}

func NewProjectSQLite(db *sql.DB) *ProjectSQLite { return &ProjectSQLite{db: db} }

var _ ProjectRepo = (*ProjectSQLite)(nil)

const (
	insertProjectSQL = `INSERT INTO projects (title, description, user_id, created_at) VALUES (?, ?, ?, ?)`

	selectProjectsByOwnerSQL = `
		SELECT id, title, description, user_id, created_at
		FROM projects WHERE user_id = ? ORDER BY id ASC
	`

	selectProjectByIDAndOwnerSQL = `
		SELECT id, title, description, user_id, created_at
		FROM projects WHERE id = ? AND user_id = ?
	`

	updateProjectSQL = `UPDATE projects SET title = ?, description = ? WHERE id = ?`

	deleteTasksOfProjectSQL = `DELETE FROM tasks WHERE project_id = ?`
	deleteProjectSQL        = `DELETE FROM projects WHERE id = ?`
)

// ListByOwner returns every project owned by userID, oldest first.
func (r *ProjectSQLite) ListByOwner(ctx context.Context, userID int) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, selectProjectsByOwnerSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches a project only if it belongs to userID.
// Returns (nil, nil) when absent or owned by someone else.
func (r *ProjectSQLite) GetByIDAndOwner(ctx context.Context, id, userID int) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, selectProjectByIDAndOwnerSQL, id, userID)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select project %d: %w", id, err)
	}
	return &p, nil
}

// Create inserts the project and returns it with its generated ID.
func (r *ProjectSQLite) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	} else {
		p.CreatedAt = p.CreatedAt.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertProjectSQL, p.Title, p.Description, p.UserID, p.CreatedAt)
	if err != nil {
		return models.Project{}, fmt.Errorf("insert project %q: %w", p.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Project{}, fmt.Errorf("get last insert id for project %q: %w", p.Title, err)
	}
	p.ID = int(lastID)
	return p, nil
}

// Update overwrites title and description.
func (r *ProjectSQLite) Update(ctx context.Context, p models.Project) error {
	_, err := r.db.ExecContext(ctx, updateProjectSQL, p.Title, p.Description, p.ID)
	if err != nil {
		return fmt.Errorf("update project %d: %w", p.ID, err)
	}
	return nil
}

// DeleteWithTasks removes the project's tasks and then the project itself
// inside a single transaction, so a crash cannot leave orphan tasks behind.
func (r *ProjectSQLite) DeleteWithTasks(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete project %d: %w", id, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteTasksOfProjectSQL, id); err != nil {
		return fmt.Errorf("delete tasks of project %d: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, deleteProjectSQL, id); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete project %d: %w", id, err)
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (models.Project, error) {
	var p models.Project
	var desc sql.NullString
	if err := s.Scan(&p.ID, &p.Title, &desc, &p.UserID, &p.CreatedAt); err != nil {
		return models.Project{}, err
	}
	if desc.Valid {
		p.Description = desc.String
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
