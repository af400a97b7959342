package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"project_manager/internal/models"
)

type TaskSQLite struct {
	db *sql.DB
}

func NewTaskSQLite(db *sql.DB) *TaskSQLite { return &TaskSQLite{db: db} }

var _ TaskRepo = (*TaskSQLite)(nil)

const (
	insertTaskSQL = `INSERT INTO tasks (title, due_date, is_completed, project_id) VALUES (?, ?, ?, ?)`

	selectTasksByProjectSQL = `
		SELECT id, title, due_date, is_completed, project_id
		FROM tasks WHERE project_id = ? ORDER BY id ASC
	`

	// Ownership travels through the parent project: a task is reachable
	// only when its project belongs to the requesting user.
	selectTaskByIDAndOwnerSQL = `
		SELECT t.id, t.title, t.due_date, t.is_completed, t.project_id
		FROM tasks t JOIN projects p ON p.id = t.project_id
		WHERE t.id = ? AND p.user_id = ?
	`

	updateTaskSQL        = `UPDATE tasks SET title = ?, due_date = ?, is_completed = ? WHERE id = ?`
	updateTaskDueDateSQL = `UPDATE tasks SET due_date = ? WHERE id = ?`
	deleteTaskSQL        = `DELETE FROM tasks WHERE id = ?`
)

// ListByProject returns the project's tasks ordered by id ascending.
func (r *TaskSQLite) ListByProject(ctx context.Context, projectID int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, selectTasksByProjectSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks of project %d: %w", projectID, err)
	}
	defer rows.Close()

	out := make([]models.Task, 0, 16)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndOwner fetches a task only if its project belongs to userID.
// Returns (nil, nil) when absent or owned by someone else.
func (r *TaskSQLite) GetByIDAndOwner(ctx context.Context, id, userID int) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx, selectTaskByIDAndOwnerSQL, id, userID)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select task %d: %w", id, err)
	}
	return &t, nil
}

// Create inserts the task and returns it with its generated ID.
func (r *TaskSQLite) Create(ctx context.Context, t models.Task) (models.Task, error) {
	res, err := r.db.ExecContext(ctx, insertTaskSQL, t.Title, dueDateArg(t.DueDate), t.IsCompleted, t.ProjectID)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task %q: %w", t.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.Task{}, fmt.Errorf("get last insert id for task %q: %w", t.Title, err)
	}
	t.ID = int(lastID)
	return t, nil
}

// Update overwrites title, due date and completion flag.
func (r *TaskSQLite) Update(ctx context.Context, t models.Task) error {
	_, err := r.db.ExecContext(ctx, updateTaskSQL, t.Title, dueDateArg(t.DueDate), t.IsCompleted, t.ID)
	if err != nil {
		return fmt.Errorf("update task %d: %w", t.ID, err)
	}
	return nil
}

// SetDueDate rewrites only the due date; used by the scheduler.
func (r *TaskSQLite) SetDueDate(ctx context.Context, id int, due time.Time) error {
	_, err := r.db.ExecContext(ctx, updateTaskDueDateSQL, due.UTC(), id)
	if err != nil {
		return fmt.Errorf("set due date of task %d: %w", id, err)
	}
	return nil
}

// Delete removes a single task row.
func (r *TaskSQLite) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, deleteTaskSQL, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// dueDateArg converts an optional due date to a NULL-able SQL argument in UTC.
func dueDateArg(due *time.Time) any {
	if due == nil {
		return nil
	}
	return due.UTC()
}

func scanTask(s scanner) (models.Task, error) {
	var t models.Task
	var due sql.NullTime
	if err := s.Scan(&t.ID, &t.Title, &due, &t.IsCompleted, &t.ProjectID); err != nil {
		return models.Task{}, err
	}
	if due.Valid {
		utc := due.Time.UTC()
		t.DueDate = &utc
	}
	return t, nil
}
