package repository

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"project_manager/internal/models"
)

func newMockTaskRepo(t *testing.T) (*TaskSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewTaskSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestTaskSQLite_ListByProject(t *testing.T) {
	repo, mock, cleanup := newMockTaskRepo(t)
	defer cleanup()

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "title", "due_date", "is_completed", "project_id"}).
		AddRow(1, "Write spec", due, false, 3).
		AddRow(2, "Review", nil, true, 3)

	mock.ExpectQuery(regexp.QuoteMeta(selectTasksByProjectSQL)).
		WithArgs(3).
		WillReturnRows(rows)

	got, err := repo.ListByProject(ctx(t), 3)
	if err != nil {
		t.Fatalf("ListByProject: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 tasks, got %d", len(got))
	}
	if got[0].DueDate == nil || !got[0].DueDate.Equal(due) {
		t.Fatalf("unexpected due date: %v", got[0].DueDate)
	}
	// NULL due_date stays nil
	if got[1].DueDate != nil {
		t.Fatalf("expected nil due date, got %v", got[1].DueDate)
	}
	if !got[1].IsCompleted {
		t.Fatalf("expected second task completed")
	}
}

func TestTaskSQLite_GetByIDAndOwner(t *testing.T) {
	repo, mock, cleanup := newMockTaskRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(selectTaskByIDAndOwnerSQL)).
		WithArgs(5, 7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "due_date", "is_completed", "project_id"}).
			AddRow(5, "Write spec", nil, false, 3))
	// task exists but its project belongs to someone else
	mock.ExpectQuery(regexp.QuoteMeta(selectTaskByIDAndOwnerSQL)).
		WithArgs(5, 8).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "due_date", "is_completed", "project_id"}))

	task, err := repo.GetByIDAndOwner(ctx(t), 5, 7)
	if err != nil {
		t.Fatalf("GetByIDAndOwner: %v", err)
	}
	if task == nil || task.ID != 5 || task.ProjectID != 3 {
		t.Fatalf("unexpected task: %+v", task)
	}

	task, err = repo.GetByIDAndOwner(ctx(t), 5, 8)
	if err != nil {
		t.Fatalf("GetByIDAndOwner (foreign): %v", err)
	}
	if task != nil {
		t.Fatalf("expected nil for foreign task, got %+v", task)
	}
}

func TestTaskSQLite_Create_NilDueDate(t *testing.T) {
	repo, mock, cleanup := newMockTaskRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertTaskSQL)).
		WithArgs("Write spec", nil, false, 3).
		WillReturnResult(sqlmock.NewResult(9, 1))

	task, err := repo.Create(ctx(t), models.Task{Title: "Write spec", ProjectID: 3})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.ID != 9 {
		t.Fatalf("expected id 9, got %d", task.ID)
	}
	if task.IsCompleted {
		t.Fatalf("new task must start incomplete")
	}
}

func TestTaskSQLite_Update(t *testing.T) {
	repo, mock, cleanup := newMockTaskRepo(t)
	defer cleanup()

	due := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(updateTaskSQL)).
		WithArgs("Renamed", due, true, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(ctx(t), models.Task{ID: 9, Title: "Renamed", DueDate: &due, IsCompleted: true, ProjectID: 3})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestTaskSQLite_SetDueDate(t *testing.T) {
	repo, mock, cleanup := newMockTaskRepo(t)
	defer cleanup()

	due := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(updateTaskDueDateSQL)).
		WithArgs(due, 9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetDueDate(ctx(t), 9, due); err != nil {
		t.Fatalf("SetDueDate: %v", err)
	}
}

func TestTaskSQLite_Delete(t *testing.T) {
	repo, mock, cleanup := newMockTaskRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(deleteTaskSQL)).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(ctx(t), 9); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
