package service

import (
	"context"
	"testing"
	"time"

	"project_manager/internal/models"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

// Function-field mocks for the repository interfaces, shared by the
// service tests in this package.

type mockAuthRepo struct {
	CreateFn         func(username, email, hash string) (int, error)
	GetByLoginFn     func(login string) (*models.User, error)
	UsernameExistsFn func(username string) (bool, error)

	createCalls []struct {
		username string
		email    string
		hash     string
	}
	getCalls []string
}

func (m *mockAuthRepo) Create(username, email, hash string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		username string
		email    string
		hash     string
	}{username: username, email: email, hash: hash})
	return m.CreateFn(username, email, hash)
}

func (m *mockAuthRepo) GetByLogin(login string) (*models.User, error) {
	m.getCalls = append(m.getCalls, login)
	return m.GetByLoginFn(login)
}

func (m *mockAuthRepo) UsernameExists(username string) (bool, error) {
	if m.UsernameExistsFn == nil {
		return false, nil
	}
	return m.UsernameExistsFn(username)
}

type mockProjectRepo struct {
	ListByOwnerFn     func(userID int) ([]models.Project, error)
	GetByIDAndOwnerFn func(id, userID int) (*models.Project, error)
	CreateFn          func(p models.Project) (models.Project, error)
	UpdateFn          func(p models.Project) error
	DeleteWithTasksFn func(id int) error

	deletedIDs []int
	updated    []models.Project
}

func (m *mockProjectRepo) ListByOwner(_ context.Context, userID int) ([]models.Project, error) {
	return m.ListByOwnerFn(userID)
}

func (m *mockProjectRepo) GetByIDAndOwner(_ context.Context, id, userID int) (*models.Project, error) {
	return m.GetByIDAndOwnerFn(id, userID)
}

func (m *mockProjectRepo) Create(_ context.Context, p models.Project) (models.Project, error) {
	return m.CreateFn(p)
}

func (m *mockProjectRepo) Update(_ context.Context, p models.Project) error {
	m.updated = append(m.updated, p)
	return m.UpdateFn(p)
}

func (m *mockProjectRepo) DeleteWithTasks(_ context.Context, id int) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.DeleteWithTasksFn(id)
}

type mockTaskRepo struct {
	ListByProjectFn   func(projectID int) ([]models.Task, error)
	GetByIDAndOwnerFn func(id, userID int) (*models.Task, error)
	CreateFn          func(t models.Task) (models.Task, error)
	UpdateFn          func(t models.Task) error
	SetDueDateFn      func(id int, due time.Time) error
	DeleteFn          func(id int) error

	updated    []models.Task
	dueDates   map[int]time.Time
	deletedIDs []int
}

func (m *mockTaskRepo) ListByProject(_ context.Context, projectID int) ([]models.Task, error) {
	return m.ListByProjectFn(projectID)
}

func (m *mockTaskRepo) GetByIDAndOwner(_ context.Context, id, userID int) (*models.Task, error) {
	return m.GetByIDAndOwnerFn(id, userID)
}

func (m *mockTaskRepo) Create(_ context.Context, t models.Task) (models.Task, error) {
	return m.CreateFn(t)
}

func (m *mockTaskRepo) Update(_ context.Context, t models.Task) error {
	m.updated = append(m.updated, t)
	return m.UpdateFn(t)
}

func (m *mockTaskRepo) SetDueDate(_ context.Context, id int, due time.Time) error {
	if m.dueDates == nil {
		m.dueDates = make(map[int]time.Time)
	}
	m.dueDates[id] = due
	if m.SetDueDateFn == nil {
		return nil
	}
	return m.SetDueDateFn(id, due)
}

func (m *mockTaskRepo) Delete(_ context.Context, id int) error {
	m.deletedIDs = append(m.deletedIDs, id)
	return m.DeleteFn(id)
}

type mockEventRepo struct {
	appended []models.ActivityEvent
	ListFn   func(userID int, from, to time.Time, typ string) ([]models.ActivityEvent, error)

	appendErr error
}

func (m *mockEventRepo) Append(_ context.Context, e models.ActivityEvent) error {
	m.appended = append(m.appended, e)
	return m.appendErr
}

func (m *mockEventRepo) List(_ context.Context, userID int, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	return m.ListFn(userID, from, to, typ)
}
