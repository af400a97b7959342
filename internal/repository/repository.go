package repository

import (
	"context"
	"database/sql"
	"time"

	"project_manager/internal/models"
)

type Authorization interface {
	Create(username, email, hash string) (int, error)
	GetByLogin(usernameOrEmail string) (*models.User, error)
	UsernameExists(username string) (bool, error)
}

type ProjectRepo interface {
	ListByOwner(ctx context.Context, userID int) ([]models.Project, error)
	GetByIDAndOwner(ctx context.Context, id, userID int) (*models.Project, error)
	Create(ctx context.Context, p models.Project) (models.Project, error)
	Update(ctx context.Context, p models.Project) error
	DeleteWithTasks(ctx context.Context, id int) error
}

type TaskRepo interface {
	ListByProject(ctx context.Context, projectID int) ([]models.Task, error)
	GetByIDAndOwner(ctx context.Context, id, userID int) (*models.Task, error)
	Create(ctx context.Context, t models.Task) (models.Task, error)
	Update(ctx context.Context, t models.Task) error
	SetDueDate(ctx context.Context, id int, due time.Time) error
	Delete(ctx context.Context, id int) error
}

type EventRepo interface {
	Append(ctx context.Context, e models.ActivityEvent) error
	List(ctx context.Context, userID int, from, to time.Time, typ string) ([]models.ActivityEvent, error)
}

type Repository struct {
	Auth     Authorization
	Projects ProjectRepo
	Tasks    TaskRepo
	Events   EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:     NewUserRepository(db),
		Projects: NewProjectSQLite(db),
		Tasks:    NewTaskSQLite(db),
		Events:   NewEventSQLite(db),
	}
}
