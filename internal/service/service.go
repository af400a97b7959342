package service

import (
	"context"
	"time"

	"project_manager/internal/models"
	"project_manager/internal/repository"
)

type Authorization interface {
	SignUp(username, email, password string) (string, models.User, error)
	SignIn(usernameOrEmail, password string) (string, models.User, error)
	ParseToken(accessToken string) (int, error)
}

// Projects exposes owner-scoped project CRUD.
type Projects interface {
	List(ctx context.Context, userID int) ([]models.Project, error)
	Create(ctx context.Context, userID int, title, description string) (models.Project, error)
	Update(ctx context.Context, userID, id int, title, description string) (models.Project, error)
	Delete(ctx context.Context, userID, id int) error
}

// Tasks exposes task CRUD; every operation re-checks ownership through the parent project.
type Tasks interface {
	ListByProject(ctx context.Context, userID, projectID int) ([]models.Task, error)
	Create(ctx context.Context, userID, projectID int, title string, due *time.Time) (models.Task, error)
	Toggle(ctx context.Context, userID, taskID int) (models.Task, error)
	Update(ctx context.Context, userID, taskID int, title string, due *time.Time) (models.Task, error)
	Delete(ctx context.Context, userID, taskID int) error
}

// Scheduler reassigns sequential due dates to a project's tasks on demand.
type Scheduler interface {
	AutoSchedule(ctx context.Context, userID, projectID int, p ScheduleParams) (ScheduleResult, error)
}

// Activity exposes the append-only audit log with filtering access.
type Activity interface {
	List(ctx context.Context, userID int, f EventFilter) ([]models.ActivityEvent, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Projects
	Tasks
	Scheduler
	Activity
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, tokens TokenConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, tokens),
		Projects:      NewProjectService(repos.Projects, repos.Events),
		Tasks:         NewTaskService(repos.Tasks, repos.Projects, repos.Events),
		Scheduler:     NewSchedulerService(repos.Tasks, repos.Projects, repos.Events),
		Activity:      NewActivityService(repos.Events),
	}
}
