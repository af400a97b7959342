package service

import (
	"context"
	"strings"
	"time"

	"project_manager/internal/models"
	"project_manager/internal/repository"
)

type TaskService struct {
	taskRepo    repository.TaskRepo
	projectRepo repository.ProjectRepo
	eventRepo   repository.EventRepo
}

func NewTaskService(taskRepo repository.TaskRepo, projectRepo repository.ProjectRepo, eventRepo repository.EventRepo) *TaskService {
	return &TaskService{taskRepo: taskRepo, projectRepo: projectRepo, eventRepo: eventRepo}
}

// requireProject checks that projectID belongs to userID.
func (s *TaskService) requireProject(ctx context.Context, userID, projectID int) error {
	p, err := s.projectRepo.GetByIDAndOwner(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return nil
}

// ListByProject returns the project's tasks after an ownership check.
func (s *TaskService) ListByProject(ctx context.Context, userID, projectID int) ([]models.Task, error) {
	if err := s.requireProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByProject(ctx, projectID)
}

// Create adds a task to a project owned by userID.
func (s *TaskService) Create(ctx context.Context, userID, projectID int, title string, due *time.Time) (models.Task, error) {
	if err := s.requireProject(ctx, userID, projectID); err != nil {
		return models.Task{}, err
	}
	if strings.TrimSpace(title) == "" {
		return models.Task{}, invalidInput("task title required")
	}

	t, err := s.taskRepo.Create(ctx, models.Task{
		Title:       title,
		DueDate:     due,
		IsCompleted: false,
		ProjectID:   projectID,
	})
	if err != nil {
		return models.Task{}, err
	}

	appendEvent(ctx, s.eventRepo, models.ActivityEvent{
		UserID:      userID,
		Type:        EventTaskCreated,
		Description: "Task created: " + t.Title,
		Metadata:    map[string]any{"task_id": t.ID, "project_id": projectID},
	})
	return t, nil
}

// Toggle flips is_completed. Two toggles restore the original value.
func (s *TaskService) Toggle(ctx context.Context, userID, taskID int) (models.Task, error) {
	t, err := s.taskRepo.GetByIDAndOwner(ctx, taskID, userID)
	if err != nil {
		return models.Task{}, err
	}
	if t == nil {
		return models.Task{}, ErrNotFound
	}

	t.IsCompleted = !t.IsCompleted
	if err := s.taskRepo.Update(ctx, *t); err != nil {
		return models.Task{}, err
	}

	appendEvent(ctx, s.eventRepo, models.ActivityEvent{
		UserID:      userID,
		Type:        EventTaskToggled,
		Description: "Task toggled: " + t.Title,
		Metadata:    map[string]any{"task_id": t.ID, "is_completed": t.IsCompleted},
	})
	return *t, nil
}

// Update overwrites title and due date of a task reachable by userID.
func (s *TaskService) Update(ctx context.Context, userID, taskID int, title string, due *time.Time) (models.Task, error) {
	t, err := s.taskRepo.GetByIDAndOwner(ctx, taskID, userID)
	if err != nil {
		return models.Task{}, err
	}
	if t == nil {
		return models.Task{}, ErrNotFound
	}
	if strings.TrimSpace(title) == "" {
		return models.Task{}, invalidInput("task title required")
	}

	t.Title = title
	t.DueDate = due
	if err := s.taskRepo.Update(ctx, *t); err != nil {
		return models.Task{}, err
	}

	appendEvent(ctx, s.eventRepo, models.ActivityEvent{
		UserID:      userID,
		Type:        EventTaskUpdated,
		Description: "Task updated: " + t.Title,
		Metadata:    map[string]any{"task_id": t.ID},
	})
	return *t, nil
}

// Delete removes a single task reachable by userID.
func (s *TaskService) Delete(ctx context.Context, userID, taskID int) error {
	t, err := s.taskRepo.GetByIDAndOwner(ctx, taskID, userID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrNotFound
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return err
	}

	appendEvent(ctx, s.eventRepo, models.ActivityEvent{
		UserID:      userID,
		Type:        EventTaskDeleted,
		Description: "Task deleted: " + t.Title,
		Metadata:    map[string]any{"task_id": taskID, "project_id": t.ProjectID},
	})
	return nil
}
