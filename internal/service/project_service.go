package service

import (
	"context"
	"fmt"
	"time"

	"project_manager/internal/models"
	"project_manager/internal/repository"
)

const (
	minTitleLen = 3
	maxTitleLen = 100
)

type ProjectService struct {
	projectRepo repository.ProjectRepo
	eventRepo   repository.EventRepo
}

func NewProjectService(projectRepo repository.ProjectRepo, eventRepo repository.EventRepo) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, eventRepo: eventRepo}
}

// List returns every project owned by userID.
func (s *ProjectService) List(ctx context.Context, userID int) ([]models.Project, error) {
	return s.projectRepo.ListByOwner(ctx, userID)
}

// Create validates the title and persists a new project for userID.
func (s *ProjectService) Create(ctx context.Context, userID int, title, description string) (models.Project, error) {
	if len(title) < minTitleLen || len(title) > maxTitleLen {
		return models.Project{}, invalidInput(fmt.Sprintf("title must be %d-%d chars", minTitleLen, maxTitleLen))
	}

	p, err := s.projectRepo.Create(ctx, models.Project{
		Title:       title,
		Description: description,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return models.Project{}, err
	}

	appendEvent(ctx, s.eventRepo, models.ActivityEvent{
		UserID:      userID,
		Type:        EventProjectCreated,
		Description: "Project created: " + p.Title,
		Metadata:    map[string]any{"project_id": p.ID},
	})
	return p, nil
}

// Update overwrites title/description of a project owned by userID.
func (s *ProjectService) Update(ctx context.Context, userID, id int, title, description string) (models.Project, error) {
	p, err := s.projectRepo.GetByIDAndOwner(ctx, id, userID)
	if err != nil {
		return models.Project{}, err
	}
	if p == nil {
		return models.Project{}, ErrNotFound
	}

	// Update accepts any title of at least minTitleLen; only Create caps the length.
	if len(title) < minTitleLen {
		return models.Project{}, invalidInput(fmt.Sprintf("title must be at least %d chars", minTitleLen))
	}

	p.Title = title
	p.Description = description
	if err := s.projectRepo.Update(ctx, *p); err != nil {
		return models.Project{}, err
	}

	appendEvent(ctx, s.eventRepo, models.ActivityEvent{
		UserID:      userID,
		Type:        EventProjectUpdated,
		Description: "Project updated: " + p.Title,
		Metadata:    map[string]any{"project_id": p.ID},
	})
	return *p, nil
}

// Delete removes the project and all of its tasks.
func (s *ProjectService) Delete(ctx context.Context, userID, id int) error {
	p, err := s.projectRepo.GetByIDAndOwner(ctx, id, userID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	if err := s.projectRepo.DeleteWithTasks(ctx, id); err != nil {
		return err
	}

	appendEvent(ctx, s.eventRepo, models.ActivityEvent{
		UserID:      userID,
		Type:        EventProjectDeleted,
		Description: "Project deleted: " + p.Title,
		Metadata:    map[string]any{"project_id": id},
	})
	return nil
}
