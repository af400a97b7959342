package service

import (
	"context"
	"sort"
	"time"

	"project_manager/internal/models"
	"project_manager/internal/repository"
)

// SchedulerService assigns sequential due dates to a project's tasks:
// the i-th task (ordered by id ascending) gets start + i days. There is no
// conflict detection, workload balancing or dependency ordering, and
// WorkHoursPerDay is deliberately not consulted.
type SchedulerService struct {
	taskRepo    repository.TaskRepo
	projectRepo repository.ProjectRepo
	eventRepo   repository.EventRepo
}

func NewSchedulerService(taskRepo repository.TaskRepo, projectRepo repository.ProjectRepo, eventRepo repository.EventRepo) *SchedulerService {
	return &SchedulerService{taskRepo: taskRepo, projectRepo: projectRepo, eventRepo: eventRepo}
}

// AutoSchedule rewrites every task's due date and returns the assignments.
func (s *SchedulerService) AutoSchedule(ctx context.Context, userID, projectID int, p ScheduleParams) (ScheduleResult, error) {
	proj, err := s.projectRepo.GetByIDAndOwner(ctx, projectID, userID)
	if err != nil {
		return ScheduleResult{}, err
	}
	if proj == nil {
		return ScheduleResult{}, ErrNotFound
	}

	tasks, err := s.taskRepo.ListByProject(ctx, projectID)
	if err != nil {
		return ScheduleResult{}, err
	}

	// Assignment order is id ascending regardless of how the rows arrived.
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	start := time.Now().UTC()
	if p.Start != nil {
		start = p.Start.UTC()
	}

	result := ScheduleResult{
		ProjectID:      projectID,
		ScheduledTasks: make([]ScheduledTask, 0, len(tasks)),
	}
	for i, t := range tasks {
		due := start.AddDate(0, 0, i)
		if err := s.taskRepo.SetDueDate(ctx, t.ID, due); err != nil {
			return ScheduleResult{}, err
		}
		result.ScheduledTasks = append(result.ScheduledTasks, ScheduledTask{
			ID:      t.ID,
			Title:   t.Title,
			DueDate: due,
		})
	}

	appendEvent(ctx, s.eventRepo, models.ActivityEvent{
		UserID:      userID,
		Type:        EventProjectScheduled,
		Description: "Project auto-scheduled: " + proj.Title,
		Metadata: map[string]any{
			"project_id": projectID,
			"task_count": len(tasks),
			"start_date": start,
		},
	})
	return result, nil
}
