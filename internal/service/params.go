package service

import "time"

// ScheduleParams carries the optional auto-schedule inputs.
// WorkHoursPerDay is accepted for API compatibility but does not influence
// the produced schedule.
type ScheduleParams struct {
	Start           *time.Time
	WorkHoursPerDay int
}

// ScheduledTask is one row of an auto-schedule result.
type ScheduledTask struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	DueDate time.Time `json:"due_date"`
}

// ScheduleResult reports the due dates assigned to a project's tasks.
type ScheduleResult struct {
	ProjectID      int             `json:"project_id"`
	ScheduledTasks []ScheduledTask `json:"scheduled_tasks"`
}

// EventFilter supports activity history filtering by time range and type.
type EventFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", or one of the Event* constants
}

// Activity event types recorded by the mutating services.
const (
	EventProjectCreated   = "PROJECT_CREATED"
	EventProjectUpdated   = "PROJECT_UPDATED"
	EventProjectDeleted   = "PROJECT_DELETED"
	EventProjectScheduled = "PROJECT_SCHEDULED"
	EventTaskCreated      = "TASK_CREATED"
	EventTaskUpdated      = "TASK_UPDATED"
	EventTaskToggled      = "TASK_TOGGLED"
	EventTaskDeleted      = "TASK_DELETED"
)
