package models

import "time"

// Task belongs to exactly one project. DueDate is optional.
type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	ProjectID   int        `json:"project_id"`
}
