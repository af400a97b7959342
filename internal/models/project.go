package models

import "time"

// Project is a user-owned container of tasks.
type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	UserID      int       `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
