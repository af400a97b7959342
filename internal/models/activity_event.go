package models

import "time"

// ActivityEvent is a single audit log entry for a user's mutations.
type ActivityEvent struct {
	EventID     string    `json:"event_id"`
	UserID      int       `json:"-"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // e.g. PROJECT_CREATED, TASK_TOGGLED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
