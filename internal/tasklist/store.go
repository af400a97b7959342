package tasklist

import "sync"

// TaskItem is the standalone app's task shape: no projects, no owners.
type TaskItem struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}

// Store keeps the task list in memory. Nothing survives a restart.
type Store struct {
	mu    sync.RWMutex
	tasks []TaskItem
}

// NewStore returns a store seeded with a single sample task.
func NewStore() *Store {
	return &Store{
		tasks: []TaskItem{
			{ID: 1, Description: "Sample task", IsCompleted: false},
		},
	}
}

// List returns a snapshot of all tasks.
func (s *Store) List() []TaskItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]TaskItem, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Add appends a new incomplete task. IDs are max existing id + 1.
func (s *Store) Add(description string) TaskItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	nextID := 1
	for _, t := range s.tasks {
		if t.ID >= nextID {
			nextID = t.ID + 1
		}
	}
	task := TaskItem{ID: nextID, Description: description, IsCompleted: false}
	s.tasks = append(s.tasks, task)
	return task
}

// Toggle flips a task's completion flag. ok is false for unknown ids.
func (s *Store) Toggle(id int) (TaskItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
			return s.tasks[i], true
		}
	}
	return TaskItem{}, false
}

// Remove deletes a task by id. ok is false for unknown ids.
func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}
