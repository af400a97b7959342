package service

import (
	"errors"
	"strings"
	"testing"

	"project_manager/internal/models"
)

func TestProjectService_Create_Validation(t *testing.T) {
	cases := []struct {
		name  string
		title string
	}{
		{"too short", "ab"},
		{"too long", strings.Repeat("x", 101)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			projects := &mockProjectRepo{
				CreateFn: func(p models.Project) (models.Project, error) {
					t.Fatal("Create should not be called for invalid title")
					return models.Project{}, nil
				},
			}
			svc := NewProjectService(projects, &mockEventRepo{})

			_, err := svc.Create(ctx(t), 7, tc.title, "")
			if !IsValidation(err) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestProjectService_Create_PersistsAndLogsEvent(t *testing.T) {
	projects := &mockProjectRepo{
		CreateFn: func(p models.Project) (models.Project, error) {
			if p.UserID != 7 {
				t.Fatalf("expected user id 7, got %d", p.UserID)
			}
			if p.CreatedAt.IsZero() {
				t.Fatalf("expected CreatedAt to be set")
			}
			p.ID = 11
			return p, nil
		},
	}
	events := &mockEventRepo{}
	svc := NewProjectService(projects, events)

	p, err := svc.Create(ctx(t), 7, "Launch", "rocket stuff")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID != 11 || p.Title != "Launch" {
		t.Fatalf("unexpected project: %+v", p)
	}

	if len(events.appended) != 1 {
		t.Fatalf("expected 1 activity event, got %d", len(events.appended))
	}
	ev := events.appended[0]
	if ev.Type != EventProjectCreated || ev.UserID != 7 {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestProjectService_Create_AuditFailureIsSwallowed(t *testing.T) {
	projects := &mockProjectRepo{
		CreateFn: func(p models.Project) (models.Project, error) {
			p.ID = 11
			return p, nil
		},
	}
	events := &mockEventRepo{appendErr: errors.New("audit store down")}
	svc := NewProjectService(projects, events)

	p, err := svc.Create(ctx(t), 7, "Launch", "")
	if err != nil {
		t.Fatalf("Create must not fail on audit error: %v", err)
	}
	if p.ID != 11 {
		t.Fatalf("unexpected project: %+v", p)
	}
	if len(events.appended) != 1 {
		t.Fatalf("append should still be attempted, got %d", len(events.appended))
	}
}

func TestProjectService_Update_NotOwned(t *testing.T) {
	projects := &mockProjectRepo{
		GetByIDAndOwnerFn: func(id, userID int) (*models.Project, error) {
			return nil, nil // absent or foreign — indistinguishable
		},
	}
	svc := NewProjectService(projects, &mockEventRepo{})

	_, err := svc.Update(ctx(t), 7, 99, "New title", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectService_Update_ShortTitleRejected(t *testing.T) {
	projects := &mockProjectRepo{
		GetByIDAndOwnerFn: func(id, userID int) (*models.Project, error) {
			return &models.Project{ID: id, Title: "Old", UserID: userID}, nil
		},
		UpdateFn: func(p models.Project) error {
			t.Fatal("Update should not be called for invalid title")
			return nil
		},
	}
	svc := NewProjectService(projects, &mockEventRepo{})

	_, err := svc.Update(ctx(t), 7, 1, "ab", "")
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestProjectService_Update_Overwrites(t *testing.T) {
	projects := &mockProjectRepo{
		GetByIDAndOwnerFn: func(id, userID int) (*models.Project, error) {
			return &models.Project{ID: id, Title: "Old", Description: "old", UserID: userID}, nil
		},
		UpdateFn: func(p models.Project) error { return nil },
	}
	events := &mockEventRepo{}
	svc := NewProjectService(projects, events)

	p, err := svc.Update(ctx(t), 7, 1, "New title", "new desc")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Title != "New title" || p.Description != "new desc" {
		t.Fatalf("unexpected project: %+v", p)
	}
	if len(projects.updated) != 1 {
		t.Fatalf("expected 1 repo update, got %d", len(projects.updated))
	}
	if len(events.appended) != 1 || events.appended[0].Type != EventProjectUpdated {
		t.Fatalf("unexpected events: %+v", events.appended)
	}
}

func TestProjectService_Delete(t *testing.T) {
	projects := &mockProjectRepo{
		GetByIDAndOwnerFn: func(id, userID int) (*models.Project, error) {
			if id == 3 && userID == 7 {
				return &models.Project{ID: 3, Title: "Launch", UserID: 7}, nil
			}
			return nil, nil
		},
		DeleteWithTasksFn: func(id int) error { return nil },
	}
	events := &mockEventRepo{}
	svc := NewProjectService(projects, events)

	// foreign project → not found, nothing deleted
	if err := svc.Delete(ctx(t), 8, 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
	if len(projects.deletedIDs) != 0 {
		t.Fatalf("nothing should be deleted, got %v", projects.deletedIDs)
	}

	// owner → cascade delete
	if err := svc.Delete(ctx(t), 7, 3); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(projects.deletedIDs) != 1 || projects.deletedIDs[0] != 3 {
		t.Fatalf("unexpected deletions: %v", projects.deletedIDs)
	}
	if len(events.appended) != 1 || events.appended[0].Type != EventProjectDeleted {
		t.Fatalf("unexpected events: %+v", events.appended)
	}
}
