package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"project_manager/internal/models"
	"project_manager/internal/service"
)

func TestListProjects(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	proj := &mockProjects{listResp: []models.Project{
		{ID: 1, Title: "Alpha", CreatedAt: created},
		{ID: 2, Title: "Beta", Description: "second", CreatedAt: created},
	}}
	router := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Projects: proj})

	w := performJSON(router, http.MethodGet, "/projects", "", authHeader("tok"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got []models.Project
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Alpha" || got[1].Description != "second" {
		t.Errorf("unexpected payload: %+v", got)
	}
	if proj.lastUserID != 7 {
		t.Errorf("expected owner 7, got %d", proj.lastUserID)
	}
}

func TestCreateProject(t *testing.T) {
	proj := &mockProjects{createdP: models.Project{ID: 10, Title: "Alpha", Description: "first"}}
	router := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Projects: proj})

	w := performJSON(router, http.MethodPost, "/projects",
		`{"title":"Alpha","description":"first"}`, authHeader("tok"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var got models.Project
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if got.ID != 10 || got.Title != "Alpha" {
		t.Errorf("unexpected payload: %+v", got)
	}
	if proj.lastTitle != "Alpha" || proj.lastDesc != "first" {
		t.Errorf("service received wrong fields: %q / %q", proj.lastTitle, proj.lastDesc)
	}
}

func TestCreateProject_ValidationError(t *testing.T) {
	proj := &mockProjects{createErr: &service.ValidationError{Msg: "title must be at least 3 characters"}}
	router := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Projects: proj})

	w := performJSON(router, http.MethodPost, "/projects", `{"title":"ab"}`, authHeader("tok"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateProject_NotFound(t *testing.T) {
	proj := &mockProjects{updateErr: service.ErrNotFound}
	router := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Projects: proj})

	w := performJSON(router, http.MethodPut, "/projects/99",
		`{"title":"Renamed"}`, authHeader("tok"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if proj.lastID != 99 {
		t.Errorf("expected project id 99, got %d", proj.lastID)
	}
}

func TestUpdateProject_MalformedID(t *testing.T) {
	proj := &mockProjects{}
	router := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Projects: proj})

	w := performJSON(router, http.MethodPut, "/projects/abc",
		`{"title":"Renamed"}`, authHeader("tok"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["error"] != "resource not found" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestDeleteProject(t *testing.T) {
	proj := &mockProjects{}
	router := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Projects: proj})

	w := performJSON(router, http.MethodDelete, "/projects/5", "", authHeader("tok"))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}
	if proj.deleteCalls != 1 || proj.lastID != 5 {
		t.Errorf("expected one delete of project 5, got %d calls for id %d", proj.deleteCalls, proj.lastID)
	}
}

func TestDeleteProject_Foreign(t *testing.T) {
	proj := &mockProjects{deleteErr: service.ErrNotFound}
	router := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 7}, Projects: proj})

	w := performJSON(router, http.MethodDelete, "/projects/5", "", authHeader("tok"))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
