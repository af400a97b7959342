package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"project_manager/internal/models"
	"project_manager/internal/service"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken string
	signUpUser  models.User
	signUpErr   error
	signInToken string
	signInUser  models.User
	signInErr   error
	parseID     int
	parseErr    error

	lastSignUpUsername string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastSignInLogin    string
	lastSignInPassword string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, email, password string) (string, models.User, error) {
	m.lastSignUpUsername = username
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpToken, m.signUpUser, m.signUpErr
}
func (m *mockAuth) SignIn(usernameOrEmail, password string) (string, models.User, error) {
	m.lastSignInLogin = usernameOrEmail
	m.lastSignInPassword = password
	return m.signInToken, m.signInUser, m.signInErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockProjects struct {
	listResp  []models.Project
	listErr   error
	createdP  models.Project
	createErr error
	updatedP  models.Project
	updateErr error
	deleteErr error

	lastUserID  int
	lastID      int
	lastTitle   string
	lastDesc    string
	deleteCalls int
}

func (m *mockProjects) List(ctx context.Context, userID int) ([]models.Project, error) {
	m.lastUserID = userID
	return m.listResp, m.listErr
}
func (m *mockProjects) Create(ctx context.Context, userID int, title, description string) (models.Project, error) {
	m.lastUserID = userID
	m.lastTitle = title
	m.lastDesc = description
	return m.createdP, m.createErr
}
func (m *mockProjects) Update(ctx context.Context, userID, id int, title, description string) (models.Project, error) {
	m.lastUserID = userID
	m.lastID = id
	m.lastTitle = title
	m.lastDesc = description
	return m.updatedP, m.updateErr
}
func (m *mockProjects) Delete(ctx context.Context, userID, id int) error {
	m.lastUserID = userID
	m.lastID = id
	m.deleteCalls++
	return m.deleteErr
}

type mockTasks struct {
	listResp  []models.Task
	listErr   error
	createdT  models.Task
	createErr error
	toggledT  models.Task
	toggleErr error
	updatedT  models.Task
	updateErr error
	deleteErr error

	lastUserID    int
	lastProjectID int
	lastTaskID    int
	lastTitle     string
	lastDue       *time.Time
	toggleCalls   int
	deleteCalls   int
}

func (m *mockTasks) ListByProject(ctx context.Context, userID, projectID int) ([]models.Task, error) {
	m.lastUserID = userID
	m.lastProjectID = projectID
	return m.listResp, m.listErr
}
func (m *mockTasks) Create(ctx context.Context, userID, projectID int, title string, due *time.Time) (models.Task, error) {
	m.lastUserID = userID
	m.lastProjectID = projectID
	m.lastTitle = title
	m.lastDue = due
	return m.createdT, m.createErr
}
func (m *mockTasks) Toggle(ctx context.Context, userID, taskID int) (models.Task, error) {
	m.lastUserID = userID
	m.lastTaskID = taskID
	m.toggleCalls++
	return m.toggledT, m.toggleErr
}
func (m *mockTasks) Update(ctx context.Context, userID, taskID int, title string, due *time.Time) (models.Task, error) {
	m.lastUserID = userID
	m.lastTaskID = taskID
	m.lastTitle = title
	m.lastDue = due
	return m.updatedT, m.updateErr
}
func (m *mockTasks) Delete(ctx context.Context, userID, taskID int) error {
	m.lastUserID = userID
	m.lastTaskID = taskID
	m.deleteCalls++
	return m.deleteErr
}

type mockScheduler struct {
	result service.ScheduleResult
	err    error

	lastUserID    int
	lastProjectID int
	lastParams    service.ScheduleParams
}

func (m *mockScheduler) AutoSchedule(ctx context.Context, userID, projectID int, p service.ScheduleParams) (service.ScheduleResult, error) {
	m.lastUserID = userID
	m.lastProjectID = projectID
	m.lastParams = p
	return m.result, m.err
}

type mockActivity struct {
	resp []models.ActivityEvent
	err  error

	lastUserID int
	lastFilter service.EventFilter
}

func (m *mockActivity) List(ctx context.Context, userID int, f service.EventFilter) ([]models.ActivityEvent, error) {
	m.lastUserID = userID
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes("")
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
