package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"project_manager/internal/service"
)

// taskRequest is shared by task create and update.
type taskRequest struct {
	Title   string     `json:"title" binding:"required"`
	DueDate *time.Time `json:"due_date"`
}

// scheduleRequest carries optional auto-schedule inputs. work_hours_per_day
// is bound for compatibility with the original API but has no effect.
type scheduleRequest struct {
	StartDate       *time.Time `json:"start_date"`
	WorkHoursPerDay int        `json:"work_hours_per_day"`
}

// @Summary      List tasks of a project
// @Tags         tasks
// @Produce      json
// @Param        id  path  int  true  "Project id"
// @Success      200  {array}   models.Task
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/tasks [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	tasks, err := h.services.Tasks.ListByProject(c.Request.Context(), userID(c), projectID)
	if err != nil {
		h.respondServiceError(c, err, "tasks_list_failed", "project_id", projectID)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary      Create a task under a project
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Project id"
// @Param        body  body      taskRequest  true  "Task payload"
// @Success      201   {object}  models.Task
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id}/tasks [post]
// @Security     BearerAuth
func (h *Handler) createTask(c *gin.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var input taskRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	t, err := h.services.Tasks.Create(c.Request.Context(), userID(c), projectID, input.Title, input.DueDate)
	if err != nil {
		h.respondServiceError(c, err, "task_create_failed", "project_id", projectID)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// @Summary      Toggle task completion
// @Tags         tasks
// @Produce      json
// @Param        id  path  int  true  "Task id"
// @Success      200  {object}  models.Task
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/toggle [put]
// @Security     BearerAuth
func (h *Handler) toggleTask(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	t, err := h.services.Tasks.Toggle(c.Request.Context(), userID(c), id)
	if err != nil {
		h.respondServiceError(c, err, "task_toggle_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Task id"
// @Param        body  body      taskRequest  true  "Task payload"
// @Success      200   {object}  models.Task
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTask(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var input taskRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	t, err := h.services.Tasks.Update(c.Request.Context(), userID(c), id, input.Title, input.DueDate)
	if err != nil {
		h.respondServiceError(c, err, "task_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, t)
}

// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id  path  int  true  "Task id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Tasks.Delete(c.Request.Context(), userID(c), id); err != nil {
		h.respondServiceError(c, err, "task_delete_failed", "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Auto-schedule a project's tasks
// @Description  Assigns due dates start+0, start+1, ... days to tasks ordered by id.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int              true   "Project id"
// @Param        body  body      scheduleRequest  false  "Schedule options"
// @Success      200   {object}  service.ScheduleResult
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id}/schedule [post]
// @Security     BearerAuth
func (h *Handler) scheduleProject(c *gin.Context) {
	projectID, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	// Body is optional; an empty or absent body means "start now".
	var input scheduleRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if ok := h.bindJSONOrBadRequest(c, &input); !ok {
			return
		}
	}

	result, err := h.services.Scheduler.AutoSchedule(c.Request.Context(), userID(c), projectID, service.ScheduleParams{
		Start:           input.StartDate,
		WorkHoursPerDay: input.WorkHoursPerDay,
	})
	if err != nil {
		h.respondServiceError(c, err, "project_schedule_failed", "project_id", projectID)
		return
	}
	c.JSON(http.StatusOK, result)
}
