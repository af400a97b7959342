package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// projectRequest is shared by create and update.
type projectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// pathID parses a numeric path parameter. A malformed id is reported as 404
// like any other missing resource.
func (h *Handler) pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return 0, false
	}
	return id, true
}

// @Summary      List own projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Failure      401  {object}  map[string]string
// @Router       /projects [get]
// @Security     BearerAuth
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.services.Projects.List(c.Request.Context(), userID(c))
	if err != nil {
		h.respondServiceError(c, err, "projects_list_failed")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      projectRequest  true  "Project payload"
// @Success      201   {object}  models.Project
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /projects [post]
// @Security     BearerAuth
func (h *Handler) createProject(c *gin.Context) {
	var input projectRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	p, err := h.services.Projects.Create(c.Request.Context(), userID(c), input.Title, input.Description)
	if err != nil {
		h.respondServiceError(c, err, "project_create_failed", "title", input.Title)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Project id"
// @Param        body  body      projectRequest  true  "Project payload"
// @Success      200   {object}  models.Project
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateProject(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var input projectRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	p, err := h.services.Projects.Update(c.Request.Context(), userID(c), id, input.Title, input.Description)
	if err != nil {
		h.respondServiceError(c, err, "project_update_failed", "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Delete a project and its tasks
// @Tags         projects
// @Produce      json
// @Param        id  path  int  true  "Project id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Projects.Delete(c.Request.Context(), userID(c), id); err != nil {
		h.respondServiceError(c, err, "project_delete_failed", "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
