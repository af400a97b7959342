package tasklist

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"project_manager/internal/logger"
)

// Handler serves the unauthenticated in-memory task list API.
type Handler struct {
	store *Store
	log   *logger.Logger
}

func NewHandler(store *Store, log *logger.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// createRequest allows an empty description; a missing field creates a task
// with "".
type createRequest struct {
	Description string `json:"description"`
}

// InitRoutes builds the Gin router for the standalone app.
func (h *Handler) InitRoutes(corsOrigin string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if corsOrigin != "" {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = []string{corsOrigin}
		cfg.AllowCredentials = true
		router.Use(cors.New(cfg))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/tasks")
	{
		api.GET("", h.list)
		api.POST("", h.create)
		api.PUT("/:id/toggle", h.toggle)
		api.DELETE("/:id", h.remove)
	}

	return router
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

func (h *Handler) create(c *gin.Context) {
	var input createRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task := h.store.Add(input.Description)
	if h.log != nil {
		h.log.Infow("tasklist_created", "id", task.ID)
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) toggle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	task, ok := h.store.Toggle(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	if !h.store.Remove(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	// Delete answers 200 with a status body, not a bare 204.
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
