package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"project_manager/internal/logger"
	"project_manager/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// corsOrigin is the SPA origin allowed to call the API; empty disables CORS.
func (h *Handler) InitRoutes(corsOrigin string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if corsOrigin != "" {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = []string{corsOrigin}
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
		cfg.AllowCredentials = true
		router.Use(cors.New(cfg))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Protected endpoints
	h.registerAPIRoutes(router)

	// Live project summary over WebSocket — same port, token via query param
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/", h.userIdMiddleware)
	{
		projects := api.Group("/projects")
		{
			projects.GET("", h.listProjects)
			projects.POST("", h.createProject)
			projects.PUT("/:id", h.updateProject)
			projects.DELETE("/:id", h.deleteProject)
			projects.GET("/:id/tasks", h.listTasks)
			projects.POST("/:id/tasks", h.createTask)
			projects.POST("/:id/schedule", h.scheduleProject)
		}
		tasks := api.Group("/tasks")
		{
			tasks.PUT("/:id/toggle", h.toggleTask)
			tasks.PUT("/:id", h.updateTask)
			tasks.DELETE("/:id", h.deleteTask)
		}
		api.GET("/events", h.listEvents)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondServiceError maps domain errors onto HTTP status codes. Unknown
// errors are logged and reported as a generic 500 so internals don't leak.
func (h *Handler) respondServiceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case service.IsValidation(err) || errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// userID reads the authenticated user id stored by the middleware.
func userID(c *gin.Context) int {
	id, _ := c.Get(userIDKey)
	uid, _ := id.(int)
	return uid
}
