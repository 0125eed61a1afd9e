package v1

import (
	"io"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes installs the common middleware chain, then any extra
// middlewares, then the API routes.
func RegisterRoutes(router *gin.Engine, h Handler, middlewares ...gin.HandlerFunc) {
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, h.HandleRecovery))
	router.Use(h.HandleRequestLogging)
	router.Use(h.HandleBodyLimit)
	router.Use(middlewares...)

	router.NoRoute(h.HandleNoRoute)
	router.GET("/", h.HandleHealth)

	apiRouter := router.Group("/api")

	authRouter := apiRouter.Group("/auth")
	authRouter.POST("/register", h.HandleRegister)
	authRouter.POST("/login", h.HandleLogin)

	tasksRouter := apiRouter.Group("/tasks", h.HandleAuthMiddleware)
	tasksRouter.GET("/get-tasks", h.HandleGetTasks)
	tasksRouter.POST("/add-tasks", h.HandleCreateTask)
	tasksRouter.PUT("/:id", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)
}
