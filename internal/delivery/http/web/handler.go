package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pvoronin/taskboard/internal/services"
)

type Handler interface {
	HandleIndex(c *gin.Context)
	HandleNewTaskForm(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleViewTask(c *gin.Context)
	HandleEditTaskForm(c *gin.Context)
	HandleEditTask(c *gin.Context)
	HandleToggleTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleNotFound(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		tasks:  taskService,
	}
}

func RegisterRoutes(router *gin.Engine, handler Handler) {
	router.GET("/", handler.HandleIndex)

	taskRouter := router.Group("/task")
	taskRouter.GET("/new", handler.HandleNewTaskForm)
	taskRouter.POST("/new", handler.HandleCreateTask)
	taskRouter.GET("/:id", handler.HandleViewTask)
	taskRouter.GET("/:id/edit", handler.HandleEditTaskForm)
	taskRouter.POST("/:id/edit", handler.HandleEditTask)
	taskRouter.POST("/:id/toggle", handler.HandleToggleTask)
	taskRouter.POST("/:id/delete", handler.HandleDeleteTask)

	router.NoRoute(handler.HandleNotFound)
}
