package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pvoronin/taskboard/internal/models"
	"github.com/pvoronin/taskboard/internal/services"
)

const errTitleRequired = "Title is required"

func (h *handlerImpl) HandleIndex(c *gin.Context) {
	tasks, err := h.tasks.GetTasks(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to fetch tasks")
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Tasks": tasks,
		"Flash": popFlash(c),
	})
}

func (h *handlerImpl) HandleNewTaskForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create_task.html", gin.H{
		"Flash":       popFlash(c),
		"Title":       "",
		"Description": "",
	})
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	_, err := h.tasks.CreateTask(c, services.CreateTaskParams{
		Title:       title,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyTaskTitle) {
			// Redisplay the form, keeping what was typed in.
			c.HTML(http.StatusBadRequest, "create_task.html", gin.H{
				"Error":       errTitleRequired,
				"Title":       title,
				"Description": description,
			})
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		renderServerError(c)
		return
	}

	setFlash(c, "Task created")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handlerImpl) HandleViewTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		renderNotFound(c)
		return
	}

	task, err := h.tasks.GetTaskByID(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			renderNotFound(c)
			return
		}

		h.logger.Error().
			Err(err).
			Uint("task_id", id).
			Msg("failed to fetch task")
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "view_task.html", gin.H{
		"Task": task,
	})
}

func (h *handlerImpl) HandleEditTaskForm(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		renderNotFound(c)
		return
	}

	task, err := h.tasks.GetTaskByID(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			renderNotFound(c)
			return
		}

		h.logger.Error().
			Err(err).
			Uint("task_id", id).
			Msg("failed to fetch task")
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "edit_task.html", gin.H{
		"Task": task,
	})
}

func (h *handlerImpl) HandleEditTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		renderNotFound(c)
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	// An unchecked checkbox is simply absent from the form body.
	completed := c.PostForm("completed") != ""

	_, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyTaskTitle):
			c.HTML(http.StatusBadRequest, "edit_task.html", gin.H{
				"Error": errTitleRequired,
				"Task": &models.Task{
					ID:          id,
					Title:       title,
					Description: description,
					Completed:   completed,
				},
			})
		case errors.Is(err, services.ErrTaskNotFound):
			renderNotFound(c)
		default:
			h.logger.Error().
				Err(err).
				Uint("task_id", id).
				Msg("failed to update task")
			renderServerError(c)
		}
		return
	}

	setFlash(c, "Task updated")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handlerImpl) HandleToggleTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		renderNotFound(c)
		return
	}

	_, err := h.tasks.ToggleTask(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			renderNotFound(c)
			return
		}

		h.logger.Error().
			Err(err).
			Uint("task_id", id).
			Msg("failed to toggle task")
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		renderNotFound(c)
		return
	}

	err := h.tasks.DeleteTask(c, id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			renderNotFound(c)
			return
		}

		h.logger.Error().
			Err(err).
			Uint("task_id", id).
			Msg("failed to delete task")
		renderServerError(c)
		return
	}

	setFlash(c, "Task deleted")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *handlerImpl) HandleNotFound(c *gin.Context) {
	renderNotFound(c)
}

func taskIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
