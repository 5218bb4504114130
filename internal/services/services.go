package services

import (
	"context"
	"errors"

	"github.com/pvoronin/taskboard/internal/models"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrEmptyTaskTitle = errors.New("task title must not be empty")
)

type TaskService interface {
	// CreateTask inserts a new task with the given title and
	// description. The completed flag starts as false and the
	// creation timestamp is set once, at insertion time.
	//
	// It returns ErrEmptyTaskTitle if the title is blank.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// GetTasks returns all tasks, newest first.
	GetTasks(ctx context.Context) ([]*models.Task, error)

	// GetTaskByID returns ErrTaskNotFound if no task
	// with the given ID exists.
	GetTaskByID(ctx context.Context, id uint) (*models.Task, error)

	// UpdateTask overwrites the title, description and completed
	// flag of an existing task. The ID and creation timestamp are
	// never touched.
	//
	// It returns ErrEmptyTaskTitle if the title is blank or
	// ErrTaskNotFound if the task doesn't exist.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// ToggleTask flips the completed flag of an existing task and
	// returns the updated task, or ErrTaskNotFound.
	ToggleTask(ctx context.Context, id uint) (*models.Task, error)

	// DeleteTask removes the task with the given ID,
	// or returns ErrTaskNotFound.
	DeleteTask(ctx context.Context, id uint) error
}

type CreateTaskParams struct {
	Title       string
	Description string
}

type UpdateTaskParams struct {
	ID          uint
	Title       string
	Description string
	Completed   bool
}
