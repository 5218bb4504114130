package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/pvoronin/taskboard/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	db     *gorm.DB
}

func NewTaskService(
	logger zerolog.Logger,
	db *gorm.DB,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		db:     db,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	if strings.TrimSpace(params.Title) == "" {
		s.logger.Warn().Msg("refused to create task with empty title")
		return nil, ErrEmptyTaskTitle
	}

	task := &models.Task{
		Title:       params.Title,
		Description: params.Description,
		Completed:   false,
		CreatedAt:   time.Now(),
	}

	err := s.db.WithContext(ctx).Create(task).Error
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Uint("task_id", task.ID).
		Msg("inserted task")

	s.logger.Info().
		Uint("task_id", task.ID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) GetTasks(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")

	return tasks, nil
}

func (s *taskServiceImpl) GetTaskByID(ctx context.Context, id uint) (*models.Task, error) {
	task := new(models.Task)
	err := s.db.WithContext(ctx).First(task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn().
				Uint("task_id", id).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Uint("task_id", id).
			Msg("failed to select task by id")
		return nil, err
	}
	s.logger.Debug().
		Uint("task_id", task.ID).
		Msg("selected task by id")

	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	if strings.TrimSpace(params.Title) == "" {
		s.logger.Warn().
			Uint("task_id", params.ID).
			Msg("refused to update task with empty title")
		return nil, ErrEmptyTaskTitle
	}

	task, err := s.GetTaskByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}

	task.Title = params.Title
	task.Description = params.Description
	task.Completed = params.Completed

	// Explicit column list so created_at is never rewritten.
	err = s.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"completed":   task.Completed,
		}).Error
	if err != nil {
		s.logger.Error().
			Err(err).
			Uint("task_id", task.ID).
			Msg("failed to update task")
		return nil, err
	}
	s.logger.Debug().
		Uint("task_id", task.ID).
		Msg("updated task")

	s.logger.Info().
		Uint("task_id", task.ID).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) ToggleTask(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed

	err = s.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("id = ?", task.ID).
		Update("completed", task.Completed).Error
	if err != nil {
		s.logger.Error().
			Err(err).
			Uint("task_id", task.ID).
			Msg("failed to toggle task")
		return nil, err
	}
	s.logger.Debug().
		Uint("task_id", task.ID).
		Bool("completed", task.Completed).
		Msg("toggled task")

	s.logger.Info().
		Uint("task_id", task.ID).
		Bool("completed", task.Completed).
		Msg("toggled task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Task{}, id)
	if result.Error != nil {
		s.logger.Error().
			Err(result.Error).
			Uint("task_id", id).
			Msg("failed to delete task")
		return result.Error
	}
	if result.RowsAffected == 0 {
		s.logger.Warn().
			Uint("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}
	s.logger.Debug().
		Uint("task_id", id).
		Msg("deleted task")

	s.logger.Info().
		Uint("task_id", id).
		Msg("deleted task")
	return nil
}
