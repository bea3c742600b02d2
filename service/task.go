package service

import (
	"context"

	"inkwell/models"
	"inkwell/repository"
)

// TaskService exposes task operations to the transport adapters.
type TaskService struct {
	tasks repository.TaskRepository
	users repository.UserRepository
}

// NewTaskService creates a task service over the given repositories.
func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

// List returns all tasks ordered by start date.
func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	return s.tasks.List(ctx)
}

// ListByUser returns the user's tasks ordered by start date, earliest first.
func (s *TaskService) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

// Get returns a single task.
func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

// Create persists a new task and returns it.
func (s *TaskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies a partial-field update.
func (s *TaskService) Update(ctx context.Context, id string, update models.TaskUpdate) (*models.Task, error) {
	return s.tasks.Update(ctx, id, update)
}

// Delete removes a task and returns the removed record.
func (s *TaskService) Delete(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewNotFoundError("task", id)
	}
	return task, nil
}

// User resolves the task's owner. A dangling reference surfaces as
// NotFoundError.
func (s *TaskService) User(ctx context.Context, task *models.Task) (*models.User, error) {
	if task.User != nil {
		return task.User, nil
	}
	return s.users.GetByID(ctx, task.UserID)
}
