package repository

import (
	"context"
	"errors"

	"inkwell/models"

	"gorm.io/gorm"
)

// TaskRepository defines the interface for task data operations.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	Update(ctx context.Context, id string, update models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	task.Normalize()
	if err := task.Validate(); err != nil {
		return err
	}

	// Task.UserID is deliberately not checked against the users table.
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return models.NewStoreError("create task", err)
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("task", id)
		}
		return nil, models.NewStoreError("get task", err)
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Order("start_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, models.NewStoreError("list tasks", err)
	}
	return tasks, nil
}

func (r *taskRepository) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, models.NewStoreError("list tasks by user", err)
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, id string, update models.TaskUpdate) (*models.Task, error) {
	task, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Apply(update)
	task.Normalize()
	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, models.NewStoreError("update task", err)
	}
	return task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Task{}, "id = ?", id)
	if res.Error != nil {
		return false, models.NewStoreError("delete task", res.Error)
	}
	return res.RowsAffected > 0, nil
}
