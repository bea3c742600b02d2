// Package repository implements the persistence layer over GORM. It owns
// schema validation, uniqueness and foreign key checks, and default sort
// orders; callers above it never talk to the database directly.
package repository

import (
	"context"
	"errors"

	"inkwell/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id string, update models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.Normalize()
	if err := user.Validate(); err != nil {
		return err
	}

	taken, err := r.EmailTaken(ctx, user.Email, "")
	if err != nil {
		return err
	}
	if taken {
		return models.NewValidationError("email is already in use")
	}

	if user.Password != "" {
		hashed, err := hashPassword(user.Password)
		if err != nil {
			return models.NewStoreError("hash password", err)
		}
		user.Password = hashed
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return models.NewStoreError("create user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("user", id)
		}
		return nil, models.NewStoreError("get user", err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, models.NewStoreError("list users", err)
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id string, update models.UserUpdate) (*models.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Password != nil && *update.Password != "" {
		hashed, err := hashPassword(*update.Password)
		if err != nil {
			return nil, models.NewStoreError("hash password", err)
		}
		update.Password = &hashed
	}

	user.Apply(update)
	user.Normalize()
	if err := user.Validate(); err != nil {
		return nil, err
	}

	taken, err := r.EmailTaken(ctx, user.Email, user.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.NewValidationError("email is already in use")
	}

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, models.NewStoreError("update user", err)
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	// Hard delete, no cascade: the user's posts and tasks keep their
	// now-dangling references.
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return false, models.NewStoreError("delete user", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *userRepository) EmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, models.NewStoreError("check email", err)
	}
	return count > 0, nil
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
