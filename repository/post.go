package repository

import (
	"context"
	"errors"

	"inkwell/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error)
	Update(ctx context.Context, id string, update models.PostUpdate) (*models.Post, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	post.Normalize()
	if err := post.Validate(); err != nil {
		return err
	}

	// The existence check and the insert are two store calls, not one
	// transaction; the author can disappear between them.
	if err := r.checkAuthorExists(ctx, post.AuthorID); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewStoreError("create post", err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Preload("Author").First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, models.NewStoreError("get post", err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewStoreError("list posts", err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewStoreError("list posts by author", err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, id string, update models.PostUpdate) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("post", id)
		}
		return nil, models.NewStoreError("get post", err)
	}

	post.Apply(update)
	post.Normalize()
	if err := post.Validate(); err != nil {
		return nil, err
	}

	if update.AuthorID != nil {
		if err := r.checkAuthorExists(ctx, post.AuthorID); err != nil {
			return nil, err
		}
	}

	// Save always refreshes UpdatedAt, even when no field changed.
	if err := r.db.WithContext(ctx).Save(&post).Error; err != nil {
		return nil, models.NewStoreError("update post", err)
	}
	return r.GetByID(ctx, post.ID)
}

func (r *postRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if res.Error != nil {
		return false, models.NewStoreError("delete post", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewStoreError("count posts", err)
	}
	return count, nil
}

func (r *postRepository) checkAuthorExists(ctx context.Context, authorID string) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return models.NewStoreError("check author", err)
	}
	if count == 0 {
		return models.NewReferenceError("author", authorID)
	}
	return nil
}
