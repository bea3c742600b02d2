package service

import (
	"context"

	"inkwell/models"
	"inkwell/repository"
)

// PostService exposes post operations to the transport adapters.
type PostService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

// NewPostService creates a post service over the given repositories.
func NewPostService(posts repository.PostRepository, users repository.UserRepository) *PostService {
	return &PostService{posts: posts, users: users}
}

// List returns all posts, newest first, with authors populated.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	return s.posts.List(ctx)
}

// Get returns a single post with its author populated.
func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// Create persists a new post referencing an existing author and returns it
// with the author populated.
func (s *PostService) Create(ctx context.Context, title, content, authorID string) (*models.Post, error) {
	post := &models.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, post.ID)
}

// Update applies a partial-field update and returns the post with its author
// populated.
func (s *PostService) Update(ctx context.Context, id string, update models.PostUpdate) (*models.Post, error) {
	return s.posts.Update(ctx, id, update)
}

// Delete removes a post and returns the removed record.
func (s *PostService) Delete(ctx context.Context, id string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.posts.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewNotFoundError("post", id)
	}
	return post, nil
}

// Author resolves the post's author. This is the hydration source for the
// Post.author relation; a dangling reference surfaces as NotFoundError.
func (s *PostService) Author(ctx context.Context, post *models.Post) (*models.User, error) {
	if post.Author != nil {
		return post.Author, nil
	}
	return s.users.GetByID(ctx, post.AuthorID)
}
