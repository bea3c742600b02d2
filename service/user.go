// Package service implements the transport-agnostic operations shared by the
// REST and GraphQL adapters. It layers relation hydration over the
// repositories and adds no validation of its own; store errors propagate
// unchanged.
package service

import (
	"context"

	"inkwell/models"
	"inkwell/repository"
)

// UserService exposes user operations to the transport adapters.
type UserService struct {
	users repository.UserRepository
	posts repository.PostRepository
}

// NewUserService creates a user service over the given repositories.
func NewUserService(users repository.UserRepository, posts repository.PostRepository) *UserService {
	return &UserService{users: users, posts: posts}
}

// List returns all users, newest first.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

// Get returns a single user with its post count populated.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.posts.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.PostCount = int(count)
	return user, nil
}

// Create persists a new user and returns it.
func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial-field update.
func (s *UserService) Update(ctx context.Context, id string, update models.UserUpdate) (*models.User, error) {
	return s.users.Update(ctx, id, update)
}

// Delete removes a user and returns the removed record. The user's posts
// and tasks are left in place.
func (s *UserService) Delete(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewNotFoundError("user", id)
	}
	return user, nil
}

// Posts returns the user's posts, newest first. This is the hydration source
// for the User.posts relation.
func (s *UserService) Posts(ctx context.Context, userID string) ([]*models.Post, error) {
	return s.posts.ListByAuthor(ctx, userID)
}

// PostCount returns how many posts reference the user as author.
func (s *UserService) PostCount(ctx context.Context, userID string) (int64, error) {
	return s.posts.CountByAuthor(ctx, userID)
}
