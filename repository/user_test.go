package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"inkwell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateNormalizes(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user := &models.User{Name: "  Ada  ", Email: "  Ada@X.COM "}
	require.NoError(t, repo.Create(context.Background(), user))

	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@x.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserCreateValidation(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	err := repo.Create(context.Background(), &models.User{})

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "email is required")
}

func TestUserEmailUniqueness(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	createTestUser(t, repo, "Ada", "ada@x.com")

	err := repo.Create(context.Background(), &models.User{Name: "Other", Email: "ADA@x.com"})

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, err.Error(), "email is already in use")
}

func TestUserPasswordHashedAtRest(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user := &models.User{Name: "Ada", Email: "ada@x.com", Password: "hunter22"}
	require.NoError(t, repo.Create(context.Background(), user))

	stored, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.True(t, strings.HasPrefix(stored.Password, "$2"))
}

func TestUserUpdatePartialFields(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	user := createTestUser(t, repo, "Ada", "ada@x.com")

	time.Sleep(10 * time.Millisecond)
	name := "Ada Lovelace"
	updated, err := repo.Update(context.Background(), user.ID, models.UserUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "ada@x.com", updated.Email)
	assert.True(t, updated.UpdatedAt.After(user.UpdatedAt))
}

func TestUserUpdateNotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	name := "Nobody"
	_, err := repo.Update(context.Background(), "missing-id", models.UserUpdate{Name: &name})

	var notFound *models.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUserDelete(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	user := createTestUser(t, repo, "Ada", "ada@x.com")

	removed, err := repo.Delete(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(context.Background(), user.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestUserListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	older := createTestUser(t, repo, "Ada", "ada@x.com")
	db.Model(older).Update("created_at", time.Now().Add(-time.Hour))
	newer := createTestUser(t, repo, "Grace", "grace@x.com")

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, newer.ID, users[0].ID)
	assert.Equal(t, older.ID, users[1].ID)
}
