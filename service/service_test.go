package service

import (
	"context"
	"testing"
	"time"

	"inkwell/database"
	"inkwell/models"
	"inkwell/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServices(t *testing.T) (*UserService, *PostService, *TaskService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	return NewUserService(userRepo, postRepo),
		NewPostService(postRepo, userRepo),
		NewTaskService(taskRepo, userRepo)
}

func TestPostRoundTrip(t *testing.T) {
	users, posts, _ := setupServices(t)
	ctx := context.Background()

	ada, err := users.Create(ctx, &models.User{Name: "Ada", Email: "ada@x.com"})
	require.NoError(t, err)

	created, err := posts.Create(ctx, "Hello World", "1234567890", ada.ID)
	require.NoError(t, err)

	fetched, err := posts.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", fetched.Title)
	assert.Equal(t, "1234567890", fetched.Content)
	assert.Equal(t, ada.ID, fetched.AuthorID)
	require.NotNil(t, fetched.Author)
	assert.Equal(t, "Ada", fetched.Author.Name)
}

func TestPostCreateMissingAuthor(t *testing.T) {
	_, posts, _ := setupServices(t)

	_, err := posts.Create(context.Background(), "Hello World", "1234567890", "missing-author")

	var reference *models.ReferenceError
	assert.ErrorAs(t, err, &reference)
}

func TestUserDeleteLeavesPostsAndTasks(t *testing.T) {
	users, posts, tasks := setupServices(t)
	ctx := context.Background()

	ada, err := users.Create(ctx, &models.User{Name: "Ada", Email: "ada@x.com"})
	require.NoError(t, err)

	post, err := posts.Create(ctx, "Hello World", "1234567890", ada.ID)
	require.NoError(t, err)

	task, err := tasks.Create(ctx, &models.Task{
		Title:     "Write chapter",
		UserID:    ada.ID,
		StartDate: time.Now(),
		EndDate:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	removed, err := users.Delete(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, removed.ID)

	// The post and task survive with dangling references.
	orphanPost, err := posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, orphanPost.AuthorID)

	orphanTask, err := tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, ada.ID, orphanTask.UserID)

	// Hydrating the orphaned references resolves to not found.
	var notFound *models.NotFoundError
	_, err = posts.Author(ctx, orphanPost)
	assert.ErrorAs(t, err, &notFound)
	_, err = tasks.User(ctx, orphanTask)
	assert.ErrorAs(t, err, &notFound)
}

func TestUserGetPopulatesPostCount(t *testing.T) {
	users, posts, _ := setupServices(t)
	ctx := context.Background()

	ada, err := users.Create(ctx, &models.User{Name: "Ada", Email: "ada@x.com"})
	require.NoError(t, err)

	_, err = posts.Create(ctx, "Hello World", "1234567890", ada.ID)
	require.NoError(t, err)
	_, err = posts.Create(ctx, "Second post", "more content here", ada.ID)
	require.NoError(t, err)

	fetched, err := users.Get(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.PostCount)
}

func TestPostDeleteReturnsRemovedRecord(t *testing.T) {
	users, posts, _ := setupServices(t)
	ctx := context.Background()

	ada, err := users.Create(ctx, &models.User{Name: "Ada", Email: "ada@x.com"})
	require.NoError(t, err)
	post, err := posts.Create(ctx, "Hello World", "1234567890", ada.ID)
	require.NoError(t, err)

	removed, err := posts.Delete(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.ID, removed.ID)

	var notFound *models.NotFoundError
	_, err = posts.Delete(ctx, post.ID)
	assert.ErrorAs(t, err, &notFound)
}

func TestTaskListByUserOrder(t *testing.T) {
	users, _, tasks := setupServices(t)
	ctx := context.Background()

	ada, err := users.Create(ctx, &models.User{Name: "Ada", Email: "ada@x.com"})
	require.NoError(t, err)

	now := time.Now()
	for _, offset := range []time.Duration{72 * time.Hour, 0, 36 * time.Hour} {
		_, err := tasks.Create(ctx, &models.Task{
			Title:     "Write chapter",
			UserID:    ada.ID,
			StartDate: now.Add(offset),
			EndDate:   now.Add(offset + time.Hour),
		})
		require.NoError(t, err)
	}

	list, err := tasks.ListByUser(ctx, ada.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.True(t, list[0].StartDate.Before(list[1].StartDate))
	assert.True(t, list[1].StartDate.Before(list[2].StartDate))
}
