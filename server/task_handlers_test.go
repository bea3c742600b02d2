package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTaskViaAPI(t *testing.T, srv *Server, userID string, start time.Time) map[string]any {
	t.Helper()

	resp, err := srv.App().Test(jsonRequest(t, "POST", "/api/tasks", map[string]any{
		"title":      "Write chapter",
		"user_id":    userID,
		"start_date": start.Format(time.RFC3339),
		"end_date":   start.Add(time.Hour).Format(time.RFC3339),
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var task map[string]any
	decodeBody(t, resp, &task)
	return task
}

func TestCreateTaskAppliesDefaults(t *testing.T) {
	srv := newTestServer(t)
	ada := createUserViaAPI(t, srv, "Ada", "ada@x.com")

	task := createTaskViaAPI(t, srv, ada["id"].(string), time.Now())
	assert.Equal(t, "pending", task["status"])
	assert.Equal(t, "medium", task["priority"])
}

func TestCreateTaskValidation(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.App().Test(jsonRequest(t, "POST", "/api/tasks", map[string]any{
		"title": "ab",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "title must be at least 3 characters")
	assert.Contains(t, body["error"], "start date is required")
}

func TestUserTasksSortedByStartDate(t *testing.T) {
	srv := newTestServer(t)
	ada := createUserViaAPI(t, srv, "Ada", "ada@x.com")
	now := time.Now().UTC()

	// Created out of order on purpose.
	createTaskViaAPI(t, srv, ada["id"].(string), now.Add(48*time.Hour))
	createTaskViaAPI(t, srv, ada["id"].(string), now)
	createTaskViaAPI(t, srv, ada["id"].(string), now.Add(24*time.Hour))

	resp, err := srv.App().Test(jsonRequest(t, "GET", "/api/users/"+ada["id"].(string)+"/tasks", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tasks []map[string]any
	decodeBody(t, resp, &tasks)
	require.Len(t, tasks, 3)

	var previous time.Time
	for _, task := range tasks {
		start, err := time.Parse(time.RFC3339, task["start_date"].(string))
		require.NoError(t, err)
		assert.True(t, !start.Before(previous))
		previous = start
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	srv := newTestServer(t)
	ada := createUserViaAPI(t, srv, "Ada", "ada@x.com")
	task := createTaskViaAPI(t, srv, ada["id"].(string), time.Now())

	resp, err := srv.App().Test(jsonRequest(t, "PUT", "/api/tasks/"+task["id"].(string), map[string]string{
		"status": "completed",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]any
	decodeBody(t, resp, &updated)
	assert.Equal(t, "completed", updated["status"])
	assert.Equal(t, "Write chapter", updated["title"])
}

func TestDeleteTaskNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.App().Test(jsonRequest(t, "DELETE", "/api/tasks/missing-id", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
