package server

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetPost(t *testing.T) {
	srv := newTestServer(t)
	ada := createUserViaAPI(t, srv, "Ada", "ada@x.com")

	resp, err := srv.App().Test(jsonRequest(t, "POST", "/api/posts", map[string]string{
		"title":     "Hello World",
		"content":   "1234567890",
		"author_id": ada["id"].(string),
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	decodeBody(t, resp, &created)
	author := created["author"].(map[string]any)
	assert.Equal(t, "Ada", author["name"])

	resp, err = srv.App().Test(jsonRequest(t, "GET", "/api/posts/"+created["id"].(string), nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched map[string]any
	decodeBody(t, resp, &fetched)
	assert.Equal(t, "Hello World", fetched["title"])
	assert.Equal(t, "1234567890", fetched["content"])
	assert.Equal(t, ada["id"], fetched["author_id"])
	assert.Equal(t, "Ada", fetched["author"].(map[string]any)["name"])
}

func TestCreatePostShortContent(t *testing.T) {
	srv := newTestServer(t)
	ada := createUserViaAPI(t, srv, "Ada", "ada@x.com")

	resp, err := srv.App().Test(jsonRequest(t, "POST", "/api/posts", map[string]string{
		"title":     "Hello World",
		"content":   "123456789",
		"author_id": ada["id"].(string),
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Contains(t, body["error"], "content must be at least 10 characters")
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.App().Test(jsonRequest(t, "POST", "/api/posts", map[string]string{
		"title":     "Hello World",
		"content":   "1234567890",
		"author_id": "missing-author",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "REFERENCE_ERROR", body["code"])
}

func TestUpdatePostPartial(t *testing.T) {
	srv := newTestServer(t)
	ada := createUserViaAPI(t, srv, "Ada", "ada@x.com")

	resp, err := srv.App().Test(jsonRequest(t, "POST", "/api/posts", map[string]string{
		"title":     "Hello World",
		"content":   "1234567890",
		"author_id": ada["id"].(string),
	}), -1)
	require.NoError(t, err)
	var created map[string]any
	decodeBody(t, resp, &created)

	resp, err = srv.App().Test(jsonRequest(t, "PUT", "/api/posts/"+created["id"].(string), map[string]string{
		"title": "Updated title",
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]any
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Updated title", updated["title"])
	assert.Equal(t, "1234567890", updated["content"])
}

func TestUpdatePostNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.App().Test(jsonRequest(t, "PUT", "/api/posts/missing-id", map[string]string{
		"title": "Updated title",
	}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeletePost(t *testing.T) {
	srv := newTestServer(t)
	ada := createUserViaAPI(t, srv, "Ada", "ada@x.com")

	resp, err := srv.App().Test(jsonRequest(t, "POST", "/api/posts", map[string]string{
		"title":     "Hello World",
		"content":   "1234567890",
		"author_id": ada["id"].(string),
	}), -1)
	require.NoError(t, err)
	var created map[string]any
	decodeBody(t, resp, &created)

	resp, err = srv.App().Test(jsonRequest(t, "DELETE", "/api/posts/"+created["id"].(string), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = srv.App().Test(jsonRequest(t, "GET", "/api/posts/"+created["id"].(string), nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeletePostNotFoundHasNoBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.App().Test(jsonRequest(t, "DELETE", "/api/posts/missing-id", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, body)
}

func TestGetPostsPopulatesAuthors(t *testing.T) {
	srv := newTestServer(t)
	ada := createUserViaAPI(t, srv, "Ada", "ada@x.com")

	for _, title := range []string{"First post", "Second post"} {
		resp, err := srv.App().Test(jsonRequest(t, "POST", "/api/posts", map[string]string{
			"title":     title,
			"content":   "some post content",
			"author_id": ada["id"].(string),
		}), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, err := srv.App().Test(jsonRequest(t, "GET", "/api/posts", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []map[string]any
	decodeBody(t, resp, &posts)
	require.Len(t, posts, 2)
	for _, post := range posts {
		assert.Equal(t, "Ada", post["author"].(map[string]any)["name"])
	}
}
