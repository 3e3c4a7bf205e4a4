package server

import (
	"net/http"
	"strings"
	"testing"

	"forumapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	_, app := setupTestServer(t)
	accessToken, _ := registerAndLogin(t, app, "dicoding")
	threadID := createThread(t, app, accessToken)

	t.Run("creates the comment", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/threads/"+threadID+"/comments", map[string]any{
			"content": "nice thread",
		}, accessToken)

		require.Equal(t, http.StatusCreated, status)
		added := data(t, body)["addedComment"].(map[string]any)
		assert.True(t, strings.HasPrefix(added["id"].(string), "comment-"))
		assert.Equal(t, "nice thread", added["content"])
	})

	t.Run("unknown thread", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/threads/thread-x/comments", map[string]any{
			"content": "nice thread",
		}, accessToken)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Thread is not exist", body["message"])
	})

	t.Run("translates missing content", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/threads/"+threadID+"/comments",
			map[string]any{}, accessToken)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Need payload contain content of comment", body["message"])
	})

	t.Run("requires authentication", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/threads/"+threadID+"/comments", map[string]any{
			"content": "nice thread",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func TestDeleteComment(t *testing.T) {
	_, app := setupTestServer(t)
	ownerToken, _ := registerAndLogin(t, app, "dicoding")
	otherToken, _ := registerAndLogin(t, app, "johndoe")
	threadID := createThread(t, app, ownerToken)
	commentID := createComment(t, app, ownerToken, threadID)

	t.Run("non-owner gets 403", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodDelete,
			"/threads/"+threadID+"/comments/"+commentID, nil, otherToken)

		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "Not Authorized", body["message"])
	})

	t.Run("owner soft deletes, detail shows placeholder", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodDelete,
			"/threads/"+threadID+"/comments/"+commentID, nil, ownerToken)
		require.Equal(t, http.StatusOK, status)

		status, body := doJSON(t, app, http.MethodGet, "/threads/"+threadID, nil, "")
		require.Equal(t, http.StatusOK, status)

		comments := data(t, body)["thread"].(map[string]any)["comments"].([]any)
		require.Len(t, comments, 1)
		assert.Equal(t, models.DeletedCommentPlaceholder,
			comments[0].(map[string]any)["content"])
	})

	t.Run("unknown comment", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodDelete,
			"/threads/"+threadID+"/comments/comment-x", nil, ownerToken)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Comment is not exist", body["message"])
	})
}

func TestToggleCommentLike(t *testing.T) {
	_, app := setupTestServer(t)
	aliceToken, _ := registerAndLogin(t, app, "alice")
	bobToken, _ := registerAndLogin(t, app, "bob")
	threadID := createThread(t, app, aliceToken)
	commentID := createComment(t, app, aliceToken, threadID)

	likeCount := func() float64 {
		status, body := doJSON(t, app, http.MethodGet, "/threads/"+threadID, nil, "")
		require.Equal(t, http.StatusOK, status)
		comments := data(t, body)["thread"].(map[string]any)["comments"].([]any)
		require.Len(t, comments, 1)
		return comments[0].(map[string]any)["likeCount"].(float64)
	}

	likeURL := "/threads/" + threadID + "/comments/" + commentID + "/likes"

	t.Run("like then unlike", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut, likeURL, nil, aliceToken)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, float64(1), likeCount())

		status, _ = doJSON(t, app, http.MethodPut, likeURL, nil, aliceToken)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(0), likeCount())
	})

	t.Run("likes from different users accumulate", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPut, likeURL, nil, aliceToken)
		require.Equal(t, http.StatusOK, status)
		status, _ = doJSON(t, app, http.MethodPut, likeURL, nil, bobToken)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(2), likeCount())
	})

	t.Run("requires authentication", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPut, likeURL, nil, "")
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Missing authentication", body["message"])
	})

	t.Run("unknown comment", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPut,
			"/threads/"+threadID+"/comments/comment-x/likes", nil, aliceToken)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
