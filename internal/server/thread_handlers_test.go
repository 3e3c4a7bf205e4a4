package server

import (
	"net/http"
	"strings"
	"testing"

	"forumapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddThread(t *testing.T) {
	_, app := setupTestServer(t)
	accessToken, _ := registerAndLogin(t, app, "dicoding")

	t.Run("creates the thread", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/threads", map[string]any{
			"title": "a thread",
			"body":  "the body",
		}, accessToken)

		require.Equal(t, http.StatusCreated, status)
		added := data(t, body)["addedThread"].(map[string]any)
		assert.True(t, strings.HasPrefix(added["id"].(string), "thread-"))
		assert.Equal(t, "a thread", added["title"])
		assert.True(t, strings.HasPrefix(added["owner"].(string), "user-"))
	})

	t.Run("requires authentication", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/threads", map[string]any{
			"title": "a thread",
			"body":  "the body",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Missing authentication", body["message"])
	})

	t.Run("rejects a forged token", func(t *testing.T) {
		status, _ := doJSON(t, app, http.MethodPost, "/threads", map[string]any{
			"title": "a thread",
			"body":  "the body",
		}, "forged.token.value")

		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("translates missing payload", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodPost, "/threads", map[string]any{
			"title": "a thread",
		}, accessToken)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Need payload contain title and body of thread", body["message"])
	})
}

func TestGetThreadDetails(t *testing.T) {
	_, app := setupTestServer(t)
	accessToken, _ := registerAndLogin(t, app, "dicoding")
	threadID := createThread(t, app, accessToken)

	t.Run("is public and returns empty comments", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/threads/"+threadID, nil, "")

		require.Equal(t, http.StatusOK, status)
		thread := data(t, body)["thread"].(map[string]any)
		assert.Equal(t, threadID, thread["id"])
		assert.Equal(t, "dicoding", thread["username"])

		comments, ok := thread["comments"].([]any)
		require.True(t, ok, "comments must be a JSON array")
		assert.Empty(t, comments)
	})

	t.Run("shows nested replies and masks deleted ones", func(t *testing.T) {
		commentID := createComment(t, app, accessToken, threadID)

		status, body := doJSON(t, app, http.MethodPost,
			"/threads/"+threadID+"/comments/"+commentID+"/replies",
			map[string]any{"content": "a reply"}, accessToken)
		require.Equal(t, http.StatusCreated, status)
		replyID := data(t, body)["addedReply"].(map[string]any)["id"].(string)

		status, _ = doJSON(t, app, http.MethodDelete,
			"/threads/"+threadID+"/comments/"+commentID+"/replies/"+replyID, nil, accessToken)
		require.Equal(t, http.StatusOK, status)

		status, body = doJSON(t, app, http.MethodGet, "/threads/"+threadID, nil, "")
		require.Equal(t, http.StatusOK, status)

		thread := data(t, body)["thread"].(map[string]any)
		comments := thread["comments"].([]any)
		require.Len(t, comments, 1)

		comment := comments[0].(map[string]any)
		assert.Equal(t, commentID, comment["id"])

		replies := comment["replies"].([]any)
		require.Len(t, replies, 1)
		reply := replies[0].(map[string]any)
		assert.Equal(t, replyID, reply["id"])
		assert.Equal(t, models.DeletedReplyPlaceholder, reply["content"])
	})

	t.Run("unknown thread", func(t *testing.T) {
		status, body := doJSON(t, app, http.MethodGet, "/threads/thread-x", nil, "")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Thread is not exist", body["message"])
	})
}
