package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"forumapi/internal/config"
	"forumapi/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestServer builds a full server over an in-memory sqlite database.
func setupTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// sqlite :memory: databases are per-connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:            "5000",
		Env:             "test",
		AccessTokenKey:  "test-access-key-that-is-long-enough",
		RefreshTokenKey: "test-refresh-key-that-is-long-enough",
		AccessTokenAge:  3600,
	}

	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	return srv, srv.App()
}

// doJSON performs a JSON request against the test app and decodes the
// response envelope.
func doJSON(t *testing.T, app *fiber.App, method, path string, payload any, token string) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body
}

// newRawRequest builds a request with a raw string body.
func newRawRequest(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// data extracts the data object from a success envelope.
func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, ok := body["data"].(map[string]any)
	require.True(t, ok, "expected data object in %v", body)
	return d
}

// registerAndLogin creates a user and returns the access and refresh tokens.
func registerAndLogin(t *testing.T, app *fiber.App, username string) (string, string) {
	t.Helper()

	status, _ := doJSON(t, app, http.MethodPost, "/users", map[string]any{
		"username": username,
		"password": "secret",
		"fullname": "Test User",
	}, "")
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, app, http.MethodPost, "/authentications", map[string]any{
		"username": username,
		"password": "secret",
	}, "")
	require.Equal(t, http.StatusCreated, status)

	d := data(t, body)
	accessToken, _ := d["accessToken"].(string)
	refreshToken, _ := d["refreshToken"].(string)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	return accessToken, refreshToken
}

// createThread adds a thread and returns its id.
func createThread(t *testing.T, app *fiber.App, token string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/threads", map[string]any{
		"title": "a thread",
		"body":  "the body",
	}, token)
	require.Equal(t, http.StatusCreated, status)
	added := data(t, body)["addedThread"].(map[string]any)
	return added["id"].(string)
}

// createComment adds a comment to the thread and returns its id.
func createComment(t *testing.T, app *fiber.App, token, threadID string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/threads/"+threadID+"/comments", map[string]any{
		"content": "nice thread",
	}, token)
	require.Equal(t, http.StatusCreated, status)
	added := data(t, body)["addedComment"].(map[string]any)
	return added["id"].(string)
}
