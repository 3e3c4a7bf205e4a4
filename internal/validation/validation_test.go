package validation

import (
	"errors"
	"strings"
	"testing"

	"forumapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertDomainCode checks that err is an AppError carrying the given code.
func assertDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestNewRegisterUser(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		entity, err := NewRegisterUser(map[string]any{
			"username": "dicoding",
			"password": "secret",
			"fullname": "Dicoding Indonesia",
		})
		require.NoError(t, err)
		assert.Equal(t, "dicoding", entity.Username)
		assert.Equal(t, "secret", entity.Password)
		assert.Equal(t, "Dicoding Indonesia", entity.Fullname)
	})

	t.Run("missing property", func(t *testing.T) {
		t.Parallel()
		_, err := NewRegisterUser(map[string]any{
			"username": "dicoding",
			"password": "secret",
		})
		assertDomainCode(t, err, ErrRegisterUserMissingProperty)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		t.Parallel()
		_, err := NewRegisterUser(map[string]any{
			"username": "",
			"password": "secret",
			"fullname": "Dicoding Indonesia",
		})
		assertDomainCode(t, err, ErrRegisterUserMissingProperty)
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := NewRegisterUser(map[string]any{
			"username": float64(123),
			"password": "secret",
			"fullname": true,
		})
		assertDomainCode(t, err, ErrRegisterUserWrongType)
	})

	t.Run("username over 50 characters", func(t *testing.T) {
		t.Parallel()
		_, err := NewRegisterUser(map[string]any{
			"username": strings.Repeat("a", 61),
			"password": "secret",
			"fullname": "Dicoding Indonesia",
		})
		assertDomainCode(t, err, ErrRegisterUserUsernameTooLong)
	})

	t.Run("username with restricted character", func(t *testing.T) {
		t.Parallel()
		_, err := NewRegisterUser(map[string]any{
			"username": "dico ding",
			"password": "secret",
			"fullname": "Dicoding Indonesia",
		})
		assertDomainCode(t, err, ErrRegisterUserUsernameIllegal)
	})
}

func TestNewLoginUser(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		entity, err := NewLoginUser(map[string]any{
			"username": "dicoding",
			"password": "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "dicoding", entity.Username)
		assert.Equal(t, "secret", entity.Password)
	})

	t.Run("missing property", func(t *testing.T) {
		t.Parallel()
		_, err := NewLoginUser(map[string]any{"username": "dicoding"})
		assertDomainCode(t, err, ErrLoginUserMissingProperty)
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := NewLoginUser(map[string]any{
			"username": "dicoding",
			"password": float64(42),
		})
		assertDomainCode(t, err, ErrLoginUserWrongType)
	})
}

func TestNewAddThread(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		entity, err := NewAddThread(map[string]any{
			"title": "a thread",
			"body":  "the body",
		})
		require.NoError(t, err)
		assert.Equal(t, "a thread", entity.Title)
		assert.Equal(t, "the body", entity.Body)
	})

	t.Run("missing property", func(t *testing.T) {
		t.Parallel()
		_, err := NewAddThread(map[string]any{"title": "a thread"})
		assertDomainCode(t, err, ErrAddThreadMissingProperty)
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := NewAddThread(map[string]any{
			"title": "a thread",
			"body":  []any{"not", "a", "string"},
		})
		assertDomainCode(t, err, ErrAddThreadWrongType)
	})

	t.Run("missing reported before wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := NewAddThread(map[string]any{"body": float64(1)})
		assertDomainCode(t, err, ErrAddThreadMissingProperty)
	})
}

func TestNewAddComment(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		entity, err := NewAddComment(map[string]any{"content": "nice thread"})
		require.NoError(t, err)
		assert.Equal(t, "nice thread", entity.Content)
	})

	t.Run("missing content", func(t *testing.T) {
		t.Parallel()
		_, err := NewAddComment(map[string]any{})
		assertDomainCode(t, err, ErrAddCommentMissingProperty)
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := NewAddComment(map[string]any{"content": float64(7)})
		assertDomainCode(t, err, ErrAddCommentWrongType)
	})
}

func TestNewAddReply(t *testing.T) {
	t.Parallel()

	t.Run("valid payload", func(t *testing.T) {
		t.Parallel()
		entity, err := NewAddReply(map[string]any{"content": "i agree"})
		require.NoError(t, err)
		assert.Equal(t, "i agree", entity.Content)
	})

	t.Run("missing content", func(t *testing.T) {
		t.Parallel()
		_, err := NewAddReply(map[string]any{"other": "field"})
		assertDomainCode(t, err, ErrAddReplyMissingProperty)
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := NewAddReply(map[string]any{"content": map[string]any{}})
		assertDomainCode(t, err, ErrAddReplyWrongType)
	})
}

func TestRefreshTokenEntities(t *testing.T) {
	t.Parallel()

	t.Run("refresh valid", func(t *testing.T) {
		t.Parallel()
		entity, err := NewRefreshAuth(map[string]any{"refreshToken": "some-token"})
		require.NoError(t, err)
		assert.Equal(t, "some-token", entity.RefreshToken)
	})

	t.Run("refresh missing token", func(t *testing.T) {
		t.Parallel()
		_, err := NewRefreshAuth(map[string]any{})
		assertDomainCode(t, err, ErrRefreshAuthMissingToken)
	})

	t.Run("refresh wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := NewRefreshAuth(map[string]any{"refreshToken": float64(1)})
		assertDomainCode(t, err, ErrRefreshAuthWrongType)
	})

	t.Run("delete valid", func(t *testing.T) {
		t.Parallel()
		entity, err := NewDeleteAuth(map[string]any{"refreshToken": "some-token"})
		require.NoError(t, err)
		assert.Equal(t, "some-token", entity.RefreshToken)
	})

	t.Run("delete missing token", func(t *testing.T) {
		t.Parallel()
		_, err := NewDeleteAuth(map[string]any{})
		assertDomainCode(t, err, ErrDeleteAuthMissingToken)
	})

	t.Run("delete wrong type", func(t *testing.T) {
		t.Parallel()
		_, err := NewDeleteAuth(map[string]any{"refreshToken": true})
		assertDomainCode(t, err, ErrDeleteAuthWrongType)
	})
}
