package service

import (
	"context"
	"errors"
	"testing"

	"forumapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn          func(context.Context, *models.User) error
	getByUsernameFn   func(context.Context, string) (*models.User, error)
	verifyAvailableFn func(context.Context, string) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) VerifyUsernameAvailable(ctx context.Context, username string) error {
	return s.verifyAvailableFn(ctx, username)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:          func(_ context.Context, _ *models.User) error { return nil },
		getByUsernameFn:   func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		verifyAvailableFn: func(_ context.Context, _ string) error { return nil },
	}
}

// threadRepoStub is a stub for repository.ThreadRepository.
type threadRepoStub struct {
	createFn       func(context.Context, *models.Thread) error
	verifyExistsFn func(context.Context, string) error
	detailRowsFn   func(context.Context, string) ([]models.ThreadCommentRow, error)
}

func (s *threadRepoStub) Create(ctx context.Context, thread *models.Thread) error {
	return s.createFn(ctx, thread)
}
func (s *threadRepoStub) VerifyThreadExists(ctx context.Context, threadID string) error {
	return s.verifyExistsFn(ctx, threadID)
}
func (s *threadRepoStub) GetThreadDetailRows(ctx context.Context, threadID string) ([]models.ThreadCommentRow, error) {
	return s.detailRowsFn(ctx, threadID)
}

func noopThreadRepo() *threadRepoStub {
	return &threadRepoStub{
		createFn:       func(_ context.Context, _ *models.Thread) error { return nil },
		verifyExistsFn: func(_ context.Context, _ string) error { return nil },
		detailRowsFn: func(_ context.Context, _ string) ([]models.ThreadCommentRow, error) {
			return []models.ThreadCommentRow{{ThreadID: "thread-1"}}, nil
		},
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn             func(context.Context, *models.Comment) error
	verifyCommentFn      func(context.Context, string, string) error
	verifyReplyFn        func(context.Context, string, string, string) error
	verifyCommentOwnerFn func(context.Context, string, string) error
	softDeleteFn         func(context.Context, string) error
	toggleLikeFn         func(context.Context, string, string, string) (bool, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) VerifyCommentExists(ctx context.Context, threadID, commentID string) error {
	return s.verifyCommentFn(ctx, threadID, commentID)
}
func (s *commentRepoStub) VerifyReplyExists(ctx context.Context, threadID, commentID, replyID string) error {
	return s.verifyReplyFn(ctx, threadID, commentID, replyID)
}
func (s *commentRepoStub) VerifyCommentOwner(ctx context.Context, commentID, userID string) error {
	return s.verifyCommentOwnerFn(ctx, commentID, userID)
}
func (s *commentRepoStub) SoftDelete(ctx context.Context, commentID string) error {
	return s.softDeleteFn(ctx, commentID)
}
func (s *commentRepoStub) ToggleLike(ctx context.Context, threadID, commentID, userID string) (bool, error) {
	return s.toggleLikeFn(ctx, threadID, commentID, userID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:             func(_ context.Context, _ *models.Comment) error { return nil },
		verifyCommentFn:      func(_ context.Context, _, _ string) error { return nil },
		verifyReplyFn:        func(_ context.Context, _, _, _ string) error { return nil },
		verifyCommentOwnerFn: func(_ context.Context, _, _ string) error { return nil },
		softDeleteFn:         func(_ context.Context, _ string) error { return nil },
		toggleLikeFn:         func(_ context.Context, _, _, _ string) (bool, error) { return true, nil },
	}
}

// authRepoStub is a stub for repository.AuthenticationRepository.
type authRepoStub struct {
	addTokenFn    func(context.Context, string) error
	verifyTokenFn func(context.Context, string) error
	deleteTokenFn func(context.Context, string) error
}

func (s *authRepoStub) AddToken(ctx context.Context, token string) error {
	return s.addTokenFn(ctx, token)
}
func (s *authRepoStub) VerifyTokenAvailable(ctx context.Context, token string) error {
	return s.verifyTokenFn(ctx, token)
}
func (s *authRepoStub) DeleteToken(ctx context.Context, token string) error {
	return s.deleteTokenFn(ctx, token)
}

func noopAuthRepo() *authRepoStub {
	return &authRepoStub{
		addTokenFn:    func(_ context.Context, _ string) error { return nil },
		verifyTokenFn: func(_ context.Context, _ string) error { return nil },
		deleteTokenFn: func(_ context.Context, _ string) error { return nil },
	}
}

// plainHash is a PasswordHash fake that skips bcrypt.
type plainHash struct{}

func (plainHash) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (plainHash) Compare(plain, hashed string) error {
	if "hashed:"+plain != hashed {
		return models.NewAuthenticationError("kredensial yang Anda masukkan salah")
	}
	return nil
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}
