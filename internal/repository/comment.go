package repository

import (
	"context"
	"errors"

	"forumapi/internal/models"
	"forumapi/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for comments, replies and
// comment likes.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	VerifyCommentExists(ctx context.Context, threadID, commentID string) error
	VerifyReplyExists(ctx context.Context, threadID, commentID, replyID string) error
	VerifyCommentOwner(ctx context.Context, commentID, userID string) error
	SoftDelete(ctx context.Context, commentID string) error
	ToggleLike(ctx context.Context, threadID, commentID, userID string) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	defer observability.TrackQuery("insert", "thread_comments")()
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// VerifyCommentExists checks that the comment exists on the thread and is a
// top-level comment, not a reply.
func (r *commentRepository) VerifyCommentExists(ctx context.Context, threadID, commentID string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ? AND thread_id = ? AND reply_comment_id IS NULL", commentID, threadID).
		Count(&count).Error; err != nil {
		return models.NewInternalError(err)
	}
	if count == 0 {
		return models.NewNotFoundError("Comment is not exist")
	}
	return nil
}

// VerifyReplyExists checks that the reply exists under the given comment on
// the given thread.
func (r *commentRepository) VerifyReplyExists(ctx context.Context, threadID, commentID, replyID string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ? AND thread_id = ? AND reply_comment_id = ?", replyID, threadID, commentID).
		Count(&count).Error; err != nil {
		return models.NewInternalError(err)
	}
	if count == 0 {
		return models.NewNotFoundError("Comment is not exist")
	}
	return nil
}

func (r *commentRepository) VerifyCommentOwner(ctx context.Context, commentID, userID string) error {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Select("owner").
		Where("id = ?", commentID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Comment is not exist")
		}
		return models.NewInternalError(err)
	}
	if comment.OwnerID != userID {
		return models.NewAuthorizationError("Not Authorized")
	}
	return nil
}

// SoftDelete marks the comment deleted; the row stays so replies keep their
// parent and the detail view can show the placeholder.
func (r *commentRepository) SoftDelete(ctx context.Context, commentID string) error {
	defer observability.TrackQuery("update", "thread_comments")()
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("id = ?", commentID).Update("is_deleted", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ToggleLike likes the comment if the user has not liked it, or removes the
// like otherwise. The like row and the denormalized counter change inside one
// transaction; the unique index on (thread_id, comment_id, user_id) makes a
// concurrent duplicate insert fail rather than double count. Returns true
// when the toggle resulted in a like.
func (r *commentRepository) ToggleLike(ctx context.Context, threadID, commentID, userID string) (bool, error) {
	defer observability.TrackQuery("toggle", "user_comment_likes")()

	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var like models.CommentLike
		err := tx.Where("thread_id = ? AND comment_id = ? AND user_id = ?",
			threadID, commentID, userID).First(&like).Error

		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			return tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("likes - 1")).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			newLike := models.CommentLike{
				ThreadID:  threadID,
				CommentID: commentID,
				UserID:    userID,
			}
			if err := tx.Create(&newLike).Error; err != nil {
				return err
			}
			return tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("likes + 1")).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return liked, nil
}
