package models

import "time"

// CommentLike records that a user liked a comment. The unique index makes
// concurrent identical toggles collide instead of double counting; the
// denormalized Comment.Likes counter is kept in sync inside the same
// transaction.
type CommentLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ThreadID  string    `gorm:"size:50;not null;uniqueIndex:idx_thread_comment_user" json:"thread_id"`
	CommentID string    `gorm:"size:50;not null;uniqueIndex:idx_thread_comment_user" json:"comment_id"`
	UserID    string    `gorm:"size:50;not null;uniqueIndex:idx_thread_comment_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (CommentLike) TableName() string {
	return "user_comment_likes"
}
