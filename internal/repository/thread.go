package repository

import (
	"context"
	"database/sql"
	"time"

	"forumapi/internal/models"
	"forumapi/internal/observability"

	"gorm.io/gorm"
)

// ThreadRepository defines persistence operations for threads.
type ThreadRepository interface {
	Create(ctx context.Context, thread *models.Thread) error
	VerifyThreadExists(ctx context.Context, threadID string) error
	GetThreadDetailRows(ctx context.Context, threadID string) ([]models.ThreadCommentRow, error)
}

type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository returns a new ThreadRepository implementation.
func NewThreadRepository(db *gorm.DB) ThreadRepository {
	return &threadRepository{db: db}
}

func (r *threadRepository) Create(ctx context.Context, thread *models.Thread) error {
	defer observability.TrackQuery("insert", "threads")()
	if err := r.db.WithContext(ctx).Create(thread).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *threadRepository) VerifyThreadExists(ctx context.Context, threadID string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Thread{}).
		Where("id = ?", threadID).Count(&count).Error; err != nil {
		return models.NewInternalError(err)
	}
	if count == 0 {
		return models.NewNotFoundError("Thread is not exist")
	}
	return nil
}

// threadDetailRow mirrors the join row with nullable comment columns so a
// thread without comments still scans.
type threadDetailRow struct {
	ThreadID         string
	ThreadTitle      string
	ThreadBody       string
	ThreadIsDeleted  bool
	ThreadDate       time.Time
	ThreadUsername   string
	CommentID        sql.NullString
	CommentContent   sql.NullString
	CommentDate      sql.NullTime
	CommentIsDeleted sql.NullBool
	ReplyCommentID   sql.NullString
	CommentLikes     sql.NullInt64
	CommentUsername  sql.NullString
}

const threadDetailQuery = `
SELECT t.id AS thread_id,
       t.title AS thread_title,
       t.body AS thread_body,
       t.is_deleted AS thread_is_deleted,
       t.created_at AS thread_date,
       ut.username AS thread_username,
       tc.id AS comment_id,
       tc.content AS comment_content,
       tc.created_at AS comment_date,
       tc.is_deleted AS comment_is_deleted,
       tc.reply_comment_id,
       tc.likes AS comment_likes,
       utc.username AS comment_username
FROM threads t
JOIN users ut ON t.owner = ut.id
LEFT JOIN thread_comments tc ON tc.thread_id = t.id
LEFT JOIN users utc ON tc.owner = utc.id
WHERE t.id = ?
ORDER BY tc.created_at ASC`

// GetThreadDetailRows returns the flat join of a thread with all its comments
// and replies, ordered by comment creation time. A thread without comments
// yields a single row with empty comment columns.
func (r *threadRepository) GetThreadDetailRows(ctx context.Context, threadID string) ([]models.ThreadCommentRow, error) {
	defer observability.TrackQuery("select", "threads")()

	var raw []threadDetailRow
	if err := r.db.WithContext(ctx).Raw(threadDetailQuery, threadID).Scan(&raw).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	rows := make([]models.ThreadCommentRow, 0, len(raw))
	for _, row := range raw {
		out := models.ThreadCommentRow{
			ThreadID:        row.ThreadID,
			ThreadTitle:     row.ThreadTitle,
			ThreadBody:      row.ThreadBody,
			ThreadIsDeleted: row.ThreadIsDeleted,
			ThreadDate:      row.ThreadDate,
			ThreadUsername:  row.ThreadUsername,
		}
		if row.CommentID.Valid {
			out.CommentID = row.CommentID.String
			out.CommentContent = row.CommentContent.String
			out.CommentDate = row.CommentDate.Time
			out.CommentIsDeleted = row.CommentIsDeleted.Bool
			out.CommentLikes = int(row.CommentLikes.Int64)
			out.CommentUsername = row.CommentUsername.String
			if row.ReplyCommentID.Valid {
				parent := row.ReplyCommentID.String
				out.ReplyCommentID = &parent
			}
		}
		rows = append(rows, out)
	}
	return rows, nil
}
