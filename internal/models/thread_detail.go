package models

import "time"

// Placeholder text shown in place of soft-deleted content.
const (
	DeletedCommentPlaceholder = "**komentar telah dihapus**"
	DeletedReplyPlaceholder   = "**balasan telah dihapus**"
)

// ThreadCommentRow is one flat row of the thread detail join: thread columns
// repeated per comment, comment columns empty when the thread has none.
type ThreadCommentRow struct {
	ThreadID         string
	ThreadTitle      string
	ThreadBody       string
	ThreadIsDeleted  bool
	ThreadDate       time.Time
	ThreadUsername   string
	CommentID        string
	CommentContent   string
	CommentDate      time.Time
	CommentIsDeleted bool
	ReplyCommentID   *string
	CommentLikes     int
	CommentUsername  string
}

// ReplyDetail is a reply as rendered in the thread detail view.
type ReplyDetail struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	LikeCount int       `json:"likeCount"`
}

// CommentDetail is a top-level comment with its replies nested under it.
type CommentDetail struct {
	ID        string        `json:"id"`
	Username  string        `json:"username"`
	Content   string        `json:"content"`
	Date      time.Time     `json:"date"`
	LikeCount int           `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

// ThreadDetail is the full rendered view of a thread.
type ThreadDetail struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Date      time.Time       `json:"date"`
	IsDeleted bool            `json:"isDeleted"`
	Comments  []CommentDetail `json:"comments"`
}

// ProjectThreadDetail assembles the nested thread view from flat join rows.
// Rows must be ordered by comment creation time; that order is preserved for
// both comments and replies. Soft-deleted content is masked with the
// placeholder text, but deleted comments still appear so their replies keep a
// parent.
func ProjectThreadDetail(rows []ThreadCommentRow) ThreadDetail {
	detail := ThreadDetail{
		ID:        rows[0].ThreadID,
		Username:  rows[0].ThreadUsername,
		Title:     rows[0].ThreadTitle,
		Body:      rows[0].ThreadBody,
		Date:      rows[0].ThreadDate,
		IsDeleted: rows[0].ThreadIsDeleted,
		Comments:  []CommentDetail{},
	}

	for _, row := range rows {
		if row.CommentID == "" || row.ReplyCommentID != nil {
			continue
		}

		comment := CommentDetail{
			ID:        row.CommentID,
			Username:  row.CommentUsername,
			Content:   row.CommentContent,
			Date:      row.CommentDate,
			LikeCount: row.CommentLikes,
			Replies:   []ReplyDetail{},
		}
		if row.CommentIsDeleted {
			comment.Content = DeletedCommentPlaceholder
		}

		for _, candidate := range rows {
			if candidate.ReplyCommentID == nil || *candidate.ReplyCommentID != row.CommentID {
				continue
			}
			reply := ReplyDetail{
				ID:        candidate.CommentID,
				Username:  candidate.CommentUsername,
				Content:   candidate.CommentContent,
				Date:      candidate.CommentDate,
				LikeCount: candidate.CommentLikes,
			}
			if candidate.CommentIsDeleted {
				reply.Content = DeletedReplyPlaceholder
			}
			comment.Replies = append(comment.Replies, reply)
		}

		detail.Comments = append(detail.Comments, comment)
	}

	return detail
}
