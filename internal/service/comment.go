package service

import (
	"context"

	"forumapi/internal/models"
	"forumapi/internal/observability"
	"forumapi/internal/repository"
	"forumapi/internal/validation"

	"github.com/google/uuid"
)

// AddedComment is the response shape for a newly created comment.
type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// AddedReply is the response shape for a newly created reply.
type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// CommentService handles comments, replies and comment likes.
type CommentService struct {
	comments repository.CommentRepository
	threads  repository.ThreadRepository
	newID    func() string
}

// NewCommentService returns a new CommentService.
func NewCommentService(comments repository.CommentRepository, threads repository.ThreadRepository) *CommentService {
	return &CommentService{
		comments: comments,
		threads:  threads,
		newID:    uuid.NewString,
	}
}

// AddComment validates the payload and adds a top-level comment to the thread.
func (s *CommentService) AddComment(ctx context.Context, userID, threadID string, payload map[string]any) (*AddedComment, error) {
	entity, err := validation.NewAddComment(payload)
	if err != nil {
		return nil, err
	}

	if err := s.threads.VerifyThreadExists(ctx, threadID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:       "comment-" + s.newID(),
		Content:  entity.Content,
		OwnerID:  userID,
		ThreadID: threadID,
	}
	if err := s.comments.Create(ctx, &comment); err != nil {
		return nil, err
	}

	observability.CommentsCreated.WithLabelValues("comment").Inc()

	return &AddedComment{
		ID:      comment.ID,
		Content: comment.Content,
		Owner:   comment.OwnerID,
	}, nil
}

// AddReply validates the payload and adds a reply under the given comment.
func (s *CommentService) AddReply(ctx context.Context, userID, threadID, commentID string, payload map[string]any) (*AddedReply, error) {
	entity, err := validation.NewAddReply(payload)
	if err != nil {
		return nil, err
	}

	if err := s.threads.VerifyThreadExists(ctx, threadID); err != nil {
		return nil, err
	}
	if err := s.comments.VerifyCommentExists(ctx, threadID, commentID); err != nil {
		return nil, err
	}

	parent := commentID
	reply := models.Comment{
		ID:             "reply-" + s.newID(),
		Content:        entity.Content,
		OwnerID:        userID,
		ThreadID:       threadID,
		ReplyCommentID: &parent,
	}
	if err := s.comments.Create(ctx, &reply); err != nil {
		return nil, err
	}

	observability.CommentsCreated.WithLabelValues("reply").Inc()

	return &AddedReply{
		ID:      reply.ID,
		Content: reply.Content,
		Owner:   reply.OwnerID,
	}, nil
}

// DeleteComment soft deletes a comment after checking it exists and belongs
// to the caller.
func (s *CommentService) DeleteComment(ctx context.Context, userID, threadID, commentID string) error {
	if err := s.threads.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExists(ctx, threadID, commentID); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(ctx, commentID, userID); err != nil {
		return err
	}
	return s.comments.SoftDelete(ctx, commentID)
}

// DeleteReply soft deletes a reply after checking it exists under the comment
// and belongs to the caller.
func (s *CommentService) DeleteReply(ctx context.Context, userID, threadID, commentID, replyID string) error {
	if err := s.threads.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	if err := s.comments.VerifyReplyExists(ctx, threadID, commentID, replyID); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(ctx, replyID, userID); err != nil {
		return err
	}
	return s.comments.SoftDelete(ctx, replyID)
}

// ToggleLike likes the comment for the user, or removes an existing like.
func (s *CommentService) ToggleLike(ctx context.Context, userID, threadID, commentID string) error {
	if err := s.threads.VerifyThreadExists(ctx, threadID); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExists(ctx, threadID, commentID); err != nil {
		return err
	}

	liked, err := s.comments.ToggleLike(ctx, threadID, commentID, userID)
	if err != nil {
		return err
	}

	if liked {
		observability.LikesToggled.WithLabelValues("like").Inc()
	} else {
		observability.LikesToggled.WithLabelValues("unlike").Inc()
	}
	return nil
}
