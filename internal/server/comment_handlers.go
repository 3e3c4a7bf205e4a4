package server

import (
	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /threads/:threadId/comments.
func (s *Server) AddComment(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}

	added, err := s.commentService.AddComment(
		c.UserContext(), userID(c), c.Params("threadId"), payload)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusCreated, fiber.Map{
		"addedComment": added,
	})
}

// DeleteComment handles DELETE /threads/:threadId/comments/:commentId.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	err := s.commentService.DeleteComment(
		c.UserContext(), userID(c), c.Params("threadId"), c.Params("commentId"))
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, nil)
}

// AddReply handles POST /threads/:threadId/comments/:commentId/replies.
func (s *Server) AddReply(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}

	added, err := s.commentService.AddReply(
		c.UserContext(), userID(c), c.Params("threadId"), c.Params("commentId"), payload)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusCreated, fiber.Map{
		"addedReply": added,
	})
}

// DeleteReply handles DELETE /threads/:threadId/comments/:commentId/replies/:replyId.
func (s *Server) DeleteReply(c *fiber.Ctx) error {
	err := s.commentService.DeleteReply(
		c.UserContext(), userID(c), c.Params("threadId"), c.Params("commentId"), c.Params("replyId"))
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, nil)
}

// ToggleCommentLike handles PUT /threads/:threadId/comments/:commentId/likes.
func (s *Server) ToggleCommentLike(c *fiber.Ctx) error {
	err := s.commentService.ToggleLike(
		c.UserContext(), userID(c), c.Params("threadId"), c.Params("commentId"))
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, nil)
}
