package server

import (
	"github.com/gofiber/fiber/v2"
)

// AddThread handles POST /threads.
func (s *Server) AddThread(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}

	added, err := s.threadService.AddThread(c.UserContext(), userID(c), payload)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusCreated, fiber.Map{
		"addedThread": added,
	})
}

// GetThreadDetails handles GET /threads/:threadId.
func (s *Server) GetThreadDetails(c *fiber.Ctx) error {
	detail, err := s.threadService.GetThreadDetails(c.UserContext(), c.Params("threadId"))
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, fiber.Map{
		"thread": detail,
	})
}
