package server

import (
	"encoding/json"

	"forumapi/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the request body into a generic map so validation can
// distinguish missing properties from wrong types.
func parseBody(c *fiber.Ctx) (map[string]any, error) {
	payload := map[string]any{}
	if len(c.Body()) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(c.Body(), &payload); err != nil {
		return nil, models.NewInvariantError("payload must be a valid JSON object")
	}
	return payload, nil
}

// userID returns the authenticated user's id set by AuthRequired.
func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}

// RegisterUser handles POST /users.
func (s *Server) RegisterUser(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}

	registered, err := s.userService.Register(c.UserContext(), payload)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusCreated, fiber.Map{
		"addedUser": registered,
	})
}
