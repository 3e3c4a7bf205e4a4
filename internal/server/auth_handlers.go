package server

import (
	"github.com/gofiber/fiber/v2"
)

// Login handles POST /authentications.
func (s *Server) Login(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}

	pair, err := s.authService.Login(c.UserContext(), payload)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusCreated, pair)
}

// RefreshAuthentication handles PUT /authentications.
func (s *Server) RefreshAuthentication(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}

	accessToken, err := s.authService.Refresh(c.UserContext(), payload)
	if err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, fiber.Map{
		"accessToken": accessToken,
	})
}

// Logout handles DELETE /authentications.
func (s *Server) Logout(c *fiber.Ctx) error {
	payload, err := parseBody(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.authService.Logout(c.UserContext(), payload); err != nil {
		return respondError(c, err)
	}

	return respondSuccess(c, fiber.StatusOK, nil)
}
