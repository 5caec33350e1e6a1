package server

import (
	"github.com/gofiber/fiber/v2"

	"soulshub/internal/models"
)

type loginRequest struct {
	Password string `json:"password"`
}

// AdminLogin opens an admin session. The gate is a shared content-editing
// secret, not an authentication system; logout is client-side token disposal.
func (s *Server) AdminLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	token, err := s.adminService.Login(c.UserContext(), req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"token": token})
}

// AdminSession confirms the presented session is still valid. A session that
// predates a full reset fails at the gate before reaching here.
func (s *Server) AdminSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"admin": true})
}

// AdminReset wipes all community data. Every outstanding admin session drops
// with it, this one included.
func (s *Server) AdminReset(c *fiber.Ctx) error {
	if err := s.adminService.ResetAll(c.UserContext(), confirmQuery(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
