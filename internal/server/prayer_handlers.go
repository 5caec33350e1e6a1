package server

import (
	"github.com/gofiber/fiber/v2"

	"soulshub/internal/models"
	"soulshub/internal/service"
)

// GetPrayers returns the prayer wall and the prayed-for ledger.
func (s *Server) GetPrayers(c *fiber.Ctx) error {
	prayers, prayed, err := s.prayerService.ListPrayers(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"prayers": prayers,
		"prayed":  prayed,
	})
}

type createPrayerRequest struct {
	Content string `json:"content"`
}

// CreatePrayer posts a prayer request to the top of the wall.
func (s *Server) CreatePrayer(c *fiber.Ctx) error {
	var req createPrayerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prayer, err := s.prayerService.CreatePrayer(c.UserContext(), service.CreatePrayerInput{
		Content: req.Content,
		IsAdmin: s.optionalAdmin(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(prayer)
}

// Pray marks a prayer request as prayed for. Idempotent per request id.
func (s *Server) Pray(c *fiber.Ctx) error {
	prayer, err := s.prayerService.Pray(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(prayer)
}

// DeletePrayer removes a prayer request. Admin only, confirm required.
func (s *Server) DeletePrayer(c *fiber.Ctx) error {
	if err := s.prayerService.DeletePrayer(c.UserContext(), c.Params("id"), confirmQuery(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
