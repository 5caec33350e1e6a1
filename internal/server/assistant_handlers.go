package server

import (
	"github.com/gofiber/fiber/v2"

	"soulshub/internal/models"
)

type planRequest struct {
	Topic string `json:"topic"`
}

// GeneratePlan creates a seven-day study plan for the given topic. Plans are
// returned to the caller only, never stored.
func (s *Server) GeneratePlan(c *fiber.Ctx) error {
	var req planRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	plan, err := s.assistantService.Plan(c.UserContext(), req.Topic)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(plan)
}

type askRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// Ask answers a question from a biblical perspective. A gateway failure still
// answers, with the apologetic fallback message.
func (s *Server) Ask(c *fiber.Ctx) error {
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	answer, err := s.assistantService.Ask(c.UserContext(), req.Question, req.Context)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"answer": answer})
}
