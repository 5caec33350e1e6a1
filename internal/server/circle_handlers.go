package server

import (
	"github.com/gofiber/fiber/v2"

	"soulshub/internal/models"
)

// GetCircles returns the community circles list.
func (s *Server) GetCircles(c *fiber.Ctx) error {
	list, err := s.circleService.Circles(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

func (s *Server) BeginCirclesEdit(c *fiber.Ctx) error {
	draft, err := s.circleService.BeginEdit(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) AddCircleRow(c *fiber.Ctx) error {
	draft, err := s.circleService.AddRow(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) UpdateCircleRow(c *fiber.Ctx) error {
	var row models.Circle
	if err := c.BodyParser(&row); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row.ID = c.Params("id")

	draft, err := s.circleService.UpdateRow(c.UserContext(), row)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) RemoveCircleRow(c *fiber.Ctx) error {
	draft, err := s.circleService.RemoveRow(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) SaveCirclesEdit(c *fiber.Ctx) error {
	saved, err := s.circleService.SaveEdit(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(saved)
}

func (s *Server) CancelCirclesEdit(c *fiber.Ctx) error {
	s.circleService.CancelEdit()
	return c.SendStatus(fiber.StatusNoContent)
}
