package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"soulshub/internal/editable"
	"soulshub/internal/middleware"
	"soulshub/internal/models"
)

// respondServiceError maps service errors to HTTP status codes.
func respondServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, editable.ErrNotEditing) || errors.Is(err, editable.ErrAlreadyEditing) {
		return models.RespondWithError(c, fiber.StatusConflict, err)
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status := fiber.StatusInternalServerError
		switch appErr.Code {
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		case "CONFLICT":
			status = fiber.StatusConflict
		}
		return models.RespondWithError(c, status, appErr)
	}

	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

// optionalAdmin reports whether the request carries a valid admin session.
// Unlike AdminOnly it never rejects: it only decides the posting identity.
func (s *Server) optionalAdmin(c *fiber.Ctx) bool {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return false
	}

	claims, err := middleware.ParseSessionToken(s.config.JWTSecret, tokenString)
	if err != nil {
		return false
	}

	epoch, err := s.adminRepo.Epoch(c.UserContext())
	if err != nil || claims.Epoch != epoch {
		return false
	}

	return true
}

// confirmQuery reads the destructive-action confirmation flag.
func confirmQuery(c *fiber.Ctx) bool {
	return c.Query("confirm") == "true"
}
