package server

import (
	"github.com/gofiber/fiber/v2"

	"soulshub/internal/models"
)

// GetVerse returns the verse to display: the pinned custom verse if one
// exists, otherwise a generated one. ?refresh=true bypasses the pin for this
// read; ?theme= asks for a themed verse.
func (s *Server) GetVerse(c *fiber.Ctx) error {
	force := c.Query("refresh") == "true"
	verse, pinned, err := s.verseService.Current(c.UserContext(), force, c.Query("theme"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"verse":  verse,
		"custom": pinned,
	})
}

// ClearCustomVerse unpins the custom verse so generated verses show again.
func (s *Server) ClearCustomVerse(c *fiber.Ctx) error {
	if err := s.verseService.ClearPinned(c.UserContext()); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BeginVerseEdit opens a draft seeded with the currently displayed verse.
func (s *Server) BeginVerseEdit(c *fiber.Ctx) error {
	draft, err := s.verseService.BeginEdit(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

// UpdateVerseDraft replaces the draft fields.
func (s *Server) UpdateVerseDraft(c *fiber.Ctx) error {
	var draft models.DailyVerse
	if err := c.BodyParser(&draft); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.verseService.UpdateDraft(c.UserContext(), draft)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(updated)
}

// SaveVerseEdit pins the draft as the custom verse.
func (s *Server) SaveVerseEdit(c *fiber.Ctx) error {
	saved, err := s.verseService.SaveEdit(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(saved)
}

// CancelVerseEdit discards the draft.
func (s *Server) CancelVerseEdit(c *fiber.Ctx) error {
	s.verseService.CancelEdit()
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMeeting returns the meeting section.
func (s *Server) GetMeeting(c *fiber.Ctx) error {
	m, err := s.meetingService.Meeting(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(m)
}

func (s *Server) BeginMeetingEdit(c *fiber.Ctx) error {
	draft, err := s.meetingService.BeginEdit(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) UpdateMeetingDraft(c *fiber.Ctx) error {
	var draft models.MeetingInfo
	if err := c.BodyParser(&draft); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.meetingService.UpdateDraft(c.UserContext(), draft)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(updated)
}

func (s *Server) SaveMeetingEdit(c *fiber.Ctx) error {
	saved, err := s.meetingService.SaveEdit(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(saved)
}

func (s *Server) CancelMeetingEdit(c *fiber.Ctx) error {
	s.meetingService.CancelEdit()
	return c.SendStatus(fiber.StatusNoContent)
}

// GetQuickResources returns the home page quick resources list.
func (s *Server) GetQuickResources(c *fiber.Ctx) error {
	list, err := s.quickResources.Resources(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

func (s *Server) BeginQuickResourcesEdit(c *fiber.Ctx) error {
	draft, err := s.quickResources.BeginEdit(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) AddQuickResourceRow(c *fiber.Ctx) error {
	draft, err := s.quickResources.AddRow(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) UpdateQuickResourceRow(c *fiber.Ctx) error {
	var row models.Resource
	if err := c.BodyParser(&row); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row.ID = c.Params("id")

	draft, err := s.quickResources.UpdateRow(c.UserContext(), row)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) RemoveQuickResourceRow(c *fiber.Ctx) error {
	draft, err := s.quickResources.RemoveRow(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) SaveQuickResourcesEdit(c *fiber.Ctx) error {
	saved, err := s.quickResources.SaveEdit(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(saved)
}

func (s *Server) CancelQuickResourcesEdit(c *fiber.Ctx) error {
	s.quickResources.CancelEdit()
	return c.SendStatus(fiber.StatusNoContent)
}
