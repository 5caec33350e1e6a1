package server

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"soulshub/internal/models"
	"soulshub/internal/service"
)

// GetLibrary returns the resource library: categories with counts and files.
func (s *Server) GetLibrary(c *fiber.Ctx) error {
	lib, err := s.libraryService.Library(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(lib)
}

// DownloadLibraryFile rebuilds an uploaded file from its stored payload.
func (s *Server) DownloadLibraryFile(c *fiber.Ctx) error {
	file, data, err := s.libraryService.Download(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.Name+`"`)
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(data)
}

func (s *Server) BeginLibraryEdit(c *fiber.Ctx) error {
	draft, err := s.libraryService.BeginEdit(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) AddLibraryFile(c *fiber.Ctx) error {
	draft, err := s.libraryService.AddFile(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

// UploadLibraryFile accepts a multipart upload into the library draft.
func (s *Server) UploadLibraryFile(c *fiber.Ctx) error {
	header, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Multipart field 'file' is required"))
	}

	f, err := header.Open()
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return respondServiceError(c, models.NewInternalError(err))
	}

	draft, err := s.libraryService.Upload(c.UserContext(), service.UploadInput{
		Filename: header.Filename,
		Category: c.FormValue("category"),
		Data:     data,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(draft)
}

func (s *Server) UpdateLibraryFile(c *fiber.Ctx) error {
	var row models.ResourceFile
	if err := c.BodyParser(&row); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row.ID = c.Params("id")

	draft, err := s.libraryService.UpdateFile(c.UserContext(), row)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) RemoveLibraryFile(c *fiber.Ctx) error {
	draft, err := s.libraryService.RemoveFile(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) UpdateLibraryCategory(c *fiber.Ctx) error {
	var row models.ResourceCategory
	if err := c.BodyParser(&row); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	row.ID = c.Params("id")

	draft, err := s.libraryService.UpdateCategory(c.UserContext(), row)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(draft)
}

func (s *Server) SaveLibraryEdit(c *fiber.Ctx) error {
	saved, err := s.libraryService.SaveEdit(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(saved)
}

func (s *Server) CancelLibraryEdit(c *fiber.Ctx) error {
	s.libraryService.CancelEdit()
	return c.SendStatus(fiber.StatusNoContent)
}
