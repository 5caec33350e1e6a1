package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"soulshub/internal/editable"
	"soulshub/internal/models"
	"soulshub/internal/repository"
)

// LibraryService serves the resource library. Categories and files edit as
// one all-or-nothing unit; saving recomputes every category's item count.
type LibraryService interface {
	Library(ctx context.Context) (models.Library, error)
	Download(ctx context.Context, fileID string) (models.ResourceFile, []byte, error)

	BeginEdit(ctx context.Context) (models.Library, error)
	AddFile(ctx context.Context) (models.Library, error)
	RemoveFile(ctx context.Context, id string) (models.Library, error)
	UpdateFile(ctx context.Context, row models.ResourceFile) (models.Library, error)
	UpdateCategory(ctx context.Context, row models.ResourceCategory) (models.Library, error)
	Upload(ctx context.Context, input UploadInput) (models.Library, error)
	SaveEdit(ctx context.Context) (models.Library, error)
	CancelEdit()
}

// UploadInput holds an uploaded file destined for the library draft.
type UploadInput struct {
	Filename string
	Category string
	Data     []byte
}

type libraryService struct {
	library  repository.LibraryRepository
	maxBytes int64
	unit     *editable.Unit[models.Library]
}

// NewLibraryService creates a new library service with the given upload cap.
func NewLibraryService(library repository.LibraryRepository, maxBytes int64) LibraryService {
	s := &libraryService{library: library, maxBytes: maxBytes}
	s.unit = editable.NewUnit(func(ctx context.Context, lib models.Library) error {
		lib.Recount()
		return library.SaveLibrary(ctx, lib)
	})
	return s
}

func (s *libraryService) Library(ctx context.Context) (models.Library, error) {
	lib, err := s.library.Library(ctx)
	if err != nil {
		return models.Library{}, models.NewInternalError(err)
	}
	return lib, nil
}

// Download rebuilds an uploaded file from its stored payload.
func (s *libraryService) Download(ctx context.Context, fileID string) (models.ResourceFile, []byte, error) {
	lib, err := s.Library(ctx)
	if err != nil {
		return models.ResourceFile{}, nil, err
	}

	for _, f := range lib.Files {
		if f.ID != fileID {
			continue
		}
		if f.Data == "" {
			return models.ResourceFile{}, nil, models.NewValidationError("File has no stored content")
		}
		data, err := base64.StdEncoding.DecodeString(f.Data)
		if err != nil {
			return models.ResourceFile{}, nil, models.NewInternalError(fmt.Errorf("decode stored file %q: %w", fileID, err))
		}
		return f, data, nil
	}

	return models.ResourceFile{}, nil, models.NewNotFoundError("File", fileID)
}

func (s *libraryService) BeginEdit(ctx context.Context) (models.Library, error) {
	current, err := s.Library(ctx)
	if err != nil {
		return models.Library{}, err
	}
	return s.unit.Begin(current)
}

func (s *libraryService) AddFile(ctx context.Context) (models.Library, error) {
	return s.unit.Update(func(lib *models.Library) {
		category := "Study Guides"
		if len(lib.Categories) > 0 {
			category = lib.Categories[0].Title
		}
		lib.Files = append(lib.Files, models.ResourceFile{
			ID:       newID(),
			Name:     "New Resource Name",
			Type:     "PDF",
			Size:     "0 KB",
			Category: category,
		})
	})
}

func (s *libraryService) RemoveFile(ctx context.Context, id string) (models.Library, error) {
	return s.unit.Update(func(lib *models.Library) {
		kept := lib.Files[:0]
		for _, f := range lib.Files {
			if f.ID != id {
				kept = append(kept, f)
			}
		}
		lib.Files = kept
	})
}

func (s *libraryService) UpdateFile(ctx context.Context, row models.ResourceFile) (models.Library, error) {
	return s.unit.Update(func(lib *models.Library) {
		for i := range lib.Files {
			if lib.Files[i].ID == row.ID {
				// Stored payloads survive metadata edits.
				if row.Data == "" {
					row.Data = lib.Files[i].Data
				}
				lib.Files[i] = row
				return
			}
		}
	})
}

func (s *libraryService) UpdateCategory(ctx context.Context, row models.ResourceCategory) (models.Library, error) {
	return s.unit.Update(func(lib *models.Library) {
		for i := range lib.Categories {
			if lib.Categories[i].ID == row.ID {
				lib.Categories[i] = row
				return
			}
		}
	})
}

// Upload adds the file to the draft with its payload stored inline. The size
// cap is enforced here with a clear error rather than failing deep in the
// store.
func (s *libraryService) Upload(ctx context.Context, input UploadInput) (models.Library, error) {
	if len(input.Data) == 0 {
		return models.Library{}, models.NewValidationError("Uploaded file is empty")
	}
	if int64(len(input.Data)) > s.maxBytes {
		return models.Library{}, models.NewValidationError(fmt.Sprintf(
			"File is too large: %s exceeds the %s limit",
			models.HumanSize(int64(len(input.Data))), models.HumanSize(s.maxBytes)))
	}

	name := strings.TrimSpace(input.Filename)
	if name == "" {
		return models.Library{}, models.NewValidationError("Uploaded file needs a name")
	}

	fileType := strings.ToUpper(strings.TrimPrefix(filepath.Ext(name), "."))
	if fileType == "" {
		fileType = "FILE"
	}

	return s.unit.Update(func(lib *models.Library) {
		category := input.Category
		if category == "" && len(lib.Categories) > 0 {
			category = lib.Categories[0].Title
		}
		lib.Files = append(lib.Files, models.ResourceFile{
			ID:       newID(),
			Name:     name,
			Type:     fileType,
			Size:     models.HumanSize(int64(len(input.Data))),
			Category: category,
			Data:     base64.StdEncoding.EncodeToString(input.Data),
		})
	})
}

func (s *libraryService) SaveEdit(ctx context.Context) (models.Library, error) {
	return s.unit.Commit(ctx)
}

func (s *libraryService) CancelEdit() {
	s.unit.Discard()
}
