package repository

import (
	"context"

	"soulshub/internal/models"
	"soulshub/internal/store"
)

// LibraryRepository persists the resource library. Categories and files live
// under separate keys but always load and save together.
type LibraryRepository interface {
	Library(ctx context.Context) (models.Library, error)
	SaveLibrary(ctx context.Context, lib models.Library) error
}

type libraryRepository struct {
	store store.Store
}

// NewLibraryRepository creates a new library repository.
func NewLibraryRepository(s store.Store) LibraryRepository {
	return &libraryRepository{store: s}
}

func (r *libraryRepository) Library(ctx context.Context) (models.Library, error) {
	def := models.DefaultLibrary()

	categories, err := loadJSON(ctx, r.store, keyCategories, func() []models.ResourceCategory { return def.Categories })
	if err != nil {
		return models.Library{}, err
	}
	files, err := loadJSON(ctx, r.store, keyFiles, func() []models.ResourceFile { return def.Files })
	if err != nil {
		return models.Library{}, err
	}

	return models.Library{Categories: categories, Files: files}, nil
}

func (r *libraryRepository) SaveLibrary(ctx context.Context, lib models.Library) error {
	if err := saveJSON(ctx, r.store, keyCategories, lib.Categories); err != nil {
		return err
	}
	return saveJSON(ctx, r.store, keyFiles, lib.Files)
}
