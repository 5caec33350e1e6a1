package repository

import (
	"context"

	"soulshub/internal/models"
	"soulshub/internal/store"
)

// CircleRepository persists the community circles list.
type CircleRepository interface {
	Circles(ctx context.Context) ([]models.Circle, error)
	SaveCircles(ctx context.Context, circles []models.Circle) error
}

type circleRepository struct {
	store store.Store
}

// NewCircleRepository creates a new circle repository.
func NewCircleRepository(s store.Store) CircleRepository {
	return &circleRepository{store: s}
}

func (r *circleRepository) Circles(ctx context.Context) ([]models.Circle, error) {
	return loadJSON(ctx, r.store, keyCircles, func() []models.Circle { return []models.Circle{} })
}

func (r *circleRepository) SaveCircles(ctx context.Context, circles []models.Circle) error {
	return saveJSON(ctx, r.store, keyCircles, circles)
}
