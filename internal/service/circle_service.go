package service

import (
	"context"

	"soulshub/internal/editable"
	"soulshub/internal/models"
	"soulshub/internal/repository"
)

// CircleService serves the community circles list and its editing lifecycle.
type CircleService interface {
	Circles(ctx context.Context) ([]models.Circle, error)

	BeginEdit(ctx context.Context) ([]models.Circle, error)
	AddRow(ctx context.Context) ([]models.Circle, error)
	RemoveRow(ctx context.Context, id string) ([]models.Circle, error)
	UpdateRow(ctx context.Context, row models.Circle) ([]models.Circle, error)
	SaveEdit(ctx context.Context) ([]models.Circle, error)
	CancelEdit()
}

type circleService struct {
	circles repository.CircleRepository
	unit    *editable.Unit[[]models.Circle]
}

// NewCircleService creates a new circle service.
func NewCircleService(circles repository.CircleRepository) CircleService {
	s := &circleService{circles: circles}
	s.unit = editable.NewUnit(func(ctx context.Context, list []models.Circle) error {
		// Initials always derive from the final names, whatever the
		// draft went through.
		for i := range list {
			list[i].SyncInitial()
		}
		return circles.SaveCircles(ctx, list)
	})
	return s
}

func (s *circleService) Circles(ctx context.Context) ([]models.Circle, error) {
	list, err := s.circles.Circles(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return list, nil
}

func (s *circleService) BeginEdit(ctx context.Context) ([]models.Circle, error) {
	current, err := s.Circles(ctx)
	if err != nil {
		return nil, err
	}
	return s.unit.Begin(current)
}

func (s *circleService) AddRow(ctx context.Context) ([]models.Circle, error) {
	return s.unit.Update(func(list *[]models.Circle) {
		*list = append(*list, models.Circle{
			ID:      newID(),
			Name:    "New Circle",
			Members: 0,
			Initial: models.CircleInitial("New Circle"),
			Color:   "bg-stone-400",
		})
	})
}

func (s *circleService) RemoveRow(ctx context.Context, id string) ([]models.Circle, error) {
	return s.unit.Update(func(list *[]models.Circle) {
		kept := (*list)[:0]
		for _, c := range *list {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		*list = kept
	})
}

func (s *circleService) UpdateRow(ctx context.Context, row models.Circle) ([]models.Circle, error) {
	row.SyncInitial()
	return s.unit.Update(func(list *[]models.Circle) {
		for i := range *list {
			if (*list)[i].ID == row.ID {
				(*list)[i] = row
				return
			}
		}
	})
}

func (s *circleService) SaveEdit(ctx context.Context) ([]models.Circle, error) {
	return s.unit.Commit(ctx)
}

func (s *circleService) CancelEdit() {
	s.unit.Discard()
}
