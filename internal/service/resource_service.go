package service

import (
	"context"

	"soulshub/internal/editable"
	"soulshub/internal/models"
	"soulshub/internal/repository"
)

// QuickResourceService serves the home page quick resources list and its
// editing lifecycle. Rows are added and removed on the draft only; cancel
// restores the saved list in full.
type QuickResourceService interface {
	Resources(ctx context.Context) ([]models.Resource, error)

	BeginEdit(ctx context.Context) ([]models.Resource, error)
	AddRow(ctx context.Context) ([]models.Resource, error)
	RemoveRow(ctx context.Context, id string) ([]models.Resource, error)
	UpdateRow(ctx context.Context, row models.Resource) ([]models.Resource, error)
	SaveEdit(ctx context.Context) ([]models.Resource, error)
	CancelEdit()
}

type quickResourceService struct {
	resources repository.ResourceRepository
	unit      *editable.Unit[[]models.Resource]
}

// NewQuickResourceService creates a new quick resource service.
func NewQuickResourceService(resources repository.ResourceRepository) QuickResourceService {
	s := &quickResourceService{resources: resources}
	s.unit = editable.NewUnit(func(ctx context.Context, list []models.Resource) error {
		return resources.SaveQuickResources(ctx, list)
	})
	return s
}

func (s *quickResourceService) Resources(ctx context.Context) ([]models.Resource, error) {
	list, err := s.resources.QuickResources(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return list, nil
}

func (s *quickResourceService) BeginEdit(ctx context.Context) ([]models.Resource, error) {
	current, err := s.Resources(ctx)
	if err != nil {
		return nil, err
	}
	return s.unit.Begin(current)
}

func (s *quickResourceService) AddRow(ctx context.Context) ([]models.Resource, error) {
	return s.unit.Update(func(list *[]models.Resource) {
		*list = append(*list, models.Resource{
			ID:    newID(),
			Title: "New Resource",
			Type:  "PDF",
			Link:  "#",
		})
	})
}

func (s *quickResourceService) RemoveRow(ctx context.Context, id string) ([]models.Resource, error) {
	return s.unit.Update(func(list *[]models.Resource) {
		kept := (*list)[:0]
		for _, r := range *list {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		*list = kept
	})
}

func (s *quickResourceService) UpdateRow(ctx context.Context, row models.Resource) ([]models.Resource, error) {
	return s.unit.Update(func(list *[]models.Resource) {
		for i := range *list {
			if (*list)[i].ID == row.ID {
				(*list)[i] = row
				return
			}
		}
	})
}

func (s *quickResourceService) SaveEdit(ctx context.Context) ([]models.Resource, error) {
	return s.unit.Commit(ctx)
}

func (s *quickResourceService) CancelEdit() {
	s.unit.Discard()
}
