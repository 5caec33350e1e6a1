package service

import (
	"context"
	"strings"
	"time"

	"soulshub/internal/models"
	"soulshub/internal/observability"
	"soulshub/internal/repository"
)

// PrayerService defines business logic for the prayer wall.
type PrayerService interface {
	ListPrayers(ctx context.Context) ([]models.PrayerRequest, models.PrayedLedger, error)
	CreatePrayer(ctx context.Context, input CreatePrayerInput) (*models.PrayerRequest, error)
	DeletePrayer(ctx context.Context, id string, confirm bool) error
	Pray(ctx context.Context, id string) (*models.PrayerRequest, error)
}

type prayerService struct {
	prayers repository.PrayerRepository
	ledgers repository.LedgerRepository
}

// NewPrayerService creates a new prayer service.
func NewPrayerService(prayers repository.PrayerRepository, ledgers repository.LedgerRepository) PrayerService {
	return &prayerService{prayers: prayers, ledgers: ledgers}
}

// CreatePrayerInput holds the data needed to post a prayer request.
type CreatePrayerInput struct {
	Content string
	IsAdmin bool
}

func (s *prayerService) ListPrayers(ctx context.Context) ([]models.PrayerRequest, models.PrayedLedger, error) {
	prayers, err := s.prayers.Prayers(ctx)
	if err != nil {
		return nil, nil, models.NewInternalError(err)
	}
	prayed, err := s.ledgers.Prayed(ctx)
	if err != nil {
		return nil, nil, models.NewInternalError(err)
	}
	return prayers, prayed, nil
}

func (s *prayerService) CreatePrayer(ctx context.Context, input CreatePrayerInput) (*models.PrayerRequest, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, models.NewValidationError("Prayer request cannot be empty")
	}

	prayers, err := s.prayers.Prayers(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	request := models.PrayerRequest{
		ID:        newID(),
		Author:    authorFor(input.IsAdmin),
		Content:   content,
		Time:      "Just now",
		Timestamp: time.Now().UnixMilli(),
	}

	prayers = append([]models.PrayerRequest{request}, prayers...)
	if err := s.prayers.SavePrayers(ctx, prayers); err != nil {
		return nil, models.NewInternalError(err)
	}

	return &request, nil
}

func (s *prayerService) DeletePrayer(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return models.NewValidationError("Deletion requires confirmation")
	}

	prayers, err := s.prayers.Prayers(ctx)
	if err != nil {
		return models.NewInternalError(err)
	}

	kept := prayers[:0]
	found := false
	for _, p := range prayers {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return models.NewNotFoundError("Prayer request", id)
	}

	return s.prayers.SavePrayers(ctx, kept)
}

// Pray increments the praying count exactly once per request id. Repeat calls
// are no-ops returning the current state, so the count never inflates.
func (s *prayerService) Pray(ctx context.Context, id string) (*models.PrayerRequest, error) {
	prayers, err := s.prayers.Prayers(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	idx := -1
	for i := range prayers {
		if prayers[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, models.NewNotFoundError("Prayer request", id)
	}

	prayed, err := s.ledgers.Prayed(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if prayed[id] {
		return &prayers[idx], nil
	}

	prayers[idx].PrayingCount++
	prayed[id] = true

	if err := s.prayers.SavePrayers(ctx, prayers); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.ledgers.SavePrayed(ctx, prayed); err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.FeedInteractions.WithLabelValues("pray").Inc()
	return &prayers[idx], nil
}
