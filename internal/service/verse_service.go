package service

import (
	"context"

	"soulshub/internal/ai"
	"soulshub/internal/editable"
	"soulshub/internal/models"
	"soulshub/internal/repository"
)

// VerseService serves the daily verse and its admin editing lifecycle. A
// pinned custom verse takes priority over generated ones until the reader
// explicitly asks for a fresh one.
type VerseService interface {
	Current(ctx context.Context, forceRefresh bool, theme string) (models.DailyVerse, bool, error)
	ClearPinned(ctx context.Context) error

	BeginEdit(ctx context.Context) (models.DailyVerse, error)
	UpdateDraft(ctx context.Context, draft models.DailyVerse) (models.DailyVerse, error)
	SaveEdit(ctx context.Context) (models.DailyVerse, error)
	CancelEdit()
}

type verseService struct {
	verses  repository.VerseRepository
	gateway ai.Gateway
	unit    *editable.Unit[models.DailyVerse]
}

// NewVerseService creates a new verse service.
func NewVerseService(verses repository.VerseRepository, gateway ai.Gateway) VerseService {
	s := &verseService{verses: verses, gateway: gateway}
	s.unit = editable.NewUnit(func(ctx context.Context, v models.DailyVerse) error {
		return verses.SaveCustomVerse(ctx, v)
	})
	return s
}

// Current returns the verse to display and whether it is a pinned custom
// verse. forceRefresh bypasses the pin for this read without clearing it.
func (s *verseService) Current(ctx context.Context, forceRefresh bool, theme string) (models.DailyVerse, bool, error) {
	if !forceRefresh {
		pinned, err := s.verses.CustomVerse(ctx)
		if err != nil {
			return models.DailyVerse{}, false, models.NewInternalError(err)
		}
		if pinned != nil {
			return *pinned, true, nil
		}
	}

	verse, err := s.gateway.DailyVerse(ctx, theme)
	if err != nil {
		// The gateway falls back internally; an error here is unexpected
		// but readers still get scripture.
		return ai.FallbackVerse(), false, nil
	}
	return verse, false, nil
}

func (s *verseService) ClearPinned(ctx context.Context) error {
	return s.verses.ClearCustomVerse(ctx)
}

// BeginEdit seeds the draft with whatever is currently displayed.
func (s *verseService) BeginEdit(ctx context.Context) (models.DailyVerse, error) {
	current, _, err := s.Current(ctx, false, "")
	if err != nil {
		return models.DailyVerse{}, err
	}
	return s.unit.Begin(current)
}

func (s *verseService) UpdateDraft(ctx context.Context, draft models.DailyVerse) (models.DailyVerse, error) {
	return s.unit.Update(func(v *models.DailyVerse) { *v = draft })
}

// SaveEdit pins the draft as the custom verse.
func (s *verseService) SaveEdit(ctx context.Context) (models.DailyVerse, error) {
	return s.unit.Commit(ctx)
}

func (s *verseService) CancelEdit() {
	s.unit.Discard()
}
