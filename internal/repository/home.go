package repository

import (
	"context"

	"soulshub/internal/models"
	"soulshub/internal/store"
)

// VerseRepository persists the admin-pinned custom verse. A nil verse means
// nothing is pinned and the generated daily verse should be shown.
type VerseRepository interface {
	CustomVerse(ctx context.Context) (*models.DailyVerse, error)
	SaveCustomVerse(ctx context.Context, v models.DailyVerse) error
	ClearCustomVerse(ctx context.Context) error
}

type verseRepository struct {
	store store.Store
}

// NewVerseRepository creates a new verse repository.
func NewVerseRepository(s store.Store) VerseRepository {
	return &verseRepository{store: s}
}

func (r *verseRepository) CustomVerse(ctx context.Context) (*models.DailyVerse, error) {
	return loadJSON(ctx, r.store, keyCustomVerse, func() *models.DailyVerse { return nil })
}

func (r *verseRepository) SaveCustomVerse(ctx context.Context, v models.DailyVerse) error {
	return saveJSON(ctx, r.store, keyCustomVerse, &v)
}

func (r *verseRepository) ClearCustomVerse(ctx context.Context) error {
	return r.store.Delete(ctx, keyCustomVerse)
}

// MeetingRepository persists the editable meeting section.
type MeetingRepository interface {
	Meeting(ctx context.Context) (models.MeetingInfo, error)
	SaveMeeting(ctx context.Context, m models.MeetingInfo) error
}

type meetingRepository struct {
	store store.Store
}

// NewMeetingRepository creates a new meeting repository.
func NewMeetingRepository(s store.Store) MeetingRepository {
	return &meetingRepository{store: s}
}

func (r *meetingRepository) Meeting(ctx context.Context) (models.MeetingInfo, error) {
	return loadJSON(ctx, r.store, keyMeetingInfo, models.DefaultMeetingInfo)
}

func (r *meetingRepository) SaveMeeting(ctx context.Context, m models.MeetingInfo) error {
	return saveJSON(ctx, r.store, keyMeetingInfo, m)
}

// ResourceRepository persists the home page quick resources list.
type ResourceRepository interface {
	QuickResources(ctx context.Context) ([]models.Resource, error)
	SaveQuickResources(ctx context.Context, list []models.Resource) error
}

type resourceRepository struct {
	store store.Store
}

// NewResourceRepository creates a new resource repository.
func NewResourceRepository(s store.Store) ResourceRepository {
	return &resourceRepository{store: s}
}

func (r *resourceRepository) QuickResources(ctx context.Context) ([]models.Resource, error) {
	return loadJSON(ctx, r.store, keyResources, models.DefaultQuickResources)
}

func (r *resourceRepository) SaveQuickResources(ctx context.Context, list []models.Resource) error {
	return saveJSON(ctx, r.store, keyResources, list)
}
