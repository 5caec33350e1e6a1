package repository

import (
	"context"

	"soulshub/internal/models"
	"soulshub/internal/store"
)

// PostRepository persists the community feed and the one-time seeding flag.
type PostRepository interface {
	Posts(ctx context.Context) ([]models.Post, error)
	SavePosts(ctx context.Context, posts []models.Post) error
	HasSeeded(ctx context.Context) (bool, error)
	MarkSeeded(ctx context.Context) error
}

type postRepository struct {
	store store.Store
}

// NewPostRepository creates a new post repository.
func NewPostRepository(s store.Store) PostRepository {
	return &postRepository{store: s}
}

func (r *postRepository) Posts(ctx context.Context) ([]models.Post, error) {
	return loadJSON(ctx, r.store, keyPosts, func() []models.Post { return []models.Post{} })
}

func (r *postRepository) SavePosts(ctx context.Context, posts []models.Post) error {
	return saveJSON(ctx, r.store, keyPosts, posts)
}

func (r *postRepository) HasSeeded(ctx context.Context) (bool, error) {
	return loadJSON(ctx, r.store, keyHasSeeded, func() bool { return false })
}

func (r *postRepository) MarkSeeded(ctx context.Context) error {
	return saveJSON(ctx, r.store, keyHasSeeded, true)
}

// PrayerRepository persists the prayer wall.
type PrayerRepository interface {
	Prayers(ctx context.Context) ([]models.PrayerRequest, error)
	SavePrayers(ctx context.Context, prayers []models.PrayerRequest) error
}

type prayerRepository struct {
	store store.Store
}

// NewPrayerRepository creates a new prayer repository.
func NewPrayerRepository(s store.Store) PrayerRepository {
	return &prayerRepository{store: s}
}

func (r *prayerRepository) Prayers(ctx context.Context) ([]models.PrayerRequest, error) {
	return loadJSON(ctx, r.store, keyPrayers, func() []models.PrayerRequest { return []models.PrayerRequest{} })
}

func (r *prayerRepository) SavePrayers(ctx context.Context, prayers []models.PrayerRequest) error {
	return saveJSON(ctx, r.store, keyPrayers, prayers)
}

// LedgerRepository persists the shared reaction and prayed-for ledgers.
type LedgerRepository interface {
	Reactions(ctx context.Context) (models.ReactionLedger, error)
	SaveReactions(ctx context.Context, l models.ReactionLedger) error
	Prayed(ctx context.Context) (models.PrayedLedger, error)
	SavePrayed(ctx context.Context, l models.PrayedLedger) error
}

type ledgerRepository struct {
	store store.Store
}

// NewLedgerRepository creates a new ledger repository.
func NewLedgerRepository(s store.Store) LedgerRepository {
	return &ledgerRepository{store: s}
}

func (r *ledgerRepository) Reactions(ctx context.Context) (models.ReactionLedger, error) {
	return loadJSON(ctx, r.store, keyReactions, func() models.ReactionLedger { return models.ReactionLedger{} })
}

func (r *ledgerRepository) SaveReactions(ctx context.Context, l models.ReactionLedger) error {
	return saveJSON(ctx, r.store, keyReactions, l)
}

func (r *ledgerRepository) Prayed(ctx context.Context) (models.PrayedLedger, error) {
	return loadJSON(ctx, r.store, keyPrayedFor, func() models.PrayedLedger { return models.PrayedLedger{} })
}

func (r *ledgerRepository) SavePrayed(ctx context.Context, l models.PrayedLedger) error {
	return saveJSON(ctx, r.store, keyPrayedFor, l)
}
