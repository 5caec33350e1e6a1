package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulshub/internal/models"
	"soulshub/internal/store"
)

func testStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPostRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(testStore(t))

	posts, err := repo.Posts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	saved := []models.Post{
		{ID: "2", Author: models.AuthorMember, Content: "Grateful today", Likes: 3},
		{ID: "1", Author: models.AuthorAdmin, Content: "Welcome everyone"},
	}
	require.NoError(t, repo.SavePosts(ctx, saved))

	got, err := repo.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, 3, got[0].Likes)
}

func TestPostRepository_SeedFlag(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(testStore(t))

	seeded, err := repo.HasSeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	require.NoError(t, repo.MarkSeeded(ctx))

	seeded, err = repo.HasSeeded(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
}

func TestLedgerRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(testStore(t))

	reactions, err := repo.Reactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, reactions)

	reactions["post-1"] = models.Reaction{Liked: true}
	require.NoError(t, repo.SaveReactions(ctx, reactions))

	got, err := repo.Reactions(ctx)
	require.NoError(t, err)
	assert.True(t, got["post-1"].Liked)
	assert.False(t, got["post-1"].Loved)

	prayed, err := repo.Prayed(ctx)
	require.NoError(t, err)
	prayed["prayer-1"] = true
	require.NoError(t, repo.SavePrayed(ctx, prayed))

	gotPrayed, err := repo.Prayed(ctx)
	require.NoError(t, err)
	assert.True(t, gotPrayed["prayer-1"])
}

func TestVerseRepository_CustomVerse(t *testing.T) {
	ctx := context.Background()
	repo := NewVerseRepository(testStore(t))

	v, err := repo.CustomVerse(ctx)
	require.NoError(t, err)
	assert.Nil(t, v)

	pinned := models.DailyVerse{Reference: "Isaiah 41:10", Text: "Fear not, for I am with you"}
	require.NoError(t, repo.SaveCustomVerse(ctx, pinned))

	v, err = repo.CustomVerse(ctx)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Isaiah 41:10", v.Reference)

	require.NoError(t, repo.ClearCustomVerse(ctx))
	v, err = repo.CustomVerse(ctx)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMeetingRepository_DefaultAndSave(t *testing.T) {
	ctx := context.Background()
	repo := NewMeetingRepository(testStore(t))

	m, err := repo.Meeting(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMeetingInfo(), m)

	m.Topic = "Book of James, Chapter 2"
	require.NoError(t, repo.SaveMeeting(ctx, m))

	got, err := repo.Meeting(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Book of James, Chapter 2", got.Topic)
}

func TestLibraryRepository_DefaultsAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewLibraryRepository(testStore(t))

	lib, err := repo.Library(ctx)
	require.NoError(t, err)
	require.Len(t, lib.Categories, 4)
	assert.Equal(t, "Study Guides", lib.Categories[0].Title)
	assert.Empty(t, lib.Files)

	lib.Files = append(lib.Files, models.ResourceFile{
		ID: "f1", Name: "James Study Guide", Type: "PDF", Size: "120 KB", Category: "Study Guides",
	})
	lib.Recount()
	require.NoError(t, repo.SaveLibrary(ctx, lib))

	got, err := repo.Library(ctx)
	require.NoError(t, err)
	require.Len(t, got.Files, 1)
	assert.Equal(t, 1, got.Categories[0].Items)
}

func TestCorruptDocumentFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	require.NoError(t, s.Put(ctx, keyMeetingInfo, []byte("{not json")))

	repo := NewMeetingRepository(s)
	m, err := repo.Meeting(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultMeetingInfo(), m)
}

func TestAdminRepository_ResetBumpsEpochAndWipes(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)
	admin := NewAdminRepository(s)
	posts := NewPostRepository(s)

	epoch, err := admin.Epoch(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, epoch)

	require.NoError(t, posts.SavePosts(ctx, []models.Post{{ID: "1", Content: "hello"}}))
	require.NoError(t, posts.MarkSeeded(ctx))

	require.NoError(t, admin.ResetAll(ctx))

	epoch, err = admin.Epoch(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, epoch)

	got, err := posts.Posts(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	seeded, err := posts.HasSeeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)
}
