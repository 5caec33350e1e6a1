package service

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulshub/internal/models"
	"soulshub/internal/repository"
	"soulshub/internal/store"
)

func sectionStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "sections.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestVerseService_Current(t *testing.T) {
	ctx := context.Background()
	s := sectionStore(t)
	verses := repository.NewVerseRepository(s)
	gateway := &stubGateway{verse: models.DailyVerse{Reference: "Romans 8:28", Text: "All things work together"}}
	svc := NewVerseService(verses, gateway)

	t.Run("generated when nothing pinned", func(t *testing.T) {
		v, pinned, err := svc.Current(ctx, false, "")
		require.NoError(t, err)
		assert.False(t, pinned)
		assert.Equal(t, "Romans 8:28", v.Reference)
	})

	t.Run("pinned verse wins", func(t *testing.T) {
		require.NoError(t, verses.SaveCustomVerse(ctx, models.DailyVerse{
			Reference: "Isaiah 41:10", Text: "Fear not",
		}))

		v, pinned, err := svc.Current(ctx, false, "")
		require.NoError(t, err)
		assert.True(t, pinned)
		assert.Equal(t, "Isaiah 41:10", v.Reference)
	})

	t.Run("force refresh bypasses the pin without clearing it", func(t *testing.T) {
		v, pinned, err := svc.Current(ctx, true, "")
		require.NoError(t, err)
		assert.False(t, pinned)
		assert.Equal(t, "Romans 8:28", v.Reference)

		v, pinned, err = svc.Current(ctx, false, "")
		require.NoError(t, err)
		assert.True(t, pinned)
		assert.Equal(t, "Isaiah 41:10", v.Reference)
	})

	t.Run("clear pin", func(t *testing.T) {
		require.NoError(t, svc.ClearPinned(ctx))
		_, pinned, err := svc.Current(ctx, false, "")
		require.NoError(t, err)
		assert.False(t, pinned)
	})
}

func TestVerseService_EditLifecycle(t *testing.T) {
	ctx := context.Background()
	s := sectionStore(t)
	verses := repository.NewVerseRepository(s)
	gateway := &stubGateway{verse: models.DailyVerse{Reference: "Psalm 23:1", Text: "The Lord is my shepherd"}}
	svc := NewVerseService(verses, gateway)

	draft, err := svc.BeginEdit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Psalm 23:1", draft.Reference)

	draft.Reference = "Psalm 46:10"
	draft.Text = "Be still, and know that I am God"
	_, err = svc.UpdateDraft(ctx, draft)
	require.NoError(t, err)

	saved, err := svc.SaveEdit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Psalm 46:10", saved.Reference)

	v, pinned, err := svc.Current(ctx, false, "")
	require.NoError(t, err)
	assert.True(t, pinned)
	assert.Equal(t, "Psalm 46:10", v.Reference)
}

func TestMeetingService_SaveAndCancel(t *testing.T) {
	ctx := context.Background()
	svc := NewMeetingService(repository.NewMeetingRepository(sectionStore(t)))

	t.Run("cancel restores the live value", func(t *testing.T) {
		draft, err := svc.BeginEdit(ctx)
		require.NoError(t, err)

		draft.Topic = "Never saved"
		_, err = svc.UpdateDraft(ctx, draft)
		require.NoError(t, err)

		svc.CancelEdit()

		m, err := svc.Meeting(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultMeetingInfo().Topic, m.Topic)
	})

	t.Run("save persists the whole draft", func(t *testing.T) {
		draft, err := svc.BeginEdit(ctx)
		require.NoError(t, err)

		draft.Time = "8:30 PM"
		draft.Topic = "Book of James, Chapter 2"
		_, err = svc.UpdateDraft(ctx, draft)
		require.NoError(t, err)

		_, err = svc.SaveEdit(ctx)
		require.NoError(t, err)

		m, err := svc.Meeting(ctx)
		require.NoError(t, err)
		assert.Equal(t, "8:30 PM", m.Time)
		assert.Equal(t, "Book of James, Chapter 2", m.Topic)
	})
}

func TestCircleService_EditLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewCircleService(repository.NewCircleRepository(sectionStore(t)))

	draft, err := svc.BeginEdit(ctx)
	require.NoError(t, err)
	assert.Empty(t, draft)

	draft, err = svc.AddRow(ctx)
	require.NoError(t, err)
	require.Len(t, draft, 1)

	row := draft[0]
	row.Name = "young adults"
	row.Members = 12
	draft, err = svc.UpdateRow(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, "Y", draft[0].Initial, "initial follows the renamed circle")

	saved, err := svc.SaveEdit(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "Y", saved[0].Initial)

	live, err := svc.Circles(ctx)
	require.NoError(t, err)
	assert.Equal(t, "young adults", live[0].Name)
}

func TestCircleService_RemoveRowOnlyTouchesDraft(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewCircleRepository(sectionStore(t))
	require.NoError(t, repo.SaveCircles(ctx, []models.Circle{
		{ID: "1", Name: "Prayer Warriors", Initial: "P"},
		{ID: "2", Name: "Bible Study", Initial: "B"},
	}))
	svc := NewCircleService(repo)

	_, err := svc.BeginEdit(ctx)
	require.NoError(t, err)

	draft, err := svc.RemoveRow(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, draft, 1)

	svc.CancelEdit()

	live, err := svc.Circles(ctx)
	require.NoError(t, err)
	assert.Len(t, live, 2, "cancel must restore removed rows")
}

func TestQuickResourceService_EditLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewQuickResourceService(repository.NewResourceRepository(sectionStore(t)))

	live, err := svc.Resources(ctx)
	require.NoError(t, err)
	require.Len(t, live, 3, "defaults hydrate on first read")

	draft, err := svc.BeginEdit(ctx)
	require.NoError(t, err)

	draft, err = svc.AddRow(ctx)
	require.NoError(t, err)
	assert.Len(t, draft, 4)

	draft, err = svc.RemoveRow(ctx, live[0].ID)
	require.NoError(t, err)
	assert.Len(t, draft, 3)

	saved, err := svc.SaveEdit(ctx)
	require.NoError(t, err)
	assert.Len(t, saved, 3)

	live, err = svc.Resources(ctx)
	require.NoError(t, err)
	assert.Len(t, live, 3)
}

func TestLibraryService_UploadAndRecount(t *testing.T) {
	ctx := context.Background()
	svc := NewLibraryService(repository.NewLibraryRepository(sectionStore(t)), 1024)

	_, err := svc.BeginEdit(ctx)
	require.NoError(t, err)

	t.Run("over the cap is rejected", func(t *testing.T) {
		_, err := svc.Upload(ctx, UploadInput{
			Filename: "huge.pdf",
			Data:     bytes.Repeat([]byte("x"), 2048),
		})
		assert.Error(t, err)
	})

	t.Run("empty upload rejected", func(t *testing.T) {
		_, err := svc.Upload(ctx, UploadInput{Filename: "empty.pdf"})
		assert.Error(t, err)
	})

	t.Run("upload lands in draft with inferred type", func(t *testing.T) {
		draft, err := svc.Upload(ctx, UploadInput{
			Filename: "james-study.pdf",
			Category: "Study Guides",
			Data:     []byte("outline"),
		})
		require.NoError(t, err)
		require.Len(t, draft.Files, 1)
		assert.Equal(t, "PDF", draft.Files[0].Type)
		assert.Equal(t, "7 B", draft.Files[0].Size)
		assert.NotEmpty(t, draft.Files[0].Data)
	})

	t.Run("save recounts categories", func(t *testing.T) {
		saved, err := svc.SaveEdit(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, saved.Categories[0].Items)
	})

	t.Run("download rebuilds the payload", func(t *testing.T) {
		lib, err := svc.Library(ctx)
		require.NoError(t, err)
		file, data, err := svc.Download(ctx, lib.Files[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "james-study.pdf", file.Name)
		assert.Equal(t, []byte("outline"), data)
	})

	t.Run("download of unknown file fails", func(t *testing.T) {
		_, _, err := svc.Download(ctx, "missing")
		assert.Error(t, err)
	})
}

func TestLibraryService_CategoryRenameOrphansFiles(t *testing.T) {
	ctx := context.Background()
	svc := NewLibraryService(repository.NewLibraryRepository(sectionStore(t)), 1<<20)

	draft, err := svc.BeginEdit(ctx)
	require.NoError(t, err)

	draft, err = svc.Upload(ctx, UploadInput{Filename: "notes.pdf", Category: "Study Guides", Data: []byte("n")})
	require.NoError(t, err)

	category := draft.Categories[0]
	category.Title = "Teaching Notes"
	_, err = svc.UpdateCategory(ctx, category)
	require.NoError(t, err)

	saved, err := svc.SaveEdit(ctx)
	require.NoError(t, err)

	// The file still points at the old title, so the renamed category
	// counts zero until the file is refiled.
	assert.Equal(t, 0, saved.Categories[0].Items)
	assert.Equal(t, "Study Guides", saved.Files[0].Category)
}
