package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulshub/internal/ai"
	"soulshub/internal/models"
	"soulshub/internal/repository"
	"soulshub/internal/store"
)

// stubGateway is a configurable test double for the content gateway.
type stubGateway struct {
	verse    models.DailyVerse
	verseErr error
	plan     models.StudyPlan
	planErr  error
	answer   string
	askErr   error
	seed     ai.SeedContent
	seedErr  error

	seedCalls int
}

func (g *stubGateway) DailyVerse(_ context.Context, _ string) (models.DailyVerse, error) {
	if g.verseErr != nil {
		return models.DailyVerse{}, g.verseErr
	}
	return g.verse, nil
}

func (g *stubGateway) StudyPlan(_ context.Context, _ string) (models.StudyPlan, error) {
	return g.plan, g.planErr
}

func (g *stubGateway) Ask(_ context.Context, _, _ string) (string, error) {
	return g.answer, g.askErr
}

func (g *stubGateway) SeedContent(_ context.Context) (ai.SeedContent, error) {
	g.seedCalls++
	if g.seedErr != nil {
		return ai.SeedContent{}, g.seedErr
	}
	return g.seed, nil
}

type feedFixture struct {
	feed    FeedService
	prayers PrayerService
	posts   repository.PostRepository
	gateway *stubGateway
}

func newFeedFixture(t *testing.T) *feedFixture {
	t.Helper()
	s, err := store.OpenSQLite(filepath.Join(t.TempDir(), "feed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	posts := repository.NewPostRepository(s)
	prayers := repository.NewPrayerRepository(s)
	ledgers := repository.NewLedgerRepository(s)
	gateway := &stubGateway{}

	return &feedFixture{
		feed:    NewFeedService(posts, prayers, ledgers, gateway),
		prayers: NewPrayerService(prayers, ledgers),
		posts:   posts,
		gateway: gateway,
	}
}

func TestFeedService_CreatePost(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := f.feed.CreatePost(ctx, CreatePostInput{Content: "   "})
		assert.Error(t, err)
	})

	t.Run("trims and prepends", func(t *testing.T) {
		first, err := f.feed.CreatePost(ctx, CreatePostInput{Content: "  First post  "})
		require.NoError(t, err)
		assert.Equal(t, "First post", first.Content)
		assert.Equal(t, models.AuthorMember, first.Author)

		second, err := f.feed.CreatePost(ctx, CreatePostInput{Content: "Second post", IsAdmin: true})
		require.NoError(t, err)
		assert.Equal(t, models.AuthorAdmin, second.Author)

		posts, _, err := f.feed.ListPosts(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "Second post", posts[0].Content)
		assert.Equal(t, "First post", posts[1].Content)
		assert.NotEqual(t, posts[0].ID, posts[1].ID)
	})
}

func TestFeedService_ToggleReaction(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	post, err := f.feed.CreatePost(ctx, CreatePostInput{Content: "React to me"})
	require.NoError(t, err)

	t.Run("like then unlike is a no-op", func(t *testing.T) {
		p, state, err := f.feed.ToggleReaction(ctx, post.ID, models.ReactionLike)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Likes)
		assert.True(t, state.Liked)

		p, state, err = f.feed.ToggleReaction(ctx, post.ID, models.ReactionLike)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Likes)
		assert.False(t, state.Liked)
	})

	t.Run("like and love are independent", func(t *testing.T) {
		p, _, err := f.feed.ToggleReaction(ctx, post.ID, models.ReactionLike)
		require.NoError(t, err)
		p, state, err := f.feed.ToggleReaction(ctx, post.ID, models.ReactionLove)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Likes)
		assert.Equal(t, 1, p.Loves)
		assert.True(t, state.Liked)
		assert.True(t, state.Loved)
	})

	t.Run("counter never goes negative", func(t *testing.T) {
		// Force a seeded-zero counter with a marked reaction.
		seeded, err := f.feed.CreatePost(ctx, CreatePostInput{Content: "zero likes"})
		require.NoError(t, err)
		_, _, err = f.feed.ToggleReaction(ctx, seeded.ID, models.ReactionLike)
		require.NoError(t, err)
		p, _, err := f.feed.ToggleReaction(ctx, seeded.ID, models.ReactionLike)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Likes)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		_, _, err := f.feed.ToggleReaction(ctx, post.ID, models.ReactionKind("grin"))
		assert.Error(t, err)
	})

	t.Run("unknown post rejected", func(t *testing.T) {
		_, _, err := f.feed.ToggleReaction(ctx, "missing", models.ReactionLike)
		assert.Error(t, err)
	})
}

func TestFeedService_Comments(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	post, err := f.feed.CreatePost(ctx, CreatePostInput{Content: "Discuss"})
	require.NoError(t, err)

	p, err := f.feed.AddComment(ctx, AddCommentInput{PostID: post.ID, Content: "Amen!"})
	require.NoError(t, err)
	p, err = f.feed.AddComment(ctx, AddCommentInput{PostID: post.ID, Content: "Praying for you", IsAdmin: true})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Comments)
	require.Len(t, p.CommentsList, 2)
	assert.Equal(t, p.Comments, len(p.CommentsList))
	assert.True(t, p.CommentsList[1].IsAdmin)

	_, err = f.feed.AddComment(ctx, AddCommentInput{PostID: post.ID, Content: "  "})
	assert.Error(t, err)
}

func TestFeedService_Share(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	post, err := f.feed.CreatePost(ctx, CreatePostInput{Content: "Share me"})
	require.NoError(t, err)

	p, link, err := f.feed.Share(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Shares)
	assert.Equal(t, "/post/"+post.ID, link)

	// No ledger for shares: repeats keep counting.
	p, _, err = f.feed.Share(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Shares)
}

func TestFeedService_DeletePost(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	post, err := f.feed.CreatePost(ctx, CreatePostInput{Content: "Doomed"})
	require.NoError(t, err)

	assert.Error(t, f.feed.DeletePost(ctx, post.ID, false), "unconfirmed delete must not remove")

	posts, _, err := f.feed.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	require.NoError(t, f.feed.DeletePost(ctx, post.ID, true))

	posts, _, err = f.feed.ListPosts(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	assert.Error(t, f.feed.DeletePost(ctx, post.ID, true))
}

func TestFeedService_EnsureSeeded(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds once and sets the flag", func(t *testing.T) {
		f := newFeedFixture(t)
		f.gateway.seed = ai.SeedContent{
			Posts:   []ai.SeedPost{{Author: "Sarah", Content: "Welcome!", Likes: 3}},
			Prayers: []ai.SeedPrayer{{Author: "David", Content: "Pray for my mother", PrayingCount: 1}},
		}

		require.NoError(t, f.feed.EnsureSeeded(ctx))

		posts, _, err := f.feed.ListPosts(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "Sarah", posts[0].Author)
		assert.Equal(t, 3, posts[0].Likes)

		prayers, _, err := f.prayers.ListPrayers(ctx)
		require.NoError(t, err)
		require.Len(t, prayers, 1)

		// A second call does not hit the gateway again.
		require.NoError(t, f.feed.EnsureSeeded(ctx))
		assert.Equal(t, 1, f.gateway.seedCalls)
	})

	t.Run("gateway failure leaves the flag unset", func(t *testing.T) {
		f := newFeedFixture(t)
		f.gateway.seedErr = errors.New("model offline")

		assert.Error(t, f.feed.EnsureSeeded(ctx))

		seeded, err := f.posts.HasSeeded(ctx)
		require.NoError(t, err)
		assert.False(t, seeded, "failed seeding must stay retryable")
	})

	t.Run("never reseeds after deliberate emptying", func(t *testing.T) {
		f := newFeedFixture(t)
		f.gateway.seed = ai.SeedContent{Posts: []ai.SeedPost{{Author: "A", Content: "x"}}}

		require.NoError(t, f.feed.EnsureSeeded(ctx))
		posts, _, err := f.feed.ListPosts(ctx)
		require.NoError(t, err)
		require.NoError(t, f.feed.DeletePost(ctx, posts[0].ID, true))

		require.NoError(t, f.feed.EnsureSeeded(ctx))

		posts, _, err = f.feed.ListPosts(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts, "emptied community must stay empty")
		assert.Equal(t, 1, f.gateway.seedCalls)
	})
}

func TestPrayerService_Pray(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	prayer, err := f.prayers.CreatePrayer(ctx, CreatePrayerInput{Content: "For healing"})
	require.NoError(t, err)
	assert.Equal(t, models.AuthorMember, prayer.Author)

	p, err := f.prayers.Pray(ctx, prayer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.PrayingCount)

	// Idempotent: a second press is a no-op.
	p, err = f.prayers.Pray(ctx, prayer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, p.PrayingCount)

	_, prayed, err := f.prayers.ListPrayers(ctx)
	require.NoError(t, err)
	assert.True(t, prayed[prayer.ID])

	_, err = f.prayers.Pray(ctx, "missing")
	assert.Error(t, err)
}

func TestPrayerService_Delete(t *testing.T) {
	f := newFeedFixture(t)
	ctx := context.Background()

	prayer, err := f.prayers.CreatePrayer(ctx, CreatePrayerInput{Content: "Short-lived"})
	require.NoError(t, err)

	assert.Error(t, f.prayers.DeletePrayer(ctx, prayer.ID, false))
	require.NoError(t, f.prayers.DeletePrayer(ctx, prayer.ID, true))

	prayers, _, err := f.prayers.ListPrayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, prayers)
}
