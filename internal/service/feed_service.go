// Package service holds the business rules between the HTTP handlers and the
// repositories.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"soulshub/internal/ai"
	"soulshub/internal/middleware"
	"soulshub/internal/models"
	"soulshub/internal/observability"
	"soulshub/internal/repository"
)

// newID returns a time-derived unique id. The uuid suffix keeps ids unique
// even when two writes land in the same millisecond.
func newID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// authorFor maps the session to a display name. Identity is never taken from
// client input.
func authorFor(isAdmin bool) string {
	if isAdmin {
		return models.AuthorAdmin
	}
	return models.AuthorMember
}

// FeedService defines business logic for the community feed.
type FeedService interface {
	ListPosts(ctx context.Context) ([]models.Post, models.ReactionLedger, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error)
	DeletePost(ctx context.Context, id string, confirm bool) error
	ToggleReaction(ctx context.Context, postID string, kind models.ReactionKind) (*models.Post, models.Reaction, error)
	AddComment(ctx context.Context, input AddCommentInput) (*models.Post, error)
	Share(ctx context.Context, postID string) (*models.Post, string, error)
	EnsureSeeded(ctx context.Context) error
}

type feedService struct {
	posts   repository.PostRepository
	prayers repository.PrayerRepository
	ledgers repository.LedgerRepository
	gateway ai.Gateway
}

// NewFeedService creates a new feed service.
func NewFeedService(posts repository.PostRepository, prayers repository.PrayerRepository, ledgers repository.LedgerRepository, gateway ai.Gateway) FeedService {
	return &feedService{posts: posts, prayers: prayers, ledgers: ledgers, gateway: gateway}
}

// CreatePostInput holds the data needed to create a post.
type CreatePostInput struct {
	Content string
	IsAdmin bool
}

// AddCommentInput holds the data needed to comment on a post.
type AddCommentInput struct {
	PostID  string
	Content string
	IsAdmin bool
}

// ListPosts returns the feed most recent first, along with the shared
// reaction ledger so the caller can render toggle state.
func (s *feedService) ListPosts(ctx context.Context) ([]models.Post, models.ReactionLedger, error) {
	posts, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, nil, models.NewInternalError(err)
	}
	reactions, err := s.ledgers.Reactions(ctx)
	if err != nil {
		return nil, nil, models.NewInternalError(err)
	}
	return posts, reactions, nil
}

func (s *feedService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	posts, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, models.NewNotFoundError("Post", id)
}

func (s *feedService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, models.NewValidationError("Post content cannot be empty")
	}

	posts, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	now := time.Now()
	post := models.Post{
		ID:           newID(),
		Author:       authorFor(input.IsAdmin),
		Avatar:       fmt.Sprintf("https://picsum.photos/seed/%d/100/100", now.UnixMilli()),
		Time:         "Just now",
		Content:      content,
		CommentsList: []models.Comment{},
		Timestamp:    now.UnixMilli(),
	}

	// Newest first.
	posts = append([]models.Post{post}, posts...)
	if err := s.posts.SavePosts(ctx, posts); err != nil {
		return nil, models.NewInternalError(err)
	}

	observability.FeedInteractions.WithLabelValues("post").Inc()
	return &post, nil
}

// DeletePost removes a post. The confirm flag mirrors the destructive-action
// confirmation the page requires; without it nothing is deleted.
func (s *feedService) DeletePost(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return models.NewValidationError("Deletion requires confirmation")
	}

	posts, err := s.posts.Posts(ctx)
	if err != nil {
		return models.NewInternalError(err)
	}

	kept := posts[:0]
	found := false
	for _, p := range posts {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return models.NewNotFoundError("Post", id)
	}

	return s.posts.SavePosts(ctx, kept)
}

// ToggleReaction flips one reaction for the shared browsing context. Counters
// move +1/-1 with the ledger and clamp at zero, so double-toggle is a no-op.
func (s *feedService) ToggleReaction(ctx context.Context, postID string, kind models.ReactionKind) (*models.Post, models.Reaction, error) {
	if !kind.Valid() {
		return nil, models.Reaction{}, models.NewValidationError("Unknown reaction kind")
	}

	posts, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, models.Reaction{}, models.NewInternalError(err)
	}
	reactions, err := s.ledgers.Reactions(ctx)
	if err != nil {
		return nil, models.Reaction{}, models.NewInternalError(err)
	}

	idx := -1
	for i := range posts {
		if posts[i].ID == postID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, models.Reaction{}, models.NewNotFoundError("Post", postID)
	}

	state := reactions[postID]
	switch kind {
	case models.ReactionLike:
		if state.Liked {
			posts[idx].Likes = max(0, posts[idx].Likes-1)
		} else {
			posts[idx].Likes++
		}
		state.Liked = !state.Liked
	case models.ReactionLove:
		if state.Loved {
			posts[idx].Loves = max(0, posts[idx].Loves-1)
		} else {
			posts[idx].Loves++
		}
		state.Loved = !state.Loved
	}
	reactions[postID] = state

	if err := s.posts.SavePosts(ctx, posts); err != nil {
		return nil, models.Reaction{}, models.NewInternalError(err)
	}
	if err := s.ledgers.SaveReactions(ctx, reactions); err != nil {
		return nil, models.Reaction{}, models.NewInternalError(err)
	}

	observability.FeedInteractions.WithLabelValues(string(kind)).Inc()
	return &posts[idx], state, nil
}

func (s *feedService) AddComment(ctx context.Context, input AddCommentInput) (*models.Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, models.NewValidationError("Comment cannot be empty")
	}

	posts, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	for i := range posts {
		if posts[i].ID != input.PostID {
			continue
		}
		posts[i].AddComment(models.Comment{
			ID:      newID(),
			Author:  authorFor(input.IsAdmin),
			Content: content,
			Time:    "Just now",
			IsAdmin: input.IsAdmin,
		})
		if err := s.posts.SavePosts(ctx, posts); err != nil {
			return nil, models.NewInternalError(err)
		}
		observability.FeedInteractions.WithLabelValues("comment").Inc()
		return &posts[i], nil
	}

	return nil, models.NewNotFoundError("Post", input.PostID)
}

// Share increments the share counter unconditionally and returns the
// canonical permalink for the caller to copy. Shares have no ledger and no
// upper bound.
func (s *feedService) Share(ctx context.Context, postID string) (*models.Post, string, error) {
	posts, err := s.posts.Posts(ctx)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	for i := range posts {
		if posts[i].ID != postID {
			continue
		}
		posts[i].Shares++
		if err := s.posts.SavePosts(ctx, posts); err != nil {
			return nil, "", models.NewInternalError(err)
		}
		observability.FeedInteractions.WithLabelValues("share").Inc()
		return &posts[i], "/post/" + postID, nil
	}

	return nil, "", models.NewNotFoundError("Post", postID)
}

// EnsureSeeded populates an empty community exactly once. A gateway failure
// leaves the flag unset so a later visit retries; once the flag is set the
// community is never reseeded, even if every post is deleted.
func (s *feedService) EnsureSeeded(ctx context.Context) error {
	seeded, err := s.posts.HasSeeded(ctx)
	if err != nil {
		return models.NewInternalError(err)
	}
	if seeded {
		return nil
	}

	posts, err := s.posts.Posts(ctx)
	if err != nil {
		return models.NewInternalError(err)
	}
	if len(posts) > 0 {
		return nil
	}

	content, err := s.gateway.SeedContent(ctx)
	if err != nil {
		observability.SeedRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("seed community: %w", err)
	}
	if len(content.Posts) == 0 && len(content.Prayers) == 0 {
		observability.SeedRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("seed community: gateway returned no content")
	}

	now := time.Now().UnixMilli()
	seededPosts := make([]models.Post, 0, len(content.Posts))
	for i, p := range content.Posts {
		seededPosts = append(seededPosts, models.Post{
			ID:           fmt.Sprintf("seed-post-%d", i),
			Author:       p.Author,
			Avatar:       fmt.Sprintf("https://picsum.photos/seed/post%d/100/100", i),
			Time:         "Earlier today",
			Content:      p.Content,
			Likes:        p.Likes,
			CommentsList: []models.Comment{},
			Timestamp:    now - int64(i)*3600000,
		})
	}

	seededPrayers := make([]models.PrayerRequest, 0, len(content.Prayers))
	for i, p := range content.Prayers {
		seededPrayers = append(seededPrayers, models.PrayerRequest{
			ID:           fmt.Sprintf("seed-prayer-%d", i),
			Author:       p.Author,
			Content:      p.Content,
			PrayingCount: p.PrayingCount,
			Time:         "Today",
			Timestamp:    now - int64(i)*7200000,
		})
	}

	if err := s.posts.SavePosts(ctx, seededPosts); err != nil {
		return models.NewInternalError(err)
	}
	if err := s.prayers.SavePrayers(ctx, seededPrayers); err != nil {
		return models.NewInternalError(err)
	}
	if err := s.posts.MarkSeeded(ctx); err != nil {
		return models.NewInternalError(err)
	}

	middleware.Logger.InfoContext(ctx, "community seeded",
		"posts", len(seededPosts), "prayers", len(seededPrayers))
	observability.SeedRuns.WithLabelValues("ok").Inc()
	return nil
}
