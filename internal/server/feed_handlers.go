package server

import (
	"github.com/gofiber/fiber/v2"

	"soulshub/internal/middleware"
	"soulshub/internal/models"
	"soulshub/internal/service"
)

// GetPosts returns the community feed, most recent first, plus the shared
// reaction ledger. An empty, never-seeded community is seeded here on first
// read; a seeding failure only logs, the (empty) feed still renders.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := s.feedService.EnsureSeeded(ctx); err != nil {
		middleware.Logger.WarnContext(ctx, "community seeding failed", "error", err)
	}

	posts, reactions, err := s.feedService.ListPosts(ctx)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts":     posts,
		"reactions": reactions,
	})
}

// GetPost returns a single post by its permalink id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	post, err := s.feedService.GetPost(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(post)
}

type createPostRequest struct {
	Content string `json:"content"`
}

// CreatePost adds a post to the top of the feed. The author name follows the
// session, not the request body.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.feedService.CreatePost(c.UserContext(), service.CreatePostInput{
		Content: req.Content,
		IsAdmin: s.optionalAdmin(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// ToggleReaction flips a like or love for the shared browsing context.
func (s *Server) ToggleReaction(c *fiber.Ctx) error {
	post, state, err := s.feedService.ToggleReaction(c.UserContext(),
		c.Params("id"), models.ReactionKind(c.Params("kind")))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":     post,
		"reaction": state,
	})
}

type addCommentRequest struct {
	Content string `json:"content"`
}

// AddComment appends a comment to a post.
func (s *Server) AddComment(c *fiber.Ctx) error {
	var req addCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.feedService.AddComment(c.UserContext(), service.AddCommentInput{
		PostID:  c.Params("id"),
		Content: req.Content,
		IsAdmin: s.optionalAdmin(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// SharePost bumps the share counter and returns the permalink for the client
// to place on the clipboard.
func (s *Server) SharePost(c *fiber.Ctx) error {
	post, permalink, err := s.feedService.Share(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":      post,
		"permalink": permalink,
	})
}

// DeletePost removes a post. Admin only, and the confirm flag is required.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	if err := s.feedService.DeletePost(c.UserContext(), c.Params("id"), confirmQuery(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
