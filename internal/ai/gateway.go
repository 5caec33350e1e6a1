package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"soulshub/internal/middleware"
	"soulshub/internal/models"
	"soulshub/internal/observability"
)

// SeedPost is one generated post used to seed an empty community feed.
type SeedPost struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	Likes   int    `json:"likes"`
}

// SeedPrayer is one generated prayer request used for seeding.
type SeedPrayer struct {
	Author       string `json:"author"`
	Content      string `json:"content"`
	PrayingCount int    `json:"prayingCount"`
}

// SeedContent is the one-time starter content for an empty community.
type SeedContent struct {
	Posts   []SeedPost   `json:"posts"`
	Prayers []SeedPrayer `json:"prayers"`
}

// Gateway is the only doorway to generated content. Implementations decide
// the fallback behavior: verses always succeed, questions always answer with
// at least an apology, plans and seeding surface their failures.
type Gateway interface {
	DailyVerse(ctx context.Context, theme string) (models.DailyVerse, error)
	StudyPlan(ctx context.Context, topic string) (models.StudyPlan, error)
	Ask(ctx context.Context, question, background string) (string, error)
	SeedContent(ctx context.Context) (SeedContent, error)
}

type openAIGateway struct {
	client *Client
	model  string
}

// NewGateway creates a Gateway backed by an OpenAI-compatible client.
func NewGateway(client *Client, model string) Gateway {
	return &openAIGateway{client: client, model: model}
}

// DailyVerse asks for a verse with reflection and prayer. Failures and
// malformed responses fall back to a built-in verse, never an error.
func (g *openAIGateway) DailyVerse(ctx context.Context, theme string) (models.DailyVerse, error) {
	start := time.Now()
	ctx, span := observability.TraceGatewayCall(ctx, "daily_verse")
	defer span.End()

	prompt := `Provide a meaningful daily Bible verse and a short spiritual reflection for today.`
	if theme != "" {
		prompt = fmt.Sprintf("Provide a comforting Bible verse and a short reflection about %q.", theme)
	}

	resp, err := g.client.CreateChatCompletion(ctx, ChatCompletionRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: `Respond with a JSON object with string fields "reference", "text", "reflection", and "prayer".`},
			{Role: RoleUser, Content: prompt},
		},
		ResponseFormat: &ChatCompletionResponseFormat{Type: ResponseFormatTypeJSONObject},
	})
	if err != nil {
		middleware.Logger.WarnContext(ctx, "verse generation failed, using fallback", "error", err)
		observability.RecordSpanError(span, err)
		observability.ObserveGatewayCall("daily_verse", "fallback", start)
		return FallbackVerse(), nil
	}

	content, err := firstMessage(resp)
	if err != nil {
		observability.ObserveGatewayCall("daily_verse", "fallback", start)
		return FallbackVerse(), nil
	}

	var verse models.DailyVerse
	if err := json.Unmarshal([]byte(content), &verse); err != nil || !verse.Valid() {
		middleware.Logger.WarnContext(ctx, "verse response malformed, using fallback", "error", err)
		observability.ObserveGatewayCall("daily_verse", "fallback", start)
		return FallbackVerse(), nil
	}

	observability.ObserveGatewayCall("daily_verse", "ok", start)
	return verse, nil
}

// StudyPlan generates a seven-day plan. Unlike verses there is no canned
// substitute worth showing, so failures surface to the caller.
func (g *openAIGateway) StudyPlan(ctx context.Context, topic string) (models.StudyPlan, error) {
	start := time.Now()
	ctx, span := observability.TraceGatewayCall(ctx, "study_plan")
	defer span.End()

	prompt := fmt.Sprintf(
		"Create a comprehensive 7-day Bible study plan on the topic of %q. Each day should include a specific scripture and a practical action step.",
		topic)

	resp, err := g.client.CreateChatCompletion(ctx, ChatCompletionRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: `Respond with a JSON object: {"topic": string, "overview": string, "days": [{"day": number, "title": string, "scripture": string, "focus": string, "actionStep": string}]} with exactly 7 days.`},
			{Role: RoleUser, Content: prompt},
		},
		ResponseFormat: &ChatCompletionResponseFormat{Type: ResponseFormatTypeJSONObject},
	})
	if err != nil {
		observability.RecordSpanError(span, err)
		observability.ObserveGatewayCall("study_plan", "error", start)
		return models.StudyPlan{}, fmt.Errorf("generate study plan: %w", err)
	}

	content, err := firstMessage(resp)
	if err != nil {
		observability.ObserveGatewayCall("study_plan", "error", start)
		return models.StudyPlan{}, err
	}

	var plan models.StudyPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		observability.ObserveGatewayCall("study_plan", "error", start)
		return models.StudyPlan{}, fmt.Errorf("decode study plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		observability.ObserveGatewayCall("study_plan", "error", start)
		return models.StudyPlan{}, fmt.Errorf("study plan rejected: %w", err)
	}

	observability.ObserveGatewayCall("study_plan", "ok", start)
	return plan, nil
}

// Ask answers a question from a biblical perspective. Failures return the
// apologetic fallback message, never an error.
func (g *openAIGateway) Ask(ctx context.Context, question, background string) (string, error) {
	start := time.Now()
	ctx, span := observability.TraceGatewayCall(ctx, "ask")
	defer span.End()

	prompt := fmt.Sprintf("Please answer this question from a biblical perspective: %q.", question)
	if background != "" {
		prompt += fmt.Sprintf(" Consider the following context: %s", background)
	}

	resp, err := g.client.CreateChatCompletion(ctx, ChatCompletionRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: "You are a helpful and wise Bible study assistant."},
			{Role: RoleUser, Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		middleware.Logger.WarnContext(ctx, "ask failed, using fallback message", "error", err)
		observability.RecordSpanError(span, err)
		observability.ObserveGatewayCall("ask", "fallback", start)
		return AskFallbackMessage, nil
	}

	content, err := firstMessage(resp)
	if err != nil {
		observability.ObserveGatewayCall("ask", "fallback", start)
		return AskFallbackMessage, nil
	}

	observability.ObserveGatewayCall("ask", "ok", start)
	return content, nil
}

// SeedContent generates starter posts and prayer requests for an empty
// community. Errors surface so the caller can retry on a later visit.
func (g *openAIGateway) SeedContent(ctx context.Context) (SeedContent, error) {
	start := time.Now()
	ctx, span := observability.TraceGatewayCall(ctx, "seed_content")
	defer span.End()

	resp, err := g.client.CreateChatCompletion(ctx, ChatCompletionRequest{
		Model: g.model,
		Messages: []ChatMessage{
			{Role: RoleSystem, Content: `Respond with a JSON object: {"posts": [{"author": string, "content": string, "likes": number}], "prayers": [{"author": string, "content": string, "prayingCount": number}]}.`},
			{Role: RoleUser, Content: "Generate 3 warm, encouraging faith community feed posts and 2 prayer requests, each from a different fictional member with a realistic first name."},
		},
		ResponseFormat: &ChatCompletionResponseFormat{Type: ResponseFormatTypeJSONObject},
	})
	if err != nil {
		observability.RecordSpanError(span, err)
		observability.ObserveGatewayCall("seed_content", "error", start)
		return SeedContent{}, fmt.Errorf("generate seed content: %w", err)
	}

	content, err := firstMessage(resp)
	if err != nil {
		observability.ObserveGatewayCall("seed_content", "error", start)
		return SeedContent{}, err
	}

	var seed SeedContent
	if err := json.Unmarshal([]byte(content), &seed); err != nil {
		observability.ObserveGatewayCall("seed_content", "error", start)
		return SeedContent{}, fmt.Errorf("decode seed content: %w", err)
	}
	if len(seed.Posts) == 0 {
		observability.ObserveGatewayCall("seed_content", "error", start)
		return SeedContent{}, fmt.Errorf("seed content has no posts")
	}

	observability.ObserveGatewayCall("seed_content", "ok", start)
	return seed, nil
}
