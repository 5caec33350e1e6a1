package service

import (
	"context"
	"strings"

	"soulshub/internal/ai"
	"soulshub/internal/models"
)

// AssistantService serves the study planner and the question box. Plans are
// generated per request and never persisted.
type AssistantService interface {
	Plan(ctx context.Context, topic string) (models.StudyPlan, error)
	Ask(ctx context.Context, question, background string) (string, error)
}

type assistantService struct {
	gateway ai.Gateway
}

// NewAssistantService creates a new assistant service.
func NewAssistantService(gateway ai.Gateway) AssistantService {
	return &assistantService{gateway: gateway}
}

func (s *assistantService) Plan(ctx context.Context, topic string) (models.StudyPlan, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return models.StudyPlan{}, models.NewValidationError("Topic cannot be empty")
	}
	return s.gateway.StudyPlan(ctx, topic)
}

func (s *assistantService) Ask(ctx context.Context, question, background string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", models.NewValidationError("Question cannot be empty")
	}
	return s.gateway.Ask(ctx, question, background)
}
