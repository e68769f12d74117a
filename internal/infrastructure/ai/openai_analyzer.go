package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/franq/backend/internal/domain/pipeline"
	"github.com/franq/backend/internal/infrastructure/config"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = "You are a franchise development advisor. Given a candidate profile, " +
	"write a short assessment (3 to 5 sentences) of their fit as a franchisee: " +
	"investment capacity relative to a typical unit, location potential, and " +
	"current progress in the qualification funnel. Be direct and factual."

// OpenAIAnalyzer generates candidate assessments through the OpenAI chat
// completion API. It implements pipeline.CandidateAnalyzer.
type OpenAIAnalyzer struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIAnalyzer creates an analyzer from the OpenAI section of the config
func NewOpenAIAnalyzer(cfg config.OpenAIConfig, logger *zap.Logger) *OpenAIAnalyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAIAnalyzer{
		client: openai.NewClient(cfg.APIKey),
		model:  cfg.Model,
		logger: logger,
	}
}

// Analyze builds a prompt from the lead profile and returns the model's
// free-form assessment text.
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, lead *pipeline.Lead) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(lead)},
		},
		Temperature: 0.4,
		MaxTokens:   400,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	a.logger.Debug("candidate analysis generated",
		zap.String("lead_id", lead.ID.String()),
		zap.Int("tokens_used", resp.Usage.TotalTokens),
	)
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(lead *pipeline.Lead) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Candidate: %s\n", lead.Name)
	fmt.Fprintf(&b, "City: %s\n", lead.City)
	fmt.Fprintf(&b, "Declared investment capital: R$ %s\n", lead.InvestmentCapital.StringFixed(2))
	fmt.Fprintf(&b, "Funnel stage: %s\n", lead.Status)
	fmt.Fprintf(&b, "Document checklist completion: %.0f%%\n", lead.ChecklistCompletion())
	return b.String()
}
