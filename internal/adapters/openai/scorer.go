package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikey/spam-detector/internal/adapters/prompt"
	"github.com/mikey/spam-detector/internal/core"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Scorer is an implementation of the Scorer interface using OpenAI
type Scorer struct {
	client      *openai.Client
	modelName   string
	maxTokens   int
	temperature float32
	topP        float32
	renderer    *prompt.Renderer
	logger      *zap.Logger
}

// NewScorer creates a new OpenAI scorer
func NewScorer(
	client *openai.Client,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	renderer *prompt.Renderer,
	logger *zap.Logger,
) *Scorer {
	return &Scorer{
		client:      client,
		modelName:   modelName,
		maxTokens:   maxTokens,
		temperature: temperature,
		topP:        topP,
		renderer:    renderer,
		logger:      logger,
	}
}

// Score asks the model for the spam probability of vector
func (s *Scorer) Score(ctx context.Context, vector core.FeatureVector) (float64, error) {
	text, err := s.renderer.Render(vector)
	if err != nil {
		return 0, err
	}

	req := openai.ChatCompletionRequest{
		Model: s.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: prompt.SystemMessage,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
		TopP:        s.topP,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("failed to create chat completion with OpenAI: %w", err)
	}
	if len(resp.Choices) == 0 {
		return 0, errors.New("empty response from OpenAI")
	}

	score, err := prompt.ParseScore(resp.Choices[0].Message.Content)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("OpenAI scored vector",
		zap.String("model", s.modelName),
		zap.String("completion_id", resp.ID),
		zap.Float64("score", score))

	return score, nil
}

// ConcurrencySafe reports that the HTTP client may be shared
func (s *Scorer) ConcurrencySafe() bool {
	return true
}
