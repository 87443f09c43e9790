package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/mikey/spam-detector/internal/adapters/prompt"
	"github.com/mikey/spam-detector/internal/core"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// ContentGenerator is the part of genai.GenerativeModel used for scoring
type ContentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Scorer is an implementation of the Scorer interface using Google Gemini
type Scorer struct {
	client    *genai.Client
	model     ContentGenerator
	modelName string
	renderer  *prompt.Renderer
	logger    *zap.Logger
}

// NewScorer dials Gemini and configures the generative model
func NewScorer(
	ctx context.Context,
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	renderer *prompt.Renderer,
	logger *zap.Logger,
) (*Scorer, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = genai.NewUserContent(genai.Text(prompt.SystemMessage))

	s := NewScorerWithModel(model, modelName, renderer, logger)
	s.client = client
	return s, nil
}

// NewScorerWithModel wraps an already configured generator
func NewScorerWithModel(model ContentGenerator, modelName string, renderer *prompt.Renderer, logger *zap.Logger) *Scorer {
	return &Scorer{
		model:     model,
		modelName: modelName,
		renderer:  renderer,
		logger:    logger,
	}
}

// Close closes the Gemini client
func (s *Scorer) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// Score asks the model for the spam probability of vector
func (s *Scorer) Score(ctx context.Context, vector core.FeatureVector) (float64, error) {
	text, err := s.renderer.Render(vector)
	if err != nil {
		return 0, err
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return 0, fmt.Errorf("failed to generate content with Gemini: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return 0, errors.New("empty response from Gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}

	score, err := prompt.ParseScore(b.String())
	if err != nil {
		return 0, err
	}

	s.logger.Debug("Gemini scored vector",
		zap.String("model", s.modelName),
		zap.Float64("score", score))

	return score, nil
}

// ConcurrencySafe reports that the client may be shared
func (s *Scorer) ConcurrencySafe() bool {
	return true
}
