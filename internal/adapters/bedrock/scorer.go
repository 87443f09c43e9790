package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/mikey/spam-detector/internal/adapters/prompt"
	"github.com/mikey/spam-detector/internal/core"
	"go.uber.org/zap"
)

// InvokeModelAPI is the subset of the Bedrock runtime client used for scoring
type InvokeModelAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Scorer is an implementation of the Scorer interface using Amazon Bedrock
type Scorer struct {
	client      InvokeModelAPI
	modelID     string
	maxTokens   int
	temperature float32
	topP        float32
	renderer    *prompt.Renderer
	logger      *zap.Logger
}

// NewScorer creates a new Bedrock scorer
func NewScorer(
	client InvokeModelAPI,
	modelID string,
	maxTokens int,
	temperature float32,
	topP float32,
	renderer *prompt.Renderer,
	logger *zap.Logger,
) *Scorer {
	return &Scorer{
		client:      client,
		modelID:     modelID,
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

	payload, err := s.buildPayload(text)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := s.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(s.modelID),
		Body:        payload,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to invoke Bedrock model: %w", err)
	}

	responseText, err := s.extractText(resp.Body)
	if err != nil {
		return 0, err
	}

	score, err := prompt.ParseScore(responseText)
	if err != nil {
		return 0, err
	}

	s.logger.Debug("Bedrock scored vector",
		zap.String("model", s.modelID),
		zap.Float64("score", score))

	return score, nil
}

// ConcurrencySafe reports that the SDK client may be shared
func (s *Scorer) ConcurrencySafe() bool {
	return true
}

func (s *Scorer) buildPayload(text string) ([]byte, error) {
	switch {
	case s.isAnthropicModel():
		return json.Marshal(map[string]any{
			"anthropic_version": "bedrock-2023-05-31",
			"system":            prompt.SystemMessage,
			"max_tokens":        s.maxTokens,
			"temperature":       s.temperature,
			"top_p":             s.topP,
			"messages": []map[string]any{
				{"role": "user", "content": text},
			},
		})
	case s.isAmazonTitanModel():
		return json.Marshal(map[string]any{
			"inputText": text,
			"textGenerationConfig": map[string]any{
				"maxTokenCount": s.maxTokens,
				"temperature":   s.temperature,
				"topP":          s.topP,
			},
		})
	default:
		return json.Marshal(map[string]any{
			"prompt":      text,
			"max_tokens":  s.maxTokens,
			"temperature": s.temperature,
			"top_p":       s.topP,
		})
	}
}

func (s *Scorer) extractText(body []byte) (string, error) {
	switch {
	case s.isAnthropicModel():
		var claudeResp struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		}
		if err := json.Unmarshal(body, &claudeResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal Claude response: %w", err)
		}
		var b strings.Builder
		for _, part := range claudeResp.Content {
			if part.Type == "text" {
				b.WriteString(part.Text)
			}
		}
		if b.Len() == 0 {
			return "", errors.New("empty response from Claude model")
		}
		return b.String(), nil
	case s.isAmazonTitanModel():
		var titanResp struct {
			Results []struct {
				OutputText string `json:"outputText"`
			} `json:"results"`
		}
		if err := json.Unmarshal(body, &titanResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal Titan response: %w", err)
		}
		if len(titanResp.Results) == 0 {
			return "", errors.New("empty response from Titan model")
		}
		return titanResp.Results[0].OutputText, nil
	default:
		var genericResp struct {
			Output   string `json:"output"`
			Text     string `json:"text"`
			Response string `json:"response"`
		}
		if err := json.Unmarshal(body, &genericResp); err != nil {
			return string(body), nil
		}
		switch {
		case genericResp.Output != "":
			return genericResp.Output, nil
		case genericResp.Text != "":
			return genericResp.Text, nil
		case genericResp.Response != "":
			return genericResp.Response, nil
		}
		return string(body), nil
	}
}

// isAnthropicModel checks if the model is an Anthropic Claude model
func (s *Scorer) isAnthropicModel() bool {
	return strings.Contains(s.modelID, "anthropic.claude")
}

// isAmazonTitanModel checks if the model is an Amazon Titan model
func (s *Scorer) isAmazonTitanModel() bool {
	return strings.Contains(s.modelID, "amazon.titan")
}
