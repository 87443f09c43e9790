// Package prompt renders feature vectors for the remote LLM scorers and
// parses their replies.
package prompt

import (
	"fmt"
	"math"
	"strings"

	"github.com/mikey/spam-detector/internal/core"
	"github.com/mikey/spam-detector/internal/utils"
)

// UnknownTokensLabel names the OOV bucket in rendered prompts
const UnknownTokensLabel = "<unknown tokens>"

// SystemMessage is sent as the system role where the provider supports one
const SystemMessage = "You are a spam detection system. Respond only with JSON."

const promptFormat = `You are a spam detection system. A message has been reduced to a bag of words:
each line below is a token followed by the number of times it occurs.

%s

Estimate the probability that the original message is spam.
Respond with a JSON object containing:
- score: number between 0 and 1 (higher means more likely to be spam)

Respond only with the JSON object and nothing else.`

// Renderer turns feature vectors into prompts
type Renderer struct {
	vocab         *core.Vocabulary
	textProcessor *utils.TextProcessor
	maxSize       int
}

// NewRenderer creates a renderer. Prompts whose token listing exceeds maxSize
// bytes are truncated; a non-positive maxSize disables truncation.
func NewRenderer(vocab *core.Vocabulary, textProcessor *utils.TextProcessor, maxSize int) *Renderer {
	return &Renderer{
		vocab:         vocab,
		textProcessor: textProcessor,
		maxSize:       maxSize,
	}
}

// Counts lists the non-zero entries of vector as "token: count" lines in
// vocabulary order, with the OOV bucket last.
func (r *Renderer) Counts(vector core.FeatureVector) (string, error) {
	if len(vector) != r.vocab.Size() {
		return "", fmt.Errorf("vector length %d does not match vocabulary size %d", len(vector), r.vocab.Size())
	}

	var b strings.Builder
	for i, count := range vector {
		if count == 0 {
			continue
		}
		label := r.vocab.Token(i)
		if i == r.vocab.OOVIndex() {
			label = UnknownTokensLabel
		}
		fmt.Fprintf(&b, "%s: %s\n", label, formatCount(count))
	}
	if b.Len() == 0 {
		return "(no tokens)", nil
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// Render builds the full prompt for vector
func (r *Renderer) Render(vector core.FeatureVector) (string, error) {
	counts, err := r.Counts(vector)
	if err != nil {
		return "", err
	}
	counts = r.textProcessor.ProcessText(counts, r.maxSize)
	return fmt.Sprintf(promptFormat, counts), nil
}

func formatCount(count float64) string {
	if count == math.Trunc(count) {
		return fmt.Sprintf("%d", int64(count))
	}
	return fmt.Sprintf("%g", count)
}

// Reply is the JSON object the models are asked to return
type Reply struct {
	Score *float64 `json:"score"`
}

// ParseScore extracts the score from a model reply
func ParseScore(reply string) (float64, error) {
	var parsed Reply
	if err := utils.DecodeJSONObject(reply, &parsed); err != nil {
		return 0, err
	}
	if parsed.Score == nil {
		return 0, fmt.Errorf("model response has no score field")
	}
	return *parsed.Score, nil
}
