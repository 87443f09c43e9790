package core

import (
	"strings"
)

// Vectorizer converts raw text into count vectors aligned to a Vocabulary.
// It holds no mutable state.
type Vectorizer struct {
	vocabulary *Vocabulary
}

// NewVectorizer creates a vectorizer over an immutable vocabulary
func NewVectorizer(vocabulary *Vocabulary) *Vectorizer {
	return &Vectorizer{vocabulary: vocabulary}
}

// Vocabulary returns the vocabulary the vectors are aligned to
func (v *Vectorizer) Vocabulary() *Vocabulary {
	return v.vocabulary
}

// Vectorize splits text on whitespace and counts each token literally.
// Tokens not in the vocabulary are counted in the OOV position.
func (v *Vectorizer) Vectorize(text string) FeatureVector {
	vec := make(FeatureVector, v.vocabulary.Size())
	oov := v.vocabulary.OOVIndex()

	for _, token := range strings.Fields(text) {
		if i, ok := v.vocabulary.Index(token); ok && i != oov {
			vec[i]++
			continue
		}
		vec[oov]++
	}

	return vec
}
