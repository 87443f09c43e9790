package core

import (
	"fmt"

	"github.com/samber/lo"
)

// OOVToken is the sentinel appended after the known tokens
const OOVToken = "#OOV#"

// Vocabulary is an immutable ordered token list with a reverse index.
// It is safe for concurrent reads.
type Vocabulary struct {
	tokens []string
	index  map[string]int
}

// NewVocabulary builds a vocabulary from the dataset tokens and appends the
// OOV sentinel. Empty input and duplicate tokens are rejected.
func NewVocabulary(tokens []string) (*Vocabulary, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyVocabulary
	}

	all := make([]string, 0, len(tokens)+1)
	all = append(all, tokens...)
	all = append(all, OOVToken)

	if dups := lo.FindDuplicates(all); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateToken, dups)
	}

	index := make(map[string]int, len(all))
	for i, token := range all {
		index[token] = i
	}

	return &Vocabulary{tokens: all, index: index}, nil
}

// Size is the feature vector length, OOV included
func (v *Vocabulary) Size() int {
	return len(v.tokens)
}

// OOVIndex is the position of the OOV bucket
func (v *Vocabulary) OOVIndex() int {
	return len(v.tokens) - 1
}

// Index returns the position of a token
func (v *Vocabulary) Index(token string) (int, bool) {
	i, ok := v.index[token]
	return i, ok
}

// Token returns the token at position i
func (v *Vocabulary) Token(i int) string {
	return v.tokens[i]
}

// Tokens returns a copy of all tokens, OOV last
func (v *Vocabulary) Tokens() []string {
	out := make([]string, len(v.tokens))
	copy(out, v.tokens)
	return out
}
