// Package dataset extracts the vocabulary token list from the training
// dataset. Only the header row is read: the first column is the row
// identifier and the last column is the label, every column in between is a
// token.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrTooFewColumns is returned when the header has no token columns
var ErrTooFewColumns = errors.New("dataset header needs an identifier, at least one token and a label column")

// LoadTokens reads the token list from the CSV file at path
func LoadTokens(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	tokens, err := ReadTokens(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return tokens, nil
}

// ReadTokens reads the header row from r and returns columns [1, n-1)
func ReadTokens(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty dataset: %w", ErrTooFewColumns)
		}
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	if len(header) < 3 {
		return nil, fmt.Errorf("%w: got %d columns", ErrTooFewColumns, len(header))
	}

	tokens := make([]string, len(header)-2)
	copy(tokens, header[1:len(header)-1])
	return tokens, nil
}
