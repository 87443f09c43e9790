package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSONObject is returned when a model reply holds no JSON object
var ErrNoJSONObject = errors.New("no JSON object in response")

// DecodeJSONObject unmarshals reply into out. Models often wrap the object in
// prose or code fences, so on failure the outermost {...} span is tried.
func DecodeJSONObject(reply string, out any) error {
	if err := json.Unmarshal([]byte(reply), out); err == nil {
		return nil
	}

	start := strings.IndexByte(reply, '{')
	end := strings.LastIndexByte(reply, '}')
	if start < 0 || end <= start {
		return ErrNoJSONObject
	}

	if err := json.Unmarshal([]byte(reply[start:end+1]), out); err != nil {
		return fmt.Errorf("failed to parse model response as JSON: %w", err)
	}
	return nil
}
