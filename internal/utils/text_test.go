package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTruncateText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	tests := []struct {
		name    string
		text    string
		maxSize int
		want    string
	}{
		{name: "short text untouched", text: "hello", maxSize: 10, want: "hello"},
		{name: "exact size untouched", text: "hello", maxSize: 5, want: "hello"},
		{name: "disabled", text: "hello", maxSize: 0, want: "hello"},
		{name: "cut", text: "hello world", maxSize: 5, want: "hello" + TruncationMarker},
		{name: "does not split rune", text: "héllo", maxSize: 2, want: "h" + TruncationMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tp.TruncateText(tt.text, tt.maxSize))
		})
	}
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	require.Equal(t, "valid", tp.SanitizeUTF8("valid"))
	require.Equal(t, "ab", tp.SanitizeUTF8("a\xffb"))
	require.Equal(t, "ab"+TruncationMarker, tp.ProcessText("a\xffbcdef", 3))
}
