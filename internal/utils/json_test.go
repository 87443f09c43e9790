package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type scoreReply struct {
	Score float64 `json:"score"`
}

func TestDecodeJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  float64
	}{
		{name: "bare object", reply: `{"score": 0.42}`, want: 0.42},
		{name: "code fence", reply: "```json\n{\"score\": 0.9}\n```", want: 0.9},
		{name: "surrounding prose", reply: `Here you go: {"score": 0.1} hope it helps`, want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out scoreReply
			require.NoError(t, DecodeJSONObject(tt.reply, &out))
			require.Equal(t, tt.want, out.Score)
		})
	}
}

func TestDecodeJSONObject_Failures(t *testing.T) {
	var out scoreReply
	require.ErrorIs(t, DecodeJSONObject("no object here", &out), ErrNoJSONObject)
	require.Error(t, DecodeJSONObject(`{"score": "high"}`, &out))
}
