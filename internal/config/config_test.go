package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	req := require.New(t)
	cfg := NewFromViper(NewEmptyViper())

	server, err := cfg.GetServer()
	req.NoError(err)
	req.Equal("0.0.0.0:3060", server.ListenAddress)
	req.Equal(10, server.MaxWorkers)
	req.Equal(10*time.Second, server.ShutdownTimeout)

	req.Equal(0.8961, cfg.GetSpam().Threshold)
	req.Equal("onnx", cfg.GetScorer().Provider)
	req.Equal("emails.csv", cfg.GetVocabulary().DatasetPath)

	cache, err := cfg.GetCache()
	req.NoError(err)
	req.False(cache.Enabled)
	req.Equal("memory", cache.Type)
	req.Equal(24*time.Hour, cache.TTL)
	req.Equal(100000, cache.MaxEntries)

	req.NoError(cfg.Validate())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{name: "threshold above one", key: "spam.threshold", val: 1.5},
		{name: "negative threshold", key: "spam.threshold", val: -0.1},
		{name: "no workers", key: "server.max_workers", val: 0},
		{name: "unknown provider", key: "scorer.provider", val: "tensorflow"},
		{name: "unknown cache", key: "cache.type", val: "redis"},
		{name: "bad duration", key: "cache.ttl", val: "soon"},
		{name: "no cache entries", key: "cache.max_entries", val: 0},
		{name: "missing dataset", key: "vocabulary.dataset_path", val: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewEmptyViper()
			v.Set(tt.key, tt.val)
			require.Error(t, NewFromViper(v).Validate())
		})
	}
}

func TestNewFromFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  listen_address: 127.0.0.1:3060\n  max_workers: 4\nspam:\n  threshold: 0.5\n")
	req.NoError(os.WriteFile(path, content, 0o600))

	cfg, err := NewFromFile(path)
	req.NoError(err)

	server, err := cfg.GetServer()
	req.NoError(err)
	req.Equal("127.0.0.1:3060", server.ListenAddress)
	req.Equal(4, server.MaxWorkers)
	req.Equal(0.5, cfg.GetSpam().Threshold)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("SPAM_DETECTOR_SPAM_THRESHOLD", "0.42")
	v := NewEmptyViper()
	BindEnv(v)
	require.Equal(t, 0.42, NewFromViper(v).GetSpam().Threshold)
}
