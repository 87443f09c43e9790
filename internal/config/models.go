package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ServerConfig represents the configuration of the inbound frontend
type ServerConfig struct {
	Frontend        string        `validate:"oneof=grpc"`
	ListenAddress   string        `validate:"required"`
	MaxWorkers      int           `validate:"min=1"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// ScorerConfig selects the scoring backend
type ScorerConfig struct {
	Provider string `validate:"oneof=onnx openai bedrock gemini static"`
}

// ModelConfig locates the persisted model for the onnx provider
type ModelConfig struct {
	Path           string `validate:"required"`
	LibraryPath    string
	IntraOpThreads int `validate:"min=1"`
}

// VocabularyConfig locates the dataset whose header defines the vocabulary
type VocabularyConfig struct {
	DatasetPath string `validate:"required"`
}

// SpamConfig holds the decision threshold
type SpamConfig struct {
	Threshold float64 `validate:"gte=0,lte=1"`
}

// CacheConfig represents the score cache configuration
type CacheConfig struct {
	Enabled          bool
	Type             string        `validate:"oneof=memory sqlite mysql"`
	TTL              time.Duration `validate:"gt=0"`
	CleanupFrequency time.Duration `validate:"gt=0"`
	MaxEntries       int           `validate:"gt=0"`
	SQLitePath       string
	MySQLDSN         string
}

// LoggingConfig controls log output
type LoggingConfig struct {
	Level          string `validate:"oneof=debug info warn error"`
	Format         string `validate:"oneof=json console"`
	MaxTextPreview int    `validate:"min=0"`
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region        string
	ModelID       string
	MaxTokens     int
	Temperature   float32
	TopP          float32
	MaxPromptSize int
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey        string
	ModelName     string
	MaxTokens     int
	Temperature   float32
	TopP          float32
	MaxPromptSize int
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey        string
	ModelName     string
	MaxTokens     int
	Temperature   float32
	TopP          float32
	MaxPromptSize int
}

// GetServer returns the server configuration
func (c *Config) GetServer() (ServerConfig, error) {
	timeout, err := c.GetDuration("server.shutdown_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	return ServerConfig{
		Frontend:        c.GetString("server.frontend"),
		ListenAddress:   c.GetString("server.listen_address"),
		MaxWorkers:      c.GetInt("server.max_workers"),
		ShutdownTimeout: timeout,
	}, nil
}

// GetScorer returns the scorer selection
func (c *Config) GetScorer() ScorerConfig {
	return ScorerConfig{Provider: c.GetString("scorer.provider")}
}

// GetModel returns the onnx model configuration
func (c *Config) GetModel() ModelConfig {
	return ModelConfig{
		Path:           c.GetString("model.path"),
		LibraryPath:    c.GetString("model.onnx_library_path"),
		IntraOpThreads: c.GetInt("model.intra_op_threads"),
	}
}

// GetVocabulary returns the vocabulary source configuration
func (c *Config) GetVocabulary() VocabularyConfig {
	return VocabularyConfig{DatasetPath: c.GetString("vocabulary.dataset_path")}
}

// GetSpam returns the decision configuration
func (c *Config) GetSpam() SpamConfig {
	return SpamConfig{Threshold: c.GetFloat64("spam.threshold")}
}

// GetCache returns the score cache configuration
func (c *Config) GetCache() (CacheConfig, error) {
	ttl, err := c.GetDuration("cache.ttl")
	if err != nil {
		return CacheConfig{}, err
	}
	cleanup, err := c.GetDuration("cache.cleanup_frequency")
	if err != nil {
		return CacheConfig{}, err
	}
	return CacheConfig{
		Enabled:          c.GetBool("cache.enabled"),
		Type:             c.GetString("cache.type"),
		TTL:              ttl,
		CleanupFrequency: cleanup,
		MaxEntries:       c.GetInt("cache.max_entries"),
		SQLitePath:       c.GetString("cache.sqlite_path"),
		MySQLDSN:         c.GetString("cache.mysql_dsn"),
	}, nil
}

// GetLogging returns the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	return LoggingConfig{
		Level:          c.GetString("logging.level"),
		Format:         c.GetString("logging.format"),
		MaxTextPreview: c.GetInt("logging.max_text_preview"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:        c.GetString("bedrock.region"),
		ModelID:       c.GetString("bedrock.model_id"),
		MaxTokens:     c.GetInt("bedrock.max_tokens"),
		Temperature:   float32(c.GetFloat64("bedrock.temperature")),
		TopP:          float32(c.GetFloat64("bedrock.top_p")),
		MaxPromptSize: c.GetInt("bedrock.max_prompt_size"),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:        c.GetString("gemini.api_key"),
		ModelName:     c.GetString("gemini.model_name"),
		MaxTokens:     c.GetInt("gemini.max_tokens"),
		Temperature:   float32(c.GetFloat64("gemini.temperature")),
		TopP:          float32(c.GetFloat64("gemini.top_p")),
		MaxPromptSize: c.GetInt("gemini.max_prompt_size"),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:        c.GetString("openai.api_key"),
		ModelName:     c.GetString("openai.model_name"),
		MaxTokens:     c.GetInt("openai.max_tokens"),
		Temperature:   float32(c.GetFloat64("openai.temperature")),
		TopP:          float32(c.GetFloat64("openai.top_p")),
		MaxPromptSize: c.GetInt("openai.max_prompt_size"),
	}
}

// Validate checks every section that is read at startup
func (c *Config) Validate() error {
	validate := validator.New()

	server, err := c.GetServer()
	if err != nil {
		return err
	}
	cache, err := c.GetCache()
	if err != nil {
		return err
	}

	sections := map[string]any{
		"server":     server,
		"scorer":     c.GetScorer(),
		"vocabulary": c.GetVocabulary(),
		"spam":       c.GetSpam(),
		"cache":      cache,
		"logging":    c.GetLogging(),
	}
	if c.GetScorer().Provider == "onnx" {
		sections["model"] = c.GetModel()
	}

	for name, section := range sections {
		if err := validate.Struct(section); err != nil {
			return fmt.Errorf("invalid %s configuration: %w", name, err)
		}
	}
	return nil
}
