package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"
)

// Config holds application configuration
type Config struct {
	Server     ServerConfig
	Upload     UploadConfig
	FFmpeg     FFmpegConfig
	Summary    SummaryConfig
	Gemini     GeminiConfig
	Groq       GroqConfig
	AssemblyAI AssemblyAIConfig
	Logging    LoggingConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"5000"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	BodyLimit       string        `envconfig:"BODY_LIMIT" default:"50M"`
}

// UploadConfig holds upload validation and storage settings
type UploadConfig struct {
	Dir               string   `envconfig:"UPLOAD_DIR" default:"uploads" validate:"required"`
	MaxSizeMB         int64    `envconfig:"MAX_UPLOAD_MB" default:"25" validate:"gt=0"`
	AllowedExtensions []string `envconfig:"ALLOWED_EXTENSIONS" default:"mp3,wav,m4a,flac" validate:"min=1,dive,required"`
}

// FFmpegConfig holds transcoder settings
type FFmpegConfig struct {
	// Path is an absolute path to the binary; empty means resolve "ffmpeg" from PATH
	Path    string        `envconfig:"FFMPEG_PATH"`
	Timeout time.Duration `envconfig:"FFMPEG_TIMEOUT" default:"30s" validate:"gt=0"`
}

// SummaryConfig selects the generative backend
type SummaryConfig struct {
	Provider string `envconfig:"SUMMARY_PROVIDER" default:"gemini" validate:"oneof=gemini groq"`
}

// GeminiConfig holds Gemini configuration
type GeminiConfig struct {
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	Model   string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`
}

// GroqConfig holds Groq configuration
type GroqConfig struct {
	APIKey  string `envconfig:"GROQ_API_KEY"`
	BaseURL string `envconfig:"GROQ_BASE_URL" default:"https://api.groq.com/openai/v1"`
	Model   string `envconfig:"GROQ_MODEL" default:"llama-3.1-70b-versatile"`
}

// AssemblyAIConfig holds speech-to-text configuration
type AssemblyAIConfig struct {
	APIKey  string `envconfig:"ASSEMBLYAI_API_KEY"`
	BaseURL string `envconfig:"ASSEMBLYAI_BASE_URL"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	JSON  bool   `envconfig:"LOG_JSON" default:"true"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	cfg.Upload.AllowedExtensions = normalizeExtensions(cfg.Upload.AllowedExtensions)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := pkgvalidator.New().Validate(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch c.Summary.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when SUMMARY_PROVIDER=gemini")
		}
	case ProviderGroq:
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required when SUMMARY_PROVIDER=groq")
		}
	}

	if c.AssemblyAI.APIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
	}

	return nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// MaxUploadBytes returns the per-file upload cap in bytes
func (u UploadConfig) MaxUploadBytes() int64 {
	return u.MaxSizeMB * 1024 * 1024
}

// GenerativeBackendConfigured reports whether the selected provider has credentials
func (c *Config) GenerativeBackendConfigured() bool {
	if c.Summary.Provider == ProviderGroq {
		return c.Groq.APIKey != ""
	}
	return c.Gemini.APIKey != ""
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}
