package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// OpenAIConfig holds settings for the OpenAI text and speech clients.
type OpenAIConfig struct {
	APIKey   string
	GPTModel string
	TTSModel string
	Voice    string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables once at startup and passed
// explicitly to components; there is no global settings lookup.
type AppConfig struct {
	AppHost string
	Port    string

	// AdminAPIKey guards the /api/v1/admin routes.
	AdminAPIKey string

	// PromptFile is the path to the YAML file holding per-language system
	// prompts for the four generated text fields.
	PromptFile string

	// ProvisionTimeoutSec bounds the generation fan-out of a single word.
	ProvisionTimeoutSec int

	// PresetConcurrency bounds how many words are provisioned at once by
	// the preset loader.
	PresetConcurrency int

	LogLevel  string
	LogPretty bool

	OpenAI   OpenAIConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:             getEnv("APP_HOST", "localhost:8080"),
		Port:                getEnv("PORT", "8080"), // default only for non-sensitive value
		AdminAPIKey:         getEnv("API_KEY", ""),
		PromptFile:          getEnv("PROMPT_FILE", "data/prompts.yaml"),
		ProvisionTimeoutSec: getEnvInt("PROVISION_TIMEOUT_SEC", 60),
		PresetConcurrency:   getEnvInt("PRESET_CONCURRENCY", 8),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogPretty:           getEnvBool("LOG_PRETTY", false),
		OpenAI: OpenAIConfig{
			APIKey:   getEnv("OPENAI_API_KEY", ""),
			GPTModel: getEnv("OPENAI_GPT_MODEL", "gpt-4-1106-preview"),
			TTSModel: getEnv("OPENAI_TTS_MODEL", "tts-1"),
			Voice:    getEnv("OPENAI_VOICE", "onyx"),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "linguaweb"),
			Region:    getEnv("MINIO_REGION", "us-east-1"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// Validate checks that every required secret and connection setting is
// present, so a misconfigured deployment fails at startup instead of on the
// first request.
func (c *AppConfig) Validate() error {
	if c.AdminAPIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
		return fmt.Errorf("DB_HOST, DB_USER, and DB_NAME are required")
	}
	if c.MinIO.Endpoint == "" || c.MinIO.AccessKey == "" || c.MinIO.SecretKey == "" {
		return fmt.Errorf("MINIO_ENDPOINT, MINIO_ACCESS_KEY, and MINIO_SECRET_KEY are required")
	}
	if c.PromptFile == "" {
		return fmt.Errorf("PROMPT_FILE is required")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
