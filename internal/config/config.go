package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Qdrant    QdrantConfig
	Gemini    GeminiConfig
	Storage   StorageConfig
	Recording RecordingConfig
	Sessions  SessionConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	RequestTimeout time.Duration
	MetricsEnabled bool
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

// Enabled reports whether a knowledge base is configured.
func (q QdrantConfig) Enabled() bool {
	return q.URL != ""
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	EmbedModel      string
	BaseURL         string
	Temperature     float32
	MaxOutputTokens int32
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type RecordingConfig struct {
	Path         string
	IdleGrace    time.Duration
	ReapInterval time.Duration
}

// SessionConfig bounds how long finished interviews, assessment attempts and
// analysis markers stay in memory.
type SessionConfig struct {
	Retention     time.Duration
	SweepInterval time.Duration
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Load reads .env (if present) and the process environment. The returned
// config is built once at startup and passed down by value.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "3000"),
			Env:            getEnv("ENV", "development"),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", "60s"),
			MetricsEnabled: getEnvAsBool("METRICS_ENABLED", true),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", DriverPostgres),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "interview_coach"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "interview_knowledge"),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			EmbedModel:      getEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
			BaseURL:         getEnv("GEMINI_BASE_URL", ""),
			Temperature:     float32(getEnvAsFloat("GEMINI_TEMPERATURE", 0.7)),
			MaxOutputTokens: int32(getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 2048)),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Recording: RecordingConfig{
			Path:         getEnv("RECORDING_PATH", "./recordings"),
			IdleGrace:    getEnvAsDuration("RECORDING_IDLE_GRACE", "2m"),
			ReapInterval: getEnvAsDuration("RECORDING_REAP_INTERVAL", "30s"),
		},
		Sessions: SessionConfig{
			Retention:     getEnvAsDuration("SESSION_RETENTION", "1h"),
			SweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", "5m"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
