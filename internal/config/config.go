package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	ActivityLogPath    string
	LLMTrafficLogPath  string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	EmbedTopic         string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret      string
	TokenTTLMinute int
}

type AIConfig struct {
	LLMProvider       string // "ollama" or "gemini"
	LLMModel          string
	OllamaBaseURL     string
	GeminiAPIKey      string
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaEmbedModel  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			ActivityLogPath:    getEnv("ACTIVITY_LOG_PATH", "logs/activity.log"),
			LLMTrafficLogPath:  getEnv("LLM_TRAFFIC_LOG_PATH", "logs/llm_evolution.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			EmbedTopic:         getEnv("EMBED_REFERENCE_TOPIC_NAME", "EMBED_REFERENCE_CONTENT"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", ""),
			TokenTTLMinute: getEnvAsInt("JWT_TTL_MINUTES", 60*24),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			GeminiAPIKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
