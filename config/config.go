package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Chroma   ChromaConfig
	Gemini   GeminiConfig
	Embedder EmbedderConfig
	Redis    RedisConfig
	Chatbot  ChatbotConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type ChromaConfig struct {
	Host       string
	Port       int
	Collection string
}

type GeminiConfig struct {
	URL string
	Key string
	// RequestsPerSecond caps calls to the generation API; zero means
	// unlimited.
	RequestsPerSecond float64
}

type EmbedderConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

type RedisConfig struct {
	// Addr empty disables the summary cache.
	Addr string
}

type ChatbotConfig struct {
	GateMode          string
	Threshold         float64
	SummaryFormat     string
	FallbackOnNoMatch bool
}

type AppConfig struct {
	Environment string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Chroma: ChromaConfig{
			Host:       getEnv("CHROMA_HOST", "localhost"),
			Port:       getEnvAsInt("CHROMA_PORT", 8000),
			Collection: getEnv("CHROMA_COLLECTION", "happy_house_rag"),
		},
		Gemini: GeminiConfig{
			URL:               getEnv("GMS_URL", ""),
			Key:               getEnv("GMS_KEY", ""),
			RequestsPerSecond: getEnvAsFloat("GMS_RPS", 0),
		},
		Embedder: EmbedderConfig{
			BaseURL: getEnv("EMBED_BASE_URL", "http://localhost:1234/v1"),
			APIKey:  getEnv("EMBED_API_KEY", ""),
			Model:   getEnv("EMBED_MODEL", "jhgan/ko-sroberta-multitask"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
		},
		Chatbot: ChatbotConfig{
			GateMode:          getEnv("GATE_MODE", "threshold"),
			Threshold:         getEnvAsFloat("GATE_THRESHOLD", 0.6),
			SummaryFormat:     getEnv("SUMMARY_FORMAT", "plain"),
			FallbackOnNoMatch: getEnvAsBool("FALLBACK_ON_NO_MATCH", true),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Gemini.URL == "" {
		return fmt.Errorf("GMS_URL is required")
	}

	if c.Gemini.Key == "" {
		return fmt.Errorf("GMS_KEY is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}
