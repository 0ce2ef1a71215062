package config

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Gemini   GeminiConfig
	Analysis AnalysisConfig
	R2       R2Config
}

type ServerConfig struct {
	Port      string
	Env       string
	BodyLimit int
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// AnalysisConfig tunes the batch orchestrator. Concurrency 1 keeps the
// per-file calls strictly sequential.
type AnalysisConfig struct {
	Concurrency int
}

// R2Config points the CLI at a Cloudflare R2 bucket holding résumés.
type R2Config struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

func (r R2Config) Enabled() bool {
	return r.AccountID != "" && r.Bucket != "" && r.AccessKey != "" && r.SecretKey != ""
}

var loadEnvOnce sync.Once

// Load reads the environment. The .env file is read at most once per process.
func Load() *Config {
	loadEnvOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found. Using default values.")
		}
	})

	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "3000"),
			Env:       getEnv("ENV", "development"),
			BodyLimit: getEnvAsInt("BODY_LIMIT", 50*1024*1024),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Temperature:     getEnvAsFloat32("GEMINI_TEMPERATURE", 0.3),
			MaxOutputTokens: int32(getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 4096)),
		},
		Analysis: AnalysisConfig{
			Concurrency: getEnvAsInt("ANALYSIS_CONCURRENCY", 1),
		},
		R2: R2Config{
			AccountID: getEnv("R2_ACCOUNT_ID", ""),
			Bucket:    getEnv("R2_BUCKET", ""),
			AccessKey: getEnv("R2_ACCESS_KEY", ""),
			SecretKey: getEnv("R2_SECRET_KEY", ""),
		},
	}
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}
