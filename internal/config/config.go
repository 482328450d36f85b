package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port             string
	DBPath           string
	JWTSecret        string
	ModelDir         string // directory holding the model artifact files
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	PredictRateLimit int   // requests per minute per IP on /predict-risk/
	MaxUploadBytes   int64 // maximum accepted CSV upload size
}

// Load loads configuration from the environment
func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", ":8080"),
		DBPath:           getEnv("DB_PATH", "./data/rockfall.db"),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		ModelDir:         getEnv("MODEL_DIR", "./models"),
		AccessTokenTTL:   time.Duration(getEnvAsInt("ACCESS_TOKEN_TTL_MINUTES", 60)) * time.Minute,
		RefreshTokenTTL:  time.Duration(getEnvAsInt("REFRESH_TOKEN_TTL_MINUTES", 7*24*60)) * time.Minute,
		PredictRateLimit: getEnvAsInt("PREDICT_RATE_LIMIT", 60),
		MaxUploadBytes:   int64(getEnvAsInt("MAX_UPLOAD_MB", 32)) * 1024 * 1024,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
