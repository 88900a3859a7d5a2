package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	// API Configuration
	MovieAPIKey     string
	MovieAPIBaseURL string

	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret string

	// Server Configuration
	Port string
	Env  string

	// Optional CSV of movies inserted at startup
	SeedCSV string
}

// LoadConfig loads the configuration from environment variables. An
// environments/.env.<GO_ENV> file is layered in when present so local
// development does not need exported variables.
func LoadConfig() (*Config, error) {
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))

	// Missing env file is fine in deployed environments where the
	// variables come from the process environment.
	_ = godotenv.Load(envFile)

	cfg := &Config{
		// API Configuration
		MovieAPIKey:     getEnvOrDefault("MOVIE_API_KEY", ""),
		MovieAPIBaseURL: getEnvOrDefault("MOVIE_API_BASE_URL", "https://www.omdbapi.com/"),

		// Database Configuration
		MongoURI: getEnvOrDefault("MONGO_URI", ""),
		DBName:   getEnvOrDefault("DB_NAME", "movie_watchlist"),

		// Security Configuration
		JWTSecret: getEnvOrDefault("JWT_SECRET", ""),

		// Server Configuration
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  env,

		SeedCSV: getEnvOrDefault("SEED_CSV", ""),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
