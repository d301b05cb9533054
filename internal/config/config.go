package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Firestore FirestoreConfig
	Keys      APIKeys
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type FirestoreConfig struct {
	ProjectID  string
	DatabaseID string
}

type APIKeys struct {
	GoogleGemini string
}

// Load reads configuration from the environment. The three Google Cloud
// settings are required; startup must abort when any of them is missing.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Firestore: FirestoreConfig{
			ProjectID:  getEnv("GCP_PROJECT_ID", ""),
			DatabaseID: getEnv("FIRESTORE_DATABASE_ID", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GEMINI_GOOGLE_API_KEY", ""),
		},
	}

	if cfg.Firestore.ProjectID == "" {
		return nil, fmt.Errorf("GCP_PROJECT_ID is not configured")
	}
	if cfg.Firestore.DatabaseID == "" {
		return nil, fmt.Errorf("FIRESTORE_DATABASE_ID is not configured")
	}
	if cfg.Keys.GoogleGemini == "" {
		return nil, fmt.Errorf("GEMINI_GOOGLE_API_KEY is not configured")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
