package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"attendance-bot/model"
)

// Load loads the configuration from environment variables.
func Load() (*model.Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		log.Fatal("Error: BOT_TOKEN environment variable not set")
	}

	appID := os.Getenv("APP_ID")
	if appID == "" {
		log.Fatal("Error: APP_ID environment variable not set")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/guilds.db"
	}

	maxConcurrency := 10
	if v := os.Getenv("GFORM_MAX_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Printf("Warning: Invalid GFORM_MAX_CONCURRENCY value %q, using default of 10", v)
		} else {
			maxConcurrency = n
		}
	}

	timeout := 10 * time.Second
	if v := os.Getenv("GFORM_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Printf("Warning: Invalid GFORM_TIMEOUT_SECONDS value %q, using default of 10", v)
		} else {
			timeout = time.Duration(n) * time.Second
		}
	}

	return &model.Config{
		BotToken:           token,
		AppID:              appID,
		DBPath:             dbPath,
		FormMaxConcurrency: maxConcurrency,
		FormTimeout:        timeout,
	}, nil
}
