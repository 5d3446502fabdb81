package model

import "time"

// Config holds the process-level configuration loaded at startup.
type Config struct {
	BotToken string
	AppID    string
	DBPath   string

	// Outbound Google Form settings.
	FormMaxConcurrency int
	FormTimeout        time.Duration
}
