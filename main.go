package main

import (
	"log"

	"attendance-bot/attendance"
	"attendance-bot/bot"
	"attendance-bot/config"
	"attendance-bot/gform"
	"attendance-bot/handlers"
	"attendance-bot/utils/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := database.Init(cfg.DBPath)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	guilds := database.NewGuildStore(db)
	records := database.NewAttendanceStore(db)
	forms := gform.New(cfg.FormMaxConcurrency, cfg.FormTimeout)
	svc := attendance.NewService(guilds, attendance.NewLedger(records), forms)

	b, err := bot.New(cfg, db, svc, guilds, records)
	if err != nil {
		log.Fatalf("Error creating bot: %v", err)
	}

	handlers.Register(b)

	b.Run()

	defer b.Close()
}
