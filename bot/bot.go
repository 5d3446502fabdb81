package bot

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"attendance-bot/attendance"
	"attendance-bot/commands"
	"attendance-bot/model"
	"attendance-bot/utils/database"
)

type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	Attendance         *attendance.Service
	Guilds             *database.GuildStore
	Records            *database.AttendanceStore
	DB                 *sqlx.DB
	Config             *model.Config
}

func New(cfg *model.Config, db *sqlx.DB, svc *attendance.Service, guilds *database.GuildStore, records *database.AttendanceStore) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	return &Bot{
		Session:    dg,
		Attendance: svc,
		Guilds:     guilds,
		Records:    records,
		DB:         db,
		Config:     cfg,
	}, nil
}

// RefreshCommands bulk-overwrites the application's global command set.
func (b *Bot) RefreshCommands() {
	cmds := commands.All()
	log.Printf("Registering %d commands...", len(cmds))
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.Config.AppID, "", cmds)
	if err != nil {
		log.Printf("cannot update commands: %v", err)
		return
	}
	b.RegisteredCommands = registered
}

func (b *Bot) Close() {
	log.Println("Gracefully shutting down.")
	b.Session.Close()
	if err := b.DB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}
