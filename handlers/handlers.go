package handlers

import (
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"attendance-bot/bot"
	"attendance-bot/utils"
)

type handlerFunc = func(s *discordgo.Session, i *discordgo.InteractionCreate)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]handlerFunc {
	return map[string]handlerFunc{
		"hadir": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleHadir(s, i, b)
		},
		"help": HandleHelp,
		"status": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleStatus(s, i, b)
		},
		"add_gform_url": requireAdmin(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleAddFormURL(s, i, b)
		}),
		"delete_gform_url": requireAdmin(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleDeleteFormURL(s, i, b)
		}),
		"list_gform_url": requireAdmin(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleListFormURL(s, i, b)
		}),
		"set_attendance_time": requireAdmin(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetAttendanceTime(s, i, b)
		}),
		"show_attendance_time": requireAdmin(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleShowAttendanceTime(s, i, b)
		}),
		"delete_attendance_time": requireAdmin(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleDeleteAttendanceTime(s, i, b)
		}),
		"set_timezone": requireAdmin(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSetTimezone(s, i, b)
		}),
		"show_timezone": requireAdmin(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleShowTimezone(s, i, b)
		}),
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})
}

// requireAdmin gates a handler behind the Administrator permission.
func requireAdmin(h handlerFunc) handlerFunc {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Member == nil {
			utils.SendSimpleResponse(s, i, "❌ This command must be used in a server.")
			return
		}
		if i.Member.Permissions&discordgo.PermissionAdministrator == 0 {
			utils.SendSimpleResponse(s, i, "⚠️ No Administrator permission")
			return
		}
		h(s, i)
	}
}

// guildIDFrom parses the interaction's guild id. The second return is false
// for DMs.
func guildIDFrom(i *discordgo.InteractionCreate) (int64, bool) {
	if i.GuildID == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Printf("Could not parse guild id %q: %v", i.GuildID, err)
		return 0, false
	}
	return id, true
}

// optionMap indexes the interaction's command options by name.
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}
