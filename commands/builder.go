package commands

import (
	"github.com/bwmarrin/discordgo"

	"attendance-bot/commands/defs"
)

// All returns every slash command the bot registers. The command set is the
// same for every guild, so they are registered globally.
func All() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Hadir,
		defs.Help,
		defs.Status,
		defs.AddFormURL,
		defs.DeleteFormURL,
		defs.ListFormURL,
		defs.SetAttendanceTime,
		defs.ShowAttendanceTime,
		defs.DeleteAttendanceTime,
		defs.SetTimezone,
		defs.ShowTimezone,
	}
}
