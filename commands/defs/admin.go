package defs

import "github.com/bwmarrin/discordgo"

var AddFormURL = &discordgo.ApplicationCommand{
	Name:        "add_gform_url",
	Description: "Add or update the Google Form URL for the guild",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "url",
			Description: "The Google Form link (full URL or forms.gle short link)",
			Required:    true,
		},
	},
}

var DeleteFormURL = &discordgo.ApplicationCommand{
	Name:        "delete_gform_url",
	Description: "Remove the Google Form URL from the guild",
}

var ListFormURL = &discordgo.ApplicationCommand{
	Name:        "list_gform_url",
	Description: "List the current Google Form URL for the guild",
}

var SetAttendanceTime = &discordgo.ApplicationCommand{
	Name:        "set_attendance_time",
	Description: "Set the weekly attendance window. Format: <day>/<HH:MM>-<HH:MM>",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "schedule",
			Description: "e.g. Friday/08:00-09:00 or 5/14:00-15:00",
			Required:    true,
		},
	},
}

var ShowAttendanceTime = &discordgo.ApplicationCommand{
	Name:        "show_attendance_time",
	Description: "Show the current attendance window for the server",
}

var DeleteAttendanceTime = &discordgo.ApplicationCommand{
	Name:        "delete_attendance_time",
	Description: "Delete the attendance time configuration",
}

var SetTimezone = &discordgo.ApplicationCommand{
	Name:        "set_timezone",
	Description: "Set the timezone offset for the guild. Range: -12 to +14",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "offset",
			Description: "Hours from UTC, e.g. +7, -5 or 0",
			Required:    true,
		},
	},
}

var ShowTimezone = &discordgo.ApplicationCommand{
	Name:        "show_timezone",
	Description: "Show the timezone offset for the guild",
}
