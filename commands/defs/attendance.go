package defs

import "github.com/bwmarrin/discordgo"

var Hadir = &discordgo.ApplicationCommand{
	Name:        "hadir",
	Description: "Mark your daily attendance",
}

var Help = &discordgo.ApplicationCommand{
	Name:        "help",
	Description: "Show all available bot commands and setup instructions",
}

var Status = &discordgo.ApplicationCommand{
	Name:        "status",
	Description: "Show bot and host system information",
}
