package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"attendance-bot/bot"
	"attendance-bot/model"
	"attendance-bot/utils"
)

// HandleSetAttendanceTime parses and stores the weekly attendance window.
func HandleSetAttendanceTime(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID, ok := guildIDFrom(i)
	if !ok {
		utils.SendSimpleResponse(s, i, "❌ This command must be used in a server.")
		return
	}

	schedule := optionMap(i)["schedule"].StringValue()
	w, err := utils.ParseSchedule(schedule)
	if err != nil {
		utils.SendSimpleResponse(s, i, "❌ "+err.Error())
		return
	}

	if err := b.Guilds.UpsertWindow(guildID, *w); err != nil {
		log.Printf("Error saving window for guild %d: %v", guildID, err)
		utils.SendSimpleResponse(s, i, "⚠️ Failed to save attendance time. Please try again.")
		return
	}

	utils.SendSimpleResponse(s, i, fmt.Sprintf(
		"✅ Attendance time set for **%s** from **%02d:%02d** to **%02d:%02d**.",
		model.WeekdayName(w.Day), w.StartHour, w.StartMinute, w.EndHour, w.EndMinute,
	))
}

// HandleShowAttendanceTime renders the configured window.
func HandleShowAttendanceTime(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID, ok := guildIDFrom(i)
	if !ok {
		utils.SendSimpleResponse(s, i, "❌ This command must be used in a server.")
		return
	}

	w, err := b.Guilds.GetWindow(guildID)
	if err != nil {
		log.Printf("Error loading window for guild %d: %v", guildID, err)
		utils.SendSimpleResponse(s, i, "⚠️ Error")
		return
	}
	if w == nil {
		utils.SendSimpleResponse(s, i, "❌ Attendance time has not been set yet.")
		return
	}

	utils.SendSimpleResponse(s, i, fmt.Sprintf(
		"📅 Attendance time **%s**: %02d:%02d - %02d:%02d",
		model.WeekdayName(w.Day), w.StartHour, w.StartMinute, w.EndHour, w.EndMinute,
	))
}

// HandleDeleteAttendanceTime removes the window configuration.
func HandleDeleteAttendanceTime(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID, ok := guildIDFrom(i)
	if !ok {
		utils.SendSimpleResponse(s, i, "❌ This command must be used in a server.")
		return
	}

	w, err := b.Guilds.GetWindow(guildID)
	if err != nil {
		log.Printf("Error loading window for guild %d: %v", guildID, err)
		utils.SendSimpleResponse(s, i, "⚠️ Error")
		return
	}
	if w == nil {
		utils.SendSimpleResponse(s, i, "⚠️ No attendance time found.")
		return
	}

	if err := b.Guilds.DeleteWindow(guildID); err != nil {
		log.Printf("Error deleting window for guild %d: %v", guildID, err)
		utils.SendSimpleResponse(s, i, "⚠️ Failed to delete attendance time.")
		return
	}
	utils.SendSimpleResponse(s, i, "🗑️ Attendance time has been deleted.")
}
