package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"attendance-bot/bot"
	"attendance-bot/utils"
)

// HandleSetTimezone stores the guild's UTC offset in hours (-12 to +14).
func HandleSetTimezone(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID, ok := guildIDFrom(i)
	if !ok {
		utils.SendSimpleResponse(s, i, "❌ This command must be used in a server.")
		return
	}

	raw := optionMap(i)["offset"].StringValue()
	hours, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(raw), "+"))
	if err != nil || hours < -12 || hours > 14 {
		utils.SendSimpleResponse(s, i, "❌ Invalid timezone offset. Please enter a number between -12 and +14.")
		return
	}

	if err := b.Guilds.SetOffsetMinutes(guildID, hours*60); err != nil {
		log.Printf("Error saving offset for guild %d: %v", guildID, err)
		utils.SendSimpleResponse(s, i, "⚠️ Failed to save timezone.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Timezone offset saved as UTC%+d", hours))
}

// HandleShowTimezone shows the configured UTC offset.
func HandleShowTimezone(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID, ok := guildIDFrom(i)
	if !ok {
		utils.SendSimpleResponse(s, i, "❌ This command must be used in a server.")
		return
	}

	minutes, set, err := b.Guilds.GetOffsetMinutes(guildID)
	if err != nil {
		log.Printf("Error loading offset for guild %d: %v", guildID, err)
		utils.SendSimpleResponse(s, i, "⚠️ Error")
		return
	}
	if !set {
		utils.SendSimpleResponse(s, i, "⚠️ No timezone offset has been set for this server.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("🌐 Timezone offset is UTC%+d", minutes/60))
}
