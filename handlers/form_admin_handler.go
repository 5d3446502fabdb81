package handlers

import (
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"attendance-bot/bot"
	"attendance-bot/gform"
	"attendance-bot/utils"
)

// HandleAddFormURL runs the configuration-time sub-flow: resolve the link,
// discover the field ids and persist the form target.
func HandleAddFormURL(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID, ok := guildIDFrom(i)
	if !ok {
		utils.SendSimpleResponse(s, i, "❌ This command must be used in a server.")
		return
	}

	rawURL := optionMap(i)["url"].StringValue()
	if !strings.HasPrefix(rawURL, "https://docs.google.com/forms/") && !strings.HasPrefix(rawURL, "https://forms.gle/") {
		utils.SendSimpleResponse(s, i, "❌ That doesn't look like a Google Form link.")
		return
	}

	// Resolving and extracting hits the network twice; defer first.
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("Error deferring add_gform_url response: %v", err)
		return
	}

	if err := b.Attendance.SetFormLink(guildID, rawURL); err != nil {
		utils.SendFollowUp(s, i.Interaction, formErrorMessage(err))
		return
	}
	utils.SendFollowUp(s, i.Interaction, "✅ Google Form URL saved!")
}

// formErrorMessage renders a configuration-time failure for the
// administrator, who chose the input and can fix it.
func formErrorMessage(err error) string {
	kind, ok := gform.KindOf(err)
	if !ok {
		return "⚠️ Failed to save Google Form URL!"
	}
	switch kind {
	case gform.KindMalformedURL:
		return "❌ Could not find a valid Google Form ID in the URL."
	case gform.KindNotFound:
		return "❌ The Google Form URL doesn't exist. Please check the link."
	case gform.KindPrivate:
		return "⚠️ Couldn't access the Google Form. 🔒 This Google Form is private."
	case gform.KindNoEmbeddedData, gform.KindNoFields:
		return "🔒 This Google Form is private, restricted, or not a valid attendance form."
	case gform.KindTransient:
		return "⚠️ Network error while reaching the Google Form. Please try again."
	}
	return "⚠️ Failed to save Google Form URL!"
}

// HandleDeleteFormURL clears the guild's form configuration.
func HandleDeleteFormURL(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID, ok := guildIDFrom(i)
	if !ok {
		utils.SendSimpleResponse(s, i, "❌ This command must be used in a server.")
		return
	}

	cfg, err := b.Guilds.GetConfig(guildID)
	if err != nil {
		log.Printf("Error loading config for guild %d: %v", guildID, err)
		utils.SendSimpleResponse(s, i, "⚠️ Error")
		return
	}
	if !cfg.FormConfigured() {
		utils.SendSimpleResponse(s, i, "⚠️ No URL set.")
		return
	}

	if err := b.Guilds.DeleteForm(guildID); err != nil {
		log.Printf("Error deleting form for guild %d: %v", guildID, err)
		utils.SendSimpleResponse(s, i, "⚠️ Error")
		return
	}
	utils.SendSimpleResponse(s, i, "🗑️ URL deleted")
}

// HandleListFormURL shows the configured submit endpoint.
func HandleListFormURL(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID, ok := guildIDFrom(i)
	if !ok {
		utils.SendSimpleResponse(s, i, "❌ This command must be used in a server.")
		return
	}

	cfg, err := b.Guilds.GetConfig(guildID)
	if err != nil {
		log.Printf("Error loading config for guild %d: %v", guildID, err)
		utils.SendSimpleResponse(s, i, "⚠️ Error")
		return
	}
	if !cfg.FormConfigured() {
		utils.SendSimpleResponse(s, i, "No URL configured")
		return
	}
	utils.SendSimpleResponse(s, i, "Current URL: "+cfg.FormURL+"/formResponse")
}
