package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"attendance-bot/attendance"
	"attendance-bot/bot"
	"attendance-bot/utils"
)

// HandleHadir marks the invoking user's attendance for today.
func HandleHadir(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID, ok := guildIDFrom(i)
	if !ok || i.Member == nil || i.Member.User == nil {
		utils.SendSimpleResponse(s, i, "❌ This command must be used in a server.")
		return
	}
	userID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Printf("Could not parse user id %q: %v", i.Member.User.ID, err)
		utils.SendSimpleResponse(s, i, "⚠️ An error occurred while recording attendance.")
		return
	}

	// The form submission can take seconds, so defer before running the
	// pipeline.
	if err := utils.DeferResponse(s, i, false); err != nil {
		log.Printf("Error deferring hadir response: %v", err)
		return
	}

	outcome := b.Attendance.MarkAttendance(guildID, userID, memberDisplayName(i.Member))
	utils.SendFollowUp(s, i.Interaction, hadirMessage(outcome, i.Member.User.ID))
}

func hadirMessage(outcome attendance.Outcome, userID string) string {
	mention := "<@" + userID + ">"
	switch outcome {
	case attendance.OutcomeRecorded:
		return fmt.Sprintf("%s Hadir recorded! ✅", mention)
	case attendance.OutcomeAlreadyMarked:
		return fmt.Sprintf("%s You've already marked attendance today.", mention)
	case attendance.OutcomeOutsideWindow:
		return fmt.Sprintf("%s ❌ Attendance denied.", mention)
	case attendance.OutcomeNotConfigured:
		return "❌ No attendance configured."
	case attendance.OutcomeUpstreamFailed:
		return "⚠️ Failed to submit attendance. Please try again."
	}
	return "⚠️ An error occurred while recording attendance."
}

// memberDisplayName picks the name submitted into the form: server nickname
// first, then global name, then username.
func memberDisplayName(m *discordgo.Member) string {
	if m.Nick != "" {
		return m.Nick
	}
	if m.User.GlobalName != "" {
		return m.User.GlobalName
	}
	return m.User.Username
}
