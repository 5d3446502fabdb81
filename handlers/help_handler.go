package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"attendance-bot/utils"
)

const setupInstructions = "```\n" +
	"📜 How to Set Up Google Form for Attendance:\n" +
	"1. Create a Google Form with one text field for the name.\n" +
	"2. Get the form URL (either the full URL or the shortened forms.gle link).\n" +
	"3. Use the /add_gform_url command with your form URL.\n" +
	"4. The bot will automatically handle form submissions for attendance.\n" +
	"```"

const helpText = "```\n" +
	"📜 Available Commands:\n" +
	"1. /add_gform_url <link>\n" +
	"   Example: /add_gform_url https://forms.gle/abc123def456\n\n" +
	"2. /delete_gform_url\n\n" +
	"3. /list_gform_url\n\n" +
	"4. /hadir\n\n" +
	"5. /set_attendance_time <day>/<HH:MM>-<HH:MM>\n" +
	"   Example: /set_attendance_time Friday/08:00-09:00\n" +
	"   Example: /set_attendance_time 5/14:00-15:00\n" +
	"   If not set, attendance can be marked anytime.\n\n" +
	"6. /show_attendance_time\n\n" +
	"7. /delete_attendance_time\n\n" +
	"8. /set_timezone <delta>\n" +
	"   Set the time difference from UTC. If not set, UTC+7 (Jakarta) is used.\n" +
	"   Example: /set_timezone -5\n\n" +
	"9. /show_timezone\n\n" +
	"10. /status\n" +
	"```"

// HandleHelp sends setup instructions followed by the command list.
func HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	utils.SendSimpleResponse(s, i, setupInstructions)
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: helpText,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		log.Printf("Error sending help follow-up: %v", err)
	}
}
