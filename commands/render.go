package commands

import (
	"fmt"
	"strconv"
	"strings"

	"relay-desk/domain/relay"

	"github.com/olekukonko/tablewriter"
)

const (
	OperatorMenu = "🛡️ Admin Panel\n\n" +
		"Available commands:\n" +
		"/users - View all users\n" +
		"/stats - View statistics\n" +
		"/help - Show help"

	OperatorHelp = "🛡️ Admin Help\n\n" +
		"Commands:\n" +
		"/users - View all users\n" +
		"/stats - View statistics\n" +
		"/reply <user_id> <message> - Reply to a specific user\n" +
		"/broadcast <message> - Send message to all users\n" +
		"/block <user_id> - Block a user\n" +
		"/unblock <user_id> - Unblock a user"

	ClientHelp = "💬 Help\n\n" +
		"Simply send me any message and I'll forward it to our team.\n" +
		"We'll respond to you as soon as possible.\n\n" +
		"You can send text, photos, documents, or any other type of message."

	BlockedNotice       = "❌ You have been blocked from using this bot."
	ForwardFailedNotice = "❌ Sorry, there was an error sending your message. Please try again later."
	ForwardConfirmation = "✅ Your message has been sent to our team. We'll get back to you soon!"
	NoUsersNotice       = "No users found."
	NoActiveUsersNotice = "No active users to reply to."
	SelectionPrompt     = "Select a user to reply to:"
	UnknownCommand      = "Unknown command. Use /help to list available commands."
)

func Welcome(displayName string) string {
	return fmt.Sprintf("👋 Hello %s!\n\n"+
		"Welcome to our service. You can send me any message and I'll forward it to our team.\n"+
		"We'll get back to you as soon as possible.\n\n"+
		"Just type your message below 👇", displayName)
}

func ReplyText(text string) string {
	return "💬 Reply from our team:\n\n" + text
}

func BroadcastText(text string) string {
	return "📢 Announcement:\n\n" + text
}

// ForwardEnvelope formats a client message for the operator, with the command
// hint for a targeted reply.
func ForwardEnvelope(user relay.User, text string) string {
	return fmt.Sprintf("📨 New message from user:\n\n"+
		"👤 User: %s (@%s)\n"+
		"🆔 ID: %d\n"+
		"💬 Message: %s\n\n"+
		"Reply with: /reply %d <your message>",
		user.DisplayName, handleOrDefault(user.Handle), user.ID, text, user.ID)
}

func ReplySent(id int64) string {
	return fmt.Sprintf("✅ Reply sent to user %d", id)
}

func ReplyFailed(id int64, reason string) string {
	return fmt.Sprintf("❌ Failed to send message to user %d: %s", id, reason)
}

func UnknownUser(id int64) string {
	return fmt.Sprintf("❌ User %d not found.", id)
}

func UserBlocked(id int64) string {
	return fmt.Sprintf("✅ User %d has been blocked.", id)
}

func UserUnblocked(id int64) string {
	return fmt.Sprintf("✅ User %d has been unblocked.", id)
}

func ReplyTargetSet(user relay.User) string {
	return fmt.Sprintf("💬 Replying to: %s (@%s)\n"+
		"🆔 ID: %d\n\n"+
		"Type your reply message now, or use /reply %d <message>",
		user.DisplayName, handleOrDefault(user.Handle), user.ID, user.ID)
}

// UserListing renders the active users as a borderless table.
func UserListing(users []relay.User) string {
	var sb strings.Builder
	sb.WriteString("👥 Active Users:\n\n")

	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"ID", "Name", "Username", "Joined", "Messages"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, user := range users {
		table.Append([]string{
			strconv.FormatInt(user.ID, 10),
			user.DisplayName,
			"@" + handleOrDefault(user.Handle),
			user.JoinedAt.Format("2006-01-02"),
			strconv.Itoa(len(user.Messages)),
		})
	}
	table.Render()
	return sb.String()
}

func StatsText(stats relay.Stats) string {
	return fmt.Sprintf("📊 Statistics\n\n"+
		"👥 Total Users: %d\n"+
		"💬 Total Messages: %d\n"+
		"📈 Average Messages per User: %.1f",
		stats.TotalUsers, stats.TotalMessages, stats.AverageMessages)
}

func BroadcastReport(delivered, failed int) string {
	return fmt.Sprintf("📢 Broadcast completed!\n"+
		"✅ Successfully sent: %d\n"+
		"❌ Failed: %d", delivered, failed)
}

// Chunk splits operator-bound output into rune-bounded pieces; chat transports
// cap single-message length.
func Chunk(s string, limit int) []string {
	runes := []rune(s)
	if limit <= 0 || len(runes) <= limit {
		return []string{s}
	}
	var parts []string
	for start := 0; start < len(runes); start += limit {
		end := min(start+limit, len(runes))
		parts = append(parts, string(runes[start:end]))
	}
	return parts
}

func handleOrDefault(handle string) string {
	if handle == "" {
		return "No username"
	}
	return handle
}
