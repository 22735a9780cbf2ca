/* session_interface.go
 * Contains the DiscordSession interface the command handlers reply through, and send, which every reply goes
 * through so standings and pairings of large tournaments stay within the Discord message limit
 */

package bot

import (
	"unicode/utf8"

	"chess-tournament/logger"

	"github.com/bwmarrin/discordgo"
)

// Discord rejects messages longer than this
const maxMessageLength = 2000

// DiscordSession is the part of *discordgo.Session the handlers use. Tests replace it with MockDiscordSession
type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

var _ DiscordSession = (*discordgo.Session)(nil)

// send posts content to the channel the message came from, cutting it to the Discord message limit
func send(session DiscordSession, message *discordgo.MessageCreate, content string) {
	if len(content) > maxMessageLength {
		cut := maxMessageLength - 4
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut] + "\n..."
	}
	if _, err := session.ChannelMessageSend(message.ChannelID, content); err != nil {
		logger.Error("failed to send discord message", "channel", message.ChannelID, "error", err)
	}
}
