/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface. Tournament names containing spaces must be
 * quoted, e.g. $standings "Spring Open"
 */

package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chess-tournament/api/api"
	"chess-tournament/api/report"
	"chess-tournament/api/tournament"
	"chess-tournament/logger"

	"github.com/bwmarrin/discordgo"
)

// Maximum number of players listed by $players
const maxListedPlayers = 20

// errorMessage turns an API error into the reply shown to the user
func errorMessage(err error, name string) string {
	switch {
	case errors.Is(err, api.ErrTournamentNotFound):
		return fmt.Sprintf("Tournament '%s' not found. Use $tournaments to see the active tournaments", name)
	case errors.Is(err, tournament.ErrMaxRoundsReached):
		return fmt.Sprintf("Maximum number of rounds reached for %s. Use $winner to see the winner", name)
	case errors.Is(err, tournament.ErrTournamentNotComplete):
		return fmt.Sprintf("%s is not complete yet, there is no winner", name)
	case errors.Is(err, tournament.ErrNoActiveRound):
		return fmt.Sprintf("%s has not started. Use $next to pair the first round", name)
	case errors.Is(err, tournament.ErrMatchNotFound):
		return "No such match in the current round. Use $pairings to see the match numbers"
	case errors.Is(err, tournament.ErrInvalidOutcome):
		return "Invalid result. Use 1 if player 1 won, 2 if player 2 won or 0 for a draw"
	}
	logger.Error("bot command failed", "tournament", name, "error", err)
	return "An unexpected error occurred"
}

// tournamentArg returns the first argument of a command, or sends the usage and returns false
func tournamentArg(session DiscordSession, message *discordgo.MessageCreate, args []string, usage string) (string, bool) {
	if len(args) == 0 {
		send(session, message, "Usage: "+usage)
		return "", false
	}
	return args[0], true
}

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Chess Tournament Bot\n")
	res.WriteString("Names that contain two or more words need to be encased in \" (e.g. \"Spring Open\")\n")
	res.WriteString("`$tournaments`: lists the active tournaments with their current round\n")
	res.WriteString("`$standings <tournament>`: shows the players of a tournament ranked by points\n")
	res.WriteString("`$pairings <tournament>`: shows the matches of the current round and their results\n")
	res.WriteString("`$next <tournament>`: pairs the next round. Round 1 is random, later rounds pair players by points\n")
	res.WriteString("`$result <tournament> <match> <1|2|0>`: records a result of the current round. 1 if player 1 won, 2 if player 2 won, 0 for a draw\n")
	res.WriteString("`$winner <tournament>`: shows the winner once every round has been played\n")
	res.WriteString("`$players [search]`: searches the players by name or chess id\n")
	send(session, message, res.String())
}

// tournamentsHandler handles the $tournaments command with a DiscordSession interface
func (b *Bot) tournamentsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	names := b.APIPtr.ListTournaments()
	if len(names) == 0 {
		send(session, message, "There are no active tournaments")
		return
	}

	var res strings.Builder
	res.WriteString("Active tournaments:\n")
	for _, name := range names {
		t, err := b.APIPtr.GetTournament(name)
		if err != nil {
			continue
		}
		summary := api.NewTournamentSummary(t)
		res.WriteString(fmt.Sprintf("- %s (%s): round %d of %d, %s\n", summary.Name, summary.Venue, summary.CurrentRound, summary.MaxRound, summary.Status))
	}
	send(session, message, res.String())
}

// standingsHandler handles the $standings command with a DiscordSession interface
func (b *Bot) standingsHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	name, ok := tournamentArg(session, message, args, "$standings <tournament>")
	if !ok {
		return
	}
	t, err := b.APIPtr.GetTournament(name)
	if err != nil {
		send(session, message, errorMessage(err, name))
		return
	}
	send(session, message, fmt.Sprintf("Standings for %s after round %d of %d:\n%s", t.Name, t.CurrentRound, t.MaxRound, report.Standings(t)))
}

// pairingsHandler handles the $pairings command with a DiscordSession interface
func (b *Bot) pairingsHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	name, ok := tournamentArg(session, message, args, "$pairings <tournament>")
	if !ok {
		return
	}
	t, err := b.APIPtr.GetTournament(name)
	if err != nil {
		send(session, message, errorMessage(err, name))
		return
	}
	send(session, message, report.Pairings(t))
}

// nextRoundHandler handles the $next command with a DiscordSession interface
func (b *Bot) nextRoundHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	name, ok := tournamentArg(session, message, args, "$next <tournament>")
	if !ok {
		return
	}
	if _, err := b.APIPtr.PlayNextRound(name); err != nil {
		send(session, message, errorMessage(err, name))
		return
	}
	t, err := b.APIPtr.GetTournament(name)
	if err != nil {
		send(session, message, errorMessage(err, name))
		return
	}
	logger.Info("round paired from discord", "tournament", name, "round", t.CurrentRound, "user", message.Author.Username)
	send(session, message, report.Pairings(t))
}

// resultHandler handles the $result command with a DiscordSession interface
func (b *Bot) resultHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	const usage = "$result <tournament> <match> <1|2|0>"
	if len(args) != 3 {
		send(session, message, "Usage: "+usage)
		return
	}
	name := args[0]
	matchNumber, err := strconv.Atoi(args[1])
	if err != nil {
		send(session, message, fmt.Sprintf("'%s' is not a match number. Usage: %s", args[1], usage))
		return
	}
	outcome, err := tournament.ParseOutcome(args[2])
	if err != nil {
		send(session, message, errorMessage(err, name))
		return
	}

	t, err := b.APIPtr.GetTournament(name)
	if err != nil {
		send(session, message, errorMessage(err, name))
		return
	}
	matches := t.CurrentMatches()
	if matchNumber >= 1 && matchNumber <= len(matches) && matches[matchNumber-1].IsPlayed() {
		send(session, message, fmt.Sprintf("Match %d already has a result: %s, %s", matchNumber, matches[matchNumber-1], matches[matchNumber-1].Result()))
		return
	}

	if err := b.APIPtr.RecordResult(name, matchNumber, outcome); err != nil {
		send(session, message, errorMessage(err, name))
		return
	}
	send(session, message, fmt.Sprintf("Result recorded for match %d: %s, %s", matchNumber, matches[matchNumber-1], outcome))
}

// winnerHandler handles the $winner command with a DiscordSession interface
func (b *Bot) winnerHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	name, ok := tournamentArg(session, message, args, "$winner <tournament>")
	if !ok {
		return
	}
	winner, err := b.APIPtr.DeclareWinner(name)
	if err != nil {
		send(session, message, errorMessage(err, name))
		return
	}
	send(session, message, fmt.Sprintf("The winner of %s is %s (%s) with %s points", name, winner.Name, winner.ChessID, report.FormatPoints(winner.Points)))
}

// playersHandler handles the $players command with a DiscordSession interface
func (b *Bot) playersHandler(session DiscordSession, message *discordgo.MessageCreate, args []string) {
	term := strings.Join(args, " ")
	players := b.APIPtr.SearchPlayers(term)
	if len(players) == 0 {
		send(session, message, fmt.Sprintf("No player matches '%s'", term))
		return
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("Found %d players:\n", len(players)))
	for i, p := range players {
		if i == maxListedPlayers {
			res.WriteString(fmt.Sprintf("... and %d more\n", len(players)-maxListedPlayers))
			break
		}
		res.WriteString(fmt.Sprintf("- %s (%s)\n", p.Name, p.ChessID))
	}
	send(session, message, res.String())
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author == nil || message.Author.ID == botUserID || !startsWith(message.Content, "$") {
		return
	}

	if !b.limiter.Allow(message.Author.ID) {
		logger.Warn("rate limited discord user", "user", message.Author.Username, "user_id", message.Author.ID)
		send(session, message, fmt.Sprintf("Slow down %s, try again in a minute", message.Author.Username))
		return
	}

	args, err := splitArgs(message.Content)
	if err != nil {
		send(session, message, "Could not read the command, check that every \" is closed")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	// Route to appropriate handler
	switch content := message.Content; {
	case commandIs(content, "$help"):
		b.helpMessageHandler(session, message)

	case commandIs(content, "$tournaments"):
		b.tournamentsHandler(session, message)

	case commandIs(content, "$standings"):
		b.standingsHandler(session, message, args)

	case commandIs(content, "$pairings"):
		b.pairingsHandler(session, message, args)

	case commandIs(content, "$next"):
		b.nextRoundHandler(session, message, args)

	case commandIs(content, "$result"):
		b.resultHandler(session, message, args)

	case commandIs(content, "$winner"):
		b.winnerHandler(session, message, args)

	case commandIs(content, "$players"):
		b.playersHandler(session, message, args)
	}
}
