/* manage.go
 * Contains the console flow for managing an existing tournament: rankings, playing rounds, player details and reports
 */

package console

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chess-tournament/api/input"
	"chess-tournament/api/report"
	"chess-tournament/api/tournament"
	"chess-tournament/logger"
)

// manageTournament lets the user pick a tournament and shows its menu until they go back
func (c *Console) manageTournament() error {
	names := c.listTournaments()
	if len(names) == 0 {
		return nil
	}

	choice, err := input.PromptInt(c.prompt, input.Field{
		Label:    "Select a tournament to manage (enter number)",
		Required: true,
		Validate: numberBetween(len(names)),
	})
	if err != nil {
		return err
	}
	name := names[choice-1]

	for {
		t, err := c.api.GetTournament(name)
		if err != nil {
			return err
		}
		c.printf("\nManaging Tournament: %s\n", t.Name)
		c.printf("Venue: %s\n", t.Venue)
		c.printf("Dates: %s to %s\n", t.StartDate, t.EndDate)
		c.printf("Current Round: %d / %d\n", t.CurrentRound, t.MaxRound)
		c.printf("Players:\n")
		for _, p := range t.Players {
			c.printf(" - %s (Points: %s)\n", p.Name, report.FormatPoints(p.Points))
		}
		c.printf("1. View Rankings\n")
		c.printf("2. Play Next Round\n")
		c.printf("3. View Player Details\n")
		c.printf("4. Generate Tournament Report\n")
		c.printf("5. Back to Main Menu\n")

		option, err := c.prompt.Prompt(input.Field{Label: "Choose an option", Required: true})
		if err != nil {
			return err
		}

		switch option {
		case "1":
			c.printf("Rankings for %s:\n%s", t.Name, report.Standings(t))
		case "2":
			err = c.playNextRound(t)
		case "3":
			c.printf("Player details for %s:\n", t.Name)
			for _, p := range t.Players {
				c.printf("%s\n", p)
			}
		case "4":
			err = c.writeReport(t)
		case "5":
			return nil
		default:
			c.printf("Invalid option, please try again.\n")
		}
		if err != nil {
			return err
		}
	}
}

// playNextRound pairs the next round and asks for the result of each of its matches
func (c *Console) playNextRound(t *tournament.Tournament) error {
	c.printf("Attempting to play round %d.\nCurrent round: %d\nMax rounds: %d\n", t.CurrentRound+1, t.CurrentRound, t.MaxRound)

	matches, err := c.api.PlayNextRound(t.Name)
	if errors.Is(err, tournament.ErrMaxRoundsReached) {
		c.printf("Maximum number of rounds reached. The tournament has concluded.\n")
		c.declareWinner(t)
		return nil
	}
	if err != nil {
		return err
	}

	for i, m := range matches {
		if m.IsPlayed() {
			continue
		}
		c.printf("Match %d: %s vs %s\n", i+1, m.Player1.Name, m.Player2.Name)
		answer, err := c.prompt.Prompt(input.Field{
			Label:    "Enter winner (1 for player1, 2 for player2, 0 for draw)",
			Required: true,
			Validate: input.OneOf("1", "2", "0"),
		})
		if err != nil {
			return err
		}
		outcome, err := tournament.ParseOutcome(answer)
		if err != nil {
			return err
		}
		if err := c.api.RecordResult(t.Name, i+1, outcome); err != nil {
			return err
		}
	}

	c.printf("After Round %d:\n%s", t.CurrentRound, report.Standings(t))
	if t.IsCompleted() {
		c.printf("Maximum number of rounds reached. The tournament has concluded.\n")
		c.declareWinner(t)
	}
	return nil
}

func (c *Console) declareWinner(t *tournament.Tournament) {
	winner, err := c.api.DeclareWinner(t.Name)
	if err != nil {
		c.printf("No winner yet: %s\n", err)
		return
	}
	c.printf("The winner of %s is %s (%s) with %s points!\n", t.Name, winner.Name, winner.ChessID, report.FormatPoints(winner.Points))
}

// writeReport renders the HTML report of t into the reports directory
func (c *Console) writeReport(t *tournament.Tournament) error {
	html, err := c.api.GenerateReport(t.Name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.reportsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}
	path := filepath.Join(c.reportsDir, t.Name+"_report.html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		c.printf("Failed to save tournament report: %s\n", err)
		logger.Error("failed to save tournament report", "tournament", t.Name, "path", path, "error", err)
		return nil
	}

	c.printf("Tournament report saved in %s\n", path)
	c.printf("The Tournament Report has been generated successfully\n")
	return nil
}
