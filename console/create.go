/* create.go
 * Contains the console flows that add to the roster or create a tournament
 */

package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"chess-tournament/api/api"
	"chess-tournament/api/input"
	"chess-tournament/api/roster"
	"chess-tournament/api/tournament"

	"github.com/go-andiamo/splitter"
)

// createTournament asks for the details of a new tournament, lets the user pick its players and creates it
func (c *Console) createTournament() error {
	name, err := c.prompt.Prompt(input.Field{Label: "Enter the name of the new tournament", Required: true})
	if err != nil {
		return err
	}
	if _, err := c.api.GetTournament(name); err == nil {
		c.printf("Tournament '%s' already exists.\n", name)
		return nil
	}

	venue, err := c.prompt.Prompt(input.Field{Label: "Enter the venue for the tournament"})
	if err != nil {
		return err
	}
	startDate, err := c.prompt.Prompt(input.Field{Label: "Enter the start date (YYYY-MM-DD)"})
	if err != nil {
		return err
	}
	endDate, err := c.prompt.Prompt(input.Field{Label: "Enter the end date (YYYY-MM-DD)"})
	if err != nil {
		return err
	}

	available := c.api.Roster.Len()
	if available < 2 {
		c.printf("At least 2 players are needed, there are %d in the roster.\n", available)
		return nil
	}
	numPlayers, err := input.PromptInt(c.prompt, input.Field{
		Label:    "Enter the number of players to select (must be an even number)",
		Required: true,
		Validate: func(value string) error {
			if err := input.EvenPositiveInt(value); err != nil {
				return err
			}
			if n, _ := strconv.Atoi(value); n > available {
				return fmt.Errorf("There are only %d players to choose from!", available)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	playerIDs, err := c.selectPlayers(numPlayers)
	if err != nil {
		return err
	}

	maxRound, err := input.PromptInt(c.prompt, input.Field{
		Label:    "Enter the maximum number of rounds",
		Required: true,
		Validate: input.PositiveInt,
	})
	if err != nil {
		return err
	}

	_, err = c.api.CreateTournament(api.CreateRequest{
		Name:      name,
		Venue:     venue,
		StartDate: startDate,
		EndDate:   endDate,
		PlayerIDs: playerIDs,
		MaxRound:  maxRound,
	})
	switch {
	case errors.Is(err, api.ErrTournamentExists), errors.Is(err, tournament.ErrInvalidTournamentConfig), errors.Is(err, roster.ErrPlayerNotFound):
		c.printf("Could not create the tournament: %s\n", err)
		return nil
	case err != nil:
		return err
	}

	c.printf("Tournament '%s' has been created at %s from %s to %s.\n", name, venue, startDate, endDate)
	return nil
}

// selectPlayers asks the user to search the roster and pick numPlayers distinct players. Several players can be
// picked at once by entering their numbers separated by spaces, e.g. "1 4 7"
// Preconditions: Receives the number of players to select, which is at most the roster size
// Postconditions: Returns the chess ids of the selected players in the order they were picked
func (c *Console) selectPlayers(numPlayers int) ([]string, error) {
	numberSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	if err != nil {
		return nil, err
	}

	var selected []*tournament.Player
	for len(selected) < numPlayers {
		term, err := c.prompt.Prompt(input.Field{Label: "Enter a name or chess ID to search, or just press enter to list all players"})
		if err != nil {
			return nil, err
		}
		found := c.api.SearchPlayers(term)
		if len(found) == 0 {
			c.printf("No player matches '%s'.\n", term)
			continue
		}
		for i, p := range found {
			c.printf("%d: %s (%s)\n", i+1, p.Name, p.ChessID)
		}

		answer, err := c.prompt.Prompt(input.Field{
			Label:    fmt.Sprintf("Select player %d (enter number)", len(selected)+1),
			Required: true,
		})
		if err != nil {
			return nil, err
		}
		choices, err := numberSplitter.Split(answer)
		if err != nil {
			c.printf("Invalid player number. Please try again.\n")
			continue
		}

		for _, choice := range choices {
			choice = strings.TrimSpace(choice)
			if choice == "" {
				continue
			}
			if len(selected) == numPlayers {
				break
			}
			index, err := strconv.Atoi(choice)
			if err != nil || index < 1 || index > len(found) {
				c.printf("Invalid player number %s. Please try again.\n", choice)
				continue
			}
			player := found[index-1]
			if containsPlayer(selected, player) {
				c.printf("Player already selected. Please choose a different player.\n")
				continue
			}
			selected = append(selected, player)
		}
		c.displaySelectedPlayers(selected)
	}

	ids := make([]string, len(selected))
	for i, p := range selected {
		ids[i] = p.ChessID
	}
	return ids, nil
}

func containsPlayer(players []*tournament.Player, p *tournament.Player) bool {
	for _, selected := range players {
		if selected.SameAs(p) {
			return true
		}
	}
	return false
}

func (c *Console) displaySelectedPlayers(selected []*tournament.Player) {
	c.printf("\nCurrently selected players:\n")
	for i, p := range selected {
		c.printf("%d: %s (%s)\n", i+1, p.Name, p.ChessID)
	}
	c.printf("\n")
}

// registerPlayer asks for the details of a new player and adds them to the roster
func (c *Console) registerPlayer() error {
	name, err := c.prompt.Prompt(input.Field{Label: "Name", Required: true})
	if err != nil {
		return err
	}
	email, err := c.prompt.Prompt(input.Field{Label: "Email", Required: true, Validate: input.Email})
	if err != nil {
		return err
	}
	chessID, err := c.prompt.Prompt(input.Field{Label: "Chess ID", Required: true, Validate: input.ChessID})
	if err != nil {
		return err
	}
	birthday, err := c.prompt.Prompt(input.Field{Label: "Birthday (dd-mm-yyyy)", Required: true, Validate: input.Birthday(c.now)})
	if err != nil {
		return err
	}

	if err := c.api.RegisterPlayer(tournament.NewPlayer(chessID, name, email, birthday)); err != nil {
		if errors.Is(err, roster.ErrDuplicatePlayer) {
			c.printf("A player with chess id %s is already registered.\n", chessID)
			return nil
		}
		return err
	}
	c.printf("Player %s (%s) has been registered.\n", name, chessID)
	return nil
}
