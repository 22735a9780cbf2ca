/* console.go
 * Contains the interactive menu for running tournaments from a terminal. Every question goes through an
 * input.Prompter, so the menus can be driven by a script in tests
 */

package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"chess-tournament/api/api"
	"chess-tournament/api/input"
	"chess-tournament/logger"
)

// Console runs the main menu against an API
type Console struct {
	api        *api.API
	prompt     input.Prompter
	out        io.Writer
	reportsDir string

	// now is used to reject birthdays in the future
	now func() time.Time
}

// New creates a console that asks questions through prompt and writes everything else to out.
// Reports are written to reportsDir
func New(a *api.API, prompt input.Prompter, out io.Writer, reportsDir string) *Console {
	return &Console{
		api:        a,
		prompt:     prompt,
		out:        out,
		reportsDir: reportsDir,
		now:        time.Now,
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Run shows the main menu until the user exits or the input runs out
// Postconditions: Returns nil on exit or end of input, or the first error that is not a user mistake
func (c *Console) Run() error {
	for {
		c.printf("\nMenu:\n")
		c.printf("1. Create a New Tournament\n")
		c.printf("2. Manage an Existing Tournament\n")
		c.printf("3. List all Ongoing Tournaments\n")
		c.printf("4. Remove a Tournament\n")
		c.printf("5. Register a New Player\n")
		c.printf("6. Exit\n")

		choice, err := c.prompt.Prompt(input.Field{Label: "Choose an option", Required: true})
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = c.createTournament()
		case "2":
			err = c.manageTournament()
		case "3":
			c.listTournaments()
		case "4":
			err = c.removeTournament()
		case "5":
			err = c.registerPlayer()
		case "6":
			c.printf("Exiting program.\n")
			return nil
		default:
			c.printf("Invalid option, please try again.\n")
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput turns io.EOF into a normal exit
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		logger.Debug("console input closed")
		return nil
	}
	return err
}

// listTournaments prints the active tournament names, numbered from 1, and returns them
func (c *Console) listTournaments() []string {
	names := c.api.ListTournaments()
	if len(names) == 0 {
		c.printf("No tournaments available.\n")
		return nil
	}

	c.printf("\nAvailable Tournaments:\n")
	for i, name := range names {
		c.printf("%d. %s\n", i+1, name)
	}
	return names
}

// removeTournament asks for a tournament name and archives it
func (c *Console) removeTournament() error {
	if len(c.api.ListTournaments()) == 0 {
		c.printf("There are no ongoing tournaments to remove.\n")
		return nil
	}

	name, err := c.prompt.Prompt(input.Field{Label: "Enter the name of the tournament to remove", Required: true})
	if err != nil {
		return err
	}

	if err := c.api.RemoveTournament(name); err != nil {
		if errors.Is(err, api.ErrTournamentNotFound) {
			c.printf("No tournament found with the name '%s'.\n", name)
			return nil
		}
		return err
	}
	c.printf("Tournament '%s' has been removed.\n", name)
	return nil
}

// numberBetween rejects anything that is not a whole number from 1 to max
func numberBetween(max int) input.Validator {
	return func(value string) error {
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > max {
			return fmt.Errorf("Invalid selection. Please enter a number from 1 to %d.", max)
		}
		return nil
	}
}
