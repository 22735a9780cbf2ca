/* utils.go
 * Utility functions used across the application
 */

package main

import (
	"fmt"
	"strings"
)

// Mode selects which front end main runs
type Mode string

const (
	ModeConsole Mode = "console"
	ModeBot     Mode = "bot"
	ModeWeb     Mode = "web"
)

// parseMode converts the -mode flag into a Mode
// Preconditions: Receives a string containing console, bot or web (case insensitive)
// Postconditions: Returns the Mode or an error if the string is not a known mode
func parseMode(str string) (Mode, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	switch Mode(str) {
	case ModeConsole, ModeBot, ModeWeb:
		return Mode(str), nil
	}
	return "", fmt.Errorf("invalid mode %q, expected console, bot or web", str)
}
