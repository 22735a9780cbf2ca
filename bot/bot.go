/* bot.go
 * Contains logic used for creating the bot and the helpers shared by its handlers. Requires a discord bot token and
 * APIPtr, both of which are passed in from main.go
 */

package bot

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"chess-tournament/api/api"

	"github.com/go-andiamo/splitter"
	"golang.org/x/time/rate"
)

// Bot answers tournament commands sent to a Discord channel
type Bot struct {
	BotToken string
	APIPtr   *api.API

	// discordgo runs each handler in its own goroutine, the API is not safe for concurrent use
	mu      sync.Mutex
	limiter *userLimiter
}

// NewBot creates a bot that allows each user ratePerMinute commands per minute. ratePerMinute <= 0 disables the limit
func NewBot(botToken string, apiPtr *api.API, ratePerMinute int) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
		limiter:  newUserLimiter(ratePerMinute),
	}, nil
}

// userLimiter holds a token bucket per Discord user
type userLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rate.Limiter
}

func newUserLimiter(ratePerMinute int) *userLimiter {
	if ratePerMinute <= 0 {
		return nil
	}
	return &userLimiter{
		limit:    rate.Every(time.Minute / time.Duration(ratePerMinute)),
		burst:    ratePerMinute,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether userID may run another command now. A nil limiter allows everything
func (l *userLimiter) Allow(userID string) bool {
	if l == nil {
		return true
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[userID]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userID] = lim
	}
	return lim.Allow()
}

// splitArgs splits a command into its words. Words in double quotes are kept together so tournament names can
// contain spaces, e.g. $standings "Spring Open"
// Preconditions: Receives the message content
// Postconditions: Returns the arguments after the command, with quotes removed and empty words dropped
func splitArgs(content string) ([]string, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, err
	}
	parts, err := spaceSplitter.Split(content)
	if err != nil {
		return nil, err
	}

	var args []string
	for _, part := range parts {
		part = strings.Trim(strings.TrimSpace(part), "\"“”")
		if part != "" {
			args = append(args, part)
		}
	}
	if len(args) == 0 {
		return nil, nil
	}
	return args[1:], nil
}

// Helper function to check if a string starts with a given substring
// Preconditions: Receives two strings, inputString and substring
// Postconditions: Returns true if inputString starts with substring, false otherwise
func startsWith(inputString string, substring string) bool {
	if len(substring) > len(inputString) {
		return false
	}
	strLength := len(substring)
	for i := range strLength {
		if inputString[i] != substring[i] {
			return false
		}
	}
	return true
}

// commandIs reports whether content is the given command, either alone or followed by arguments
func commandIs(content string, command string) bool {
	if !startsWith(content, command) {
		return false
	}
	return len(content) == len(command) || content[len(command)] == ' '
}
