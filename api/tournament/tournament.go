/* tournament.go
 * Contains the Tournament struct and its round progression. A tournament owns its rounds and matches but not its
 * players, which belong to the roster and are shared with other tournaments
 */

package tournament

import (
	"fmt"
	"slices"
)

// Status is the progression state of a tournament
type Status int

const (
	NotStarted Status = iota
	InProgress
	Finished
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Config holds the values a tournament is created from
type Config struct {
	Name      string
	Venue     string
	StartDate string
	EndDate   string
	Players   []*Player
	MaxRound  int
	// Shuffle seeds round 1. Leave nil for rand.Shuffle
	Shuffle ShuffleFunc
}

// Tournament tracks the players, rounds and round counter of a single tournament
type Tournament struct {
	Name         string
	Venue        string
	StartDate    string
	EndDate      string
	Players      []*Player
	MaxRound     int
	CurrentRound int

	rounds     [][]*Match
	roundSetup bool
	shuffle    ShuffleFunc
}

// New validates cfg and creates a tournament that has not started.
// Preconditions: name is non-empty, there is an even, non-zero number of distinct players and MaxRound >= 1
// Postconditions: returns the tournament, or an error wrapping ErrInvalidTournamentConfig
func New(cfg Config) (*Tournament, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("%w: tournament name is required", ErrInvalidTournamentConfig)
	}
	if len(cfg.Players) == 0 || len(cfg.Players)%2 != 0 {
		return nil, fmt.Errorf("%w: number of players must be even and greater than zero, got %d", ErrInvalidTournamentConfig, len(cfg.Players))
	}
	if cfg.MaxRound < 1 {
		return nil, fmt.Errorf("%w: maximum number of rounds must be at least 1, got %d", ErrInvalidTournamentConfig, cfg.MaxRound)
	}

	seen := make(map[string]bool)
	for _, p := range cfg.Players {
		if p == nil {
			return nil, fmt.Errorf("%w: player list contains an empty entry", ErrInvalidTournamentConfig)
		}
		if seen[p.ChessID] {
			return nil, fmt.Errorf("%w: '%s' selected multiple times", ErrInvalidTournamentConfig, p.ChessID)
		}
		seen[p.ChessID] = true
	}

	return &Tournament{
		Name:      cfg.Name,
		Venue:     cfg.Venue,
		StartDate: cfg.StartDate,
		EndDate:   cfg.EndDate,
		Players:   slices.Clone(cfg.Players),
		MaxRound:  cfg.MaxRound,
		shuffle:   cfg.Shuffle,
	}, nil
}

// AdvanceRound builds the pairings for the next round.
// Round 1 pairs the players in random order. Later rounds sort the players by points, highest first, keeping the
// previous order on ties, and pair neighbours.
// Unplayed matches in the previous round do not block the next round.
// Preconditions: CurrentRound < MaxRound
// Postconditions: the round is stored at index CurrentRound and CurrentRound goes up by one, or ErrMaxRoundsReached is
// returned and nothing changes
func (t *Tournament) AdvanceRound() error {
	if t.CurrentRound >= t.MaxRound {
		return ErrMaxRoundsReached
	}
	if t.roundSetup {
		return ErrRoundSetupInProgress
	}
	t.roundSetup = true
	defer func() { t.roundSetup = false }()

	// Work on a copy so a failed pairing leaves the player order untouched
	order := slices.Clone(t.Players)
	var matches []*Match
	var err error
	if len(t.rounds) == 0 {
		matches, err = RandomPairing(order, t.shuffle)
	} else {
		sortByPoints(order)
		matches, err = SequentialPairing(order)
	}
	if err != nil {
		return fmt.Errorf("failed to pair round %d: %w", t.CurrentRound+1, err)
	}

	t.Players = order
	t.setRound(t.CurrentRound, matches)
	t.CurrentRound++
	return nil
}

// setRound stores matches at the given round index. A round already stored there is replaced, and rounds missing
// from restored data are left empty
func (t *Tournament) setRound(index int, matches []*Match) {
	if index < len(t.rounds) {
		t.rounds[index] = matches
		return
	}
	for len(t.rounds) < index {
		t.rounds = append(t.rounds, nil)
	}
	t.rounds = append(t.rounds, matches)
}

// RecordResult records the outcome of a match in the current round. matchIndex is zero based
func (t *Tournament) RecordResult(matchIndex int, outcome Outcome) error {
	matches := t.CurrentMatches()
	if len(matches) == 0 {
		return ErrNoActiveRound
	}
	if matchIndex < 0 || matchIndex >= len(matches) {
		return fmt.Errorf("%w: round %d has %d matches, got match %d", ErrMatchNotFound, t.CurrentRound, len(matches), matchIndex+1)
	}
	return matches[matchIndex].RecordResult(outcome)
}

// Restore loads the round counter and rounds read from storage. Rounds may be partially played.
// Preconditions: len(rounds) <= currentRound <= MaxRound and every match is between players of this tournament
// Postconditions: replaces the tournament's rounds, or returns ErrInvalidState and changes nothing
func (t *Tournament) Restore(currentRound int, rounds [][]*Match) error {
	if currentRound < 0 || currentRound > t.MaxRound {
		return fmt.Errorf("%w: current round %d outside 0..%d", ErrInvalidState, currentRound, t.MaxRound)
	}
	if len(rounds) > currentRound {
		return fmt.Errorf("%w: %d rounds stored but current round is %d", ErrInvalidState, len(rounds), currentRound)
	}

	members := make(map[string]bool, len(t.Players))
	for _, p := range t.Players {
		members[p.ChessID] = true
	}
	for i, round := range rounds {
		for _, m := range round {
			if m == nil || m.Player1 == nil || m.Player2 == nil {
				return fmt.Errorf("%w: round %d contains a match without two players", ErrInvalidState, i+1)
			}
			if !members[m.Player1.ChessID] || !members[m.Player2.ChessID] {
				return fmt.Errorf("%w: round %d contains a player outside the tournament", ErrInvalidState, i+1)
			}
		}
	}

	t.CurrentRound = currentRound
	t.rounds = rounds
	return nil
}

// IsCompleted reports whether the round counter has reached the maximum. It does not check that the final round's
// matches have been played
func (t *Tournament) IsCompleted() bool {
	return t.CurrentRound >= t.MaxRound
}

// Status returns the progression state derived from the round counter
func (t *Tournament) Status() Status {
	switch {
	case t.CurrentRound == 0:
		return NotStarted
	case t.IsCompleted():
		return Finished
	}
	return InProgress
}

// Rounds returns every round built so far, oldest first. The slices must be treated as read only
func (t *Tournament) Rounds() [][]*Match {
	return t.rounds
}

// CurrentMatches returns the matches of round CurrentRound, or nil before round 1 or when that round was never stored
func (t *Tournament) CurrentMatches() []*Match {
	index := t.CurrentRound - 1
	if index < 0 || index >= len(t.rounds) {
		return nil
	}
	return t.rounds[index]
}

// PendingMatches returns the matches of the current round that do not have a result yet
func (t *Tournament) PendingMatches() []*Match {
	var pending []*Match
	for _, m := range t.CurrentMatches() {
		if !m.IsPlayed() {
			pending = append(pending, m)
		}
	}
	return pending
}

// Rankings returns the players ordered by points, highest first. Ties keep the current player order
func (t *Tournament) Rankings() []*Player {
	ranked := slices.Clone(t.Players)
	sortByPoints(ranked)
	return ranked
}

// Winner returns the top ranked player once the tournament is completed, otherwise ErrTournamentNotComplete
func (t *Tournament) Winner() (*Player, error) {
	if !t.IsCompleted() {
		return nil, fmt.Errorf("%w: round %d of %d", ErrTournamentNotComplete, t.CurrentRound, t.MaxRound)
	}
	return t.Rankings()[0], nil
}

func sortByPoints(players []*Player) {
	slices.SortStableFunc(players, func(a, b *Player) int {
		switch {
		case a.Points > b.Points:
			return -1
		case a.Points < b.Points:
			return 1
		}
		return 0
	})
}
