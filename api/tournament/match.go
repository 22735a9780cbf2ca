/* match.go
 * Contains the Match struct and the logic for recording a match result. Recording a result is the only place
 * player points change
 */

package tournament

import "fmt"

// Outcome is the recorded result of a match. The values are the ones written to the tournaments collection
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomePlayer1 Outcome = "player1"
	OutcomePlayer2 Outcome = "player2"
	OutcomeDraw    Outcome = "draw"
)

const (
	winPoints  = 1.0
	drawPoints = 0.5
	lossPoints = 0.0
)

// Valid reports whether the outcome can be recorded against a match
func (o Outcome) Valid() bool {
	switch o {
	case OutcomePlayer1, OutcomePlayer2, OutcomeDraw:
		return true
	}
	return false
}

// ParseOutcome converts the short codes used by the console and bot (1, 2, 0) as well as the stored names into an Outcome
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "1", string(OutcomePlayer1):
		return OutcomePlayer1, nil
	case "2", string(OutcomePlayer2):
		return OutcomePlayer2, nil
	case "0", string(OutcomeDraw):
		return OutcomeDraw, nil
	}
	return OutcomeNone, fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
}

// Match is a single pairing of two players in a round
type Match struct {
	Player1 *Player
	Player2 *Player
	played  bool
	result  Outcome
}

// NewMatch pairs two players.
// Preconditions: receives two non-nil players
// Postconditions: returns an unplayed match, or ErrInvalidPairing if a player is missing or both are the same player
func NewMatch(player1, player2 *Player) (*Match, error) {
	if player1 == nil || player2 == nil {
		return nil, fmt.Errorf("%w: both players are required", ErrInvalidPairing)
	}
	if player1.SameAs(player2) {
		return nil, fmt.Errorf("%w: %s cannot play against themselves", ErrInvalidPairing, player1.ChessID)
	}
	return &Match{Player1: player1, Player2: player2}, nil
}

// RestoreMatch rebuilds a match loaded from storage. A played match has its result replayed through RecordResult,
// which awards the points again to the freshly loaded players
func RestoreMatch(player1, player2 *Player, played bool, outcome Outcome) (*Match, error) {
	m, err := NewMatch(player1, player2)
	if err != nil {
		return nil, err
	}
	if !played {
		return m, nil
	}
	if err := m.RecordResult(outcome); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordResult stores the outcome of the match and awards the points.
// Preconditions: outcome is player1, player2 or draw
// Postconditions: on the first call the match is marked as played and points are awarded (1/0, 0/1 or 0.5/0.5).
// Any later call is a no-op and returns nil, so a result can never be counted twice
func (m *Match) RecordResult(outcome Outcome) error {
	if m.played {
		return nil
	}
	if !outcome.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}

	m.played = true
	m.result = outcome
	switch outcome {
	case OutcomePlayer1:
		m.Player1.AddPoints(winPoints)
		m.Player2.AddPoints(lossPoints)
	case OutcomePlayer2:
		m.Player1.AddPoints(lossPoints)
		m.Player2.AddPoints(winPoints)
	case OutcomeDraw:
		m.Player1.AddPoints(drawPoints)
		m.Player2.AddPoints(drawPoints)
	}
	return nil
}

// IsPlayed reports whether a result has been recorded
func (m *Match) IsPlayed() bool {
	return m.played
}

// Result returns the recorded outcome, OutcomeNone if the match has not been played
func (m *Match) Result() Outcome {
	return m.result
}

// Winner returns the winning player, or nil for a draw or an unplayed match
func (m *Match) Winner() *Player {
	switch m.result {
	case OutcomePlayer1:
		return m.Player1
	case OutcomePlayer2:
		return m.Player2
	}
	return nil
}

func (m *Match) String() string {
	return fmt.Sprintf("%s vs %s", m.Player1.Name, m.Player2.Name)
}
