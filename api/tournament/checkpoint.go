/* checkpoint.go
 * Contains Checkpoint, a copy of the mutable state of a tournament taken before an operation so the operation can be
 * undone when the caller fails to persist it
 */

package tournament

import "slices"

type matchState struct {
	played bool
	result Outcome
}

// Checkpoint holds the round counter, rounds, player order, player points and match results of a tournament
type Checkpoint struct {
	currentRound int
	rounds       [][]*Match
	players      []*Player
	points       []float64
	matches      map[*Match]matchState
}

// Checkpoint captures the current state of the tournament
func (t *Tournament) Checkpoint() Checkpoint {
	c := Checkpoint{
		currentRound: t.CurrentRound,
		rounds:       slices.Clone(t.rounds),
		players:      slices.Clone(t.Players),
		points:       make([]float64, len(t.Players)),
		matches:      make(map[*Match]matchState),
	}
	for i, p := range t.Players {
		c.points[i] = p.Points
	}
	for _, round := range t.rounds {
		for _, m := range round {
			c.matches[m] = matchState{played: m.played, result: m.result}
		}
	}
	return c
}

// Rollback returns the tournament to the state captured by c.
// Preconditions: c was taken from this tournament and no other tournament sharing its players changed since
// Postconditions: round counter, rounds, player order, points and match results are as they were at the checkpoint
func (t *Tournament) Rollback(c Checkpoint) {
	t.CurrentRound = c.currentRound
	t.rounds = c.rounds
	t.Players = c.players
	for i, p := range c.players {
		p.Points = c.points[i]
	}
	for m, s := range c.matches {
		m.played = s.played
		m.result = s.result
	}
}
