/* models.go
 * This file contain the structs stored in the DB and the helper functions that convert between them and the
 * tournament package
 */

package store

import (
	"fmt"

	"chess-tournament/api/tournament"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlayerLookup resolves chess ids to the shared roster players. Implemented by roster.Roster
type PlayerLookup interface {
	Lookup(chessIDs ...string) ([]*tournament.Player, error)
}

// PlayerDoc is a roster player. Points are not stored, they are rebuilt from the match results when a tournament is loaded
type PlayerDoc struct {
	ChessID  string `bson:"chess_id"`
	Name     string `bson:"name"`
	Email    string `bson:"email,omitempty"`
	Birthday string `bson:"birthday,omitempty"`
}

// Dates holds the opaque start and end dates of a tournament
type Dates struct {
	From string `bson:"from"`
	To   string `bson:"to"`
}

// MatchDoc is a single match of a round
type MatchDoc struct {
	Players   []string `bson:"players"` // chess ids of player1 and player2
	Completed bool     `bson:"completed"`
	Winner    string   `bson:"winner,omitempty"` // "player1", "player2" or "draw"
}

// TournamentDoc represents the way a tournament is stored in the DB
type TournamentDoc struct {
	Id             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Dates          Dates              `bson:"dates"`
	Venue          string             `bson:"venue"`
	NumberOfRounds int                `bson:"number_of_rounds"`
	CurrentRound   int                `bson:"current_round"`
	Completed      bool               `bson:"completed"`
	Archived       bool               `bson:"archived"`
	Players        []string           `bson:"players"` // chess ids in the tournament's current order
	Rounds         [][]MatchDoc       `bson:"rounds"`
}

// FromPlayer converts a roster player into the document stored in the players collection
func FromPlayer(p *tournament.Player) PlayerDoc {
	return PlayerDoc{
		ChessID:  p.ChessID,
		Name:     p.Name,
		Email:    p.Email,
		Birthday: p.Birthday,
	}
}

// ToPlayer creates a new player with zero points from a stored player
func (d PlayerDoc) ToPlayer() *tournament.Player {
	return tournament.NewPlayer(d.ChessID, d.Name, d.Email, d.Birthday)
}

// FromTournament converts a tournament into the document stored in the DB. Every attribute needed to rebuild the
// tournament is kept, including unplayed matches
func FromTournament(t *tournament.Tournament) TournamentDoc {
	doc := TournamentDoc{
		Name:           t.Name,
		Dates:          Dates{From: t.StartDate, To: t.EndDate},
		Venue:          t.Venue,
		NumberOfRounds: t.MaxRound,
		CurrentRound:   t.CurrentRound,
		Completed:      t.IsCompleted(),
		Players:        make([]string, 0, len(t.Players)),
		Rounds:         make([][]MatchDoc, 0, len(t.Rounds())),
	}

	for _, p := range t.Players {
		doc.Players = append(doc.Players, p.ChessID)
	}

	for _, round := range t.Rounds() {
		roundDoc := make([]MatchDoc, 0, len(round))
		for _, m := range round {
			roundDoc = append(roundDoc, MatchDoc{
				Players:   []string{m.Player1.ChessID, m.Player2.ChessID},
				Completed: m.IsPlayed(),
				Winner:    string(m.Result()),
			})
		}
		doc.Rounds = append(doc.Rounds, roundDoc)
	}
	return doc
}

// ToTournament rebuilds a tournament from a stored document. Players are looked up in the roster rather than copied,
// and the result of every completed match is replayed, which adds the points back onto the roster players.
// Preconditions: the roster contains every player of the tournament and has not already had this tournament's points applied
// Postconditions: returns the tournament, or an error if a player is missing or the stored state is invalid
func ToTournament(doc TournamentDoc, players PlayerLookup, shuffle tournament.ShuffleFunc) (*tournament.Tournament, error) {
	members, err := players.Lookup(doc.Players...)
	if err != nil {
		return nil, fmt.Errorf("tournament %s: %w", doc.Name, err)
	}

	t, err := tournament.New(tournament.Config{
		Name:      doc.Name,
		Venue:     doc.Venue,
		StartDate: doc.Dates.From,
		EndDate:   doc.Dates.To,
		Players:   members,
		MaxRound:  doc.NumberOfRounds,
		Shuffle:   shuffle,
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*tournament.Player, len(members))
	for _, p := range members {
		byID[p.ChessID] = p
	}

	// Check everything before replaying any result so a bad document never leaves points half applied
	if doc.CurrentRound < 0 || doc.CurrentRound > doc.NumberOfRounds || len(doc.Rounds) > doc.CurrentRound {
		return nil, fmt.Errorf("%w: tournament %s has %d rounds stored at round %d of %d", tournament.ErrInvalidState, doc.Name, len(doc.Rounds), doc.CurrentRound, doc.NumberOfRounds)
	}
	for i, roundDoc := range doc.Rounds {
		for j, md := range roundDoc {
			if len(md.Players) != 2 || byID[md.Players[0]] == nil || byID[md.Players[1]] == nil {
				return nil, fmt.Errorf("%w: tournament %s round %d match %d does not have two players from the tournament", tournament.ErrInvalidState, doc.Name, i+1, j+1)
			}
			if md.Players[0] == md.Players[1] {
				return nil, fmt.Errorf("%w: tournament %s round %d match %d", tournament.ErrInvalidPairing, doc.Name, i+1, j+1)
			}
			if md.Completed && !tournament.Outcome(md.Winner).Valid() {
				return nil, fmt.Errorf("%w: tournament %s round %d match %d has winner %q", tournament.ErrInvalidOutcome, doc.Name, i+1, j+1, md.Winner)
			}
		}
	}

	rounds := make([][]*tournament.Match, 0, len(doc.Rounds))
	for _, roundDoc := range doc.Rounds {
		round := make([]*tournament.Match, 0, len(roundDoc))
		for _, md := range roundDoc {
			m, err := tournament.RestoreMatch(byID[md.Players[0]], byID[md.Players[1]], md.Completed, tournament.Outcome(md.Winner))
			if err != nil {
				return nil, err
			}
			round = append(round, m)
		}
		rounds = append(rounds, round)
	}

	if err := t.Restore(doc.CurrentRound, rounds); err != nil {
		return nil, err
	}
	return t, nil
}
