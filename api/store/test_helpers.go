/* test_helpers.go
 * Contains test helper functions and sample data for store package tests
 */

package store

import (
	"context"

	"chess-tournament/api/tournament"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore("test_chess_tournament", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateTestClient creates a test MongoDB client.
func CreateTestClient(mongoURI string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// CreateSamplePlayers creates four roster players with zero points
func CreateSamplePlayers() []*tournament.Player {
	return []*tournament.Player{
		tournament.NewPlayer("AA00001", "Alice", "alice@example.com", "01-01-1990"),
		tournament.NewPlayer("BB00002", "Bob", "bob@example.com", "02-02-1991"),
		tournament.NewPlayer("CC00003", "Carol", "carol@example.com", "03-03-1992"),
		tournament.NewPlayer("DD00004", "Dave", "dave@example.com", "04-04-1993"),
	}
}

// CreateSampleTournamentDoc creates a stored 3 round tournament at round 1: Alice beat Bob, Carol and Dave have not played
func CreateSampleTournamentDoc() TournamentDoc {
	return TournamentDoc{
		Name:           "Spring Open",
		Dates:          Dates{From: "2024-04-01", To: "2024-04-03"},
		Venue:          "Springfield",
		NumberOfRounds: 3,
		CurrentRound:   1,
		Players:        []string{"AA00001", "BB00002", "CC00003", "DD00004"},
		Rounds: [][]MatchDoc{
			{
				{Players: []string{"AA00001", "BB00002"}, Completed: true, Winner: "player1"},
				{Players: []string{"CC00003", "DD00004"}, Completed: false},
			},
		},
	}
}

// mapLookup is a PlayerLookup over a fixed set of players
type mapLookup map[string]*tournament.Player

func (m mapLookup) Lookup(chessIDs ...string) ([]*tournament.Player, error) {
	players := make([]*tournament.Player, 0, len(chessIDs))
	for _, id := range chessIDs {
		p, ok := m[id]
		if !ok {
			return nil, tournament.ErrInvalidState
		}
		players = append(players, p)
	}
	return players, nil
}

// newLookup creates a mapLookup over players
func newLookup(players []*tournament.Player) mapLookup {
	m := make(mapLookup, len(players))
	for _, p := range players {
		m[p.ChessID] = p
	}
	return m
}
