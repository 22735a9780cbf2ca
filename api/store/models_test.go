/* models_test.go
 * Contains unit tests for models.go functions
 */

package store

import (
	"testing"

	"chess-tournament/api/tournament"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noShuffle keeps the roster order for round 1
func noShuffle(int, func(i, j int)) {}

// region ToTournament tests

// TestToTournament_PartialRound tests loading a tournament whose current round is only partly played
func TestToTournament_PartialRound(t *testing.T) {
	players := CreateSamplePlayers()

	tour, err := ToTournament(CreateSampleTournamentDoc(), newLookup(players), noShuffle)

	require.NoError(t, err)
	assert.Equal(t, "Spring Open", tour.Name)
	assert.Equal(t, "Springfield", tour.Venue)
	assert.Equal(t, "2024-04-01", tour.StartDate)
	assert.Equal(t, "2024-04-03", tour.EndDate)
	assert.Equal(t, 3, tour.MaxRound)
	assert.Equal(t, 1, tour.CurrentRound)
	require.Len(t, tour.Rounds(), 1)

	round := tour.Rounds()[0]
	assert.True(t, round[0].IsPlayed())
	assert.Equal(t, tournament.OutcomePlayer1, round[0].Result())
	assert.False(t, round[1].IsPlayed())

	// Players are the roster's, and the played result has been replayed onto them
	assert.Same(t, players[0], round[0].Player1)
	assert.Equal(t, 1.0, players[0].Points)
	assert.Zero(t, players[1].Points)
	assert.Len(t, tour.PendingMatches(), 1)
}

func TestToTournament_KeepsPlayerOrder(t *testing.T) {
	players := CreateSamplePlayers()
	doc := CreateSampleTournamentDoc()
	doc.Players = []string{"DD00004", "AA00001", "CC00003", "BB00002"}

	tour, err := ToTournament(doc, newLookup(players), noShuffle)

	require.NoError(t, err)
	assert.Equal(t, []*tournament.Player{players[3], players[0], players[2], players[1]}, tour.Players)
}

func TestToTournament_UnknownPlayer(t *testing.T) {
	players := CreateSamplePlayers()[:3]

	_, err := ToTournament(CreateSampleTournamentDoc(), newLookup(players), noShuffle)

	assert.Error(t, err)
}

// TestToTournament_InvalidDocs tests that a broken document is rejected without awarding any points
func TestToTournament_InvalidDocs(t *testing.T) {
	tests := []struct {
		name   string
		modify func(doc *TournamentDoc)
		want   error
	}{
		{"more rounds than counter", func(doc *TournamentDoc) { doc.CurrentRound = 0 }, tournament.ErrInvalidState},
		{"counter beyond max", func(doc *TournamentDoc) { doc.CurrentRound = 4 }, tournament.ErrInvalidState},
		{"one player match", func(doc *TournamentDoc) { doc.Rounds[0][1].Players = []string{"CC00003"} }, tournament.ErrInvalidState},
		{"player outside tournament", func(doc *TournamentDoc) { doc.Rounds[0][1].Players = []string{"CC00003", "ZZ99999"} }, tournament.ErrInvalidState},
		{"self pairing", func(doc *TournamentDoc) { doc.Rounds[0][1].Players = []string{"CC00003", "CC00003"} }, tournament.ErrInvalidPairing},
		{"completed without winner", func(doc *TournamentDoc) { doc.Rounds[0][1].Completed = true }, tournament.ErrInvalidOutcome},
		{"zero rounds", func(doc *TournamentDoc) { doc.NumberOfRounds = 0 }, tournament.ErrInvalidTournamentConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := CreateSamplePlayers()
			doc := CreateSampleTournamentDoc()
			tt.modify(&doc)

			tour, err := ToTournament(doc, newLookup(players), noShuffle)

			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, tour)
			for _, p := range players {
				assert.Zero(t, p.Points, p.ChessID)
			}
		})
	}
}

// endregion

// region FromTournament tests

func TestFromTournament_NotStarted(t *testing.T) {
	tour, err := tournament.New(tournament.Config{
		Name:      "Autumn Cup",
		Venue:     "Cornville",
		StartDate: "2024-10-01",
		EndDate:   "2024-10-02",
		Players:   CreateSamplePlayers(),
		MaxRound:  2,
	})
	require.NoError(t, err)

	doc := FromTournament(tour)

	assert.Equal(t, "Autumn Cup", doc.Name)
	assert.Equal(t, Dates{From: "2024-10-01", To: "2024-10-02"}, doc.Dates)
	assert.Equal(t, "Cornville", doc.Venue)
	assert.Equal(t, 2, doc.NumberOfRounds)
	assert.Equal(t, 0, doc.CurrentRound)
	assert.False(t, doc.Completed)
	assert.Equal(t, []string{"AA00001", "BB00002", "CC00003", "DD00004"}, doc.Players)
	assert.Empty(t, doc.Rounds)
}

// TestFromTournament_RoundTrip tests that saving and loading a tournament gives back the same state and points
func TestFromTournament_RoundTrip(t *testing.T) {
	players := CreateSamplePlayers()
	tour, err := tournament.New(tournament.Config{Name: "Spring Open", Players: players, MaxRound: 2, Shuffle: noShuffle})
	require.NoError(t, err)
	require.NoError(t, tour.AdvanceRound())
	require.NoError(t, tour.RecordResult(0, tournament.OutcomePlayer2))
	require.NoError(t, tour.RecordResult(1, tournament.OutcomeDraw))
	require.NoError(t, tour.AdvanceRound())
	require.NoError(t, tour.RecordResult(0, tournament.OutcomePlayer1))

	doc := FromTournament(tour)

	assert.Equal(t, 2, doc.CurrentRound)
	assert.True(t, doc.Completed)
	require.Len(t, doc.Rounds, 2)
	assert.Equal(t, MatchDoc{Players: []string{"AA00001", "BB00002"}, Completed: true, Winner: "player2"}, doc.Rounds[0][0])
	assert.Equal(t, MatchDoc{Players: []string{"CC00003", "DD00004"}, Completed: true, Winner: "draw"}, doc.Rounds[0][1])
	assert.False(t, doc.Rounds[1][1].Completed)
	assert.Empty(t, doc.Rounds[1][1].Winner)

	// Load into a fresh roster, as happens on start up
	fresh := CreateSamplePlayers()
	loaded, err := ToTournament(doc, newLookup(fresh), noShuffle)
	require.NoError(t, err)

	assert.Equal(t, doc, FromTournament(loaded))
	for i := range players {
		assert.Equal(t, players[i].Points, fresh[i].Points, players[i].ChessID)
	}
}

// endregion

func TestPlayerDoc_Conversion(t *testing.T) {
	p := tournament.NewPlayer("AB12345", "Alice", "alice@example.com", "01-01-1990")
	p.AddPoints(2)

	doc := FromPlayer(p)
	back := doc.ToPlayer()

	assert.Equal(t, PlayerDoc{ChessID: "AB12345", Name: "Alice", Email: "alice@example.com", Birthday: "01-01-1990"}, doc)
	assert.Equal(t, "Alice", back.Name)
	assert.Zero(t, back.Points)
}
