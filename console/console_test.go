/* console_test.go
 * Contains tests that drive the console menus with scripted input
 */

package console

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chess-tournament/api/api"
	"chess-tournament/api/input"
	"chess-tournament/api/roster"
	"chess-tournament/api/tournament"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAPI creates an API over a mock store with Alice, Bob, Carol and Dave in the roster
func newTestAPI(t *testing.T) (*api.API, *api.MockStore) {
	t.Helper()
	r := roster.New()
	for _, p := range []*tournament.Player{
		tournament.NewPlayer("AA00001", "Alice", "alice@example.com", "01-01-1990"),
		tournament.NewPlayer("BB00002", "Bob", "bob@example.com", "02-02-1991"),
		tournament.NewPlayer("CC00003", "Carol", "carol@example.com", "03-03-1992"),
		tournament.NewPlayer("DD00004", "Dave", "dave@example.com", "04-04-1993"),
	} {
		require.NoError(t, r.Add(p))
	}
	ms := api.NewMockStore()
	a := api.New(ms, r)
	a.Shuffle = func(int, func(i, j int)) {}
	return a, ms
}

// createSpringOpen creates the 2 round "Spring Open" tournament over every test player
func createSpringOpen(t *testing.T, a *api.API) {
	t.Helper()
	_, err := a.CreateTournament(api.CreateRequest{
		Name:      "Spring Open",
		Venue:     "Springfield",
		StartDate: "2024-04-01",
		EndDate:   "2024-04-03",
		PlayerIDs: []string{"AA00001", "BB00002", "CC00003", "DD00004"},
		MaxRound:  2,
	})
	require.NoError(t, err)
}

// runScript runs the console over the given answers, one per line, and returns everything it printed
func runScript(t *testing.T, a *api.API, reportsDir string, answers ...string) string {
	t.Helper()
	var out bytes.Buffer
	prompter := input.NewConsolePrompter(strings.NewReader(strings.Join(answers, "\n")+"\n"), &out)
	c := New(a, prompter, &out, reportsDir)
	c.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, c.Run())
	return out.String()
}

// region main menu tests

func TestRun_ExitAndEndOfInput(t *testing.T) {
	a, _ := newTestAPI(t)

	out := runScript(t, a, t.TempDir(), "6")
	assert.Contains(t, out, "Exiting program.")

	// Running out of input is a normal exit
	out = runScript(t, a, t.TempDir(), "9")
	assert.Contains(t, out, "Invalid option, please try again.")
	assert.NotContains(t, out, "Exiting program.")
}

func TestRun_ListTournaments(t *testing.T) {
	a, _ := newTestAPI(t)

	out := runScript(t, a, t.TempDir(), "3")
	assert.Contains(t, out, "No tournaments available.")

	createSpringOpen(t, a)
	out = runScript(t, a, t.TempDir(), "3", "6")
	assert.Contains(t, out, "Available Tournaments:\n1. Spring Open\n")
}

// endregion

// region create tests

func TestCreateTournament(t *testing.T) {
	a, ms := newTestAPI(t)

	out := runScript(t, a, t.TempDir(),
		"1", "Spring Open", "Springfield", "2024-04-01", "2024-04-03",
		"3",     // odd, asked again
		"4",     // number of players
		"car",   // search
		"1",     // Carol
		"",      // list everyone
		"3 1 2", // Carol again, Alice, Bob
		"",      // list everyone
		"4",     // Dave
		"2",     // rounds
		"6",
	)

	assert.Contains(t, out, "Please enter an even number greater than zero!")
	assert.Contains(t, out, "Player already selected. Please choose a different player.")
	assert.Contains(t, out, "Tournament 'Spring Open' has been created at Springfield from 2024-04-01 to 2024-04-03.")

	tour, err := a.GetTournament("Spring Open")
	require.NoError(t, err)
	ids := make([]string, len(tour.Players))
	for i, p := range tour.Players {
		ids[i] = p.ChessID
	}
	assert.Equal(t, []string{"CC00003", "AA00001", "BB00002", "DD00004"}, ids)
	assert.Equal(t, 2, tour.MaxRound)
	assert.Contains(t, ms.Tournaments, "Spring Open")
}

func TestCreateTournament_AlreadyExists(t *testing.T) {
	a, _ := newTestAPI(t)
	createSpringOpen(t, a)

	out := runScript(t, a, t.TempDir(), "1", "Spring Open", "6")

	assert.Contains(t, out, "Tournament 'Spring Open' already exists.")
}

func TestCreateTournament_MorePlayersThanRoster(t *testing.T) {
	a, _ := newTestAPI(t)

	out := runScript(t, a, t.TempDir(), "1", "Big Open", "", "", "", "6")

	assert.Contains(t, out, "There are only 4 players to choose from!")
	assert.Empty(t, a.ListTournaments())
}

// endregion

// region manage tests

func TestManageTournament_PlayWholeTournament(t *testing.T) {
	a, ms := newTestAPI(t)
	createSpringOpen(t, a)
	reportsDir := filepath.Join(t.TempDir(), "reports")

	out := runScript(t, a, reportsDir,
		"2", "1", // manage Spring Open
		"2", "1", "0", // round 1: Alice beats Bob, Carol draws Dave
		"2", "1", "1", // round 2: Alice beats Carol, Dave beats Bob
		"2",      // no round left
		"1",      // rankings
		"3",      // player details
		"4",      // report
		"5", "6", // back, exit
	)

	assert.Contains(t, out, "Match 1: Alice vs Bob\n")
	assert.Contains(t, out, "After Round 1:\n1. Alice (AA00001): 1 points\n2. Carol (CC00003): 0.5 points\n")
	assert.Contains(t, out, "Match 1: Alice vs Carol\n")
	assert.Contains(t, out, "Match 2: Dave vs Bob\n")
	assert.Contains(t, out, "The winner of Spring Open is Alice (AA00001) with 2 points!")
	assert.Contains(t, out, "Maximum number of rounds reached. The tournament has concluded.")
	assert.Contains(t, out, "Rankings for Spring Open:\n1. Alice (AA00001): 2 points\n2. Dave (DD00004): 1.5 points\n")
	assert.Contains(t, out, "Alice (AA00001) - Email: alice@example.com, Birthday: 01-01-1990, Points: 2")

	assert.True(t, ms.Tournaments["Spring Open"].Completed)
	report, err := os.ReadFile(filepath.Join(reportsDir, "Spring Open_report.html"))
	require.NoError(t, err)
	assert.Contains(t, string(report), "Tournament Report: Spring Open")
}

func TestManageTournament_InvalidChoices(t *testing.T) {
	a, _ := newTestAPI(t)
	createSpringOpen(t, a)

	out := runScript(t, a, t.TempDir(),
		"2", "7", "1", // out of range, then Spring Open
		"9",           // unknown option
		"2", "4", "1", // invalid result, then Alice wins
		"2",           // Dave beats Carol
		"5", "6",
	)

	assert.Contains(t, out, "Invalid selection. Please enter a number from 1 to 1.")
	assert.Contains(t, out, "Invalid option, please try again.")
	assert.Contains(t, out, "Invalid input. Please enter 1, 2, or 0.")
	alice, _ := a.Roster.Get("AA00001")
	assert.Equal(t, 1.0, alice.Points)
}

func TestManageTournament_NoTournaments(t *testing.T) {
	a, _ := newTestAPI(t)

	out := runScript(t, a, t.TempDir(), "2", "6")

	assert.Contains(t, out, "No tournaments available.")
}

// endregion

// region remove and register tests

func TestRemoveTournament(t *testing.T) {
	a, ms := newTestAPI(t)

	out := runScript(t, a, t.TempDir(), "4", "6")
	assert.Contains(t, out, "There are no ongoing tournaments to remove.")

	createSpringOpen(t, a)
	out = runScript(t, a, t.TempDir(), "4", "Winter Open", "4", "Spring Open", "6")

	assert.Contains(t, out, "No tournament found with the name 'Winter Open'.")
	assert.Contains(t, out, "Tournament 'Spring Open' has been removed.")
	assert.Empty(t, a.ListTournaments())
	assert.True(t, ms.Archived["Spring Open"])
}

func TestRegisterPlayer(t *testing.T) {
	a, ms := newTestAPI(t)

	out := runScript(t, a, t.TempDir(),
		"5", "Eve",
		"not-an-email", "eve@example.com",
		"ee5", "EE00005",
		"31-12-2030", "05-05-1995",
		"6",
	)

	assert.Contains(t, out, "Please provide a valid email address!")
	assert.Contains(t, out, "Please provide a valid Chess ID (XXNNNNN)!")
	assert.Contains(t, out, "Please provide a valid date (dd-mm-yyyy)!")
	assert.Contains(t, out, "Player Eve (EE00005) has been registered.")
	eve, ok := a.Roster.Get("EE00005")
	require.True(t, ok)
	assert.Equal(t, "05-05-1995", eve.Birthday)
	assert.Contains(t, ms.Players, "EE00005")
}

func TestRegisterPlayer_Duplicate(t *testing.T) {
	a, _ := newTestAPI(t)

	out := runScript(t, a, t.TempDir(), "5", "Alice Again", "alice@example.com", "AA00001", "01-01-1990", "6")

	assert.Contains(t, out, "A player with chess id AA00001 is already registered.")
	assert.Equal(t, 4, a.Roster.Len())
}

// endregion
