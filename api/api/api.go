/* api.go
 * This file contains the public methods for interacting with this package. The console, bot and web server should
 * only call the functions in this file, not the sub packages for tournament, roster and store directly
 */

package api

import (
	"errors"
	"fmt"
	"sort"

	"chess-tournament/api/report"
	"chess-tournament/api/roster"
	"chess-tournament/api/store"
	"chess-tournament/api/tournament"
	"chess-tournament/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrTournamentExists is returned when creating a tournament with a name that is already in use
	ErrTournamentExists = errors.New("tournament already exists")
	// ErrTournamentNotFound is returned when no active tournament has the requested name
	ErrTournamentNotFound = errors.New("tournament not found")
)

// API provides methods for running tournaments on top of the roster and the data layer
type API struct {
	Store       store.Interface
	Roster      *roster.Roster
	Tournaments map[string]*tournament.Tournament

	// Shuffle seeds round 1 of new and loaded tournaments. nil uses rand.Shuffle
	Shuffle tournament.ShuffleFunc
}

// CreateRequest holds the values entered when creating a tournament
type CreateRequest struct {
	Name      string
	Venue     string
	StartDate string
	EndDate   string
	PlayerIDs []string
	MaxRound  int
}

// NewAPI creates a new API instance connected to the given database
func NewAPI(dbName string, mongoURI string) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return New(s, roster.New()), nil
}

// New creates an API over an existing store and roster
func New(s store.Interface, r *roster.Roster) *API {
	return &API{
		Store:       s,
		Roster:      r,
		Tournaments: make(map[string]*tournament.Tournament),
	}
}

// LoadState loads the roster and every active tournament. Needs to be run once before other functions in this package.
// Club files in clubsDir are loaded first, then players stored in the DB that are not in a club file. The roster is
// then written back so the DB holds every known player. Finally every active tournament is rebuilt, which replays
// the stored match results onto the roster players.
// Preconditions: Receives the club files directory, which may be empty to skip club files
// Postconditions: Returns nil, or an error if the roster cannot be loaded. A tournament that fails to load is logged and skipped
func (a *API) LoadState(clubsDir string) error {
	if clubsDir != "" {
		clubs, err := a.Roster.LoadClubs(clubsDir)
		if err != nil {
			return err
		}
		logger.Info("loaded club files", "clubs", clubs, "players", a.Roster.Len())
	}

	stored, err := a.Store.FetchPlayers()
	if err != nil {
		return err
	}
	for _, doc := range stored {
		if _, ok := a.Roster.Get(doc.ChessID); ok {
			continue
		}
		if err := a.Roster.Add(doc.ToPlayer()); err != nil {
			return err
		}
	}

	if err := a.syncRoster(); err != nil {
		return err
	}

	docs, err := a.Store.FetchActiveTournaments()
	if err != nil {
		return err
	}
	for _, doc := range docs {
		t, err := store.ToTournament(doc, a.Roster, a.Shuffle)
		if err != nil {
			logger.Error("failed to load tournament", "tournament", doc.Name, "error", err)
			continue
		}
		a.Tournaments[t.Name] = t
		logger.Info("tournament loaded", "tournament", t.Name, "round", t.CurrentRound, "max_round", t.MaxRound)
	}
	return nil
}

// RegisterPlayer adds a new player to the roster and stores it
// Preconditions: Receives a player with a chess id that is not in the roster yet
// Postconditions: The player is in the roster and the DB, or an error is returned and the roster is unchanged
func (a *API) RegisterPlayer(p *tournament.Player) error {
	if p == nil || p.ChessID == "" {
		return fmt.Errorf("player must have a chess id")
	}
	if _, ok := a.Roster.Get(p.ChessID); ok {
		return fmt.Errorf("%w: %s", roster.ErrDuplicatePlayer, p.ChessID)
	}
	if err := a.Store.StorePlayers([]store.PlayerDoc{store.FromPlayer(p)}); err != nil {
		return err
	}
	if err := a.Roster.Add(p); err != nil {
		return err
	}
	logger.Info("player registered", "chess_id", p.ChessID)
	return nil
}

// CreateTournament creates a tournament from the selected roster players and stores it
// Preconditions: Receives a CreateRequest with a name not used by an active or archived tournament, an even number of
// known chess ids and at least one round
// Postconditions: Returns the tournament, or ErrTournamentExists, roster.ErrPlayerNotFound or tournament.ErrInvalidTournamentConfig
func (a *API) CreateTournament(req CreateRequest) (*tournament.Tournament, error) {
	if _, ok := a.Tournaments[req.Name]; ok {
		return nil, fmt.Errorf("%w: '%s'", ErrTournamentExists, req.Name)
	}
	// Archived tournaments are not in memory but still own their name in the DB
	if _, err := a.Store.FetchTournament(req.Name); err == nil {
		return nil, fmt.Errorf("%w: '%s' (archived)", ErrTournamentExists, req.Name)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check tournament name %s: %w", req.Name, err)
	}

	players, err := a.Roster.Lookup(req.PlayerIDs...)
	if err != nil {
		return nil, err
	}

	t, err := tournament.New(tournament.Config{
		Name:      req.Name,
		Venue:     req.Venue,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Players:   players,
		MaxRound:  req.MaxRound,
		Shuffle:   a.Shuffle,
	})
	if err != nil {
		return nil, err
	}

	if err := a.Store.StoreTournament(store.FromTournament(t)); err != nil {
		return nil, err
	}
	a.Tournaments[t.Name] = t
	logger.Info("tournament created", "tournament", t.Name, "venue", t.Venue, "players", len(t.Players), "max_round", t.MaxRound)
	return t, nil
}

// ListTournaments returns the names of every active tournament in alphabetical order
func (a *API) ListTournaments() []string {
	names := make([]string, 0, len(a.Tournaments))
	for name := range a.Tournaments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTournament returns the active tournament with the given name, or ErrTournamentNotFound
func (a *API) GetTournament(name string) (*tournament.Tournament, error) {
	t, ok := a.Tournaments[name]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrTournamentNotFound, name)
	}
	return t, nil
}

// PlayNextRound pairs the next round of a tournament and stores it
// Preconditions: Receives the tournament name
// Postconditions: Returns the matches of the new round, or tournament.ErrMaxRoundsReached if every round has been played.
// If the tournament cannot be saved the round is undone
func (a *API) PlayNextRound(name string) ([]*tournament.Match, error) {
	t, err := a.GetTournament(name)
	if err != nil {
		return nil, err
	}

	checkpoint := t.Checkpoint()
	if err := t.AdvanceRound(); err != nil {
		if errors.Is(err, tournament.ErrMaxRoundsReached) {
			logger.Info("maximum number of rounds reached", "tournament", name, "max_round", t.MaxRound)
		}
		return nil, err
	}
	logger.Info("round paired", "tournament", name, "round", t.CurrentRound, "matches", len(t.CurrentMatches()))

	if err := a.save(t); err != nil {
		t.Rollback(checkpoint)
		return nil, err
	}
	return t.CurrentMatches(), nil
}

// RecordResult records the result of a match of the current round and stores the tournament.
// matchNumber starts at 1, as shown to users. Recording a match that already has a result changes nothing
// Preconditions: Receives tournament name, match number and outcome
// Postconditions: Returns nil, or an error if the match does not exist, the outcome is invalid or saving fails.
// A result that cannot be saved is undone
func (a *API) RecordResult(name string, matchNumber int, outcome tournament.Outcome) error {
	t, err := a.GetTournament(name)
	if err != nil {
		return err
	}

	matches := t.CurrentMatches()
	alreadyPlayed := matchNumber >= 1 && matchNumber <= len(matches) && matches[matchNumber-1].IsPlayed()

	checkpoint := t.Checkpoint()
	if err := t.RecordResult(matchNumber-1, outcome); err != nil {
		return err
	}
	if alreadyPlayed {
		logger.Warn("result already recorded, ignoring", "tournament", name, "round", t.CurrentRound, "match", matchNumber)
		return nil
	}
	logger.Debug("result recorded", "tournament", name, "round", t.CurrentRound, "match", matchNumber, "outcome", outcome)

	if err := a.save(t); err != nil {
		t.Rollback(checkpoint)
		return err
	}
	return nil
}

// GetRankings returns the players of a tournament ordered by points
func (a *API) GetRankings(name string) ([]*tournament.Player, error) {
	t, err := a.GetTournament(name)
	if err != nil {
		return nil, err
	}
	return t.Rankings(), nil
}

// DeclareWinner returns the winner of a completed tournament, or tournament.ErrTournamentNotComplete
func (a *API) DeclareWinner(name string) (*tournament.Player, error) {
	t, err := a.GetTournament(name)
	if err != nil {
		return nil, err
	}
	return t.Winner()
}

// RemoveTournament archives a tournament in the DB and drops it from the active tournaments
// Preconditions: Receives the tournament name
// Postconditions: Returns nil, or ErrTournamentNotFound if there is no such tournament
func (a *API) RemoveTournament(name string) error {
	if _, err := a.GetTournament(name); err != nil {
		return err
	}

	if err := a.Store.ArchiveTournament(name); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fmt.Errorf("%w: '%s'", ErrTournamentNotFound, name)
		}
		return err
	}
	delete(a.Tournaments, name)
	logger.Info("tournament archived", "tournament", name)
	return nil
}

// SearchPlayers searches the roster by name or chess id. An empty term returns every player
func (a *API) SearchPlayers(term string) []*tournament.Player {
	return a.Roster.Search(term)
}

// GenerateReport renders the HTML report of a tournament
func (a *API) GenerateReport(name string) (string, error) {
	t, err := a.GetTournament(name)
	if err != nil {
		return "", err
	}
	return report.RenderHTML(t)
}

// save writes the tournament to the DB
func (a *API) save(t *tournament.Tournament) error {
	if err := a.Store.StoreTournament(store.FromTournament(t)); err != nil {
		logger.Error("failed to save tournament", "tournament", t.Name, "error", err)
		return fmt.Errorf("failed to save tournament %s: %w", t.Name, err)
	}
	return nil
}

// syncRoster writes every roster player to the DB
func (a *API) syncRoster() error {
	players := a.Roster.All()
	docs := make([]store.PlayerDoc, 0, len(players))
	for _, p := range players {
		docs = append(docs, store.FromPlayer(p))
	}
	return a.Store.StorePlayers(docs)
}
