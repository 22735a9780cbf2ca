/* roster.go
 * Contains the Roster, the single owner of every Player. Tournaments receive the roster's player pointers, so a
 * point update made through one tournament is visible everywhere that player appears
 */

package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"chess-tournament/api/tournament"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrPlayerNotFound is returned when a chess id is not in the roster
var ErrPlayerNotFound = errors.New("player not found")

// ErrDuplicatePlayer is returned when a chess id is added to the roster twice
var ErrDuplicatePlayer = errors.New("player already in roster")

// Club is the layout of a club file, e.g. data/clubs/springfield.json
type Club struct {
	Name    string       `json:"name"`
	Players []ClubPlayer `json:"players"`
}

// ClubPlayer is a player entry in a club file
type ClubPlayer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	ChessID  string `json:"chess_id"`
	Birthday string `json:"birthday"`
}

// Roster holds every known player in load order
type Roster struct {
	players []*tournament.Player
	byID    map[string]*tournament.Player
}

// New creates an empty roster
func New() *Roster {
	return &Roster{byID: make(map[string]*tournament.Player)}
}

// Add puts a player in the roster. The roster keeps the pointer, it does not copy the player
func (r *Roster) Add(p *tournament.Player) error {
	if p == nil || p.ChessID == "" {
		return fmt.Errorf("player must have a chess id")
	}
	if _, ok := r.byID[p.ChessID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ChessID)
	}
	r.players = append(r.players, p)
	r.byID[p.ChessID] = p
	return nil
}

// All returns every player in load order
func (r *Roster) All() []*tournament.Player {
	return append([]*tournament.Player(nil), r.players...)
}

// Len returns the number of players in the roster
func (r *Roster) Len() int {
	return len(r.players)
}

// Get returns the player with the given chess id
func (r *Roster) Get(chessID string) (*tournament.Player, bool) {
	p, ok := r.byID[chessID]
	return p, ok
}

// Lookup resolves chess ids to the roster's players, keeping the order of ids.
// Preconditions: receives chess ids
// Postconditions: returns the shared player pointers, or ErrPlayerNotFound naming every unknown id
func (r *Roster) Lookup(chessIDs ...string) ([]*tournament.Player, error) {
	players := make([]*tournament.Player, 0, len(chessIDs))
	var missing []string
	for _, id := range chessIDs {
		p, ok := r.byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		players = append(players, p)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, strings.Join(missing, ", "))
	}
	return players, nil
}

// Search finds players whose name or chess id contains the search term, ignoring case. If nothing contains the term
// the players are ranked by fuzzy match on their name instead, so an abbreviated name such as "jdoe" still finds
// "John Doe".
// An empty term returns every player
func (r *Roster) Search(term string) []*tournament.Player {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return r.All()
	}

	var found []*tournament.Player
	for _, p := range r.players {
		if strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(strings.ToLower(p.ChessID), term) {
			found = append(found, p)
		}
	}
	if len(found) > 0 {
		return found
	}

	names := make([]string, len(r.players))
	for i, p := range r.players {
		names[i] = strings.ToLower(p.Name)
	}
	// OriginalIndex maps each rank back to the player it came from
	ranks := fuzzy.RankFindNormalizedFold(term, names)
	sort.Stable(ranks)
	for _, rank := range ranks {
		found = append(found, r.players[rank.OriginalIndex])
	}
	return found
}

// LoadClubFile reads a club file and adds its players to the roster.
// Preconditions: receives the path of a club json file
// Postconditions: returns the club name, or an error if the file cannot be read or a player is already in the roster
func (r *Roster) LoadClubFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read club file: %w", err)
	}

	var club Club
	if err := json.Unmarshal(data, &club); err != nil {
		return "", fmt.Errorf("failed to parse club file %s: %w", path, err)
	}

	for _, cp := range club.Players {
		if err := r.Add(tournament.NewPlayer(cp.ChessID, cp.Name, cp.Email, cp.Birthday)); err != nil {
			return "", fmt.Errorf("club %s: %w", club.Name, err)
		}
	}
	return club.Name, nil
}

// LoadClubs loads every *.json club file in dir and returns the club names in the order they were loaded
func (r *Roster) LoadClubs(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}

	var clubs []string
	for _, file := range files {
		name, err := r.LoadClubFile(file)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, name)
	}
	return clubs, nil
}
