/* player.go
 * Contains the Player struct. A Player is created once when the roster is loaded and is shared by pointer between
 * every tournament that selects it, so point updates are visible everywhere the player appears
 */

package tournament

import "fmt"

// Player is a chess club member taking part in one or more tournaments
type Player struct {
	ChessID  string
	Name     string
	Email    string
	Birthday string
	Points   float64
}

// NewPlayer creates a player with zero points
func NewPlayer(chessID, name, email, birthday string) *Player {
	return &Player{
		ChessID:  chessID,
		Name:     name,
		Email:    email,
		Birthday: birthday,
	}
}

// AddPoints adds the points won in a match. Points are only ever added, so a negative delta is ignored
func (p *Player) AddPoints(delta float64) {
	if delta <= 0 {
		return
	}
	p.Points += delta
}

// SameAs reports whether both players refer to the same club member. Identity is the chess id, not the pointer
func (p *Player) SameAs(other *Player) bool {
	if p == nil || other == nil {
		return false
	}
	return p.ChessID == other.ChessID
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s) - Email: %s, Birthday: %s, Points: %g", p.Name, p.ChessID, p.Email, p.Birthday, p.Points)
}
