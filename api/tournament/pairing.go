/* pairing.go
 * Contains the pairing engine. Round 1 is seeded randomly, every later round pairs neighbours in the standings
 */

package tournament

import (
	"fmt"
	"math/rand/v2"
)

// ShuffleFunc has the signature of rand.Shuffle so tests can swap in a deterministic order
type ShuffleFunc func(n int, swap func(i, j int))

// SequentialPairing pairs players at positions (0,1), (2,3), ... in list order.
// Preconditions: receives a player slice with an even length
// Postconditions: returns len(players)/2 unplayed matches, or ErrInvalidPairing if the list is odd or a player is paired with themselves
func SequentialPairing(players []*Player) ([]*Match, error) {
	if len(players)%2 != 0 {
		return nil, fmt.Errorf("%w: cannot pair an odd number of players (%d)", ErrInvalidPairing, len(players))
	}

	matches := make([]*Match, 0, len(players)/2)
	for i := 0; i < len(players); i += 2 {
		m, err := NewMatch(players[i], players[i+1])
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// RandomPairing shuffles players in place and then pairs them with SequentialPairing. A nil shuffle uses rand.Shuffle
func RandomPairing(players []*Player, shuffle ShuffleFunc) ([]*Match, error) {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(players), func(i, j int) {
		players[i], players[j] = players[j], players[i]
	})
	return SequentialPairing(players)
}
