/* players.go
 * Contains the methods for interacting with the players collection
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StorePlayers upserts roster players keyed by chess id in a single bulk write
// Preconditions: Receives the players to store
// Postconditions: Every player is inserted or updated, or an error is returned
func (s *Store) StorePlayers(players []PlayerDoc) error {
	if len(players) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(players))
	for _, p := range players {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"chess_id": p.ChessID}).
			SetUpdate(bson.M{"$set": p}).
			SetUpsert(true))
	}

	_, err := s.Collections.Players.BulkWrite(context.TODO(), models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("failed to store players: %w", err)
	}
	return nil
}

// FetchPlayers gets every player stored in the players collection
// Postconditions: Returns slice of PlayerDoc, or an error if it occurs
func (s *Store) FetchPlayers() ([]PlayerDoc, error) {
	cursor, err := s.Collections.Players.Find(context.TODO(), bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error fetching players from db: %w", err)
	}

	var players []PlayerDoc
	if err = cursor.All(context.TODO(), &players); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of players: %w", err)
	}
	return players, nil
}
