/* store.go
 * Contains the store struct and NewStore function. The methods for this package are split by collection:
 * tournaments.go and players.go each contain the methods for interacting with that part of the database
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections holds the collections used by the store
type Collections struct {
	Tournaments *mongo.Collection
	Players     *mongo.Collection
}

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections Collections
}

// NewStore connects to mongo and sets up the collections
// Preconditions: Receives strings containing dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	return &Store{
		Client:   client,
		Database: db,
		Collections: Collections{
			Tournaments: db.Collection("tournaments"),
			Players:     db.Collection("players"),
		},
	}, nil
}
