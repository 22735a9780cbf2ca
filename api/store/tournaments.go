/* tournaments.go
 * Contains the methods for interacting with the tournaments collection
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StoreTournament inserts or updates a tournament, keyed by its name
// Preconditions: Receives receiver pointer for Store and the TournamentDoc to be stored
// Postconditions: Inserts the tournament if it is new, otherwise replaces the stored fields, or returns an error if it occurs
func (s *Store) StoreTournament(doc TournamentDoc) error {
	if doc.Name == "" {
		return fmt.Errorf("tournament name is required")
	}

	// Attempt to find an existing document
	var existing TournamentDoc
	err := s.Collections.Tournaments.FindOne(context.TODO(), bson.M{"name": doc.Name}).Decode(&existing)
	notFound := errors.Is(err, mongo.ErrNoDocuments)

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing tournament failed: %w", err)
	}

	// The tournament has not been stored before so we create a new document
	if notFound {
		_, err := s.Collections.Tournaments.InsertOne(context.TODO(), doc)
		if err != nil {
			return fmt.Errorf("failed to insert new tournament: %w", err)
		}
		return nil
	}

	// Else update the existing tournament
	filter := bson.M{"name": doc.Name}
	update := bson.M{"$set": doc}
	_, err = s.Collections.Tournaments.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return fmt.Errorf("failed to update existing tournament: %w", err)
	}
	return nil
}

// FetchTournament does DB lookup and gets a tournament by name, archived or not
// Preconditions: Receives the tournament name
// Postconditions: Returns the stored tournament, mongo.ErrNoDocuments if there is none, or an error if it occurs
func (s *Store) FetchTournament(name string) (TournamentDoc, error) {
	var doc TournamentDoc
	err := s.Collections.Tournaments.FindOne(context.TODO(), bson.M{"name": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return TournamentDoc{}, err
		}
		return TournamentDoc{}, fmt.Errorf("error fetching tournament from db: %w", err)
	}
	return doc, nil
}

// FetchActiveTournaments does DB lookup and gets every tournament that has not been archived
// Postconditions: Returns slice of TournamentDoc, or an error if it occurs
func (s *Store) FetchActiveTournaments() ([]TournamentDoc, error) {
	filter := bson.M{"archived": bson.M{"$ne": true}}

	cursor, err := s.Collections.Tournaments.Find(context.TODO(), filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching tournaments from db: %w", err)
	}

	// Unpack the cursor into a slice
	var docs []TournamentDoc
	if err = cursor.All(context.TODO(), &docs); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of tournaments: %w", err)
	}
	return docs, nil
}

// ArchiveTournament marks a tournament as archived. Archived tournaments are kept in the DB but are no longer loaded
// Preconditions: Receives the tournament name
// Postconditions: Sets archived on the stored tournament, returns mongo.ErrNoDocuments if there is none, or an error if it occurs
func (s *Store) ArchiveTournament(name string) error {
	filter := bson.M{"name": name}
	update := bson.M{"$set": bson.M{"archived": true}}

	res, err := s.Collections.Tournaments.UpdateOne(context.TODO(), filter, update)
	if err != nil {
		return fmt.Errorf("failed to archive tournament: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
