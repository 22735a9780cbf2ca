/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 */

package api

import (
	"context"

	"chess-tournament/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	// Storage for mock data
	Tournaments map[string]store.TournamentDoc
	Archived    map[string]bool
	Players     map[string]store.PlayerDoc

	// Number of calls, for asserting what was persisted
	StoreTournamentCalls int
	StorePlayersCalls    int

	// Error injection for testing error paths
	StoreTournamentError        error
	FetchTournamentError        error
	FetchActiveTournamentsError error
	ArchiveTournamentError      error
	StorePlayersError           error
	FetchPlayersError           error

	Database interface{ Name() string }
}

// Ensure MockStore implements store.Interface
var _ store.Interface = (*MockStore)(nil)

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// mockClient implements the minimal Client interface needed for tests
type mockClient struct{}

func (m *mockClient) Disconnect(context.Context) error {
	return nil
}

// NewMockStore creates an empty MockStore
func NewMockStore() *MockStore {
	return &MockStore{
		Tournaments: make(map[string]store.TournamentDoc),
		Archived:    make(map[string]bool),
		Players:     make(map[string]store.PlayerDoc),
		Database:    &mockDatabase{name: "test_db"},
	}
}

// StoreTournament mock implementation
func (m *MockStore) StoreTournament(doc store.TournamentDoc) error {
	m.StoreTournamentCalls++
	if m.StoreTournamentError != nil {
		return m.StoreTournamentError
	}
	m.Tournaments[doc.Name] = doc
	return nil
}

// FetchTournament mock implementation
func (m *MockStore) FetchTournament(name string) (store.TournamentDoc, error) {
	if m.FetchTournamentError != nil {
		return store.TournamentDoc{}, m.FetchTournamentError
	}
	doc, ok := m.Tournaments[name]
	if !ok {
		return store.TournamentDoc{}, mongo.ErrNoDocuments
	}
	return doc, nil
}

// FetchActiveTournaments mock implementation
func (m *MockStore) FetchActiveTournaments() ([]store.TournamentDoc, error) {
	if m.FetchActiveTournamentsError != nil {
		return nil, m.FetchActiveTournamentsError
	}
	var docs []store.TournamentDoc
	for name, doc := range m.Tournaments {
		if !m.Archived[name] {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// ArchiveTournament mock implementation
func (m *MockStore) ArchiveTournament(name string) error {
	if m.ArchiveTournamentError != nil {
		return m.ArchiveTournamentError
	}
	if _, ok := m.Tournaments[name]; !ok {
		return mongo.ErrNoDocuments
	}
	m.Archived[name] = true
	return nil
}

// StorePlayers mock implementation
func (m *MockStore) StorePlayers(players []store.PlayerDoc) error {
	m.StorePlayersCalls++
	if m.StorePlayersError != nil {
		return m.StorePlayersError
	}
	for _, p := range players {
		m.Players[p.ChessID] = p
	}
	return nil
}

// FetchPlayers mock implementation
func (m *MockStore) FetchPlayers() ([]store.PlayerDoc, error) {
	if m.FetchPlayersError != nil {
		return nil, m.FetchPlayersError
	}
	players := make([]store.PlayerDoc, 0, len(m.Players))
	for _, p := range m.Players {
		players = append(players, p)
	}
	return players, nil
}

// GetDatabase returns the mock database
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return m.Database
}

// GetClient returns a mock client
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}
