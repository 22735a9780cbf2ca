/* models.go
 * This file contain the structs and helper functions that are used by api consumers
 */

package api

import "chess-tournament/api/tournament"

// RankingEntry is a single line of a tournament's standings
type RankingEntry struct {
	Rank    int     `json:"rank"`
	ChessID string  `json:"chess_id"`
	Name    string  `json:"name"`
	Points  float64 `json:"points"`
}

// TournamentSummary describes a tournament without its matches
type TournamentSummary struct {
	Name         string `json:"name"`
	Venue        string `json:"venue"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	CurrentRound int    `json:"current_round"`
	MaxRound     int    `json:"max_round"`
	Status       string `json:"status"`
}

// NewRankingEntries numbers ranked players from 1
func NewRankingEntries(ranked []*tournament.Player) []RankingEntry {
	entries := make([]RankingEntry, len(ranked))
	for i, p := range ranked {
		entries[i] = RankingEntry{Rank: i + 1, ChessID: p.ChessID, Name: p.Name, Points: p.Points}
	}
	return entries
}

// NewTournamentSummary creates the summary of t
func NewTournamentSummary(t *tournament.Tournament) TournamentSummary {
	return TournamentSummary{
		Name:         t.Name,
		Venue:        t.Venue,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		CurrentRound: t.CurrentRound,
		MaxRound:     t.MaxRound,
		Status:       t.Status().String(),
	}
}
