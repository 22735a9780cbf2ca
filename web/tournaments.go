/* tournaments.go
 * Contains the read-only HTTP endpoints for active tournaments. Nothing here changes a tournament
 */

package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"chess-tournament/api/api"
	"chess-tournament/logger"
)

// Routes binds the handler methods that have access to s.api
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tournaments", s.TournamentsHandler)
	mux.HandleFunc("GET /tournaments/{name}/report", s.ReportHandler)
	mux.HandleFunc("GET /tournaments/{name}/rankings", s.RankingsHandler)
	return mux
}

// writeJSON writes v as the JSON body of the response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// statusFor maps an API error to the HTTP status returned for it
func statusFor(err error) int {
	if errors.Is(err, api.ErrTournamentNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// TournamentsHandler HTTP endpoint that lists the active tournaments
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes a JSON array of tournament summaries, sorted by name
func (s *Server) TournamentsHandler(w http.ResponseWriter, r *http.Request) {
	summaries := make([]api.TournamentSummary, 0)
	for _, name := range s.api.ListTournaments() {
		t, err := s.api.GetTournament(name)
		if err != nil {
			continue
		}
		summaries = append(summaries, api.NewTournamentSummary(t))
	}
	writeJSON(w, http.StatusOK, summaries)
}

// ReportHandler HTTP endpoint that serves the HTML report of a tournament
// Preconditions: HTTP server has been started, receives a request for /tournaments/{name}/report
// Postconditions: Writes the report, or 404 if there is no active tournament with that name
func (s *Server) ReportHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	html, err := s.api.GenerateReport(name)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			logger.Error("failed to generate report", "tournament", name, "error", err)
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		logger.Warn("failed to write report", "tournament", name, "error", err)
	}
}

// RankingsHandler HTTP endpoint that serves the standings of a tournament as JSON
// Preconditions: HTTP server has been started, receives a request for /tournaments/{name}/rankings
// Postconditions: Writes the ranked players, or 404 if there is no active tournament with that name
func (s *Server) RankingsHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	ranked, err := s.api.GetRankings(name)
	if err != nil {
		writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, api.NewRankingEntries(ranked))
}
