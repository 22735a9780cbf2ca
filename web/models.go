package web

import (
	"chess-tournament/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that publishes tournament reports
type Server struct {
	api *api.API
}

// NewServer creates a Server over the given API
func NewServer(a *api.API) *Server {
	return &Server{api: a}
}

// errorResponse is the JSON body of a failed request
type errorResponse struct {
	Error string `json:"error"`
}
